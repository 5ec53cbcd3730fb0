package controllers

import (
	"errors"
	"net/http"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/pkg/resp"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/services"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, staff, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"staff": gin.H{
			"id": staff.ID, "email": staff.Email, "name": staff.Name, "role": staff.Role,
		},
	})
}

// GET /auth/me (ต้อง login)
func (a *AuthController) Me(c *gin.Context) {
	staff, err := a.Auth.GetStaff(utils.CurrentStaffID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"id": staff.ID, "email": staff.Email, "name": staff.Name, "role": staff.Role,
	})
}
