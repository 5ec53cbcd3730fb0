package controllers

import (
	"errors"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/pkg/resp"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/services"

	"github.com/gin-gonic/gin"
)

// map error ของ service → HTTP ให้เหมือนกันทุก endpoint
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrBadReference),
		errors.Is(err, services.ErrInvalidStatus):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
