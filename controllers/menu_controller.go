package controllers

import (
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/pkg/resp"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/repository"

	"github.com/gin-gonic/gin"
)

// หน้าเมนูฝั่งลูกค้า — อ่านอย่างเดียว (จัดการเมนูอยู่ระบบ admin แยก)
type MenuController struct {
	Menu *repository.MenuRepository
}

func NewMenuController(menu *repository.MenuRepository) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Menu.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}
