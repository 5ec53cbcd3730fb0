package controllers

import (
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/pkg/resp"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/services"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/ws"

	"github.com/gin-gonic/gin"
)

type KitchenController struct {
	Orders *services.OrderService
	Hub    *ws.KitchenHub
}

func NewKitchenController(orders *services.OrderService, hub *ws.KitchenHub) *KitchenController {
	return &KitchenController{Orders: orders, Hub: hub}
}

type ItemStatusReq struct {
	Status entity.ItemStatus `json:"status" binding:"required"`
}

// PATCH /kitchen/items/:id/status — ครัวอัปเดตสถานะจาน
// reject จานไหน total ของออเดอร์แม่ถูกคิดใหม่ให้เลย
func (kc *KitchenController) SetItemStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ItemStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := kc.Orders.SetItemStatus(id, req.Status); err != nil {
		fail(c, err)
		return
	}

	kc.Hub.Publish("item_status", gin.H{"orderItemId": id, "status": req.Status})
	resp.OK(c, gin.H{"orderItemId": id, "status": req.Status})
}
