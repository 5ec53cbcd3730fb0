package controllers

import (
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/pkg/resp"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/services"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/ws"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
	Hub    *ws.KitchenHub
}

func NewOrderController(orders *services.OrderService, hub *ws.KitchenHub) *OrderController {
	return &OrderController{Orders: orders, Hub: hub}
}

// ===== Create Order =====

type OrderItemIn struct {
	MenuItemID      uint   `json:"menuItemId" binding:"required"`
	Qty             int    `json:"qty" binding:"required,min=1"`
	CustomerRequest string `json:"customerRequest"`
}
type CreateOrderReq struct {
	TableID   uint          `json:"tableId" binding:"required"`
	SessionID string        `json:"sessionId" binding:"required"`
	Items     []OrderItemIn `json:"items" binding:"required,min=1"`
}

// POST /orders — ลูกค้ากดสั่ง (ออเดอร์ใหม่ + รายการชุดแรก)
func (oc *OrderController) Create(c *gin.Context) {
	var req CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	orderID, err := oc.Orders.CreateOrder(req.TableID, req.SessionID)
	if err != nil {
		fail(c, err)
		return
	}
	for _, it := range req.Items {
		// unitPrice 0 = snapshot จากเมนู ณ ตอนนี้
		if err := oc.Orders.AddOrderItem(orderID, it.MenuItemID, it.Qty, 0, it.CustomerRequest); err != nil {
			fail(c, err)
			return
		}
	}

	items, err := oc.Orders.GetItemsWithStatus(orderID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	oc.Hub.Publish("order_created", gin.H{"orderId": orderID, "tableId": req.TableID})
	resp.Created(c, gin.H{"orderId": orderID, "items": items})
}

type AddItemReq struct {
	MenuItemID      uint   `json:"menuItemId" binding:"required"`
	Qty             int    `json:"qty" binding:"required,min=1"`
	UnitPrice       int64  `json:"unitPrice"` // 0 = ราคาเมนูปัจจุบัน
	CustomerRequest string `json:"customerRequest"`
}

// POST /orders/:id/items — สั่งเพิ่มเข้าออเดอร์เดิม
func (oc *OrderController) AddItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Orders.AddOrderItem(id, req.MenuItemID, req.Qty, req.UnitPrice, req.CustomerRequest); err != nil {
		fail(c, err)
		return
	}

	oc.Hub.Publish("order_created", gin.H{"orderId": id})
	resp.Created(c, gin.H{"orderId": id})
}

// GET /orders/:id/items — รายการพร้อมชื่อเมนูและสถานะ
func (oc *OrderController) Items(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	items, err := oc.Orders.GetItemsWithStatus(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /tables/:id/orders?sessionId=...
// ไม่ส่ง sessionId = เอาออเดอร์ทุก session ที่เคยนั่งโต๊ะนี้
func (oc *OrderController) ListForTable(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var sessionID *string
	if s := c.Query("sessionId"); s != "" {
		sessionID = &s
	}

	orders, err := oc.Orders.GetTableOrders(id, sessionID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}
