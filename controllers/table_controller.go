package controllers

import (
	"strconv"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/pkg/resp"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/services"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/ws"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Tables *services.TableService
	Hub    *ws.KitchenHub
}

func NewTableController(tables *services.TableService, hub *ws.KitchenHub) *TableController {
	return &TableController{Tables: tables, Hub: hub}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// GET /tables
func (tc *TableController) List(c *gin.Context) {
	tables, err := tc.Tables.ListTables()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

// POST /tables/:id/session — ลูกค้านั่งโต๊ะ (สแกน QR)
func (tc *TableController) OpenSession(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	sessionID, err := tc.Tables.OpenSession(id)
	if err != nil {
		fail(c, err)
		return
	}

	tc.Hub.Publish("table_status", gin.H{"tableId": id, "status": entity.TableOccupied})
	resp.Created(c, gin.H{"sessionId": sessionID})
}

type UpdateTableStatusReq struct {
	Status    entity.TableStatus `json:"status" binding:"required"`
	SessionID *string            `json:"sessionId"`
}

// PATCH /tables/:id/status
func (tc *TableController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateTableStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := tc.Tables.UpdateStatus(id, req.Status, req.SessionID); err != nil {
		fail(c, err)
		return
	}

	tc.Hub.Publish("table_status", gin.H{"tableId": id, "status": req.Status})
	resp.OK(c, gin.H{"tableId": id, "status": req.Status})
}

// PATCH /tables/:id/checkout-time — ลูกค้ากดขอบิล
func (tc *TableController) UpdateCheckoutTime(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := tc.Tables.UpdateCheckoutTime(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"tableId": id})
}

// POST /tables/:id/clear — เก็บโต๊ะเสร็จ กลับ available
func (tc *TableController) Clear(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := tc.Tables.ClearTable(id); err != nil {
		fail(c, err)
		return
	}

	tc.Hub.Publish("table_status", gin.H{"tableId": id, "status": entity.TableAvailable})
	resp.OK(c, gin.H{"tableId": id, "status": entity.TableAvailable})
}
