package controllers

import (
	"errors"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/pkg/resp"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/services"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/ws"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *services.PaymentService
	Hub      *ws.KitchenHub
}

func NewPaymentController(payments *services.PaymentService, hub *ws.KitchenHub) *PaymentController {
	return &PaymentController{Payments: payments, Hub: hub}
}

type CompletePaymentReq struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// POST /tables/:id/payment — แคชเชียร์ปิดบิลทั้ง session
func (pc *PaymentController) Complete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CompletePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	okDone, err := pc.Payments.CompletePayment(id, req.SessionID)
	if err != nil {
		if errors.Is(err, services.ErrSettlementFailed) {
			// rollback แล้วทั้งก้อน โต๊ะ/ออเดอร์อยู่สภาพเดิม
			resp.ServerError(c, err)
			return
		}
		fail(c, err)
		return
	}

	pc.Hub.Publish("order_completed", gin.H{"tableId": id, "sessionId": req.SessionID})
	resp.OK(c, gin.H{"success": okDone, "tableId": id, "status": entity.TableNeedsClearing})
}
