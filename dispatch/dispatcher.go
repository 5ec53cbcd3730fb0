// Package dispatch คือขอบเขตแจ้งออกไปข้างนอก (export ชีต/analytics)
// core แค่ยิง event ต่อออเดอร์ที่ปิดแล้ว — best-effort ไม่รอผล ไม่ rollback
package dispatch

import (
	"encoding/json"
	"log"
	"time"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"
)

type OrderCompletedEvent struct {
	OrderID     uint               `json:"orderId"`
	TableID     uint               `json:"tableId"`
	SessionID   string             `json:"sessionId"`
	TotalAmount int64              `json:"totalAmount"`
	CompletedAt time.Time          `json:"completedAt"`
	Items       []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	MenuItemID      uint   `json:"menuItemId"`
	Qty             int    `json:"qty"`
	UnitPrice       int64  `json:"unitPrice"`
	Total           int64  `json:"total"`
	CustomerRequest string `json:"customerRequest"`
	Status          string `json:"status"`
}

type Dispatcher interface {
	OrderCompleted(ev OrderCompletedEvent) error
}

func NewEvent(order *entity.Order, items []entity.OrderItem) OrderCompletedEvent {
	completedAt := order.UpdatedAt
	if order.CompletedAt != nil {
		completedAt = *order.CompletedAt
	}
	ev := OrderCompletedEvent{
		OrderID:     order.ID,
		TableID:     order.TableID,
		SessionID:   order.SessionID,
		TotalAmount: order.TotalAmount,
		CompletedAt: completedAt,
	}
	for _, it := range items {
		ev.Items = append(ev.Items, OrderItemPayload{
			MenuItemID:      it.MenuItemID,
			Qty:             it.Qty,
			UnitPrice:       it.UnitPrice,
			Total:           it.Total,
			CustomerRequest: it.CustomerRequest,
			Status:          string(it.Status),
		})
	}
	return ev
}

// ใช้เป็น default ตอนยังไม่ตั้งค่า broker — log อย่างเดียว
// ฝั่ง consumer ต้อง dedup เองด้วย orderId อยู่แล้ว (at-least-once)
type LogDispatcher struct{}

func (LogDispatcher) OrderCompleted(ev OrderCompletedEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	log.Printf("order completed (no broker configured): %s", b)
	return nil
}
