package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/dispatch"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/repository"

	"gorm.io/gorm"
)

// PaymentService ปิดบิลทั้ง session ในครั้งเดียว:
// ปิดทุกออเดอร์ active → ลง history → โต๊ะเป็น needs_clearing
// ทั้งหมดอยู่ใน tx เดียว พังตรงไหน rollback หมด ไม่มีออเดอร์ปิดครึ่งเดียว
type PaymentService struct {
	DB         *gorm.DB
	Orders     *repository.OrderRepository
	Tables     *repository.TableRepository
	History    *repository.HistoryRepository
	Dispatcher dispatch.Dispatcher
}

func NewPaymentService(db *gorm.DB, orders *repository.OrderRepository,
	tables *repository.TableRepository, history *repository.HistoryRepository,
	dispatcher dispatch.Dispatcher) *PaymentService {
	return &PaymentService{
		DB: db, Orders: orders, Tables: tables, History: history,
		Dispatcher: dispatcher,
	}
}

// CompletePayment ปิดบิลโต๊ะ+session
// session ที่ไม่มีออเดอร์ค้าง = ปิด 0 ออเดอร์ แต่โต๊ะยังเปลี่ยนเป็น
// needs_clearing (ตั้งใจ — ปิดบิลกับล้างโต๊ะเป็นคนละเรื่องกัน)
// session_id ของโต๊ะคงไว้จนกด clear เผื่อใบเสร็จยังต้องอ้างถึง
func (s *PaymentService) CompletePayment(tableID uint, sessionID string) (bool, error) {
	now := time.Now()
	var completed []dispatch.OrderCompletedEvent

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		table, err := s.Tables.GetTableTx(tx, tableID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: table %d", ErrNotFound, tableID)
			}
			return err
		}

		orders, err := s.Orders.ListActiveOrders(tx, tableID, sessionID)
		if err != nil {
			return err
		}

		for _, o := range orders {
			if _, err := s.Orders.MarkCompleted(tx, o.ID, now); err != nil {
				return err
			}

			// อ่านกลับทั้งก้อนหลังปิด ให้ snapshot ที่ลง history เป็นค่าจริง
			fresh, err := s.Orders.GetOrderTx(tx, o.ID)
			if err != nil {
				return err
			}
			items, err := s.Orders.GetOrderItemsTx(tx, o.ID)
			if err != nil {
				return err
			}

			// เคย archive แล้วข้ามเงียบ ๆ — เรียกซ้ำไม่ error ไม่ซ้ำแถว
			if _, err := s.History.Archive(tx, fresh, table.Name, items); err != nil {
				return err
			}

			completed = append(completed, dispatch.NewEvent(fresh, items))
		}

		return s.Tables.UpdateStatus(tx, tableID, entity.TableNeedsClearing)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	// หลัง commit แล้วเท่านั้น — fire-and-forget ต่อออเดอร์
	// ล้มก็แค่ log ฝั่ง consumer dedup เองอยู่แล้ว ไม่มีผลกับบิลที่ปิดไป
	for _, ev := range completed {
		go func(ev dispatch.OrderCompletedEvent) {
			if err := s.Dispatcher.OrderCompleted(ev); err != nil {
				log.Printf("dispatch order %d failed: %v", ev.OrderID, err)
			}
		}(ev)
	}

	return true, nil
}
