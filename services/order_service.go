package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/repository"

	"gorm.io/gorm"
)

// OrderService เป็น ledger ของออเดอร์: สร้างออเดอร์ เพิ่มรายการ
// และดูแลให้ total_amount ตรงกับแถว item เสมอ (recompute ทุก write)
type OrderService struct {
	DB      *gorm.DB
	Repo    *repository.OrderRepository
	Tables  *repository.TableRepository
	Catalog Catalog
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository,
	tables *repository.TableRepository, catalog Catalog) *OrderService {
	return &OrderService{DB: db, Repo: repo, Tables: tables, Catalog: catalog}
}

// ----- Create -----

// สร้างออเดอร์เปล่าใต้ session ของโต๊ะ (total เริ่ม 0)
func (s *OrderService) CreateOrder(tableID uint, sessionID string) (uint, error) {
	ok, err := s.Tables.TableExists(tableID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: table %d", ErrBadReference, tableID)
	}

	order := entity.Order{
		TableID:     tableID,
		SessionID:   sessionID,
		Status:      entity.OrderActive,
		BillStatus:  entity.BillUnchecked,
		TotalAmount: 0,
	}
	if err := s.Repo.CreateOrder(s.DB, &order); err != nil {
		return 0, err
	}
	return order.ID, nil
}

// ----- Items -----

// เพิ่มรายการอาหารเข้าออเดอร์
// unitPrice <= 0 → snapshot ราคาจาก Catalog ณ ตอนนี้ (ไม่ตามราคาเมนูทีหลัง)
// validate ก่อนเขียนทั้งหมด — order/เมนูไม่มีจริง = หยุดเลย ไม่ insert
func (s *OrderService) AddOrderItem(orderID, itemID uint, qty int, unitPrice int64, customerRequest string) error {
	if qty <= 0 {
		return fmt.Errorf("%w: qty must be positive", ErrBadReference)
	}

	ok, err := s.Repo.OrderExists(orderID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: order %d", ErrBadReference, orderID)
	}

	ok, err = s.Catalog.ItemExists(itemID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: menu item %d", ErrBadReference, itemID)
	}

	if unitPrice <= 0 {
		unitPrice, err = s.Catalog.GetPrice(itemID)
		if err != nil {
			return err
		}
	}

	// insert + recompute อยู่ใน tx เดียวกัน total จะไม่หลุด sync กับ item
	return s.DB.Transaction(func(tx *gorm.DB) error {
		oi := entity.OrderItem{
			OrderID:         orderID,
			MenuItemID:      itemID,
			Qty:             qty,
			UnitPrice:       unitPrice,
			Total:           unitPrice * int64(qty),
			CustomerRequest: customerRequest,
			Status:          entity.ItemPending,
		}
		if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
			return err
		}
		_, err := s.Repo.RecomputeTotal(tx, orderID)
		return err
	})
}

// เปลี่ยนสถานะรายการอาหาร (ครัวกด) แล้ว recompute total ของออเดอร์แม่
// สถานะนอก enum โดนปฏิเสธ; rejected เป็นตัวเดียวที่มีผลกับ total
func (s *OrderService) SetItemStatus(orderItemID uint, status entity.ItemStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		oi, err := s.Repo.GetOrderItem(tx, orderItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order item %d", ErrNotFound, orderItemID)
			}
			return err
		}
		if err := s.Repo.UpdateItemStatus(tx, orderItemID, status); err != nil {
			return err
		}
		_, err = s.Repo.RecomputeTotal(tx, oi.OrderID)
		return err
	})
}

// ----- Reads -----

func (s *OrderService) GetItemsWithStatus(orderID uint) ([]repository.OrderItemView, error) {
	return s.Repo.ItemsWithMenu(orderID)
}

type OrderWithItems struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

// ออเดอร์ของโต๊ะ — ไม่ส่ง sessionID มา = เอาทุก session ที่เคยใช้โต๊ะนี้
func (s *OrderService) GetTableOrders(tableID uint, sessionID *string) ([]OrderWithItems, error) {
	orders, err := s.Repo.ListOrdersForTable(tableID, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]OrderWithItems, 0, len(orders))
	for _, o := range orders {
		items, err := s.Repo.GetOrderItems(o.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, OrderWithItems{Order: o, Items: items})
	}
	return out, nil
}

// รายงานช่วงวันที่ — total คิดสดจาก item เสมอ ไม่เชื่อ column ที่เก็บไว้
// (กันเคสมีคนไปแก้ DB ตรง ๆ แล้ว column ค้าง)
func (s *OrderService) GetOrdersByDateRange(start, end time.Time) ([]OrderWithItems, error) {
	orders, err := s.Repo.ListOrdersByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	out := make([]OrderWithItems, 0, len(orders))
	for _, o := range orders {
		items, err := s.Repo.GetOrderItems(o.ID)
		if err != nil {
			return nil, err
		}
		var total int64
		for _, it := range items {
			if it.Status != entity.ItemRejected {
				total += it.Total
			}
		}
		o.TotalAmount = total
		out = append(out, OrderWithItems{Order: o, Items: items})
	}
	return out, nil
}
