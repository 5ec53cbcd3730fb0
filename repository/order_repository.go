package repository

import (
	"time"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderTx(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) OrderExists(orderID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ออเดอร์ของโต๊ะ; sessionID=nil → เอาทุก session ที่เคยนั่งโต๊ะนี้
// (fallback แบบ "โชว์ทั้งหมด" ตั้งใจให้เป็นแบบนี้)
func (r *OrderRepository) ListOrdersForTable(tableID uint, sessionID *string) ([]entity.Order, error) {
	db := r.DB.Where("table_id = ?", tableID)
	if sessionID != nil && *sessionID != "" {
		db = db.Where("session_id = ?", *sessionID)
	}
	var out []entity.Order
	err := db.Order("id ASC").Find(&out).Error
	return out, err
}

// ออเดอร์ active ของ session นี้ — ใช้ตอนปิดบิล (อ่านใน tx เดียวกับที่ปิด)
func (r *OrderRepository) ListActiveOrders(tx *gorm.DB, tableID uint, sessionID string) ([]entity.Order, error) {
	var out []entity.Order
	err := tx.Where("table_id = ? AND session_id = ? AND status = ?",
		tableID, sessionID, entity.OrderActive).
		Order("id ASC").Find(&out).Error
	return out, err
}

// ปิดออเดอร์แบบมี guard — นับเฉพาะแถวที่ยัง active อยู่จริง
func (r *OrderRepository) MarkCompleted(tx *gorm.DB, orderID uint, at time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.OrderActive).
		Updates(map[string]any{
			"status":       entity.OrderCompleted,
			"bill_status":  entity.BillChecked,
			"completed_at": at,
		})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) ListOrdersByDateRange(start, end time.Time) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("created_at >= ? AND created_at < ?", start, end).
		Order("id ASC").Find(&out).Error
	return out, err
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItem(tx *gorm.DB, orderItemID uint) (*entity.OrderItem, error) {
	var oi entity.OrderItem
	if err := tx.First(&oi, orderItemID).Error; err != nil {
		return nil, err
	}
	return &oi, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	return r.GetOrderItemsTx(r.DB, orderID)
}

func (r *OrderRepository) GetOrderItemsTx(tx *gorm.DB, orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := tx.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *OrderRepository) UpdateItemStatus(tx *gorm.DB, orderItemID uint, status entity.ItemStatus) error {
	return tx.Model(&entity.OrderItem{}).
		Where("id = ?", orderItemID).
		Update("status", status).Error
}

// กฎหลักของ ledger: total_amount ไม่เชื่อค่าที่สะสมไว้ เด็ดขาด
// รวมใหม่จากแถว item จริงทุกครั้ง (ตัด rejected ออก) แล้วเขียนทับใน tx เดิม
func (r *OrderRepository) RecomputeTotal(tx *gorm.DB, orderID uint) (int64, error) {
	var row struct{ Total int64 }
	if err := tx.Model(&entity.OrderItem{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("order_id = ? AND (status IS NULL OR status <> ?)", orderID, entity.ItemRejected).
		Scan(&row).Error; err != nil {
		return 0, err
	}
	if err := tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("total_amount", row.Total).Error; err != nil {
		return 0, err
	}
	return row.Total, nil
}

// GET รายการอาหารของออเดอร์ พร้อมชื่อเมนู (join) สำหรับหน้าครัว/บิล
type OrderItemView struct {
	ID              uint              `json:"id"`
	OrderID         uint              `json:"orderId"`
	MenuItemID      uint              `json:"menuItemId"`
	MenuName        string            `json:"menuName"`
	Qty             int               `json:"qty"`
	UnitPrice       int64             `json:"unitPrice"`
	Total           int64             `json:"total"`
	CustomerRequest string            `json:"customerRequest"`
	Status          entity.ItemStatus `json:"status"`
}

func (r *OrderRepository) ItemsWithMenu(orderID uint) ([]OrderItemView, error) {
	var rows []OrderItemView
	err := r.DB.Table("order_items AS oi").
		Select("oi.id, oi.order_id, oi.menu_item_id, m.name AS menu_name, oi.qty, "+
			"oi.unit_price, oi.total, oi.customer_request, "+
			"COALESCE(NULLIF(oi.status, ''), 'pending') AS status").
		Joins("LEFT JOIN menu_items m ON m.id = oi.menu_item_id").
		Where("oi.order_id = ? AND oi.deleted_at IS NULL", orderID).
		Order("oi.id ASC").
		Scan(&rows).Error
	return rows, err
}
