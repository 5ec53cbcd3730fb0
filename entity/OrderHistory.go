package entity

import (
	"time"

	"gorm.io/gorm"
)

// snapshot ของออเดอร์ที่ปิดแล้ว — append-only ไม่แก้ย้อนหลัง
// uniqueIndex บน order_id คือตัวกัน archive ซ้ำ (ดู HistoryRepository.Archive)
type OrderHistory struct {
	gorm.Model
	OrderID   uint   `gorm:"uniqueIndex;not null" json:"orderId"`
	TableID   uint   `gorm:"index" json:"tableId"`
	TableName string `json:"tableName"`
	SessionID string `gorm:"type:varchar(64);index" json:"sessionId"`

	TotalAmount int64 `json:"totalAmount"`

	OrderCreatedAt time.Time `json:"orderCreatedAt"`
	CompletedAt    time.Time `json:"completedAt"`

	Items []OrderHistoryItem `gorm:"foreignKey:OrderHistoryID" json:"-"`
}

type OrderHistoryItem struct {
	gorm.Model
	OrderHistoryID uint `gorm:"index;not null" json:"orderHistoryId"`
	OrderID        uint `gorm:"index;not null" json:"orderId"`

	MenuItemID uint   `json:"menuItemId"`
	MenuName   string `json:"menuName"`

	Qty             int        `json:"qty"`
	UnitPrice       int64      `json:"unitPrice"`
	Total           int64      `json:"total"`
	CustomerRequest string     `json:"customerRequest"`
	Status          ItemStatus `gorm:"type:varchar(20)" json:"status"`
}
