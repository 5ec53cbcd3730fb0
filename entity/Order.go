package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	TableID uint  `gorm:"index;not null" json:"tableId"`
	Table   Table `json:"-"` // preload เฉพาะตอนต้องการชื่อโต๊ะ

	// snapshot ตอนสร้างออเดอร์ ไม่เปลี่ยนตามโต๊ะภายหลัง
	SessionID string `gorm:"type:varchar(64);index;not null" json:"sessionId"`

	Status     OrderStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	BillStatus BillStatus  `gorm:"type:varchar(20);not null;default:'unchecked'" json:"billStatus"`

	// derived เสมอ: recompute จาก order_items ทุกครั้งที่ item เปลี่ยน
	// ห้าม increment เอง (ดู OrderRepository.RecomputeTotal)
	TotalAmount int64 `json:"totalAmount"`

	CompletedAt *time.Time `json:"completedAt"`

	OrderItems []OrderItem `json:"-"`
}
