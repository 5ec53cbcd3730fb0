package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload เฉพาะตอนต้องการชื่อเมนู

	Qty int `gorm:"not null" json:"qty"`

	// snapshot ราคา ณ ตอนสั่ง — เมนูขึ้นราคาทีหลังไม่กระทบบิลเดิม
	UnitPrice int64 `gorm:"not null" json:"unitPrice"`
	Total     int64 `gorm:"not null" json:"total"` // qty * unit_price

	// ตัวเลือก + โน้ตจากลูกค้า คั่นด้วย | เช่น "เผ็ดน้อย|ไม่ใส่ผัก"
	CustomerRequest string `json:"customerRequest"`

	Status ItemStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}
