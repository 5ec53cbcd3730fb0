package entity

import (
	"time"

	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	Name   string      `gorm:"uniqueIndex;not null" json:"name"`
	Status TableStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`

	// session ของลูกค้าที่นั่งอยู่ตอนนี้; เป็น NULL เฉพาะตอนโต๊ะว่าง
	// จ่ายเงินแล้วยังไม่ล้าง session — เคลียร์ตอนกด clear โต๊ะเท่านั้น
	SessionID *string `gorm:"type:varchar(64);index" json:"sessionId"`

	// เวลาที่ลูกค้ากดขอบิล (ไว้ดู service time ไม่เกี่ยวกับ flow หลัก)
	CheckoutAt *time.Time `json:"checkoutAt"`

	Orders []Order `json:"-"`
}
