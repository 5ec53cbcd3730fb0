package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name   string `gorm:"not null" json:"name"`
	Detail string `json:"detail"`
	Price  int64  `gorm:"not null" json:"price"`

	Available bool `gorm:"not null;default:true" json:"available"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
