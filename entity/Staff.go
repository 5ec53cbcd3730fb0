package entity

import (
	"gorm.io/gorm"
)

type Staff struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash
	Name     string `json:"name"`

	// admin / cashier / kitchen
	Role string `gorm:"not null;default:cashier" json:"role"`
}
