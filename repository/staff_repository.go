package repository

import (
	"strings"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"

	"gorm.io/gorm"
)

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) GetByEmail(email string) (*entity.Staff, error) {
	var s entity.Staff
	if err := r.DB.Where("email = ?", strings.ToLower(email)).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) GetByID(id uint) (*entity.Staff, error) {
	var s entity.Staff
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
