package repository

import (
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"

	"gorm.io/gorm"
)

// ฝั่ง core ใช้แค่ ItemExists + GetPrice (implements services.Catalog)
// ส่วน CRUD เมนูเต็ม ๆ อยู่ระบบ admin แยกต่างหาก
type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ItemExists(itemID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.MenuItem{}).Where("id = ?", itemID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *MenuRepository) GetPrice(itemID uint) (int64, error) {
	var row struct{ Price int64 }
	if err := r.DB.Model(&entity.MenuItem{}).
		Select("price").Where("id = ?", itemID).
		First(&row).Error; err != nil {
		return 0, err
	}
	return row.Price, nil
}

// หน้าเมนูลูกค้า (อ่านอย่างเดียว)
func (r *MenuRepository) ListAvailable() ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("available = ?", true).Order("category_id ASC, id ASC").Find(&out).Error
	return out, err
}
