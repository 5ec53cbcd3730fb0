package repository

import (
	"time"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) GetTable(tableID uint) (*entity.Table, error) {
	return r.GetTableTx(r.DB, tableID)
}

func (r *TableRepository) GetTableTx(tx *gorm.DB, tableID uint) (*entity.Table, error) {
	var t entity.Table
	if err := tx.First(&t, tableID).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) TableExists(tableID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Table{}).Where("id = ?", tableID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *TableRepository) ListTables() ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Order("name ASC").Find(&out).Error
	return out, err
}

// เปลี่ยนสถานะอย่างเดียว ไม่แตะ session
func (r *TableRepository) UpdateStatus(tx *gorm.DB, tableID uint, status entity.TableStatus) error {
	return tx.Model(&entity.Table{}).
		Where("id = ?", tableID).
		Update("status", status).Error
}

// เปิด session ใหม่: set ทั้งสถานะและ session_id ในคำสั่งเดียว
func (r *TableRepository) AssignSession(tx *gorm.DB, tableID uint, status entity.TableStatus, sessionID string) error {
	return tx.Model(&entity.Table{}).
		Where("id = ?", tableID).
		Updates(map[string]any{"status": status, "session_id": sessionID}).Error
}

// ล้างโต๊ะ: กลับ available + session หลุด + ล้างเวลาขอบิล
func (r *TableRepository) ClearTable(tx *gorm.DB, tableID uint) error {
	return tx.Model(&entity.Table{}).
		Where("id = ?", tableID).
		Updates(map[string]any{
			"status":      entity.TableAvailable,
			"session_id":  nil,
			"checkout_at": nil,
		}).Error
}

func (r *TableRepository) UpdateCheckoutTime(tableID uint, at time.Time) error {
	return r.DB.Model(&entity.Table{}).
		Where("id = ?", tableID).
		Update("checkout_at", at).Error
}
