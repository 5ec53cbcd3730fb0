package repository

import (
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// append-only archive ของออเดอร์ที่ปิดแล้ว
// กันซ้ำสองชั้น: เช็ค Contains ก่อน + unique index บน order_id
// (pre-check อย่างเดียว race ได้ถ้าปิดบิลพร้อมกันสองคน)
type HistoryRepository struct {
	DB *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{DB: db}
}

func (r *HistoryRepository) Contains(tx *gorm.DB, orderID uint) (bool, error) {
	var cnt int64
	if err := tx.Model(&entity.OrderHistory{}).
		Where("order_id = ?", orderID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// Archive คัดลอกออเดอร์ + รายการอาหารลง history
// no-op ถ้าเคย archive แล้ว; คืน true เฉพาะตอนที่เขียนจริง
func (r *HistoryRepository) Archive(tx *gorm.DB, order *entity.Order, tableName string, items []entity.OrderItem) (bool, error) {
	exists, err := r.Contains(tx, order.ID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	completedAt := order.UpdatedAt
	if order.CompletedAt != nil {
		completedAt = *order.CompletedAt
	}

	hist := entity.OrderHistory{
		OrderID:        order.ID,
		TableID:        order.TableID,
		TableName:      tableName,
		SessionID:      order.SessionID,
		TotalAmount:    order.TotalAmount,
		OrderCreatedAt: order.CreatedAt,
		CompletedAt:    completedAt,
	}
	// ถ้าแพ้ race กับ settlement อีกตัว ON CONFLICT จะเงียบ → ถือว่า archive แล้ว
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		DoNothing: true,
	}).Create(&hist)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	for _, it := range items {
		var menuName string
		if err := tx.Model(&entity.MenuItem{}).
			Select("name").Where("id = ?", it.MenuItemID).
			Scan(&menuName).Error; err != nil {
			return false, err
		}
		hi := entity.OrderHistoryItem{
			OrderHistoryID:  hist.ID,
			OrderID:         order.ID,
			MenuItemID:      it.MenuItemID,
			MenuName:        menuName,
			Qty:             it.Qty,
			UnitPrice:       it.UnitPrice,
			Total:           it.Total,
			CustomerRequest: it.CustomerRequest,
			Status:          it.Status,
		}
		if err := tx.Create(&hi).Error; err != nil {
			return false, err
		}
	}
	return true, nil
}

func (r *HistoryRepository) GetHistory(orderID uint) (*entity.OrderHistory, []entity.OrderHistoryItem, error) {
	var h entity.OrderHistory
	if err := r.DB.Where("order_id = ?", orderID).First(&h).Error; err != nil {
		return nil, nil, err
	}
	var items []entity.OrderHistoryItem
	if err := r.DB.Where("order_history_id = ?", h.ID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, nil, err
	}
	return &h, items, nil
}

func (r *HistoryRepository) CountForOrder(orderID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.OrderHistory{}).Where("order_id = ?", orderID).Count(&cnt).Error
	return cnt, err
}
