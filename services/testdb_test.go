package services

import (
	"path/filepath"
	"testing"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pos_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Staff{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.OrderHistory{}, &entity.OrderHistoryItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func makeTable(t *testing.T, db *gorm.DB, name string, status entity.TableStatus, sessionID *string) *entity.Table {
	t.Helper()
	tbl := entity.Table{Name: name, Status: status, SessionID: sessionID}
	if err := db.Create(&tbl).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	return &tbl
}

func makeMenuItem(t *testing.T, db *gorm.DB, name string, price int64) *entity.MenuItem {
	t.Helper()
	m := entity.MenuItem{Name: name, Price: price, Available: true}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return &m
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewTableRepository(db),
		repository.NewMenuRepository(db))
}

func storedTotal(t *testing.T, db *gorm.DB, orderID uint) int64 {
	t.Helper()
	var o entity.Order
	if err := db.First(&o, orderID).Error; err != nil {
		t.Fatalf("load order %d: %v", orderID, err)
	}
	return o.TotalAmount
}
