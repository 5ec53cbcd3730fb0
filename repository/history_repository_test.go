package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hist_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.MenuItem{}, &entity.Order{}, &entity.OrderItem{},
		&entity.OrderHistory{}, &entity.OrderHistoryItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func sampleOrder(t *testing.T, db *gorm.DB) (*entity.Order, []entity.OrderItem) {
	t.Helper()

	menu := entity.MenuItem{Name: "ข้าวมันไก่", Price: 55, Available: true}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatalf("create menu: %v", err)
	}

	now := time.Now()
	order := entity.Order{
		TableID: 1, SessionID: "s-1",
		Status: entity.OrderCompleted, TotalAmount: 110, CompletedAt: &now,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	items := []entity.OrderItem{{
		OrderID: order.ID, MenuItemID: menu.ID,
		Qty: 2, UnitPrice: 55, Total: 110, Status: entity.ItemServed,
	}}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("create items: %v", err)
	}
	return &order, items
}

func TestArchiveWritesOnce(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewHistoryRepository(db)
	order, items := sampleOrder(t, db)

	ok, err := repo.Contains(db, order.ID)
	if err != nil || ok {
		t.Fatalf("contains before archive = %v err=%v", ok, err)
	}

	wrote, err := repo.Archive(db, order, "T1", items)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if !wrote {
		t.Fatal("first archive should write")
	}

	// เรียกซ้ำ = no-op เงียบ ๆ
	wrote, err = repo.Archive(db, order, "T1", items)
	if err != nil {
		t.Fatalf("re-archive: %v", err)
	}
	if wrote {
		t.Fatal("second archive should be a no-op")
	}

	cnt, err := repo.CountForOrder(order.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if cnt != 1 {
		t.Fatalf("history rows = %d, want 1", cnt)
	}

	hist, histItems, err := repo.GetHistory(order.ID)
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if hist.TotalAmount != 110 || hist.TableName != "T1" || hist.SessionID != "s-1" {
		t.Fatalf("history = %+v", hist)
	}
	if len(histItems) != 1 || histItems[0].MenuName != "ข้าวมันไก่" {
		t.Fatalf("history items = %+v", histItems)
	}
}

// อ่านชื่อเมนูพังกลางทาง → Archive ต้อง error ออกมา ไม่เขียนฉบับแหว่ง ๆ
func TestArchiveFailsOnMenuLookupError(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewHistoryRepository(db)
	order, items := sampleOrder(t, db)

	if err := db.Migrator().DropTable(&entity.MenuItem{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	if _, err := repo.Archive(db, order, "T1", items); err == nil {
		t.Fatal("archive should surface the menu lookup error")
	}

	var itemCnt int64
	db.Model(&entity.OrderHistoryItem{}).Count(&itemCnt)
	if itemCnt != 0 {
		t.Fatalf("history items = %d, want 0 after failed archive", itemCnt)
	}
}

// จำลองแพ้ race: มีแถว history โผล่มาก่อนแล้ว (เช็คจาก unique index)
func TestArchiveSurvivesExistingRow(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewHistoryRepository(db)
	order, items := sampleOrder(t, db)

	pre := entity.OrderHistory{OrderID: order.ID, TotalAmount: 110}
	if err := db.Create(&pre).Error; err != nil {
		t.Fatalf("preinsert: %v", err)
	}

	wrote, err := repo.Archive(db, order, "T1", items)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if wrote {
		t.Fatal("archive over existing row should be a no-op")
	}

	cnt, _ := repo.CountForOrder(order.ID)
	if cnt != 1 {
		t.Fatalf("history rows = %d, want 1", cnt)
	}
}
