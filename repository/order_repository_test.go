package repository

import (
	"testing"
	"time"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"

	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, sessionID string, totals ...int64) *entity.Order {
	t.Helper()

	order := entity.Order{TableID: 1, SessionID: sessionID, Status: entity.OrderActive}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	for _, v := range totals {
		oi := entity.OrderItem{
			OrderID: order.ID, MenuItemID: 1,
			Qty: 1, UnitPrice: v, Total: v, Status: entity.ItemPending,
		}
		if err := db.Create(&oi).Error; err != nil {
			t.Fatalf("create item: %v", err)
		}
	}
	return &order
}

func TestRecomputeTotalDerivesFromRows(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewOrderRepository(db)
	order := seedOrder(t, db, "s-1", 100, 50, 30)

	got, err := repo.RecomputeTotal(db, order.ID)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if got != 180 {
		t.Fatalf("total = %d, want 180", got)
	}

	// reject แถวกลางแล้วคิดใหม่ — ลดลงตาม ไม่สนค่าเดิมใน column
	db.Model(&entity.OrderItem{}).
		Where("order_id = ? AND unit_price = 50", order.ID).
		Update("status", entity.ItemRejected)

	got, err = repo.RecomputeTotal(db, order.ID)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if got != 130 {
		t.Fatalf("total = %d, want 130", got)
	}

	var stored entity.Order
	db.First(&stored, order.ID)
	if stored.TotalAmount != 130 {
		t.Fatalf("stored total = %d, want 130", stored.TotalAmount)
	}
}

func TestRecomputeTotalEmptyOrder(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewOrderRepository(db)
	order := seedOrder(t, db, "s-1")

	got, err := repo.RecomputeTotal(db, order.ID)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if got != 0 {
		t.Fatalf("total = %d, want 0", got)
	}
}

func TestMarkCompletedGuardsOnActive(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewOrderRepository(db)
	order := seedOrder(t, db, "s-1", 40)

	affected, err := repo.MarkCompleted(db, order.ID, time.Now())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}

	// ปิดซ้ำ — ไม่มีแถว active ให้ปิดแล้ว
	affected, err = repo.MarkCompleted(db, order.ID, time.Now())
	if err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected = %d, want 0", affected)
	}
}

func TestListActiveOrdersFiltersSessionAndStatus(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewOrderRepository(db)

	a := seedOrder(t, db, "s-1", 10)
	seedOrder(t, db, "s-2", 20)
	done := seedOrder(t, db, "s-1", 30)
	db.Model(&entity.Order{}).Where("id = ?", done.ID).Update("status", entity.OrderCompleted)

	got, err := repo.ListActiveOrders(db, 1, "s-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("got %d orders, want only the active s-1 order", len(got))
	}
}
