package services

import (
	"errors"
	"testing"
	"time"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"
)

func TestCreateOrderRequiresTable(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	svc := newOrderService(db)

	if _, err := svc.CreateOrder(999, "s-1"); !errors.Is(err, ErrBadReference) {
		t.Fatalf("err = %v, want ErrBadReference", err)
	}
}

func TestAddOrderItemValidatesBeforeInsert(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	svc := newOrderService(db)
	tbl := makeTable(t, db, "T1", entity.TableOccupied, ptr("s-1"))
	menu := makeMenuItem(t, db, "ข้าวผัด", 50)

	orderID, err := svc.CreateOrder(tbl.ID, "s-1")
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	// ออเดอร์ไม่มีจริง
	if err := svc.AddOrderItem(999, menu.ID, 1, 0, ""); !errors.Is(err, ErrBadReference) {
		t.Fatalf("missing order err = %v, want ErrBadReference", err)
	}
	// เมนูไม่มีจริง
	if err := svc.AddOrderItem(orderID, 999, 1, 0, ""); !errors.Is(err, ErrBadReference) {
		t.Fatalf("missing menu err = %v, want ErrBadReference", err)
	}

	// ต้องไม่มี item หลุดเข้า DB จากสอง call ที่พังไป
	var cnt int64
	db.Model(&entity.OrderItem{}).Count(&cnt)
	if cnt != 0 {
		t.Fatalf("order_items count = %d, want 0", cnt)
	}
}

func TestAddOrderItemSnapshotsPrice(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	svc := newOrderService(db)
	tbl := makeTable(t, db, "T1", entity.TableOccupied, ptr("s-1"))
	menu := makeMenuItem(t, db, "ต้มยำ", 120)

	orderID, err := svc.CreateOrder(tbl.ID, "s-1")
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := svc.AddOrderItem(orderID, menu.ID, 2, 0, "เผ็ดน้อย|ไม่ใส่เห็ด"); err != nil {
		t.Fatalf("add item: %v", err)
	}

	// ขึ้นราคาเมนูทีหลัง — บิลเดิมต้องไม่ขยับ
	db.Model(&entity.MenuItem{}).Where("id = ?", menu.ID).Update("price", 999)

	var oi entity.OrderItem
	if err := db.Where("order_id = ?", orderID).First(&oi).Error; err != nil {
		t.Fatalf("load item: %v", err)
	}
	if oi.UnitPrice != 120 {
		t.Fatalf("unit_price = %d, want 120", oi.UnitPrice)
	}
	if oi.Total != 240 {
		t.Fatalf("total = %d, want 240", oi.Total)
	}
	if got := storedTotal(t, db, orderID); got != 240 {
		t.Fatalf("order total = %d, want 240", got)
	}
}

func TestRejectedItemExcludedFromTotal(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	svc := newOrderService(db)
	tbl := makeTable(t, db, "T1", entity.TableOccupied, ptr("s-1"))
	m100 := makeMenuItem(t, db, "a", 100)
	m50 := makeMenuItem(t, db, "b", 50)
	m30 := makeMenuItem(t, db, "c", 30)

	orderID, err := svc.CreateOrder(tbl.ID, "s-1")
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	for _, m := range []*entity.MenuItem{m100, m50, m30} {
		if err := svc.AddOrderItem(orderID, m.ID, 1, 0, ""); err != nil {
			t.Fatalf("add item: %v", err)
		}
	}
	if got := storedTotal(t, db, orderID); got != 180 {
		t.Fatalf("total = %d, want 180", got)
	}

	var fifty entity.OrderItem
	if err := db.Where("order_id = ? AND unit_price = 50", orderID).First(&fifty).Error; err != nil {
		t.Fatalf("load item: %v", err)
	}

	if err := svc.SetItemStatus(fifty.ID, entity.ItemRejected); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if got := storedTotal(t, db, orderID); got != 130 {
		t.Fatalf("total after reject = %d, want 130", got)
	}

	// ยกเลิก reject → กลับมานับเหมือนเดิม
	if err := svc.SetItemStatus(fifty.ID, entity.ItemPending); err != nil {
		t.Fatalf("unreject: %v", err)
	}
	if got := storedTotal(t, db, orderID); got != 180 {
		t.Fatalf("total after unreject = %d, want 180", got)
	}
}

func TestSetItemStatusRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	svc := newOrderService(db)
	tbl := makeTable(t, db, "T1", entity.TableOccupied, ptr("s-1"))
	menu := makeMenuItem(t, db, "a", 100)

	orderID, _ := svc.CreateOrder(tbl.ID, "s-1")
	if err := svc.AddOrderItem(orderID, menu.ID, 1, 0, ""); err != nil {
		t.Fatalf("add item: %v", err)
	}
	var oi entity.OrderItem
	db.Where("order_id = ?", orderID).First(&oi)

	if err := svc.SetItemStatus(oi.ID, entity.ItemStatus("rejceted")); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
	if err := svc.SetItemStatus(999, entity.ItemReady); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing item err = %v, want ErrNotFound", err)
	}

	// สถานะอื่นที่ไม่ใช่ rejected นับเข้า total หมด
	for _, s := range []entity.ItemStatus{entity.ItemPreparing, entity.ItemReady, entity.ItemServed} {
		if err := svc.SetItemStatus(oi.ID, s); err != nil {
			t.Fatalf("set %s: %v", s, err)
		}
		if got := storedTotal(t, db, orderID); got != 100 {
			t.Fatalf("total with status %s = %d, want 100", s, got)
		}
	}
}

func TestGetItemsWithStatusDefaultsPending(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	svc := newOrderService(db)
	tbl := makeTable(t, db, "T1", entity.TableOccupied, ptr("s-1"))
	menu := makeMenuItem(t, db, "ผัดไทย", 80)

	orderID, _ := svc.CreateOrder(tbl.ID, "s-1")
	if err := svc.AddOrderItem(orderID, menu.ID, 1, 0, ""); err != nil {
		t.Fatalf("add item: %v", err)
	}
	// เขียน status ว่างตรง ๆ เหมือนข้อมูลเก่า — view ต้อง default เป็น pending
	db.Model(&entity.OrderItem{}).Where("order_id = ?", orderID).Update("status", "")

	views, err := svc.GetItemsWithStatus(orderID)
	if err != nil {
		t.Fatalf("get items: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("len = %d, want 1", len(views))
	}
	if views[0].Status != entity.ItemPending {
		t.Fatalf("status = %q, want pending", views[0].Status)
	}
	if views[0].MenuName != "ผัดไทย" {
		t.Fatalf("menu name = %q", views[0].MenuName)
	}
}

func TestGetTableOrdersSessionFallback(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	svc := newOrderService(db)
	tbl := makeTable(t, db, "T1", entity.TableOccupied, ptr("s-2"))
	menu := makeMenuItem(t, db, "a", 10)

	// สอง session คนละมื้อบนโต๊ะเดียวกัน
	o1, _ := svc.CreateOrder(tbl.ID, "s-1")
	o2, _ := svc.CreateOrder(tbl.ID, "s-2")
	for _, id := range []uint{o1, o2} {
		if err := svc.AddOrderItem(id, menu.ID, 1, 0, ""); err != nil {
			t.Fatalf("add item: %v", err)
		}
	}

	// filter ตาม session
	s1 := "s-1"
	got, err := svc.GetTableOrders(tbl.ID, &s1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 || got[0].Order.ID != o1 {
		t.Fatalf("session filter returned %d orders", len(got))
	}

	// ไม่ส่ง session = ได้ทุก session (fallback ตั้งใจ)
	all, err := svc.GetTableOrders(tbl.ID, nil)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("fallback returned %d orders, want 2", len(all))
	}
}

func TestGetOrdersByDateRangeRecomputesLive(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	svc := newOrderService(db)
	tbl := makeTable(t, db, "T1", entity.TableOccupied, ptr("s-1"))
	menu := makeMenuItem(t, db, "a", 70)

	orderID, _ := svc.CreateOrder(tbl.ID, "s-1")
	if err := svc.AddOrderItem(orderID, menu.ID, 2, 0, ""); err != nil {
		t.Fatalf("add item: %v", err)
	}

	// มีคนแก้ column ตรง ๆ นอกระบบ → report ต้องไม่เชื่อค่านี้
	db.Model(&entity.Order{}).Where("id = ?", orderID).UpdateColumn("total_amount", 12345)

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	out, err := svc.GetOrdersByDateRange(start, end)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Order.TotalAmount != 140 {
		t.Fatalf("live total = %d, want 140", out[0].Order.TotalAmount)
	}
}

func ptr(s string) *string { return &s }
