package services

// Catalog คือเมนู (read-only) — core ใช้แค่ตอน insert order item:
// เช็คว่าเมนูมีจริง + ดึงราคามา snapshot แล้วไม่อ่านซ้ำอีกเลย
type Catalog interface {
	ItemExists(itemID uint) (bool, error)
	GetPrice(itemID uint) (int64, error)
}
