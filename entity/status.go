package entity

// สถานะทั้งหมดเก็บเป็น string column ตรง ๆ (ไม่ใช้ lookup table)
// และเป็น closed enum — ค่าแปลก ๆ จาก caller จะถูกปฏิเสธตั้งแต่ชั้น service

type TableStatus string

const (
	TableAvailable      TableStatus = "available"
	TableOccupied       TableStatus = "occupied"
	TableCalling        TableStatus = "calling"
	TableNeedsCheckout  TableStatus = "needs_checkout"
	TableWaitingPayment TableStatus = "waiting_payment"
	TableCheckout       TableStatus = "checkout"
	TableNeedsClearing  TableStatus = "needs_clearing"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableOccupied, TableCalling, TableNeedsCheckout,
		TableWaitingPayment, TableCheckout, TableNeedsClearing:
		return true
	}
	return false
}

// Occupied คือกลุ่มสถานะที่มีลูกค้านั่งอยู่ → ต้องมี session_id เสมอ
func (s TableStatus) Occupied() bool {
	switch s {
	case TableOccupied, TableCalling, TableNeedsCheckout,
		TableWaitingPayment, TableCheckout, TableNeedsClearing:
		return true
	}
	return false
}

// transition map: กลุ่ม occupied สลับกันเองได้อิสระ (เรียกพนักงาน, ขอบิล,
// เริ่มคิดเงิน) และทุกสถานะที่นั่งอยู่ตกลง needs_clearing ได้
// เพราะแคชเชียร์ปิดบิลได้จากสถานะไหนก็ตาม
var tableTransitions = map[TableStatus][]TableStatus{
	TableAvailable:      {TableOccupied},
	TableOccupied:       {TableCalling, TableNeedsCheckout, TableWaitingPayment, TableCheckout, TableNeedsClearing},
	TableCalling:        {TableOccupied, TableNeedsCheckout, TableWaitingPayment, TableCheckout, TableNeedsClearing},
	TableNeedsCheckout:  {TableOccupied, TableCalling, TableWaitingPayment, TableCheckout, TableNeedsClearing},
	TableWaitingPayment: {TableOccupied, TableCheckout, TableNeedsClearing},
	TableCheckout:       {TableOccupied, TableWaitingPayment, TableNeedsClearing},
	TableNeedsClearing:  {TableAvailable},
}

func (s TableStatus) CanTransitionTo(next TableStatus) bool {
	for _, t := range tableTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type OrderStatus string

const (
	OrderActive    OrderStatus = "active"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
	OrderRejected  OrderStatus = "rejected"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderActive, OrderCompleted, OrderCancelled, OrderRejected:
		return true
	}
	return false
}

type ItemStatus string

const (
	ItemPending   ItemStatus = "pending"
	ItemPreparing ItemStatus = "preparing"
	ItemReady     ItemStatus = "ready"
	ItemServed    ItemStatus = "served"
	ItemRejected  ItemStatus = "rejected"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemPending, ItemPreparing, ItemReady, ItemServed, ItemRejected:
		return true
	}
	return false
}

type BillStatus string

const (
	BillUnchecked BillStatus = "unchecked"
	BillChecked   BillStatus = "checked"
)
