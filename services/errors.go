package services

import "errors"

// error หลักของ core — controller map เป็น HTTP code เอง
var (
	// อ้างถึงโต๊ะ/ออเดอร์/เมนูที่ไม่มีอยู่จริง ตอนจะเขียน → ไม่ insert อะไรเลย
	ErrBadReference = errors.New("invalid reference")

	// อ่านแล้วไม่เจอแถว
	ErrNotFound = errors.New("not found")

	// ค่าสถานะนอก enum (พิมพ์ผิด ฯลฯ)
	ErrInvalidStatus = errors.New("invalid status")

	// เปลี่ยนสถานะโต๊ะข้าม transition map
	ErrInvalidTransition = errors.New("invalid transition")

	// ปิดบิลไม่สำเร็จ — rollback หมดทั้งก้อน ไม่มีสถานะครึ่ง ๆ กลาง ๆ
	ErrSettlementFailed = errors.New("settlement failed")
)
