package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TableService = state machine ของโต๊ะ + ที่เก็บ session
// session เกิดตอนลูกค้านั่ง (OpenSession) ตายตอนล้างโต๊ะ (ClearTable)
type TableService struct {
	DB   *gorm.DB
	Repo *repository.TableRepository
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository) *TableService {
	return &TableService{DB: db, Repo: repo}
}

func (s *TableService) ListTables() ([]entity.Table, error) {
	return s.Repo.ListTables()
}

func (s *TableService) GetTable(tableID uint) (*entity.Table, error) {
	t, err := s.Repo.GetTable(tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: table %d", ErrNotFound, tableID)
		}
		return nil, err
	}
	return t, nil
}

// session ปัจจุบันของโต๊ะ (SessionStore read)
func (s *TableService) CurrentSession(tableID uint) (string, error) {
	t, err := s.GetTable(tableID)
	if err != nil {
		return "", err
	}
	if t.SessionID == nil {
		return "", fmt.Errorf("%w: table %d has no session", ErrNotFound, tableID)
	}
	return *t.SessionID, nil
}

// ลูกค้านั่งโต๊ะ: available → occupied พร้อม session ใหม่
func (s *TableService) OpenSession(tableID uint) (string, error) {
	t, err := s.GetTable(tableID)
	if err != nil {
		return "", err
	}
	if !t.Status.CanTransitionTo(entity.TableOccupied) {
		return "", fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, entity.TableOccupied)
	}

	sessionID := uuid.NewString()
	if err := s.Repo.AssignSession(s.DB, tableID, entity.TableOccupied, sessionID); err != nil {
		return "", err
	}
	return sessionID, nil
}

// เปลี่ยนสถานะโต๊ะ (เรียกพนักงาน, ขอบิล, เริ่มคิดเงิน ฯลฯ)
// เช็ค 2 ชั้น: ค่าอยู่ใน enum + เดินตาม transition map เท่านั้น
// sessionID ส่งมาด้วยได้ตอนจะผูก session ใหม่ (ปกติใช้ OpenSession ดีกว่า)
func (s *TableService) UpdateStatus(tableID uint, status entity.TableStatus, sessionID *string) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	t, err := s.GetTable(tableID)
	if err != nil {
		return err
	}
	if !t.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, status)
	}

	// invariant: status กลุ่ม occupied ต้องมี session เสมอ
	if status.Occupied() && t.SessionID == nil && (sessionID == nil || *sessionID == "") {
		return fmt.Errorf("%w: %s requires a session", ErrInvalidTransition, status)
	}

	// กลับ available = ล้างโต๊ะ — session ต้องหลุดด้วยเสมอ
	// (invariant: available ห้ามมี session ค้าง)
	if status == entity.TableAvailable {
		return s.Repo.ClearTable(s.DB, tableID)
	}

	if sessionID != nil && *sessionID != "" {
		return s.Repo.AssignSession(s.DB, tableID, status, *sessionID)
	}
	return s.Repo.UpdateStatus(s.DB, tableID, status)
}

// ลูกค้ากดขอบิล — เก็บ timestamp เฉย ๆ ไม่ยุ่งกับสถานะ
func (s *TableService) UpdateCheckoutTime(tableID uint) error {
	ok, err := s.Repo.TableExists(tableID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: table %d", ErrNotFound, tableID)
	}
	return s.Repo.UpdateCheckoutTime(tableID, time.Now())
}

// ล้างโต๊ะหลังจ่ายเงิน: needs_clearing → available + ปล่อย session
func (s *TableService) ClearTable(tableID uint) error {
	t, err := s.GetTable(tableID)
	if err != nil {
		return err
	}
	if !t.Status.CanTransitionTo(entity.TableAvailable) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, entity.TableAvailable)
	}
	return s.Repo.ClearTable(s.DB, tableID)
}
