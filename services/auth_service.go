package services

import (
	"errors"
	"strings"
	"time"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/entity"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/repository"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService: login ของพนักงาน (แคชเชียร์/ครัว/แอดมิน)
// ลูกค้าไม่ต้อง login — สั่งผ่าน session ของโต๊ะ
type AuthService struct {
	staffRepo *repository.StaffRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.StaffRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{staffRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

var ErrInvalidCredentials = errors.New("invalid credentials")

func (s *AuthService) Login(email, password string) (string, *entity.Staff, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	staff, err := s.staffRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(staff.ID, staff.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, staff, nil
}

func (s *AuthService) GetStaff(id uint) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return staff, nil
}
