package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims ของพนักงาน
type Claims struct {
	StaffID uint   `json:"staffId"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(staffID uint, role string, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		StaffID: staffID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
