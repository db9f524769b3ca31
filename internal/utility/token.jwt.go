package utility

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"page_pilot/internal/common"
)

// JwtClaims chứa data được mã hóa trong JWT token.
type JwtClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// CreateToken tạo JWT token cho user, ký bằng HMAC-SHA256.
// expireDays là số ngày token còn hiệu lực.
func CreateToken(secret string, userID string, expireDays int) (string, error) {
	now := time.Now()
	claims := JwtClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.AddDate(0, 0, expireDays)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, nil)
	}
	return signed, nil
}

// ParseToken xác thực chữ ký và thời hạn của JWT token, trả về claims.
func ParseToken(secret string, tokenString string) (*JwtClaims, error) {
	claims := new(JwtClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
