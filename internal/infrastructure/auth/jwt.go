package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mentorhub/internal/domain/user"
	"mentorhub/internal/shared/biztime"
)

// Claims are the access token claims. UserSID is the public account
// identifier; the numeric database ID never leaves the process.
type Claims struct {
	UserSID string    `json:"user_sid"`
	Email   string    `json:"email"`
	Role    user.Role `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate issues a signed access token for the account.
func (s *JWTService) Generate(u *user.User) (string, time.Time, error) {
	now := biztime.NowUTC()
	expiresAt := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		UserSID: u.SID(),
		Email:   u.Email(),
		Role:    u.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses and validates a token string.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
