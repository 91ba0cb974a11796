package infrastructure

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mmacedo-dev/bustrip/internal/user/domain"
)

const tokenTTL = 24 * time.Hour

type sessionClaims struct {
	UserID  int64  `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

type jwtTokenManager struct {
	secret []byte
}

func NewJWTTokenManager(secret string) domain.TokenManager {
	return &jwtTokenManager{secret: []byte(secret)}
}

func (m *jwtTokenManager) Sign(claims domain.TokenClaims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID:  claims.UserID,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})
	return token.SignedString(m.secret)
}

func (m *jwtTokenManager) Verify(tokenString string) (domain.TokenClaims, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return domain.TokenClaims{}, err
	}
	if !token.Valid {
		return domain.TokenClaims{}, jwt.ErrTokenUnverifiable
	}

	return domain.TokenClaims{
		UserID:  claims.UserID,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
	}, nil
}
