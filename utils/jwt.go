package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 72 * time.Hour

// Claims carried by a Foodlane login token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func tokenTTL() time.Duration {
	if hrs := os.Getenv("JWT_TTL_HOURS"); hrs != "" {
		if n, err := strconv.Atoi(hrs); err == nil && n > 0 {
			return time.Duration(n) * time.Hour
		}
	}
	return defaultTokenTTL
}

func GenerateJWT(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "foodlane",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL())),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseJWT validates a login token and returns its claims.
func ParseJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
