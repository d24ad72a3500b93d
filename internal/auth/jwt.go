package auth

import (
	"fmt"
	"time"

	"floorplan-server/internal/shared/config"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is required for maintenance endpoints.
const RoleAdmin = "admin"

// Claims are carried by maintenance tokens. Tokens are minted out-of-band
// by an operator holding the shared secret; there are no user accounts.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func getSecret() (string, error) {
	cfg := config.GlobalConfig
	if cfg == nil || cfg.Auth.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET is not configured")
	}
	if len(cfg.Auth.JWTSecret) < 32 {
		return "", fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}
	return cfg.Auth.JWTSecret, nil
}

func GenerateToken(subject, role string) (string, error) {
	secret, err := getSecret()
	if err != nil {
		return "", fmt.Errorf("cannot generate token: %w", err)
	}

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.GlobalConfig.Auth.TokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(tokenString string) (*Claims, error) {
	secret, err := getSecret()
	if err != nil {
		return nil, fmt.Errorf("cannot validate token: %w", err)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
