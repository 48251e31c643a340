package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var JWTSecret []byte

// SetJWTSecret dipanggil dari main setelah config dimuat.
func SetJWTSecret(secret string) {
	if secret == "" {
		// Gunakan default secret untuk development, release ditolak di config.Validate
		Info(nil).Warn("JWT_SECRET empty, using development secret")
		secret = "TestSecretKeyAUTH1945"
	}
	JWTSecret = []byte(secret)
}

// CustomClaims identifies the tenant user and the subscription plan the
// external auth service granted them.
type CustomClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	Plan   string `json:"plan"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, role, plan string) (string, error) {
	if len(JWTSecret) == 0 {
		SetJWTSecret("")
	}

	claims := &CustomClaims{
		UserID: userID,
		Role:   role,
		Plan:   plan,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "MenuStudio",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

func ParseToken(tokenString string) (*CustomClaims, error) {
	if len(JWTSecret) == 0 {
		SetJWTSecret("")
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return JWTSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
