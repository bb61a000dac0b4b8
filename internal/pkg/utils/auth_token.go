package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/ougirez/luxcompare/internal/pkg/constants"
)

type AuthTokenWrapper struct {
	jwt.StandardClaims
	UserID string `json:"user_id,omitempty"`
	Secret string `json:"secret,omitempty"`
}

func GenerateAuthToken(wrapper *AuthTokenWrapper, key string, ttl time.Duration) (string, error) {
	now := time.Now()
	wrapper.IssuedAt = now.Unix()
	if ttl > 0 {
		wrapper.ExpiresAt = now.Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString([]byte(key))
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}

	return signed, nil
}

func ParseAuthToken(raw string, key string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(raw, wrapper, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(key), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnauthorized, err.Error())
	}
	if !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
