package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

var ErrInvalidToken = errors.New("auth: invalid token")

// Claims is what every authenticated request carries.
type Claims struct {
	UserID     int64  `json:"uid"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	PropertyID *int64 `json:"property_id,omitempty"`
	jwt.RegisteredClaims
}

type JWT struct {
	secret []byte
	ttl    time.Duration
}

func NewJWT(secret string, ttl time.Duration) (*JWT, error) {
	if secret == "" {
		return nil, errors.New("auth: JWT secret is required")
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &JWT{secret: []byte(secret), ttl: ttl}, nil
}

func (j *JWT) Issue(u domain.User) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(j.ttl)
	claims := Claims{
		UserID:     u.ID,
		Username:   u.Username,
		Role:       u.Role,
		PropertyID: u.PropertyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			Issuer:    "stayhook",
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, exp, nil
}

func (j *JWT) Parse(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
