package helper

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"learnsmate_backend/internals/configs"
)

var ErrMissingSecret = errors.New("JWT_SECRET is not configured")

// Claims carried by every access token. Subject holds the member or admin code.
type Claims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Code returns the numeric subject.
func (c *Claims) Code() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

type IssuedToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

func IssueAccessToken(code int64, role, name string, now time.Time) (*IssuedToken, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return nil, ErrMissingSecret
	}
	ttl := configs.JWTAccessTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	exp := now.Add(ttl)

	claims := Claims{
		Role: role,
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(code, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}
	return &IssuedToken{AccessToken: signed, ExpiresAt: exp}, nil
}

// ParseAccessToken verifies signature and expiry.
func ParseAccessToken(raw string) (*Claims, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return nil, ErrMissingSecret
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("invalid token")
	}
	if _, err := claims.Code(); err != nil {
		return nil, errors.Wrap(err, "invalid subject")
	}
	return claims, nil
}
