package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenAge = time.Hour * 24

// Claims is the token payload, the sole credential carried between
// requests. ID is the immutable account id and the canonical owner key
// for everything the account creates.
type Claims struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  Scope  `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (a *Auth) SignToken(u *User) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		ID:    u.ID,
		Name:  u.Name,
		Role:  u.Type,
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenAge)),
		},
	})
	return tok.SignedString([]byte(a.cfg.JWTSecret))
}

func (a *Auth) ParseToken(raw string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return []byte(a.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims.ID == "" {
		return nil, ErrUnauthorized
	}
	return &claims, nil
}

// BearerToken pulls the raw token out of an Authorization header value.
func BearerToken(header string) string {
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
