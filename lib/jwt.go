package lib

import (
	"fmt"
	"foodmenu_server/structs"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ParseToken validates an HMAC signed JWT and returns its subject and expiry
func ParseToken(tokenStr string, secret string) (*structs.AuthClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return &structs.AuthClaims{
		Sub: claims.Subject,
		Exp: claims.ExpiresAt.Time,
	}, nil
}

// StripBearer removes an optional "Bearer " prefix from an Authorization header value
func StripBearer(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
