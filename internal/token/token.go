package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens are valid for a fixed window; there is no refresh or revocation.
const tokenTTL = 24 * time.Hour

// Claims is the identity a verified token carries.
type Claims struct {
	ID       string
	Username string
	Email    string
}

// Manager signs and verifies session tokens with a process-wide HS256
// secret injected at startup.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue signs a token embedding the account identity.
func (m *Manager) Issue(id, username, email string) (string, error) {
	claims := jwt.MapClaims{
		"id":       id,
		"username": username,
		"email":    email,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify accepts the raw Authorization header value, with or without the
// "Bearer " prefix. Any failure (malformed, expired, wrong signature)
// returns nil: an unusable token means an unauthenticated request, never
// an error surfaced to the caller.
func (m *Manager) Verify(rawHeaderValue string) *Claims {
	tokenString := strings.TrimSpace(rawHeaderValue)
	if after, ok := strings.CutPrefix(tokenString, "Bearer "); ok {
		tokenString = after
	}
	if tokenString == "" {
		return nil
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	id, _ := mc["id"].(string)
	if id == "" {
		return nil
	}
	username, _ := mc["username"].(string)
	email, _ := mc["email"].(string)

	return &Claims{ID: id, Username: username, Email: email}
}
