// Package auth implements the login gate. There are no accounts: a
// configured admin username routes to the admin role and every other
// username browses as a customer.
package auth

import (
	"errors"
	"strings"

	"github.com/christoffels/menu/internal/enum"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrBadCredentials   = errors.New("invalid credentials")
)

// Gate decides the role for a login attempt.
type Gate struct {
	adminUsername string
	adminHash     string
}

// NewGate creates a gate. adminHash is an optional bcrypt hash of the
// admin password; empty disables the password check entirely.
func NewGate(adminUsername, adminHash string) *Gate {
	return &Gate{adminUsername: adminUsername, adminHash: adminHash}
}

// Login returns the role for the attempt. The admin username matches
// case-insensitively. When an admin password hash is configured, a
// wrong password fails with ErrBadCredentials instead of silently
// demoting to customer.
func (g *Gate) Login(username, password string) (string, error) {
	if username == "" {
		return "", ErrUsernameRequired
	}
	if !strings.EqualFold(username, g.adminUsername) {
		return enum.RoleCustomer, nil
	}
	if g.adminHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(g.adminHash), []byte(password)); err != nil {
			return "", ErrBadCredentials
		}
	}
	return enum.RoleAdmin, nil
}

// HashPassword produces a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
