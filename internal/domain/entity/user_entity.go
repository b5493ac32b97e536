package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agrosense/identity-service/pkg/apperr"
)

// User is the aggregate root for the identity domain.
// PasswordHash holds a bcrypt hash, never a plaintext password.
//
// ID and CreatedAt are set once at construction and never change.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// New is the only valid way to create a fresh user. Validation is
// fail-fast: the first violated rule wins.
func New(name, email, passwordHash string) (*User, error) {
	u := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Reconstitute rebuilds a user with a caller-supplied id and creation time.
// It exists for seed/import code and repository hydration only; request
// handling goes through New.
func Reconstitute(id, name, email, passwordHash string, createdAt time.Time) (*User, error) {
	u := &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateName replaces the display name. Blank names are rejected.
func (u *User) UpdateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validation("name cannot be empty")
	}
	u.Name = name
	return nil
}

// UpdatePasswordHash replaces the stored credential hash. Blank hashes
// are rejected.
func (u *User) UpdatePasswordHash(hash string) error {
	if strings.TrimSpace(hash) == "" {
		return apperr.Validation("password cannot be empty")
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return apperr.Validation("name required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return apperr.Validation("email required")
	}
	if !strings.Contains(u.Email, "@") {
		return apperr.Validation("invalid email")
	}
	if strings.TrimSpace(u.PasswordHash) == "" {
		return apperr.Validation("password required")
	}
	return nil
}
