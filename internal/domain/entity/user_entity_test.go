package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosense/identity-service/pkg/apperr"
)

func TestNew_ValidUser(t *testing.T) {
	u, err := New("Ana Souza", "ana@example.com", "$2a$10$hashedpassword")
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ana Souza", u.Name)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, "$2a$10$hashedpassword", u.PasswordHash)
	assert.WithinDuration(t, time.Now().UTC(), u.CreatedAt, 2*time.Second)
}

func TestNew_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		inName  string
		email   string
		hash    string
		wantMsg string
	}{
		{"blank name", "", "ana@example.com", "hash", "name required"},
		{"whitespace name", "   ", "ana@example.com", "hash", "name required"},
		{"blank email", "Ana", "", "hash", "email required"},
		{"email without at", "Ana", "ana.example.com", "hash", "invalid email"},
		{"blank hash", "Ana", "ana@example.com", "", "password required"},
		{"whitespace hash", "Ana", "ana@example.com", "  ", "password required"},
		// first failure wins: name is checked before email and password
		{"all blank", "", "", "", "name required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := New(tt.inName, tt.email, tt.hash)
			assert.Nil(t, u)
			require.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestReconstitute(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	u, err := Reconstitute("fixed-id", "admin", "admin@example.com", "hash", createdAt)
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", u.ID)
	assert.Equal(t, createdAt, u.CreatedAt)

	_, err = Reconstitute("fixed-id", "admin", "not-an-email", "hash", createdAt)
	require.EqualError(t, err, "invalid email")
}

func TestUpdateName(t *testing.T) {
	u, err := New("Ana", "ana@example.com", "hash")
	require.NoError(t, err)

	id, createdAt := u.ID, u.CreatedAt

	require.EqualError(t, u.UpdateName(""), "name cannot be empty")
	require.EqualError(t, u.UpdateName("   "), "name cannot be empty")
	assert.Equal(t, "Ana", u.Name)

	require.NoError(t, u.UpdateName("Ana Souza"))
	assert.Equal(t, "Ana Souza", u.Name)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, createdAt, u.CreatedAt)
}

func TestUpdatePasswordHash(t *testing.T) {
	u, err := New("Ana", "ana@example.com", "old-hash")
	require.NoError(t, err)

	id, createdAt := u.ID, u.CreatedAt

	require.EqualError(t, u.UpdatePasswordHash(""), "password cannot be empty")
	assert.Equal(t, "old-hash", u.PasswordHash)

	require.NoError(t, u.UpdatePasswordHash("new-hash"))
	assert.Equal(t, "new-hash", u.PasswordHash)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, createdAt, u.CreatedAt)
}
