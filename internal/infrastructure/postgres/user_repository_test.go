package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosense/identity-service/internal/domain/entity"
	"github.com/agrosense/identity-service/internal/domain/repository"
	"github.com/agrosense/identity-service/pkg/apperr"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func sampleUser(t *testing.T) *entity.User {
	t.Helper()
	u, err := entity.New("Ana", "ana@x.com", "hash")
	require.NoError(t, err)
	return u
}

func TestAdd(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	u := sampleUser(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Add(context.Background(), u))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdd_UniqueViolationBecomesConflict(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	u := sampleUser(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})

	err := repo.Add(context.Background(), u)
	require.EqualError(t, err, "email already in use")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	createdAt := time.Now().UTC()

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users WHERE email").
		WithArgs("ana@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
			AddRow("uid-1", "Ana", "ana@x.com", "hash", createdAt))

	u, err := repo.GetByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", u.ID)
	assert.Equal(t, "hash", u.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users WHERE email").
		WithArgs("nobody@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}))

	_, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	createdAt := time.Now().UTC()

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users ORDER BY created_at").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
			AddRow("uid-1", "Ana", "ana@x.com", "h1", createdAt).
			AddRow("uid-2", "Bruno", "bruno@x.com", "h2", createdAt))

	users, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ana", users[0].Name)
	assert.Equal(t, "bruno@x.com", users[1].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("ana@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	u := sampleUser(t)

	mock.ExpectExec("UPDATE users").
		WithArgs(u.Name, u.Email, u.PasswordHash, u.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.Update(context.Background(), u), repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
