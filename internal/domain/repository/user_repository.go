package repository

import (
	"context"
	"errors"

	"github.com/agrosense/identity-service/internal/domain/entity"
)

// ErrNotFound is returned by lookups when no user matches.
var ErrNotFound = errors.New("user not found")

// UserRepository defines durable storage of users, keyed by id and
// unique email. The unique-email constraint lives in the storage layer;
// Add must fail with a conflict when a duplicate email slips past the
// service's existence check.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetAll(ctx context.Context) ([]*entity.User, error)
	Add(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
