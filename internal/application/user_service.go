package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agrosense/identity-service/internal/domain/entity"
	repo "github.com/agrosense/identity-service/internal/domain/repository"
	"github.com/agrosense/identity-service/pkg/apperr"
)

// PasswordHasher is the one-way credential transform used by the service.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer mints a signed bearer token for a validated user.
type TokenIssuer interface {
	Issue(u *entity.User) (string, error)
}

// Service orchestrates registration and login. It is stateless; all
// state lives in the injected collaborators, so it is safe to call
// concurrently.
type Service struct {
	Repo   repo.UserRepository
	Hasher PasswordHasher
	Tokens TokenIssuer
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, hasher PasswordHasher, tokens TokenIssuer, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Hasher: hasher, Tokens: tokens, Logger: logger}
}

// UserSummary is the outward-facing projection of a user. It never
// carries the password hash.
type UserSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResult pairs a freshly issued token with the authenticated user.
type LoginResult struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func summarize(u *entity.User) UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Register creates a new account. The existence check here is not
// atomic against concurrent registrations; the storage layer's unique
// email constraint is the final authority and surfaces as the same
// conflict error.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*UserSummary, error) {
	if blank(in.Name) {
		return nil, apperr.Validation("name required")
	}
	if blank(in.Email) {
		return nil, apperr.Validation("email required")
	}
	if blank(in.Password) {
		return nil, apperr.Validation("password required")
	}

	exists, err := s.Repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, s.internal("email existence check failed", err, logrus.Fields{"email": in.Email})
	}
	if exists {
		return nil, apperr.Conflict("email already in use")
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, s.internal("password hashing failed", err, nil)
	}

	u, err := entity.New(in.Name, in.Email, hash)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Add(ctx, u); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			return nil, err
		}
		return nil, s.internal("persisting user failed", err, logrus.Fields{"user_id": u.ID})
	}

	out := summarize(u)
	return &out, nil
}

// Authenticate validates credentials and returns the user. Unknown
// emails and wrong passwords fail with the same message so callers
// cannot enumerate registered accounts.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	if blank(email) {
		return nil, apperr.Validation("email required")
	}
	if blank(password) {
		return nil, apperr.Validation("password required")
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.Auth("invalid credentials")
		}
		return nil, s.internal("user lookup failed", err, logrus.Fields{"email": email})
	}
	if !s.Hasher.Verify(password, u.PasswordHash) {
		return nil, apperr.Auth("invalid credentials")
	}
	return u, nil
}

// Login authenticates and issues a bearer token on success.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	token, err := s.Tokens.Issue(u)
	if err != nil {
		return nil, s.internal("token issuance failed", err, logrus.Fields{"user_id": u.ID})
	}
	return &LoginResult{Token: token, User: summarize(u)}, nil
}

// ListUsers returns summaries for every stored user. An empty store
// yields an empty slice, never an error.
func (s *Service) ListUsers(ctx context.Context) ([]UserSummary, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, s.internal("listing users failed", err, nil)
	}
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, summarize(u))
	}
	return out, nil
}

func (s *Service) internal(msg string, err error, fields logrus.Fields) error {
	if s.Logger != nil {
		s.Logger.WithFields(fields).WithError(err).Error(msg)
	}
	return apperr.Internal(err)
}
