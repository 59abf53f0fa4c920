package auth

import (
	"context"
	"errors"
	"strings"

	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInternal           = errors.New("internal error")
)

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     user.Role
}

type LoginInput struct {
	Email    string
	Password string
	Role     user.Role
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// Register validates the payload, hashes the password through the single
// choke point and persists the account. Validation errors come back as
// validate.Errors so the handler can return the per-field messages.
func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	input := user.Input{
		Name:     strings.TrimSpace(in.Name),
		Email:    normalizeEmail(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Password: in.Password,
		Role:     in.Role,
	}
	if err := input.Validate(); err != nil {
		return user.User{}, err
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return user.User{}, ErrInternal
	}

	created, err := s.users.Create(ctx, user.User{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         input.Role,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) || errors.Is(err, user.ErrDuplicatePhone) {
			return user.User{}, err
		}
		return user.User{}, ErrInternal
	}

	return sanitizeUser(created), nil
}

// Login verifies the presented password against the stored hash. A
// missing account, wrong role and wrong password are indistinguishable
// to the caller.
func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if in.Role != "" && u.Role != in.Role {
		return user.User{}, ErrInvalidCredentials
	}

	if !password.Verify(u.PasswordHash, in.Password) {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
