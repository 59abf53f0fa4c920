package user

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/password"
	"job-portal/internal/pkg/validate"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// UpdateMeInput uses pointers so that an absent field is "leave alone",
// not "clear". A nil Password means the stored hash is not rewritten.
type UpdateMeInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetMe(ctx context.Context, userID primitive.ObjectID) (user.User, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, err
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (s *Service) UpdateMe(ctx context.Context, userID primitive.ObjectID, in UpdateMeInput) (user.User, error) {
	upd, err := buildUpdate(in)
	if err != nil {
		return user.User{}, err
	}
	if upd.Empty() {
		return user.User{}, ErrInvalidInput
	}

	updated, err := s.users.Update(ctx, userID, upd)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound),
			errors.Is(err, user.ErrDuplicateEmail),
			errors.Is(err, user.ErrDuplicatePhone):
			return user.User{}, err
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(updated), nil
}

func buildUpdate(in UpdateMeInput) (user.Update, error) {
	col := validate.NewCollector()
	upd := user.Update{}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		col.LengthBetween("name", name, user.NameMinLen, user.NameMaxLen,
			"Name must contain at least 3 Characters!",
			"Name cannot exceed 30 Characters!")
		upd.Name = &name
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		col.Email("email", email, "Please provide a valid Email!")
		upd.Email = &email
	}
	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		col.Phone("phone", phone, "Please provide a valid phone number!")
		upd.Phone = &phone
	}
	if in.Password != nil {
		col.LengthBetween("password", *in.Password, user.PasswordMinLen, user.PasswordMaxLen,
			"Password must contain at least 8 characters!",
			"Password cannot exceed 32 characters!")
		if err := col.Errors(); err == nil {
			hash, herr := password.Hash(*in.Password)
			if herr != nil {
				return user.Update{}, ErrInternal
			}
			upd.PasswordHash = &hash
		}
	}

	if err := col.Errors(); err != nil {
		return user.Update{}, err
	}
	return upd, nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
