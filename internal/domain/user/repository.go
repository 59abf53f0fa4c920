package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicatePhone = errors.New("phone number already registered")
)

// Update carries only the fields a profile update actually changes.
// PasswordHash stays nil unless the caller supplied a new password, so
// an unrelated update can never re-hash or clobber the stored hash.
type Update struct {
	Name         *string
	Email        *string
	Phone        *string
	PasswordHash *string
}

func (u Update) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.PasswordHash == nil
}

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (User, error)
	// GetByEmail returns the document including the password hash; it is
	// the login path's read.
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, id primitive.ObjectID, upd Update) (User, error)
}
