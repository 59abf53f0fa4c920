package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal/internal/pkg/validate"
)

type Role string

const (
	RoleJobSeeker Role = "Job Seeker"
	RoleEmployer  Role = "Employer"
)

func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}

// User is a stored account document. PasswordHash keeps the original
// collection's "password" field name but only ever holds a bcrypt hash;
// it is excluded from JSON so no handler can leak it by accident.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Input is an unvalidated registration payload; Password here is the
// plaintext candidate, validated for length before it is ever hashed.
type Input struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     Role
}

const (
	NameMinLen     = 3
	NameMaxLen     = 30
	PasswordMinLen = 8
	PasswordMaxLen = 32
)

// Validate runs the full field-rule pass and reports every failure with
// its user-facing message. It never touches storage.
func (in Input) Validate() error {
	col := validate.NewCollector()

	if col.Required("name", in.Name, "Please enter your Name!") {
		col.LengthBetween("name", in.Name, NameMinLen, NameMaxLen,
			"Name must contain at least 3 Characters!",
			"Name cannot exceed 30 Characters!")
	}
	if col.Required("email", in.Email, "Please enter your Email!") {
		col.Email("email", in.Email, "Please provide a valid Email!")
	}
	if col.Required("phone", in.Phone, "Please enter your Phone Number!") {
		col.Phone("phone", in.Phone, "Please provide a valid phone number!")
	}
	if col.Required("password", in.Password, "Please provide a Password!") {
		col.LengthBetween("password", in.Password, PasswordMinLen, PasswordMaxLen,
			"Password must contain at least 8 characters!",
			"Password cannot exceed 32 characters!")
	}
	if col.Required("role", string(in.Role), "Please select a role") && !in.Role.Valid() {
		col.Add("role", "enum", "Please select a role")
	}

	return col.Errors()
}
