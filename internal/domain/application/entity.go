package application

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/validate"
)

// Resume is the stored pointer into the media store. PublicID is what
// the store needs for deletion, URL is what the frontend renders.
type Resume struct {
	PublicID string `bson:"public_id" json:"publicId"`
	URL      string `bson:"url" json:"url"`
}

// PartyRef pins down which side of the application a user id refers to,
// so an employer id can never be stored in the applicant slot.
type PartyRef struct {
	User primitive.ObjectID `bson:"user" json:"user"`
	Role user.Role          `bson:"role" json:"role"`
}

type Application struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	Address     string             `bson:"address" json:"address"`
	CoverLetter string             `bson:"coverLetter" json:"coverLetter"`
	Resume      Resume             `bson:"resume" json:"resume"`
	JobID       primitive.ObjectID `bson:"jobId" json:"jobId"`
	Applicant   PartyRef           `bson:"applicantID" json:"applicantID"`
	Employer    PartyRef           `bson:"employerID" json:"employerID"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Input struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	CoverLetter string
}

func (in Input) Validate() error {
	col := validate.NewCollector()

	if col.Required("name", in.Name, "Please enter your Name!") {
		col.LengthBetween("name", in.Name, user.NameMinLen, user.NameMaxLen,
			"Name must contain at least 3 Characters!",
			"Name cannot exceed 30 Characters!")
	}
	if col.Required("email", in.Email, "Please enter your Email!") {
		col.Email("email", in.Email, "Please provide a valid Email!")
	}
	if col.Required("phone", in.Phone, "Please enter your Phone Number!") {
		col.Phone("phone", in.Phone, "Please provide a valid phone number!")
	}
	col.Required("address", in.Address, "Please enter your Address!")
	col.Required("coverLetter", in.CoverLetter, "Please provide a cover letter!")

	return col.Errors()
}
