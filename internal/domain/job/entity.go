package job

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal/internal/pkg/validate"
)

// Job is a posting document. Salary is either Fixed or the From/To
// range, never both; ValidateSalary enforces the exclusivity.
type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Country     string             `bson:"country" json:"country"`
	City        string             `bson:"city" json:"city"`
	Location    string             `bson:"location" json:"location"`
	FixedSalary *int64             `bson:"fixedSalary,omitempty" json:"fixedSalary,omitempty"`
	SalaryFrom  *int64             `bson:"salaryFrom,omitempty" json:"salaryFrom,omitempty"`
	SalaryTo    *int64             `bson:"salaryTo,omitempty" json:"salaryTo,omitempty"`
	Expired     bool               `bson:"expired" json:"expired"`
	PostedOn    time.Time          `bson:"jobPostedOn" json:"jobPostedOn"`
	PostedBy    primitive.ObjectID `bson:"postedBy" json:"postedBy"`
}

type Input struct {
	Title       string
	Description string
	Category    string
	Country     string
	City        string
	Location    string
	FixedSalary *int64
	SalaryFrom  *int64
	SalaryTo    *int64
}

const (
	TitleMinLen       = 3
	TitleMaxLen       = 30
	DescriptionMinLen = 30
	DescriptionMaxLen = 500
	LocationMinLen    = 20
	SalaryMin         = 1000
	SalaryMax         = 999999999
)

func (in Input) Validate() error {
	col := validate.NewCollector()

	if col.Required("title", in.Title, "Please provide a title.") {
		col.LengthBetween("title", in.Title, TitleMinLen, TitleMaxLen,
			"Job title must contain at least 3 Characters!",
			"Job title cannot exceed 30 Characters!")
	}
	if col.Required("description", in.Description, "Please provide a description.") {
		col.LengthBetween("description", in.Description, DescriptionMinLen, DescriptionMaxLen,
			"Job description must contain at least 30 Characters!",
			"Job description cannot exceed 500 Characters!")
	}
	col.Required("category", in.Category, "Please provide a category.")
	col.Required("country", in.Country, "Please provide a country name.")
	col.Required("city", in.City, "Please provide a city name.")
	if col.Required("location", in.Location, "Please provide location.") {
		col.MinLength("location", in.Location, LocationMinLen,
			"Location must contain at least 20 characters!")
	}

	in.validateSalary(col)

	return col.Errors()
}

func (in Input) validateSalary(col *validate.Collector) {
	hasFixed := in.FixedSalary != nil
	hasRange := in.SalaryFrom != nil || in.SalaryTo != nil

	switch {
	case !hasFixed && !hasRange:
		col.Add("salary", "required", "Please either provide fixed salary or ranged salary.")
	case hasFixed && hasRange:
		col.Add("salary", "exclusive", "Cannot enter fixed and ranged salary together.")
	case hasFixed:
		if !salaryInBounds(*in.FixedSalary) {
			col.Add("fixedSalary", "range", "Salary must be between 4 and 9 digits.")
		}
	default:
		if in.SalaryFrom == nil || in.SalaryTo == nil {
			col.Add("salary", "range", "Please provide both ranged salary bounds.")
			return
		}
		if !salaryInBounds(*in.SalaryFrom) || !salaryInBounds(*in.SalaryTo) {
			col.Add("salary", "range", "Salary must be between 4 and 9 digits.")
			return
		}
		if *in.SalaryFrom > *in.SalaryTo {
			col.Add("salary", "range", "Salary from cannot exceed salary to.")
		}
	}
}

func salaryInBounds(v int64) bool {
	return v >= SalaryMin && v <= SalaryMax
}
