package job

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal/internal/pkg/validate"
)

var ErrNotFound = errors.New("job not found")

// Update mirrors Input field-for-field with pointer semantics: nil means
// "leave as stored". Clearing one salary form while setting the other is
// the repository's job (unset in the same write).
type Update struct {
	Title       *string
	Description *string
	Category    *string
	Country     *string
	City        *string
	Location    *string
	FixedSalary *int64
	SalaryFrom  *int64
	SalaryTo    *int64
	Expired     *bool
}

// Validate rejects deltas no stored document could absorb. A delta that
// sets a fixed salary and a range bound in the same request breaks the
// exclusivity rule no matter what the document currently holds; the
// merged document is validated separately after the fetch.
func (u Update) Validate() error {
	col := validate.NewCollector()
	if u.FixedSalary != nil && (u.SalaryFrom != nil || u.SalaryTo != nil) {
		col.Add("salary", "exclusive", "Cannot enter fixed and ranged salary together.")
	}
	return col.Errors()
}

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Job, error)
	ListActive(ctx context.Context) ([]Job, error)
	ListByEmployer(ctx context.Context, employerID primitive.ObjectID) ([]Job, error)
	Update(ctx context.Context, id primitive.ObjectID, upd Update) (Job, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
