package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"
	"job-portal/internal/infrastructure/media"
	"job-portal/internal/pkg/validate"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrNotApplicant        = errors.New("application does not belong to this job seeker")
	ErrJobExpired          = errors.New("job is no longer accepting applications")
	ErrResumeRequired      = errors.New("resume file required")
)

type ApplyInput struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	CoverLetter string
	JobID       string
	// ResumePath is the on-disk temp file the handler buffered the
	// multipart upload into.
	ResumePath string
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, applicantID primitive.ObjectID, in ApplyInput) (application.Application, error)
	ListForEmployer(ctx context.Context, employerID primitive.ObjectID) ([]application.Application, error)
	ListForApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]application.Application, error)
	Delete(ctx context.Context, applicantID primitive.ObjectID, applicationID string) error
}

type Applications struct {
	apps  application.Repository
	jobs  job.Repository
	media media.Store
}

func NewApplicationUsecase(apps application.Repository, jobs job.Repository, store media.Store) *Applications {
	return &Applications{apps: apps, jobs: jobs, media: store}
}

func (u *Applications) Apply(ctx context.Context, applicantID primitive.ObjectID, in ApplyInput) (application.Application, error) {
	input := application.Input{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		CoverLetter: in.CoverLetter,
	}
	if err := input.Validate(); err != nil {
		return application.Application{}, err
	}
	if in.ResumePath == "" {
		return application.Application{}, ErrResumeRequired
	}

	jobID, err := primitive.ObjectIDFromHex(in.JobID)
	if err != nil {
		return application.Application{}, ErrJobNotFound
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, ErrJobNotFound
		}
		return application.Application{}, ErrInternal
	}
	if j.Expired {
		return application.Application{}, ErrJobExpired
	}

	asset, err := u.media.Upload(ctx, in.ResumePath)
	if err != nil {
		return application.Application{}, ErrInternal
	}

	created, err := u.apps.Create(ctx, application.Application{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		CoverLetter: input.CoverLetter,
		Resume:      application.Resume{PublicID: asset.PublicID, URL: asset.URL},
		JobID:       j.ID,
		Applicant:   application.PartyRef{User: applicantID, Role: user.RoleJobSeeker},
		Employer:    application.PartyRef{User: j.PostedBy, Role: user.RoleEmployer},
	})
	if err != nil {
		// The resume is already in the media store; drop it instead of
		// leaving an orphan behind.
		_ = u.media.Destroy(ctx, asset.PublicID)
		return application.Application{}, ErrInternal
	}

	return created, nil
}

func (u *Applications) ListForEmployer(ctx context.Context, employerID primitive.ObjectID) ([]application.Application, error) {
	apps, err := u.apps.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

func (u *Applications) ListForApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]application.Application, error) {
	apps, err := u.apps.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

func (u *Applications) Delete(ctx context.Context, applicantID primitive.ObjectID, applicationID string) error {
	id, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		return ErrApplicationNotFound
	}

	a, err := u.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return ErrInternal
	}
	if a.Applicant.User != applicantID {
		return ErrNotApplicant
	}

	if err := u.apps.Delete(ctx, id); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return ErrInternal
	}

	if a.Resume.PublicID != "" {
		_ = u.media.Destroy(ctx, a.Resume.PublicID)
	}
	return nil
}

// IsValidationError reports whether err carries per-field messages the
// handler should surface as a 400 body.
func IsValidationError(err error) bool {
	var verrs validate.Errors
	return errors.As(err, &verrs)
}
