package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal/internal/domain/job"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrNotOwner    = errors.New("job does not belong to this employer")
)

const activeJobsCacheKey = "jobs:active"

type JobUsecase interface {
	ListActive(ctx context.Context) ([]job.Job, error)
	Post(ctx context.Context, employerID primitive.ObjectID, in job.Input) (job.Job, error)
	MyJobs(ctx context.Context, employerID primitive.ObjectID) ([]job.Job, error)
	Update(ctx context.Context, employerID primitive.ObjectID, jobID string, upd job.Update) (job.Job, error)
	Delete(ctx context.Context, employerID primitive.ObjectID, jobID string) error
	Get(ctx context.Context, jobID string) (job.Job, error)
}

type Jobs struct {
	jobs  job.Repository
	cache ListingCache
	ttl   time.Duration
}

func NewJobUsecase(jobs job.Repository, cache ListingCache, ttl time.Duration) *Jobs {
	return &Jobs{jobs: jobs, cache: cache, ttl: ttl}
}

func (u *Jobs) ListActive(ctx context.Context) ([]job.Job, error) {
	if u.cache != nil {
		var cached []job.Job
		if hit, err := u.cache.GetJSON(ctx, activeJobsCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := u.jobs.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, activeJobsCacheKey, jobs, u.ttl)
	}
	return jobs, nil
}

func (u *Jobs) Post(ctx context.Context, employerID primitive.ObjectID, in job.Input) (job.Job, error) {
	if err := in.Validate(); err != nil {
		return job.Job{}, err
	}

	created, err := u.jobs.Create(ctx, job.Job{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Country:     in.Country,
		City:        in.City,
		Location:    in.Location,
		FixedSalary: in.FixedSalary,
		SalaryFrom:  in.SalaryFrom,
		SalaryTo:    in.SalaryTo,
		Expired:     false,
		PostedOn:    time.Now().UTC(),
		PostedBy:    employerID,
	})
	if err != nil {
		return job.Job{}, ErrInternal
	}

	u.invalidateListing(ctx)
	return created, nil
}

func (u *Jobs) MyJobs(ctx context.Context, employerID primitive.ObjectID) ([]job.Job, error) {
	jobs, err := u.jobs.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Jobs) Update(ctx context.Context, employerID primitive.ObjectID, jobID string, upd job.Update) (job.Job, error) {
	// The delta has to be checked on its own: merging resolves the salary
	// form, so a delta carrying both forms would otherwise slip through.
	if err := upd.Validate(); err != nil {
		return job.Job{}, err
	}

	existing, err := u.ownedJob(ctx, employerID, jobID)
	if err != nil {
		return job.Job{}, err
	}

	// Validate the document as it will be stored, not just the delta.
	if err := mergedInput(existing, upd).Validate(); err != nil {
		return job.Job{}, err
	}

	updated, err := u.jobs.Update(ctx, existing.ID, upd)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}

	u.invalidateListing(ctx)
	return updated, nil
}

func (u *Jobs) Delete(ctx context.Context, employerID primitive.ObjectID, jobID string) error {
	existing, err := u.ownedJob(ctx, employerID, jobID)
	if err != nil {
		return err
	}

	if err := u.jobs.Delete(ctx, existing.ID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}

	u.invalidateListing(ctx)
	return nil
}

func (u *Jobs) Get(ctx context.Context, jobID string) (job.Job, error) {
	id, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return job.Job{}, ErrJobNotFound
	}

	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) ownedJob(ctx context.Context, employerID primitive.ObjectID, jobID string) (job.Job, error) {
	id, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return job.Job{}, ErrJobNotFound
	}

	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	if j.PostedBy != employerID {
		return job.Job{}, ErrNotOwner
	}
	return j, nil
}

func (u *Jobs) invalidateListing(ctx context.Context) {
	if u.cache != nil {
		_ = u.cache.Delete(ctx, activeJobsCacheKey)
	}
}

func mergedInput(existing job.Job, upd job.Update) job.Input {
	in := job.Input{
		Title:       existing.Title,
		Description: existing.Description,
		Category:    existing.Category,
		Country:     existing.Country,
		City:        existing.City,
		Location:    existing.Location,
		FixedSalary: existing.FixedSalary,
		SalaryFrom:  existing.SalaryFrom,
		SalaryTo:    existing.SalaryTo,
	}

	if upd.Title != nil {
		in.Title = *upd.Title
	}
	if upd.Description != nil {
		in.Description = *upd.Description
	}
	if upd.Category != nil {
		in.Category = *upd.Category
	}
	if upd.Country != nil {
		in.Country = *upd.Country
	}
	if upd.City != nil {
		in.City = *upd.City
	}
	if upd.Location != nil {
		in.Location = *upd.Location
	}
	if upd.FixedSalary != nil {
		in.FixedSalary = upd.FixedSalary
		in.SalaryFrom = nil
		in.SalaryTo = nil
	}
	if upd.SalaryFrom != nil || upd.SalaryTo != nil {
		if upd.SalaryFrom != nil {
			in.SalaryFrom = upd.SalaryFrom
		}
		if upd.SalaryTo != nil {
			in.SalaryTo = upd.SalaryTo
		}
		in.FixedSalary = nil
	}
	return in
}
