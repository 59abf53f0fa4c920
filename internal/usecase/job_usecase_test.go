package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal/internal/domain/job"
	"job-portal/internal/pkg/validate"
)

type mockJobRepo struct {
	byID map[primitive.ObjectID]job.Job

	created []job.Job
	updated []primitive.ObjectID
	deleted []primitive.ObjectID
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{byID: map[primitive.ObjectID]job.Job{}}
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	j.ID = primitive.NewObjectID()
	m.byID[j.ID] = j
	m.created = append(m.created, j)
	return j, nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id primitive.ObjectID) (job.Job, error) {
	j, ok := m.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ListActive(_ context.Context) ([]job.Job, error) {
	out := []job.Job{}
	for _, j := range m.byID {
		if !j.Expired {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepo) ListByEmployer(_ context.Context, employerID primitive.ObjectID) ([]job.Job, error) {
	out := []job.Job{}
	for _, j := range m.byID {
		if j.PostedBy == employerID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepo) Update(_ context.Context, id primitive.ObjectID, upd job.Update) (job.Job, error) {
	j, ok := m.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	if upd.Title != nil {
		j.Title = *upd.Title
	}
	if upd.Expired != nil {
		j.Expired = *upd.Expired
	}
	m.byID[id] = j
	m.updated = append(m.updated, id)
	return j, nil
}

func (m *mockJobRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.byID[id]; !ok {
		return job.ErrNotFound
	}
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockCache struct {
	store   map[string][]byte
	gets    int
	sets    int
	deletes []string
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

// GetJSON always misses; the decode path belongs to the redis adapter.
func (m *mockCache) GetJSON(_ context.Context, _ string, _ any) (bool, error) {
	m.gets++
	return false, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, _ any, _ time.Duration) error {
	m.sets++
	m.store[key] = []byte("x")
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.deletes = append(m.deletes, key)
	delete(m.store, key)
	return nil
}

func int64Ptr(v int64) *int64 { return &v }

func validJobInput() job.Input {
	return job.Input{
		Title:       "Backend Engineer",
		Description: "Build and operate the job board's Go services end to end.",
		Category:    "Engineering",
		Country:     "USA",
		City:        "Boston",
		Location:    "100 Main Street, Boston, MA 02110",
		FixedSalary: int64Ptr(120000),
	}
}

func TestJobUsecase_Post_Validates(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), newMockCache(), time.Minute)

	in := validJobInput()
	in.Title = "ab"
	_, err := uc.Post(context.Background(), primitive.NewObjectID(), in)

	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if !verrs.Has("title") {
		t.Fatalf("expected title error, got %v", verrs)
	}
}

func TestJobUsecase_Post_RejectsBothSalaryForms(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), newMockCache(), time.Minute)

	in := validJobInput()
	in.SalaryFrom = int64Ptr(50000)
	in.SalaryTo = int64Ptr(90000)
	_, err := uc.Post(context.Background(), primitive.NewObjectID(), in)

	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if !verrs.Has("salary") {
		t.Fatalf("expected salary error, got %v", verrs)
	}
}

func TestJobUsecase_Post_InvalidatesListing(t *testing.T) {
	repo := newMockJobRepo()
	c := newMockCache()
	uc := NewJobUsecase(repo, c, time.Minute)

	created, err := uc.Post(context.Background(), primitive.NewObjectID(), validJobInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Expired {
		t.Fatalf("new job must not start expired")
	}
	if len(c.deletes) != 1 || c.deletes[0] != activeJobsCacheKey {
		t.Fatalf("expected listing cache invalidation, got %v", c.deletes)
	}
}

func TestJobUsecase_ListActive_PopulatesCache(t *testing.T) {
	repo := newMockJobRepo()
	c := newMockCache()
	uc := NewJobUsecase(repo, c, time.Minute)

	employer := primitive.NewObjectID()
	if _, err := uc.Post(context.Background(), employer, validJobInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	jobs, err := uc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if c.sets != 1 {
		t.Fatalf("expected listing cached once, got %d sets", c.sets)
	}
}

func TestJobUsecase_Update_OwnershipEnforced(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, newMockCache(), time.Minute)

	owner := primitive.NewObjectID()
	created, err := uc.Post(context.Background(), owner, validJobInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	title := "Platform Engineer"
	_, err = uc.Update(context.Background(), primitive.NewObjectID(), created.ID.Hex(), job.Update{Title: &title})
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	updated, err := uc.Update(context.Background(), owner, created.ID.Hex(), job.Update{Title: &title})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
}

func TestJobUsecase_Update_RejectsBothSalaryFormsInDelta(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, newMockCache(), time.Minute)

	owner := primitive.NewObjectID()
	created, err := uc.Post(context.Background(), owner, validJobInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	upd := job.Update{
		FixedSalary: int64Ptr(7000),
		SalaryFrom:  int64Ptr(2000),
		SalaryTo:    int64Ptr(3000),
	}
	_, err = uc.Update(context.Background(), owner, created.ID.Hex(), upd)

	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if !verrs.Has("salary") {
		t.Fatalf("expected salary error, got %v", verrs)
	}
	if len(repo.updated) != 0 {
		t.Fatalf("repository must not see a conflicting salary delta")
	}
	stored := repo.byID[created.ID]
	if stored.FixedSalary == nil || *stored.FixedSalary != 120000 {
		t.Fatalf("stored salary changed: %+v", stored)
	}
}

func TestJobUsecase_Delete_UnknownID(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), newMockCache(), time.Minute)

	err := uc.Delete(context.Background(), primitive.NewObjectID(), "not-a-hex-id")
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}

	err = uc.Delete(context.Background(), primitive.NewObjectID(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobUsecase_Get(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, newMockCache(), time.Minute)

	created, err := uc.Post(context.Background(), primitive.NewObjectID(), validJobInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := uc.Get(context.Background(), created.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected job %s, got %s", created.ID.Hex(), got.ID.Hex())
	}

	if _, err := uc.Get(context.Background(), "garbage"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound for bad id, got %v", err)
	}
}
