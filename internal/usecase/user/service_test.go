package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/password"
	"job-portal/internal/pkg/validate"
)

type mockUserRepo struct {
	stored user.User

	lastUpdate *user.Update
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	return u, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (user.User, error) {
	if id != m.stored.ID {
		return user.User{}, user.ErrNotFound
	}
	return m.stored, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if email != m.stored.Email {
		return user.User{}, user.ErrNotFound
	}
	return m.stored, nil
}

func (m *mockUserRepo) Update(_ context.Context, id primitive.ObjectID, upd user.Update) (user.User, error) {
	if id != m.stored.ID {
		return user.User{}, user.ErrNotFound
	}
	m.lastUpdate = &upd
	if upd.Name != nil {
		m.stored.Name = *upd.Name
	}
	if upd.Email != nil {
		m.stored.Email = *upd.Email
	}
	if upd.Phone != nil {
		m.stored.Phone = *upd.Phone
	}
	if upd.PasswordHash != nil {
		m.stored.PasswordHash = *upd.PasswordHash
	}
	return m.stored, nil
}

func seededRepo(t *testing.T) *mockUserRepo {
	t.Helper()
	hash, err := password.Hash("longenough1")
	assert.NoError(t, err)
	return &mockUserRepo{stored: user.User{
		ID:           primitive.NewObjectID(),
		Name:         "Jane Doe",
		Email:        "jane@x.com",
		Phone:        "+15551234567",
		PasswordHash: hash,
		Role:         user.RoleJobSeeker,
	}}
}

func strPtr(s string) *string { return &s }

func TestService_GetMe_StripsHash(t *testing.T) {
	repo := seededRepo(t)
	svc := NewService(repo)

	usr, err := svc.GetMe(context.Background(), repo.stored.ID)
	assert.NoError(t, err)
	assert.Equal(t, "jane@x.com", usr.Email)
	assert.Empty(t, usr.PasswordHash)
}

func TestService_UpdateMe_WithoutPasswordKeepsHash(t *testing.T) {
	repo := seededRepo(t)
	svc := NewService(repo)
	before := repo.stored.PasswordHash

	_, err := svc.UpdateMe(context.Background(), repo.stored.ID, UpdateMeInput{
		Name: strPtr("Janet Doe"),
	})
	assert.NoError(t, err)

	// the update document carried no password field at all
	assert.Nil(t, repo.lastUpdate.PasswordHash)
	assert.Equal(t, before, repo.stored.PasswordHash, "hash must be byte-identical after unrelated update")
	assert.Equal(t, "Janet Doe", repo.stored.Name)
}

func TestService_UpdateMe_WithPasswordRehashes(t *testing.T) {
	repo := seededRepo(t)
	svc := NewService(repo)
	before := repo.stored.PasswordHash

	usr, err := svc.UpdateMe(context.Background(), repo.stored.ID, UpdateMeInput{
		Password: strPtr("newpassword99"),
	})
	assert.NoError(t, err)
	assert.Empty(t, usr.PasswordHash)

	assert.NotEqual(t, before, repo.stored.PasswordHash)
	assert.NotEqual(t, "newpassword99", repo.stored.PasswordHash)
	assert.True(t, password.Verify(repo.stored.PasswordHash, "newpassword99"))
}

func TestService_UpdateMe_ShortPasswordRejectedBeforeHashing(t *testing.T) {
	repo := seededRepo(t)
	svc := NewService(repo)
	before := repo.stored.PasswordHash

	_, err := svc.UpdateMe(context.Background(), repo.stored.ID, UpdateMeInput{
		Password: strPtr("short"),
	})

	var verrs validate.Errors
	assert.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("password"))
	assert.Nil(t, repo.lastUpdate)
	assert.Equal(t, before, repo.stored.PasswordHash)
}

func TestService_UpdateMe_NothingToUpdate(t *testing.T) {
	repo := seededRepo(t)
	svc := NewService(repo)

	_, err := svc.UpdateMe(context.Background(), repo.stored.ID, UpdateMeInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateMe_BadEmail(t *testing.T) {
	repo := seededRepo(t)
	svc := NewService(repo)

	_, err := svc.UpdateMe(context.Background(), repo.stored.ID, UpdateMeInput{
		Email: strPtr("not-an-email"),
	})

	var verrs validate.Errors
	assert.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("email"))
}
