package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
)

func newTestUserService(users ...*domain.User) (*UserService, *stubUserRepo, *stubSessionCache, *recorder) {
	repo := newStubUserRepo(users...)
	cache := newStubSessionCache()
	rec := &recorder{}
	sessions := NewSessionService(repo, cache, zerolog.Nop())
	return NewUserService(repo, sessions, rec, zerolog.Nop()), repo, cache, rec
}

func ptr[T any](v T) *T { return &v }

func TestUserService_Update_Self(t *testing.T) {
	svc, repo, _, rec := newTestUserService(&domain.User{ID: "user-1", Name: "Old", Address: "1 Main St", Role: domain.RoleUser})

	updated, err := svc.Update(context.Background(), userSession, "user-1", ports.UserUpdateInput{
		Name:     ptr("New"),
		Password: ptr("Password123!"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users["user-1"].PasswordHash), []byte("Password123!")))
	assert.ElementsMatch(t, []string{"name", "password"}, repo.lastPatch.Fields())
	assert.Equal(t, []domain.AuditAction{domain.ActionUpdated}, rec.actions())
}

func TestUserService_Update_Forbidden(t *testing.T) {
	svc, _, _, _ := newTestUserService(
		&domain.User{ID: "user-1", Name: "Ann", Address: "1 Main St", Role: domain.RoleUser},
		&domain.User{ID: "user-2", Name: "Bob", Address: "2 Main St", Role: domain.RoleUser},
	)

	_, err := svc.Update(context.Background(), userSession, "user-2", ports.UserUpdateInput{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Update(context.Background(), userSession, "user-1", ports.UserUpdateInput{Role: ptr(domain.RoleAdmin)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserService_Update_Validation(t *testing.T) {
	svc, _, _, _ := newTestUserService(&domain.User{ID: "user-1", Name: "Ann", Address: "1 Main St", Role: domain.RoleUser})

	_, err := svc.Update(context.Background(), userSession, "user-1", ports.UserUpdateInput{Email: ptr("not-an-email")})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Update(context.Background(), userSession, "user-1", ports.UserUpdateInput{Password: ptr("short")})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	_, err = svc.Update(context.Background(), userSession, "user-1", ports.UserUpdateInput{IsBusiness: ptr(true)})
	assert.ErrorIs(t, err, domain.ErrBusinessNameRequired)
}

func TestUserService_Update_RoleChangeInvalidatesSession(t *testing.T) {
	svc, _, cache, _ := newTestUserService(&domain.User{ID: "user-1", Name: "Ann", Address: "1 Main St", Role: domain.RoleUser})
	cache.sessions["user-1"] = domain.Session{UserID: "user-1", Role: domain.RoleUser}

	updated, err := svc.Update(context.Background(), adminSession, "user-1", ports.UserUpdateInput{Role: ptr(domain.RoleAdmin)})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
	assert.NotContains(t, cache.sessions, "user-1")
}

func TestUserService_Delete(t *testing.T) {
	svc, repo, cache, rec := newTestUserService(&domain.User{ID: "user-1", Name: "Ann", Address: "1 Main St", Role: domain.RoleUser})

	assert.ErrorIs(t, svc.Delete(context.Background(), userSession, "user-1"), domain.ErrForbidden)

	require.NoError(t, svc.Delete(context.Background(), adminSession, "user-1"))
	assert.Empty(t, repo.users)
	assert.Equal(t, []string{"user-1"}, cache.deleted)
	assert.Equal(t, []domain.AuditAction{domain.ActionDeleted}, rec.actions())

	assert.ErrorIs(t, svc.Delete(context.Background(), adminSession, "user-1"), domain.ErrUserNotFound)
}

func TestUserService_Update_ChecksMergedAccount(t *testing.T) {
	business := &domain.User{
		ID: "user-1", Name: "Ann", Address: "1 Main St", Role: domain.RoleUser,
		IsBusiness: true, BusinessName: "Acme",
	}

	tests := []struct {
		name string
		in   ports.UserUpdateInput
		want error
	}{
		{"clearing business name of a business account", ports.UserUpdateInput{BusinessName: ptr("")}, domain.ErrBusinessNameRequired},
		{"blank business name", ports.UserUpdateInput{BusinessName: ptr("   ")}, domain.ErrBusinessNameRequired},
		{"blank name", ports.UserUpdateInput{Name: ptr("")}, domain.ErrMissingInput},
		{"blank address", ports.UserUpdateInput{Address: ptr(" ")}, domain.ErrMissingInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, rec := newTestUserService(business)

			_, err := svc.Update(context.Background(), userSession, "user-1", tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, "Acme", repo.users["user-1"].BusinessName)
			assert.Equal(t, "Ann", repo.users["user-1"].Name)
			assert.Empty(t, rec.actions())
		})
	}

	t.Run("leaving business clears the requirement", func(t *testing.T) {
		svc, _, _, _ := newTestUserService(business)

		updated, err := svc.Update(context.Background(), userSession, "user-1", ports.UserUpdateInput{
			IsBusiness:   ptr(false),
			BusinessName: ptr(""),
		})
		require.NoError(t, err)
		assert.False(t, updated.IsBusiness)
	})
}
