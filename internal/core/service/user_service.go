package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
)

type UserService struct {
	repo     ports.UserRepository
	sessions ports.SessionService
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewUserService(repo ports.UserRepository, sessions ports.SessionService, audit ports.AuditRecorder, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, sessions: sessions, audit: audit, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial account update. Callers may edit only themselves
// unless they are admins, and only admins may change a role. Email and
// password changes are re-validated and the password is re-hashed.
func (s *UserService) Update(ctx context.Context, actor domain.Session, id string, in ports.UserUpdateInput) (*domain.User, error) {
	if !actor.CanActOn(id) {
		return nil, domain.ErrForbidden
	}
	if in.Role != nil && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	patch := domain.UserPatch{
		Name:         in.Name,
		IsBusiness:   in.IsBusiness,
		BusinessName: in.BusinessName,
		Address:      in.Address,
		Role:         in.Role,
	}
	if in.Role != nil && !domain.ValidRole(*in.Role) {
		return nil, domain.NewValidationError("role must be one of: user admin")
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if !CheckEmail(email) {
			return nil, domain.ErrInvalidEmail
		}
		patch.Email = &email
	}
	if in.Password != nil {
		if !CheckPassword(*in.Password) {
			return nil, domain.ErrInvalidPassword
		}
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkAccount(patch.ApplyTo(*current)); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if in.Role != nil {
		s.sessions.Invalidate(ctx, id)
	}
	record(s.audit, domain.EntityUser, id, domain.ActionUpdated, actor.UserID, patch.Fields(), "")
	return updated, nil
}

// checkAccount enforces the profile invariants on the post-update state.
func checkAccount(u domain.User) error {
	if strings.TrimSpace(u.Name) == "" || strings.TrimSpace(u.Address) == "" {
		return domain.ErrMissingInput
	}
	if u.IsBusiness && strings.TrimSpace(u.BusinessName) == "" {
		return domain.ErrBusinessNameRequired
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, actor domain.Session, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.sessions.Invalidate(ctx, id)
	record(s.audit, domain.EntityUser, id, domain.ActionDeleted, actor.UserID, nil, "")
	s.log.Info().Str("user_id", id).Str("actor", actor.UserID).Msg("user deleted")
	return nil
}
