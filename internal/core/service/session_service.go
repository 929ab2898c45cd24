package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
)

type sessionService struct {
	users ports.UserRepository
	cache ports.SessionCache
	log   zerolog.Logger
}

// NewSessionService returns a SessionService that reads through cache to the
// user repository. cache may be nil, in which case every call hits the repository.
func NewSessionService(users ports.UserRepository, cache ports.SessionCache, log zerolog.Logger) ports.SessionService {
	return &sessionService{users: users, cache: cache, log: log}
}

// Resolve returns the caller's session. A deleted account yields domain.ErrUserNotFound.
func (s *sessionService) Resolve(ctx context.Context, userID string) (domain.Session, error) {
	if s.cache != nil {
		sess, ok, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("session cache read failed, falling back to store")
		} else if ok {
			return sess, nil
		}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("resolve session: %w", err)
	}

	sess := domain.Session{UserID: user.ID, Role: user.Role}
	s.store(ctx, sess)
	return sess, nil
}

// Warm caches the session of a freshly authenticated user.
func (s *sessionService) Warm(ctx context.Context, user *domain.User) {
	s.store(ctx, domain.Session{UserID: user.ID, Role: user.Role})
}

// Invalidate drops a cached session after the account changed or was removed.
func (s *sessionService) Invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to invalidate session")
	}
}

func (s *sessionService) store(ctx context.Context, sess domain.Session) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, sess); err != nil {
		s.log.Warn().Err(err).Str("user_id", sess.UserID).Msg("failed to cache session")
	}
}
