package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
	"github.com/repairdesk/support-api/internal/infrastructure/metrics"
)

const passwordCost = 10

// AuthService implements registration, login and token refresh.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionService
	tokens   *TokenIssuer
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionService, tokens *TokenIssuer, audit ports.AuditRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, tokens: tokens, audit: audit, log: log}
}

// Register validates the sign-up fields in order (presence, business name,
// email, password) and persists a new account with the user role.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(in.Email)
	if in.Name == "" || email == "" || in.Password == "" || in.Address == "" {
		return nil, domain.ErrMissingInput
	}
	if in.IsBusiness && strings.TrimSpace(in.BusinessName) == "" {
		return nil, domain.ErrBusinessNameRequired
	}
	if !CheckEmail(email) {
		return nil, domain.ErrInvalidEmail
	}
	if !CheckPassword(in.Password) {
		return nil, domain.ErrInvalidPassword
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		IsBusiness:   in.IsBusiness,
		Address:      in.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.IsBusiness {
		user.BusinessName = in.BusinessName
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	record(s.audit, domain.EntityUser, user.ID, domain.ActionCreated, user.ID, nil, "")
	s.log.Info().Str("user_id", user.ID).Bool("business", user.IsBusiness).Msg("user registered")
	return user, nil
}

// Login checks the credentials and returns a one hour access token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrMissingInput
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.LoginToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("login: sign token: %w", err)
	}
	pair, err := s.tokens.GenerateTokens(user.ID)
	if err != nil {
		return nil, fmt.Errorf("login: sign refresh token: %w", err)
	}

	s.sessions.Warm(ctx, user)
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return &ports.LoginResult{
		Token:        token,
		RefreshToken: pair.RefreshToken,
		ID:           user.ID,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair. Tokens of
// deleted accounts are rejected.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	userID, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("refresh: %w", err)
	}

	return s.tokens.GenerateTokens(userID)
}

// EnsureAdmin creates the bootstrap admin account unless the email is taken.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("ensure admin: %w", err)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	if name == "" {
		name = "Administrator"
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Address:      "-",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, admin); err != nil && !errors.Is(err, domain.ErrUserExists) {
		return fmt.Errorf("ensure admin: %w", err)
	}

	s.log.Info().Str("email", email).Msg("bootstrap admin ready")
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
