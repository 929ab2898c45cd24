package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/repairdesk/support-api/internal/api/middleware"
	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
)

var (
	adminSession = domain.Session{UserID: "admin-1", Role: domain.RoleAdmin}
	userSession  = domain.Session{UserID: "user-1", Role: domain.RoleUser}
)

// newContext builds an echo context with the validator registered and, when
// sess is non-nil, the resolved session set the way the Session middleware would.
func newContext(t *testing.T, method, target, body string, sess *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		c.Set(middleware.SessionKey, *sess)
	}
	return c, rec
}

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	refreshFn  func(ctx context.Context, token string) (*ports.TokenPair, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, token string) (*ports.TokenPair, error) {
	return s.refreshFn(ctx, token)
}

type stubUserService struct {
	users     map[string]*domain.User
	updateIn  ports.UserUpdateInput
	updateErr error
	deleteErr error
}

func (s *stubUserService) List(context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUserService) Get(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserService) Update(_ context.Context, _ domain.Session, id string, in ports.UserUpdateInput) (*domain.User, error) {
	s.updateIn = in
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	u := *s.users[id]
	if in.Name != nil {
		u.Name = *in.Name
	}
	return &u, nil
}

func (s *stubUserService) Delete(context.Context, domain.Session, string) error {
	return s.deleteErr
}

type stubRequestService struct {
	created   domain.SupportRequest
	patch     domain.SupportRequestPatch
	actor     domain.Session
	byUserArg string
	err       error
}

func (s *stubRequestService) List(context.Context) ([]*domain.SupportRequest, error) {
	return []*domain.SupportRequest{{ID: "r1"}, {ID: "r2"}}, s.err
}

func (s *stubRequestService) ListByUser(_ context.Context, userID string) ([]*domain.SupportRequest, error) {
	s.byUserArg = userID
	return []*domain.SupportRequest{{ID: "r1", UserID: userID}}, s.err
}

func (s *stubRequestService) Get(_ context.Context, id string) (*domain.SupportRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.SupportRequest{ID: id}, nil
}

func (s *stubRequestService) Create(_ context.Context, actor domain.Session, in domain.SupportRequest) (*domain.SupportRequest, error) {
	s.actor, s.created = actor, in
	if s.err != nil {
		return nil, s.err
	}
	in.ID, in.UserID = "r9", actor.UserID
	return &in, nil
}

func (s *stubRequestService) Update(_ context.Context, actor domain.Session, id string, patch domain.SupportRequestPatch) (*domain.SupportRequest, error) {
	s.actor, s.patch = actor, patch
	if s.err != nil {
		return nil, s.err
	}
	return &domain.SupportRequest{ID: id}, nil
}

func (s *stubRequestService) Delete(_ context.Context, actor domain.Session, _ string) error {
	s.actor = actor
	return s.err
}

func (s *stubRequestService) History(_ context.Context, id string) ([]*domain.AuditEvent, error) {
	return []*domain.AuditEvent{{EntityID: id, Action: domain.ActionCreated}}, s.err
}

type stubJobService struct {
	created domain.Job
	patch   domain.JobPatch
	err     error
}

func (s *stubJobService) List(context.Context) ([]*domain.Job, error) {
	return []*domain.Job{{ID: "j1"}}, nil
}

func (s *stubJobService) Get(_ context.Context, id string) (*domain.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Job{ID: id}, nil
}

func (s *stubJobService) Create(_ context.Context, _ domain.Session, in domain.Job) (*domain.Job, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	in.ID = "j2"
	return &in, nil
}

func (s *stubJobService) Update(_ context.Context, _ domain.Session, id string, patch domain.JobPatch) (*domain.Job, error) {
	s.patch = patch
	return &domain.Job{ID: id}, s.err
}

func (s *stubJobService) Delete(context.Context, domain.Session, string) error {
	return s.err
}
