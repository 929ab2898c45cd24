package ports

import (
	"context"

	"github.com/repairdesk/support-api/internal/core/domain"
)

// RegisterInput carries the fields of a sign-up request.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Address      string
	IsBusiness   bool
	BusinessName string
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token        string
	RefreshToken string
	ID           string
	User         *domain.User
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// SessionService resolves the caller behind an authenticated user id.
type SessionService interface {
	Resolve(ctx context.Context, userID string) (domain.Session, error)
	Warm(ctx context.Context, user *domain.User)
	Invalidate(ctx context.Context, userID string)
}

// UserUpdateInput is a partial account update. Password is plain text and is
// hashed by the service.
type UserUpdateInput struct {
	Name         *string
	Email        *string
	Password     *string
	Role         *string
	IsBusiness   *bool
	BusinessName *string
	Address      *string
}

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, actor domain.Session, id string, in UserUpdateInput) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Session, id string) error
}

type SupportRequestService interface {
	List(ctx context.Context) ([]*domain.SupportRequest, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.SupportRequest, error)
	Get(ctx context.Context, id string) (*domain.SupportRequest, error)
	Create(ctx context.Context, actor domain.Session, in domain.SupportRequest) (*domain.SupportRequest, error)
	Update(ctx context.Context, actor domain.Session, id string, patch domain.SupportRequestPatch) (*domain.SupportRequest, error)
	Delete(ctx context.Context, actor domain.Session, id string) error
	History(ctx context.Context, id string) ([]*domain.AuditEvent, error)
}

type KnowledgeBaseService interface {
	List(ctx context.Context) ([]*domain.KnowledgeBase, error)
	Get(ctx context.Context, id string) (*domain.KnowledgeBase, error)
	Create(ctx context.Context, actor domain.Session, in domain.KnowledgeBase) (*domain.KnowledgeBase, error)
	Update(ctx context.Context, actor domain.Session, id string, patch domain.KnowledgeBasePatch) (*domain.KnowledgeBase, error)
	Delete(ctx context.Context, actor domain.Session, id string) error
}

type SparePartService interface {
	List(ctx context.Context) ([]*domain.SparePart, error)
	Get(ctx context.Context, id string) (*domain.SparePart, error)
	Create(ctx context.Context, actor domain.Session, in domain.SparePart) (*domain.SparePart, error)
	Update(ctx context.Context, actor domain.Session, id string, patch domain.SparePartPatch) (*domain.SparePart, error)
	Delete(ctx context.Context, actor domain.Session, id string) error
}

type JobService interface {
	List(ctx context.Context) ([]*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, actor domain.Session, in domain.Job) (*domain.Job, error)
	Update(ctx context.Context, actor domain.Session, id string, patch domain.JobPatch) (*domain.Job, error)
	Delete(ctx context.Context, actor domain.Session, id string) error
}

type TechnicianService interface {
	List(ctx context.Context) ([]*domain.Technician, error)
	Get(ctx context.Context, id string) (*domain.Technician, error)
	Create(ctx context.Context, actor domain.Session, in domain.Technician) (*domain.Technician, error)
	Update(ctx context.Context, actor domain.Session, id string, patch domain.TechnicianPatch) (*domain.Technician, error)
	Delete(ctx context.Context, actor domain.Session, id string) error
}

// AuditRecorder accepts audit events without blocking the caller.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
