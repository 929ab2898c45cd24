package ports

import (
	"context"

	"github.com/repairdesk/support-api/internal/core/domain"
)

// UserRepository persists accounts. Lookups return domain.ErrUserNotFound
// when nothing matches and Create returns domain.ErrUserExists on a taken email.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type SupportRequestRepository interface {
	Create(ctx context.Context, r *domain.SupportRequest) error
	FindByID(ctx context.Context, id string) (*domain.SupportRequest, error)
	List(ctx context.Context) ([]*domain.SupportRequest, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.SupportRequest, error)
	Update(ctx context.Context, id string, patch domain.SupportRequestPatch) (*domain.SupportRequest, error)
	Delete(ctx context.Context, id string) error
}

type KnowledgeBaseRepository interface {
	Create(ctx context.Context, k *domain.KnowledgeBase) error
	FindByID(ctx context.Context, id string) (*domain.KnowledgeBase, error)
	List(ctx context.Context) ([]*domain.KnowledgeBase, error)
	Update(ctx context.Context, id string, patch domain.KnowledgeBasePatch) (*domain.KnowledgeBase, error)
	Delete(ctx context.Context, id string) error
}

type SparePartRepository interface {
	Create(ctx context.Context, p *domain.SparePart) error
	FindByID(ctx context.Context, id string) (*domain.SparePart, error)
	List(ctx context.Context) ([]*domain.SparePart, error)
	Update(ctx context.Context, id string, patch domain.SparePartPatch) (*domain.SparePart, error)
	Delete(ctx context.Context, id string) error
}

type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) error
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	Update(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}

type TechnicianRepository interface {
	Create(ctx context.Context, t *domain.Technician) error
	FindByID(ctx context.Context, id string) (*domain.Technician, error)
	List(ctx context.Context) ([]*domain.Technician, error)
	Update(ctx context.Context, id string, patch domain.TechnicianPatch) (*domain.Technician, error)
	Delete(ctx context.Context, id string) error
}

// AuditRepository stores the append-only mutation trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	ListByEntity(ctx context.Context, entity, entityID string) ([]*domain.AuditEvent, error)
}

// SessionCache holds resolved sessions keyed by user id.
type SessionCache interface {
	Get(ctx context.Context, userID string) (domain.Session, bool, error)
	Set(ctx context.Context, s domain.Session) error
	Delete(ctx context.Context, userID string) error
}
