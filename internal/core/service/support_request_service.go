package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
	"github.com/repairdesk/support-api/internal/infrastructure/metrics"
)

type SupportRequestService struct {
	repo    ports.SupportRequestRepository
	history ports.AuditRepository
	audit   ports.AuditRecorder
	log     zerolog.Logger
}

func NewSupportRequestService(repo ports.SupportRequestRepository, history ports.AuditRepository, audit ports.AuditRecorder, log zerolog.Logger) *SupportRequestService {
	return &SupportRequestService{repo: repo, history: history, audit: audit, log: log}
}

func (s *SupportRequestService) List(ctx context.Context) ([]*domain.SupportRequest, error) {
	reqs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list support requests: %w", err)
	}
	return reqs, nil
}

func (s *SupportRequestService) ListByUser(ctx context.Context, userID string) ([]*domain.SupportRequest, error) {
	reqs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list support requests of %s: %w", userID, err)
	}
	return reqs, nil
}

func (s *SupportRequestService) Get(ctx context.Context, id string) (*domain.SupportRequest, error) {
	return s.repo.FindByID(ctx, id)
}

// Create opens a request on behalf of actor. The owner is always the caller
// and the status starts at pending unless an admin sets it.
func (s *SupportRequestService) Create(ctx context.Context, actor domain.Session, in domain.SupportRequest) (*domain.SupportRequest, error) {
	now := time.Now().UTC()
	req := in
	req.ID = uuid.NewString()
	req.UserID = actor.UserID
	req.CreatedAt = now
	req.UpdatedAt = now
	if req.Status == "" || !actor.IsAdmin() {
		req.Status = domain.StatusPending
	}
	if !actor.IsAdmin() {
		req.Quote = nil
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &req); err != nil {
		return nil, fmt.Errorf("create support request: %w", err)
	}

	metrics.SupportRequestsCreatedTotal.WithLabelValues(string(req.DeviceType)).Inc()
	record(s.audit, domain.EntitySupportRequest, req.ID, domain.ActionCreated, actor.UserID, nil, string(req.Status))
	s.log.Info().Str("request_id", req.ID).Str("user_id", req.UserID).Str("device", string(req.DeviceType)).Msg("support request created")
	return &req, nil
}

// Update applies patch. Non-admins may only edit their own requests and may
// not touch status or quote.
func (s *SupportRequestService) Update(ctx context.Context, actor domain.Session, id string, patch domain.SupportRequestPatch) (*domain.SupportRequest, error) {
	if !actor.IsAdmin() && patch.TouchesAdminFields() {
		return nil, domain.ErrForbidden
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		metrics.SupportRequestStatusChangesTotal.WithLabelValues(string(*patch.Status)).Inc()
	}
	record(s.audit, domain.EntitySupportRequest, id, domain.ActionUpdated, actor.UserID, patch.Fields(), string(updated.Status))
	return updated, nil
}

func (s *SupportRequestService) Delete(ctx context.Context, actor domain.Session, id string) error {
	if err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	record(s.audit, domain.EntitySupportRequest, id, domain.ActionDeleted, actor.UserID, nil, "")
	return nil
}

// History returns the audit trail of a request, oldest first.
func (s *SupportRequestService) History(ctx context.Context, id string) ([]*domain.AuditEvent, error) {
	events, err := s.history.ListByEntity(ctx, domain.EntitySupportRequest, id)
	if err != nil {
		return nil, fmt.Errorf("support request history: %w", err)
	}
	return events, nil
}

func (s *SupportRequestService) authorize(ctx context.Context, actor domain.Session, id string) error {
	if actor.IsAdmin() {
		return nil
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanActOn(current.UserID) {
		return domain.ErrForbidden
	}
	return nil
}
