package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
)

type SparePartService struct {
	repo  ports.SparePartRepository
	audit ports.AuditRecorder
}

func NewSparePartService(repo ports.SparePartRepository, audit ports.AuditRecorder) *SparePartService {
	return &SparePartService{repo: repo, audit: audit}
}

func (s *SparePartService) List(ctx context.Context) ([]*domain.SparePart, error) {
	parts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list spare parts: %w", err)
	}
	return parts, nil
}

func (s *SparePartService) Get(ctx context.Context, id string) (*domain.SparePart, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SparePartService) Create(ctx context.Context, actor domain.Session, in domain.SparePart) (*domain.SparePart, error) {
	now := time.Now().UTC()
	part := in
	part.ID = uuid.NewString()
	part.CreatedAt = now
	part.UpdatedAt = now

	if err := part.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &part); err != nil {
		return nil, fmt.Errorf("create spare part: %w", err)
	}

	record(s.audit, domain.EntitySparePart, part.ID, domain.ActionCreated, actor.UserID, nil, "")
	return &part, nil
}

func (s *SparePartService) Update(ctx context.Context, actor domain.Session, id string, patch domain.SparePartPatch) (*domain.SparePart, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	record(s.audit, domain.EntitySparePart, id, domain.ActionUpdated, actor.UserID, patch.Fields(), "")
	return updated, nil
}

func (s *SparePartService) Delete(ctx context.Context, actor domain.Session, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	record(s.audit, domain.EntitySparePart, id, domain.ActionDeleted, actor.UserID, nil, "")
	return nil
}
