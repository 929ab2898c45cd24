package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
)

type TechnicianService struct {
	repo  ports.TechnicianRepository
	audit ports.AuditRecorder
}

func NewTechnicianService(repo ports.TechnicianRepository, audit ports.AuditRecorder) *TechnicianService {
	return &TechnicianService{repo: repo, audit: audit}
}

func (s *TechnicianService) List(ctx context.Context) ([]*domain.Technician, error) {
	techs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list technicians: %w", err)
	}
	return techs, nil
}

func (s *TechnicianService) Get(ctx context.Context, id string) (*domain.Technician, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TechnicianService) Create(ctx context.Context, actor domain.Session, in domain.Technician) (*domain.Technician, error) {
	now := time.Now().UTC()
	tech := domain.Technician{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := tech.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &tech); err != nil {
		return nil, fmt.Errorf("create technician: %w", err)
	}

	record(s.audit, domain.EntityTechnician, tech.ID, domain.ActionCreated, actor.UserID, nil, "")
	return &tech, nil
}

func (s *TechnicianService) Update(ctx context.Context, actor domain.Session, id string, patch domain.TechnicianPatch) (*domain.Technician, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	record(s.audit, domain.EntityTechnician, id, domain.ActionUpdated, actor.UserID, patch.Fields(), "")
	return updated, nil
}

func (s *TechnicianService) Delete(ctx context.Context, actor domain.Session, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	record(s.audit, domain.EntityTechnician, id, domain.ActionDeleted, actor.UserID, nil, "")
	return nil
}
