package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
)

type KnowledgeBaseService struct {
	repo  ports.KnowledgeBaseRepository
	audit ports.AuditRecorder
}

func NewKnowledgeBaseService(repo ports.KnowledgeBaseRepository, audit ports.AuditRecorder) *KnowledgeBaseService {
	return &KnowledgeBaseService{repo: repo, audit: audit}
}

func (s *KnowledgeBaseService) List(ctx context.Context) ([]*domain.KnowledgeBase, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list knowledge bases: %w", err)
	}
	return items, nil
}

func (s *KnowledgeBaseService) Get(ctx context.Context, id string) (*domain.KnowledgeBase, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *KnowledgeBaseService) Create(ctx context.Context, actor domain.Session, in domain.KnowledgeBase) (*domain.KnowledgeBase, error) {
	now := time.Now().UTC()
	kb := in
	kb.ID = uuid.NewString()
	kb.CreatedAt = now
	kb.UpdatedAt = now

	if err := kb.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &kb); err != nil {
		return nil, fmt.Errorf("create knowledge base: %w", err)
	}

	record(s.audit, domain.EntityKnowledgeBase, kb.ID, domain.ActionCreated, actor.UserID, nil, "")
	return &kb, nil
}

func (s *KnowledgeBaseService) Update(ctx context.Context, actor domain.Session, id string, patch domain.KnowledgeBasePatch) (*domain.KnowledgeBase, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	record(s.audit, domain.EntityKnowledgeBase, id, domain.ActionUpdated, actor.UserID, patch.Fields(), "")
	return updated, nil
}

func (s *KnowledgeBaseService) Delete(ctx context.Context, actor domain.Session, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	record(s.audit, domain.EntityKnowledgeBase, id, domain.ActionDeleted, actor.UserID, nil, "")
	return nil
}
