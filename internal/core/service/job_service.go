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

// JobService schedules technicians against support requests.
type JobService struct {
	repo  ports.JobRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewJobService(repo ports.JobRepository, audit ports.AuditRecorder, log zerolog.Logger) *JobService {
	return &JobService{repo: repo, audit: audit, log: log}
}

func (s *JobService) List(ctx context.Context) ([]*domain.Job, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobService) Create(ctx context.Context, actor domain.Session, in domain.Job) (*domain.Job, error) {
	now := time.Now().UTC()
	job := in
	job.ID = uuid.NewString()
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	metrics.JobsScheduledTotal.WithLabelValues(string(job.Priority)).Inc()
	record(s.audit, domain.EntityJob, job.ID, domain.ActionCreated, actor.UserID, nil, "")
	s.log.Info().
		Str("job_id", job.ID).
		Str("request_id", job.SupportRequestID).
		Str("technician", job.Technician).
		Time("scheduled", job.ScheduledDate).
		Msg("job scheduled")
	return &job, nil
}

func (s *JobService) Update(ctx context.Context, actor domain.Session, id string, patch domain.JobPatch) (*domain.Job, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	record(s.audit, domain.EntityJob, id, domain.ActionUpdated, actor.UserID, patch.Fields(), "")
	return updated, nil
}

func (s *JobService) Delete(ctx context.Context, actor domain.Session, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	record(s.audit, domain.EntityJob, id, domain.ActionDeleted, actor.UserID, nil, "")
	return nil
}
