package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repairdesk/support-api/internal/core/domain"
)

func TestJobService_Lifecycle(t *testing.T) {
	repo := newStubJobRepo()
	rec := &recorder{}
	svc := NewJobService(repo, rec, zerolog.Nop())
	ctx := context.Background()

	job, err := svc.Create(ctx, adminSession, domain.Job{
		SupportRequestID: "req-1",
		Technician:       "Bob",
		Priority:         domain.PriorityHigh,
		ScheduledDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)

	got, err := svc.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.Technician, got.Technician)
	assert.Equal(t, job.ScheduledDate, got.ScheduledDate)

	done := time.Now().UTC()
	updated, err := svc.Update(ctx, adminSession, job.ID, domain.JobPatch{CompletedAt: &done})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)

	require.NoError(t, svc.Delete(ctx, adminSession, job.ID))
	_, err = svc.Get(ctx, job.ID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	assert.Equal(t, []domain.AuditAction{domain.ActionCreated, domain.ActionUpdated, domain.ActionDeleted}, rec.actions())
}

func TestJobService_Create_Validation(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), adminSession, domain.Job{SupportRequestID: "req-1", Technician: "Bob", Priority: domain.PriorityLow})
	assert.ErrorIs(t, err, domain.ErrMissingInput)

	_, err = svc.Create(context.Background(), adminSession, domain.Job{
		SupportRequestID: "req-1", Technician: "Bob", Priority: "asap", ScheduledDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestJobService_Update_InvalidPriority(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), nil, zerolog.Nop())
	p := domain.Priority("whenever")

	_, err := svc.Update(context.Background(), adminSession, "job123", domain.JobPatch{Priority: &p})
	assert.ErrorIs(t, err, domain.ErrValidation)

	low := domain.PriorityLow
	_, err = svc.Update(context.Background(), adminSession, "job123", domain.JobPatch{Priority: &low})
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

type memTechnicianRepo struct {
	techs map[string]*domain.Technician
}

func (r *memTechnicianRepo) Create(_ context.Context, t *domain.Technician) error {
	clone := *t
	r.techs[t.ID] = &clone
	return nil
}

func (r *memTechnicianRepo) FindByID(_ context.Context, id string) (*domain.Technician, error) {
	t, ok := r.techs[id]
	if !ok {
		return nil, domain.ErrTechnicianNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *memTechnicianRepo) List(_ context.Context) ([]*domain.Technician, error) {
	var out []*domain.Technician
	for _, t := range r.techs {
		out = append(out, t)
	}
	return out, nil
}

func (r *memTechnicianRepo) Update(_ context.Context, id string, p domain.TechnicianPatch) (*domain.Technician, error) {
	t, ok := r.techs[id]
	if !ok {
		return nil, domain.ErrTechnicianNotFound
	}
	if p.Name != nil {
		t.Name = *p.Name
	}
	return t, nil
}

func (r *memTechnicianRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.techs[id]; !ok {
		return domain.ErrTechnicianNotFound
	}
	delete(r.techs, id)
	return nil
}

func TestTechnicianService(t *testing.T) {
	repo := &memTechnicianRepo{techs: map[string]*domain.Technician{}}
	svc := NewTechnicianService(repo, &recorder{})
	ctx := context.Background()

	_, err := svc.Create(ctx, adminSession, domain.Technician{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrMissingInput)

	tech, err := svc.Create(ctx, adminSession, domain.Technician{Name: " Grace "})
	require.NoError(t, err)
	assert.Equal(t, "Grace", tech.Name)

	empty := ""
	_, err = svc.Update(ctx, adminSession, tech.ID, domain.TechnicianPatch{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrMissingInput)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	assert.ErrorIs(t, svc.Delete(ctx, adminSession, "nope"), domain.ErrTechnicianNotFound)
}
