package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/repairdesk/support-api/internal/core/domain"
)

const collectionJobs = "jobs"

type JobRepository struct {
	jobs collection[domain.Job]
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{jobs: newCollection[domain.Job](db, collectionJobs, domain.ErrJobNotFound)}
}

func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	return r.jobs.insert(ctx, j)
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	return r.jobs.findByID(ctx, id)
}

func (r *JobRepository) List(ctx context.Context) ([]*domain.Job, error) {
	return r.jobs.find(ctx, bson.M{})
}

func (r *JobRepository) Update(ctx context.Context, id string, p domain.JobPatch) (*domain.Job, error) {
	set := bson.M{}
	setIf(set, "supportRequestId", p.SupportRequestID)
	setIf(set, "technician", p.Technician)
	setIf(set, "priority", p.Priority)
	setIf(set, "scheduledDate", p.ScheduledDate)
	setIf(set, "completedAt", p.CompletedAt)
	return r.jobs.updateByID(ctx, id, set)
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	return r.jobs.deleteByID(ctx, id)
}

func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	return r.jobs.ensureIndexes(ctx,
		mongo.IndexModel{Keys: bson.D{{Key: "supportRequestId", Value: 1}}},
		mongo.IndexModel{Keys: bson.D{{Key: "scheduledDate", Value: 1}}},
	)
}
