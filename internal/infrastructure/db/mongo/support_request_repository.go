package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/repairdesk/support-api/internal/core/domain"
)

const collectionSupportRequests = "support_requests"

type SupportRequestRepository struct {
	reqs collection[domain.SupportRequest]
}

func NewSupportRequestRepository(db *mongo.Database) *SupportRequestRepository {
	return &SupportRequestRepository{
		reqs: newCollection[domain.SupportRequest](db, collectionSupportRequests, domain.ErrSupportRequestNotFound),
	}
}

func (r *SupportRequestRepository) Create(ctx context.Context, req *domain.SupportRequest) error {
	return r.reqs.insert(ctx, req)
}

func (r *SupportRequestRepository) FindByID(ctx context.Context, id string) (*domain.SupportRequest, error) {
	return r.reqs.findByID(ctx, id)
}

func (r *SupportRequestRepository) List(ctx context.Context) ([]*domain.SupportRequest, error) {
	return r.reqs.find(ctx, bson.M{})
}

// ListByUser returns the requests opened by userID.
func (r *SupportRequestRepository) ListByUser(ctx context.Context, userID string) ([]*domain.SupportRequest, error) {
	return r.reqs.find(ctx, bson.M{"userId": userID})
}

func (r *SupportRequestRepository) Update(ctx context.Context, id string, p domain.SupportRequestPatch) (*domain.SupportRequest, error) {
	set := bson.M{}
	setIf(set, "deviceType", p.DeviceType)
	setIf(set, "problemDescription", p.ProblemDescription)
	setIf(set, "quote", p.Quote)
	setIf(set, "scheduledDate", p.ScheduledDate)
	setIf(set, "status", p.Status)
	return r.reqs.updateByID(ctx, id, set)
}

func (r *SupportRequestRepository) Delete(ctx context.Context, id string) error {
	return r.reqs.deleteByID(ctx, id)
}

func (r *SupportRequestRepository) EnsureIndexes(ctx context.Context) error {
	return r.reqs.ensureIndexes(ctx,
		mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}}},
		mongo.IndexModel{Keys: bson.D{{Key: "status", Value: 1}}},
	)
}
