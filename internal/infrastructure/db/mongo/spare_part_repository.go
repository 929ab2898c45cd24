package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/repairdesk/support-api/internal/core/domain"
)

const collectionSpareParts = "spare_parts"

type SparePartRepository struct {
	parts collection[domain.SparePart]
}

func NewSparePartRepository(db *mongo.Database) *SparePartRepository {
	return &SparePartRepository{
		parts: newCollection[domain.SparePart](db, collectionSpareParts, domain.ErrSparePartNotFound),
	}
}

func (r *SparePartRepository) Create(ctx context.Context, p *domain.SparePart) error {
	return r.parts.insert(ctx, p)
}

func (r *SparePartRepository) FindByID(ctx context.Context, id string) (*domain.SparePart, error) {
	return r.parts.findByID(ctx, id)
}

func (r *SparePartRepository) List(ctx context.Context) ([]*domain.SparePart, error) {
	return r.parts.find(ctx, bson.M{})
}

func (r *SparePartRepository) Update(ctx context.Context, id string, p domain.SparePartPatch) (*domain.SparePart, error) {
	set := bson.M{}
	setIf(set, "partName", p.PartName)
	setIf(set, "stock", p.Stock)
	setIf(set, "price", p.Price)
	setIf(set, "description", p.Description)
	return r.parts.updateByID(ctx, id, set)
}

func (r *SparePartRepository) Delete(ctx context.Context, id string) error {
	return r.parts.deleteByID(ctx, id)
}

func (r *SparePartRepository) EnsureIndexes(ctx context.Context) error {
	return r.parts.ensureIndexes(ctx)
}
