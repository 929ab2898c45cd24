package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/repairdesk/support-api/internal/core/domain"
)

const collectionTechnicians = "technicians"

type TechnicianRepository struct {
	techs collection[domain.Technician]
}

func NewTechnicianRepository(db *mongo.Database) *TechnicianRepository {
	return &TechnicianRepository{
		techs: newCollection[domain.Technician](db, collectionTechnicians, domain.ErrTechnicianNotFound),
	}
}

func (r *TechnicianRepository) Create(ctx context.Context, t *domain.Technician) error {
	return r.techs.insert(ctx, t)
}

func (r *TechnicianRepository) FindByID(ctx context.Context, id string) (*domain.Technician, error) {
	return r.techs.findByID(ctx, id)
}

func (r *TechnicianRepository) List(ctx context.Context) ([]*domain.Technician, error) {
	return r.techs.find(ctx, bson.M{})
}

func (r *TechnicianRepository) Update(ctx context.Context, id string, p domain.TechnicianPatch) (*domain.Technician, error) {
	set := bson.M{}
	setIf(set, "name", p.Name)
	return r.techs.updateByID(ctx, id, set)
}

func (r *TechnicianRepository) Delete(ctx context.Context, id string) error {
	return r.techs.deleteByID(ctx, id)
}

func (r *TechnicianRepository) EnsureIndexes(ctx context.Context) error {
	return r.techs.ensureIndexes(ctx)
}
