package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/repairdesk/support-api/internal/core/domain"
)

const collectionKnowledgeBases = "knowledge_bases"

type KnowledgeBaseRepository struct {
	kbs collection[domain.KnowledgeBase]
}

func NewKnowledgeBaseRepository(db *mongo.Database) *KnowledgeBaseRepository {
	return &KnowledgeBaseRepository{
		kbs: newCollection[domain.KnowledgeBase](db, collectionKnowledgeBases, domain.ErrKnowledgeBaseNotFound),
	}
}

func (r *KnowledgeBaseRepository) Create(ctx context.Context, kb *domain.KnowledgeBase) error {
	return r.kbs.insert(ctx, kb)
}

func (r *KnowledgeBaseRepository) FindByID(ctx context.Context, id string) (*domain.KnowledgeBase, error) {
	return r.kbs.findByID(ctx, id)
}

func (r *KnowledgeBaseRepository) List(ctx context.Context) ([]*domain.KnowledgeBase, error) {
	return r.kbs.find(ctx, bson.M{})
}

func (r *KnowledgeBaseRepository) Update(ctx context.Context, id string, p domain.KnowledgeBasePatch) (*domain.KnowledgeBase, error) {
	set := bson.M{}
	setIf(set, "title", p.Title)
	setIf(set, "category", p.Category)
	if p.Symptoms != nil {
		set["symptoms"] = p.Symptoms
	}
	if p.SolutionSteps != nil {
		set["solutionSteps"] = p.SolutionSteps
	}
	return r.kbs.updateByID(ctx, id, set)
}

func (r *KnowledgeBaseRepository) Delete(ctx context.Context, id string) error {
	return r.kbs.deleteByID(ctx, id)
}

func (r *KnowledgeBaseRepository) EnsureIndexes(ctx context.Context) error {
	return r.kbs.ensureIndexes(ctx, mongo.IndexModel{Keys: bson.D{{Key: "category", Value: 1}}})
}
