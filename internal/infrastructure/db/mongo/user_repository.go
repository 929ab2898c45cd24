package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/repairdesk/support-api/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository implements ports.UserRepository using MongoDB.
type UserRepository struct {
	users collection[domain.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{users: newCollection[domain.User](db, collectionUsers, domain.ErrUserNotFound)}
}

// Create inserts a user. A taken email surfaces as domain.ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.users.insert(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.users.findByID(ctx, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.users.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	return r.users.find(ctx, bson.M{})
}

func (r *UserRepository) Update(ctx context.Context, id string, p domain.UserPatch) (*domain.User, error) {
	set := bson.M{}
	setIf(set, "name", p.Name)
	setIf(set, "email", p.Email)
	setIf(set, "password", p.PasswordHash)
	setIf(set, "role", p.Role)
	setIf(set, "isBusiness", p.IsBusiness)
	setIf(set, "businessName", p.BusinessName)
	setIf(set, "address", p.Address)

	user, err := r.users.updateByID(ctx, id, set)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return nil, domain.ErrUserExists
	}
	return user, err
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.users.deleteByID(ctx, id)
}

// EnsureIndexes creates the unique id and email indexes.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	email := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if err := r.users.ensureIndexes(ctx, email); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	return nil
}
