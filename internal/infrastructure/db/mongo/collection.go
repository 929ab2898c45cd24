package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection wraps a Mongo collection of T documents keyed on the business
// "id" field. Every operation runs under defaultTimeout and a missing
// document is reported as notFound.
type collection[T any] struct {
	col      *mongo.Collection
	notFound error
}

func newCollection[T any](db *mongo.Database, name string, notFound error) collection[T] {
	return collection[T]{col: db.Collection(name), notFound: notFound}
}

func (c collection[T]) insert(ctx context.Context, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := c.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert %s: %w", c.col.Name(), err)
	}
	return nil
}

func (c collection[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	if err := c.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, fmt.Errorf("find %s: %w", c.col.Name(), err)
	}
	return &doc, nil
}

func (c collection[T]) findByID(ctx context.Context, id string) (*T, error) {
	return c.findOne(ctx, bson.M{"id": id})
}

// find returns every matching document in insertion order.
func (c collection[T]) find(ctx context.Context, filter bson.M) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := c.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.col.Name(), err)
	}
	defer cur.Close(ctx)

	docs := make([]*T, 0)
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.col.Name(), err)
		}
		docs = append(docs, &doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", c.col.Name(), err)
	}
	return docs, nil
}

// updateByID merges set into the document and returns the post-update state.
// updatedAt is always refreshed.
func (c collection[T]) updateByID(ctx context.Context, id string, set bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if set == nil {
		set = bson.M{}
	}
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc T
	err := c.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, fmt.Errorf("update %s: %w", c.col.Name(), err)
	}
	return &doc, nil
}

func (c collection[T]) deleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return c.notFound
	}
	return nil
}

// ensureIndexes creates a unique index on "id" plus any extra models.
func (c collection[T]) ensureIndexes(ctx context.Context, extra ...mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := append([]mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}, extra...)

	if _, err := c.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("indexes %s: %w", c.col.Name(), err)
	}
	return nil
}

// setIf adds key to set when v is non-nil.
func setIf[V any](set bson.M, key string, v *V) {
	if v != nil {
		set[key] = *v
	}
}
