package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the uniform persistence contract over one document
// collection. All resource kinds (schedules, contacts, faculties,
// announcements) share it; services depend on the interface so tests
// can substitute an in-memory double.
type Collection[T any] interface {
	// Insert stores a new document and returns its generated identifier.
	Insert(ctx context.Context, doc *T) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	// FindAll returns every document in storage-native order. Callers
	// must not depend on ordering.
	FindAll(ctx context.Context) ([]T, error)
	// UpdateByID applies a partial update: fields in set are written,
	// fields in unset are removed from the document entirely. It returns
	// the post-update document.
	UpdateByID(ctx context.Context, id primitive.ObjectID, set, unset bson.M) (*T, error)
	// DeleteByID removes the document. Deleting an identifier that does
	// not resolve (including a second delete of the same id) returns
	// ErrNotFound.
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type documents[T any] struct {
	coll *mongo.Collection
}

// NewCollection returns a Collection backed by the named MongoDB
// collection.
func NewCollection[T any](db *mongo.Database, name string) Collection[T] {
	return &documents[T]{coll: db.Collection(name)}
}

func (d *documents[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := d.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

func (d *documents[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	doc := new(T)
	err := d.coll.FindOne(ctx, bson.M{"_id": id}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find by id: %w", err)
	}
	return doc, nil
}

func (d *documents[T]) FindAll(ctx context.Context) ([]T, error) {
	cursor, err := d.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode all: %w", err)
	}
	return docs, nil
}

func (d *documents[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set, unset bson.M) (*T, error) {
	// Nothing to change: degrade to a read so callers still get the
	// current document (and NotFound for unknown ids).
	if len(set) == 0 && len(unset) == 0 {
		return d.FindByID(ctx, id)
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	doc := new(T)
	err := d.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update by id: %w", err)
	}
	return doc, nil
}

func (d *documents[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := d.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete by id: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
