package service

import (
	"context"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campushub/campushub-backend/internal/repository"
)

// memCollection is an in-memory repository.Collection double. Documents
// are held as bson maps so $set/$unset semantics behave like the real
// store: a cleared field is physically absent.
type memCollection[T any] struct {
	mu        sync.Mutex
	order     []primitive.ObjectID
	docs      map[primitive.ObjectID]bson.M
	insertErr error
}

func newMemCollection[T any]() *memCollection[T] {
	return &memCollection[T]{docs: make(map[primitive.ObjectID]bson.M)}
}

func toDocMap(v interface{}) (bson.M, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := bson.M{}
	if err := bson.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromDocMap[T any](m bson.M) (*T, error) {
	data, err := bson.Marshal(m)
	if err != nil {
		return nil, err
	}
	doc := new(T)
	if err := bson.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *memCollection[T]) Insert(_ context.Context, doc *T) (primitive.ObjectID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.insertErr != nil {
		return primitive.NilObjectID, c.insertErr
	}
	m, err := toDocMap(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	m["_id"] = id
	c.docs[id] = m
	c.order = append(c.order, id)
	return id, nil
}

func (c *memCollection[T]) FindByID(_ context.Context, id primitive.ObjectID) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return fromDocMap[T](m)
}

func (c *memCollection[T]) FindAll(_ context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		m, ok := c.docs[id]
		if !ok {
			continue
		}
		doc, err := fromDocMap[T](m)
		if err != nil {
			return nil, err
		}
		out = append(out, *doc)
	}
	return out, nil
}

func (c *memCollection[T]) UpdateByID(_ context.Context, id primitive.ObjectID, set, unset bson.M) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for k, v := range set {
		m[k] = v
	}
	for k := range unset {
		delete(m, k)
	}
	// Round-trip through bson so set values of any Go type normalize
	// the same way the driver would store them.
	norm, err := toDocMap(m)
	if err != nil {
		return nil, err
	}
	c.docs[id] = norm
	return fromDocMap[T](norm)
}

func (c *memCollection[T]) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(c.docs, id)
	return nil
}

// hasField reports whether the stored document carries the given key.
func (c *memCollection[T]) hasField(t *testing.T, id primitive.ObjectID, key string) bool {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.docs[id]
	if !ok {
		t.Fatalf("document %s not stored", id.Hex())
	}
	_, ok = m[key]
	return ok
}
