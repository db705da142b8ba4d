package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"loggingnight-service/internal/domain/entity"
)

const cacheCollection = "response_cache"

// MongoCacheStore persists cache entries in MongoDB so concurrent web
// workers share one cache. Concurrency safety comes from the driver; the
// sweep only removes entries already past expiry, so it is safe alongside
// in-flight reads.
type MongoCacheStore struct {
	collection *mongo.Collection
}

// cacheDocument is the BSON mapping of one cache entry
type cacheDocument struct {
	Key       string    `bson:"key"`
	URL       string    `bson:"url"`
	Body      []byte    `bson:"body"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// NewMongoCacheStore creates the store and ensures the key index exists.
func NewMongoCacheStore(ctx context.Context, db *mongo.Database) (*MongoCacheStore, error) {
	collection := db.Collection(cacheCollection)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	return &MongoCacheStore{collection: collection}, nil
}

// Get returns the stored entry for key, expired or not.
func (s *MongoCacheStore) Get(ctx context.Context, key string) (*entity.CacheEntry, error) {
	var doc cacheDocument
	err := s.collection.FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &entity.CacheEntry{
		Key:       doc.Key,
		URL:       doc.URL,
		Body:      doc.Body,
		ExpiresAt: doc.ExpiresAt,
	}, nil
}

// Put stores or replaces the entry for its key.
func (s *MongoCacheStore) Put(ctx context.Context, entry *entity.CacheEntry) error {
	doc := cacheDocument{
		Key:       entry.Key,
		URL:       entry.URL,
		Body:      entry.Body,
		ExpiresAt: entry.ExpiresAt,
	}

	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"key": entry.Key},
		doc,
		options.Replace().SetUpsert(true))
	return err
}

// DeleteExpired removes every entry already past expiry.
func (s *MongoCacheStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": now}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// List returns all entries, newest expiry first.
func (s *MongoCacheStore) List(ctx context.Context) ([]entity.CacheEntry, error) {
	cursor, err := s.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "expires_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []entity.CacheEntry
	for cursor.Next(ctx) {
		var doc cacheDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		entries = append(entries, entity.CacheEntry{
			Key:       doc.Key,
			URL:       doc.URL,
			Body:      doc.Body,
			ExpiresAt: doc.ExpiresAt,
		})
	}
	return entries, cursor.Err()
}
