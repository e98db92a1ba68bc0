package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ayush/bemestar-report/internal/models"
)

// MongoStore keeps reports as documents keyed by their UUID.
type MongoStore struct {
	col *mongo.Collection
	now func() time.Time
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("relatorios"), now: time.Now}
}

func (s *MongoStore) Save(ctx context.Context, r *models.Report) error {
	r.CreatedAt = s.now().UTC().Truncate(time.Millisecond)
	if _, err := s.col.InsertOne(ctx, r); err != nil {
		return fmt.Errorf("mongo insert: %w", err)
	}
	return nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*models.Report, bool, error) {
	if !validID(id) {
		return nil, false, nil
	}
	var r models.Report
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("mongo find: %w", err)
	}
	return &r, true, nil
}
