// Package repository holds the MongoDB persistence layer.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"serena/internal/model"
)

// HistoryRepo is the durable audit store: append-only turn records plus the
// anonymized interactions of the free-text analysis path.
type HistoryRepo interface {
	Append(ctx context.Context, record *model.TurnRecord) error
	GetBySessionID(ctx context.Context, sessionID string) ([]*model.TurnRecord, error)
	SaveInteraction(ctx context.Context, interaction *model.Interaction) error
}

type historyRepo struct {
	turns        *mongo.Collection
	interactions *mongo.Collection
}

// NewHistoryRepo creates the audit repository.
func NewHistoryRepo(db *mongo.Database) HistoryRepo {
	return &historyRepo{
		turns:        db.Collection("historial"),
		interactions: db.Collection("interacciones"),
	}
}

func (r *historyRepo) Append(ctx context.Context, record *model.TurnRecord) error {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	result, err := r.turns.InsertOne(ctx, record)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid.Hex()
	}
	return nil
}

// GetBySessionID returns the session's turns ordered by timestamp, oldest
// first, ready for replay or report rendering.
func (r *historyRepo) GetBySessionID(ctx context.Context, sessionID string) ([]*model.TurnRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.turns.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.TurnRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *historyRepo) SaveInteraction(ctx context.Context, interaction *model.Interaction) error {
	if interaction.Timestamp.IsZero() {
		interaction.Timestamp = time.Now().UTC()
	}

	result, err := r.interactions.InsertOne(ctx, interaction)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		interaction.ID = oid.Hex()
	}
	return nil
}
