// File: database/repository/webhookevent/eventMongoCrud.go
package webhookEventRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tradecall/models"
)

func (r *mongoWebhookEventRepo) Record(ctx context.Context, eventID, eventType string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	event := models.WebhookEvent{
		EventID:     eventID,
		Type:        eventType,
		ProcessedAt: time.Now(),
	}
	_, err := r.coll.InsertOne(ctx, event)
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// EnsureIndexes creates the unique index backing event deduplication.
func (r *mongoWebhookEventRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "event_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_event_id"),
	})
	if err != nil {
		return fmt.Errorf("failed to create webhook event indexes: %w", err)
	}
	return nil
}
