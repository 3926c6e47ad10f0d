// File: database/repository/webhookevent/interface.go
package webhookEventRepo

import (
	"context"

	"tradecall/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// WebhookEventRepository records processed Stripe event IDs so a redelivered
// event is acknowledged without running its side effects a second time.
type WebhookEventRepository interface {
	// Record stores the event ID. It returns false when the ID was already
	// recorded by an earlier delivery.
	Record(ctx context.Context, eventID, eventType string) (bool, error)
	EnsureIndexes() error
}

type mongoWebhookEventRepo struct {
	coll *mongo.Collection
}

// NewMongoWebhookEventRepo constructs a new MongoDB WebhookEventRepository.
func NewMongoWebhookEventRepo() WebhookEventRepository {
	db := database.MongoClient.Database("tradecall")
	return &mongoWebhookEventRepo{
		coll: db.Collection("webhook_events"),
	}
}
