package models

import "time"

// CheckoutCompleted carries the fields the application reads off a verified
// "checkout.session.completed" event. The rest of the Stripe payload is not
// owned or stored by this system.
type CheckoutCompleted struct {
	EventID       string
	BookingID     string
	CustomerEmail string
	CustomerName  string
	AmountTotal   int64
	Currency      string
}

// WebhookEvent records a processed Stripe event ID so redeliveries of the
// same event are acknowledged without reprocessing.
type WebhookEvent struct {
	EventID     string    `bson:"event_id" json:"event_id"`
	Type        string    `bson:"type" json:"type"`
	ProcessedAt time.Time `bson:"processed_at" json:"processed_at"`
}
