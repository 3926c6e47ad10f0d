package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
)

// PaymentStatusPaid marks a booking whose attendance fee has been settled.
const PaymentStatusPaid = "paid"

// Booking represents a customer's service request. The ID is the single join
// key between form submission, the Stripe webhook and the emails; it never
// changes once the record is created.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone" json:"phone"`
	Address       string    `bson:"address" json:"address"`
	Services      []string  `bson:"services,omitempty" json:"services,omitempty"`
	PreferredDate string    `bson:"preferred_date,omitempty" json:"preferred_date,omitempty"` // "YYYY-MM-DD"
	PreferredTime string    `bson:"preferred_time,omitempty" json:"preferred_time,omitempty"` // e.g. "morning", "12-3pm"
	Urgency       bool      `bson:"urgency,omitempty" json:"urgency,omitempty"`
	Message       string    `bson:"message,omitempty" json:"message,omitempty"`
	Newsletter    bool      `bson:"newsletter" json:"newsletter"`
	TermsAccepted bool      `bson:"terms_accepted" json:"terms_accepted"`
	Status        string    `bson:"status" json:"status"`
	PaymentStatus string    `bson:"payment_status,omitempty" json:"payment_status,omitempty"`
	InvoiceURL    string    `bson:"invoice_url,omitempty" json:"invoice_url,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingRequest is the JSON payload accepted by the booking creation endpoint.
type BookingRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	Services      []string `json:"services,omitempty"`
	PreferredDate string   `json:"preferred_date,omitempty"`
	PreferredTime string   `json:"preferred_time,omitempty"`
	Urgency       bool     `json:"urgency,omitempty"`
	Message       string   `json:"message,omitempty"`
	Newsletter    bool     `json:"newsletter,omitempty"`
	TermsAccepted bool     `json:"terms_accepted,omitempty"`
}
