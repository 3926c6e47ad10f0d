package payment

import (
	"context"

	bookingRepo "tradecall/database/repository/booking"
	webhookEventRepo "tradecall/database/repository/webhookevent"
	"tradecall/models"
	"tradecall/services/notification"

	"go.uber.org/zap"
)

// Gateway abstracts the payment processor calls made while turning a
// completed checkout into an invoice.
type Gateway interface {
	FindOrCreateCustomer(ctx context.Context, email, name string) (string, error)
	// CreateAttendanceInvoice creates, finalizes and settles an invoice for
	// the attendance fee and returns its hosted URL.
	CreateAttendanceInvoice(ctx context.Context, customerID string, amountCents int64, currency, bookingID string) (string, error)
}

// PaymentService reacts to verified checkout-completed events.
type PaymentService interface {
	// HandleCheckoutCompleted processes one verified event. A redelivered
	// event ID returns (nil, nil) without side effects.
	HandleCheckoutCompleted(ctx context.Context, ev models.CheckoutCompleted) (*models.Booking, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Bookings bookingRepo.BookingRepository
	Events   webhookEventRepo.WebhookEventRepository
	Gateway  Gateway
	Mailer   notification.Mailer
	// Fallbacks when the event carries no amount.
	AttendanceFeeCents int64
	Currency           string
	Logger             *zap.Logger
}
