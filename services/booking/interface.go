package booking

import (
	"context"

	bookingRepo "tradecall/database/repository/booking"
	"tradecall/models"
	"tradecall/services/notification"

	"go.uber.org/zap"
)

// BookingService handles the submission pipeline: validate, persist, notify.
type BookingService interface {
	Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	RequestPayment(ctx context.Context, bookingID string) (*models.Booking, error)
	Get(ctx context.Context, bookingID string) (*models.Booking, error)
	List(ctx context.Context, limit int64) ([]models.Booking, error)
}

// AddressIndex receives addresses from accepted bookings so future form
// input can suggest them.
type AddressIndex interface {
	Learn(ctx context.Context, address string) error
}

// ReminderScheduler enqueues a reminder email ahead of a booking's
// preferred date.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, b *models.Booking) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Mailer    notification.Mailer
	Addresses AddressIndex      // optional
	Reminders ReminderScheduler // optional
	// BaseURL is the public base URL used to build the payment-request link
	// embedded in the operator email.
	BaseURL string
	Logger  *zap.Logger
}
