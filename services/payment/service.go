package payment

import (
	"context"
	"errors"
	"fmt"

	"tradecall/models"
	"tradecall/services/booking"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleCheckoutCompleted drives the post-payment sequence: claim the event
// ID, look up the booking, invoice the customer, mark the row paid, email the
// invoice link. Completed sub-steps are not rolled back when a later one
// fails; the failure is logged with the event ID and surfaced to the caller.
func (s *DefaultPaymentService) HandleCheckoutCompleted(ctx context.Context, ev models.CheckoutCompleted) (*models.Booking, error) {
	if ev.BookingID == "" {
		return nil, booking.ErrBookingNotFound
	}

	// Claim the event before doing anything else so a redelivery of the same
	// event ID becomes a no-op acknowledgment.
	if ev.EventID != "" {
		fresh, err := s.Events.Record(ctx, ev.EventID, "checkout.session.completed")
		if err != nil {
			return nil, fmt.Errorf("failed to record webhook event: %w", err)
		}
		if !fresh {
			s.Logger.Info("duplicate webhook event skipped", zap.String("eventId", ev.EventID))
			return nil, nil
		}
	}

	b, err := s.Bookings.GetByID(ctx, ev.BookingID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, booking.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", ev.BookingID, err)
	}

	email := ev.CustomerEmail
	if email == "" {
		email = b.Email
	}
	name := ev.CustomerName
	if name == "" {
		name = b.Name
	}

	customerID, err := s.Gateway.FindOrCreateCustomer(ctx, email, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}

	amount := ev.AmountTotal
	if amount <= 0 {
		amount = s.AttendanceFeeCents
	}
	currency := ev.Currency
	if currency == "" {
		currency = s.Currency
	}

	invoiceURL, err := s.Gateway.CreateAttendanceInvoice(ctx, customerID, amount, currency, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice for booking %s: %w", b.ID, err)
	}

	if err := s.Bookings.MarkPaid(ctx, b.ID, invoiceURL); err != nil {
		// Invoice already exists at this point; log loudly rather than
		// pretend it can be undone.
		s.Logger.Error("invoice created but booking update failed",
			zap.String("bookingId", b.ID), zap.String("eventId", ev.EventID), zap.Error(err))
		return nil, fmt.Errorf("failed to update booking %s after invoicing: %w", b.ID, err)
	}
	b.Status = models.BookingStatusConfirmed
	b.PaymentStatus = models.PaymentStatusPaid
	b.InvoiceURL = invoiceURL

	if err := s.Mailer.SendInvoice(ctx, b, invoiceURL); err != nil {
		s.Logger.Error("booking confirmed but invoice email failed",
			zap.String("bookingId", b.ID), zap.Error(err))
		return b, fmt.Errorf("%w: %v", booking.ErrEmailDelivery, err)
	}

	s.Logger.Info("booking confirmed",
		zap.String("bookingId", b.ID), zap.String("invoiceUrl", invoiceURL))
	return b, nil
}
