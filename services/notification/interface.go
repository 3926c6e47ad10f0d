package notification

import (
	"context"

	"tradecall/models"
)

// Mailer defines the outbound email surface of the service. Every email the
// system sends goes through one of these methods.
type Mailer interface {
	// SendBookingReceived emails the office a full copy of a new booking,
	// including a signed link back to the payment-request action.
	SendBookingReceived(ctx context.Context, b *models.Booking, paymentRequestURL string) error
	// SendPaymentRequest emails the customer asking them to settle the
	// attendance fee for their booking.
	SendPaymentRequest(ctx context.Context, b *models.Booking) error
	// SendInvoice emails the customer the hosted invoice link once their
	// checkout has completed.
	SendInvoice(ctx context.Context, b *models.Booking, invoiceURL string) error
	// SendReminder emails the customer the day before their preferred date.
	SendReminder(ctx context.Context, email, name, date string) error
}
