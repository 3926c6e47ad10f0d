package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/invoice"
	"github.com/stripe/stripe-go/v76/invoiceitem"
	"go.uber.org/zap"
)

// StripeGateway implements Gateway against the Stripe API. The package-level
// stripe.Key is set at startup.
type StripeGateway struct {
	Logger *zap.Logger
}

func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{Logger: logger}
}

// FindOrCreateCustomer returns the ID of an existing Stripe customer with the
// given email, creating one when none exists.
func (g *StripeGateway) FindOrCreateCustomer(ctx context.Context, email, name string) (string, error) {
	listParams := &stripe.CustomerListParams{Email: stripe.String(email)}
	listParams.Context = ctx
	listParams.Limit = stripe.Int64(1)

	iter := customer.List(listParams)
	for iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", fmt.Errorf("customer lookup failed: %w", err)
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx
	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("customer creation failed: %w", err)
	}
	g.Logger.Info("stripe customer created", zap.String("customerId", cust.ID))
	return cust.ID, nil
}

// CreateAttendanceInvoice creates an invoice item for the attendance fee,
// wraps it in an invoice, finalizes it and marks it paid out of band (the
// charge already happened in checkout). Returns the hosted invoice URL.
func (g *StripeGateway) CreateAttendanceInvoice(ctx context.Context, customerID string, amountCents int64, currency, bookingID string) (string, error) {
	itemParams := &stripe.InvoiceItemParams{
		Customer:    stripe.String(customerID),
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(currency),
		Description: stripe.String(fmt.Sprintf("Attendance fee for booking %s", bookingID)),
	}
	itemParams.Context = ctx
	if _, err := invoiceitem.New(itemParams); err != nil {
		return "", fmt.Errorf("invoice item creation failed: %w", err)
	}

	invParams := &stripe.InvoiceParams{
		Customer:                    stripe.String(customerID),
		AutoAdvance:                 stripe.Bool(false),
		PendingInvoiceItemsBehavior: stripe.String("include"),
		CollectionMethod:            stripe.String(string(stripe.InvoiceCollectionMethodSendInvoice)),
		DaysUntilDue:                stripe.Int64(7),
	}
	invParams.Context = ctx
	invParams.AddMetadata("booking_id", bookingID)
	inv, err := invoice.New(invParams)
	if err != nil {
		return "", fmt.Errorf("invoice creation failed: %w", err)
	}

	finalizeParams := &stripe.InvoiceFinalizeInvoiceParams{}
	finalizeParams.Context = ctx
	finalized, err := invoice.FinalizeInvoice(inv.ID, finalizeParams)
	if err != nil {
		return "", fmt.Errorf("invoice finalization failed: %w", err)
	}

	payParams := &stripe.InvoicePayParams{PaidOutOfBand: stripe.Bool(true)}
	payParams.Context = ctx
	paid, err := invoice.Pay(finalized.ID, payParams)
	if err != nil {
		return "", fmt.Errorf("invoice payment marking failed: %w", err)
	}

	return paid.HostedInvoiceURL, nil
}
