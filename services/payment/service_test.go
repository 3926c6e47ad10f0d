package payment

import (
	"context"
	"errors"
	"testing"

	"tradecall/models"
	"tradecall/services/booking"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type fakeBookings struct {
	bookings  map[string]*models.Booking
	markPaids int
}

func newFakeBookings(existing ...*models.Booking) *fakeBookings {
	m := make(map[string]*models.Booking)
	for _, b := range existing {
		m[b.ID] = b
	}
	return &fakeBookings{bookings: m}
}

func (r *fakeBookings) Create(ctx context.Context, b *models.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookings) List(ctx context.Context, limit int64) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookings) MarkPaid(ctx context.Context, id, invoiceURL string) error {
	b, ok := r.bookings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	r.markPaids++
	b.Status = models.BookingStatusConfirmed
	b.PaymentStatus = models.PaymentStatusPaid
	b.InvoiceURL = invoiceURL
	return nil
}

func (r *fakeBookings) EnsureIndexes() error { return nil }

type fakeEvents struct {
	seen map[string]bool
}

func newFakeEvents() *fakeEvents {
	return &fakeEvents{seen: make(map[string]bool)}
}

func (r *fakeEvents) Record(ctx context.Context, eventID, eventType string) (bool, error) {
	if r.seen[eventID] {
		return false, nil
	}
	r.seen[eventID] = true
	return true, nil
}

func (r *fakeEvents) EnsureIndexes() error { return nil }

type fakeGateway struct {
	customers int
	invoices  int
	failNext  bool
}

func (g *fakeGateway) FindOrCreateCustomer(ctx context.Context, email, name string) (string, error) {
	if g.failNext {
		return "", errors.New("stripe unavailable")
	}
	g.customers++
	return "cus_test", nil
}

func (g *fakeGateway) CreateAttendanceInvoice(ctx context.Context, customerID string, amountCents int64, currency, bookingID string) (string, error) {
	if g.failNext {
		return "", errors.New("stripe unavailable")
	}
	g.invoices++
	return "https://invoice.example/" + bookingID, nil
}

type fakeMailer struct {
	invoiceEmails int
	failNext      bool
}

func (m *fakeMailer) SendBookingReceived(ctx context.Context, b *models.Booking, link string) error {
	return nil
}
func (m *fakeMailer) SendPaymentRequest(ctx context.Context, b *models.Booking) error { return nil }
func (m *fakeMailer) SendInvoice(ctx context.Context, b *models.Booking, invoiceURL string) error {
	if m.failNext {
		return errors.New("smtp down")
	}
	m.invoiceEmails++
	return nil
}
func (m *fakeMailer) SendReminder(ctx context.Context, email, name, date string) error { return nil }

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:     "bk_1",
		Name:   "Sam Carter",
		Email:  "sam@example.com",
		Status: models.BookingStatusPending,
	}
}

func newService(bookings *fakeBookings, events *fakeEvents, gw *fakeGateway, mailer *fakeMailer) *DefaultPaymentService {
	return &DefaultPaymentService{
		Bookings:           bookings,
		Events:             events,
		Gateway:            gw,
		Mailer:             mailer,
		AttendanceFeeCents: 5500,
		Currency:           "aud",
		Logger:             zap.NewNop(),
	}
}

func checkoutEvent() models.CheckoutCompleted {
	return models.CheckoutCompleted{
		EventID:       "evt_1",
		BookingID:     "bk_1",
		CustomerEmail: "sam@example.com",
		AmountTotal:   5500,
		Currency:      "aud",
	}
}

func TestHandleCheckoutCompleted_Success(t *testing.T) {
	bookings := newFakeBookings(pendingBooking())
	gw := &fakeGateway{}
	mailer := &fakeMailer{}
	svc := newService(bookings, newFakeEvents(), gw, mailer)

	b, err := svc.HandleCheckoutCompleted(context.Background(), checkoutEvent())
	if err != nil {
		t.Fatalf("HandleCheckoutCompleted() error = %v", err)
	}
	if b.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %q, want %q", b.Status, models.BookingStatusConfirmed)
	}
	if b.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("payment status = %q, want %q", b.PaymentStatus, models.PaymentStatusPaid)
	}
	if b.InvoiceURL == "" {
		t.Error("invoice URL not stored")
	}
	if bookings.markPaids != 1 {
		t.Errorf("MarkPaid calls = %d, want 1", bookings.markPaids)
	}
	if gw.invoices != 1 {
		t.Errorf("invoices created = %d, want 1", gw.invoices)
	}
	if mailer.invoiceEmails != 1 {
		t.Errorf("invoice emails = %d, want 1", mailer.invoiceEmails)
	}
}

func TestHandleCheckoutCompleted_UnknownBooking(t *testing.T) {
	bookings := newFakeBookings()
	gw := &fakeGateway{}
	svc := newService(bookings, newFakeEvents(), gw, &fakeMailer{})

	_, err := svc.HandleCheckoutCompleted(context.Background(), checkoutEvent())
	if !errors.Is(err, booking.ErrBookingNotFound) {
		t.Fatalf("HandleCheckoutCompleted() error = %v, want ErrBookingNotFound", err)
	}
	if gw.customers != 0 || gw.invoices != 0 {
		t.Errorf("gateway touched for unknown booking: customers=%d invoices=%d", gw.customers, gw.invoices)
	}
}

func TestHandleCheckoutCompleted_MissingBookingID(t *testing.T) {
	svc := newService(newFakeBookings(pendingBooking()), newFakeEvents(), &fakeGateway{}, &fakeMailer{})

	ev := checkoutEvent()
	ev.BookingID = ""
	if _, err := svc.HandleCheckoutCompleted(context.Background(), ev); !errors.Is(err, booking.ErrBookingNotFound) {
		t.Fatalf("HandleCheckoutCompleted() error = %v, want ErrBookingNotFound", err)
	}
}

func TestHandleCheckoutCompleted_DuplicateEventSkipped(t *testing.T) {
	bookings := newFakeBookings(pendingBooking())
	gw := &fakeGateway{}
	mailer := &fakeMailer{}
	svc := newService(bookings, newFakeEvents(), gw, mailer)

	if _, err := svc.HandleCheckoutCompleted(context.Background(), checkoutEvent()); err != nil {
		t.Fatalf("first delivery error = %v", err)
	}
	b, err := svc.HandleCheckoutCompleted(context.Background(), checkoutEvent())
	if err != nil {
		t.Fatalf("second delivery error = %v", err)
	}
	if b != nil {
		t.Error("second delivery returned a booking, want nil no-op")
	}
	if gw.invoices != 1 {
		t.Errorf("invoices created = %d, want exactly 1", gw.invoices)
	}
	if bookings.markPaids != 1 {
		t.Errorf("MarkPaid calls = %d, want exactly 1", bookings.markPaids)
	}
	if mailer.invoiceEmails != 1 {
		t.Errorf("invoice emails = %d, want exactly 1", mailer.invoiceEmails)
	}
}

func TestHandleCheckoutCompleted_GatewayFailure(t *testing.T) {
	bookings := newFakeBookings(pendingBooking())
	gw := &fakeGateway{failNext: true}
	svc := newService(bookings, newFakeEvents(), gw, &fakeMailer{})

	if _, err := svc.HandleCheckoutCompleted(context.Background(), checkoutEvent()); err == nil {
		t.Fatal("HandleCheckoutCompleted() error = nil, want gateway error")
	}
	if bookings.markPaids != 0 {
		t.Errorf("MarkPaid calls = %d, want 0 after gateway failure", bookings.markPaids)
	}
}

func TestHandleCheckoutCompleted_EmailFailureKeepsConfirmation(t *testing.T) {
	bookings := newFakeBookings(pendingBooking())
	mailer := &fakeMailer{failNext: true}
	svc := newService(bookings, newFakeEvents(), &fakeGateway{}, mailer)

	_, err := svc.HandleCheckoutCompleted(context.Background(), checkoutEvent())
	if !errors.Is(err, booking.ErrEmailDelivery) {
		t.Fatalf("HandleCheckoutCompleted() error = %v, want ErrEmailDelivery", err)
	}
	// The booking update is not rolled back when the email fails.
	if bookings.markPaids != 1 {
		t.Errorf("MarkPaid calls = %d, want 1", bookings.markPaids)
	}
}

func TestHandleCheckoutCompleted_FallbackAmountAndEmail(t *testing.T) {
	bookings := newFakeBookings(pendingBooking())
	gw := &fakeGateway{}
	svc := newService(bookings, newFakeEvents(), gw, &fakeMailer{})

	ev := checkoutEvent()
	ev.AmountTotal = 0
	ev.Currency = ""
	ev.CustomerEmail = ""
	if _, err := svc.HandleCheckoutCompleted(context.Background(), ev); err != nil {
		t.Fatalf("HandleCheckoutCompleted() error = %v", err)
	}
	if gw.invoices != 1 {
		t.Errorf("invoices created = %d, want 1", gw.invoices)
	}
}
