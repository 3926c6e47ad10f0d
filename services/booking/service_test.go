package booking

import (
	"context"
	"errors"
	"testing"

	"tradecall/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type fakeRepo struct {
	bookings map[string]*models.Booking
	inserts  int
	failNext bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeRepo) Create(ctx context.Context, b *models.Booking) error {
	if r.failNext {
		return errors.New("insert failed")
	}
	if b.ID == "" {
		b.ID = "bk_test"
	}
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	r.inserts++
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) List(ctx context.Context, limit int64) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeRepo) MarkPaid(ctx context.Context, id, invoiceURL string) error {
	b, ok := r.bookings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	b.Status = models.BookingStatusConfirmed
	b.PaymentStatus = models.PaymentStatusPaid
	b.InvoiceURL = invoiceURL
	return nil
}

func (r *fakeRepo) EnsureIndexes() error { return nil }

type fakeMailer struct {
	operatorEmails int
	paymentEmails  int
	invoiceEmails  int
	reminders      int
	failNext       bool
}

func (m *fakeMailer) SendBookingReceived(ctx context.Context, b *models.Booking, link string) error {
	if m.failNext {
		return errors.New("smtp down")
	}
	m.operatorEmails++
	return nil
}

func (m *fakeMailer) SendPaymentRequest(ctx context.Context, b *models.Booking) error {
	if m.failNext {
		return errors.New("smtp down")
	}
	m.paymentEmails++
	return nil
}

func (m *fakeMailer) SendInvoice(ctx context.Context, b *models.Booking, invoiceURL string) error {
	if m.failNext {
		return errors.New("smtp down")
	}
	m.invoiceEmails++
	return nil
}

func (m *fakeMailer) SendReminder(ctx context.Context, email, name, date string) error {
	m.reminders++
	return nil
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		Name:    "Sam Carter",
		Email:   "sam@example.com",
		Phone:   "0400 000 000",
		Address: "1 Example St, Sydney NSW",
	}
}

func newService(repo *fakeRepo, mailer *fakeMailer) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:    repo,
		Mailer:  mailer,
		BaseURL: "http://localhost:8080",
		Logger:  zap.NewNop(),
	}
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*models.BookingRequest)
	}{
		{"name", func(r *models.BookingRequest) { r.Name = "" }},
		{"email", func(r *models.BookingRequest) { r.Email = "" }},
		{"phone", func(r *models.BookingRequest) { r.Phone = "  " }},
		{"address", func(r *models.BookingRequest) { r.Address = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			repo := newFakeRepo()
			mailer := &fakeMailer{}
			svc := newService(repo, mailer)

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Create() error = %v, want ValidationError", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("ValidationError.Field = %q, want %q", vErr.Field, tt.field)
			}
			if repo.inserts != 0 {
				t.Errorf("inserts = %d, want 0", repo.inserts)
			}
			if mailer.operatorEmails != 0 {
				t.Errorf("operator emails = %d, want 0", mailer.operatorEmails)
			}
		})
	}
}

func TestCreate_PersistsOneRowAndSendsOneEmail(t *testing.T) {
	repo := newFakeRepo()
	mailer := &fakeMailer{}
	svc := newService(repo, mailer)

	b, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if b.ID == "" {
		t.Error("booking ID not assigned")
	}
	if b.Status != models.BookingStatusPending {
		t.Errorf("status = %q, want %q", b.Status, models.BookingStatusPending)
	}
	if repo.inserts != 1 {
		t.Errorf("inserts = %d, want 1", repo.inserts)
	}
	if mailer.operatorEmails != 1 {
		t.Errorf("operator emails = %d, want 1", mailer.operatorEmails)
	}
}

func TestCreate_EmailFailureKeepsRow(t *testing.T) {
	repo := newFakeRepo()
	mailer := &fakeMailer{failNext: true}
	svc := newService(repo, mailer)

	_, err := svc.Create(context.Background(), validRequest())
	if !errors.Is(err, ErrEmailDelivery) {
		t.Fatalf("Create() error = %v, want ErrEmailDelivery", err)
	}
	// The insert is not rolled back when the email fails.
	if repo.inserts != 1 {
		t.Errorf("inserts = %d, want 1", repo.inserts)
	}
}

func TestCreate_PersistFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failNext = true
	mailer := &fakeMailer{}
	svc := newService(repo, mailer)

	_, err := svc.Create(context.Background(), validRequest())
	if err == nil {
		t.Fatal("Create() error = nil, want persistence error")
	}
	if mailer.operatorEmails != 0 {
		t.Errorf("operator emails = %d, want 0 after failed insert", mailer.operatorEmails)
	}
}

func TestRequestPayment(t *testing.T) {
	repo := newFakeRepo()
	mailer := &fakeMailer{}
	svc := newService(repo, mailer)

	created, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.RequestPayment(context.Background(), created.ID); err != nil {
		t.Fatalf("RequestPayment() error = %v", err)
	}
	if mailer.paymentEmails != 1 {
		t.Errorf("payment emails = %d, want 1", mailer.paymentEmails)
	}

	if _, err := svc.RequestPayment(context.Background(), "missing"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("RequestPayment(missing) error = %v, want ErrBookingNotFound", err)
	}
}
