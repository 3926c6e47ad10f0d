package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradecall/models"
	"tradecall/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fakeBookingService struct {
	created int
	err     error
}

func (f *fakeBookingService) Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	f.created++
	return &models.Booking{ID: "bk_1", Status: models.BookingStatusPending}, nil
}

func validate(req models.BookingRequest) error {
	for field, value := range map[string]string{
		"name": req.Name, "email": req.Email, "phone": req.Phone, "address": req.Address,
	} {
		if strings.TrimSpace(value) == "" {
			return &booking.ValidationError{Field: field}
		}
	}
	return nil
}

func (f *fakeBookingService) RequestPayment(ctx context.Context, id string) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Booking{ID: id}, nil
}

func (f *fakeBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return nil, booking.ErrBookingNotFound
}

func (f *fakeBookingService) List(ctx context.Context, limit int64) ([]models.Booking, error) {
	return nil, nil
}

func newBookingRouter(svc *fakeBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/api/bookings", h.CreateBooking)
	r.POST("/api/office/notify", h.NotifyOffice)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBooking_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid payload",
			body:       `{"name":"Sam","email":"sam@example.com","phone":"0400","address":"1 Example St"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing name",
			body:       `{"email":"sam@example.com","phone":"0400","address":"1 Example St"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing address",
			body:       `{"name":"Sam","email":"sam@example.com","phone":"0400"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed JSON",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeBookingService{}
			r := newBookingRouter(svc)

			w := postJSON(r, "/api/bookings", tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			wantCreated := 0
			if tt.wantStatus == http.StatusOK {
				wantCreated = 1
			}
			if svc.created != wantCreated {
				t.Errorf("created = %d, want %d", svc.created, wantCreated)
			}
		})
	}
}

func TestCreateBooking_EmailFailureReturns500(t *testing.T) {
	svc := &fakeBookingService{err: booking.ErrEmailDelivery}
	r := newBookingRouter(svc)

	w := postJSON(r, "/api/bookings",
		`{"name":"Sam","email":"sam@example.com","phone":"0400","address":"1 Example St"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestNotifyOffice_StatusCodes(t *testing.T) {
	t.Run("missing booking_id", func(t *testing.T) {
		r := newBookingRouter(&fakeBookingService{})
		w := postJSON(r, "/api/office/notify", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		r := newBookingRouter(&fakeBookingService{err: booking.ErrBookingNotFound})
		w := postJSON(r, "/api/office/notify", `{"booking_id":"missing"}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("valid booking", func(t *testing.T) {
		r := newBookingRouter(&fakeBookingService{})
		w := postJSON(r, "/api/office/notify", `{"booking_id":"bk_1"}`)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})
}
