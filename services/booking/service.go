package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tradecall/models"
	"tradecall/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// paymentRequestTokenTTL bounds how long the link in the operator email
// stays usable.
const paymentRequestTokenTTL = 14 * 24 * time.Hour

// Create validates the submitted fields, persists exactly one booking row and
// sends exactly one operator email. The insert is not rolled back when the
// email fails; the error is surfaced so the caller can report it.
func (s *DefaultBookingService) Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	b := &models.Booking{
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		Services:      req.Services,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Urgency:       req.Urgency,
		Message:       req.Message,
		Newsletter:    req.Newsletter,
		TermsAccepted: req.TermsAccepted,
		Status:        models.BookingStatusPending,
	}

	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	// Best-effort side channels; neither blocks the submission.
	if s.Addresses != nil {
		if err := s.Addresses.Learn(ctx, b.Address); err != nil {
			s.Logger.Warn("failed to index booking address", zap.Error(err))
		}
	}
	if s.Reminders != nil && b.PreferredDate != "" {
		if err := s.Reminders.ScheduleReminder(ctx, b); err != nil {
			s.Logger.Warn("failed to schedule reminder", zap.String("bookingId", b.ID), zap.Error(err))
		}
	}

	if err := s.Mailer.SendBookingReceived(ctx, b, s.paymentRequestURL(b.ID)); err != nil {
		// The booking row stays; the operator email is the only casualty.
		s.Logger.Error("operator email failed after insert",
			zap.String("bookingId", b.ID), zap.Error(err))
		return b, fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}

	s.Logger.Info("booking created", zap.String("bookingId", b.ID))
	return b, nil
}

// RequestPayment looks up a booking and emails the customer a payment request.
func (s *DefaultBookingService) RequestPayment(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.Mailer.SendPaymentRequest(ctx, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}
	return b, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	return b, nil
}

func (s *DefaultBookingService) List(ctx context.Context, limit int64) ([]models.Booking, error) {
	return s.Repo.List(ctx, limit)
}

func (s *DefaultBookingService) paymentRequestURL(bookingID string) string {
	token, err := utils.GeneratePaymentRequestToken(bookingID, paymentRequestTokenTTL)
	if err != nil {
		s.Logger.Warn("failed to sign payment-request token", zap.Error(err))
		return ""
	}
	return fmt.Sprintf("%s/api/office/notify?token=%s", strings.TrimRight(s.BaseURL, "/"), token)
}

func validateRequest(req models.BookingRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
		{"address", req.Address},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.field}
		}
	}
	return nil
}
