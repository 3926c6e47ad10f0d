package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tradecall/config"
	"tradecall/models"

	"go.uber.org/zap"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendMailer sends email through the Resend HTTP API.
type ResendMailer struct {
	APIKey      string
	From        string
	OfficeEmail string
	HTTPClient  *http.Client
	Logger      *zap.Logger
}

// NewResendMailer constructs a mailer from the loaded configuration.
func NewResendMailer(logger *zap.Logger) *ResendMailer {
	return &ResendMailer{
		APIKey:      config.AppConfig.ResendAPIKey,
		From:        config.AppConfig.EmailFrom,
		OfficeEmail: config.AppConfig.OfficeEmail,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
		Logger:      logger,
	}
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *ResendMailer) send(ctx context.Context, to, subject, html string) error {
	if to == "" || !strings.Contains(to, "@") {
		return fmt.Errorf("invalid recipient email: %q", to)
	}
	if m.APIKey == "" {
		return fmt.Errorf("email service not configured: missing API key")
	}

	payload := resendPayload{
		From:    m.From,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.APIKey)

	resp, err := m.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email provider returned %s: %s", resp.Status, string(respBody))
	}

	m.Logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (m *ResendMailer) SendBookingReceived(ctx context.Context, b *models.Booking, paymentRequestURL string) error {
	subject := fmt.Sprintf("New booking from %s", b.Name)
	return m.send(ctx, m.OfficeEmail, subject, bookingReceivedHTML(b, paymentRequestURL))
}

func (m *ResendMailer) SendPaymentRequest(ctx context.Context, b *models.Booking) error {
	return m.send(ctx, b.Email, "Your booking attendance fee", paymentRequestHTML(b))
}

func (m *ResendMailer) SendInvoice(ctx context.Context, b *models.Booking, invoiceURL string) error {
	return m.send(ctx, b.Email, "Your booking is confirmed", invoiceHTML(b, invoiceURL))
}

func (m *ResendMailer) SendReminder(ctx context.Context, email, name, date string) error {
	return m.send(ctx, email, "Reminder: your booking tomorrow", reminderHTML(name, date))
}
