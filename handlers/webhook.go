package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tradecall/models"
	"tradecall/services/booking"
	"tradecall/services/payment"
	"tradecall/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// WebhookHandler receives asynchronous events from Stripe. The signature is
// verified against the webhook secret before any field in the body is
// trusted.
type WebhookHandler struct {
	Payments payment.PaymentService
	Secret   string
	Logger   *zap.Logger
}

func NewWebhookHandler(payments payment.PaymentService, secret string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Payments: payments, Secret: secret, Logger: logger}
}

// HandleStripeEvent verifies and dispatches one webhook delivery. Event types
// other than checkout.session.completed are acknowledged without side
// effects.
func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unreadable request body", err.Error())
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.Secret)
	if err != nil {
		h.Logger.Warn("webhook signature verification failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid webhook signature", "")
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "malformed checkout session payload", err.Error())
			return
		}

		ev := models.CheckoutCompleted{
			EventID:     event.ID,
			BookingID:   session.Metadata["booking_id"],
			AmountTotal: session.AmountTotal,
			Currency:    string(session.Currency),
		}
		if session.CustomerDetails != nil {
			ev.CustomerEmail = session.CustomerDetails.Email
			ev.CustomerName = session.CustomerDetails.Name
		}

		if _, err := h.Payments.HandleCheckoutCompleted(c.Request.Context(), ev); err != nil {
			if errors.Is(err, booking.ErrBookingNotFound) {
				utils.JSONError(c, http.StatusNotFound, "booking not found for checkout session", "")
				return
			}
			h.Logger.Error("checkout event processing failed",
				zap.String("eventId", event.ID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to process checkout event", "")
			return
		}

	default:
		// Acknowledged, no side effects.
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
