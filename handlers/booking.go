package handlers

import (
	"errors"
	"net/http"

	"tradecall/models"
	"tradecall/services/booking"
	"tradecall/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking submission pipeline over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking accepts a structured booking payload, persists it and emails
// the office.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	b, err := h.Service.Create(c.Request.Context(), req)

	var validationErr *booking.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Error(), "")
		return
	case errors.Is(err, booking.ErrEmailDelivery):
		// The booking row was persisted; only the operator email failed.
		utils.JSONError(c, http.StatusInternalServerError, "booking saved but notification failed", err.Error())
		return
	case err != nil:
		h.Logger.Error("booking creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save booking", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Booking received. We'll be in touch shortly.",
		"booking_id": b.ID,
	})
}
