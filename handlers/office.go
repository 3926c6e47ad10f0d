package handlers

import (
	"errors"
	"net/http"

	"tradecall/services/booking"
	"tradecall/utils"

	"github.com/gin-gonic/gin"
)

// NotifyOffice triggers the payment-request email for a booking. It accepts
// either a JSON body with the booking ID or the signed token embedded in the
// operator email.
func (h *BookingHandler) NotifyOffice(c *gin.Context) {
	bookingID := ""

	if token := c.Query("token"); token != "" {
		id, err := utils.ParsePaymentRequestToken(token)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid payment-request token", err.Error())
			return
		}
		bookingID = id
	} else {
		var req struct {
			BookingID string `json:"booking_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.BookingID == "" {
			utils.JSONError(c, http.StatusBadRequest, "missing booking_id", "")
			return
		}
		bookingID = req.BookingID
	}

	b, err := h.Service.RequestPayment(c.Request.Context(), bookingID)
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to send payment request", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Payment request sent",
		"booking_id": b.ID,
	})
}
