package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tradecall/services/booking"
	"tradecall/utils"

	"github.com/gin-gonic/gin"
)

// ListBookings returns recent bookings for the office dashboard.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)

	bookings, err := h.Service.List(c.Request.Context(), limit)
	if err != nil {
		getLogger(c).Error("failed to list bookings")
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking returns a single booking by ID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", "")
		return
	}
	c.JSON(http.StatusOK, b)
}
