package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers so route registration stays in
// one place.
type HandlerBundle struct {
	// Booking endpoints.
	CreateBooking gin.HandlerFunc
	NotifyOffice  gin.HandlerFunc

	// Stripe webhook endpoint.
	StripeWebhook gin.HandlerFunc

	// Address suggestion endpoint.
	GetSuggestions gin.HandlerFunc

	// Admin endpoints.
	ListBookings gin.HandlerFunc
	GetBooking   gin.HandlerFunc
}
