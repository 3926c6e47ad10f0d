package models

// PlaceSuggestion is a transient address candidate surfaced while the user
// types. It is never persisted; selecting one collapses it into the single
// formatted address string written onto the booking.
type PlaceSuggestion struct {
	Description string `json:"description"`
}

// ReminderPayload is the asynq task payload for booking reminder emails.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Date      string `json:"date"`
}
