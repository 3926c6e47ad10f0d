// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"tradecall/database"
	"tradecall/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists customer bookings. Records are created by the
// submission handler and mutated by the payment webhook; the application
// never deletes them.
type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, limit int64) ([]models.Booking, error)
	MarkPaid(ctx context.Context, id, invoiceURL string) error
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("tradecall")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
