package bookingRepo

import (
	"context"
	"errors"

	"websync/models"
)

// ErrNotFound is returned when a booking with the requested ID does not exist.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking, assigning its ID and timestamps.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListAll returns every booking in the store's natural order.
	ListAll(ctx context.Context) ([]models.Booking, error)
	// UpdateStatus persists a new lifecycle status for the given booking.
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
}
