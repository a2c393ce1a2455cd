package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "websync/database/repository/booking"
	catalogRepo "websync/database/repository/catalog"
	"websync/models"
	"websync/services/catalog"
)

// CreateBookingInput carries the four caller-supplied booking fields.
type CreateBookingInput struct {
	User      string
	ServiceID string
	Date      time.Time
	Location  string
}

// BookingService manages the booking lifecycle.
type BookingService interface {
	// CreateBooking validates the input, persists a pending booking and
	// returns it populated with its service.
	CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error)
	// ListBookings returns all bookings, each populated with its service.
	ListBookings(ctx context.Context) ([]models.Booking, error)
	// GetBooking returns a single populated booking.
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	// UpdateStatus moves a booking to a new lifecycle status, enforcing
	// legal transitions. Repeating an applied transition is a no-op.
	UpdateStatus(ctx context.Context, id string, next models.BookingStatus) (*models.Booking, error)
}

// DefaultBookingService implements BookingService over the booking
// repository, validating service references against the catalog.
type DefaultBookingService struct {
	Repo    bookingRepo.BookingRepository
	Catalog catalog.CatalogService
}

// CreateBooking validates the input, persists a pending booking and
// returns the stored record populated with its service.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	if in.User == "" {
		return nil, fmt.Errorf("%w: user is required", ErrValidation)
	}
	if in.ServiceID == "" {
		return nil, fmt.Errorf("%w: service is required", ErrValidation)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if in.Location == "" {
		return nil, fmt.Errorf("%w: location is required", ErrValidation)
	}

	svc, err := s.Catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownService, in.ServiceID)
		}
		return nil, fmt.Errorf("failed to resolve service reference: %w", err)
	}

	booking := &models.Booking{
		User:      in.User,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Location:  in.Location,
		Status:    models.StatusPending,
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// Re-read the stored record so the response carries the persisted
	// timestamps, then attach the already-resolved service.
	stored, err := s.Repo.GetByID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	stored.Service = svc
	return stored, nil
}

// ListBookings returns all bookings joined with their services. A booking
// whose reference is missing from the catalog keeps a nil service rather
// than failing the listing; rows may predate reference validation.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return bookings, nil
	}

	services, err := s.Catalog.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve services for bookings: %w", err)
	}
	byID := make(map[string]models.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	for i := range bookings {
		if svc, ok := byID[bookings[i].ServiceID]; ok {
			bookings[i].Service = &svc
		}
	}
	return bookings, nil
}

// GetBooking returns a single booking populated with its service.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	s.populate(ctx, booking)
	return booking, nil
}

// UpdateStatus moves a booking through the lifecycle state machine:
// pending -> confirmed|cancelled, confirmed -> completed|cancelled.
// Repeating the booking's current status succeeds without a write.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id string, next models.BookingStatus) (*models.Booking, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, next)
	}

	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if booking.Status == next {
		s.populate(ctx, booking)
		return booking, nil
	}
	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.Status, next)
	}

	if err := s.Repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	updated, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.populate(ctx, updated)
	return updated, nil
}

// populate attaches the catalog entry for the booking's service
// reference, leaving it nil when the reference is dangling.
func (s *DefaultBookingService) populate(ctx context.Context, booking *models.Booking) {
	svc, err := s.Catalog.GetService(ctx, booking.ServiceID)
	if err == nil {
		booking.Service = svc
	}
}
