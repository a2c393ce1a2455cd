package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// legalTransitions maps each status to the states it may move to.
// Completed and cancelled are terminal.
var legalTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// IsValid reports whether s is one of the declared booking statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle step. A repeat of the current status counts as legal so
// that retried updates stay idempotent.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking represents a home-service request made by a customer.
type Booking struct {
	ID        string        `bson:"id" json:"id"`                 // Unique booking identifier (UUID)
	User      string        `bson:"user" json:"user"`             // Requester's display name
	ServiceID string        `bson:"service_id" json:"service_id"` // Reference to the booked Service
	Date      time.Time     `bson:"date" json:"date"`             // Requested service date
	Location  string        `bson:"location" json:"location"`     // Free-text address
	Status    BookingStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`

	// Service is the resolved catalog entry for ServiceID. It is filled
	// in on reads only and never written back to the bookings collection.
	Service *Service `bson:"-" json:"service,omitempty"`
}
