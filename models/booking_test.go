package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_IsValid(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}
	assert.False(t, BookingStatus("assigned").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestBookingStatus_RepeatIsIdempotent(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, s.CanTransitionTo(s), "repeating %q should be allowed", s)
	}
}
