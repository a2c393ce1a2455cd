// Package dashboard holds the admin booking-table state: a one-shot
// fetch of all bookings and an assign action that persists the
// pending -> confirmed transition with an optimistic local update.
package dashboard

import (
	"context"
	"fmt"

	"websync/models"
)

// RenderState tells the presentation layer what to draw.
type RenderState int

const (
	// StateLoading is shown until the first fetch resolves.
	StateLoading RenderState = iota
	// StateError is shown when the last fetch failed; distinct from an
	// empty result so a broken backend never masquerades as "no bookings".
	StateError
	// StateEmpty is shown when the fetch succeeded with no rows.
	StateEmpty
	// StateTable is shown when there are rows to render.
	StateTable
)

// Dashboard is the admin view model. It is intended for a single
// rendering goroutine; it performs no internal locking.
type Dashboard struct {
	client   *Client
	loading  bool
	fetchErr error
	bookings []models.Booking
}

// New creates a Dashboard in its initial loading state.
func New(client *Client) *Dashboard {
	return &Dashboard{client: client, loading: true}
}

// Refresh loads the booking list. On failure the previous rows are kept
// and the error is recorded for the renderer.
func (d *Dashboard) Refresh(ctx context.Context) error {
	bookings, err := d.client.FetchBookings(ctx)
	d.loading = false
	d.fetchErr = err
	if err != nil {
		return err
	}
	d.bookings = bookings
	return nil
}

// State reports what the renderer should draw.
func (d *Dashboard) State() RenderState {
	switch {
	case d.loading:
		return StateLoading
	case d.fetchErr != nil:
		return StateError
	case len(d.bookings) == 0:
		return StateEmpty
	}
	return StateTable
}

// Err returns the last fetch error, nil after a successful Refresh.
func (d *Dashboard) Err() error {
	return d.fetchErr
}

// Rows returns the bookings to render.
func (d *Dashboard) Rows() []models.Booking {
	return d.bookings
}

// CanAssign reports whether the assign control is shown for the row:
// only pending bookings are assignable.
func (d *Dashboard) CanAssign(id string) bool {
	row := d.find(id)
	return row != nil && row.Status == models.StatusPending
}

// Assign marks a pending booking confirmed: the row is flipped locally
// first, the transition is persisted, and the row is rolled back if the
// server rejects it. On success the row is replaced with the server's
// record so displayed and persisted state stay in sync.
func (d *Dashboard) Assign(ctx context.Context, id string) error {
	row := d.find(id)
	if row == nil {
		return fmt.Errorf("booking %s is not in the table", id)
	}
	if row.Status != models.StatusPending {
		return fmt.Errorf("booking %s is not pending", id)
	}

	prev := row.Status
	row.Status = models.StatusConfirmed

	updated, err := d.client.UpdateBookingStatus(ctx, id, models.StatusConfirmed)
	if err != nil {
		row.Status = prev
		return err
	}

	// Reconcile with the persisted record, keeping the populated service
	// from the fetch if the update response omitted it.
	if updated.Service == nil {
		updated.Service = row.Service
	}
	*row = *updated
	return nil
}

func (d *Dashboard) find(id string) *models.Booking {
	for i := range d.bookings {
		if d.bookings[i].ID == id {
			return &d.bookings[i]
		}
	}
	return nil
}
