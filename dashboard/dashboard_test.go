package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"websync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-memory stand-in for the booking backend. PATCH
// enforces the same transition rules as the real service.
type fakeAPI struct {
	bookings map[string]*models.Booking
	failGET  bool
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if f.failGET {
			http.Error(w, `{"message":"Error fetching bookings"}`, http.StatusInternalServerError)
			return
		}
		list := make([]*models.Booking, 0, len(f.bookings))
		for _, b := range f.bookings {
			list = append(list, b)
		}
		_ = json.NewEncoder(w).Encode(list)
	})

	mux.HandleFunc("/bookings/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/bookings/")
		id, ok := strings.CutSuffix(id, "/status")
		if !ok || id == "" || strings.Contains(id, "/") {
			http.NotFound(w, r)
			return
		}

		var body struct {
			Status models.BookingStatus `json:"status"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		b, ok := f.bookings[id]
		if !ok {
			http.Error(w, `{"message":"Booking not found"}`, http.StatusNotFound)
			return
		}
		if !b.Status.CanTransitionTo(body.Status) {
			http.Error(w, `{"message":"Illegal status transition"}`, http.StatusConflict)
			return
		}
		b.Status = body.Status
		b.UpdatedAt = time.Now()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Booking status updated",
			"booking": b,
		})
	})

	return mux
}

func newFakeAPI(bookings ...*models.Booking) *fakeAPI {
	f := &fakeAPI{bookings: map[string]*models.Booking{}}
	for _, b := range bookings {
		f.bookings[b.ID] = b
	}
	return f
}

func pendingBooking(id string) *models.Booking {
	return &models.Booking{
		ID:        id,
		User:      "Alice",
		ServiceID: "svc-ac",
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Location:  "12 Elm St",
		Status:    models.StatusPending,
		Service:   &models.Service{ID: "svc-ac", Name: "AC Maintenance"},
	}
}

func TestDashboard_InitialStateIsLoading(t *testing.T) {
	d := New(NewClient("http://127.0.0.1:0"))
	assert.Equal(t, StateLoading, d.State())
}

func TestDashboard_RefreshLoadsRows(t *testing.T) {
	api := newFakeAPI(pendingBooking("bk-1"))
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	d := New(NewClient(srv.URL))
	require.NoError(t, d.Refresh(context.Background()))

	assert.Equal(t, StateTable, d.State())
	require.Len(t, d.Rows(), 1)
	assert.Equal(t, "Alice", d.Rows()[0].User)
	assert.True(t, d.CanAssign("bk-1"))
}

func TestDashboard_EmptyResultIsNotAnError(t *testing.T) {
	api := newFakeAPI()
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	d := New(NewClient(srv.URL))
	require.NoError(t, d.Refresh(context.Background()))

	assert.Equal(t, StateEmpty, d.State())
	assert.NoError(t, d.Err())
}

func TestDashboard_FetchFailureIsDistinguishableFromEmpty(t *testing.T) {
	api := newFakeAPI()
	api.failGET = true
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	d := New(NewClient(srv.URL))
	err := d.Refresh(context.Background())
	require.Error(t, err)

	assert.Equal(t, StateError, d.State())
	assert.Error(t, d.Err())
}

func TestDashboard_AssignPersistsTransition(t *testing.T) {
	api := newFakeAPI(pendingBooking("bk-1"))
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	d := New(NewClient(srv.URL))
	require.NoError(t, d.Refresh(context.Background()))
	require.NoError(t, d.Assign(context.Background(), "bk-1"))

	// Visible state updated.
	assert.Equal(t, models.StatusConfirmed, d.Rows()[0].Status)
	assert.False(t, d.CanAssign("bk-1"))

	// Persisted state matches: a fresh fetch reports confirmed too.
	fresh := New(NewClient(srv.URL))
	require.NoError(t, fresh.Refresh(context.Background()))
	assert.Equal(t, models.StatusConfirmed, fresh.Rows()[0].Status)
}

func TestDashboard_AssignRollsBackOnServerRejection(t *testing.T) {
	serverRow := pendingBooking("bk-1")
	api := newFakeAPI(serverRow)
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	d := New(NewClient(srv.URL))
	require.NoError(t, d.Refresh(context.Background()))

	// The server moves the booking underneath the dashboard; the next
	// assign conflicts and the local row must roll back to what it showed.
	serverRow.Status = models.StatusCancelled

	err := d.Assign(context.Background(), "bk-1")
	require.Error(t, err)
	assert.Equal(t, models.StatusPending, d.Rows()[0].Status)
}

func TestDashboard_AssignRollsBackOnTransportFailure(t *testing.T) {
	api := newFakeAPI(pendingBooking("bk-1"))
	srv := httptest.NewServer(api.handler())

	d := New(NewClient(srv.URL))
	require.NoError(t, d.Refresh(context.Background()))

	srv.Close()
	err := d.Assign(context.Background(), "bk-1")
	require.Error(t, err)
	assert.Equal(t, models.StatusPending, d.Rows()[0].Status)
}

func TestDashboard_AssignRequiresPendingRow(t *testing.T) {
	b := pendingBooking("bk-1")
	b.Status = models.StatusCompleted
	api := newFakeAPI(b)
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	d := New(NewClient(srv.URL))
	require.NoError(t, d.Refresh(context.Background()))

	assert.False(t, d.CanAssign("bk-1"))
	assert.Error(t, d.Assign(context.Background(), "bk-1"))
	assert.Error(t, d.Assign(context.Background(), "bk-unknown"))
}
