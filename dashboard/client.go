package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"websync/models"
)

// Client is a thin HTTP client for the booking API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a Client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchBookings retrieves all bookings from GET /bookings.
func (c *Client) FetchBookings(ctx context.Context) ([]models.Booking, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/bookings", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch bookings: server returned %s", resp.Status)
	}

	var bookings []models.Booking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBookingStatus issues PATCH /bookings/:id/status and returns the
// server's updated record.
func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	payload, err := json.Marshal(map[string]models.BookingStatus{"status": status})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/bookings/%s/status", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Message != "" {
			return nil, fmt.Errorf("failed to update booking status: %s", errBody.Message)
		}
		return nil, fmt.Errorf("failed to update booking status: server returned %s", resp.Status)
	}

	var body struct {
		Booking models.Booking `json:"booking"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode updated booking: %w", err)
	}
	return &body.Booking, nil
}
