package handlers

import (
	"errors"
	"net/http"
	"time"

	"websync/models"
	"websync/services/booking"
	"websync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

// NewBookingHandler creates a BookingHandler with its dependencies.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// dateLayouts are the accepted formats for the booking date field.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreateBookingHandler handles POST /book.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var body struct {
		User     string `json:"user"`
		Service  string `json:"service"`
		Date     string `json:"date"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Warn("CreateBooking: invalid request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", "body must be a JSON object")
		return
	}

	var date time.Time
	if body.Date != "" {
		parsed, ok := parseDate(body.Date)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date",
				"date must be RFC3339 or YYYY-MM-DD")
			return
		}
		date = parsed
	}

	created, err := h.BookingSvc.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		User:      body.User,
		ServiceID: body.Service,
		Date:      date,
		Location:  body.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrValidation):
			utils.JSONError(c, http.StatusBadRequest,
				"All fields are required: user, service, date, location", err.Error())
		case errors.Is(err, booking.ErrUnknownService):
			utils.JSONError(c, http.StatusUnprocessableEntity, "Unknown service", err.Error())
		default:
			h.Logger.Error("CreateBooking: failed to create booking", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Error creating booking", "store unavailable")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": created,
	})
}

// ListBookingsHandler handles GET /bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingSvc.ListBookings(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListBookings: failed to fetch bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching bookings", "store unavailable")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")

	found, err := h.BookingSvc.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", id)
			return
		}
		h.Logger.Error("GetBooking: failed to fetch booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching booking", "store unavailable")
		return
	}

	c.JSON(http.StatusOK, found)
}

// UpdateStatusHandler handles PATCH /bookings/:id/status.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", "status field is required")
		return
	}

	updated, err := h.BookingSvc.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrValidation):
			utils.JSONError(c, http.StatusBadRequest, "Invalid status", err.Error())
		case errors.Is(err, booking.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", id)
		case errors.Is(err, booking.ErrIllegalTransition):
			utils.JSONError(c, http.StatusConflict, "Illegal status transition", err.Error())
		default:
			h.Logger.Error("UpdateStatus: failed to update booking",
				zap.String("id", id), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Error updating booking", "store unavailable")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated",
		"booking": updated,
	})
}
