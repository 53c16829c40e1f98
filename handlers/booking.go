package handlers

import (
	"errors"
	"net/http"

	"santai/services/booking"
	"santai/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBookingHandler places a new booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "detail": err.Error()})
		return
	}

	created, err := h.Svc.CreateBooking(req)
	if err != nil {
		var bookingErr *booking.BookingError
		if errors.As(err, &bookingErr) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "booking rejected", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

type updateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateBookingStatusHandler advances a booking's lifecycle state.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	bookingID := c.Param("id")

	var req updateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "detail": err.Error()})
		return
	}

	updated, err := h.Svc.UpdateBookingStatus(bookingID, req.Status)
	if err != nil {
		var bookingErr *booking.BookingError
		if errors.As(err, &bookingErr) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "status update rejected", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update booking status", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// GetBookingHandler fetches a single booking by ID.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booking, err := h.Svc.GetBooking(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// ListTherapistBookingsHandler lists the authenticated therapist's bookings.
func (h *BookingHandler) ListTherapistBookingsHandler(c *gin.Context) {
	therapistID := c.GetString("therapistID")
	if therapistID == "" {
		therapistID = c.Param("id")
	}

	bookings, err := h.Svc.ListTherapistBookings(therapistID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
