package booking

import (
	"fmt"
	"time"

	bookingRepo "santai/database/repository/booking"
	therapistRepo "santai/database/repository/therapist"
	"santai/models"
	"santai/services/commission"
	"santai/services/deposit"

	"go.uber.org/zap"
)

// CreateBookingRequest carries the fields needed to place a booking.
type CreateBookingRequest struct {
	CustomerID    string     `json:"customerId" binding:"required"`
	CustomerName  string     `json:"customerName" binding:"required"`
	TherapistID   string     `json:"therapistId" binding:"required"`
	ServiceType   string     `json:"serviceType" binding:"required"`
	Duration      int        `json:"duration" binding:"required"`
	TotalPrice    int64      `json:"totalPrice" binding:"required"`
	Location      string     `json:"location"`
	BookingType   string     `json:"bookingType" binding:"required"`
	ScheduledDate *time.Time `json:"scheduledDate"`
}

// BookingService manages booking records and owns the booking-to-commission
// trigger.
type BookingService interface {
	// CreateBooking places a booking for an eligible therapist. Scheduled
	// bookings also create their deposit requirement.
	CreateBooking(req CreateBookingRequest) (*models.Booking, error)
	// UpdateBookingStatus advances a booking's state. A transition to completed
	// (and, for Pro-tier therapists, to accepted) triggers commission creation.
	UpdateBookingStatus(bookingID, status string) (*models.Booking, error)
	GetBooking(bookingID string) (*models.Booking, error)
	ListTherapistBookings(therapistID string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	Therapists  therapistRepo.TherapistRepository
	Commissions commission.CommissionService
	Deposits    deposit.DepositService

	logger *zap.Logger
	now    func() time.Time
}

// NewBookingService wires a DefaultBookingService.
func NewBookingService(
	repo bookingRepo.BookingRepository,
	therapists therapistRepo.TherapistRepository,
	commissions commission.CommissionService,
	deposits deposit.DepositService,
	logger *zap.Logger,
) (*DefaultBookingService, error) {
	if repo == nil || therapists == nil || commissions == nil || deposits == nil || logger == nil {
		return nil, fmt.Errorf("booking service initialization error: one or more dependencies are nil")
	}
	return &DefaultBookingService{
		Repo:        repo,
		Therapists:  therapists,
		Commissions: commissions,
		Deposits:    deposits,
		logger:      logger,
		now:         time.Now,
	}, nil
}
