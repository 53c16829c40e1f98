package booking

import (
	"errors"
	"fmt"

	"santai/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CreateBooking places a booking after checking the therapist's availability
// flag. Scheduled bookings get their deposit requirement created in the same
// call; deposit creation is idempotent per booking, so a failed call can be
// retried whole.
func (s *DefaultBookingService) CreateBooking(req CreateBookingRequest) (*models.Booking, error) {
	if req.BookingType != models.BookingTypeImmediate && req.BookingType != models.BookingTypeScheduled {
		return nil, &BookingError{Code: "invalidBookingType", Message: fmt.Sprintf("unsupported booking type %q", req.BookingType)}
	}
	if req.BookingType == models.BookingTypeScheduled && req.ScheduledDate == nil {
		return nil, &BookingError{Code: "invalidBookingType", Message: "scheduled booking requires a scheduled date"}
	}
	if req.TotalPrice <= 0 {
		return nil, &BookingError{Code: "invalidPrice", Message: fmt.Sprintf("invalid total price %d", req.TotalPrice)}
	}

	therapist, err := s.Therapists.GetByID(req.TherapistID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &BookingError{Code: "therapistNotFound", Message: fmt.Sprintf("therapist %s not found", req.TherapistID)}
		}
		return nil, err
	}
	if !therapist.BookingEnabled {
		return nil, NewTherapistUnavailableError(therapist.ID, therapist.DeactivationReason)
	}

	now := s.now().UTC()
	booking := &models.Booking{
		ID:            uuid.New().String(),
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		TherapistID:   therapist.ID,
		TherapistName: therapist.Name,
		ServiceType:   req.ServiceType,
		Duration:      req.Duration,
		TotalPrice:    req.TotalPrice,
		Location:      req.Location,
		BookingType:   req.BookingType,
		ScheduledDate: req.ScheduledDate,
		Status:        models.BookingStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("therapistId", therapist.ID),
		zap.String("bookingType", booking.BookingType))

	if booking.BookingType == models.BookingTypeScheduled {
		if _, err := s.Deposits.CreateDeposit(booking); err != nil {
			return nil, fmt.Errorf("booking %s created but deposit requirement failed: %w", booking.ID, err)
		}
	}

	return booking, nil
}

// UpdateBookingStatus advances a booking's state. Completion (always) and
// acceptance (for Pro-tier therapists, who owe commission up front) trigger
// commission record creation. Commission bookkeeping is secondary to the
// booking itself: a trigger failure is logged for manual review and never
// fails the booking operation.
func (s *DefaultBookingService) UpdateBookingStatus(bookingID, status string) (*models.Booking, error) {
	switch status {
	case models.BookingStatusAccepted, models.BookingStatusConfirmed,
		models.BookingStatusCompleted, models.BookingStatusCancelled:
	default:
		return nil, NewInvalidStatusError(status)
	}

	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &BookingError{Code: "bookingNotFound", Message: fmt.Sprintf("booking %s not found", bookingID)}
		}
		return nil, err
	}

	now := s.now().UTC()
	update := bson.M{"status": status, "updatedAt": now}
	if status == models.BookingStatusCompleted {
		update["completedAt"] = now
	}
	if err := s.Repo.UpdateWithDocument(bookingID, bson.M{"$set": update}); err != nil {
		return nil, err
	}

	s.logger.Info("booking status updated",
		zap.String("bookingId", bookingID), zap.String("status", status))

	switch status {
	case models.BookingStatusCompleted:
		s.triggerCommission(booking)
	case models.BookingStatusAccepted:
		if s.isProTier(booking.TherapistID) {
			s.triggerCommission(booking)
		}
	}

	return s.Repo.GetByID(bookingID)
}

func (s *DefaultBookingService) GetBooking(bookingID string) (*models.Booking, error) {
	return s.Repo.GetByID(bookingID)
}

func (s *DefaultBookingService) ListTherapistBookings(therapistID string) ([]models.Booking, error) {
	return s.Repo.ListByTherapist(therapistID)
}

// triggerCommission creates the commission record for a booking. The booking
// date is the server-side trigger time, never a client-supplied timestamp, so
// the payment deadline cannot be stretched from outside. Idempotent per
// booking through the commission service.
func (s *DefaultBookingService) triggerCommission(booking *models.Booking) {
	_, err := s.Commissions.CreateCommissionRecord(
		booking.TherapistID,
		booking.TherapistName,
		booking.ID,
		s.now().UTC(),
		booking.ScheduledDate,
		booking.TotalPrice,
	)
	if err != nil {
		s.logger.Error("failed to create commission record for booking",
			zap.String("bookingId", booking.ID),
			zap.String("therapistId", booking.TherapistID),
			zap.Error(err))
	}
}

func (s *DefaultBookingService) isProTier(therapistID string) bool {
	therapist, err := s.Therapists.GetByID(therapistID)
	if err != nil {
		s.logger.Warn("could not resolve therapist tier",
			zap.String("therapistId", therapistID), zap.Error(err))
		return false
	}
	return therapist.MembershipTier == models.MembershipTierPro
}
