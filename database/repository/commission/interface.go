package commissionRepo

import (
	"errors"
	"time"

	"santai/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrDuplicateBooking is returned by Create when a commission record already
// exists for the booking (unique index on bookingId).
var ErrDuplicateBooking = errors.New("commission record already exists for booking")

// CommissionRepository defines methods for commission record data access.
type CommissionRepository interface {
	// Create inserts a new commission record. Returns ErrDuplicateBooking when a
	// record for the same bookingId already exists.
	Create(record *models.CommissionPayment) error
	// GetByID retrieves a commission record by its unique ID.
	GetByID(id string) (*models.CommissionPayment, error)
	// GetByBookingID retrieves the commission record for a booking, if any.
	GetByBookingID(bookingID string) (*models.CommissionPayment, error)
	// UpdateWithDocument patches a commission record with the specified update
	// document, optionally constrained to records currently in one of the given
	// statuses. Returns the number of matched documents.
	UpdateWithDocument(id string, fromStatuses []string, updateDoc bson.M) (int64, error)
	// ListByTherapistAndStatus returns a therapist's records in any of the given statuses.
	ListByTherapistAndStatus(therapistID string, statuses []string) ([]models.CommissionPayment, error)
	// ListByStatus returns all records with the given status.
	ListByStatus(status string) ([]models.CommissionPayment, error)
	// ListPendingPastDeadline returns pending records whose payment deadline has passed.
	ListPendingPastDeadline(now time.Time) ([]models.CommissionPayment, error)
	// ListHistory returns a therapist's records ordered by creation time descending.
	ListHistory(therapistID string, limit int64) ([]models.CommissionPayment, error)
}
