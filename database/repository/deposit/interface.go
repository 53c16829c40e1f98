package depositRepo

import (
	"errors"
	"time"

	"santai/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrDuplicateBooking is returned by Create when a deposit record already
// exists for the booking (unique index on bookingId).
var ErrDuplicateBooking = errors.New("deposit record already exists for booking")

// DepositRepository defines methods for deposit record data access.
type DepositRepository interface {
	// Create inserts a new deposit record. Returns ErrDuplicateBooking when a
	// record for the same bookingId already exists.
	Create(record *models.DepositRecord) error
	// GetByID retrieves a deposit record by its unique ID.
	GetByID(id string) (*models.DepositRecord, error)
	// GetByBookingID retrieves the deposit record for a booking, if any.
	GetByBookingID(bookingID string) (*models.DepositRecord, error)
	// UpdateWithDocument patches a deposit record, optionally constrained to
	// records currently in one of the given statuses. Returns the number of
	// matched documents.
	UpdateWithDocument(id string, fromStatuses []string, updateDoc bson.M) (int64, error)
	// ListByStatus returns all records with the given status.
	ListByStatus(status string) ([]models.DepositRecord, error)
	// ListPendingPastExpiry returns pending deposits whose expiry has passed.
	ListPendingPastExpiry(now time.Time) ([]models.DepositRecord, error)
}
