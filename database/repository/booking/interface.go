package bookingRepo

import (
	"santai/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// UpdateWithDocument patches a booking document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// ListByTherapist returns all bookings for a therapist.
	ListByTherapist(therapistID string) ([]models.Booking, error)
}
