package therapistRepo

import (
	"santai/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TherapistRepository defines methods for therapist data access.
type TherapistRepository interface {
	// GetByID retrieves a therapist by its unique ID.
	GetByID(id string) (*models.Therapist, error)
	// GetByEmail retrieves a therapist by email address.
	GetByEmail(email string) (*models.Therapist, error)
	// GetAll retrieves all therapists.
	GetAll() ([]models.Therapist, error)
	// Create inserts a new therapist record.
	Create(therapist *models.Therapist) error
	// UpdateWithDocument patches a therapist document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// GetByTokenHash retrieves a therapist whose tokenHash matches the provided hash.
	GetByTokenHash(tokenHash string) (*models.Therapist, error)
}
