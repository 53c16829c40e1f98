package therapist

import (
	"fmt"
	"time"

	therapistRepo "santai/database/repository/therapist"
	"santai/models"

	"go.uber.org/zap"
)

// RegisterTherapistRequest carries the fields needed to create an account.
type RegisterTherapistRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	PhoneNumber    string `json:"phoneNumber"`
	Password       string `json:"password" binding:"required,min=8"`
	MembershipTier string `json:"membershipTier"`
}

// AuthResponse is returned on successful sign-in.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// TherapistService manages therapist accounts and authentication.
type TherapistService interface {
	// RegisterTherapist creates a new account with a hashed password. New
	// accounts start available with booking enabled.
	RegisterTherapist(req RegisterTherapistRequest) (*models.Therapist, error)
	// AuthenticateTherapist verifies credentials and issues a JWT whose hash is
	// stored on the account for revocation checks.
	AuthenticateTherapist(email, password string) (*AuthResponse, error)
	// RevokeAuthToken invalidates the therapist's current token.
	RevokeAuthToken(therapistID string) error
	GetTherapistProfile(therapistID string) (*models.Therapist, error)
}

// DefaultTherapistService is the production implementation.
type DefaultTherapistService struct {
	Repo therapistRepo.TherapistRepository

	logger *zap.Logger
	now    func() time.Time
}

// NewTherapistService wires a DefaultTherapistService.
func NewTherapistService(repo therapistRepo.TherapistRepository, logger *zap.Logger) (*DefaultTherapistService, error) {
	if repo == nil || logger == nil {
		return nil, fmt.Errorf("therapist service initialization error: one or more dependencies are nil")
	}
	return &DefaultTherapistService{
		Repo:   repo,
		logger: logger,
		now:    time.Now,
	}, nil
}
