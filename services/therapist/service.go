package therapist

import (
	"errors"
	"fmt"
	"time"

	"santai/models"
	"santai/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 72 * time.Hour

// RegisterTherapist creates a new account. The email must be unused.
func (s *DefaultTherapistService) RegisterTherapist(req RegisterTherapistRequest) (*models.Therapist, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("therapist with email %s already exists", req.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tier := req.MembershipTier
	if tier == "" {
		tier = models.MembershipTierStandard
	}

	now := s.now().UTC()
	therapist := &models.Therapist{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		MembershipTier:  tier,
		BookingEnabled:  true,
		ScheduleEnabled: true,
		Status:          models.TherapistStatusAvailable,
		PasswordHash:    string(hashedPassword),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Create(therapist); err != nil {
		return nil, err
	}

	s.logger.Info("therapist registered",
		zap.String("therapistId", therapist.ID), zap.String("tier", tier))

	return therapist, nil
}

// AuthenticateTherapist verifies credentials, issues a JWT and stores its hash
// on the account so the auth middleware can check revocation.
func (s *DefaultTherapistService) AuthenticateTherapist(email, password string) (*AuthResponse, error) {
	therapist, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("invalid email or password")
		}
		s.logger.Error("failed to fetch therapist for authentication", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(therapist.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(therapist.ID, therapist.Email, authTokenTTL)
	if err != nil {
		s.logger.Error("failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := s.Repo.UpdateWithDocument(therapist.ID, bson.M{"$set": bson.M{
		"tokenHash": utils.HashToken(token),
		"updatedAt": s.now().UTC(),
	}}); err != nil {
		s.logger.Error("failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:    therapist.ID,
		Name:  therapist.Name,
		Email: therapist.Email,
		Token: token,
	}, nil
}

// RevokeAuthToken clears the stored token hash, invalidating the current session.
func (s *DefaultTherapistService) RevokeAuthToken(therapistID string) error {
	return s.Repo.UpdateWithDocument(therapistID, bson.M{
		"$unset": bson.M{"tokenHash": ""},
		"$set":   bson.M{"updatedAt": s.now().UTC()},
	})
}

func (s *DefaultTherapistService) GetTherapistProfile(therapistID string) (*models.Therapist, error) {
	return s.Repo.GetByID(therapistID)
}
