package therapist

import (
	"testing"
	"time"

	"santai/models"
	"santai/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type MockTherapistRepo struct{ mock.Mock }

func (m *MockTherapistRepo) GetByID(id string) (*models.Therapist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Therapist), args.Error(1)
}

func (m *MockTherapistRepo) GetByEmail(email string) (*models.Therapist, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Therapist), args.Error(1)
}

func (m *MockTherapistRepo) GetAll() ([]models.Therapist, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Therapist), args.Error(1)
}

func (m *MockTherapistRepo) Create(therapist *models.Therapist) error {
	return m.Called(therapist).Error(0)
}

func (m *MockTherapistRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	return m.Called(id, updateDoc).Error(0)
}

func (m *MockTherapistRepo) GetByTokenHash(tokenHash string) (*models.Therapist, error) {
	args := m.Called(tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Therapist), args.Error(1)
}

func newTestService(t *testing.T, repo *MockTherapistRepo) *DefaultTherapistService {
	t.Helper()
	svc, err := NewTherapistService(repo, zap.NewNop())
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestRegisterTherapist(t *testing.T) {
	t.Run("creates enabled account with hashed password", func(t *testing.T) {
		repo := new(MockTherapistRepo)
		repo.On("GetByEmail", "ayu@example.com").Return(nil, mongo.ErrNoDocuments)

		var created *models.Therapist
		repo.On("Create", mock.AnythingOfType("*models.Therapist")).
			Run(func(args mock.Arguments) {
				created = args.Get(0).(*models.Therapist)
			}).Return(nil)

		svc := newTestService(t, repo)

		_, err := svc.RegisterTherapist(RegisterTherapistRequest{
			Name:     "Ayu",
			Email:    "ayu@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.True(t, created.BookingEnabled)
		assert.True(t, created.ScheduleEnabled)
		assert.Equal(t, models.TherapistStatusAvailable, created.Status)
		assert.Equal(t, models.MembershipTierStandard, created.MembershipTier)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct-horse")))
		assert.NotEqual(t, "correct-horse", created.PasswordHash)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := new(MockTherapistRepo)
		repo.On("GetByEmail", "ayu@example.com").Return(&models.Therapist{ID: "t1"}, nil)

		svc := newTestService(t, repo)

		_, err := svc.RegisterTherapist(RegisterTherapistRequest{
			Name:     "Ayu",
			Email:    "ayu@example.com",
			Password: "correct-horse",
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestAuthenticateTherapist(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	account := func() *models.Therapist {
		return &models.Therapist{
			ID:           "t1",
			Name:         "Ayu",
			Email:        "ayu@example.com",
			PasswordHash: string(hash),
		}
	}

	t.Run("issues token and stores its hash", func(t *testing.T) {
		repo := new(MockTherapistRepo)
		repo.On("GetByEmail", "ayu@example.com").Return(account(), nil)

		var storedHash string
		repo.On("UpdateWithDocument", "t1", mock.MatchedBy(func(doc bson.M) bool {
			set, ok := doc["$set"].(bson.M)
			if !ok {
				return false
			}
			h, ok := set["tokenHash"].(string)
			storedHash = h
			return ok && h != ""
		})).Return(nil)

		svc := newTestService(t, repo)

		resp, err := svc.AuthenticateTherapist("ayu@example.com", "correct-horse")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, utils.HashToken(resp.Token), storedHash)

		extracted, err := utils.ExtractIDFromToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "t1", extracted)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockTherapistRepo)
		repo.On("GetByEmail", "ayu@example.com").Return(account(), nil)

		svc := newTestService(t, repo)

		_, err := svc.AuthenticateTherapist("ayu@example.com", "wrong")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid email or password")
		repo.AssertNotCalled(t, "UpdateWithDocument", mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockTherapistRepo)
		repo.On("GetByEmail", "ghost@example.com").Return(nil, mongo.ErrNoDocuments)

		svc := newTestService(t, repo)

		_, err := svc.AuthenticateTherapist("ghost@example.com", "whatever")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid email or password")
	})
}

func TestRevokeAuthToken(t *testing.T) {
	repo := new(MockTherapistRepo)
	repo.On("UpdateWithDocument", "t1", mock.MatchedBy(func(doc bson.M) bool {
		unset, ok := doc["$unset"].(bson.M)
		if !ok {
			return false
		}
		_, hasTokenHash := unset["tokenHash"]
		return hasTokenHash
	})).Return(nil)

	svc := newTestService(t, repo)

	require.NoError(t, svc.RevokeAuthToken("t1"))
	repo.AssertExpectations(t)
}
