package commission

import (
	"context"
	"errors"
	"testing"
	"time"

	"santai/config"
	commissionRepo "santai/database/repository/commission"
	"santai/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Mock repositories and collaborators
type MockCommissionRepo struct{ mock.Mock }
type MockTherapistRepo struct{ mock.Mock }
type MockStorageService struct{ mock.Mock }
type MockSink struct{ mock.Mock }

func (m *MockCommissionRepo) Create(record *models.CommissionPayment) error {
	return m.Called(record).Error(0)
}

func (m *MockCommissionRepo) GetByID(id string) (*models.CommissionPayment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommissionPayment), args.Error(1)
}

func (m *MockCommissionRepo) GetByBookingID(bookingID string) (*models.CommissionPayment, error) {
	args := m.Called(bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommissionPayment), args.Error(1)
}

func (m *MockCommissionRepo) UpdateWithDocument(id string, fromStatuses []string, updateDoc bson.M) (int64, error) {
	args := m.Called(id, fromStatuses, updateDoc)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommissionRepo) ListByTherapistAndStatus(therapistID string, statuses []string) ([]models.CommissionPayment, error) {
	args := m.Called(therapistID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommissionPayment), args.Error(1)
}

func (m *MockCommissionRepo) ListByStatus(status string) ([]models.CommissionPayment, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommissionPayment), args.Error(1)
}

func (m *MockCommissionRepo) ListPendingPastDeadline(now time.Time) ([]models.CommissionPayment, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommissionPayment), args.Error(1)
}

func (m *MockCommissionRepo) ListHistory(therapistID string, limit int64) ([]models.CommissionPayment, error) {
	args := m.Called(therapistID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommissionPayment), args.Error(1)
}

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

func (m *MockStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	args := m.Called(ctx, localFilePath, destFolder)
	return args.String(0), args.Error(1)
}

func (m *MockStorageService) DeleteFile(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

func (m *MockStorageService) GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error) {
	args := m.Called(ctx, publicID, expires)
	return args.String(0), args.Error(1)
}

func (m *MockSink) Notify(ctx context.Context, n models.Notification) error {
	return m.Called(ctx, n).Error(0)
}

var testClock = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func testConfig() config.CommissionConfig {
	return config.CommissionConfig{
		RatePercent:           30,
		PaymentDeadlineOffset: 3 * time.Hour,
		LateFee:               50000,
		ProofFolder:           "payment-proofs",
	}
}

func newTestService(t *testing.T, repo *MockCommissionRepo, therapists *MockTherapistRepo,
	storage *MockStorageService, sink *MockSink, cfg config.CommissionConfig) *DefaultCommissionService {
	t.Helper()
	svc, err := NewCommissionService(repo, therapists, storage, sink, cfg, zap.NewNop())
	require.NoError(t, err)
	svc.now = func() time.Time { return testClock }
	return svc
}

func deactivationDoc(doc bson.M) (bson.M, bool) {
	set, ok := doc["$set"].(bson.M)
	if !ok {
		return nil, false
	}
	enabled, ok := set["bookingEnabled"].(bool)
	return set, ok && !enabled
}

func reactivationDoc(doc bson.M) bool {
	set, ok := doc["$set"].(bson.M)
	if !ok {
		return false
	}
	enabled, ok := set["bookingEnabled"].(bool)
	if !ok || !enabled {
		return false
	}
	_, hasUnset := doc["$unset"]
	return hasUnset
}

func TestCreateCommissionRecord(t *testing.T) {
	bookingDate := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("creates pending record at default rate", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		therapists := new(MockTherapistRepo)

		therapists.On("GetByID", "t1").Return(&models.Therapist{ID: "t1", Name: "Ayu"}, nil)

		var created *models.CommissionPayment
		repo.On("Create", mock.AnythingOfType("*models.CommissionPayment")).
			Run(func(args mock.Arguments) {
				created = args.Get(0).(*models.CommissionPayment)
			}).Return(nil)

		svc := newTestService(t, repo, therapists, new(MockStorageService), new(MockSink), testConfig())

		record, err := svc.CreateCommissionRecord("t1", "Ayu", "b1", bookingDate, nil, 250000)
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, models.CommissionStatusPending, record.Status)
		assert.Equal(t, int64(250000), record.ServiceAmount)
		assert.Equal(t, 30, record.CommissionRate)
		assert.Equal(t, int64(75000), record.CommissionAmount)
		assert.Equal(t, bookingDate.Add(3*time.Hour), record.PaymentDeadline)
		assert.NotEmpty(t, record.ID)
		therapists.AssertNotCalled(t, "UpdateWithDocument", mock.Anything, mock.Anything)
	})

	t.Run("therapist rate override wins", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		therapists := new(MockTherapistRepo)

		therapists.On("GetByID", "t1").Return(&models.Therapist{ID: "t1", CommissionRate: 20}, nil)
		repo.On("Create", mock.Anything).Return(nil)

		svc := newTestService(t, repo, therapists, new(MockStorageService), new(MockSink), testConfig())

		record, err := svc.CreateCommissionRecord("t1", "Ayu", "b1", bookingDate, nil, 250000)
		require.NoError(t, err)
		assert.Equal(t, 20, record.CommissionRate)
		assert.Equal(t, int64(50000), record.CommissionAmount)
	})

	t.Run("duplicate booking returns existing record", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		therapists := new(MockTherapistRepo)

		existing := &models.CommissionPayment{ID: "c-existing", BookingID: "b1", Status: models.CommissionStatusPending}
		therapists.On("GetByID", "t1").Return(&models.Therapist{ID: "t1"}, nil)
		repo.On("Create", mock.Anything).Return(commissionRepo.ErrDuplicateBooking)
		repo.On("GetByBookingID", "b1").Return(existing, nil)

		svc := newTestService(t, repo, therapists, new(MockStorageService), new(MockSink), testConfig())

		record, err := svc.CreateCommissionRecord("t1", "Ayu", "b1", bookingDate, nil, 250000)
		require.NoError(t, err)
		assert.Equal(t, "c-existing", record.ID)
	})

	t.Run("unknown therapist", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		therapists := new(MockTherapistRepo)
		therapists.On("GetByID", "ghost").Return(nil, mongo.ErrNoDocuments)

		svc := newTestService(t, repo, therapists, new(MockStorageService), new(MockSink), testConfig())

		_, err := svc.CreateCommissionRecord("ghost", "", "b1", bookingDate, nil, 250000)
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("rejects missing IDs and negative amounts", func(t *testing.T) {
		svc := newTestService(t, new(MockCommissionRepo), new(MockTherapistRepo),
			new(MockStorageService), new(MockSink), testConfig())

		var ve *ValidationError
		_, err := svc.CreateCommissionRecord("", "Ayu", "b1", bookingDate, nil, 250000)
		assert.ErrorAs(t, err, &ve)
		_, err = svc.CreateCommissionRecord("t1", "Ayu", "", bookingDate, nil, 250000)
		assert.ErrorAs(t, err, &ve)
		_, err = svc.CreateCommissionRecord("t1", "Ayu", "b1", bookingDate, nil, -1)
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("strict policy deactivates on creation", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		therapists := new(MockTherapistRepo)

		therapists.On("GetByID", "t1").Return(&models.Therapist{ID: "t1"}, nil)
		repo.On("Create", mock.Anything).Return(nil)
		therapists.On("UpdateWithDocument", "t1", mock.MatchedBy(func(doc bson.M) bool {
			_, ok := deactivationDoc(doc)
			return ok
		})).Return(nil)

		cfg := testConfig()
		cfg.PendingBlocksBooking = true
		svc := newTestService(t, repo, therapists, new(MockStorageService), new(MockSink), cfg)

		_, err := svc.CreateCommissionRecord("t1", "Ayu", "b1", bookingDate, nil, 250000)
		require.NoError(t, err)
		therapists.AssertExpectations(t)
	})
}

func TestUploadPaymentProof(t *testing.T) {
	ctx := context.Background()

	pendingRecord := func() *models.CommissionPayment {
		return &models.CommissionPayment{
			ID:            "c1",
			BookingID:     "b1",
			TherapistID:   "t1",
			TherapistName: "Ayu",
			Status:        models.CommissionStatusPending,
		}
	}

	t.Run("moves record to awaiting verification and reactivates account", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		therapists := new(MockTherapistRepo)
		storage := new(MockStorageService)
		sink := new(MockSink)

		updated := pendingRecord()
		updated.Status = models.CommissionStatusAwaitingVerification

		repo.On("GetByID", "c1").Return(pendingRecord(), nil).Once()
		storage.On("UploadFile", ctx, "/tmp/proof.jpg", "payment-proofs").Return("proofs/abc", nil)
		storage.On("GetDownloadURL", ctx, "proofs/abc", time.Duration(0)).Return("https://cdn/proofs/abc", nil)
		repo.On("UpdateWithDocument", "c1",
			[]string{models.CommissionStatusPending, models.CommissionStatusOverdue, models.CommissionStatusRejected},
			mock.MatchedBy(func(doc bson.M) bool {
				set := doc["$set"].(bson.M)
				return set["status"] == models.CommissionStatusAwaitingVerification &&
					set["paymentProofUrl"] == "https://cdn/proofs/abc" &&
					set["paymentMethod"] == models.PaymentMethodBankTransfer
			})).Return(int64(1), nil)
		therapists.On("UpdateWithDocument", "t1", mock.MatchedBy(reactivationDoc)).Return(nil)
		sink.On("Notify", ctx, mock.AnythingOfType("models.Notification")).Return(nil)
		repo.On("GetByID", "c1").Return(updated, nil).Once()

		svc := newTestService(t, repo, therapists, storage, sink, testConfig())

		record, err := svc.UploadPaymentProof(ctx, "c1", "/tmp/proof.jpg", models.PaymentMethodBankTransfer)
		require.NoError(t, err)
		assert.Equal(t, models.CommissionStatusAwaitingVerification, record.Status)
		repo.AssertExpectations(t)
		therapists.AssertExpectations(t)
	})

	t.Run("rejected record accepts a new proof", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		therapists := new(MockTherapistRepo)
		storage := new(MockStorageService)
		sink := new(MockSink)

		rejected := pendingRecord()
		rejected.Status = models.CommissionStatusRejected
		resubmitted := pendingRecord()
		resubmitted.Status = models.CommissionStatusAwaitingVerification

		repo.On("GetByID", "c1").Return(rejected, nil).Once()
		storage.On("UploadFile", ctx, "/tmp/proof2.jpg", "payment-proofs").Return("proofs/def", nil)
		storage.On("GetDownloadURL", ctx, "proofs/def", time.Duration(0)).Return("https://cdn/proofs/def", nil)
		repo.On("UpdateWithDocument", "c1", mock.Anything, mock.Anything).Return(int64(1), nil)
		therapists.On("UpdateWithDocument", "t1", mock.Anything).Return(nil)
		sink.On("Notify", ctx, mock.Anything).Return(nil)
		repo.On("GetByID", "c1").Return(resubmitted, nil).Once()

		svc := newTestService(t, repo, therapists, storage, sink, testConfig())

		record, err := svc.UploadPaymentProof(ctx, "c1", "/tmp/proof2.jpg", models.PaymentMethodEWallet)
		require.NoError(t, err)
		assert.Equal(t, models.CommissionStatusAwaitingVerification, record.Status)
	})

	t.Run("upload from verified is a policy violation", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		storage := new(MockStorageService)

		verified := pendingRecord()
		verified.Status = models.CommissionStatusVerified
		repo.On("GetByID", "c1").Return(verified, nil)

		svc := newTestService(t, repo, new(MockTherapistRepo), storage, new(MockSink), testConfig())

		_, err := svc.UploadPaymentProof(ctx, "c1", "/tmp/proof.jpg", models.PaymentMethodCash)
		var pv *PolicyViolationError
		require.ErrorAs(t, err, &pv)
		storage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure leaves record untouched", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		storage := new(MockStorageService)

		repo.On("GetByID", "c1").Return(pendingRecord(), nil)
		storage.On("UploadFile", ctx, "/tmp/proof.jpg", "payment-proofs").
			Return("", errors.New("cloudinary unavailable"))

		svc := newTestService(t, repo, new(MockTherapistRepo), storage, new(MockSink), testConfig())

		_, err := svc.UploadPaymentProof(ctx, "c1", "/tmp/proof.jpg", models.PaymentMethodBankTransfer)
		require.Error(t, err)
		repo.AssertNotCalled(t, "UpdateWithDocument", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lost race on status is a policy violation", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		therapists := new(MockTherapistRepo)
		storage := new(MockStorageService)

		repo.On("GetByID", "c1").Return(pendingRecord(), nil)
		storage.On("UploadFile", ctx, mock.Anything, mock.Anything).Return("proofs/abc", nil)
		storage.On("GetDownloadURL", ctx, "proofs/abc", time.Duration(0)).Return("https://cdn/proofs/abc", nil)
		repo.On("UpdateWithDocument", "c1", mock.Anything, mock.Anything).Return(int64(0), nil)

		svc := newTestService(t, repo, therapists, storage, new(MockSink), testConfig())

		_, err := svc.UploadPaymentProof(ctx, "c1", "/tmp/proof.jpg", models.PaymentMethodBankTransfer)
		var pv *PolicyViolationError
		require.ErrorAs(t, err, &pv)
		therapists.AssertNotCalled(t, "UpdateWithDocument", mock.Anything, mock.Anything)
	})

	t.Run("notification failure does not fail the upload", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		therapists := new(MockTherapistRepo)
		storage := new(MockStorageService)
		sink := new(MockSink)

		updated := pendingRecord()
		updated.Status = models.CommissionStatusAwaitingVerification

		repo.On("GetByID", "c1").Return(pendingRecord(), nil).Once()
		storage.On("UploadFile", ctx, mock.Anything, mock.Anything).Return("proofs/abc", nil)
		storage.On("GetDownloadURL", ctx, "proofs/abc", time.Duration(0)).Return("https://cdn/proofs/abc", nil)
		repo.On("UpdateWithDocument", "c1", mock.Anything, mock.Anything).Return(int64(1), nil)
		therapists.On("UpdateWithDocument", "t1", mock.Anything).Return(nil)
		sink.On("Notify", ctx, mock.Anything).Return(errors.New("sink down"))
		repo.On("GetByID", "c1").Return(updated, nil).Once()

		svc := newTestService(t, repo, therapists, storage, sink, testConfig())

		record, err := svc.UploadPaymentProof(ctx, "c1", "/tmp/proof.jpg", models.PaymentMethodBankTransfer)
		require.NoError(t, err)
		assert.Equal(t, models.CommissionStatusAwaitingVerification, record.Status)
	})

	t.Run("unsupported payment method", func(t *testing.T) {
		svc := newTestService(t, new(MockCommissionRepo), new(MockTherapistRepo),
			new(MockStorageService), new(MockSink), testConfig())

		_, err := svc.UploadPaymentProof(ctx, "c1", "/tmp/proof.jpg", "crypto")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestVerifyPayment(t *testing.T) {
	awaitingRecord := func() *models.CommissionPayment {
		return &models.CommissionPayment{
			ID:          "c1",
			BookingID:   "b1",
			TherapistID: "t1",
			Status:      models.CommissionStatusAwaitingVerification,
		}
	}

	t.Run("approval verifies record and reactivates account", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		therapists := new(MockTherapistRepo)

		verified := awaitingRecord()
		verified.Status = models.CommissionStatusVerified

		repo.On("GetByID", "c1").Return(awaitingRecord(), nil).Once()
		therapists.On("UpdateWithDocument", "t1", mock.MatchedBy(reactivationDoc)).Return(nil)
		repo.On("UpdateWithDocument", "c1",
			[]string{models.CommissionStatusAwaitingVerification},
			mock.MatchedBy(func(doc bson.M) bool {
				set := doc["$set"].(bson.M)
				return set["status"] == models.CommissionStatusVerified && set["verifiedBy"] == "admin-1"
			})).Return(int64(1), nil)
		repo.On("GetByID", "c1").Return(verified, nil).Once()

		svc := newTestService(t, repo, therapists, new(MockStorageService), new(MockSink), testConfig())

		record, err := svc.VerifyPayment("c1", "admin-1", true, "")
		require.NoError(t, err)
		assert.Equal(t, models.CommissionStatusVerified, record.Status)
		therapists.AssertExpectations(t)
	})

	t.Run("rejection records reason and deactivates account", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		therapists := new(MockTherapistRepo)

		rejected := awaitingRecord()
		rejected.Status = models.CommissionStatusRejected
		rejected.RejectionReason = "amount does not match"

		repo.On("GetByID", "c1").Return(awaitingRecord(), nil).Once()
		therapists.On("UpdateWithDocument", "t1", mock.MatchedBy(func(doc bson.M) bool {
			set, ok := deactivationDoc(doc)
			return ok && set["status"] == models.TherapistStatusBusy
		})).Return(nil)
		repo.On("UpdateWithDocument", "c1",
			[]string{models.CommissionStatusAwaitingVerification},
			mock.MatchedBy(func(doc bson.M) bool {
				set := doc["$set"].(bson.M)
				return set["status"] == models.CommissionStatusRejected &&
					set["rejectionReason"] == "amount does not match"
			})).Return(int64(1), nil)
		repo.On("GetByID", "c1").Return(rejected, nil).Once()

		svc := newTestService(t, repo, therapists, new(MockStorageService), new(MockSink), testConfig())

		record, err := svc.VerifyPayment("c1", "admin-1", false, "amount does not match")
		require.NoError(t, err)
		assert.Equal(t, models.CommissionStatusRejected, record.Status)
		therapists.AssertExpectations(t)
	})

	t.Run("rejection requires a reason", func(t *testing.T) {
		svc := newTestService(t, new(MockCommissionRepo), new(MockTherapistRepo),
			new(MockStorageService), new(MockSink), testConfig())

		_, err := svc.VerifyPayment("c1", "admin-1", false, "")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("verify on pending is a policy violation", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		pending := awaitingRecord()
		pending.Status = models.CommissionStatusPending
		repo.On("GetByID", "c1").Return(pending, nil)

		svc := newTestService(t, repo, new(MockTherapistRepo), new(MockStorageService), new(MockSink), testConfig())

		_, err := svc.VerifyPayment("c1", "admin-1", true, "")
		var pv *PolicyViolationError
		require.ErrorAs(t, err, &pv)
	})

	t.Run("account write failure leaves record awaiting verification", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		therapists := new(MockTherapistRepo)

		repo.On("GetByID", "c1").Return(awaitingRecord(), nil)
		therapists.On("UpdateWithDocument", "t1", mock.Anything).Return(errors.New("write failed"))

		svc := newTestService(t, repo, therapists, new(MockStorageService), new(MockSink), testConfig())

		_, err := svc.VerifyPayment("c1", "admin-1", true, "")
		require.Error(t, err)
		repo.AssertNotCalled(t, "UpdateWithDocument", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGating(t *testing.T) {
	t.Run("unpaid statuses are pending and overdue", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		repo.On("ListByTherapistAndStatus", "t1",
			[]string{models.CommissionStatusPending, models.CommissionStatusOverdue}).
			Return([]models.CommissionPayment{{ID: "c1"}}, nil)

		svc := newTestService(t, repo, new(MockTherapistRepo), new(MockStorageService), new(MockSink), testConfig())

		unpaid, err := svc.HasUnpaidCommissions("t1")
		require.NoError(t, err)
		assert.True(t, unpaid)
	})

	t.Run("no open records means no debt", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		repo.On("ListByTherapistAndStatus", "t1", mock.Anything).
			Return([]models.CommissionPayment{}, nil)

		svc := newTestService(t, repo, new(MockTherapistRepo), new(MockStorageService), new(MockSink), testConfig())

		unpaid, err := svc.HasUnpaidCommissions("t1")
		require.NoError(t, err)
		assert.False(t, unpaid)
	})

	t.Run("unpaid amount prefers total due over base amount", func(t *testing.T) {
		repo := new(MockCommissionRepo)
		repo.On("ListByTherapistAndStatus", "t1", mock.Anything).
			Return([]models.CommissionPayment{
				{ID: "c1", CommissionAmount: 75000},
				{ID: "c2", CommissionAmount: 60000, LateFee: 50000, TotalDue: 110000},
			}, nil)

		svc := newTestService(t, repo, new(MockTherapistRepo), new(MockStorageService), new(MockSink), testConfig())

		total, err := svc.GetUnpaidAmount("t1")
		require.NoError(t, err)
		assert.Equal(t, int64(185000), total)
	})
}
