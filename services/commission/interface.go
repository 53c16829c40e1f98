package commission

import (
	"context"
	"fmt"
	"time"

	"santai/config"
	commissionRepo "santai/database/repository/commission"
	therapistRepo "santai/database/repository/therapist"
	"santai/models"
	"santai/services/notification"
	"santai/services/storage"

	"go.uber.org/zap"
)

// CommissionService drives the commission payment lifecycle: record creation
// after a booking, proof uploads, admin verification, the overdue sweep, and
// the therapist account gating derived from it.
type CommissionService interface {
	// CreateCommissionRecord creates the commission obligation for a booking.
	// Idempotent per bookingID: a second call returns the existing record.
	CreateCommissionRecord(therapistID, therapistName, bookingID string, bookingDate time.Time, scheduledDate *time.Time, serviceAmount int64) (*models.CommissionPayment, error)
	// UploadPaymentProof stores a proof-of-payment file and moves the record to
	// awaiting verification, reactivating the therapist immediately.
	UploadPaymentProof(ctx context.Context, commissionID, localFilePath, paymentMethod string) (*models.CommissionPayment, error)
	// VerifyPayment approves or rejects an awaiting-verification record.
	VerifyPayment(commissionID, adminID string, approved bool, rejectionReason string) (*models.CommissionPayment, error)
	// CheckOverduePayments sweeps pending records past their deadline to overdue
	// and deactivates the affected therapists. Safe to call concurrently.
	CheckOverduePayments() error

	GetTherapistPendingPayments(therapistID string) ([]models.CommissionPayment, error)
	GetPaymentsAwaitingVerification() ([]models.CommissionPayment, error)
	GetPaymentHistory(therapistID string, limit int64) ([]models.CommissionPayment, error)
	HasUnpaidCommissions(therapistID string) (bool, error)
	GetUnpaidAmount(therapistID string) (int64, error)
}

// DefaultCommissionService is the production implementation.
type DefaultCommissionService struct {
	Repo       commissionRepo.CommissionRepository
	Therapists therapistRepo.TherapistRepository
	Storage    storage.StorageService
	Notifier   notification.Sink
	Config     config.CommissionConfig

	logger *zap.Logger
	now    func() time.Time
}

// NewCommissionService wires a DefaultCommissionService. The notifier may be
// nil, in which case notifications are dropped.
func NewCommissionService(
	repo commissionRepo.CommissionRepository,
	therapists therapistRepo.TherapistRepository,
	storageSvc storage.StorageService,
	notifier notification.Sink,
	cfg config.CommissionConfig,
	logger *zap.Logger,
) (*DefaultCommissionService, error) {
	if repo == nil || therapists == nil || storageSvc == nil || logger == nil {
		return nil, fmt.Errorf("commission service initialization error: one or more dependencies are nil")
	}
	if cfg.RatePercent <= 0 || cfg.RatePercent > 100 {
		return nil, fmt.Errorf("commission service initialization error: invalid rate %d", cfg.RatePercent)
	}
	if cfg.PaymentDeadlineOffset <= 0 {
		return nil, fmt.Errorf("commission service initialization error: invalid payment deadline offset")
	}
	if notifier == nil {
		notifier = notification.NoopSink{}
	}
	return &DefaultCommissionService{
		Repo:       repo,
		Therapists: therapists,
		Storage:    storageSvc,
		Notifier:   notifier,
		Config:     cfg,
		logger:     logger,
		now:        time.Now,
	}, nil
}
