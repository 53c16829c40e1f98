package deposit

import (
	"context"
	"fmt"
	"time"

	"santai/config"
	bookingRepo "santai/database/repository/booking"
	depositRepo "santai/database/repository/deposit"
	"santai/models"
	"santai/services/notification"
	"santai/services/storage"

	"go.uber.org/zap"
)

// DepositService drives the non-refundable deposit required to confirm a
// scheduled booking. Unlike commission records, a deposit gates a single
// booking's confirmation, never account-wide availability.
type DepositService interface {
	// CreateDeposit creates the deposit requirement for a scheduled booking.
	// Idempotent per booking.
	CreateDeposit(booking *models.Booking) (*models.DepositRecord, error)
	// UploadDepositProof stores the customer's payment proof and marks the
	// deposit paid.
	UploadDepositProof(ctx context.Context, depositID, localFilePath, paymentMethod string) (*models.DepositRecord, error)
	// VerifyDeposit confirms the underlying booking once an admin has checked
	// the payment.
	VerifyDeposit(depositID, adminID string) (*models.DepositRecord, error)
	// ExpireDeposits sweeps pending deposits past their expiry and cancels the
	// associated bookings.
	ExpireDeposits() error

	GetDepositsAwaitingVerification() ([]models.DepositRecord, error)
}

// DefaultDepositService is the production implementation.
type DefaultDepositService struct {
	Repo     depositRepo.DepositRepository
	Bookings bookingRepo.BookingRepository
	Storage  storage.StorageService
	Notifier notification.Sink
	Config   config.DepositConfig

	logger *zap.Logger
	now    func() time.Time
}

// NewDepositService wires a DefaultDepositService. The notifier may be nil.
func NewDepositService(
	repo depositRepo.DepositRepository,
	bookings bookingRepo.BookingRepository,
	storageSvc storage.StorageService,
	notifier notification.Sink,
	cfg config.DepositConfig,
	logger *zap.Logger,
) (*DefaultDepositService, error) {
	if repo == nil || bookings == nil || storageSvc == nil || logger == nil {
		return nil, fmt.Errorf("deposit service initialization error: one or more dependencies are nil")
	}
	if cfg.RatePercent <= 0 || cfg.RatePercent > 100 {
		return nil, fmt.Errorf("deposit service initialization error: invalid rate %d", cfg.RatePercent)
	}
	if cfg.Expiry <= 0 {
		return nil, fmt.Errorf("deposit service initialization error: invalid expiry")
	}
	if notifier == nil {
		notifier = notification.NoopSink{}
	}
	return &DefaultDepositService{
		Repo:     repo,
		Bookings: bookings,
		Storage:  storageSvc,
		Notifier: notifier,
		Config:   cfg,
		logger:   logger,
		now:      time.Now,
	}, nil
}
