package deposit

import (
	"context"
	"errors"
	"fmt"

	depositRepo "santai/database/repository/deposit"
	"santai/models"
	"santai/services/commission"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CreateDeposit creates the deposit requirement for a scheduled booking. The
// deposit is a fixed percentage of the total price, rounded half up, and is
// never refundable. A second call for the same booking returns the existing
// record.
func (s *DefaultDepositService) CreateDeposit(booking *models.Booking) (*models.DepositRecord, error) {
	if booking == nil || booking.ID == "" {
		return nil, &ValidationError{Message: "booking is required"}
	}
	if booking.BookingType != models.BookingTypeScheduled || booking.ScheduledDate == nil {
		return nil, &ValidationError{Message: fmt.Sprintf("booking %s is not a scheduled booking", booking.ID)}
	}

	depositAmount := commission.Amount(booking.TotalPrice, s.Config.RatePercent)
	now := s.now().UTC()
	record := &models.DepositRecord{
		ID:              uuid.New().String(),
		BookingID:       booking.ID,
		CustomerID:      booking.CustomerID,
		CustomerName:    booking.CustomerName,
		TherapistID:     booking.TherapistID,
		TherapistName:   booking.TherapistName,
		TotalPrice:      booking.TotalPrice,
		DepositAmount:   depositAmount,
		RemainingAmount: booking.TotalPrice - depositAmount,
		ScheduledDate:   booking.ScheduledDate.UTC(),
		ExpiresAt:       now.Add(s.Config.Expiry),
		IsRefundable:    false,
		Status:          models.DepositStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Create(record); err != nil {
		if errors.Is(err, depositRepo.ErrDuplicateBooking) {
			return s.Repo.GetByBookingID(booking.ID)
		}
		return nil, err
	}

	s.logger.Info("deposit requirement created",
		zap.String("depositId", record.ID),
		zap.String("bookingId", booking.ID),
		zap.Int64("depositAmount", depositAmount),
		zap.Time("expiresAt", record.ExpiresAt))

	return record, nil
}

// UploadDepositProof stores the customer's payment proof and flips the deposit
// from pending to paid. A storage or record-write failure leaves the deposit
// unchanged.
func (s *DefaultDepositService) UploadDepositProof(
	ctx context.Context,
	depositID, localFilePath, paymentMethod string,
) (*models.DepositRecord, error) {
	if !models.IsValidPaymentMethod(paymentMethod) {
		return nil, &ValidationError{Message: fmt.Sprintf("unsupported payment method %q", paymentMethod)}
	}
	if s.Config.ProofFolder == "" {
		return nil, &ValidationError{Message: "proof storage folder not configured"}
	}

	record, err := s.Repo.GetByID(depositID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "deposit record", ID: depositID}
		}
		return nil, err
	}
	if record.Status != models.DepositStatusPending {
		return nil, &PolicyViolationError{RecordID: depositID, Status: record.Status, Operation: "upload proof for"}
	}

	publicID, err := s.Storage.UploadFile(ctx, localFilePath, s.Config.ProofFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to store deposit proof: %w", err)
	}
	proofURL, err := s.Storage.GetDownloadURL(ctx, publicID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deposit proof URL: %w", err)
	}

	now := s.now().UTC()
	matched, err := s.Repo.UpdateWithDocument(depositID,
		[]string{models.DepositStatusPending},
		bson.M{"$set": bson.M{
			"paymentProofUrl":        proofURL,
			"paymentProofUploadedAt": now,
			"paymentMethod":          paymentMethod,
			"status":                 models.DepositStatusPaid,
			"updatedAt":              now,
		}})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, &PolicyViolationError{RecordID: depositID, Status: record.Status, Operation: "upload proof for"}
	}

	s.logger.Info("deposit proof uploaded",
		zap.String("depositId", depositID), zap.String("bookingId", record.BookingID))

	s.notifyBestEffort(ctx, models.Notification{
		Type:    models.NotificationTypeDepositVerification,
		Title:   "New Deposit Proof Submitted",
		Message: fmt.Sprintf("%s uploaded a deposit proof for booking %s", record.CustomerName, record.BookingID),
		Data: map[string]any{
			"depositId": depositID,
			"bookingId": record.BookingID,
		},
	})

	return s.Repo.GetByID(depositID)
}

// VerifyDeposit marks a paid deposit verified and confirms the underlying
// booking. The booking confirmation happens first so a failure leaves the
// deposit still paid and the operation retryable.
func (s *DefaultDepositService) VerifyDeposit(depositID, adminID string) (*models.DepositRecord, error) {
	if adminID == "" {
		return nil, &ValidationError{Message: "adminID is required"}
	}

	record, err := s.Repo.GetByID(depositID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "deposit record", ID: depositID}
		}
		return nil, err
	}
	if record.Status != models.DepositStatusPaid {
		return nil, &PolicyViolationError{RecordID: depositID, Status: record.Status, Operation: "verify"}
	}

	now := s.now().UTC()
	if err := s.Bookings.UpdateWithDocument(record.BookingID, bson.M{"$set": bson.M{
		"status":    models.BookingStatusConfirmed,
		"updatedAt": now,
	}}); err != nil {
		return nil, fmt.Errorf("failed to confirm booking %s: %w", record.BookingID, err)
	}

	matched, err := s.Repo.UpdateWithDocument(depositID,
		[]string{models.DepositStatusPaid},
		bson.M{"$set": bson.M{
			"status":     models.DepositStatusVerified,
			"verifiedBy": adminID,
			"verifiedAt": now,
			"updatedAt":  now,
		}})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, &PolicyViolationError{RecordID: depositID, Status: record.Status, Operation: "verify"}
	}

	s.logger.Info("deposit verified, booking confirmed",
		zap.String("depositId", depositID),
		zap.String("bookingId", record.BookingID),
		zap.String("adminId", adminID))

	return s.Repo.GetByID(depositID)
}

// ExpireDeposits sweeps pending deposits past their expiry to expired and
// cancels the associated bookings. Safe to run redundantly.
func (s *DefaultDepositService) ExpireDeposits() error {
	now := s.now().UTC()

	expired, err := s.Repo.ListPendingPastExpiry(now)
	if err != nil {
		return err
	}

	for _, rec := range expired {
		matched, err := s.Repo.UpdateWithDocument(rec.ID,
			[]string{models.DepositStatusPending},
			bson.M{"$set": bson.M{
				"status":    models.DepositStatusExpired,
				"updatedAt": now,
			}})
		if err != nil {
			s.logger.Error("deposit sweep: failed to expire deposit",
				zap.String("depositId", rec.ID), zap.Error(err))
			continue
		}
		if matched == 0 {
			continue
		}

		if err := s.Bookings.UpdateWithDocument(rec.BookingID, bson.M{"$set": bson.M{
			"status":    models.BookingStatusCancelled,
			"updatedAt": now,
		}}); err != nil {
			s.logger.Error("deposit sweep: failed to cancel booking",
				zap.String("bookingId", rec.BookingID), zap.Error(err))
			continue
		}

		s.logger.Warn("deposit expired, booking cancelled",
			zap.String("depositId", rec.ID), zap.String("bookingId", rec.BookingID))
	}
	return nil
}

// GetDepositsAwaitingVerification returns all paid deposits queued for admin review.
func (s *DefaultDepositService) GetDepositsAwaitingVerification() ([]models.DepositRecord, error) {
	return s.Repo.ListByStatus(models.DepositStatusPaid)
}

func (s *DefaultDepositService) notifyBestEffort(ctx context.Context, n models.Notification) {
	if err := s.Notifier.Notify(ctx, n); err != nil {
		s.logger.Warn("notification delivery failed", zap.String("type", n.Type), zap.Error(err))
	}
}
