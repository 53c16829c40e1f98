package commission

import (
	"context"
	"errors"
	"fmt"
	"time"

	commissionRepo "santai/database/repository/commission"
	"santai/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CreateCommissionRecord creates the commission obligation for a completed (or
// accepted, for Pro tier) booking. The commission rate is the therapist's
// per-account override when set, otherwise the configured default. Creation is
// idempotent on bookingID: the unique index turns a duplicate insert into a
// fetch of the existing record. No timer is armed here; deadline enforcement
// belongs exclusively to the sweep.
func (s *DefaultCommissionService) CreateCommissionRecord(
	therapistID, therapistName, bookingID string,
	bookingDate time.Time,
	scheduledDate *time.Time,
	serviceAmount int64,
) (*models.CommissionPayment, error) {
	if therapistID == "" || bookingID == "" {
		return nil, &ValidationError{Message: "therapistID and bookingID are required"}
	}
	if serviceAmount < 0 {
		return nil, &ValidationError{Message: fmt.Sprintf("negative service amount %d", serviceAmount)}
	}

	therapist, err := s.Therapists.GetByID(therapistID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "therapist", ID: therapistID}
		}
		return nil, err
	}

	rate := s.Config.RatePercent
	if therapist.CommissionRate > 0 {
		rate = therapist.CommissionRate
	}

	now := s.now().UTC()
	record := &models.CommissionPayment{
		ID:               uuid.New().String(),
		BookingID:        bookingID,
		TherapistID:      therapistID,
		TherapistName:    therapistName,
		ServiceAmount:    serviceAmount,
		CommissionRate:   rate,
		CommissionAmount: Amount(serviceAmount, rate),
		BookingDate:      bookingDate.UTC(),
		ScheduledDate:    scheduledDate,
		PaymentDeadline:  Deadline(bookingDate, s.Config.PaymentDeadlineOffset),
		Status:           models.CommissionStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.Repo.Create(record); err != nil {
		if errors.Is(err, commissionRepo.ErrDuplicateBooking) {
			existing, getErr := s.Repo.GetByBookingID(bookingID)
			if getErr != nil {
				return nil, fmt.Errorf("commission record for booking %s exists but could not be fetched: %w", bookingID, getErr)
			}
			s.logger.Debug("commission record already exists for booking",
				zap.String("bookingId", bookingID), zap.String("commissionId", existing.ID))
			return existing, nil
		}
		return nil, err
	}

	s.logger.Info("commission record created",
		zap.String("commissionId", record.ID),
		zap.String("bookingId", bookingID),
		zap.String("therapistId", therapistID),
		zap.Int64("commissionAmount", record.CommissionAmount),
		zap.Time("paymentDeadline", record.PaymentDeadline))

	// Under the strict policy a pending obligation already blocks new bookings.
	if s.Config.PendingBlocksBooking {
		if err := s.deactivateAccount(therapistID, "Commission payment pending - settle to accept new bookings"); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// UploadPaymentProof stores the proof file, flips the record to awaiting
// verification and reactivates the therapist immediately. Reactivation on
// upload rather than on verification keeps the account usable during admin
// review latency; a rejection reverses it. The record write is constrained to
// the allowed source statuses, so a concurrent upload or verification cannot
// produce a ghost transition.
func (s *DefaultCommissionService) UploadPaymentProof(
	ctx context.Context,
	commissionID, localFilePath, paymentMethod string,
) (*models.CommissionPayment, error) {
	if !models.IsValidPaymentMethod(paymentMethod) {
		return nil, &ValidationError{Message: fmt.Sprintf("unsupported payment method %q", paymentMethod)}
	}
	if s.Config.ProofFolder == "" {
		return nil, &ValidationError{Message: "proof storage folder not configured"}
	}

	record, err := s.Repo.GetByID(commissionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "commission record", ID: commissionID}
		}
		return nil, err
	}

	switch record.Status {
	case models.CommissionStatusPending, models.CommissionStatusOverdue, models.CommissionStatusRejected:
		// upload allowed
	default:
		return nil, &PolicyViolationError{RecordID: commissionID, Status: record.Status, Operation: "upload proof for"}
	}

	publicID, err := s.Storage.UploadFile(ctx, localFilePath, s.Config.ProofFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to store payment proof: %w", err)
	}
	proofURL, err := s.Storage.GetDownloadURL(ctx, publicID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve payment proof URL: %w", err)
	}

	now := s.now().UTC()
	matched, err := s.Repo.UpdateWithDocument(commissionID,
		[]string{models.CommissionStatusPending, models.CommissionStatusOverdue, models.CommissionStatusRejected},
		bson.M{"$set": bson.M{
			"paymentProofUrl":        proofURL,
			"paymentProofUploadedAt": now,
			"paymentMethod":          paymentMethod,
			"status":                 models.CommissionStatusAwaitingVerification,
			"updatedAt":              now,
		}})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, &PolicyViolationError{RecordID: commissionID, Status: record.Status, Operation: "upload proof for"}
	}

	// Optimistic reactivation: account usability is restored on submission,
	// not on verification.
	if err := s.reactivateAccount(record.TherapistID); err != nil {
		return nil, err
	}

	s.logger.Info("payment proof uploaded",
		zap.String("commissionId", commissionID),
		zap.String("therapistId", record.TherapistID),
		zap.String("paymentMethod", paymentMethod))

	s.notifyBestEffort(ctx, models.Notification{
		Type:    models.NotificationTypePaymentVerification,
		Title:   "New Payment Proof Submitted",
		Message: fmt.Sprintf("%s uploaded payment proof for commission %s", record.TherapistName, commissionID),
		Data: map[string]any{
			"commissionId": commissionID,
			"therapistId":  record.TherapistID,
		},
	})

	return s.Repo.GetByID(commissionID)
}

// VerifyPayment approves or rejects an awaiting-verification record. The
// account write happens before the record write: if the record update then
// fails, the record is still awaiting verification and the whole operation can
// be retried, so no state is reachable where the record is verified but the
// account disagrees.
func (s *DefaultCommissionService) VerifyPayment(
	commissionID, adminID string,
	approved bool,
	rejectionReason string,
) (*models.CommissionPayment, error) {
	if adminID == "" {
		return nil, &ValidationError{Message: "adminID is required"}
	}
	if !approved && rejectionReason == "" {
		return nil, &ValidationError{Message: "rejection requires a reason"}
	}

	record, err := s.Repo.GetByID(commissionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "commission record", ID: commissionID}
		}
		return nil, err
	}
	if record.Status != models.CommissionStatusAwaitingVerification {
		return nil, &PolicyViolationError{RecordID: commissionID, Status: record.Status, Operation: "verify"}
	}

	if approved {
		if err := s.reactivateAccount(record.TherapistID); err != nil {
			return nil, err
		}
	} else {
		if err := s.deactivateAccount(record.TherapistID, "Payment proof rejected - upload new proof to reactivate"); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	status := models.CommissionStatusVerified
	update := bson.M{
		"status":     status,
		"verifiedBy": adminID,
		"verifiedAt": now,
		"updatedAt":  now,
	}
	if !approved {
		status = models.CommissionStatusRejected
		update["status"] = status
		update["rejectionReason"] = rejectionReason
	}

	matched, err := s.Repo.UpdateWithDocument(commissionID,
		[]string{models.CommissionStatusAwaitingVerification},
		bson.M{"$set": update})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, &PolicyViolationError{RecordID: commissionID, Status: record.Status, Operation: "verify"}
	}

	s.logger.Info("payment verification recorded",
		zap.String("commissionId", commissionID),
		zap.String("adminId", adminID),
		zap.Bool("approved", approved))

	return s.Repo.GetByID(commissionID)
}

// GetTherapistPendingPayments returns the therapist's open obligations:
// pending, overdue, and awaiting verification.
func (s *DefaultCommissionService) GetTherapistPendingPayments(therapistID string) ([]models.CommissionPayment, error) {
	return s.Repo.ListByTherapistAndStatus(therapistID, []string{
		models.CommissionStatusPending,
		models.CommissionStatusOverdue,
		models.CommissionStatusAwaitingVerification,
	})
}

// GetPaymentsAwaitingVerification returns all records queued for admin review.
func (s *DefaultCommissionService) GetPaymentsAwaitingVerification() ([]models.CommissionPayment, error) {
	return s.Repo.ListByStatus(models.CommissionStatusAwaitingVerification)
}

// GetPaymentHistory returns the therapist's records, newest first.
func (s *DefaultCommissionService) GetPaymentHistory(therapistID string, limit int64) ([]models.CommissionPayment, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.Repo.ListHistory(therapistID, limit)
}

// notifyBestEffort delivers a notification without letting a failure escape:
// side channels never risk the correctness of the state machine.
func (s *DefaultCommissionService) notifyBestEffort(ctx context.Context, n models.Notification) {
	if err := s.Notifier.Notify(ctx, n); err != nil {
		s.logger.Warn("notification delivery failed", zap.String("type", n.Type), zap.Error(err))
	}
}
