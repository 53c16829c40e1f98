package commission

import (
	"santai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Account gating. The therapist's bookingEnabled flag is a denormalized,
// write-through projection of their unpaid commission records. Every write to
// the availability block goes through deactivateAccount/reactivateAccount so
// the invariant cannot be violated by a forgotten call site.

// unpaidStatuses are the record states that count as an unsettled obligation.
var unpaidStatuses = []string{
	models.CommissionStatusPending,
	models.CommissionStatusOverdue,
}

// HasUnpaidCommissions reports whether the therapist has any pending or
// overdue commission record.
func (s *DefaultCommissionService) HasUnpaidCommissions(therapistID string) (bool, error) {
	records, err := s.Repo.ListByTherapistAndStatus(therapistID, unpaidStatuses)
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

// GetUnpaidAmount returns the total amount due across the therapist's pending
// and overdue records, late fees included.
func (s *DefaultCommissionService) GetUnpaidAmount(therapistID string) (int64, error) {
	records, err := s.Repo.ListByTherapistAndStatus(therapistID, unpaidStatuses)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, rec := range records {
		if rec.TotalDue > 0 {
			total += rec.TotalDue
		} else {
			total += rec.CommissionAmount
		}
	}
	return total, nil
}

// deactivateAccount disables the therapist's booking surface. Failures
// propagate: the availability write is part of the lifecycle transition, not a
// side channel.
func (s *DefaultCommissionService) deactivateAccount(therapistID, reason string) error {
	err := s.Therapists.UpdateWithDocument(therapistID, bson.M{"$set": bson.M{
		"bookingEnabled":     false,
		"scheduleEnabled":    false,
		"status":             models.TherapistStatusBusy,
		"deactivationReason": reason,
		"updatedAt":          s.now().UTC(),
	}})
	if err != nil {
		return err
	}
	s.logger.Info("therapist account deactivated",
		zap.String("therapistId", therapistID), zap.String("reason", reason))
	return nil
}

// reactivateAccount restores the therapist's booking surface.
func (s *DefaultCommissionService) reactivateAccount(therapistID string) error {
	err := s.Therapists.UpdateWithDocument(therapistID, bson.M{
		"$set": bson.M{
			"bookingEnabled":  true,
			"scheduleEnabled": true,
			"status":          models.TherapistStatusAvailable,
			"updatedAt":       s.now().UTC(),
		},
		"$unset": bson.M{"deactivationReason": ""},
	})
	if err != nil {
		return err
	}
	s.logger.Info("therapist account reactivated", zap.String("therapistId", therapistID))
	return nil
}
