package commission

import (
	"context"

	"santai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CheckOverduePayments is the overdue sweep: every pending record whose
// deadline has passed (server clock) goes to overdue with the late fee
// applied, and the therapist is deactivated. The sweep is the sole enforcer of
// the deadline; nothing client-side can shorten or extend it.
//
// Safe to run concurrently or redundantly: the status transition is filtered
// on status==pending, so a record another sweeper already moved is skipped,
// and re-deactivating an already-busy therapist is a no-op write.
func (s *DefaultCommissionService) CheckOverduePayments() error {
	now := s.now().UTC()

	overdue, err := s.Repo.ListPendingPastDeadline(now)
	if err != nil {
		return err
	}
	if len(overdue) == 0 {
		return nil
	}

	for _, rec := range overdue {
		totalDue := rec.CommissionAmount + s.Config.LateFee
		matched, err := s.Repo.UpdateWithDocument(rec.ID,
			[]string{models.CommissionStatusPending},
			bson.M{"$set": bson.M{
				"status":    models.CommissionStatusOverdue,
				"lateFee":   s.Config.LateFee,
				"totalDue":  totalDue,
				"updatedAt": now,
			}})
		if err != nil {
			s.logger.Error("sweep: failed to mark commission overdue",
				zap.String("commissionId", rec.ID), zap.Error(err))
			continue
		}
		if matched == 0 {
			// Another sweeper got here first.
			continue
		}

		if err := s.deactivateAccount(rec.TherapistID, "Payment overdue - upload payment proof to reactivate"); err != nil {
			s.logger.Error("sweep: failed to deactivate therapist",
				zap.String("therapistId", rec.TherapistID),
				zap.String("commissionId", rec.ID), zap.Error(err))
			continue
		}

		s.logger.Warn("commission payment overdue",
			zap.String("commissionId", rec.ID),
			zap.String("therapistId", rec.TherapistID),
			zap.Int64("totalDue", totalDue))

		s.notifyBestEffort(context.Background(), models.Notification{
			Type:    models.NotificationTypePaymentOverdue,
			Title:   "Commission Payment Overdue",
			Message: "A commission payment passed its deadline and the account was deactivated",
			Data: map[string]any{
				"commissionId": rec.ID,
				"therapistId":  rec.TherapistID,
				"totalDue":     totalDue,
			},
		})
	}
	return nil
}
