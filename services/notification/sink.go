package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "santai/database/repository/notification"
	"santai/models"

	"github.com/google/uuid"
)

// RecordSink persists notifications as documents in the notifications
// collection, where the admin dashboard picks them up.
type RecordSink struct {
	Repo notificationRepo.NotificationRepository
}

func NewRecordSink(repo notificationRepo.NotificationRepository) (*RecordSink, error) {
	if repo == nil {
		return nil, fmt.Errorf("notification sink initialization error: repository is nil")
	}
	return &RecordSink{Repo: repo}, nil
}

func (s *RecordSink) Notify(ctx context.Context, n models.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if err := s.Repo.Create(&n); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}
	return nil
}
