package notificationRepo

import "santai/models"

// NotificationRepository defines methods for notification record persistence.
type NotificationRepository interface {
	// Create inserts a new notification record.
	Create(notification *models.Notification) error
}
