package models

import "time"

// Notification types emitted by the commission and deposit lifecycles.
const (
	NotificationTypePaymentVerification = "payment_verification"
	NotificationTypeDepositVerification = "deposit_verification"
	NotificationTypePaymentOverdue      = "payment_overdue"
)

// Notification is a best-effort admin/therapist notification record.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	Type      string         `bson:"type" json:"type"`
	Title     string         `bson:"title" json:"title"`
	Message   string         `bson:"message" json:"message"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}
