package models

import "time"

// Booking lifecycle states.
const (
	BookingStatusPending   = "pending"
	BookingStatusAccepted  = "accepted"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking types.
const (
	BookingTypeImmediate = "immediate"
	BookingTypeScheduled = "scheduled"
)

// Booking represents a massage booking record.
type Booking struct {
	ID            string `bson:"id" json:"id"`
	CustomerID    string `bson:"customerId" json:"customerId"`
	CustomerName  string `bson:"customerName" json:"customerName"`
	TherapistID   string `bson:"therapistId" json:"therapistId"`
	TherapistName string `bson:"therapistName" json:"therapistName"`

	ServiceType string `bson:"serviceType" json:"serviceType"` // e.g. "Balinese Massage"
	Duration    int    `bson:"duration" json:"duration"`       // minutes
	TotalPrice  int64  `bson:"totalPrice" json:"totalPrice"`   // minor currency units
	Location    string `bson:"location,omitempty" json:"location,omitempty"`

	BookingType   string     `bson:"bookingType" json:"bookingType"`
	ScheduledDate *time.Time `bson:"scheduledDate,omitempty" json:"scheduledDate,omitempty"`

	Status      string     `bson:"status" json:"status"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}
