package models

import "time"

// Therapist availability states.
const (
	TherapistStatusAvailable = "available"
	TherapistStatusBusy      = "busy"
)

// Membership tiers. Pro-tier therapists owe commission at booking acceptance
// rather than at completion.
const (
	MembershipTierStandard = "standard"
	MembershipTierPro      = "pro"
)

// Therapist represents a service provider account. The availability block
// (BookingEnabled, ScheduleEnabled, Status, DeactivationReason) is a derived,
// write-through denormalization driven by the commission lifecycle; it must
// only be written through the commission service's gating functions.
type Therapist struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	PhoneNumber string `bson:"phoneNumber" json:"phoneNumber,omitempty"`

	MembershipTier string `bson:"membershipTier" json:"membershipTier"`
	// CommissionRate, when non-zero, overrides the platform default rate for
	// this therapist. Policy is data: new tiers or exceptions are a field
	// value, not a code branch.
	CommissionRate int `bson:"commissionRate,omitempty" json:"commissionRate,omitempty"`

	BookingEnabled     bool   `bson:"bookingEnabled" json:"bookingEnabled"`
	ScheduleEnabled    bool   `bson:"scheduleEnabled" json:"scheduleEnabled"`
	Status             string `bson:"status" json:"status"`
	DeactivationReason string `bson:"deactivationReason,omitempty" json:"deactivationReason,omitempty"`

	PasswordHash string `bson:"passwordHash" json:"-"`
	TokenHash    string `bson:"tokenHash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
