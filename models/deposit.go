package models

import "time"

// Deposit lifecycle states. A deposit gates booking confirmation only, never
// account-wide availability.
const (
	DepositStatusPending  = "pending"
	DepositStatusPaid     = "paid"
	DepositStatusVerified = "verified"
	DepositStatusExpired  = "expired"
)

// DepositRecord tracks the non-refundable pre-payment required to confirm a
// scheduled booking.
type DepositRecord struct {
	ID            string `bson:"id" json:"id"`
	BookingID     string `bson:"bookingId" json:"bookingId"`
	CustomerID    string `bson:"customerId" json:"customerId"`
	CustomerName  string `bson:"customerName" json:"customerName"`
	TherapistID   string `bson:"therapistId" json:"therapistId"`
	TherapistName string `bson:"therapistName" json:"therapistName"`

	TotalPrice      int64 `bson:"totalPrice" json:"totalPrice"` // minor currency units
	DepositAmount   int64 `bson:"depositAmount" json:"depositAmount"`
	RemainingAmount int64 `bson:"remainingAmount" json:"remainingAmount"` // due on completion

	ScheduledDate time.Time `bson:"scheduledDate" json:"scheduledDate"`
	ExpiresAt     time.Time `bson:"expiresAt" json:"expiresAt"`

	PaymentProofURL        string     `bson:"paymentProofUrl,omitempty" json:"paymentProofUrl,omitempty"`
	PaymentProofUploadedAt *time.Time `bson:"paymentProofUploadedAt,omitempty" json:"paymentProofUploadedAt,omitempty"`
	PaymentMethod          string     `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`

	VerifiedBy string     `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
	VerifiedAt *time.Time `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`

	// Always false; deposits are non-refundable.
	IsRefundable bool `bson:"isRefundable" json:"isRefundable"`

	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
