package models

import "time"

// Commission payment lifecycle states.
const (
	CommissionStatusPending              = "pending"
	CommissionStatusAwaitingVerification = "awaiting_verification"
	CommissionStatusVerified             = "verified"
	CommissionStatusRejected             = "rejected"
	CommissionStatusOverdue              = "overdue"
)

// Accepted payment methods for commission settlement.
const (
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCash         = "cash"
	PaymentMethodEWallet      = "e_wallet"
)

// CommissionPayment is the per-booking obligation tracking how much a therapist
// owes the platform and its payment state. Exactly one record exists per booking;
// a rejection re-opens the upload cycle on the same record rather than creating a
// new one, so the collection doubles as an audit trail.
type CommissionPayment struct {
	ID            string `bson:"id" json:"id"`
	BookingID     string `bson:"bookingId" json:"bookingId"`
	TherapistID   string `bson:"therapistId" json:"therapistId"`
	TherapistName string `bson:"therapistName" json:"therapistName"` // display copy, not authoritative

	ServiceAmount    int64 `bson:"serviceAmount" json:"serviceAmount"` // minor currency units
	CommissionRate   int   `bson:"commissionRate" json:"commissionRate"`
	CommissionAmount int64 `bson:"commissionAmount" json:"commissionAmount"`

	BookingDate     time.Time  `bson:"bookingDate" json:"bookingDate"`
	ScheduledDate   *time.Time `bson:"scheduledDate,omitempty" json:"scheduledDate,omitempty"`
	PaymentDeadline time.Time  `bson:"paymentDeadline" json:"paymentDeadline"`

	// Applied by the overdue sweep.
	LateFee  int64 `bson:"lateFee,omitempty" json:"lateFee,omitempty"`
	TotalDue int64 `bson:"totalDue,omitempty" json:"totalDue,omitempty"`

	PaymentProofURL        string     `bson:"paymentProofUrl,omitempty" json:"paymentProofUrl,omitempty"`
	PaymentProofUploadedAt *time.Time `bson:"paymentProofUploadedAt,omitempty" json:"paymentProofUploadedAt,omitempty"`
	PaymentMethod          string     `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`

	VerifiedBy      string     `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
	VerifiedAt      *time.Time `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	RejectionReason string     `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`

	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsValidPaymentMethod reports whether the supplied method is one of the accepted
// settlement channels.
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodEWallet:
		return true
	}
	return false
}
