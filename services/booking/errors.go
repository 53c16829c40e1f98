package booking

import "fmt"

// BookingError carries a stable code alongside the message.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewTherapistUnavailableError signals that the therapist cannot accept
// bookings, typically because of an unsettled commission.
func NewTherapistUnavailableError(therapistID, reason string) error {
	msg := fmt.Sprintf("therapist %s cannot accept bookings", therapistID)
	if reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, reason)
	}
	return &BookingError{Code: "therapistUnavailable", Message: msg}
}

// NewInvalidStatusError signals an unknown or disallowed booking status value.
func NewInvalidStatusError(status string) error {
	return &BookingError{Code: "invalidStatus", Message: fmt.Sprintf("unsupported booking status %q", status)}
}
