package commission

import "time"

// Amount computes the commission owed on a service amount at the given
// percentage rate, in minor currency units, rounding half up. Integer
// arithmetic only: 100001 at 30% is 30000 (30000.3 rounds down), 250000 at
// 30% is exactly 75000.
func Amount(serviceAmount int64, ratePercent int) int64 {
	return (serviceAmount*int64(ratePercent) + 50) / 100
}

// Deadline computes the payment deadline from the booking date, normalized to
// UTC. The booking date must come from the server clock, never from a
// client-supplied timestamp.
func Deadline(bookingDate time.Time, offset time.Duration) time.Time {
	return bookingDate.UTC().Add(offset)
}
