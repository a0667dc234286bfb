package resource

import "time"

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04"
)

// Anytime is the time unit of bookings against a resource that declares none.
const Anytime = ""

// ParseTimeUnit accepts a calendar date or a date with minute precision.
// The canonical string form is returned unchanged so it can be used as a key.
func ParseTimeUnit(s string) (string, error) {
	if _, err := time.Parse(dateLayout, s); err == nil {
		return s, nil
	}
	if _, err := time.Parse(dateTimeLayout, s); err == nil {
		return s, nil
	}
	return "", ErrMalformedTimeUnit
}
