package ranking

import "time"

// Clock provides the submission timestamp
type Clock interface {
	Now() time.Time
}

// RealClock uses the actual system time in UTC
type RealClock struct{}

// Now returns the current UTC time
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}
