package client

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
	StatusInactive Status = "inactive"
)

// Window constants are fixed policy: memberships count as expiring within 10
// days of the end date and as expired for 30 days past it.
const (
	ExpiringWindowDays = 10
	ExpiredWindowDays  = 30
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusActive, StatusExpiring, StatusExpired:
		return Status(s), true
	}
	return "", false
}

// StatusOf classifies a membership by its end date. Dates are compared at
// day granularity; the time-of-day components are ignored.
func StatusOf(endDate, today time.Time) Status {
	end := dateOnly(endDate)
	now := dateOnly(today)

	switch {
	case !end.Before(now) && !end.After(now.AddDate(0, 0, ExpiringWindowDays)):
		return StatusExpiring
	case !end.Before(now):
		return StatusActive
	case !end.Before(now.AddDate(0, 0, -ExpiredWindowDays)):
		return StatusExpired
	default:
		return StatusInactive
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
