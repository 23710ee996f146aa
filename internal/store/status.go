package store

import "fmt"

// Status is the lifecycle stage of a package. The set is closed and
// ordered; values are the Hebrew labels shown to the user and stored
// as-is.
type Status string

const (
	StatusReceived  Status = "התקבלה"
	StatusPacking   Status = "נארזת"
	StatusShipped   Status = "נשלחה"
	StatusInTransit Status = "בדרך"
	StatusDelivered Status = "נמסרה"
)

// statusOrder fixes the progression used for ordering and pickers.
var statusOrder = []Status{
	StatusReceived,
	StatusPacking,
	StatusShipped,
	StatusInTransit,
	StatusDelivered,
}

// Statuses returns the five statuses in progression order.
func Statuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// Valid reports whether s is one of the five statuses.
func (s Status) Valid() bool {
	for _, v := range statusOrder {
		if s == v {
			return true
		}
	}
	return false
}

// Order returns the position of s in the progression, or -1 for an
// unknown value.
func (s Status) Order() int {
	for i, v := range statusOrder {
		if s == v {
			return i
		}
	}
	return -1
}

// ParseStatus validates a raw string against the closed set.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}
