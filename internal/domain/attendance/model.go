package attendance

import (
	"errors"
	"time"
)

// ServiceDateLayout is the storage format for service dates.
const ServiceDateLayout = "2006-01-02"

// DisplayDateLayout is the format shown to users (Brazilian convention).
const DisplayDateLayout = "02/01/2006"

// Domain errors
var (
	ErrInvalidDate = errors.New("service date must be a valid YYYY-MM-DD date")
)

// Record holds one presence/absence flag for a member on one service date.
// At most one Record exists per (MemberID, ServiceDate) pair; the storage
// layer enforces this with a uniqueness constraint.
type Record struct {
	ID          string
	MemberID    string
	ServiceDate string // YYYY-MM-DD
	Present     bool
}

// Validate checks if the Record has valid data.
// PRE: Record struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: MemberID must not be empty, ServiceDate must parse
func (r *Record) Validate() error {
	if r.MemberID == "" {
		return errors.New("attendance record must be associated with a member")
	}
	if _, err := time.Parse(ServiceDateLayout, r.ServiceDate); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ParseServiceDate validates a user-supplied date string and returns it
// normalized to the storage layout.
// PRE: value comes straight from user input
// POST: Returns the normalized date or ErrInvalidDate
func ParseServiceDate(value string) (string, error) {
	d, err := time.Parse(ServiceDateLayout, value)
	if err != nil {
		return "", ErrInvalidDate
	}
	return d.Format(ServiceDateLayout), nil
}

// DisplayDate converts a stored YYYY-MM-DD date to the display format.
// Falls back to the raw value if it does not parse.
func DisplayDate(serviceDate string) string {
	d, err := time.Parse(ServiceDateLayout, serviceDate)
	if err != nil {
		return serviceDate
	}
	return d.Format(DisplayDateLayout)
}
