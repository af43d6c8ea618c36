package member

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 150
)

// Domain errors
var (
	ErrEmptyName = errors.New("member name cannot be empty")
	ErrNotFound  = errors.New("member not found")
)

// Member holds state for a tracked youth-group participant.
// Name is the only required field; the contact fields are free text
// filled in as far as the person registering knows them.
type Member struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	BirthDate string
}

// Validate checks if the Member has valid data.
// PRE: Member struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Name must not be empty; all other fields are optional
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if len(m.Name) > MaxNameLength {
		return errors.New("member name cannot exceed 150 characters")
	}
	return nil
}
