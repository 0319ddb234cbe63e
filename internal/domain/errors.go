package domain

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a unique constraint rejects a write.
	ErrConflict = errors.New("duplicate record")

	// ErrForeignKey is returned when a write references a nonexistent parent row.
	ErrForeignKey = errors.New("referenced record does not exist")

	// ErrCheckViolation is returned when a database check constraint rejects a write.
	ErrCheckViolation = errors.New("check constraint violated")
)

// ValidationError reports a field that failed local constraint validation
// before any database round-trip.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Field + ": " + e.Rule
}

func validationErr(field, rule string) error {
	return &ValidationError{Field: field, Rule: rule}
}
