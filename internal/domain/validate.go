package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Field constraints mirror the check constraints in the schema so that a
// payload can be rejected locally, before any database round-trip.
var (
	AccountNamePattern  = regexp.MustCompile(`^[a-z-]*_[a-z]*$`)
	CategoryNamePattern = regexp.MustCompile(`^[a-z0-9_-]*$`)
	UsernamePattern     = regexp.MustCompile(`^[a-z0-9_.@-]*$`)
)

const (
	AccountNameMinLen  = 3
	AccountNameMaxLen  = 40
	CategoryNameMinLen = 1
	CategoryNameMaxLen = 50
	DescriptionMaxLen  = 75
	NotesMaxLen        = 100
	MonikerLen         = 4
)

func requireLowercase(field, value string) error {
	if value != strings.ToLower(value) {
		return validationErr(field, "must be lowercase")
	}
	return nil
}

func requireLength(field, value string, min, max int) error {
	if len(value) < min || len(value) > max {
		return validationErr(field, fmt.Sprintf("length must be in [%d,%d], got %d", min, max, len(value)))
	}
	return nil
}

func requirePattern(field, value string, pattern *regexp.Regexp) error {
	if !pattern.MatchString(value) {
		return validationErr(field, fmt.Sprintf("must match %s", pattern.String()))
	}
	return nil
}

func requireGUID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return validationErr(field, "must be a valid UUID")
	}
	return nil
}

// requireMoney enforces numeric(precision,2) semantics: at most two decimal
// digits, and an integer part that fits the declared precision. Trailing
// zeros are fine ("10.500" is exactly 10.50), so the check compares against
// the rounded value rather than the literal exponent.
func requireMoney(field string, amount decimal.Decimal, precision int) error {
	if !amount.Equal(amount.Round(2)) {
		return validationErr(field, "at most 2 decimal digits allowed")
	}
	limit := decimal.New(1, int32(precision-2))
	if amount.Abs().GreaterThanOrEqual(limit) {
		return validationErr(field, fmt.Sprintf("exceeds numeric(%d,2) precision", precision))
	}
	return nil
}

func requireNonNegative(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return validationErr(field, "must not be negative")
	}
	return nil
}
