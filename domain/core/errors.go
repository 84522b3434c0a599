package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input contract violations - fail fast, nothing is computed
	ErrInvalidInput = errors.New("invalid input")

	ErrDomainMismatch  = fmt.Errorf("%w: distribution domain mismatch", ErrInvalidInput)
	ErrNegativeMass    = fmt.Errorf("%w: negative probability", ErrInvalidInput)
	ErrMassNotUnit     = fmt.Errorf("%w: probabilities do not sum to 1", ErrInvalidInput)
	ErrBadOutcomeCount = fmt.Errorf("%w: outcome space size", ErrInvalidInput)

	// Selection errors
	ErrInvalidBudget = errors.New("invalid size budget")
)

// Error constructors with context
func NewInvalidInputError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidInput, field, reason)
}

func NewInvalidBudgetError(maxSize float64) error {
	return fmt.Errorf("%w: maxSize %v is negative", ErrInvalidBudget, maxSize)
}

// Error checking helpers
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsInvalidBudgetError(err error) bool {
	return errors.Is(err, ErrInvalidBudget)
}
