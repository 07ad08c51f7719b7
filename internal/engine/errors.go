package engine

import (
	"errors"
	"fmt"
)

// ErrEMITooSmall reports an EMI that does not cover a month's interest; the
// balance would never amortize. Deterministic, so never retried.
var ErrEMITooSmall = errors.New("emi does not cover monthly interest")

// ValidationError describes a rejected input field. It surfaces to callers as
// a client error rather than a computation failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
