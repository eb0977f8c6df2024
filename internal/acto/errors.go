package acto

import (
	"errors"
	"fmt"
)

// Domain errors for solver operations.
var (
	// ErrUnstableParams indicates the derived time step fell below the
	// numerical floor before any stepping occurred.
	ErrUnstableParams = errors.New("acto: time step too small (unstable parameter combination)")

	// ErrLinearSolve indicates the per-step velocity system was singular
	// or ill-conditioned beyond solver tolerance.
	ErrLinearSolve = errors.New("acto: velocity system solve failed")

	// ErrGridSize indicates N is too small for the boundary stencils.
	ErrGridSize = errors.New("acto: grid size must be at least 3")

	// ErrInvalidState indicates NaN or Inf appeared in a field.
	ErrInvalidState = errors.New("acto: invalid state (NaN or Inf detected)")
)

// StepError wraps a failure with the step and time at which it occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.6f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
