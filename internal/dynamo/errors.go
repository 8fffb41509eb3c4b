package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidParameter indicates a step size or horizon the loop bound cannot be derived from.
	ErrInvalidParameter = errors.New("dynamo: invalid parameter")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")

	// ErrNonFinite indicates a state component became NaN or infinite.
	ErrNonFinite = errors.New("dynamo: state is not finite")

	// ErrUnknownParameter indicates a SetParam call naming a parameter the system does not have.
	ErrUnknownParameter = errors.New("dynamo: unknown parameter")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%g): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
