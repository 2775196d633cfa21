package domain

import "fmt"

// InvalidRateError signals a rate at or below -1, for which compound growth
// is undefined.
type InvalidRateError struct {
	Rate float64
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid rate %g: must be greater than -1", e.Rate)
}

// DegenerateInputError signals inputs that are individually valid but make
// the requested formula undefined, e.g. zero periods where the formula
// divides by the period count.
type DegenerateInputError struct {
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return "degenerate input: " + e.Reason
}

// InvalidDomainError signals that the closed-form period solve would take the
// logarithm of a non-positive quantity: the requested FV/PV/PMT/rate
// combination has no real solution. This is a reachable, expected condition.
type InvalidDomainError struct {
	Numerator   float64
	Denominator float64
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("no real solution: log argument %g/%g is not positive", e.Numerator, e.Denominator)
}

// SingularDerivativeError signals a zero derivative at the current
// Newton-Raphson iterate. The update is undefined there, so the solver stops
// instead of dividing by zero.
type SingularDerivativeError struct {
	Iteration int
	Rate      float64
}

func (e *SingularDerivativeError) Error() string {
	return fmt.Sprintf("zero derivative at rate %g (iteration %d)", e.Rate, e.Iteration)
}

// OutOfBoundsError signals a Newton-Raphson iterate leaving the declared
// valid rate interval. Stopping here prevents silent divergence.
type OutOfBoundsError struct {
	Value     float64
	Iteration int
	Lower     float64
	Upper     float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("iterate %g left bounds [%g, %g] at iteration %d", e.Value, e.Lower, e.Upper, e.Iteration)
}

// NonConvergenceError signals an exhausted iteration budget without meeting
// the requested tolerance.
type NonConvergenceError struct {
	Iterations int
	LastDelta  float64
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("did not converge after %d iterations (last delta %g)", e.Iterations, e.LastDelta)
}

// InvalidBracketError signals a bisection bracket that does not straddle the
// target value.
type InvalidBracketError struct {
	Lower  float64
	Upper  float64
	Target float64
}

func (e *InvalidBracketError) Error() string {
	return fmt.Sprintf("bracket [%g, %g] does not straddle target %g", e.Lower, e.Upper, e.Target)
}
