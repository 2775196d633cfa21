package service

import (
	"math"

	"tvm-engine/domain"
)

// DefaultRateSolverOptions returns the standard Newton-Raphson configuration:
// 1% initial guess, 1e-6 tolerance, 1000 iterations, rate bounded to [0, 1].
func DefaultRateSolverOptions() domain.RateSolverOptions {
	return domain.RateSolverOptions{
		InitialGuess:  DefaultInitialGuess,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		LowerBound:    DefaultRateLower,
		UpperBound:    DefaultRateUpper,
	}
}

// SolveRate finds the periodic rate i satisfying the combined future-value
// equation
//
//	f(i) = pv*(1+i)^n + pmt*((1+i)^n - 1)/i - fv = 0
//
// by Newton-Raphson iteration. f is undefined at i = 0 in this
// parametrization; callers that need the rate-zero case branch on it before
// invoking the solver.
//
// The solver stops hard on a zero derivative, on an iterate leaving the
// configured bounds, and on an exhausted iteration budget; it never clamps or
// retries.
func SolveRate(fv, pv, pmt, periods float64, opts domain.RateSolverOptions) (domain.SolverResult, error) {
	if periods <= 0 {
		return domain.SolverResult{}, &domain.DegenerateInputError{Reason: "periods must be positive"}
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}

	rate := opts.InitialGuess
	delta := math.Inf(1)
	for iter := 0; iter < opts.MaxIterations; iter++ {
		growth := math.Pow(1+rate, periods)
		f := pv*growth + pmt*(growth-1)/rate - fv

		// d/di of the same terms: the lump-sum part by the power rule, the
		// annuity part by the quotient rule.
		df := pv*periods*math.Pow(1+rate, periods-1) +
			pmt*(periods*math.Pow(1+rate, periods-1)*rate-(growth-1))/(rate*rate)

		if df == 0 {
			return domain.SolverResult{}, &domain.SingularDerivativeError{Iteration: iter, Rate: rate}
		}

		next := rate - f/df
		if next < opts.LowerBound || next > opts.UpperBound {
			return domain.SolverResult{}, &domain.OutOfBoundsError{
				Value:     next,
				Iteration: iter,
				Lower:     opts.LowerBound,
				Upper:     opts.UpperBound,
			}
		}

		delta = math.Abs(next - rate)
		if delta < opts.Tolerance {
			return domain.SolverResult{
				Value:         next,
				Iterations:    iter + 1,
				AchievedDelta: delta,
			}, nil
		}
		rate = next
	}

	return domain.SolverResult{}, &domain.NonConvergenceError{
		Iterations: opts.MaxIterations,
		LastDelta:  delta,
	}
}
