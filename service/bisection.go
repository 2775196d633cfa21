package service

import "tvm-engine/domain"

// SolveByBisection finds the input at which a monotonically non-decreasing
// function reaches target, by fixed-count interval halving over
// [lower, upper]. The caller guarantees monotonicity; the bracket is verified
// once, up front, by evaluating both bounds.
//
// A fixed iteration count stands in for a tolerance check: the answer is
// within (upper-lower)/2^iterations of the true root. Slower than
// Newton-Raphson, but convergence is guaranteed for any valid bracket and no
// derivative is needed.
func SolveByBisection(evaluate func(float64) float64, target, lower, upper float64, iterations int) (float64, error) {
	if lower >= upper || evaluate(lower) > target || evaluate(upper) < target {
		return 0, &domain.InvalidBracketError{Lower: lower, Upper: upper, Target: target}
	}
	if iterations <= 0 {
		iterations = DefaultBisectionIterations
	}
	for i := 0; i < iterations; i++ {
		mid := (lower + upper) / 2
		if evaluate(mid) >= target {
			upper = mid
		} else {
			lower = mid
		}
	}
	return (lower + upper) / 2, nil
}
