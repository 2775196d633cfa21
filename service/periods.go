package service

import (
	"math"

	"tvm-engine/domain"
)

// SolvePeriods solves the combined future-value equation for the number of
// periods n given the other four quantities.
//
//	n = ln((fv*r + pmt) / (pv*r + pmt)) / ln(1 + r)
//
// At rate zero the equation degenerates to linear accumulation.
func SolvePeriods(fv, pmt, pv, rate float64) (float64, error) {
	if rate <= -1 {
		return 0, &domain.InvalidRateError{Rate: rate}
	}
	if rate == 0 {
		if pmt == 0 {
			if pv == 0 {
				return 0, &domain.DegenerateInputError{Reason: "present value and payment cannot both be zero"}
			}
			return fv / pv, nil
		}
		return (fv - pv) / pmt, nil
	}
	num := fv*rate + pmt
	den := pv*rate + pmt
	if num <= 0 || den <= 0 {
		// The combination has no real solution; expected for unreachable
		// targets, not a bug.
		return 0, &domain.InvalidDomainError{Numerator: num, Denominator: den}
	}
	return math.Log(num/den) / math.Log(1+rate), nil
}
