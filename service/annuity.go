package service

import (
	"math"

	"tvm-engine/domain"
)

// Closed-form ordinary annuity formulas, optionally combined with a lump-sum
// principal. All of them branch explicitly on rate == 0: the limit of the
// closed form as the rate approaches zero is pmt*n, and it must be computed
// that way rather than approximated through a near-zero division.

func checkRateAndPeriods(rate, periods float64) error {
	if rate <= -1 {
		return &domain.InvalidRateError{Rate: rate}
	}
	if periods <= 0 {
		return &domain.DegenerateInputError{Reason: "periods must be positive"}
	}
	return nil
}

// PresentValue discounts a series of equal payments to today.
// PV = PMT * (1 - (1+r)^-n) / r, or PMT*n at rate zero.
func PresentValue(pmt, rate, periods float64) (float64, error) {
	if err := checkRateAndPeriods(rate, periods); err != nil {
		return 0, err
	}
	if rate == 0 {
		return pmt * periods, nil
	}
	return pmt * (1 - math.Pow(1+rate, -periods)) / rate, nil
}

// Payment amortizes a principal into equal installments.
// PMT = PV * r * (1+r)^n / ((1+r)^n - 1), or PV/n at rate zero.
func Payment(pv, rate, periods float64) (float64, error) {
	if err := checkRateAndPeriods(rate, periods); err != nil {
		return 0, err
	}
	if rate == 0 {
		return pv / periods, nil
	}
	growth := math.Pow(1+rate, periods)
	denom := growth - 1
	if denom == 0 {
		return 0, &domain.DegenerateInputError{Reason: "amortization denominator is zero"}
	}
	return pv * rate * growth / denom, nil
}

// FutureValueLumpSum compounds a single principal: FV = PV * (1+r)^n.
func FutureValueLumpSum(pv, rate, periods float64) (float64, error) {
	if err := checkRateAndPeriods(rate, periods); err != nil {
		return 0, err
	}
	return pv * math.Pow(1+rate, periods), nil
}

// FutureValueAnnuity compounds a series of equal payments.
// FV = PMT * ((1+r)^n - 1) / r, or PMT*n at rate zero.
func FutureValueAnnuity(pmt, rate, periods float64) (float64, error) {
	if err := checkRateAndPeriods(rate, periods); err != nil {
		return 0, err
	}
	if rate == 0 {
		return pmt * periods, nil
	}
	return pmt * (math.Pow(1+rate, periods) - 1) / rate, nil
}

// FutureValueCombined is the general form: a compounded principal plus a
// compounded payment series. The lump-sum-only and annuity-only variants are
// this with pmt=0 or pv=0.
func FutureValueCombined(pv, pmt, rate, periods float64) (float64, error) {
	fvPV, err := FutureValueLumpSum(pv, rate, periods)
	if err != nil {
		return 0, err
	}
	fvPMT, err := FutureValueAnnuity(pmt, rate, periods)
	if err != nil {
		return 0, err
	}
	return fvPV + fvPMT, nil
}

// PaymentForFutureValue sizes the periodic payment needed to grow an initial
// principal to a target future value.
func PaymentForFutureValue(fv, pv, rate, periods float64) (float64, error) {
	if err := checkRateAndPeriods(rate, periods); err != nil {
		return 0, err
	}
	if rate == 0 {
		return (fv - pv) / periods, nil
	}
	denom := (math.Pow(1+rate, periods) - 1) / rate
	if denom == 0 {
		return 0, &domain.DegenerateInputError{Reason: "annuity factor is zero"}
	}
	return (fv - pv*math.Pow(1+rate, periods)) / denom, nil
}

// Earnings is the accumulated return: the future value minus everything that
// was paid in (pv plus pmt per period).
func Earnings(fv, pv, pmt, periods float64) float64 {
	return fv - (pv + pmt*periods)
}
