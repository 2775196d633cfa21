package service

import (
	"math"

	"tvm-engine/domain"
)

// PeriodicToAnnualized converts a periodic rate to its annualized equivalent
// (TAE): (1+r)^p - 1 for p compounding periods per year.
func PeriodicToAnnualized(periodic float64, periodsPerYear int) (float64, error) {
	if periodic <= -1 {
		return 0, &domain.InvalidRateError{Rate: periodic}
	}
	return math.Pow(1+periodic, float64(periodsPerYear)) - 1, nil
}

// AnnualizedToPeriodic is the inverse: (1+a)^(1/p) - 1.
func AnnualizedToPeriodic(annual float64, periodsPerYear int) (float64, error) {
	if annual <= -1 {
		return 0, &domain.InvalidRateError{Rate: annual}
	}
	return math.Pow(1+annual, 1/float64(periodsPerYear)) - 1, nil
}

// PeriodicTerms converts an annual nominal rate and a horizon in years into
// the periodic rate and period count the annuity formulas expect, under the
// nominal-division convention (annual rate divided by periods per year).
func PeriodicTerms(annualRate, years float64, c domain.Compounding) (rate float64, periods float64, err error) {
	perYear, ok := c.PeriodsPerYear()
	if !ok {
		return 0, 0, &domain.DegenerateInputError{Reason: "unknown compounding frequency " + string(c)}
	}
	if annualRate <= -1 {
		return 0, 0, &domain.InvalidRateError{Rate: annualRate}
	}
	return annualRate / float64(perYear), math.Trunc(years * float64(perYear)), nil
}

// RateFromYield derives the periodic rate implied by a realized total yield
// on a principal over a number of periods: ((P+yield)/P)^(1/n) - 1.
func RateFromYield(principal, totalYield, periods float64) (float64, error) {
	if principal == 0 {
		return 0, &domain.DegenerateInputError{Reason: "principal cannot be zero"}
	}
	if periods <= 0 {
		return 0, &domain.DegenerateInputError{Reason: "periods must be positive"}
	}
	return math.Pow((principal+totalYield)/principal, 1/periods) - 1, nil
}
