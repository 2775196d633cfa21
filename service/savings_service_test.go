package service

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tvm-engine/domain"
)

func TestPlanSavingsFractions(t *testing.T) {
	svc := NewSavingsService(nil)
	input := domain.SavingsPlanInput{
		MonthlySalary: 3000,
		InflationRate: 0.07,
		ReturnRate:    0.1425,
	}

	rows, err := svc.PlanSavingsFractions(input)
	require.NoError(t, err)
	require.Len(t, rows, 8) // the default 5..40 year horizons

	annualSalary := input.MonthlySalary * 12
	for i, row := range rows {
		assert.Equal(t, (i+1)*5, row.Years)

		t1 := float64(row.Years)
		wantFraction := math.Pow(1+input.InflationRate, t1) / (math.Pow(1+input.ReturnRate, t1) - 1)
		assert.InDelta(t, wantFraction, row.SavingsFraction, 1e-12)
		assert.InDelta(t, wantFraction*annualSalary, row.AnnualContribution, 1e-9)

		// Saving that fraction accumulates exactly the capital whose return
		// replaces the inflation-adjusted salary. The two are the same
		// quantity algebraically; the table must reflect that.
		assert.InDelta(t, row.TargetCapital, row.AccumulatedCapital, 1e-6*row.TargetCapital)
	}

	// Longer horizons need a smaller fraction as long as returns outpace
	// inflation.
	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i].SavingsFraction, rows[i-1].SavingsFraction)
	}
}

func TestPlanSavingsFractions_CustomHorizons(t *testing.T) {
	svc := NewSavingsService(nil)
	rows, err := svc.PlanSavingsFractions(domain.SavingsPlanInput{
		MonthlySalary: 5000,
		InflationRate: 0.04,
		ReturnRate:    0.10,
		Horizons:      []int{10, 20},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 10, rows[0].Years)
	assert.Equal(t, 20, rows[1].Years)
}

func TestPlanSavingsFractions_ZeroReturnIsDegenerate(t *testing.T) {
	svc := NewSavingsService(nil)
	_, err := svc.PlanSavingsFractions(domain.SavingsPlanInput{
		MonthlySalary: 3000,
		InflationRate: 0.07,
		ReturnRate:    0,
	})
	require.Error(t, err)
	var degenerate *domain.DegenerateInputError
	assert.True(t, errors.As(err, &degenerate))
}

func TestSimulateAccumulation(t *testing.T) {
	svc := NewSavingsService(nil)
	input := domain.AccumulationInput{
		Brackets: []domain.SalaryBracket{
			{FromYear: 1, ToYear: 2, MonthlySalary: 1000},
			{FromYear: 3, ToYear: 5, MonthlySalary: 2000},
		},
		SavingsFraction: 0.25,
		Years:           5,
		ReturnRate:      0.10,
		InflationRate:   0.05,
	}

	result, err := svc.SimulateAccumulation(input)
	require.NoError(t, err)

	// End-of-year contributions compound for the years remaining to the
	// horizon.
	want := 0.0
	for year := 1; year <= 5; year++ {
		salary := 1000.0
		if year >= 3 {
			salary = 2000.0
		}
		want += salary * 12 * 0.25 * math.Pow(1.10, float64(5-year))
	}
	assert.InDelta(t, want, result.NominalPatrimony, 1e-9)

	assert.InDelta(t, want*0.10, result.NominalAnnualIncome, 1e-9)
	assert.InDelta(t, result.NominalAnnualIncome/12, result.NominalMonthlyIncome, 1e-9)

	deflator := math.Pow(1.05, 5)
	assert.InDelta(t, result.NominalPatrimony/deflator, result.RealPatrimony, 1e-9)
	assert.InDelta(t, result.NominalAnnualIncome/deflator, result.RealAnnualIncome, 1e-9)
	assert.Less(t, result.RealPatrimony, result.NominalPatrimony)
}

func TestSimulateAccumulation_YearsOutsideBracketsEarnNothing(t *testing.T) {
	svc := NewSavingsService(nil)
	result, err := svc.SimulateAccumulation(domain.AccumulationInput{
		Brackets: []domain.SalaryBracket{
			{FromYear: 1, ToYear: 2, MonthlySalary: 1000},
		},
		SavingsFraction: 0.5,
		Years:           4,
		ReturnRate:      0.10,
		InflationRate:   0.05,
	})
	require.NoError(t, err)

	// Years 3 and 4 have no salary; only the first two contribute.
	want := 1000*12*0.5*math.Pow(1.10, 3) + 1000*12*0.5*math.Pow(1.10, 2)
	assert.InDelta(t, want, result.NominalPatrimony, 1e-9)
}

func TestSimulateAccumulation_Validation(t *testing.T) {
	svc := NewSavingsService(nil)
	var degenerate *domain.DegenerateInputError

	_, err := svc.SimulateAccumulation(domain.AccumulationInput{Years: 0, SavingsFraction: 0.2})
	require.Error(t, err)
	assert.True(t, errors.As(err, &degenerate))

	_, err = svc.SimulateAccumulation(domain.AccumulationInput{Years: 10, SavingsFraction: 0})
	require.Error(t, err)
	assert.True(t, errors.As(err, &degenerate))
}
