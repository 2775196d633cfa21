package service

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tvm-engine/domain"
)

func TestComparePayoff(t *testing.T) {
	svc := NewPayoffService(nil)
	input := domain.PayoffInput{
		SavedAmount:     10000,
		SavedRate:       0.005,
		LoanAmount:      2471,
		LoanRate:        0.03,
		Periods:         4,
		MonthlyDiscount: 50,
	}

	result, err := svc.ComparePayoff(input)
	require.NoError(t, err)

	wantInstallment, err := Payment(input.LoanAmount, input.LoanRate, input.Periods)
	require.NoError(t, err)
	assert.InDelta(t, wantInstallment, result.Normal.Installment, 1e-9)
	assert.InDelta(t, wantInstallment-50, result.Early.Installment, 1e-9)

	assert.InDelta(t, wantInstallment*4, result.Normal.TotalPaid, 1e-9)
	assert.InDelta(t, 50*4, result.LoanSavings, 1e-9)

	// The saved principal funds the discount up front, so it compounds from
	// a reduced base.
	growth := math.Pow(1.005, 4)
	assert.InDelta(t, 10000*growth, result.Normal.FinalSavings, 1e-9)
	assert.InDelta(t, (10000-50*4)*growth, result.Early.FinalSavings, 1e-9)
	assert.Less(t, result.ExtraYield, 0.0)
	assert.True(t, result.EarlyPayoffWins)
}

func TestComparePayoff_DiscountClampsToZero(t *testing.T) {
	svc := NewPayoffService(nil)
	input := domain.PayoffInput{
		SavedAmount:     50000,
		SavedRate:       0.005,
		LoanAmount:      2471,
		LoanRate:        0.03,
		Periods:         4,
		MonthlyDiscount: 5000, // larger than the installment
	}

	result, err := svc.ComparePayoff(input)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Early.Installment)
	assert.Equal(t, 0.0, result.Early.TotalPaid)
}

func TestComparePayoff_ZeroDiscountChangesNothing(t *testing.T) {
	svc := NewPayoffService(nil)
	input := domain.PayoffInput{
		SavedAmount: 100000,
		SavedRate:   0.02,
		LoanAmount:  10000,
		LoanRate:    0.01,
		Periods:     24,
	}

	result, err := svc.ComparePayoff(input)
	require.NoError(t, err)
	assert.Equal(t, result.Normal, result.Early)
	assert.Equal(t, 0.0, result.LoanSavings)
	assert.Equal(t, 0.0, result.ExtraYield)
	assert.False(t, result.EarlyPayoffWins)
}

func TestComparePayoff_NegativeDiscount(t *testing.T) {
	svc := NewPayoffService(nil)
	_, err := svc.ComparePayoff(domain.PayoffInput{
		LoanAmount: 1000, LoanRate: 0.01, Periods: 12, MonthlyDiscount: -5,
	})
	require.Error(t, err)
	var degenerate *domain.DegenerateInputError
	assert.True(t, errors.As(err, &degenerate))
}
