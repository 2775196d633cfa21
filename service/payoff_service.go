package service

import (
	"go.uber.org/zap"

	"tvm-engine/domain"
)

// PayoffService weighs prepaying a loan at a per-installment discount against
// paying on schedule while a saved lump sum keeps compounding.
//
// Two modeling simplifications are intentional and preserved from the model
// this service implements: a discount larger than the installment clamps the
// installment to zero, and the saved principal is reduced by the whole
// discount*periods up front rather than by a monthly withdrawal schedule.
type PayoffService struct {
	logger *zap.Logger
}

func NewPayoffService(logger *zap.Logger) *PayoffService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PayoffService{logger: logger}
}

// ComparePayoff computes both options and reports which one comes out ahead.
func (s *PayoffService) ComparePayoff(input domain.PayoffInput) (domain.PayoffResult, error) {
	if input.MonthlyDiscount < 0 {
		return domain.PayoffResult{}, &domain.DegenerateInputError{Reason: "discount cannot be negative"}
	}

	installment, err := Payment(input.LoanAmount, input.LoanRate, input.Periods)
	if err != nil {
		return domain.PayoffResult{}, err
	}
	normalSavings, err := FutureValueLumpSum(input.SavedAmount, input.SavedRate, input.Periods)
	if err != nil {
		return domain.PayoffResult{}, err
	}
	normal := domain.PayoffOption{
		Installment:  installment,
		TotalPaid:    installment * input.Periods,
		FinalSavings: normalSavings,
	}

	discounted := installment - input.MonthlyDiscount
	if discounted < 0 {
		discounted = 0
	}
	earlySavings, err := FutureValueLumpSum(
		input.SavedAmount-input.MonthlyDiscount*input.Periods,
		input.SavedRate,
		input.Periods,
	)
	if err != nil {
		return domain.PayoffResult{}, err
	}
	early := domain.PayoffOption{
		Installment:  discounted,
		TotalPaid:    discounted * input.Periods,
		FinalSavings: earlySavings,
	}

	result := domain.PayoffResult{
		Normal:      normal,
		Early:       early,
		LoanSavings: normal.TotalPaid - early.TotalPaid,
		ExtraYield:  early.FinalSavings - normal.FinalSavings,
	}
	result.EarlyPayoffWins = result.LoanSavings > result.ExtraYield

	s.logger.Debug("payoff comparison",
		zap.Float64("loanSavings", result.LoanSavings),
		zap.Float64("extraYield", result.ExtraYield),
		zap.Bool("earlyPayoffWins", result.EarlyPayoffWins),
	)
	return result, nil
}
