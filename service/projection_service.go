package service

import (
	"go.uber.org/zap"

	"tvm-engine/domain"
)

// ProjectionService simulates a savings balance month by month: interest
// accrues on the running balance, then the month's deposits are added.
type ProjectionService struct {
	logger *zap.Logger
}

func NewProjectionService(logger *zap.Logger) *ProjectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectionService{logger: logger}
}

func (s *ProjectionService) monthlyRate(input domain.ProjectionInput) (float64, error) {
	if input.Months <= 0 {
		return 0, &domain.DegenerateInputError{Reason: "months must be positive"}
	}
	return AnnualizedToPeriodic(input.AnnualRate, 12)
}

// ProjectBalance returns the full month-by-month table for the projection.
func (s *ProjectionService) ProjectBalance(input domain.ProjectionInput) ([]domain.ProjectionMonth, error) {
	rate, err := s.monthlyRate(input)
	if err != nil {
		return nil, err
	}
	deposit := input.FixedDeposit + input.ExtraDeposit
	balance := input.InitialCapital
	table := make([]domain.ProjectionMonth, 0, input.Months)
	for m := 1; m <= input.Months; m++ {
		start := balance
		interest := start * rate
		balance = start*(1+rate) + deposit
		table = append(table, domain.ProjectionMonth{
			Month:        m,
			StartBalance: start,
			Interest:     interest,
			Deposit:      deposit,
			EndBalance:   balance,
		})
	}
	return table, nil
}

// FinalBalance is the balance at the end of the projection horizon.
func (s *ProjectionService) FinalBalance(input domain.ProjectionInput) (float64, error) {
	rate, err := s.monthlyRate(input)
	if err != nil {
		return 0, err
	}
	deposit := input.FixedDeposit + input.ExtraDeposit
	balance := input.InitialCapital
	for m := 0; m < input.Months; m++ {
		balance = balance*(1+rate) + deposit
	}
	return balance, nil
}

// RequiredExtraDeposit finds, by bisection, the extra monthly deposit needed
// so the final balance reaches the capital whose monthly return equals
// desiredMonthlyInterest. The final balance is strictly increasing in the
// deposit, which is what makes the bisection bracket safe.
func (s *ProjectionService) RequiredExtraDeposit(
	input domain.ProjectionInput,
	desiredMonthlyInterest float64,
	search domain.DepositSearch,
) (float64, error) {
	rate, err := s.monthlyRate(input)
	if err != nil {
		return 0, err
	}
	if rate <= 0 {
		return 0, &domain.DegenerateInputError{Reason: "target capital requires a positive periodic rate"}
	}
	neededCapital := desiredMonthlyInterest / rate

	if search.Upper <= search.Lower {
		search.Lower = DefaultDepositLower
		search.Upper = DefaultDepositUpper
	}
	if search.Iterations <= 0 {
		search.Iterations = DefaultBisectionIterations
	}

	evaluate := func(extra float64) float64 {
		trial := input
		trial.ExtraDeposit = extra
		balance, _ := s.FinalBalance(trial)
		return balance
	}

	deposit, err := SolveByBisection(evaluate, neededCapital, search.Lower, search.Upper, search.Iterations)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("required deposit solved",
		zap.Float64("neededCapital", neededCapital),
		zap.Float64("extraDeposit", deposit),
	)
	return deposit, nil
}

// CompareRates sizes the required extra deposit for each candidate annual
// rate and reports the resulting capital positions, one row per rate in input
// order. A rate whose search fails is recorded as a failure, not an abort.
func (s *ProjectionService) CompareRates(
	annualRates []float64,
	desiredMonthlyInterest float64,
	base domain.ProjectionInput,
	search domain.DepositSearch,
) ([]domain.RateComparisonRow, []domain.ScenarioFailure) {
	rows := make([]domain.RateComparisonRow, 0, len(annualRates))
	var failures []domain.ScenarioFailure

	for i, annual := range annualRates {
		input := base
		input.AnnualRate = annual
		input.ExtraDeposit = 0

		rate, err := s.monthlyRate(input)
		if err == nil && rate <= 0 {
			err = &domain.DegenerateInputError{Reason: "target capital requires a positive periodic rate"}
		}
		var extra float64
		if err == nil {
			extra, err = s.RequiredExtraDeposit(input, desiredMonthlyInterest, search)
		}
		if err != nil {
			failures = append(failures, domain.ScenarioFailure{Index: i, Err: err})
			continue
		}

		input.ExtraDeposit = extra
		final, err := s.FinalBalance(input)
		if err != nil {
			failures = append(failures, domain.ScenarioFailure{Index: i, Err: err})
			continue
		}

		rows = append(rows, domain.RateComparisonRow{
			AnnualRate:     annual,
			PeriodicRate:   rate,
			ExtraDeposit:   extra,
			MonthlyDeposit: input.FixedDeposit + extra,
			FinalCapital:   final,
			NeededCapital:  desiredMonthlyInterest / rate,
		})
	}
	return rows, failures
}
