package service

import (
	"math"

	"go.uber.org/zap"

	"tvm-engine/domain"
)

// defaultHorizons are the planning horizons used when the caller supplies
// none.
var defaultHorizons = []int{5, 10, 15, 20, 25, 30, 35, 40}

// SavingsService answers long-horizon savings questions: what fraction of a
// salary must be put aside to preserve purchasing power, and what a bracketed
// career of contributions accumulates to in nominal and real terms.
type SavingsService struct {
	logger *zap.Logger
}

func NewSavingsService(logger *zap.Logger) *SavingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SavingsService{logger: logger}
}

// PlanSavingsFractions computes, for each horizon T, the salary fraction
//
//	p = (1+inflation)^T / ((1+return)^T - 1)
//
// that must be saved annually so the accumulated capital can generate the
// current salary adjusted for inflation, plus the capital that plan reaches.
func (s *SavingsService) PlanSavingsFractions(input domain.SavingsPlanInput) ([]domain.SavingsPlanRow, error) {
	if input.MonthlySalary <= 0 {
		return nil, &domain.DegenerateInputError{Reason: "salary must be positive"}
	}
	if input.InflationRate <= -1 {
		return nil, &domain.InvalidRateError{Rate: input.InflationRate}
	}
	if input.ReturnRate <= -1 {
		return nil, &domain.InvalidRateError{Rate: input.ReturnRate}
	}
	if input.ReturnRate == 0 {
		return nil, &domain.DegenerateInputError{Reason: "savings fraction is undefined at a zero return rate"}
	}

	horizons := input.Horizons
	if len(horizons) == 0 {
		horizons = defaultHorizons
	}

	annualSalary := input.MonthlySalary * 12
	rows := make([]domain.SavingsPlanRow, 0, len(horizons))
	for _, years := range horizons {
		if years <= 0 {
			return nil, &domain.DegenerateInputError{Reason: "horizon must be positive"}
		}
		t := float64(years)
		growth := math.Pow(1+input.ReturnRate, t) - 1
		fraction := math.Pow(1+input.InflationRate, t) / growth
		contribution := fraction * annualSalary

		accumulated, err := FutureValueAnnuity(contribution, input.ReturnRate, t)
		if err != nil {
			return nil, err
		}
		targetIncome := annualSalary * math.Pow(1+input.InflationRate, t)

		rows = append(rows, domain.SavingsPlanRow{
			Years:              years,
			SavingsFraction:    fraction,
			AnnualContribution: contribution,
			AccumulatedCapital: accumulated,
			TargetCapital:      targetIncome / input.ReturnRate,
		})
	}
	return rows, nil
}

// SimulateAccumulation compounds end-of-year contributions of a fixed salary
// fraction over a bracketed career and deflates the result by cumulative
// inflation.
func (s *SavingsService) SimulateAccumulation(input domain.AccumulationInput) (domain.AccumulationResult, error) {
	if input.Years <= 0 {
		return domain.AccumulationResult{}, &domain.DegenerateInputError{Reason: "years must be positive"}
	}
	if input.SavingsFraction <= 0 {
		return domain.AccumulationResult{}, &domain.DegenerateInputError{Reason: "savings fraction must be positive"}
	}
	if input.ReturnRate <= -1 {
		return domain.AccumulationResult{}, &domain.InvalidRateError{Rate: input.ReturnRate}
	}
	if input.InflationRate <= -1 {
		return domain.AccumulationResult{}, &domain.InvalidRateError{Rate: input.InflationRate}
	}

	patrimony := 0.0
	for year := 1; year <= input.Years; year++ {
		annualSalary := s.salaryForYear(input.Brackets, year) * 12
		contribution := annualSalary * input.SavingsFraction
		// Each contribution compounds from its year-end to the horizon.
		remaining := float64(input.Years - year)
		patrimony += contribution * math.Pow(1+input.ReturnRate, remaining)
	}

	annualIncome := patrimony * input.ReturnRate
	deflator := math.Pow(1+input.InflationRate, float64(input.Years))

	result := domain.AccumulationResult{
		NominalPatrimony:     patrimony,
		NominalAnnualIncome:  annualIncome,
		NominalMonthlyIncome: annualIncome / 12,
		RealPatrimony:        patrimony / deflator,
		RealAnnualIncome:     annualIncome / deflator,
		RealMonthlyIncome:    annualIncome / deflator / 12,
	}

	s.logger.Debug("accumulation simulated",
		zap.Float64("fraction", input.SavingsFraction),
		zap.Int("years", input.Years),
		zap.Float64("nominalPatrimony", result.NominalPatrimony),
	)
	return result, nil
}

func (s *SavingsService) salaryForYear(brackets []domain.SalaryBracket, year int) float64 {
	for _, b := range brackets {
		if year >= b.FromYear && year <= b.ToYear {
			return b.MonthlySalary
		}
	}
	return 0
}
