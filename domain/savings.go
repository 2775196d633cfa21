package domain

// SavingsPlanInput asks what fraction of a salary must be saved each year so
// that, over each horizon, the accumulated capital can generate the current
// salary adjusted for inflation.
type SavingsPlanInput struct {
	MonthlySalary float64
	InflationRate float64 // annual, decimal
	ReturnRate    float64 // annual, decimal
	Horizons      []int   // years; defaults applied when empty
}

// SavingsPlanRow is the plan for one horizon.
type SavingsPlanRow struct {
	Years              int
	SavingsFraction    float64 // fraction of salary to save, decimal
	AnnualContribution float64
	AccumulatedCapital float64
	TargetCapital      float64 // capital whose return replaces the target income
}

// SalaryBracket gives the monthly salary in effect between two years of a
// career, inclusive on both ends.
type SalaryBracket struct {
	FromYear      int
	ToYear        int
	MonthlySalary float64
}

// AccumulationInput simulates saving a fixed fraction of a bracketed salary,
// contributed at the end of each year and compounded to the horizon.
type AccumulationInput struct {
	Brackets        []SalaryBracket
	SavingsFraction float64
	Years           int
	ReturnRate      float64 // annual, decimal
	InflationRate   float64 // annual, decimal; deflates nominal results
}

// AccumulationResult reports the simulated patrimony in nominal terms and
// deflated to today's purchasing power.
type AccumulationResult struct {
	NominalPatrimony     float64
	NominalAnnualIncome  float64
	NominalMonthlyIncome float64
	RealPatrimony        float64
	RealAnnualIncome     float64
	RealMonthlyIncome    float64
}
