package domain

// ProjectionInput describes a monthly balance projection: an initial capital
// that compounds at a periodic rate while fixed and extra deposits are added
// at the end of each month.
type ProjectionInput struct {
	InitialCapital float64
	AnnualRate     float64 // effective annual rate, decimal
	FixedDeposit   float64 // recurring deposit, e.g. rent income
	ExtraDeposit   float64 // additional deposit being sized or evaluated
	Months         int
}

// ProjectionMonth is one row of a month-by-month balance table.
type ProjectionMonth struct {
	Month        int
	StartBalance float64
	Interest     float64
	Deposit      float64
	EndBalance   float64
}

// DepositSearch bounds the bisection search for a required extra deposit.
type DepositSearch struct {
	Lower      float64
	Upper      float64
	Iterations int
}

// RateComparisonRow summarizes one candidate annual rate: the deposit needed
// to reach the income target and the capital positions it produces.
type RateComparisonRow struct {
	AnnualRate     float64
	PeriodicRate   float64
	ExtraDeposit   float64
	MonthlyDeposit float64
	FinalCapital   float64
	NeededCapital  float64
}
