package domain

// PayoffInput compares paying a loan on schedule against prepaying it with a
// per-installment discount, while a saved lump sum keeps compounding.
type PayoffInput struct {
	SavedAmount     float64
	SavedRate       float64 // periodic yield on the saved amount, decimal
	LoanAmount      float64
	LoanRate        float64 // periodic loan rate, decimal
	Periods         float64
	MonthlyDiscount float64
}

// PayoffOption is one side of the comparison.
type PayoffOption struct {
	Installment  float64
	TotalPaid    float64
	FinalSavings float64
}

// PayoffResult holds both options and the comparison between them.
// EarlyPayoffWins is true when the loan savings exceed the investment yield
// given up by funding the discount.
type PayoffResult struct {
	Normal          PayoffOption
	Early           PayoffOption
	LoanSavings     float64
	ExtraYield      float64
	EarlyPayoffWins bool
}
