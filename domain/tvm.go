package domain

// TVMParameters holds the five time-value-of-money quantities. In any single
// solve exactly one of them is the unknown; the rest are supplied knowns.
// Rate is periodic (per compounding period) and expressed as a decimal
// fraction, e.g. 0.01 for 1%.
type TVMParameters struct {
	PresentValue float64
	Payment      float64
	Rate         float64
	Periods      float64
	FutureValue  float64
}

// SolverResult is the outcome of a converged iterative solve. Failures are
// reported as errors, never as a zero-valued result.
type SolverResult struct {
	Value         float64
	Iterations    int
	AchievedDelta float64
}

// RateSolverOptions configure the Newton-Raphson rate solver. A legitimate
// periodic rate is bounded; iterates leaving [LowerBound, UpperBound] are a
// hard failure rather than a clamp.
type RateSolverOptions struct {
	InitialGuess  float64
	Tolerance     float64
	MaxIterations int
	LowerBound    float64
	UpperBound    float64
}

// Compounding is the frequency at which an annual nominal rate compounds.
type Compounding string

const (
	CompoundingDaily   Compounding = "daily"
	CompoundingMonthly Compounding = "monthly"
	CompoundingAnnual  Compounding = "annual"
)

// PeriodsPerYear returns the number of compounding periods in a year, or
// false for an unknown frequency.
func (c Compounding) PeriodsPerYear() (int, bool) {
	switch c {
	case CompoundingDaily:
		return 365, true
	case CompoundingMonthly:
		return 12, true
	case CompoundingAnnual:
		return 1, true
	}
	return 0, false
}

// SolveFor names the unknown a scenario asks the engine to compute.
type SolveFor string

const (
	SolvePayment      SolveFor = "payment"
	SolvePresentValue SolveFor = "presentValue"
	SolveFutureValue  SolveFor = "futureValue"
	SolvePeriodCount  SolveFor = "periods"
	SolveRateValue    SolveFor = "rate"
)

// Scenario is one entry in a batch run. Solver, when set, overrides the
// runner's rate-solver options for this scenario only.
type Scenario struct {
	Label    string
	SolveFor SolveFor
	Inputs   TVMParameters
	Solver   *RateSolverOptions
}

// ScenarioRow is the result of one scenario: the inputs it was run with plus
// a mapping of named derived quantities. Rows keep the input order of the
// batch that produced them.
type ScenarioRow struct {
	Label   string
	Inputs  TVMParameters
	Outputs map[string]float64
	Err     error
}

// Failed reports whether the scenario produced no outputs.
func (r ScenarioRow) Failed() bool {
	return r.Err != nil
}

// ScenarioFailure records one isolated per-scenario failure.
type ScenarioFailure struct {
	Index int
	Label string
	Err   error
}

// ScenarioReport is the outcome of a batch run: one row per scenario in input
// order, plus the subset that failed. A failed scenario never aborts the rest
// of the batch.
type ScenarioReport struct {
	Rows     []ScenarioRow
	Failures []ScenarioFailure
}
