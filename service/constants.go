package service

const (
	// Newton-Raphson defaults. The bounds cap the periodic rate at 100% per
	// period; an iterate outside them is a failure, not a clamp.
	DefaultInitialGuess  = 0.01
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 1000
	DefaultRateLower     = 0.0
	DefaultRateUpper     = 1.0

	// DefaultBisectionIterations is a fixed halving count; the final interval
	// is (upper-lower)/2^iterations wide, so no tolerance check is needed.
	DefaultBisectionIterations = 100

	// DefaultWorkers bounds parallel scenario evaluation.
	DefaultWorkers = 4

	// MaxScenariosPerRun caps a single batch.
	MaxScenariosPerRun = 500

	// Default bracket when searching for a required extra deposit.
	DefaultDepositLower = 0.0
	DefaultDepositUpper = 20_000.0
)
