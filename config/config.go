package config

import (
	"os"
	"time"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"tvm-engine/domain"
	"tvm-engine/repository"
)

// Config is the engine's YAML configuration: solver defaults, runner
// settings, and an optional pre-defined scenario batch. Anything left zero
// falls back to the engine defaults.
type Config struct {
	Solver    SolverConfig     `yaml:"solver"`
	Runner    RunnerConfig     `yaml:"runner"`
	Cache     CacheConfig      `yaml:"cache"`
	Scenarios []ScenarioConfig `yaml:"scenarios"`
}

type SolverConfig struct {
	InitialGuess  float64 `yaml:"initialGuess"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"maxIterations"`
	LowerBound    float64 `yaml:"lowerBound"`
	UpperBound    float64 `yaml:"upperBound"`
}

type RunnerConfig struct {
	Workers int `yaml:"workers"`
}

type CacheConfig struct {
	// RedisAddr enables the redis cache backend when set; empty keeps the
	// in-memory backend.
	RedisAddr  string `yaml:"redisAddr"`
	TTLSeconds int    `yaml:"ttlSeconds"`
}

// ScenarioConfig is one scenario as written in a batch file. Rate is the
// periodic rate as a decimal fraction.
type ScenarioConfig struct {
	Label        string  `yaml:"label"`
	SolveFor     string  `yaml:"solveFor"`
	PresentValue float64 `yaml:"presentValue"`
	Payment      float64 `yaml:"payment"`
	Rate         float64 `yaml:"rate"`
	Periods      float64 `yaml:"periods"`
	FutureValue  float64 `yaml:"futureValue"`
}

var solveTargets = map[string]domain.SolveFor{
	string(domain.SolvePayment):      domain.SolvePayment,
	string(domain.SolvePresentValue): domain.SolvePresentValue,
	string(domain.SolveFutureValue):  domain.SolveFutureValue,
	string(domain.SolvePeriodCount):  domain.SolvePeriodCount,
	string(domain.SolveRateValue):    domain.SolveRateValue,
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "reading config %s", path)
	}
	return Parse(data)
}

// Parse decodes configuration from raw YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, eris.Wrap(err, "parsing config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for i, sc := range c.Scenarios {
		if _, ok := solveTargets[sc.SolveFor]; !ok {
			return eris.Errorf("scenario %d (%q): unknown solve target %q", i, sc.Label, sc.SolveFor)
		}
	}
	if c.Solver.LowerBound != 0 || c.Solver.UpperBound != 0 {
		if c.Solver.LowerBound >= c.Solver.UpperBound {
			return eris.Errorf("solver bounds [%g, %g] are inverted", c.Solver.LowerBound, c.Solver.UpperBound)
		}
	}
	return nil
}

// SolverOptions returns the configured Newton-Raphson options with engine
// defaults filled in for zero fields.
func (c *Config) SolverOptions(defaults domain.RateSolverOptions) domain.RateSolverOptions {
	opts := defaults
	if c.Solver.InitialGuess != 0 {
		opts.InitialGuess = c.Solver.InitialGuess
	}
	if c.Solver.Tolerance != 0 {
		opts.Tolerance = c.Solver.Tolerance
	}
	if c.Solver.MaxIterations != 0 {
		opts.MaxIterations = c.Solver.MaxIterations
	}
	if c.Solver.UpperBound != 0 {
		opts.LowerBound = c.Solver.LowerBound
		opts.UpperBound = c.Solver.UpperBound
	}
	return opts
}

// CacheRepository builds the configured cache backend: redis when an address
// is set, the in-memory backend otherwise.
func (c *Config) CacheRepository() repository.CacheRepository {
	if c.Cache.RedisAddr != "" {
		return repository.NewRedisCache(c.Cache.RedisAddr, time.Duration(c.Cache.TTLSeconds)*time.Second)
	}
	return repository.NewMemoryCache()
}

// ScenarioBatch converts the configured scenarios into typed engine inputs,
// preserving file order.
func (c *Config) ScenarioBatch() []domain.Scenario {
	batch := make([]domain.Scenario, 0, len(c.Scenarios))
	for _, sc := range c.Scenarios {
		batch = append(batch, domain.Scenario{
			Label:    sc.Label,
			SolveFor: solveTargets[sc.SolveFor],
			Inputs: domain.TVMParameters{
				PresentValue: sc.PresentValue,
				Payment:      sc.Payment,
				Rate:         sc.Rate,
				Periods:      sc.Periods,
				FutureValue:  sc.FutureValue,
			},
		})
	}
	return batch
}
