package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tvm-engine/domain"
	"tvm-engine/repository"
)

// Derived output names shared by the runner and its consumers.
const (
	OutPayment        = "payment"
	OutTotalPaid      = "totalPaid"
	OutTotalInterest  = "totalInterest"
	OutPresentValue   = "presentValue"
	OutFutureValue    = "futureValue"
	OutTotalInvested  = "totalInvested"
	OutEarnings       = "earnings"
	OutPeriods        = "periods"
	OutRate           = "rate"
	OutAnnualizedRate = "annualizedRate"
	OutIterations     = "iterations"
)

// ScenarioService drives the formulas and solvers across an ordered batch of
// scenarios. Evaluations are independent and side-effect-free, so they run on
// parallel workers; rows are reassembled in input order regardless of which
// worker finished first.
type ScenarioService struct {
	repo    repository.RunRepository
	cache   repository.CacheRepository
	logger  *zap.Logger
	workers int
	solver  domain.RateSolverOptions
}

// NewScenarioService creates a runner. repo and cache may be nil; a nil
// logger falls back to a nop logger, workers <= 0 to DefaultWorkers.
func NewScenarioService(
	repo repository.RunRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
	workers int,
) *ScenarioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &ScenarioService{
		repo:    repo,
		cache:   cache,
		logger:  logger,
		workers: workers,
		solver:  DefaultRateSolverOptions(),
	}
}

// Run evaluates every scenario and returns one row per input, in input order.
// A failing scenario is recorded as a failed row plus a Failures entry; it
// never aborts the rest of the batch.
func (s *ScenarioService) Run(ctx context.Context, scenarios []domain.Scenario) (domain.ScenarioReport, error) {
	if len(scenarios) == 0 {
		return domain.ScenarioReport{}, eris.New("no scenarios provided")
	}
	if len(scenarios) > MaxScenariosPerRun {
		return domain.ScenarioReport{}, eris.Errorf("batch of %d scenarios exceeds the maximum of %d", len(scenarios), MaxScenariosPerRun)
	}

	rows := make([]domain.ScenarioRow, len(scenarios))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = s.evaluate(sc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ScenarioReport{}, eris.Wrap(err, "scenario batch interrupted")
	}

	report := domain.ScenarioReport{Rows: rows}
	for i, row := range rows {
		if row.Failed() {
			report.Failures = append(report.Failures, domain.ScenarioFailure{
				Index: i,
				Label: row.Label,
				Err:   row.Err,
			})
			continue
		}
		if s.repo != nil {
			if err := s.repo.Save(scenarios[i], row); err != nil {
				s.logger.Warn("failed to save scenario row",
					zap.String("label", row.Label),
					zap.Error(err),
				)
			}
		}
	}

	s.logger.Info("scenario batch complete",
		zap.Int("scenarios", len(scenarios)),
		zap.Int("failures", len(report.Failures)),
	)
	return report, nil
}

func (s *ScenarioService) evaluate(sc domain.Scenario) domain.ScenarioRow {
	row := domain.ScenarioRow{Label: sc.Label, Inputs: sc.Inputs}

	// Per-scenario solver overrides change the answer, so they bypass the
	// shared cache.
	key := ""
	if s.cache != nil && sc.Solver == nil {
		key = cacheKey(sc)
		if payload, ok := s.cache.Get(key); ok {
			var outputs map[string]float64
			if err := json.Unmarshal([]byte(payload), &outputs); err == nil {
				s.logger.Debug("cache hit", zap.String("label", sc.Label))
				row.Outputs = outputs
				return row
			}
		}
	}

	outputs, err := s.compute(sc)
	if err != nil {
		row.Err = eris.Wrapf(err, "scenario %q", sc.Label)
		return row
	}
	row.Outputs = outputs

	if key != "" {
		if payload, err := json.Marshal(outputs); err == nil {
			if err := s.cache.Set(key, string(payload)); err != nil {
				s.logger.Warn("failed to cache scenario outputs",
					zap.String("label", sc.Label),
					zap.Error(err),
				)
			}
		}
	}
	return row
}

func (s *ScenarioService) compute(sc domain.Scenario) (map[string]float64, error) {
	in := sc.Inputs
	switch sc.SolveFor {
	case domain.SolvePayment:
		pmt, err := Payment(in.PresentValue, in.Rate, in.Periods)
		if err != nil {
			return nil, err
		}
		total := pmt * in.Periods
		return map[string]float64{
			OutPayment:       pmt,
			OutTotalPaid:     total,
			OutTotalInterest: total - in.PresentValue,
		}, nil

	case domain.SolvePresentValue:
		pv, err := PresentValue(in.Payment, in.Rate, in.Periods)
		if err != nil {
			return nil, err
		}
		return map[string]float64{OutPresentValue: pv}, nil

	case domain.SolveFutureValue:
		fv, err := FutureValueCombined(in.PresentValue, in.Payment, in.Rate, in.Periods)
		if err != nil {
			return nil, err
		}
		return map[string]float64{
			OutFutureValue:   fv,
			OutTotalInvested: in.PresentValue + in.Payment*in.Periods,
			OutEarnings:      Earnings(fv, in.PresentValue, in.Payment, in.Periods),
		}, nil

	case domain.SolvePeriodCount:
		n, err := SolvePeriods(in.FutureValue, in.Payment, in.PresentValue, in.Rate)
		if err != nil {
			return nil, err
		}
		return map[string]float64{OutPeriods: n}, nil

	case domain.SolveRateValue:
		opts := s.solver
		if sc.Solver != nil {
			opts = *sc.Solver
		}
		res, err := SolveRate(in.FutureValue, in.PresentValue, in.Payment, in.Periods, opts)
		if err != nil {
			return nil, err
		}
		// Solved rates are per month in every source scenario, so the
		// annualized equivalent uses twelve periods.
		tae, err := PeriodicToAnnualized(res.Value, 12)
		if err != nil {
			return nil, err
		}
		return map[string]float64{
			OutRate:           res.Value,
			OutAnnualizedRate: tae,
			OutIterations:     float64(res.Iterations),
		}, nil
	}
	return nil, eris.Errorf("unknown solve target %q", sc.SolveFor)
}

func cacheKey(sc domain.Scenario) string {
	in := sc.Inputs
	return fmt.Sprintf("tvm:%s:%.12g:%.12g:%.12g:%.12g:%.12g",
		sc.SolveFor, in.PresentValue, in.Payment, in.Rate, in.Periods, in.FutureValue)
}
