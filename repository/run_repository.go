package repository

import "tvm-engine/domain"

// RunRepository records completed scenario rows. Saving is best-effort from
// the runner's point of view: a failed save is logged, never fatal.
type RunRepository interface {
	Save(scenario domain.Scenario, row domain.ScenarioRow) error
}
