package repository

import (
	"sync"

	"tvm-engine/domain"
)

// RunRepositoryMemory is an in-memory implementation of RunRepository.
type RunRepositoryMemory struct {
	mu   sync.Mutex
	rows []domain.ScenarioRow
}

// NewRunRepositoryMemory creates a new in-memory run repository.
func NewRunRepositoryMemory() *RunRepositoryMemory {
	return &RunRepositoryMemory{
		rows: []domain.ScenarioRow{},
	}
}

// Save stores the scenario row in memory.
func (r *RunRepositoryMemory) Save(scenario domain.Scenario, row domain.ScenarioRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, row)
	return nil
}

// Rows returns a copy of everything saved so far.
func (r *RunRepositoryMemory) Rows() []domain.ScenarioRow {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ScenarioRow, len(r.rows))
	copy(out, r.rows)
	return out
}
