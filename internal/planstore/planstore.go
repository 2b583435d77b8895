// Package planstore holds previously computed schedules in an in-process
// map keyed by plan id: one endpoint computes and stores a plan, another
// retrieves it by id. No persistence across process restarts.
package planstore

import (
	"sync"

	"github.com/google/uuid"

	"smuggr.xyz/courtplanner/internal/scheduling/solver"
)

// Plan is a stored, assembled schedule.
type Plan struct {
	ID    string
	Date  string
	Slots []solver.Slot
}

// Store is a mutex-guarded, in-memory map of plan id to Plan.
type Store struct {
	mu    sync.RWMutex
	plans map[string]Plan
}

// New returns an empty Store.
func New() *Store {
	return &Store{plans: make(map[string]Plan)}
}

// Put stores a plan under a fresh id and returns the stored Plan.
func (s *Store) Put(date string, slots []solver.Slot) Plan {
	plan := Plan{ID: uuid.NewString(), Date: date, Slots: slots}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[plan.ID] = plan
	return plan
}

// Get retrieves a previously stored plan.
func (s *Store) Get(id string) (Plan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plans[id]
	return p, ok
}
