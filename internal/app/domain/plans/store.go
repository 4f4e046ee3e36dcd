package plans

import (
	"sync"

	"github.com/google/uuid"

	"github.com/FACorreiaa/go-tripplanner/internal/app/models"
)

// Store is the in-memory session state: the last generated plan plus the
// saved-plan list. Plans are immutable once created, so the store only ever
// swaps or appends whole values. Constructed once at process start and never
// reset mid-session.
type Store struct {
	mu      sync.RWMutex
	current *models.TravelPlan
	saved   []models.TravelPlan
}

func NewStore() *Store {
	return &Store{}
}

// SetCurrent replaces the current plan. A nil plan clears it.
func (s *Store) SetCurrent(plan *models.TravelPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = plan
}

func (s *Store) Current() (*models.TravelPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

// Save appends the plan to the saved list.
func (s *Store) Save(plan models.TravelPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, plan)
}

// Saved returns a copy of the saved-plan list.
func (s *Store) Saved() []models.TravelPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TravelPlan, len(s.saved))
	copy(out, s.saved)
	return out
}

// Remove deletes the saved plan with the given id, reporting whether it
// existed.
func (s *Store) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, plan := range s.saved {
		if plan.ID == id {
			s.saved = append(s.saved[:i], s.saved[i+1:]...)
			return true
		}
	}
	return false
}
