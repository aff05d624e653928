package workshop

import (
	"sync"

	"atum/internal/models"
)

// Slot holds the last successful value of one result. Get reports false until
// a value has been stored, which lets callers tell "never fetched" apart from
// an empty payload.
type Slot[T any] struct {
	mu    sync.RWMutex
	value T
	set   bool
}

func (s *Slot[T]) Get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.set
}

func (s *Slot[T]) Set(v T) {
	s.mu.Lock()
	s.value, s.set = v, true
	s.mu.Unlock()
}

func (s *Slot[T]) Clear() {
	var zero T
	s.mu.Lock()
	s.value, s.set = zero, false
	s.mu.Unlock()
}

// ptr returns a pointer to a copy of the stored value, or nil when empty.
func (s *Slot[T]) ptr() *T {
	v, ok := s.Get()
	if !ok {
		return nil
	}
	return &v
}

// ResultStore keeps one slot per action. Writes replace whole values; there
// is no history.
type ResultStore struct {
	Code    Slot[string]
	Tests   Slot[string]
	Docs    Slot[models.Documentation]
	Quality Slot[models.QualityReport]

	mu       sync.Mutex
	expanded bool
}

// SetQuality stores a new report and collapses its details.
func (r *ResultStore) SetQuality(report models.QualityReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Quality.Set(report)
	r.expanded = false
}

// ToggleDetails flips the quality report "details expanded" flag and returns
// the new value.
func (r *ResultStore) ToggleDetails() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expanded = !r.expanded
	return r.expanded
}

// QualityView returns the stored report (nil when empty) together with the
// details flag that belongs to it.
func (r *ResultStore) QualityView() (*models.QualityReport, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Quality.ptr(), r.expanded
}

func (r *ResultStore) DetailsExpanded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.expanded
}

// Clear empties the slot owned by a.
func (r *ResultStore) Clear(a Action) {
	switch a {
	case ActionGenerateCode:
		r.Code.Clear()
	case ActionGenerateTests:
		r.Tests.Clear()
	case ActionGenerateDocs:
		r.Docs.Clear()
	case ActionQualityReport:
		r.mu.Lock()
		r.Quality.Clear()
		r.expanded = false
		r.mu.Unlock()
	}
}
