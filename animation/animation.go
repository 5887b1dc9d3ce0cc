package animation

import (
	"slices"
	"sync"
)

// Player starts and stops animations of a single entity. Starting an animation that is already active and
// stopping one that isn't are no-ops, and return false.
type Player interface {
	Start(code string) bool
	Stop(code string) bool
	IsActive(code string) bool
}

// Set is a Player that only tracks which animations are active. Presentation layers that render
// animations can wrap it to find out what to draw.
type Set struct {
	mu     sync.RWMutex
	active map[string]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{active: make(map[string]struct{})}
}

// Start ...
func (s *Set) Start(code string) bool {
	if code == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.active[code]; ok {
		return false
	}
	s.active[code] = struct{}{}
	return true
}

// Stop ...
func (s *Set) Stop(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.active[code]; !ok {
		return false
	}
	delete(s.active, code)
	return true
}

// IsActive ...
func (s *Set) IsActive(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.active[code]
	return ok
}

// Active returns the codes of all active animations, sorted.
func (s *Set) Active() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := make([]string, 0, len(s.active))
	for code := range s.active {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
