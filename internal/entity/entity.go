// Package entity holds the per-round actor containers shared by every
// minigame: a generic slice store with the hit-test scans the variants
// rely on, and the cosmetic particle system.
package entity

import "github.com/vovakirdan/ramadhan-rush/internal/core"

// FrameMs is the nominal frame length that velocities are expressed in.
const FrameMs = 16.67

// Ratio converts elapsed milliseconds into nominal frames.
func Ratio(dt float64) float64 {
	return dt / FrameMs
}

// Body is the common state embedded by every variant's entity type.
type Body struct {
	Pos     core.Vec
	Vel     core.Vec // per nominal frame
	Life    float64  // remaining ms; unused by entities that never expire
	MaxLife float64
}

// Center returns the position used for hit tests.
func (b Body) Center() core.Vec {
	return b.Pos
}

// Move advances the position by velocity scaled to the elapsed frames.
func (b *Body) Move(ratio float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(ratio))
}

// Age subtracts dt from the remaining life.
func (b *Body) Age(dt float64) {
	b.Life -= dt
}

// Expired reports whether the remaining life ran out.
func (b Body) Expired() bool {
	return b.Life <= 0
}

// Positioned is anything that can be hit-tested by position.
type Positioned interface {
	Center() core.Vec
}

// Store is an ordered collection of entities. Insertion order is kept;
// it decides hit-test tie-breaks and draw order.
//
// Removal during an update pass goes through Prune after the pass is done.
// RemoveAt is only for a single removal after a hit scan has returned.
type Store[T Positioned] struct {
	items []T
}

// NewStore creates an empty store with room for capacity entities.
func NewStore[T Positioned](capacity int) *Store[T] {
	return &Store[T]{items: make([]T, 0, capacity)}
}

// Add appends an entity.
func (s *Store[T]) Add(v T) {
	s.items = append(s.items, v)
}

// Len returns the number of live entities.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// At returns a pointer to the i-th entity.
func (s *Store[T]) At(i int) *T {
	return &s.items[i]
}

// Last returns the most recently added entity, or nil when empty.
func (s *Store[T]) Last() *T {
	if len(s.items) == 0 {
		return nil
	}
	return &s.items[len(s.items)-1]
}

// Each calls fn for every entity in insertion order.
func (s *Store[T]) Each(fn func(i int, v *T)) {
	for i := range s.items {
		fn(i, &s.items[i])
	}
}

// Prune keeps only the entities for which keep returns true.
func (s *Store[T]) Prune(keep func(v *T) bool) {
	valid := s.items[:0]
	for i := range s.items {
		if keep(&s.items[i]) {
			valid = append(valid, s.items[i])
		}
	}
	var zero T
	for i := len(valid); i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = valid
}

// RemoveAt deletes the i-th entity, preserving order.
func (s *Store[T]) RemoveAt(i int) {
	if i < 0 || i >= len(s.items) {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// Clear removes every entity.
func (s *Store[T]) Clear() {
	s.items = s.items[:0]
}

// AnyWithin reports whether some entity lies strictly closer than radius to p.
func (s *Store[T]) AnyWithin(p core.Vec, radius float64) bool {
	for i := range s.items {
		if core.Dist(s.items[i].Center(), p) < radius {
			return true
		}
	}
	return false
}

// LastWithin scans from the most recently added entity backwards and
// returns the index of the first one strictly closer than radius to p.
// eligible may be nil. Returns -1 when nothing qualifies.
func (s *Store[T]) LastWithin(p core.Vec, radius float64, eligible func(v *T) bool) int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if eligible != nil && !eligible(&s.items[i]) {
			continue
		}
		if core.Dist(s.items[i].Center(), p) < radius {
			return i
		}
	}
	return -1
}

// FirstWithin is LastWithin scanning in insertion order.
func (s *Store[T]) FirstWithin(p core.Vec, radius float64, eligible func(v *T) bool) int {
	for i := range s.items {
		if eligible != nil && !eligible(&s.items[i]) {
			continue
		}
		if core.Dist(s.items[i].Center(), p) < radius {
			return i
		}
	}
	return -1
}

// Nearest returns the index of the entity with the smallest metric below
// limit. metric reports false for entities that must be skipped. Ties keep
// the earlier entity. Returns -1 when nothing qualifies.
func (s *Store[T]) Nearest(limit float64, metric func(v *T) (float64, bool)) int {
	best := -1
	for i := range s.items {
		d, ok := metric(&s.items[i])
		if !ok {
			continue
		}
		if d < limit {
			limit = d
			best = i
		}
	}
	return best
}
