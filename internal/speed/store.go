// Package speed holds the per-body speed multipliers shared by the animated
// scene and the control panel.
package speed

import (
	"maps"
	"sort"
	"sync/atomic"

	"github.com/san-kum/orrery/internal/catalog"
)

// DefaultMultiplier applies to any body without an entry.
const DefaultMultiplier = 1.0

// Speeds is a mapping of body id to multiplier. Snapshots handed out by a
// Store are private copies; writing to one never reaches the store.
type Speeds map[string]float64

// Get returns the multiplier for id, or DefaultMultiplier when absent.
func (s Speeds) Get(id string) float64 {
	if v, ok := s[id]; ok {
		return v
	}
	return DefaultMultiplier
}

// Speed makes a snapshot usable as a Reader.
func (s Speeds) Speed(id string) float64 { return s.Get(id) }

// IDs returns the ids present in the snapshot, sorted.
func (s Speeds) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reader is the read side of the store. The scene depends only on this.
type Reader interface {
	Speed(id string) float64
}

// Store publishes immutable Speeds snapshots. Each Set swaps in a new
// snapshot, so a frame that took a snapshot sees one consistent mapping.
type Store struct {
	cur atomic.Pointer[Speeds]
}

// New returns a store seeded with a copy of initial.
func New(initial map[string]float64) *Store {
	snap := make(Speeds, len(initial))
	for k, v := range initial {
		snap[k] = v
	}
	s := &Store{}
	s.cur.Store(&snap)
	return s
}

// Default returns a store seeded with the catalog's default speeds. It backs
// an animation running without a control panel.
func Default() *Store {
	return New(catalog.DefaultSpeeds())
}

// Snapshot returns a copy of the latest committed mapping.
func (s *Store) Snapshot() Speeds {
	return maps.Clone(*s.cur.Load())
}

// Speed returns the multiplier for id, defaulting to DefaultMultiplier.
func (s *Store) Speed(id string) float64 {
	return s.cur.Load().Get(id)
}

// Set replaces the entry for id and keeps every other entry. Unknown ids are
// inserted.
func (s *Store) Set(id string, value float64) {
	for {
		old := s.cur.Load()
		next := make(Speeds, len(*old)+1)
		for k, v := range *old {
			next[k] = v
		}
		next[id] = value
		if s.cur.CompareAndSwap(old, &next) {
			return
		}
	}
}
