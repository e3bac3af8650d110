// Package world holds the mutable state of the lattice: which cells
// have been resolved, what they spawned, and what has been collected.
// Two store policies exist. The memoryful store remembers every cell it
// has ever resolved, so collected cells stay collected when the player
// wanders off and returns. The memoryless store re-derives everything
// from the spawn generator and forgets mutations as soon as a cell
// leaves the visible window.
package world

import (
	"github.com/vvendramini/geomerge/internal/geo"
	"github.com/vvendramini/geomerge/internal/spawn"
)

// Policy names the cell-memory behavior of a store.
type Policy string

const (
	PolicyMemoryful  Policy = "memoryful"
	PolicyMemoryless Policy = "memoryless"
)

// CellState is the resolved state of one cell. Value is the token the
// cell spawned (0 for none); once Collected flips true the stored value
// is frozen for inspection but the cell never yields a token again.
type CellState struct {
	Value     int  `yaml:"value"`
	Collected bool `yaml:"collected"`
}

// HasToken reports whether the cell currently offers a pickable token.
func (s CellState) HasToken() bool {
	return s.Value > 0 && !s.Collected
}

// Store is the cell-memory contract the game session drives.
type Store interface {
	// Get resolves the cell state, consulting the spawn generator
	// for cells seen for the first time.
	Get(c geo.Cell) CellState

	// MarkCollected flips the collected flag on a cell that holds an
	// uncollected token. Calls on empty or already-collected cells
	// are no-ops; the session checks preconditions before mutating.
	MarkCollected(c geo.Cell)

	// SetWindow tells the store where the visible window currently
	// is. The memoryless store drops mutations outside it.
	SetWindow(center geo.Cell, radius int)

	// Reset clears all remembered state. Because spawning is pure,
	// a reset restores the original world layout.
	Reset()

	// Export snapshots all remembered entries for persistence.
	Export() Snapshot

	// Hydrate replaces the store contents with a snapshot.
	Hydrate(Snapshot)

	// Policy identifies the cell-memory behavior.
	Policy() Policy
}

// MemoryStore is the memoryful policy: entries live forever once
// materialized. Memory grows with the explored area, which is the
// price of cells that stay collected off-window.
type MemoryStore struct {
	gen   spawn.Generator
	cells map[geo.Cell]CellState
}

// NewMemoryStore creates an empty memoryful store backed by the
// given generator.
func NewMemoryStore(gen spawn.Generator) *MemoryStore {
	return &MemoryStore{
		gen:   gen,
		cells: make(map[geo.Cell]CellState),
	}
}

// Get returns the remembered state, materializing the cell from the
// generator on first reference. Idempotent thereafter.
func (s *MemoryStore) Get(c geo.Cell) CellState {
	if state, ok := s.cells[c]; ok {
		return state
	}
	value, _ := s.gen.Value(c)
	state := CellState{Value: value}
	s.cells[c] = state
	return state
}

// MarkCollected flips the collected flag if the cell holds a token.
func (s *MemoryStore) MarkCollected(c geo.Cell) {
	state, ok := s.cells[c]
	if !ok || !state.HasToken() {
		return
	}
	state.Collected = true
	s.cells[c] = state
}

// SetWindow is a no-op: memoryful entries are never evicted.
func (s *MemoryStore) SetWindow(geo.Cell, int) {}

// Reset drops every entry. Subsequent Gets re-seed from the pure
// generator and reproduce the original spawn layout.
func (s *MemoryStore) Reset() {
	s.cells = make(map[geo.Cell]CellState)
}

// Export copies all materialized entries into a snapshot.
func (s *MemoryStore) Export() Snapshot {
	snap := NewSnapshot()
	for c, state := range s.cells {
		snap.Cells[c.Key()] = state
	}
	return snap
}

// Hydrate replaces the store contents with the snapshot entries.
// Malformed keys are skipped.
func (s *MemoryStore) Hydrate(snap Snapshot) {
	s.cells = make(map[geo.Cell]CellState, len(snap.Cells))
	for key, state := range snap.Cells {
		c, err := geo.ParseKey(key)
		if err != nil {
			continue
		}
		s.cells[c] = state
	}
}

// Policy returns PolicyMemoryful.
func (s *MemoryStore) Policy() Policy { return PolicyMemoryful }

// Len returns the number of materialized entries.
func (s *MemoryStore) Len() int { return len(s.cells) }

// EphemeralStore is the memoryless policy: cell state is re-derived
// from the generator on every access, and collected flags survive
// only while the cell stays inside the visible window.
type EphemeralStore struct {
	gen     spawn.Generator
	overlay map[geo.Cell]CellState
}

// NewEphemeralStore creates a memoryless store backed by the given
// generator.
func NewEphemeralStore(gen spawn.Generator) *EphemeralStore {
	return &EphemeralStore{
		gen:     gen,
		overlay: make(map[geo.Cell]CellState),
	}
}

// Get re-derives the cell from the generator unless an in-window
// mutation shadows it.
func (s *EphemeralStore) Get(c geo.Cell) CellState {
	if state, ok := s.overlay[c]; ok {
		return state
	}
	value, _ := s.gen.Value(c)
	return CellState{Value: value}
}

// MarkCollected records the mutation in the window-lifetime overlay.
func (s *EphemeralStore) MarkCollected(c geo.Cell) {
	state := s.Get(c)
	if !state.HasToken() {
		return
	}
	state.Collected = true
	s.overlay[c] = state
}

// SetWindow discards overlay entries that fell outside the window;
// those cells regenerate from scratch on the next visit.
func (s *EphemeralStore) SetWindow(center geo.Cell, radius int) {
	for c := range s.overlay {
		if geo.Chebyshev(center, c) > radius {
			delete(s.overlay, c)
		}
	}
}

// Reset clears the overlay.
func (s *EphemeralStore) Reset() {
	s.overlay = make(map[geo.Cell]CellState)
}

// Export returns an empty snapshot: a memoryless world has nothing
// durable to persist.
func (s *EphemeralStore) Export() Snapshot { return NewSnapshot() }

// Hydrate is a no-op for the memoryless policy.
func (s *EphemeralStore) Hydrate(Snapshot) {}

// Policy returns PolicyMemoryless.
func (s *EphemeralStore) Policy() Policy { return PolicyMemoryless }

// New creates a store for the given policy. Unknown policies fall
// back to memoryful.
func New(policy Policy, gen spawn.Generator) Store {
	if policy == PolicyMemoryless {
		return NewEphemeralStore(gen)
	}
	return NewMemoryStore(gen)
}
