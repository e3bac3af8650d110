// Package session orchestrates the world-state engine: it owns the
// player cell, the single held-token slot, and the cell-memory store,
// and drives redraw, status, and persistence collaborators through
// narrow interfaces. All transitions run synchronously inside one
// event handler; the session has no internal concurrency.
package session

import (
	"github.com/vvendramini/geomerge/internal/config"
	"github.com/vvendramini/geomerge/internal/geo"
	"github.com/vvendramini/geomerge/internal/movement"
	"github.com/vvendramini/geomerge/internal/world"
)

// Renderer is the rendering collaborator. Redraw is called whenever
// the visible window or any cell state changes.
type Renderer interface {
	Redraw(cells []world.WindowCell, player geo.Cell)
}

// StatusSink receives the held token and win flag after every state
// transition. Held 0 means an empty hand.
type StatusSink interface {
	Status(held int, won bool)
}

// Persister is the optional persistence collaborator. It owns the
// actual storage I/O; the session only hands it snapshots.
type Persister interface {
	Load() (world.Snapshot, bool)
	Save(world.Snapshot)
	Clear()
}

// Session is the merge state machine. The held-token slot is either
// empty (held == 0) or holding a value; transitions are triggered by
// cell interactions and movement deltas.
type Session struct {
	cfg    config.GameConfig
	mapper geo.Mapper
	store  world.Store

	player geo.Cell
	held   int
	won    bool

	controller movement.Controller
	renderer   Renderer
	status     StatusSink
	persister  Persister
}

// New creates a session over the given store. The player starts at
// the lattice origin.
func New(cfg config.GameConfig, store world.Store) *Session {
	return &Session{
		cfg:    cfg,
		mapper: cfg.Mapper(),
		store:  store,
	}
}

// AttachRenderer wires the rendering collaborator.
func (s *Session) AttachRenderer(r Renderer) { s.renderer = r }

// AttachStatus wires the status collaborator.
func (s *Session) AttachStatus(st StatusSink) { s.status = st }

// AttachPersister wires the persistence collaborator.
func (s *Session) AttachPersister(p Persister) { s.persister = p }

// Restore merges a persisted snapshot into the store before first
// draw. Memoryless worlds have nothing durable to restore, so the
// call is a no-op for them.
func (s *Session) Restore() {
	if s.persister == nil || s.store.Policy() != world.PolicyMemoryful {
		return
	}
	if snap, ok := s.persister.Load(); ok && !snap.Empty() {
		s.store.Hydrate(snap)
	}
}

// Player returns the current player cell.
func (s *Session) Player() geo.Cell { return s.player }

// Held returns the held token value, 0 for an empty hand.
func (s *Session) Held() int { return s.held }

// Won reports whether the win condition has been reached. The flag is
// sticky: play continues after winning and further merges keep it set.
func (s *Session) Won() bool { return s.won }

// Target returns the configured win target.
func (s *Session) Target() int { return s.cfg.Rules.Target }

// Mapper returns the coordinate mapper the session projects with.
func (s *Session) Mapper() geo.Mapper { return s.mapper }

// Radius returns the configured neighborhood radius.
func (s *Session) Radius() int { return s.cfg.World.NeighborhoodRadius }

// Range returns the configured interaction range.
func (s *Session) Range() int { return s.cfg.Rules.InteractionRange }

// Window returns the currently visible neighborhood around the player.
func (s *Session) Window() []world.WindowCell {
	return world.Window(s.store, s.mapper, s.player, s.cfg.World.NeighborhoodRadius)
}

// Interact processes a click on a target cell, running the pickup and
// merge state machine. Rejections report a sentinel error and change
// nothing.
func (s *Session) Interact(target geo.Cell) error {
	if geo.Chebyshev(s.player, target) > s.cfg.Rules.InteractionRange {
		return ErrOutOfRange
	}

	state := s.store.Get(target)
	if !state.HasToken() {
		return ErrEmptyCell
	}

	switch {
	case s.held == 0:
		// Empty hand: pick the token up.
		s.held = state.Value
	case s.held == state.Value:
		// Equal values merge into a doubled token. No upper bound:
		// doubling past the target is allowed.
		s.held *= 2
	default:
		return ErrValueMismatch
	}

	s.store.MarkCollected(target)
	if s.held >= s.cfg.Rules.Target {
		s.won = true
	}

	s.persist()
	s.redraw()
	s.notify()
	return nil
}

// ApplyDelta moves the player by the given cell offset. Movement is
// unconditional and cannot fail: the view recenters and the visible
// window is recomputed. Its signature matches movement.Sink so the
// method can feed a controller directly.
func (s *Session) ApplyDelta(d geo.Delta) {
	s.player = s.player.Add(d)
	s.store.SetWindow(s.player, s.cfg.World.NeighborhoodRadius)
	s.redraw()
	s.notify()
}

// Use switches the active movement controller: the outgoing controller
// is always stopped before the incoming one starts, so no two
// controllers ever emit concurrently. A nil controller just detaches.
// Start errors (an unavailable capability) leave the new controller
// attached but inert.
func (s *Session) Use(ctrl movement.Controller) error {
	if s.controller != nil {
		s.controller.Stop()
	}
	s.controller = ctrl
	if ctrl == nil {
		return nil
	}
	return ctrl.Start()
}

// Reset returns the world to its initial layout: store emptied, hand
// emptied, win flag cleared, persisted snapshot deleted. Because the
// spawn function is pure, revisited cells reproduce their original
// values.
func (s *Session) Reset() {
	s.store.Reset()
	s.held = 0
	s.won = false
	if s.persister != nil {
		s.persister.Clear()
	}
	s.redraw()
	s.notify()
}

// Close stops the active controller, if any.
func (s *Session) Close() {
	if s.controller != nil {
		s.controller.Stop()
		s.controller = nil
	}
}

func (s *Session) redraw() {
	if s.renderer != nil {
		s.renderer.Redraw(s.Window(), s.player)
	}
}

func (s *Session) notify() {
	if s.status != nil {
		s.status.Status(s.held, s.won)
	}
}

// persist saves the store after a mutating transition. Entries that
// were only materialized, never mutated, regenerate identically from
// the spawn function, so movement alone does not trigger a save.
func (s *Session) persist() {
	if s.persister == nil || s.store.Policy() != world.PolicyMemoryful {
		return
	}
	s.persister.Save(s.store.Export())
}
