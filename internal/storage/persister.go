package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vvendramini/geomerge/internal/session"
	"github.com/vvendramini/geomerge/internal/world"
)

// WorldPersister adapts one named world in the store to the session's
// persistence port. The port has no error returns: persistence
// failures never reach the game, they are logged and the session
// continues.
type WorldPersister struct {
	store  *Store
	world  string
	logger *log.Logger
}

// World returns a persister bound to the named world. A nil logger
// discards failure reports.
func (s *Store) World(name string, logger *log.Logger) *WorldPersister {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &WorldPersister{store: s, world: name, logger: logger}
}

// Load retrieves the persisted snapshot. Returns false when nothing
// usable is stored.
func (p *WorldPersister) Load() (world.Snapshot, bool) {
	cells, err := p.store.LoadSnapshot(p.world)
	if err != nil {
		p.logger.Warn("cannot load world snapshot", "world", p.world, "error", err)
		return world.Snapshot{}, false
	}
	if len(cells) == 0 {
		return world.Snapshot{}, false
	}
	snap := world.NewSnapshot()
	for key, cell := range cells {
		snap.Cells[key] = world.CellState{Value: cell.Value, Collected: cell.Collected}
	}
	return snap, true
}

// Save persists the snapshot, best-effort.
func (p *WorldPersister) Save(snap world.Snapshot) {
	cells := make(map[string]SnapshotCell, len(snap.Cells))
	for key, state := range snap.Cells {
		cells[key] = SnapshotCell{Value: state.Value, Collected: state.Collected}
	}
	if err := p.store.SaveSnapshot(p.world, cells); err != nil {
		p.logger.Warn("cannot save world snapshot", "world", p.world, "error", err)
	}
}

// Clear deletes the persisted snapshot, best-effort.
func (p *WorldPersister) Clear() {
	if err := p.store.ClearSnapshot(p.world); err != nil {
		p.logger.Warn("cannot clear world snapshot", "world", p.world, "error", err)
	}
}

// Ensure WorldPersister implements the session port.
var _ session.Persister = (*WorldPersister)(nil)
