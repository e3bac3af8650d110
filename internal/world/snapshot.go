package world

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SnapshotVersion is the current snapshot format version. Bump when
// the cell entry layout changes.
const SnapshotVersion = 1

// Snapshot is the serialized form of a cell-memory store: every
// materialized entry verbatim, keyed by the canonical "i,j" cell key.
// The storage collaborator owns the actual I/O; this type only
// (de)structures the mapping.
type Snapshot struct {
	Version int                  `yaml:"version"`
	Cells   map[string]CellState `yaml:"cells"`
}

// NewSnapshot returns an empty snapshot at the current version.
func NewSnapshot() Snapshot {
	return Snapshot{
		Version: SnapshotVersion,
		Cells:   make(map[string]CellState),
	}
}

// Empty reports whether the snapshot carries no entries.
func (s Snapshot) Empty() bool {
	return len(s.Cells) == 0
}

// MarshalYAML is implicit via struct tags; EncodeYAML is a convenience
// for debugging dumps and the worlds export command.
func (s Snapshot) EncodeYAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("world: cannot encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeYAML parses a YAML snapshot dump.
func DecodeYAML(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("world: cannot decode snapshot: %w", err)
	}
	if s.Cells == nil {
		s.Cells = make(map[string]CellState)
	}
	return s, nil
}
