package config

import (
	_ "embed"

	"github.com/vvendramini/geomerge/internal/spawn"
	"github.com/vvendramini/geomerge/internal/world"
)

//go:embed defaults/geomerge.yaml
var defaultGameYAML []byte

// DefaultConfig returns the hardcoded fallback configuration, matching
// the embedded YAML defaults.
func DefaultConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			OriginLat:          36.9995,
			OriginLng:          -122.0533,
			TileSize:           0.0001,
			NeighborhoodRadius: 8,
			CellPolicy:         string(world.PolicyMemoryful),
		},
		Spawn: SpawnConfig{
			Seed:  1337,
			Bands: spawn.DefaultTable(),
		},
		Rules: RulesConfig{
			InteractionRange: 3,
			Target:           32,
		},
	}
}

// GetDefaultYAML returns the embedded default configuration YAML.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}
