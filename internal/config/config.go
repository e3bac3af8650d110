// Package config provides YAML-based configuration loading for the
// world engine: lattice anchoring, spawn distribution, and game rules.
// All constants are fixed at startup; nothing here is runtime-reconfigurable.
package config

import (
	"fmt"

	"github.com/vvendramini/geomerge/internal/geo"
	"github.com/vvendramini/geomerge/internal/spawn"
	"github.com/vvendramini/geomerge/internal/world"
)

// GameConfig contains all configuration for one world.
type GameConfig struct {
	World WorldConfig `yaml:"world"`
	Spawn SpawnConfig `yaml:"spawn"`
	Rules RulesConfig `yaml:"rules"`
}

// WorldConfig anchors the lattice and sets the cell-memory policy.
type WorldConfig struct {
	OriginLat          float64 `yaml:"origin_lat"`
	OriginLng          float64 `yaml:"origin_lng"`
	TileSize           float64 `yaml:"tile_size"`
	NeighborhoodRadius int     `yaml:"neighborhood_radius"`
	CellPolicy         string  `yaml:"cell_policy"` // "memoryful" or "memoryless"
}

// SpawnConfig seeds the deterministic token distribution.
type SpawnConfig struct {
	Seed  uint64       `yaml:"seed"`
	Bands []spawn.Band `yaml:"bands"`
}

// RulesConfig sets the interaction and win parameters.
type RulesConfig struct {
	InteractionRange int `yaml:"interaction_range"`
	Target           int `yaml:"target"`
}

// Validate checks the configuration for values the engine cannot run with.
func (c GameConfig) Validate() error {
	if c.World.TileSize <= 0 {
		return fmt.Errorf("config: tile_size must be positive, got %v", c.World.TileSize)
	}
	if c.World.NeighborhoodRadius < 0 {
		return fmt.Errorf("config: neighborhood_radius must be non-negative, got %d", c.World.NeighborhoodRadius)
	}
	switch world.Policy(c.World.CellPolicy) {
	case world.PolicyMemoryful, world.PolicyMemoryless:
	default:
		return fmt.Errorf("config: cell_policy must be %q or %q, got %q",
			world.PolicyMemoryful, world.PolicyMemoryless, c.World.CellPolicy)
	}
	if c.Rules.InteractionRange < 0 {
		return fmt.Errorf("config: interaction_range must be non-negative, got %d", c.Rules.InteractionRange)
	}
	if c.Rules.Target < 1 {
		return fmt.Errorf("config: target must be at least 1, got %d", c.Rules.Target)
	}
	if err := spawn.Table(c.Spawn.Bands).Validate(); err != nil {
		return err
	}
	return nil
}

// Mapper builds the coordinate mapper for this configuration.
func (c GameConfig) Mapper() geo.Mapper {
	return geo.NewMapper(geo.LatLng{Lat: c.World.OriginLat, Lng: c.World.OriginLng}, c.World.TileSize)
}

// Generator builds the spawn generator for this configuration.
func (c GameConfig) Generator() spawn.Generator {
	return spawn.NewGenerator(c.Spawn.Seed, spawn.Table(c.Spawn.Bands))
}

// Policy returns the configured cell-memory policy.
func (c GameConfig) Policy() world.Policy {
	return world.Policy(c.World.CellPolicy)
}
