package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vvendramini/geomerge/internal/geo"
	"github.com/vvendramini/geomerge/internal/spawn"
	"github.com/vvendramini/geomerge/internal/world"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Policy() != world.PolicyMemoryful {
		t.Errorf("default policy = %v, want memoryful", cfg.Policy())
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	// The user may have a real ~/.geomerge/config.yaml; only compare
	// when the loader fell through to defaults.
	if _, statErr := os.Stat(userConfigPath("config.yaml")); statErr == nil {
		t.Skip("user config present, embedded defaults not exercised")
	}
	hard := DefaultConfig()
	if loaded.World != hard.World || loaded.Rules != hard.Rules {
		t.Errorf("embedded defaults diverge from DefaultConfig():\n%+v\n%+v", loaded, hard)
	}
	if loaded.Spawn.Seed != hard.Spawn.Seed || len(loaded.Spawn.Bands) != len(hard.Spawn.Bands) {
		t.Errorf("spawn defaults diverge: %+v vs %+v", loaded.Spawn, hard.Spawn)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`
world:
  origin_lat: 0
  origin_lng: 0
  tile_size: 1.0
  neighborhood_radius: 2
  cell_policy: memoryless
spawn:
  seed: 7
  bands:
    - upper: 0.5
      value: 1
rules:
  interaction_range: 1
  target: 8
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.World.TileSize != 1.0 || cfg.Rules.Target != 8 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Policy() != world.PolicyMemoryless {
		t.Errorf("policy = %v, want memoryless", cfg.Policy())
	}
	if got := cfg.Mapper().ToCell(geo.LatLng{Lat: 1.5, Lng: -0.5}); got != (geo.Cell{I: 1, J: -1}) {
		t.Errorf("Mapper().ToCell = %v, want (1,-1)", got)
	}
	gen := cfg.Generator()
	_, ok := gen.Value(geo.Cell{})
	if want := gen.Roll(geo.Cell{}) < 0.5; ok != want {
		t.Error("Generator() should honor the configured single band")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}
}

func TestValidateRejections(t *testing.T) {
	base := DefaultConfig()

	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero tile size", func(c *GameConfig) { c.World.TileSize = 0 }},
		{"negative radius", func(c *GameConfig) { c.World.NeighborhoodRadius = -1 }},
		{"bad policy", func(c *GameConfig) { c.World.CellPolicy = "amnesiac" }},
		{"negative range", func(c *GameConfig) { c.Rules.InteractionRange = -1 }},
		{"zero target", func(c *GameConfig) { c.Rules.Target = 0 }},
		{"no bands", func(c *GameConfig) { c.Spawn.Bands = nil }},
		{"bands above one", func(c *GameConfig) { c.Spawn.Bands[len(c.Spawn.Bands)-1].Upper = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Spawn.Bands = append([]spawn.Band(nil), base.Spawn.Bands...)
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should have rejected the config")
			}
		})
	}
}
