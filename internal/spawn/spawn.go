// Package spawn decides which cells of the lattice carry a token.
// The decision is a pure function of the cell coordinate and a fixed
// world seed, so the same world layout reproduces across process runs
// and across machines.
package spawn

import (
	"errors"
	"fmt"

	"github.com/vvendramini/geomerge/internal/geo"
)

// Band maps the cumulative probability interval below Upper to a token
// value. Bands are evaluated in order; the residual mass above the last
// band spawns nothing.
type Band struct {
	Upper float64 `yaml:"upper"`
	Value int     `yaml:"value"`
}

// Table is an ordered list of cumulative probability bands.
type Table []Band

// DefaultTable returns the standard token distribution: roughly a
// quarter of all cells carry a token, weighted toward small values.
func DefaultTable() Table {
	return Table{
		{Upper: 0.10, Value: 1},
		{Upper: 0.18, Value: 2},
		{Upper: 0.22, Value: 4},
		{Upper: 0.24, Value: 8},
		{Upper: 0.245, Value: 16},
	}
}

// Validate checks that band boundaries are strictly increasing, stay
// within (0, 1], and that every band carries a positive token value.
func (t Table) Validate() error {
	if len(t) == 0 {
		return errors.New("spawn: table has no bands")
	}
	prev := 0.0
	for i, b := range t {
		if b.Upper <= prev {
			return fmt.Errorf("spawn: band %d upper bound %v not above previous %v", i, b.Upper, prev)
		}
		if b.Upper > 1 {
			return fmt.Errorf("spawn: band %d upper bound %v exceeds 1", i, b.Upper)
		}
		if b.Value <= 0 {
			return fmt.Errorf("spawn: band %d has non-positive value %d", i, b.Value)
		}
		prev = b.Upper
	}
	return nil
}

// lookup maps a roll in [0,1) through the bands.
func (t Table) lookup(r float64) (int, bool) {
	for _, b := range t {
		if r < b.Upper {
			return b.Value, true
		}
	}
	return 0, false
}

// Generator produces the token layout for one world. It holds no
// mutable state; every call recomputes from the seed.
type Generator struct {
	Seed  uint64
	Table Table
}

// NewGenerator creates a generator with the given seed and table.
func NewGenerator(seed uint64, table Table) Generator {
	return Generator{Seed: seed, Table: table}
}

// Roll returns the deterministic spawn roll for a cell in [0, 1).
// The coordinate is folded into the seed and run through an
// avalanche mixer so neighboring cells produce unrelated rolls.
func (g Generator) Roll(c geo.Cell) float64 {
	h := g.Seed
	h ^= uint64(int64(c.I)) * 0x9E3779B97F4A7C15
	h ^= rotl(uint64(int64(c.J)), 31) * 0xBF58476D1CE4E5B9
	h = mix64(h)
	// Top 53 bits give a uniform float in [0, 1).
	return float64(h>>11) / (1 << 53)
}

// Value returns the token value spawned at the cell, or false when the
// cell is empty. Callers are expected to cache the result together
// with their own collected flag; the generator cannot know what has
// been picked up.
func (g Generator) Value(c geo.Cell) (int, bool) {
	return g.Table.lookup(g.Roll(c))
}

// mix64 is the splitmix64 finalizer. It turns the weakly mixed
// coordinate fold into a uniformly distributed word.
func mix64(h uint64) uint64 {
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return h
}

func rotl(x uint64, k uint) uint64 {
	return x<<k | x>>(64-k)
}
