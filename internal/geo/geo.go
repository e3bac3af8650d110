// Package geo maps real-world positions onto an infinite integer lattice.
// It contains no external dependencies to keep the conversion logic pure
// and testable.
package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LatLng is a real-world position in decimal degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// Cell identifies one lattice tile by its integer coordinates.
// I follows latitude, J follows longitude.
type Cell struct {
	I int
	J int
}

// Delta is a relative cell offset emitted by movement controllers.
type Delta struct {
	DI int
	DJ int
}

// Zero reports whether the delta moves nowhere.
func (d Delta) Zero() bool {
	return d.DI == 0 && d.DJ == 0
}

// Add returns the cell offset by the given delta.
func (c Cell) Add(d Delta) Cell {
	return Cell{I: c.I + d.DI, J: c.J + d.DJ}
}

// Sub returns the delta that moves from other to c.
func (c Cell) Sub(other Cell) Delta {
	return Delta{DI: c.I - other.I, DJ: c.J - other.J}
}

// Key returns the canonical string identity of the cell, used as a
// map key in snapshots and storage rows.
func (c Cell) Key() string {
	return fmt.Sprintf("%d,%d", c.I, c.J)
}

// String returns a human-readable form of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.I, c.J)
}

// ParseKey parses a canonical "i,j" key back into a cell. The whole
// key must be consumed: trailing bytes after the coordinates make the
// key malformed.
func ParseKey(key string) (Cell, error) {
	left, right, found := strings.Cut(key, ",")
	if !found {
		return Cell{}, fmt.Errorf("geo: malformed cell key %q", key)
	}
	i, err := strconv.Atoi(left)
	if err != nil {
		return Cell{}, fmt.Errorf("geo: malformed cell key %q: %w", key, err)
	}
	j, err := strconv.Atoi(right)
	if err != nil {
		return Cell{}, fmt.Errorf("geo: malformed cell key %q: %w", key, err)
	}
	return Cell{I: i, J: j}, nil
}

// Bounds is the rectangular real-world region covered by one cell.
// The rectangle is half-open: the SW corner is inside, the NE corner
// belongs to the neighboring cells.
type Bounds struct {
	SW LatLng
	NE LatLng
}

// Contains reports whether the position lies within the bounds.
func (b Bounds) Contains(p LatLng) bool {
	return p.Lat >= b.SW.Lat && p.Lat < b.NE.Lat &&
		p.Lng >= b.SW.Lng && p.Lng < b.NE.Lng
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() LatLng {
	return LatLng{
		Lat: (b.SW.Lat + b.NE.Lat) / 2,
		Lng: (b.SW.Lng + b.NE.Lng) / 2,
	}
}

// Mapper converts between real-world positions and lattice cells.
// The lattice is anchored at Origin and each cell spans TileSize
// degrees on both axes.
type Mapper struct {
	Origin   LatLng
	TileSize float64
}

// NewMapper creates a mapper for the given origin and tile size.
func NewMapper(origin LatLng, tileSize float64) Mapper {
	return Mapper{Origin: origin, TileSize: tileSize}
}

// ToCell returns the cell containing the given position.
func (m Mapper) ToCell(p LatLng) Cell {
	return Cell{
		I: int(math.Floor((p.Lat - m.Origin.Lat) / m.TileSize)),
		J: int(math.Floor((p.Lng - m.Origin.Lng) / m.TileSize)),
	}
}

// FromCell returns the real-world bounds of the given cell.
// Inverse-consistent with ToCell: FromCell(ToCell(p)).Contains(p)
// holds for any position p.
func (m Mapper) FromCell(c Cell) Bounds {
	return Bounds{
		SW: LatLng{
			Lat: m.Origin.Lat + float64(c.I)*m.TileSize,
			Lng: m.Origin.Lng + float64(c.J)*m.TileSize,
		},
		NE: LatLng{
			Lat: m.Origin.Lat + float64(c.I+1)*m.TileSize,
			Lng: m.Origin.Lng + float64(c.J+1)*m.TileSize,
		},
	}
}

// Chebyshev returns the chessboard distance between two cells.
// Used for interaction-range gating: diagonal neighbors count as
// distance 1.
func Chebyshev(a, b Cell) int {
	di := abs(a.I - b.I)
	dj := abs(a.J - b.J)
	if di > dj {
		return di
	}
	return dj
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
