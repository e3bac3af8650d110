package movement

import "github.com/vvendramini/geomerge/internal/geo"

// Direction is one of the four discrete button triggers.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() geo.Delta {
	switch d {
	case North:
		return geo.Delta{DI: 1}
	case South:
		return geo.Delta{DI: -1}
	case East:
		return geo.Delta{DJ: 1}
	case West:
		return geo.Delta{DJ: -1}
	default:
		return geo.Delta{}
	}
}

// Buttons is the discrete movement controller: four named triggers,
// each firing a one-cell delta. Start arms the triggers, Stop disarms
// them; a trigger on a stopped controller does nothing.
type Buttons struct {
	sink   Sink
	active bool
}

// NewButtons creates a button controller delivering into sink.
func NewButtons(sink Sink) *Buttons {
	return &Buttons{sink: sink}
}

// Start arms the triggers. Always succeeds.
func (b *Buttons) Start() error {
	b.active = true
	return nil
}

// Stop disarms the triggers.
func (b *Buttons) Stop() {
	b.active = false
}

// Active reports whether the triggers are armed.
func (b *Buttons) Active() bool {
	return b.active
}

// Trigger fires one direction. Inert unless started.
func (b *Buttons) Trigger(d Direction) {
	if !b.active || b.sink == nil {
		return
	}
	delta := d.Delta()
	if delta.Zero() {
		return
	}
	b.sink(delta)
}
