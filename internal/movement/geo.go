package movement

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vvendramini/geomerge/internal/geo"
)

// Sample is one position fix delivered by a source.
type Sample struct {
	Pos geo.LatLng
}

// PositionSource abstracts a continuous real-world position stream:
// browser geolocation, a GPS daemon, or a replayed track. Subscribe
// registers the update and error callbacks; Unsubscribe cancels the
// stream. Sources must stop calling back once Unsubscribe returns.
type PositionSource interface {
	Subscribe(update func(Sample), fail func(error)) error
	Unsubscribe()
}

// Geo converts a position stream into cell-boundary-crossing deltas.
// The first sample after Start is a calibration read that only sets
// the baseline cell. Later samples emit a delta when and only when the
// containing cell changes; sub-tile jitter produces no event. A bad
// sample is logged and skipped without touching the baseline.
type Geo struct {
	mapper geo.Mapper
	source PositionSource
	sink   Sink
	logger *log.Logger

	active     bool
	calibrated bool
	baseline   geo.Cell
}

// NewGeo creates a geolocation controller. A nil logger discards
// transient-error reports.
func NewGeo(m geo.Mapper, source PositionSource, sink Sink, logger *log.Logger) *Geo {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Geo{
		mapper: m,
		source: source,
		sink:   sink,
		logger: logger,
	}
}

// Start subscribes to the position stream. Reports ErrUnavailable when
// the source is absent or refuses the subscription; the controller
// then stays inert. Idempotent while running.
func (g *Geo) Start() error {
	if g.active {
		return nil
	}
	if g.source == nil {
		return ErrUnavailable
	}
	if err := g.source.Subscribe(g.handleUpdate, g.handleError); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	g.active = true
	return nil
}

// Stop cancels the subscription and clears the baseline, so a later
// Start recalibrates from scratch. Safe to call redundantly.
func (g *Geo) Stop() {
	if !g.active {
		return
	}
	g.source.Unsubscribe()
	g.active = false
	g.calibrated = false
}

// Active reports whether the subscription is live.
func (g *Geo) Active() bool {
	return g.active
}

func (g *Geo) handleUpdate(s Sample) {
	if !g.active {
		return
	}
	cell := g.mapper.ToCell(s.Pos)
	if !g.calibrated {
		g.baseline = cell
		g.calibrated = true
		return
	}
	delta := cell.Sub(g.baseline)
	if delta.Zero() {
		return
	}
	g.baseline = cell
	if g.sink != nil {
		g.sink(delta)
	}
}

func (g *Geo) handleError(err error) {
	// A single bad fix is not fatal: keep the baseline, wait for the
	// next good sample.
	g.logger.Warn("transient position error", "error", err)
}
