// Package movement turns input sources into relative cell deltas.
// A controller owns one input source; exactly one controller is active
// at a time, and the session enforces stop-before-start when switching.
package movement

import (
	"errors"

	"github.com/vvendramini/geomerge/internal/geo"
)

// ErrUnavailable is reported once at Start when the underlying input
// capability is absent or denied. The controller stays inert.
var ErrUnavailable = errors.New("movement: position capability unavailable")

// Sink receives the deltas a controller emits. The session supplies
// one at construction; controllers never call it after Stop.
type Sink func(geo.Delta)

// Controller is the start/stop capability shared by all input sources.
// Both methods are idempotent: redundant calls are harmless, and no
// delta is emitted after Stop returns.
type Controller interface {
	Start() error
	Stop()
}
