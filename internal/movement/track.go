package movement

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vvendramini/geomerge/internal/geo"
)

// TrackPoint is one recorded position in a walk track file.
type TrackPoint struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// Track is a recorded sequence of real-world positions, used to replay
// a walk through the geolocation controller without live hardware.
type Track struct {
	Name   string       `yaml:"name"`
	Points []TrackPoint `yaml:"points"`
}

// LoadTrack reads a YAML track file.
func LoadTrack(path string) (Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Track{}, fmt.Errorf("movement: cannot read track %s: %w", path, err)
	}
	var t Track
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Track{}, fmt.Errorf("movement: cannot parse track %s: %w", path, err)
	}
	if len(t.Points) == 0 {
		return Track{}, fmt.Errorf("movement: track %s has no points", path)
	}
	return t, nil
}

// Jitter returns a track with deterministic sub-tile noise: each point
// is followed by two copies offset by less than amplitude on both
// axes. Replaying a jittered track proves that only tile-boundary
// crossings move the player. Amplitude should stay below half the
// tile size.
func (t Track) Jitter(amplitude float64, seed uint64) Track {
	out := Track{Name: t.Name, Points: make([]TrackPoint, 0, len(t.Points)*3)}
	h := seed | 1
	next := func() float64 {
		// xorshift64, mapped into (-amplitude, amplitude).
		h ^= h << 13
		h ^= h >> 7
		h ^= h << 17
		return (float64(h>>11)/(1<<53) - 0.5) * 2 * amplitude
	}
	for _, p := range t.Points {
		out.Points = append(out.Points, p)
		for k := 0; k < 2; k++ {
			out.Points = append(out.Points, TrackPoint{
				Lat: p.Lat + next(),
				Lng: p.Lng + next(),
			})
		}
	}
	return out
}

// TrackSource replays a track as a PositionSource. Samples are not
// delivered on a timer of their own: the owner calls Advance for each
// step, so delivery stays inside the caller's single event path.
type TrackSource struct {
	track  Track
	pos    int
	update func(Sample)
	fail   func(error)
}

// NewTrackSource creates a replay source over the track.
func NewTrackSource(track Track) *TrackSource {
	return &TrackSource{track: track}
}

// Subscribe registers the callbacks and rewinds the replay.
func (s *TrackSource) Subscribe(update func(Sample), fail func(error)) error {
	s.update = update
	s.fail = fail
	s.pos = 0
	return nil
}

// Unsubscribe detaches the callbacks; Advance becomes a no-op.
func (s *TrackSource) Unsubscribe() {
	s.update = nil
	s.fail = nil
}

// Advance delivers the next track point to the subscriber. Returns
// false when the track is exhausted or nobody is subscribed.
func (s *TrackSource) Advance() bool {
	if s.update == nil || s.pos >= len(s.track.Points) {
		return false
	}
	p := s.track.Points[s.pos]
	s.pos++
	s.update(Sample{Pos: geo.LatLng{Lat: p.Lat, Lng: p.Lng}})
	return true
}

// Remaining returns the number of undelivered points.
func (s *TrackSource) Remaining() int {
	return len(s.track.Points) - s.pos
}
