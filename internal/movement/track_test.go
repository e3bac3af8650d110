package movement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vvendramini/geomerge/internal/geo"
)

func TestLoadTrack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walk.yaml")
	data := []byte(`
name: campus loop
points:
  - lat: 36.9995
    lng: -122.0533
  - lat: 36.9997
    lng: -122.0531
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	track, err := LoadTrack(path)
	if err != nil {
		t.Fatalf("LoadTrack() failed: %v", err)
	}
	if track.Name != "campus loop" || len(track.Points) != 2 {
		t.Errorf("track = %+v", track)
	}
	if track.Points[1].Lat != 36.9997 {
		t.Errorf("second point lat = %v", track.Points[1].Lat)
	}
}

func TestLoadTrackErrors(t *testing.T) {
	if _, err := LoadTrack(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	os.WriteFile(empty, []byte("name: void\npoints: []\n"), 0o600)
	if _, err := LoadTrack(empty); err == nil {
		t.Error("track without points should fail")
	}
}

func TestTrackSourceReplay(t *testing.T) {
	track := Track{Points: []TrackPoint{
		{Lat: 0.5, Lng: 0.5},
		{Lat: 1.5, Lng: 0.5},
		{Lat: 1.5, Lng: 1.5},
	}}
	src := NewTrackSource(track)

	// Advance before Subscribe is a no-op.
	if src.Advance() {
		t.Error("Advance without subscriber should return false")
	}

	var got []Sample
	src.Subscribe(func(s Sample) { got = append(got, s) }, nil)

	steps := 0
	for src.Advance() {
		steps++
	}
	if steps != 3 || len(got) != 3 {
		t.Fatalf("delivered %d samples in %d steps, want 3", len(got), steps)
	}
	if src.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", src.Remaining())
	}
	if got[2].Pos != (geo.LatLng{Lat: 1.5, Lng: 1.5}) {
		t.Errorf("last sample = %+v", got[2])
	}

	// Exhausted source stays exhausted.
	if src.Advance() {
		t.Error("Advance past the end should return false")
	}
}

func TestTrackSourceDrivesGeoController(t *testing.T) {
	m := geo.NewMapper(geo.LatLng{}, 1.0)
	track := Track{Points: []TrackPoint{
		{Lat: 0.5, Lng: 0.5}, // calibration
		{Lat: 0.6, Lng: 0.6}, // jitter, same cell
		{Lat: 1.5, Lng: 0.5}, // north crossing
		{Lat: 1.5, Lng: 1.5}, // east crossing
	}}
	src := NewTrackSource(track)

	var deltas []geo.Delta
	g := NewGeo(m, src, func(d geo.Delta) { deltas = append(deltas, d) }, nil)
	if err := g.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	for src.Advance() {
	}

	want := []geo.Delta{{DI: 1}, {DJ: 1}}
	if len(deltas) != len(want) {
		t.Fatalf("deltas = %v, want %v", deltas, want)
	}
	for i := range want {
		if deltas[i] != want[i] {
			t.Errorf("delta %d = %v, want %v", i, deltas[i], want[i])
		}
	}
}

func TestJitterStaysSubTile(t *testing.T) {
	track := Track{Points: []TrackPoint{
		{Lat: 0.5, Lng: 0.5},
		{Lat: 1.5, Lng: 1.5},
	}}
	jittered := track.Jitter(0.05, 99)

	if len(jittered.Points) != 6 {
		t.Fatalf("jittered track has %d points, want 6", len(jittered.Points))
	}
	// Deterministic: same seed, same noise.
	again := track.Jitter(0.05, 99)
	for i := range jittered.Points {
		if jittered.Points[i] != again.Points[i] {
			t.Fatalf("jitter is not deterministic at point %d", i)
		}
	}
	// Each jittered copy stays within amplitude of its original.
	for i, p := range jittered.Points {
		orig := track.Points[i/3]
		if dLat := p.Lat - orig.Lat; dLat > 0.05 || dLat < -0.05 {
			t.Errorf("point %d lat offset %v exceeds amplitude", i, dLat)
		}
		if dLng := p.Lng - orig.Lng; dLng > 0.05 || dLng < -0.05 {
			t.Errorf("point %d lng offset %v exceeds amplitude", i, dLng)
		}
	}

	// A jittered replay produces the same crossings as the clean one.
	m := geo.NewMapper(geo.LatLng{}, 1.0)
	var deltas []geo.Delta
	src := NewTrackSource(jittered)
	g := NewGeo(m, src, func(d geo.Delta) { deltas = append(deltas, d) }, nil)
	g.Start()
	for src.Advance() {
	}
	if len(deltas) != 1 || deltas[0] != (geo.Delta{DI: 1, DJ: 1}) {
		t.Errorf("jittered replay deltas = %v, want one (1,1)", deltas)
	}
}
