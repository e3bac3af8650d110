package geo

import "testing"

func TestToCell(t *testing.T) {
	m := NewMapper(LatLng{Lat: 0, Lng: 0}, 1.0)

	tests := []struct {
		name     string
		pos      LatLng
		expected Cell
	}{
		{"origin corner", LatLng{0, 0}, Cell{0, 0}},
		{"inside first cell", LatLng{0.5, 0.9}, Cell{0, 0}},
		{"next cell east", LatLng{0.5, 1.0}, Cell{0, 1}},
		{"next cell north", LatLng{1.0, 0.5}, Cell{1, 0}},
		{"negative quadrant", LatLng{-0.1, -0.1}, Cell{-1, -1}},
		{"far negative", LatLng{-2.5, 3.5}, Cell{-3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.ToCell(tt.pos)
			if got != tt.expected {
				t.Errorf("ToCell(%v) = %v, want %v", tt.pos, got, tt.expected)
			}
		})
	}
}

func TestToCellWithOriginAndTileSize(t *testing.T) {
	m := NewMapper(LatLng{Lat: 36.9995, Lng: -122.0533}, 0.0001)

	// The origin itself is cell (0,0).
	if got := m.ToCell(m.Origin); got != (Cell{0, 0}) {
		t.Errorf("ToCell(origin) = %v, want (0,0)", got)
	}

	// One tile north and two east.
	p := LatLng{Lat: 36.9995 + 0.00015, Lng: -122.0533 + 0.00025}
	if got := m.ToCell(p); got != (Cell{1, 2}) {
		t.Errorf("ToCell = %v, want (1,2)", got)
	}
}

func TestFromCellRoundTrip(t *testing.T) {
	m := NewMapper(LatLng{Lat: 36.9995, Lng: -122.0533}, 0.0001)

	positions := []LatLng{
		{36.9995, -122.0533},
		{37.0001, -122.0529},
		{36.9990, -122.0540},
		{37.01234, -122.04321},
	}

	for _, p := range positions {
		cell := m.ToCell(p)
		bounds := m.FromCell(cell)
		if !bounds.Contains(p) {
			t.Errorf("FromCell(ToCell(%v)) = %+v does not contain the position", p, bounds)
		}
		// Neighboring cells must not claim the same position.
		for _, d := range []Delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			if m.FromCell(cell.Add(d)).Contains(p) {
				t.Errorf("neighbor %v of %v also contains %v", cell.Add(d), cell, p)
			}
		}
	}
}

func TestBoundsHalfOpen(t *testing.T) {
	m := NewMapper(LatLng{0, 0}, 1.0)
	b := m.FromCell(Cell{0, 0})

	if !b.Contains(LatLng{0, 0}) {
		t.Error("SW corner should be inside the cell")
	}
	if b.Contains(LatLng{1, 1}) {
		t.Error("NE corner should belong to the neighboring cell")
	}
	if b.Contains(LatLng{0, 1}) || b.Contains(LatLng{1, 0}) {
		t.Error("upper edges should be exclusive")
	}
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Cell
		expected int
	}{
		{"same cell", Cell{0, 0}, Cell{0, 0}, 0},
		{"adjacent orthogonal", Cell{0, 0}, Cell{0, 1}, 1},
		{"adjacent diagonal", Cell{0, 0}, Cell{1, 1}, 1},
		{"asymmetric", Cell{0, 0}, Cell{2, 5}, 5},
		{"negative coords", Cell{-3, -3}, Cell{1, 1}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Chebyshev(tt.a, tt.b); got != tt.expected {
				t.Errorf("Chebyshev(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			// Distance is symmetric.
			if got := Chebyshev(tt.b, tt.a); got != tt.expected {
				t.Errorf("Chebyshev(%v, %v) = %d, want %d", tt.b, tt.a, got, tt.expected)
			}
		})
	}
}

func TestCellKeyUnique(t *testing.T) {
	// Keys that could collide under naive concatenation.
	a := Cell{1, -12}
	b := Cell{-1, 12}
	c := Cell{11, 2}
	if a.Key() == b.Key() || a.Key() == c.Key() || b.Key() == c.Key() {
		t.Errorf("keys must be unique: %q %q %q", a.Key(), b.Key(), c.Key())
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		key     string
		want    Cell
		wantErr bool
	}{
		{"0,0", Cell{0, 0}, false},
		{"1,-12", Cell{1, -12}, false},
		{"-3,7", Cell{-3, 7}, false},
		{"", Cell{}, true},
		{"12", Cell{}, true},
		{"a,b", Cell{}, true},
		{"1,2,3", Cell{}, true},
		{"1,2junk", Cell{}, true},
		{"1x,2", Cell{}, true},
		{"1, 2", Cell{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseKey(tt.key)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseKey(%q) = %v, want error", tt.key, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKey(%q) error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	for _, c := range []Cell{{0, 0}, {5, -3}, {-11, 22}} {
		got, err := ParseKey(c.Key())
		if err != nil {
			t.Fatalf("ParseKey(%q) error: %v", c.Key(), err)
		}
		if got != c {
			t.Errorf("round trip of %v = %v", c, got)
		}
	}
}

func TestCellAddSub(t *testing.T) {
	c := Cell{2, 3}
	d := Delta{DI: -1, DJ: 4}

	moved := c.Add(d)
	if moved != (Cell{1, 7}) {
		t.Errorf("Add = %v, want (1,7)", moved)
	}
	if got := moved.Sub(c); got != d {
		t.Errorf("Sub = %v, want %v", got, d)
	}
	if !(Delta{}).Zero() {
		t.Error("zero delta should report Zero()")
	}
}
