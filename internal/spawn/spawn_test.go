package spawn

import (
	"testing"

	"github.com/vvendramini/geomerge/internal/geo"
)

func TestRollDeterministic(t *testing.T) {
	g := NewGenerator(42, DefaultTable())

	cells := []geo.Cell{{I: 0, J: 0}, {I: 1, J: 1}, {I: -5, J: 3}, {I: 1000, J: -1000}}
	for _, c := range cells {
		first := g.Roll(c)
		for i := 0; i < 5; i++ {
			if got := g.Roll(c); got != first {
				t.Fatalf("Roll(%v) changed between calls: %v != %v", c, got, first)
			}
		}
		// A fresh generator with the same seed agrees.
		if got := NewGenerator(42, DefaultTable()).Roll(c); got != first {
			t.Errorf("Roll(%v) differs across generator instances", c)
		}
	}
}

func TestRollRange(t *testing.T) {
	g := NewGenerator(7, DefaultTable())
	for i := -50; i < 50; i++ {
		for j := -50; j < 50; j++ {
			r := g.Roll(geo.Cell{I: i, J: j})
			if r < 0 || r >= 1 {
				t.Fatalf("Roll(%d,%d) = %v out of [0,1)", i, j, r)
			}
		}
	}
}

func TestSeedChangesLayout(t *testing.T) {
	a := NewGenerator(1, DefaultTable())
	b := NewGenerator(2, DefaultTable())

	same := 0
	total := 0
	for i := 0; i < 32; i++ {
		for j := 0; j < 32; j++ {
			c := geo.Cell{I: i, J: j}
			if a.Roll(c) == b.Roll(c) {
				same++
			}
			total++
		}
	}
	if same == total {
		t.Error("different seeds produced identical layouts")
	}
}

func TestNeighborCellsIndependent(t *testing.T) {
	// The I and J folds must not be symmetric: (i,j) and (j,i) should
	// roll differently in general.
	g := NewGenerator(9, DefaultTable())
	same := 0
	for i := 1; i < 40; i++ {
		for j := 0; j < i; j++ {
			if g.Roll(geo.Cell{I: i, J: j}) == g.Roll(geo.Cell{I: j, J: i}) {
				same++
			}
		}
	}
	if same > 0 {
		t.Errorf("%d transposed cell pairs rolled identically", same)
	}
}

func TestValueBands(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name  string
		roll  float64
		value int
		ok    bool
	}{
		{"lowest band", 0.0, 1, true},
		{"just below first bound", 0.0999, 1, true},
		{"second band", 0.10, 2, true},
		{"third band", 0.20, 4, true},
		{"fourth band", 0.23, 8, true},
		{"fifth band", 0.244, 16, true},
		{"residual mass", 0.245, 0, false},
		{"top of range", 0.999, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := table.lookup(tt.roll)
			if value != tt.value || ok != tt.ok {
				t.Errorf("lookup(%v) = (%d, %v), want (%d, %v)", tt.roll, value, ok, tt.value, tt.ok)
			}
		})
	}
}

func TestValueDistribution(t *testing.T) {
	// Over a large region every band should be hit and empty cells
	// should dominate, matching the cumulative bounds.
	g := NewGenerator(2024, DefaultTable())

	counts := map[int]int{}
	total := 0
	for i := 0; i < 100; i++ {
		for j := 0; j < 100; j++ {
			v, ok := g.Value(geo.Cell{I: i, J: j})
			if !ok {
				v = 0
			}
			counts[v]++
			total++
		}
	}

	for _, v := range []int{1, 2, 4, 8, 16} {
		if counts[v] == 0 {
			t.Errorf("value %d never spawned in a 100x100 region", v)
		}
	}
	if counts[0] < total/2 {
		t.Errorf("expected most cells empty, got %d of %d", counts[0], total)
	}
	// Value 1 is the most probable token band.
	if counts[1] <= counts[16] {
		t.Errorf("band weights inverted: %d ones vs %d sixteens", counts[1], counts[16])
	}
}

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{"default table", DefaultTable(), false},
		{"empty table", Table{}, true},
		{"non-increasing", Table{{0.2, 1}, {0.2, 2}}, true},
		{"decreasing", Table{{0.3, 1}, {0.1, 2}}, true},
		{"above one", Table{{0.5, 1}, {1.5, 2}}, true},
		{"zero value", Table{{0.5, 0}}, true},
		{"single band", Table{{1.0, 2}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
