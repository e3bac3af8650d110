package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvendramini/geomerge/internal/config"
	"github.com/vvendramini/geomerge/internal/session"
	"github.com/vvendramini/geomerge/internal/spawn"
	"github.com/vvendramini/geomerge/internal/world"
)

// testTokenEverywhere spawns value 4 in every cell.
func testTokenEverywhere() spawn.Generator {
	return spawn.NewGenerator(7, spawn.Table{{Upper: 1, Value: 4}})
}

func testGameConfig() config.GameConfig {
	return config.GameConfig{
		World: config.WorldConfig{
			TileSize:           1.0,
			NeighborhoodRadius: 2,
			CellPolicy:         string(world.PolicyMemoryful),
		},
		Spawn: config.SpawnConfig{
			Seed:  7,
			Bands: []spawn.Band{{Upper: 1, Value: 4}},
		},
		Rules: config.RulesConfig{
			InteractionRange: 2,
			Target:           8,
		},
	}
}

func newTestModel(t *testing.T, onFinish func(held int, won bool, elapsed time.Duration)) (Model, *session.Session) {
	t.Helper()
	cfg := testGameConfig()
	sess := session.New(cfg, world.New(cfg.Policy(), cfg.Generator()))
	return NewModel(sess, Options{OnFinish: onFinish}), sess
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestResetRecordsRun(t *testing.T) {
	var finished []int
	m, sess := newTestModel(t, func(held int, won bool, elapsed time.Duration) {
		finished = append(finished, held)
		if won {
			t.Error("run should not be won")
		}
	})

	if err := sess.Interact(sess.Player()); err != nil {
		t.Fatalf("pickup failed: %v", err)
	}
	if sess.Held() != 4 {
		t.Fatalf("held = %d, want 4", sess.Held())
	}

	updated, _ := m.Update(keyPress('r'))
	m = updated.(Model)

	if len(finished) != 1 || finished[0] != 4 {
		t.Fatalf("reset recorded runs %v, want [4]", finished)
	}
	if sess.Held() != 0 {
		t.Errorf("held = %d after reset, want 0", sess.Held())
	}
	if m.quitting {
		t.Error("reset must not quit")
	}
}

func TestResetWithEmptyHandRecordsNothing(t *testing.T) {
	calls := 0
	m, _ := newTestModel(t, func(int, bool, time.Duration) { calls++ })

	m.Update(keyPress('r'))

	if calls != 0 {
		t.Errorf("empty-handed reset recorded %d runs, want 0", calls)
	}
}

func TestQuitRecordsRun(t *testing.T) {
	var finished []int
	m, sess := newTestModel(t, func(held int, _ bool, _ time.Duration) {
		finished = append(finished, held)
	})

	if err := sess.Interact(sess.Player()); err != nil {
		t.Fatalf("pickup failed: %v", err)
	}

	updated, _ := m.Update(keyPress('q'))
	m = updated.(Model)

	if len(finished) != 1 || finished[0] != 4 {
		t.Fatalf("quit recorded runs %v, want [4]", finished)
	}
	if !m.quitting {
		t.Error("quit key must set quitting")
	}
}
