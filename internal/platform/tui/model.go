package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vvendramini/geomerge/internal/geo"
	"github.com/vvendramini/geomerge/internal/movement"
	"github.com/vvendramini/geomerge/internal/session"
	"github.com/vvendramini/geomerge/internal/world"
)

// Mode names the active movement controller.
type Mode int

const (
	// ModeButtons moves the player with directional keys.
	ModeButtons Mode = iota
	// ModeWalk replays a recorded track through the position pipeline.
	ModeWalk
)

func (m Mode) String() string {
	if m == ModeWalk {
		return "walk"
	}
	return "buttons"
}

// uiState is the mutable rendering state shared between the session's
// push callbacks and the Bubble Tea model. It lives behind a pointer so
// it survives the value copies Bubble Tea makes of the model.
type uiState struct {
	cells  []world.WindowCell
	center geo.Cell
	held   int
	won    bool
}

func (u *uiState) Redraw(cells []world.WindowCell, center geo.Cell) {
	u.cells = cells
	u.center = center
}

func (u *uiState) Status(held int, won bool) {
	u.held = held
	u.won = won
}

// Options configures optional model features.
type Options struct {
	// Track, when set, enables walk mode replaying the recorded route.
	Track *movement.Track
	// WalkInterval is the delay between replayed track points.
	WalkInterval time.Duration
	// StartWalking begins in walk mode instead of button mode.
	StartWalking bool
	// OnFinish is called with the final hand when a run ends, either by
	// quitting or by resetting the world. Empty-handed runs are skipped.
	OnFinish func(held int, won bool, elapsed time.Duration)
	// Logger receives position pipeline warnings.
	Logger *log.Logger
}

// Model is the Bubble Tea model for an interactive play session.
type Model struct {
	sess     *session.Session
	ui       *uiState
	keys     KeyMap
	help     help.Model
	buttons  *movement.Buttons
	walker   *movement.Geo
	trackSrc *movement.TrackSource

	mode         Mode
	walkGen      int
	walkInterval time.Duration
	cursor       geo.Delta
	notice       string
	started      time.Time
	onFinish     func(held int, won bool, elapsed time.Duration)
	quitting     bool
	width        int
}

// NewModel wires a session into a Bubble Tea model. The session's
// renderer and status sinks are attached here.
func NewModel(sess *session.Session, opts Options) Model {
	ui := &uiState{}
	sess.AttachRenderer(ui)
	sess.AttachStatus(ui)

	m := Model{
		sess:         sess,
		ui:           ui,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		buttons:      movement.NewButtons(sess.ApplyDelta),
		walkInterval: opts.WalkInterval,
		started:      time.Now(),
		onFinish:     opts.OnFinish,
	}
	if m.walkInterval <= 0 {
		m.walkInterval = 500 * time.Millisecond
	}
	if opts.Track != nil {
		m.trackSrc = movement.NewTrackSource(*opts.Track)
		m.walker = movement.NewGeo(sess.Mapper(), m.trackSrc, sess.ApplyDelta, opts.Logger)
	}
	if opts.StartWalking && m.walker != nil {
		m.mode = ModeWalk
	}
	return m
}

// Init starts the active controller and paints the first frame.
func (m Model) Init() tea.Cmd {
	// The zero delta forces an initial redraw through the session.
	m.sess.ApplyDelta(geo.Delta{})

	if m.mode == ModeWalk {
		//nolint:errcheck // replay sources never refuse to start
		m.sess.Use(m.walker)
		return walkTickCmd(m.walkInterval, m.walkGen)
	}
	//nolint:errcheck // button controllers never refuse to start
	m.sess.Use(m.buttons)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case WalkTickMsg:
		return m.handleWalkTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.finishRun()
		m.sess.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		// A reset ends the current run before a fresh one begins.
		m.finishRun()
		m.sess.Reset()
		m.cursor = geo.Delta{}
		m.started = time.Now()
		m.notice = "world reset"
		return m, nil

	case key.Matches(msg, m.keys.ToggleMode):
		return m.toggleMode()

	case key.Matches(msg, m.keys.North):
		m.buttons.Trigger(movement.North)
	case key.Matches(msg, m.keys.South):
		m.buttons.Trigger(movement.South)
	case key.Matches(msg, m.keys.East):
		m.buttons.Trigger(movement.East)
	case key.Matches(msg, m.keys.West):
		m.buttons.Trigger(movement.West)

	case key.Matches(msg, m.keys.CursorUp):
		m.moveCursor(geo.Delta{DI: 1})
	case key.Matches(msg, m.keys.CursorDown):
		m.moveCursor(geo.Delta{DI: -1})
	case key.Matches(msg, m.keys.CursorLeft):
		m.moveCursor(geo.Delta{DJ: -1})
	case key.Matches(msg, m.keys.CursorRight):
		m.moveCursor(geo.Delta{DJ: 1})

	case key.Matches(msg, m.keys.Interact):
		m.notice = m.interact()
	}

	return m, nil
}

func (m Model) toggleMode() (tea.Model, tea.Cmd) {
	if m.walker == nil {
		m.notice = "no track loaded, walk mode unavailable"
		return m, nil
	}
	if m.mode == ModeButtons {
		if err := m.sess.Use(m.walker); err != nil {
			m.notice = fmt.Sprintf("walk mode failed: %v", err)
			//nolint:errcheck // falling back to the controller that just worked
			m.sess.Use(m.buttons)
			return m, nil
		}
		m.mode = ModeWalk
		m.walkGen++
		m.notice = "walking the track"
		return m, walkTickCmd(m.walkInterval, m.walkGen)
	}
	//nolint:errcheck // button controllers never refuse to start
	m.sess.Use(m.buttons)
	m.mode = ModeButtons
	m.notice = "back to buttons"
	return m, nil
}

func (m Model) handleWalkTick(msg WalkTickMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeWalk || m.trackSrc == nil || msg.Gen != m.walkGen {
		return m, nil
	}
	if !m.trackSrc.Advance() {
		//nolint:errcheck // button controllers never refuse to start
		m.sess.Use(m.buttons)
		m.mode = ModeButtons
		m.notice = "track finished"
		return m, nil
	}
	return m, walkTickCmd(m.walkInterval, m.walkGen)
}

// finishRun reports the run's final hand. Runs that never picked
// anything up are not worth a row.
func (m *Model) finishRun() {
	if m.onFinish == nil || m.sess.Held() == 0 {
		return
	}
	m.onFinish(m.sess.Held(), m.sess.Won(), time.Since(m.started))
}

// moveCursor nudges the aim cursor, clamped to the visible window.
func (m *Model) moveCursor(d geo.Delta) {
	radius := m.sess.Radius()
	next := geo.Delta{DI: m.cursor.DI + d.DI, DJ: m.cursor.DJ + d.DJ}
	if next.DI < -radius || next.DI > radius || next.DJ < -radius || next.DJ > radius {
		return
	}
	m.cursor = next
}

// interact clicks the cell under the cursor and maps rejections to
// player-facing notices.
func (m *Model) interact() string {
	target := m.sess.Player().Add(m.cursor)
	err := m.sess.Interact(target)
	switch {
	case err == nil:
		if m.sess.Held() > 0 {
			return fmt.Sprintf("holding %d", m.sess.Held())
		}
		return ""
	case errors.Is(err, session.ErrOutOfRange):
		return "too far away"
	case errors.Is(err, session.ErrEmptyCell):
		return "nothing there"
	case errors.Is(err, session.ErrValueMismatch):
		return "values do not match"
	default:
		return err.Error()
	}
}

// View renders the grid, status line, notice, and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	radius := m.sess.Radius()
	cursorCell := m.sess.Player().Add(m.cursor)

	view := renderGrid(m.ui.cells, m.ui.center, cursorCell, radius)
	view += "\n\n" + renderStatus(m.ui.held, m.sess.Target(), m.ui.won, m.ui.center, m.mode)
	if m.notice != "" {
		view += "\n" + noticeStyle.Render(m.notice)
	}
	view += "\n" + m.help.View(m.keys)
	return view
}

// Run starts the Bubble Tea program for the session.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(sess, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
