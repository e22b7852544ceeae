// Package ui provides the Bubble Tea front end for snaplane.
package ui

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/snaplane/internal/carousel"
	"github.com/five82/snaplane/internal/config"
	"github.com/five82/snaplane/internal/prefs"
	"github.com/five82/snaplane/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    *config.Config
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	config    *config.Config
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot    state.Snapshot
	revision    uint64
	lastUpdated time.Time

	// Carousel state
	lane       *carousel.Carousel[string]
	framing    bool   // a frameMsg is in flight
	settleGen  uint64 // newest settle generation handed to tea.Tick
	keyDragGen uint64 // invalidates stale dragIdleMsg
	mouseDrag  bool
	mouseX     int
	randIntN   func(n int) int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	lane := carousel.New(carousel.Options[string]{
		Layout:      cfg.Layout,
		Space:       cfg.CoordinateSpace,
		SettleDelay: cfg.SettleDelay,
		Logf:        log.Printf,
	})

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		config:    cfg,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		lane:      lane,
		randIntN:  rand.IntN,
	}
}

// Carousel exposes the lane so callers can observe selection and index.
func (m Model) Carousel() *carousel.Carousel[string] {
	return m.lane
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.ready {
			m.lane.Resize(float64(m.width))
		} else {
			m.lane.Mount(float64(m.width))
			m.ready = true
		}
		return m, m.pump()

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		if m.snapshot.HasItems && m.snapshot.Revision != m.revision {
			m.revision = m.snapshot.Revision
			m.lane.Items().Set(m.snapshot.Items)
		}
		return m, m.pump()

	case settleMsg:
		if msg.gen != m.settleGen {
			return m, nil
		}
		m.lane.Settled(msg.gen)
		return m, m.pump()

	case frameMsg:
		m.framing = false
		m.lane.Frame()
		return m, m.pump()

	case dragIdleMsg:
		if msg.gen == m.keyDragGen && !m.mouseDrag && m.lane.Dragging() {
			m.lane.EndDrag()
		}
		return m, m.pump()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSizing):
		layout := m.lane.Layout()
		if layout.Sizing == carousel.SizingViewport {
			layout.Sizing = carousel.SizingFixed
		} else {
			layout.Sizing = carousel.SizingViewport
		}
		m.lane.SetLayout(layout)
		m.savePrefs()
		return m, m.pump()

	case key.Matches(msg, m.keys.ScrollLeft):
		return m.keyDrag(KeyDragStep)

	case key.Matches(msg, m.keys.ScrollRight):
		return m.keyDrag(-KeyDragStep)

	case key.Matches(msg, m.keys.Next):
		m.setIndex(m.lane.IndexBinding().Get() + 1)
		return m, m.pump()

	case key.Matches(msg, m.keys.Prev):
		m.setIndex(m.lane.IndexBinding().Get() - 1)
		return m, m.pump()

	case key.Matches(msg, m.keys.First):
		m.setIndex(0)
		return m, m.pump()

	case key.Matches(msg, m.keys.Last):
		m.setIndex(m.lane.Items().Len() - 1)
		return m, m.pump()

	case key.Matches(msg, m.keys.Shuffle):
		if n := m.lane.Items().Len(); n > 0 {
			if item, ok := m.lane.Items().At(m.randIntN(n)); ok {
				m.lane.SelectionBinding().Set(carousel.Some(item), carousel.OriginExternal)
			}
		}
		return m, m.pump()
	}

	return m, nil
}

// handleMouse turns press/motion/release into a drag and the wheel into a
// short key-style nudge.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft:
		return m.keyDrag(WheelStep)

	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight:
		return m.keyDrag(-WheelStep)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.mouseDrag = true
		m.mouseX = msg.X
		m.lane.BeginDrag()

	case msg.Action == tea.MouseActionMotion && m.mouseDrag:
		dx := msg.X - m.mouseX
		m.mouseX = msg.X
		if dx != 0 {
			m.lane.DragBy(float64(dx))
		}

	case msg.Action == tea.MouseActionRelease && m.mouseDrag:
		m.mouseDrag = false
		m.lane.EndDrag()
	}
	return m, m.pump()
}

// keyDrag moves the lane as part of a drag that ends once no further key
// arrives within KeyDragIdle.
func (m Model) keyDrag(dx float64) (tea.Model, tea.Cmd) {
	if m.mouseDrag {
		return m, nil
	}
	m.lane.DragBy(dx)
	m.keyDragGen++
	gen := m.keyDragGen
	idle := tea.Tick(KeyDragIdle, func(time.Time) tea.Msg {
		return dragIdleMsg{gen: gen}
	})
	return m, tea.Batch(m.pump(), idle)
}

func (m *Model) setIndex(idx int) {
	n := m.lane.Items().Len()
	if n == 0 {
		return
	}
	idx = max(0, min(idx, n-1))
	m.lane.IndexBinding().Set(idx, carousel.OriginExternal)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Sizing: m.lane.Layout().Sizing.String()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// pump schedules whatever the carousel asked for: a settle firing and, while
// the lane animates, the next frame.
func (m *Model) pump() tea.Cmd {
	var cmds []tea.Cmd
	if gen, delay, ok := m.lane.SettleRequest(); ok {
		m.settleGen = gen
		cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg {
			return settleMsg{gen: gen}
		}))
	}
	if m.lane.Animating() && !m.framing {
		m.framing = true
		cmds = append(cmds, tea.Tick(carousel.FrameInterval, func(time.Time) tea.Msg {
			return frameMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Fetch latest snapshot
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	laneHeight := max(m.height-2, 0)
	b.WriteString(m.renderLane(laneHeight))
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type settleMsg struct{ gen uint64 }

type frameMsg struct{}

type dragIdleMsg struct{ gen uint64 }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	m.lane.Unmount()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
