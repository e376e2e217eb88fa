package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/maksdenisov/skystrike/internal/core"
	"github.com/maksdenisov/skystrike/internal/game"
	"github.com/maksdenisov/skystrike/internal/storage"
)

// bellSink turns explosion events into a pending terminal bell.
// The simulation dispatches events fire-and-forget; this sink only counts.
type bellSink struct {
	pending int
}

func (b *bellSink) Notify(ev game.Event) {
	if ev == game.EventExplosion {
		b.pending++
	}
}

// storeKeeper persists new high scores best-effort. Failures are logged and
// swallowed; a broken database must never interrupt a round.
type storeKeeper struct {
	store  *storage.Store
	logger *log.Logger
}

func (k storeKeeper) SaveHighScore(score int) {
	if k.store == nil {
		return
	}
	if err := k.store.SaveHighScore(score); err != nil && k.logger != nil {
		k.logger.Warn("could not save high score", "error", err)
	}
}

// Model is the Bubble Tea model driving one skystrike session.
// It supplies the simulation's clock, input and presentation: ticks step the
// game at a fixed rate, key events become held intents with a short decay
// (terminals report key repeats, not releases), and each frame is rendered
// into a cell buffer.
type Model struct {
	game   *game.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper
	logger *log.Logger
	sink   *bellSink

	tick uint64

	// Ticks until which each directional intent counts as held. Key repeat
	// keeps refreshing these while a key stays down.
	holdLeft, holdRight, holdUp, holdDown uint64

	edges      core.InputState // One-shot intents accumulated between ticks
	bells      int             // Bell characters owed to the next View, one per explosion
	roundSaved bool            // Whether the current game over has been recorded
	quitting   bool
}

// NewModel creates a session model for the given game.
// The stored high score is loaded once here; afterwards persistence only
// flows outward through the score keeper.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	sink := &bellSink{}
	g.SetSink(sink)
	g.SetScoreKeeper(storeKeeper{store: store, logger: logger})
	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			g.SetHighScore(hs)
		} else if logger != nil {
			logger.Warn("could not load high score", "error", err)
		}
	}
	g.Reset(cfg)

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		logger: logger,
		sink:   sink,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// holdTicks is how long a direction stays held after its last key event.
// Long enough to bridge the gap before terminal key repeat kicks in.
func (m Model) holdTicks() uint64 {
	return uint64(core.Max(m.config.TickRate/5, 1)) //#nosec G115 -- tick rate is positive
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	until := m.tick + m.holdTicks()

	switch m.keys.Map(msg) {
	case IntentQuit:
		m.quitting = true
		return m, tea.Quit
	case IntentLeft:
		m.holdLeft = until
	case IntentRight:
		m.holdRight = until
	case IntentUp:
		m.holdUp = until
	case IntentDown:
		m.holdDown = until
	case IntentFire:
		m.edges.Fire = true
		m.edges.Start = true
	case IntentStart:
		m.edges.Start = true
	case IntentRestart:
		m.edges.Restart = true
	case IntentPause:
		m.edges.Pause = true
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	// World bounds are in world units, so the round survives a resize.
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++

	in := core.InputState{
		MoveLeft:  m.tick <= m.holdLeft,
		MoveRight: m.tick <= m.holdRight,
		MoveUp:    m.tick <= m.holdUp,
		MoveDown:  m.tick <= m.holdDown,
		Fire:      m.edges.Fire,
		Start:     m.edges.Start,
		Restart:   m.edges.Restart,
		Pause:     m.edges.Pause,
	}
	m.edges.Clear()

	m.game.Step(1.0/float64(m.config.TickRate), in)

	m.bells = m.sink.pending
	m.sink.pending = 0

	if m.game.Phase() == game.PhaseGameOver {
		if !m.roundSaved {
			m.saveRound()
			m.roundSaved = true
		}
	} else {
		m.roundSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRound records the finished round's score, best-effort.
func (m *Model) saveRound() {
	if m.store == nil || m.game.Score() <= 0 {
		return
	}
	if _, err := m.store.SaveRound(m.game.Score()); err != nil && m.logger != nil {
		m.logger.Warn("could not save round score", "error", err)
	}
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.bells > 0 {
		out = strings.Repeat("\a", m.bells) + out
	}
	return out
}

// Run starts a Bubble Tea program for the given game and blocks until exit.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(g, store, cfg, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
