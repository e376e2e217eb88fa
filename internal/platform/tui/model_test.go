package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/maksdenisov/skystrike/internal/config"
	"github.com/maksdenisov/skystrike/internal/core"
	"github.com/maksdenisov/skystrike/internal/game"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	g, err := game.New(config.Default())
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewModel(g, nil, rc, nil)
}

func tick(m Model) Model {
	next, _ := m.handleTick()
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.handleKey(msg)
	return next.(Model)
}

func TestHeldKeyDecays(t *testing.T) {
	m := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.holdLeft == 0 {
		t.Fatal("key press did not register a hold")
	}

	// The hold survives a few ticks, then expires without a release event.
	held := 0
	for i := 0; i < 60; i++ {
		m = tick(m)
		if m.tick <= m.holdLeft {
			held++
		}
	}
	if held == 0 {
		t.Error("hold expired immediately")
	}
	if held >= 60 {
		t.Error("hold never expired")
	}

	// A repeat refreshes the hold.
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.tick+1 > m.holdLeft {
		t.Error("repeat did not refresh the hold window")
	}
}

func TestEdgesFireOnceThenClear(t *testing.T) {
	m := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.edges.Fire || !m.edges.Start {
		t.Fatal("space should arm both fire and start")
	}

	m = tick(m)
	if m.edges.Fire || m.edges.Start {
		t.Error("one-shot edges should clear after a tick consumed them")
	}
	if m.game.Phase() != game.PhasePlaying {
		t.Errorf("phase = %v, space on the ready screen should start the round", m.game.Phase())
	}
}

func TestQuitKeyStopsTheProgram(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).quitting {
		t.Error("quit flag not set")
	}
	if next.(Model).View() != "" {
		t.Error("a quitting model should render nothing")
	}
}

func TestResizeReshapesScreen(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d after resize", m.screen.Width(), m.screen.Height())
	}
}

func TestBellRingsOnExplosion(t *testing.T) {
	m := newTestModel(t)

	m.sink.Notify(game.EventExplosion)
	m = tick(m)
	if m.bells != 1 {
		t.Fatalf("bells = %d after one explosion event, want 1", m.bells)
	}
	if !strings.HasPrefix(m.View(), "\a") {
		t.Error("view should emit the terminal bell")
	}

	m = tick(m)
	if m.bells != 0 {
		t.Error("bell should ring once, not every frame")
	}
}

func TestBellPerEventNoBatching(t *testing.T) {
	m := newTestModel(t)

	// Two explosions in one frame ring twice, never coalesced into one.
	m.sink.Notify(game.EventExplosion)
	m.sink.Notify(game.EventExplosion)
	m = tick(m)
	if m.bells != 2 {
		t.Fatalf("bells = %d after two explosion events, want 2", m.bells)
	}
	if !strings.HasPrefix(m.View(), "\a\a") {
		t.Error("view should emit one bell per explosion")
	}
}

func TestBellIgnoresShootEvents(t *testing.T) {
	m := newTestModel(t)

	m.sink.Notify(game.EventShoot)
	m = tick(m)
	if m.bells != 0 {
		t.Error("shoot events must not ring the bell")
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	m := newTestModel(t)

	// Start and run a while with no storage attached.
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 120; i++ {
		m = tick(m)
	}
	storeKeeper{}.SaveHighScore(10)
	m.saveRound()
}
