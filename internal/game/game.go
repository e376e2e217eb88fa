package game

import (
	"github.com/maksdenisov/skystrike/internal/config"
	"github.com/maksdenisov/skystrike/internal/core"
)

// seedStride separates per-round RNG streams derived from one base seed.
const seedStride = 0x9E3779B9

// Game owns one shooter session: the round state machine, the active world
// and the spawner. It is single-threaded by contract; the platform clock
// calls Step once per tick and no two steps ever overlap.
type Game struct {
	cfg     config.Config
	rc      core.RuntimeConfig
	world   *World
	spawner *spawner
	round   Round
	sink    EventSink
	keeper  ScoreKeeper
	paused  bool
	tick    uint64
	rounds  int64 // Rounds started since Reset, salts the per-round seed
}

// New creates a game with the given tuning configuration.
// Configuration is validated here: an invalid config is fatal at construction
// time, never discovered mid-round.
func New(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		cfg:    cfg,
		rc:     core.DefaultConfig(),
		sink:   nopSink{},
		keeper: nopKeeper{},
		round:  Round{Phase: PhaseReady, Lives: cfg.Rules.Lives},
	}, nil
}

// ID returns the identifier used for CLI commands and score storage.
func (g *Game) ID() string {
	return "skystrike"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sky Strike"
}

// SetSink installs the presentation event sink. Pass nil to silence events.
func (g *Game) SetSink(s EventSink) {
	if s == nil {
		s = nopSink{}
	}
	g.sink = s
}

// SetScoreKeeper installs the high-score persistence collaborator.
func (g *Game) SetScoreKeeper(k ScoreKeeper) {
	if k == nil {
		k = nopKeeper{}
	}
	g.keeper = k
}

// SetHighScore seeds the session high score, typically loaded from storage
// once at startup.
func (g *Game) SetHighScore(hs int) {
	if hs > g.round.HighScore {
		g.round.HighScore = hs
	}
}

// Reset puts the game back into the ready state with no world.
// The session high score survives a reset.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rc = rc
	g.world = nil
	g.spawner = nil
	g.paused = false
	g.tick = 0
	g.rounds = 0
	g.round = Round{
		Phase:     PhaseReady,
		Lives:     g.cfg.Rules.Lives,
		HighScore: g.round.HighScore,
	}
}

// startRound transitions into playing: score to zero, full lives, a fresh
// world with a newly placed player, and rearmed spawn timers.
func (g *Game) startRound() {
	g.round.Score = 0
	g.round.Lives = g.cfg.Rules.Lives
	g.round.Phase = PhasePlaying
	g.world = newWorld(g.cfg)
	g.spawner = newSpawner(g.cfg, g.rc.Seed+g.rounds*seedStride)
	g.rounds++
	g.paused = false
}

// addScore credits destroyed enemies and pushes a new high score to the
// keeper the moment it is exceeded.
func (g *Game) addScore(n int) {
	g.round.Score += n
	if g.round.Score > g.round.HighScore {
		g.round.HighScore = g.round.Score
		g.keeper.SaveHighScore(g.round.Score)
	}
}

// loseLife consumes one life and ends the round the exact frame the count
// reaches zero. Lives never go below zero; hits taken after the round has
// ended still resolve but cannot decrement further.
func (g *Game) loseLife() {
	if g.round.Lives > 0 {
		g.round.Lives--
	}
	if g.round.Lives == 0 && g.round.Phase == PhasePlaying {
		g.round.Phase = PhaseGameOver
	}
}

// Phase returns the current round phase.
func (g *Game) Phase() Phase {
	return g.round.Phase
}

// Score returns the current round score.
func (g *Game) Score() int {
	return g.round.Score
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.round.Lives
}

// HighScore returns the session high score.
func (g *Game) HighScore() int {
	return g.round.HighScore
}

// Paused reports whether the round is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// World exposes the live world. Read-only for callers; nil while ready.
func (g *Game) World() *World {
	return g.world
}
