package game

import (
	"math"
	"strings"
	"testing"

	"github.com/maksdenisov/skystrike/internal/config"
	"github.com/maksdenisov/skystrike/internal/core"
)

const testDT = 1.0 / 60.0

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// newPlayingGame returns a game already in the playing phase.
func newPlayingGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(config.Default())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(testRuntime(seed))
	g.Step(testDT, core.InputState{Start: true})
	if g.Phase() != PhasePlaying {
		t.Fatalf("expected playing phase after start, got %v", g.Phase())
	}
	return g
}

// recordingSink captures emitted events.
type recordingSink struct {
	shoots     int
	explosions int
}

func (r *recordingSink) Notify(ev Event) {
	switch ev {
	case EventShoot:
		r.shoots++
	case EventExplosion:
		r.explosions++
	}
}

// recordingKeeper captures high-score saves.
type recordingKeeper struct {
	saved []int
}

func (r *recordingKeeper) SaveHighScore(score int) {
	r.saved = append(r.saved, score)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Speed = 0
	if _, err := New(cfg); err == nil {
		t.Fatal("New() should reject a config with zero player speed")
	}

	cfg = config.Default()
	cfg.World.Height = -10
	if _, err := New(cfg); err == nil {
		t.Fatal("New() should reject a config with negative world height")
	}
}

func TestPhaseTransitions(t *testing.T) {
	g, err := New(config.Default())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(testRuntime(1))

	if g.Phase() != PhaseReady {
		t.Fatalf("expected ready after reset, got %v", g.Phase())
	}
	if g.World() != nil {
		t.Error("no world should exist while ready")
	}

	// Idle steps must not start the round.
	for i := 0; i < 10; i++ {
		g.Step(testDT, core.InputState{})
	}
	if g.Phase() != PhaseReady {
		t.Errorf("phase drifted to %v without a start command", g.Phase())
	}

	g.Step(testDT, core.InputState{Start: true})
	if g.Phase() != PhasePlaying {
		t.Fatalf("expected playing after start, got %v", g.Phase())
	}
	if g.World() == nil {
		t.Fatal("world should exist while playing")
	}
}

func TestPlayerShotKillsEnemy(t *testing.T) {
	g := newPlayingGame(t, 1)
	sink := &recordingSink{}
	g.SetSink(sink)
	w := g.World()

	// Enemy at the top bound, player shot right below it, boxes overlapping.
	w.Enemies = append(w.Enemies, Enemy{
		Pos:  core.Vec2{X: 0, Y: 5},
		Half: core.Vec2{X: 0.5, Y: 0.35},
	})
	w.PlayerShots = append(w.PlayerShots, Shot{
		Pos:  core.Vec2{X: 0, Y: 4.9},
		Half: core.Vec2{X: 0.1, Y: 0.25},
		Vel:  12,
	})

	g.Step(testDT, core.InputState{})

	if len(w.Enemies) != 0 {
		t.Errorf("enemy should be destroyed, %d remain", len(w.Enemies))
	}
	if len(w.PlayerShots) != 0 {
		t.Errorf("shot should be consumed, %d remain", len(w.PlayerShots))
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1", g.Score())
	}
	if len(w.Explosions) != 1 {
		t.Fatalf("expected exactly one explosion, got %d", len(w.Explosions))
	}
	if w.Explosions[0].Remaining != 0.35 {
		t.Errorf("explosion countdown = %v, expected 0.35", w.Explosions[0].Remaining)
	}
	if sink.explosions != 1 {
		t.Errorf("expected 1 explosion event, got %d", sink.explosions)
	}
}

func TestOneKillPerShot(t *testing.T) {
	g := newPlayingGame(t, 1)
	w := g.World()

	// Two shots both overlapping a single enemy: first match wins, the
	// second shot survives the frame.
	w.Enemies = append(w.Enemies, Enemy{
		Pos:  core.Vec2{X: 0, Y: 3},
		Half: core.Vec2{X: 0.5, Y: 0.35},
	})
	for i := 0; i < 2; i++ {
		w.PlayerShots = append(w.PlayerShots, Shot{
			Pos:  core.Vec2{X: 0, Y: 3},
			Half: core.Vec2{X: 0.1, Y: 0.25},
		})
	}

	g.resolveCollisions()

	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1 (one kill per enemy)", g.Score())
	}
	if len(w.Enemies) != 0 {
		t.Errorf("enemy should be destroyed, %d remain", len(w.Enemies))
	}
	if len(w.PlayerShots) != 1 {
		t.Errorf("second shot should survive, %d shots remain", len(w.PlayerShots))
	}
}

func TestEnemyShotHitsPlayerEndsRound(t *testing.T) {
	g := newPlayingGame(t, 1)
	w := g.World()
	g.round.Lives = 1

	w.EnemyShots = append(w.EnemyShots, Shot{
		Pos:  w.Player.Pos,
		Half: core.Vec2{X: 0.125, Y: 0.25},
		Vel:  -6,
	})

	g.Step(testDT, core.InputState{})

	if g.Lives() != 0 {
		t.Errorf("lives = %d, expected 0", g.Lives())
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, expected game over in the same frame", g.Phase())
	}
	if len(w.EnemyShots) != 0 {
		t.Errorf("shot should be removed in the same step, %d remain", len(w.EnemyShots))
	}
	if len(w.Explosions) != 1 || w.Explosions[0].Remaining != 0.5 {
		t.Errorf("expected one explosion with countdown 0.5, got %+v", w.Explosions)
	}
}

func TestTwoHitsSameFrameCostTwoLives(t *testing.T) {
	g := newPlayingGame(t, 1)
	sink := &recordingSink{}
	g.SetSink(sink)
	w := g.World()

	for i := 0; i < 2; i++ {
		w.EnemyShots = append(w.EnemyShots, Shot{
			Pos:  w.Player.Pos,
			Half: core.Vec2{X: 0.125, Y: 0.25},
		})
	}

	g.resolveCollisions()

	if g.Lives() != 1 {
		t.Errorf("lives = %d, expected 1 (two independent decrements)", g.Lives())
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %v, expected still playing", g.Phase())
	}
	if sink.explosions != 2 {
		t.Errorf("expected 2 explosion events, got %d", sink.explosions)
	}
}

func TestBodyCollisionCostsLife(t *testing.T) {
	g := newPlayingGame(t, 1)
	w := g.World()

	w.Enemies = append(w.Enemies, Enemy{
		Pos:  w.Player.Pos,
		Half: core.Vec2{X: 0.5, Y: 0.35},
	})

	g.resolveCollisions()

	if g.Lives() != 2 {
		t.Errorf("lives = %d, expected 2 after body collision", g.Lives())
	}
	if len(w.Enemies) != 0 {
		t.Errorf("colliding enemy should be removed, %d remain", len(w.Enemies))
	}
	if g.Score() != 0 {
		t.Errorf("body collisions award no score, got %d", g.Score())
	}
}

func TestEnemyEscapesOffBottom(t *testing.T) {
	g := newPlayingGame(t, 1)
	w := g.World()

	// Past the prune margin below the bottom bound. Keep it away from the
	// player so no collision fires.
	w.Enemies = append(w.Enemies, Enemy{
		Pos:  core.Vec2{X: 5, Y: w.Bounds.Bottom - 2},
		Half: core.Vec2{X: 0.5, Y: 0.35},
	})

	g.Step(testDT, core.InputState{})

	if len(w.Enemies) != 0 {
		t.Errorf("escaped enemy should be pruned, %d remain", len(w.Enemies))
	}
	if g.Score() != 0 {
		t.Errorf("escaped enemy must not score, got %d", g.Score())
	}
	if g.Lives() != 3 {
		t.Errorf("escaped enemy must not cost a life, lives = %d", g.Lives())
	}
}

func TestShotsPrunedPastBounds(t *testing.T) {
	g := newPlayingGame(t, 1)
	w := g.World()

	w.PlayerShots = append(w.PlayerShots, Shot{
		Pos: core.Vec2{X: 0, Y: w.Bounds.Top + 2},
	})
	w.EnemyShots = append(w.EnemyShots, Shot{
		Pos: core.Vec2{X: 3, Y: w.Bounds.Bottom - 2},
	})

	g.prune()

	if len(w.PlayerShots) != 0 {
		t.Errorf("player shot past top margin should be pruned")
	}
	if len(w.EnemyShots) != 0 {
		t.Errorf("enemy shot past bottom margin should be pruned")
	}
}

func TestExplosionLifecycle(t *testing.T) {
	g := newPlayingGame(t, 1)
	w := g.World()

	w.spawnExplosion(core.Vec2{X: 0, Y: 0}, 2.5*testDT)

	steps := 0
	for len(w.Explosions) > 0 && steps < 10 {
		g.Step(testDT, core.InputState{})
		steps++
	}
	if steps != 3 {
		t.Errorf("explosion lasted %d steps, expected 3", steps)
	}
}

func TestRestartRoundTrip(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.round.Lives = 1
	w := g.World()
	w.EnemyShots = append(w.EnemyShots, Shot{Pos: w.Player.Pos, Half: core.Vec2{X: 0.2, Y: 0.2}})
	g.Step(testDT, core.InputState{})
	if g.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, got %v", g.Phase())
	}

	g.Step(testDT, core.InputState{Restart: true})

	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %v, expected playing after restart", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, expected 0 after restart", g.Score())
	}
	if g.Lives() != 3 {
		t.Errorf("lives = %d, expected 3 after restart", g.Lives())
	}
	w = g.World()
	if len(w.Enemies) != 0 || len(w.PlayerShots) != 0 || len(w.EnemyShots) != 0 || len(w.Explosions) != 0 {
		t.Error("restart should yield an empty world")
	}
}

func TestNoSpawningInTheGameOverFrame(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.round.Lives = 1
	w := g.World()
	w.EnemyShots = append(w.EnemyShots, Shot{Pos: w.Player.Pos, Half: core.Vec2{X: 0.2, Y: 0.2}})

	// A dt spanning several spawn periods in the very frame the last life is
	// lost: the spawner must not reach the now-frozen world.
	g.Step(2.0, core.InputState{})

	if g.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, got %v", g.Phase())
	}
	if len(w.Enemies) != 0 {
		t.Errorf("spawner injected %d enemies into the game-over frame", len(w.Enemies))
	}
	if len(w.EnemyShots) != 0 {
		t.Errorf("spawner injected %d shots into the game-over frame", len(w.EnemyShots))
	}
}

func TestNoSpawningAfterGameOver(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.round.Lives = 1
	w := g.World()
	w.EnemyShots = append(w.EnemyShots, Shot{Pos: w.Player.Pos, Half: core.Vec2{X: 0.2, Y: 0.2}})
	g.Step(testDT, core.InputState{})
	if g.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, got %v", g.Phase())
	}

	// Even whole seconds of elapsed time must not reach the spawner once
	// the round has ended.
	for i := 0; i < 10; i++ {
		g.Step(1.0, core.InputState{})
	}
	if len(g.World().Enemies) != 0 {
		t.Errorf("spawner fired after teardown: %d enemies", len(g.World().Enemies))
	}
}

func TestIdleStepLeavesWorldUntouched(t *testing.T) {
	g := newPlayingGame(t, 1)
	w := g.World()
	before := w.Player.Pos

	g.Step(testDT, core.InputState{})

	if w.Player.Pos != before {
		t.Errorf("player moved with no input: %+v -> %+v", before, w.Player.Pos)
	}
	if len(w.Enemies) != 0 || len(w.PlayerShots) != 0 || len(w.EnemyShots) != 0 {
		t.Error("idle step created or removed entities")
	}
}

func TestPlayerClampedUnderAllInputs(t *testing.T) {
	g := newPlayingGame(t, 1)
	w := g.World()

	held := core.InputState{MoveLeft: true, MoveRight: true, MoveUp: true, MoveDown: true}
	inputs := []core.InputState{
		{MoveLeft: true, MoveDown: true},
		{MoveRight: true, MoveUp: true},
		{MoveLeft: true},
		{MoveUp: true},
		held,
	}
	for _, in := range inputs {
		for i := 0; i < 300; i++ {
			g.movePlayer(testDT, in)
			p := w.Player
			if p.Pos.X < w.Bounds.Left+p.Half.X || p.Pos.X > w.Bounds.Right-p.Half.X {
				t.Fatalf("player x out of bounds: %v", p.Pos.X)
			}
			if p.Pos.Y < w.Bounds.Bottom+p.Half.Y || p.Pos.Y > w.Bounds.Top-p.Half.Y {
				t.Fatalf("player y out of bounds: %v", p.Pos.Y)
			}
		}
	}
}

func TestDiagonalMovementIsAdditive(t *testing.T) {
	g := newPlayingGame(t, 1)
	w := g.World()
	start := w.Player.Pos

	g.movePlayer(testDT, core.InputState{MoveRight: true, MoveUp: true})

	step := config.Default().Player.Speed * testDT
	if got := w.Player.Pos.X - start.X; math.Abs(got-step) > 1e-12 {
		t.Errorf("x displacement = %v, expected %v", got, step)
	}
	if got := w.Player.Pos.Y - start.Y; math.Abs(got-step) > 1e-12 {
		t.Errorf("y displacement = %v, expected full unnormalized %v", got, step)
	}
}

func TestTripleVolley(t *testing.T) {
	g := newPlayingGame(t, 1)
	sink := &recordingSink{}
	g.SetSink(sink)
	w := g.World()

	g.fireShots()

	if len(w.PlayerShots) != 3 {
		t.Fatalf("expected 3 shots per volley, got %d", len(w.PlayerShots))
	}
	p := w.Player
	wantX := []float64{p.Pos.X - p.Half.X, p.Pos.X + p.Half.X, p.Pos.X}
	for i, s := range w.PlayerShots {
		if s.Pos.X != wantX[i] {
			t.Errorf("shot %d at x=%v, expected %v", i, s.Pos.X, wantX[i])
		}
		if s.Vel <= 0 {
			t.Errorf("shot %d should travel upward, vel=%v", i, s.Vel)
		}
	}
	if w.PlayerShots[2].Pos.Y != p.Pos.Y+p.Half.Y {
		t.Errorf("nose shot should start above the craft")
	}
	if sink.shoots != 1 {
		t.Errorf("expected one shoot event per trigger, got %d", sink.shoots)
	}
}

func TestScoreMonotonicLivesMonotonic(t *testing.T) {
	g := newPlayingGame(t, 7)

	prevScore, prevLives := g.Score(), g.Lives()
	in := core.InputState{}
	for i := 0; i < 1800; i++ { // 30 seconds
		in.Fire = i%12 == 0
		g.Step(testDT, in)
		if g.Score() < prevScore {
			t.Fatalf("score decreased: %d -> %d", prevScore, g.Score())
		}
		if g.Lives() > prevLives {
			t.Fatalf("lives increased: %d -> %d", prevLives, g.Lives())
		}
		prevScore, prevLives = g.Score(), g.Lives()
		if g.Phase() == PhaseGameOver {
			break
		}
	}
}

func TestHighScorePushedOnEveryNewHigh(t *testing.T) {
	g := newPlayingGame(t, 1)
	keeper := &recordingKeeper{}
	g.SetScoreKeeper(keeper)
	g.SetHighScore(2)

	g.addScore(1) // 1, below high score
	g.addScore(1) // 2, equal
	if len(keeper.saved) != 0 {
		t.Fatalf("keeper called before the high score was exceeded: %v", keeper.saved)
	}

	g.addScore(1) // 3, new high
	g.addScore(1) // 4, new high again
	if len(keeper.saved) != 2 || keeper.saved[0] != 3 || keeper.saved[1] != 4 {
		t.Errorf("keeper saves = %v, expected [3 4]", keeper.saved)
	}
	if g.HighScore() != 4 {
		t.Errorf("high score = %d, expected 4", g.HighScore())
	}
}

func TestHighScoreSurvivesReset(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.addScore(9)
	g.Reset(testRuntime(1))
	if g.HighScore() != 9 {
		t.Errorf("high score = %d after reset, expected 9", g.HighScore())
	}
	if g.Score() != 0 {
		t.Errorf("score = %d after reset, expected 0", g.Score())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		g, err := New(config.Default())
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		g.Reset(testRuntime(12345))
		g.Step(testDT, core.InputState{Start: true})

		in := core.InputState{}
		for i := 0; i < 600; i++ {
			in.MoveLeft = i%7 < 3
			in.MoveRight = i%11 < 2
			in.Fire = i%20 == 0
			g.Step(testDT, in)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("same seed and inputs produced different snapshots: %x vs %x", h1, h2)
	}
}

func TestSnapshotShape(t *testing.T) {
	g := newPlayingGame(t, 1)
	w := g.World()
	w.Enemies = append(w.Enemies, Enemy{Pos: core.Vec2{X: 1, Y: 2}, Half: core.Vec2{X: 0.5, Y: 0.35}})
	w.spawnExplosion(core.Vec2{X: -1, Y: 0}, 0.5)

	snap := g.Snapshot()

	if snap.Phase != "playing" {
		t.Errorf("phase = %q, expected playing", snap.Phase)
	}
	if len(snap.EnemyData) != 2 || snap.EnemyData[0] != 1 || snap.EnemyData[1] != 2 {
		t.Errorf("enemy data = %v", snap.EnemyData)
	}
	if len(snap.ExplosionData) != 3 || snap.ExplosionData[2] != 1.0 {
		t.Errorf("explosion data = %v, expected full remaining fraction", snap.ExplosionData)
	}
	if snap.Lives != 3 {
		t.Errorf("lives = %d", snap.Lives)
	}
}

func TestRenderSurvivesTinyViewports(t *testing.T) {
	g := newPlayingGame(t, 1)
	w := g.World()
	w.Enemies = append(w.Enemies, Enemy{Pos: core.Vec2{X: 0, Y: 3}, Half: core.Vec2{X: 0.5, Y: 0.35}})
	w.spawnExplosion(core.Vec2{X: 1, Y: 1}, 0.5)

	for _, dim := range []struct{ w, h int }{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {80, 1}} {
		g.Render(core.NewScreen(dim.w, dim.h))
	}
}

func TestRenderProducesHUDAndOverlays(t *testing.T) {
	g, err := New(config.Default())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Press SPACE to start") {
		t.Error("ready screen should show the start hint")
	}

	g.Step(testDT, core.InputState{Start: true})
	g.Render(screen)
	if !strings.Contains(screen.String(), "SCORE") {
		t.Error("playing screen should show the HUD")
	}

	g.round.Lives = 1
	w := g.World()
	w.EnemyShots = append(w.EnemyShots, Shot{Pos: w.Player.Pos, Half: core.Vec2{X: 0.2, Y: 0.2}})
	g.Step(testDT, core.InputState{})
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over screen should show the overlay")
	}
}
