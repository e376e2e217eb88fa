package game

import (
	"testing"

	"github.com/maksdenisov/skystrike/internal/config"
	"github.com/maksdenisov/skystrike/internal/core"
)

func newTestWorld() *World {
	return newWorld(config.Default())
}

func TestSpawnsFollowVirtualClock(t *testing.T) {
	cfg := config.Default()
	s := newSpawner(cfg, 1)
	w := newTestWorld()

	// Just short of a full period: nothing yet.
	s.advance(cfg.Spawner.SpawnEvery*0.9, w)
	if len(w.Enemies) != 0 {
		t.Fatalf("spawned %d enemies before the first period elapsed", len(w.Enemies))
	}

	// Crossing the period boundary yields exactly one.
	s.advance(cfg.Spawner.SpawnEvery*0.2, w)
	if len(w.Enemies) != 1 {
		t.Fatalf("expected 1 enemy after one period, got %d", len(w.Enemies))
	}

	// Residual time carries over between calls.
	s.advance(cfg.Spawner.SpawnEvery*0.91, w)
	if len(w.Enemies) != 2 {
		t.Errorf("accumulator lost its residual: %d enemies", len(w.Enemies))
	}
}

func TestLongStepSpawnsEveryElapsedPeriod(t *testing.T) {
	cfg := config.Default()
	s := newSpawner(cfg, 1)
	w := newTestWorld()

	s.advance(cfg.Spawner.SpawnEvery*3, w)
	if len(w.Enemies) != 3 {
		t.Errorf("expected 3 spawns for 3 elapsed periods, got %d", len(w.Enemies))
	}
}

func TestSpawnPositionsInsideBounds(t *testing.T) {
	cfg := config.Default()
	s := newSpawner(cfg, 42)
	w := newTestWorld()

	halfW := cfg.Enemy.Width / 2
	halfH := cfg.Enemy.Height / 2
	for i := 0; i < 200; i++ {
		s.spawnEnemy(w)
	}
	for i, e := range w.Enemies {
		if e.Pos.X < w.Bounds.Left+halfW || e.Pos.X > w.Bounds.Right-halfW {
			t.Fatalf("enemy %d spawned at x=%v, outside the inset bounds", i, e.Pos.X)
		}
		if e.Pos.Y != w.Bounds.Top+halfH {
			t.Fatalf("enemy %d spawned at y=%v, expected just above the top edge", i, e.Pos.Y)
		}
	}
}

func TestNoFireWithoutEnemies(t *testing.T) {
	cfg := config.Default()
	s := newSpawner(cfg, 1)
	w := newTestWorld()

	for i := 0; i < 10; i++ {
		s.enemyFire(w)
	}
	if len(w.EnemyShots) != 0 {
		t.Errorf("shots appeared without any enemy: %d", len(w.EnemyShots))
	}
}

func TestEnemiesFireOnlyNearTheTop(t *testing.T) {
	cfg := config.Default()
	s := newSpawner(cfg, 1)
	w := newTestWorld()

	// Well below the firing band: holds fire.
	w.Enemies = []Enemy{{
		Pos:  core.Vec2{X: 0, Y: w.Bounds.Top - cfg.Spawner.FireBand - 1},
		Half: core.Vec2{X: 0.5, Y: 0.35},
	}}
	s.enemyFire(w)
	if len(w.EnemyShots) != 0 {
		t.Fatalf("enemy below the firing band should not shoot")
	}

	// Inside the band: shoots downward from its own position.
	w.Enemies[0].Pos.Y = w.Bounds.Top - 1
	s.enemyFire(w)
	if len(w.EnemyShots) != 1 {
		t.Fatalf("enemy inside the firing band should shoot")
	}
	shot := w.EnemyShots[0]
	if shot.Pos != w.Enemies[0].Pos {
		t.Errorf("shot starts at %+v, expected the enemy position %+v", shot.Pos, w.Enemies[0].Pos)
	}
	if shot.Vel >= 0 {
		t.Errorf("enemy shot should travel downward, vel=%v", shot.Vel)
	}
}

func TestSpawnerDeterministicPerSeed(t *testing.T) {
	cfg := config.Default()
	positions := func(seed int64) []float64 {
		s := newSpawner(cfg, seed)
		w := newTestWorld()
		for i := 0; i < 20; i++ {
			s.spawnEnemy(w)
		}
		xs := make([]float64, len(w.Enemies))
		for i, e := range w.Enemies {
			xs[i] = e.Pos.X
		}
		return xs
	}

	a, b := positions(99), positions(99)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded spawns diverged at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
