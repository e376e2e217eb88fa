package game

import (
	"math/rand"

	"github.com/maksdenisov/skystrike/internal/config"
	"github.com/maksdenisov/skystrike/internal/core"
)

// spawner injects enemies and enemy shots into the world at fixed wall-clock
// periods, independent of frame rate. It is driven by accumulated elapsed
// time instead of real timers: the accumulators advance only while the round
// is playing, so a discarded world can never receive a stale spawn, and the
// policy is unit-testable by advancing a virtual clock.
type spawner struct {
	cfg      config.Config
	rng      *rand.Rand
	spawnAcc float64 // Seconds accumulated toward the next enemy spawn
	fireAcc  float64 // Seconds accumulated toward the next enemy shot
}

func newSpawner(cfg config.Config, seed int64) *spawner {
	return &spawner{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// advance accumulates elapsed time and fires every period that has elapsed.
// A long dt may spawn more than once; order within one call is spawn events
// first, fire events second.
func (s *spawner) advance(dt float64, w *World) {
	s.spawnAcc += dt
	for s.spawnAcc >= s.cfg.Spawner.SpawnEvery {
		s.spawnAcc -= s.cfg.Spawner.SpawnEvery
		s.spawnEnemy(w)
	}

	s.fireAcc += dt
	for s.fireAcc >= s.cfg.Spawner.FireEvery {
		s.fireAcc -= s.cfg.Spawner.FireEvery
		s.enemyFire(w)
	}
}

// spawnEnemy creates one enemy at a uniformly random x inside the bounds,
// just above the top edge so it drifts into view.
func (s *spawner) spawnEnemy(w *World) {
	halfW := s.cfg.Enemy.Width / 2
	halfH := s.cfg.Enemy.Height / 2

	x := w.Bounds.Left + halfW + s.rng.Float64()*(w.Bounds.Width()-s.cfg.Enemy.Width)
	w.Enemies = append(w.Enemies, Enemy{
		Pos:  core.Vec2{X: x, Y: w.Bounds.Top + halfH},
		Half: core.Vec2{X: halfW, Y: halfH},
	})
}

// enemyFire picks one enemy uniformly at random and, if it is still inside
// the firing band near the top of the view, spawns a downward shot at its
// position. Enemies that have descended past the band hold their fire.
func (s *spawner) enemyFire(w *World) {
	if len(w.Enemies) == 0 {
		return
	}
	e := w.Enemies[s.rng.Intn(len(w.Enemies))]
	if e.Pos.Y < w.Bounds.Top-s.cfg.Spawner.FireBand {
		return
	}
	w.EnemyShots = append(w.EnemyShots, Shot{
		Pos:  e.Pos,
		Half: core.Vec2{X: s.cfg.Enemy.ShotWidth / 2, Y: s.cfg.Enemy.ShotHeight / 2},
		Vel:  -s.cfg.Enemy.ShotSpeed,
	})
}
