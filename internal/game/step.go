package game

import "github.com/maksdenisov/skystrike/internal/core"

// Step advances the simulation by one tick of dt seconds.
//
// While ready or game over the world does not evolve; the step only watches
// for the start or restart command. While playing the passes run in a fixed
// order: player movement, firing, motion integration, collision resolution,
// pruning, and finally the spawner. Entities the spawner enqueues become
// visible to the next step, never mutated mid-frame.
func (g *Game) Step(dt float64, in core.InputState) {
	switch g.round.Phase {
	case PhaseReady:
		if in.Start || in.Fire {
			g.startRound()
		}
		return
	case PhaseGameOver:
		if in.Restart {
			g.startRound()
		}
		return
	}

	if in.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.tick++
	g.movePlayer(dt, in)
	if in.Fire {
		g.fireShots()
	}
	g.integrate(dt)
	g.resolveCollisions()
	g.prune()
	// Collision resolution may have ended the round; the spawner must not
	// inject anything into the frozen world, not even in this same frame.
	if g.round.Phase == PhasePlaying {
		g.spawner.advance(dt, g.world)
	}
}

// movePlayer applies held directional intents. Each axis contributes its full
// per-frame displacement independently, so diagonals are the unnormalized
// vector sum. The position is clamped into the bounds after translation.
func (g *Game) movePlayer(dt float64, in core.InputState) {
	step := g.cfg.Player.Speed * dt
	p := &g.world.Player

	if in.MoveLeft {
		p.Pos.X -= step
	}
	if in.MoveRight {
		p.Pos.X += step
	}
	if in.MoveUp {
		p.Pos.Y += step
	}
	if in.MoveDown {
		p.Pos.Y -= step
	}

	p.Pos.X = g.world.Bounds.ClampX(p.Pos.X, p.Half.X)
	p.Pos.Y = g.world.Bounds.ClampY(p.Pos.Y, p.Half.Y)
}

// fireShots produces the three-cannon volley: left wing, right wing, nose.
// All shots share the same upward velocity. One shoot notification is sent
// per trigger; the core enforces no cooldown beyond the caller's cadence.
func (g *Game) fireShots() {
	p := g.world.Player
	half := core.Vec2{X: g.cfg.Player.ShotWidth / 2, Y: g.cfg.Player.ShotHeight / 2}
	muzzles := []core.Vec2{
		{X: p.Pos.X - p.Half.X, Y: p.Pos.Y},
		{X: p.Pos.X + p.Half.X, Y: p.Pos.Y},
		{X: p.Pos.X, Y: p.Pos.Y + p.Half.Y},
	}
	for _, m := range muzzles {
		g.world.PlayerShots = append(g.world.PlayerShots, Shot{
			Pos:  m,
			Half: half,
			Vel:  g.cfg.Player.ShotSpeed,
		})
	}
	g.sink.Notify(EventShoot)
}

// integrate advances every moving entity along its fixed vertical velocity
// and decays explosion countdowns. Decay runs here, before resolution, so a
// marker spawned by this frame's collisions keeps its full countdown until
// the next step.
func (g *Game) integrate(dt float64) {
	w := g.world
	for i := range w.PlayerShots {
		w.PlayerShots[i].Pos.Y += w.PlayerShots[i].Vel * dt
	}
	for i := range w.EnemyShots {
		w.EnemyShots[i].Pos.Y += w.EnemyShots[i].Vel * dt
	}
	for i := range w.Enemies {
		w.Enemies[i].Pos.Y -= g.cfg.Enemy.Speed * dt
	}
	for i := range w.Explosions {
		w.Explosions[i].Remaining -= dt
	}
}

// resolveCollisions runs the three AABB sweeps in fixed order. Every
// simultaneous collision in a frame is resolved independently; two enemy
// shots hitting the player in the same frame cost two lives.
func (g *Game) resolveCollisions() {
	w := g.world

	// Player shots vs enemies. Reverse order keeps removal safe; each shot
	// kills at most one enemy per frame, first match in collection order wins.
	for i := len(w.PlayerShots) - 1; i >= 0; i-- {
		shot := w.PlayerShots[i].Box()
		for j := range w.Enemies {
			if !shot.Overlaps(w.Enemies[j].Box()) {
				continue
			}
			w.spawnExplosion(w.Enemies[j].Pos, g.cfg.Effects.EnemyExplosionSecs)
			w.Enemies = append(w.Enemies[:j], w.Enemies[j+1:]...)
			w.PlayerShots = append(w.PlayerShots[:i], w.PlayerShots[i+1:]...)
			g.addScore(1)
			g.sink.Notify(EventExplosion)
			break
		}
	}

	// Enemy shots vs the player.
	player := w.Player.Box()
	for i := len(w.EnemyShots) - 1; i >= 0; i-- {
		if !w.EnemyShots[i].Box().Overlaps(player) {
			continue
		}
		w.EnemyShots = append(w.EnemyShots[:i], w.EnemyShots[i+1:]...)
		w.spawnExplosion(w.Player.Pos, g.cfg.Effects.PlayerExplosionSecs)
		g.sink.Notify(EventExplosion)
		g.loseLife()
	}

	// Enemy bodies vs the player. Independent of the shot pass above; a frame
	// can register both and each costs one life.
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		if !w.Enemies[i].Box().Overlaps(player) {
			continue
		}
		w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
		w.spawnExplosion(w.Player.Pos, g.cfg.Effects.PlayerExplosionSecs)
		g.sink.Notify(EventExplosion)
		g.loseLife()
	}
}

// prune removes entities past the configured margin and expired explosions.
// Enemies that escape off the bottom award no score and cost no life.
func (g *Game) prune() {
	w := g.world
	margin := g.cfg.World.PruneMargin

	shots := w.PlayerShots[:0]
	for _, s := range w.PlayerShots {
		if s.Pos.Y <= w.Bounds.Top+margin {
			shots = append(shots, s)
		}
	}
	w.PlayerShots = shots

	enemyShots := w.EnemyShots[:0]
	for _, s := range w.EnemyShots {
		if s.Pos.Y >= w.Bounds.Bottom-margin {
			enemyShots = append(enemyShots, s)
		}
	}
	w.EnemyShots = enemyShots

	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Pos.Y >= w.Bounds.Bottom-margin {
			enemies = append(enemies, e)
		}
	}
	w.Enemies = enemies

	explosions := w.Explosions[:0]
	for _, e := range w.Explosions {
		if e.Remaining > 0 {
			explosions = append(explosions, e)
		}
	}
	w.Explosions = explosions
}
