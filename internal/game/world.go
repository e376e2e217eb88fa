// Package game implements the skystrike simulation core: a fixed-viewport
// world in which the player craft moves, fires, and must survive timed waves
// of descending enemies. The package is pure logic with no external
// dependencies; input, rendering, audio and persistence are collaborators
// owned by the platform layer.
package game

import (
	"github.com/maksdenisov/skystrike/internal/config"
	"github.com/maksdenisov/skystrike/internal/core"
)

// playerStartLift is how far above the bottom bound the player spawns.
const playerStartLift = 1.0

// Player is the single player craft. It is never removed from the world;
// running out of lives ends the round instead.
type Player struct {
	Pos  core.Vec2
	Half core.Vec2
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.Box{Center: p.Pos, Half: p.Half}
}

// Enemy is a hostile craft drifting toward the bottom bound.
type Enemy struct {
	Pos  core.Vec2
	Half core.Vec2
}

// Box returns the enemy's collision box.
func (e Enemy) Box() core.Box {
	return core.Box{Center: e.Pos, Half: e.Half}
}

// Shot is a projectile with a fixed vertical velocity.
// Player shots travel up (positive Vel), enemy shots down (negative Vel).
type Shot struct {
	Pos  core.Vec2
	Half core.Vec2
	Vel  float64
}

// Box returns the shot's collision box.
func (s Shot) Box() core.Box {
	return core.Box{Center: s.Pos, Half: s.Half}
}

// Explosion is a non-colliding, time-limited marker left behind by collision
// resolution. It is a first-class world entity so its pruning follows the
// same pass as everything else.
type Explosion struct {
	Pos       core.Vec2
	Remaining float64 // Seconds until removal
	Lifetime  float64 // Initial countdown, kept for fade rendering
}

// Fraction returns the remaining life as a 0..1 fraction.
func (e Explosion) Fraction() float64 {
	if e.Lifetime <= 0 {
		return 0
	}
	return core.ClampF(e.Remaining/e.Lifetime, 0, 1)
}

// World is the mutable aggregate of all simulated entities for one round.
// It is owned by the Game and mutated exclusively inside Step; the slices
// are processed back-to-front wherever a pass removes entries.
type World struct {
	Bounds      core.Bounds
	Player      Player
	Enemies     []Enemy
	PlayerShots []Shot
	EnemyShots  []Shot
	Explosions  []Explosion
}

// newWorld constructs an empty world with a freshly placed player.
func newWorld(cfg config.Config) *World {
	b := core.BoundsFor(cfg.World.Height, cfg.World.Aspect)
	return &World{
		Bounds: b,
		Player: Player{
			Pos:  core.Vec2{X: 0, Y: b.Bottom + playerStartLift},
			Half: core.Vec2{X: cfg.Player.Width / 2, Y: cfg.Player.Height / 2},
		},
	}
}

// spawnExplosion adds an explosion marker at the given position.
func (w *World) spawnExplosion(at core.Vec2, lifetime float64) {
	w.Explosions = append(w.Explosions, Explosion{
		Pos:       at,
		Remaining: lifetime,
		Lifetime:  lifetime,
	})
}
