// Package config provides YAML-based tuning configuration for the shooter.
// All values are in world units and seconds; the simulation layer consumes
// them as-is and the platform layer never interprets them.
package config

import "fmt"

// Config contains every tunable of the simulation.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Spawner SpawnerConfig `yaml:"spawner"`
	Effects EffectsConfig `yaml:"effects"`
	Rules   RulesConfig   `yaml:"rules"`
}

// WorldConfig defines the play area geometry.
type WorldConfig struct {
	Height      float64 `yaml:"height"`       // World height in units; width derives from aspect
	Aspect      float64 `yaml:"aspect"`       // Width / height ratio of the play area
	PruneMargin float64 `yaml:"prune_margin"` // Distance past a bound before an entity is removed
}

// PlayerConfig defines the player craft and its projectiles.
type PlayerConfig struct {
	Speed      float64 `yaml:"speed"`       // Movement speed per held axis, units/second
	Width      float64 `yaml:"width"`       // Hitbox width
	Height     float64 `yaml:"height"`      // Hitbox height
	ShotSpeed  float64 `yaml:"shot_speed"`  // Upward projectile speed, units/second
	ShotWidth  float64 `yaml:"shot_width"`  // Projectile hitbox width
	ShotHeight float64 `yaml:"shot_height"` // Projectile hitbox height
}

// EnemyConfig defines enemy craft and their projectiles.
type EnemyConfig struct {
	Speed      float64 `yaml:"speed"`       // Downward drift speed, units/second
	Width      float64 `yaml:"width"`       // Hitbox width
	Height     float64 `yaml:"height"`      // Hitbox height
	ShotSpeed  float64 `yaml:"shot_speed"`  // Downward projectile speed, units/second
	ShotWidth  float64 `yaml:"shot_width"`  // Projectile hitbox width
	ShotHeight float64 `yaml:"shot_height"` // Projectile hitbox height
}

// SpawnerConfig defines the timed spawn policy.
type SpawnerConfig struct {
	SpawnEvery float64 `yaml:"spawn_every"` // Seconds between enemy spawns
	FireEvery  float64 `yaml:"fire_every"`  // Seconds between enemy shot attempts
	FireBand   float64 `yaml:"fire_band"`   // Enemies fire only within this distance below the top bound
}

// EffectsConfig defines explosion marker lifetimes.
type EffectsConfig struct {
	EnemyExplosionSecs  float64 `yaml:"enemy_explosion_secs"`  // Lifetime of an enemy kill flash
	PlayerExplosionSecs float64 `yaml:"player_explosion_secs"` // Lifetime of a player hit flash
}

// RulesConfig defines round rules.
type RulesConfig struct {
	Lives int `yaml:"lives"` // Lives at round start
}

// Validate checks that the configuration can drive a round.
// It fails fast: an invalid config is fatal at construction time, never
// detected mid-round.
func (c Config) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"world.height", c.World.Height > 0},
		{"world.aspect", c.World.Aspect > 0},
		{"world.prune_margin", c.World.PruneMargin >= 0},
		{"player.speed", c.Player.Speed > 0},
		{"player.width", c.Player.Width > 0},
		{"player.height", c.Player.Height > 0},
		{"player.shot_speed", c.Player.ShotSpeed > 0},
		{"player.shot_width", c.Player.ShotWidth > 0},
		{"player.shot_height", c.Player.ShotHeight > 0},
		{"enemy.speed", c.Enemy.Speed > 0},
		{"enemy.width", c.Enemy.Width > 0},
		{"enemy.height", c.Enemy.Height > 0},
		{"enemy.shot_speed", c.Enemy.ShotSpeed > 0},
		{"enemy.shot_width", c.Enemy.ShotWidth > 0},
		{"enemy.shot_height", c.Enemy.ShotHeight > 0},
		{"spawner.spawn_every", c.Spawner.SpawnEvery > 0},
		{"spawner.fire_every", c.Spawner.FireEvery > 0},
		{"spawner.fire_band", c.Spawner.FireBand > 0},
		{"effects.enemy_explosion_secs", c.Effects.EnemyExplosionSecs > 0},
		{"effects.player_explosion_secs", c.Effects.PlayerExplosionSecs > 0},
		{"rules.lives", c.Rules.Lives > 0},
	}
	for _, ch := range checks {
		if !ch.ok {
			return fmt.Errorf("config: %s must be positive", ch.name)
		}
	}
	if c.Enemy.Width >= c.World.Height*c.World.Aspect {
		return fmt.Errorf("config: enemy.width does not fit the play area")
	}
	return nil
}
