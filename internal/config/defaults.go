package config

import (
	_ "embed"
)

//go:embed defaults/skystrike.yaml
var defaultYAML []byte

// Default returns the built-in tuning configuration.
// The values are tuned for a 60 Hz tick on a standard terminal.
func Default() Config {
	return Config{
		World: WorldConfig{
			Height:      10.0,
			Aspect:      1.6,
			PruneMargin: 1.0,
		},
		Player: PlayerConfig{
			Speed:      8.0,
			Width:      1.2,
			Height:     0.8,
			ShotSpeed:  12.0,
			ShotWidth:  0.2,
			ShotHeight: 0.5,
		},
		Enemy: EnemyConfig{
			Speed:      2.0,
			Width:      1.0,
			Height:     0.7,
			ShotSpeed:  6.0,
			ShotWidth:  0.25,
			ShotHeight: 0.5,
		},
		Spawner: SpawnerConfig{
			SpawnEvery: 1.5,
			FireEvery:  2.0,
			FireBand:   4.0,
		},
		Effects: EffectsConfig{
			EnemyExplosionSecs:  0.35,
			PlayerExplosionSecs: 0.5,
		},
		Rules: RulesConfig{
			Lives: 3,
		},
	}
}
