package game

import "math"

// Snapshot is the immutable read-only view of one frame, consumed by the
// presentation layer and by determinism tests. Primitive types only.
type Snapshot struct {
	Tick      uint64
	Phase     string
	Score     int
	Lives     int
	HighScore int
	Paused    bool

	PlayerX, PlayerY float64

	// Entity positions flattened as (x, y) pairs.
	EnemyData      []float64
	PlayerShotData []float64
	EnemyShotData  []float64

	// Explosions flattened as (x, y, remaining fraction) triples.
	ExplosionData []float64
}

// Snapshot captures the current frame. Safe to hold across ticks; the slices
// are freshly allocated copies.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Phase:     g.round.Phase.String(),
		Score:     g.round.Score,
		Lives:     g.round.Lives,
		HighScore: g.round.HighScore,
		Paused:    g.paused,
	}
	w := g.world
	if w == nil {
		return snap
	}

	snap.PlayerX = w.Player.Pos.X
	snap.PlayerY = w.Player.Pos.Y

	snap.EnemyData = make([]float64, 0, len(w.Enemies)*2)
	for _, e := range w.Enemies {
		snap.EnemyData = append(snap.EnemyData, e.Pos.X, e.Pos.Y)
	}
	snap.PlayerShotData = make([]float64, 0, len(w.PlayerShots)*2)
	for _, s := range w.PlayerShots {
		snap.PlayerShotData = append(snap.PlayerShotData, s.Pos.X, s.Pos.Y)
	}
	snap.EnemyShotData = make([]float64, 0, len(w.EnemyShots)*2)
	for _, s := range w.EnemyShots {
		snap.EnemyShotData = append(snap.EnemyShotData, s.Pos.X, s.Pos.Y)
	}
	snap.ExplosionData = make([]float64, 0, len(w.Explosions)*3)
	for _, e := range w.Explosions {
		snap.ExplosionData = append(snap.ExplosionData, e.Pos.X, e.Pos.Y, e.Fraction())
	}
	return snap
}

// Hash returns a mixing hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Phase {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- score is non-negative
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- lives are non-negative
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- high score is non-negative
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.PlayerShotData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.EnemyShotData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ExplosionData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
