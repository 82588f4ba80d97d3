package crossing

import "math"

// EnemySnapshot is the observable state of one enemy.
type EnemySnapshot struct {
	X        float64
	Y        float64
	Velocity float64
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	Paused  bool
	Score   int
	Lives   int
	PlayerX int
	PlayerY int
	Enemies []EnemySnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	px, py := g.player.Tile()
	snap := Snapshot{
		Tick:    g.tick,
		Phase:   g.phase,
		Paused:  g.paused,
		Score:   g.player.Score(),
		Lives:   g.player.Lives(),
		PlayerX: px,
		PlayerY: py,
		Enemies: make([]EnemySnapshot, 0, len(g.enemies)),
	}
	for _, e := range g.enemies {
		x, y := e.Position()
		snap.Enemies = append(snap.Enemies, EnemySnapshot{X: x, Y: y, Velocity: e.Velocity()})
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, e := range snap.Enemies {
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + math.Float64bits(e.Velocity)
	}

	return h
}
