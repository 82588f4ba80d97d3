package crossing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/bug-crossing/internal/config"
)

// scriptedRand returns its values in order, cycling at the end.
type scriptedRand struct {
	vals []float64
	i    int
}

func (s *scriptedRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func constRand(v float64) *scriptedRand {
	return &scriptedRand{vals: []float64{v}}
}

func TestNewEnemySpawnsOffScreen(t *testing.T) {
	tests := []struct {
		r        float64
		wantX    float64
		wantVelo float64
	}{
		{0.5, -1131, 325},
		{0.25, -1631, 237.5},
		{0, -2131, 150},
	}

	cfg := config.DefaultCrossingConfig()
	for _, tt := range tests {
		e := NewEnemy(63, cfg, constRand(tt.r))
		x, y := e.Position()
		if x != tt.wantX {
			t.Errorf("r=%v: x = %v, want %v", tt.r, x, tt.wantX)
		}
		if y != 63 {
			t.Errorf("r=%v: y = %v, want 63", tt.r, y)
		}
		if e.Velocity() != tt.wantVelo {
			t.Errorf("r=%v: velocity = %v, want %v", tt.r, e.Velocity(), tt.wantVelo)
		}
	}
}

func TestRespawnRanges(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	e := NewEnemy(146, cfg, rand.New(rand.NewSource(7)))

	for iter := 0; iter < 1000; iter++ {
		e.Respawn()
		x, _ := e.Position()
		if x >= cfg.Enemies.StartingX || x < cfg.Enemies.StartingX-cfg.Enemies.SpawnSpread {
			t.Fatalf("respawn x = %v outside [%v, %v)", x,
				cfg.Enemies.StartingX-cfg.Enemies.SpawnSpread, cfg.Enemies.StartingX)
		}
		if v := e.Velocity(); v < 150 || v >= 500 {
			t.Fatalf("velocity = %v outside [150, 500)", v)
		}
	}
}

func TestEnemyUpdateMoves(t *testing.T) {
	e := NewEnemy(63, config.DefaultCrossingConfig(), constRand(0.5))
	e.x = 0

	e.Update(0.5)

	if x, _ := e.Position(); x != 162.5 {
		t.Errorf("x = %v, want 162.5", x)
	}
}

func TestEnemyRespawnsAtRightEdge(t *testing.T) {
	e := NewEnemy(63, config.DefaultCrossingConfig(), constRand(0.5))

	// Still on the board: moves past the edge.
	e.x = 500
	e.Update(0.1)
	if x, _ := e.Position(); x <= 505 {
		t.Fatalf("x = %v, want past the edge", x)
	}

	// Past the edge: respawns instead of moving.
	e.Update(0.1)
	if x, _ := e.Position(); x != -1131 {
		t.Errorf("x after respawn = %v, want -1131", x)
	}
	if y := e.y; y != 63 {
		t.Errorf("respawn changed lane to %v", y)
	}
}

func TestEnemySpeedScale(t *testing.T) {
	e := NewEnemy(63, config.DefaultCrossingConfig(), constRand(0.5))
	e.x = 0
	e.SetSpeedScale(2)

	e.Update(0.1)

	if x, _ := e.Position(); math.Abs(x-65) > 1e-9 {
		t.Errorf("x = %v, want 65", x)
	}
	if e.Velocity() != 325 {
		t.Errorf("speed scale changed velocity to %v", e.Velocity())
	}
}

func TestCreateEnemiesCyclesLanes(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	enemies := createEnemies(cfg, constRand(0.5))

	if len(enemies) != 12 {
		t.Fatalf("len = %d, want 12", len(enemies))
	}
	lanes := []float64{63, 146, 229}
	for i, e := range enemies {
		if _, y := e.Position(); y != lanes[i%3] {
			t.Errorf("enemy %d y = %v, want %v", i, y, lanes[i%3])
		}
	}
}

func TestSameRowHitboxesShareY(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	p := NewPlayer(cfg)
	e := NewEnemy(float64(cfg.Player.MaxY), cfg, constRand(0.5))

	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"same tile", 202, true},
		{"just overlapping", 202 - 80, true},
		{"edges touching", 202 - 81, false},
		{"one tile away", 303, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e.x = tt.x
			if got := p.Bounds().Intersects(e.Bounds()); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}
