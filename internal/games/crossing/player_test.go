package crossing

import (
	"testing"

	"github.com/vovakirdan/bug-crossing/internal/config"
)

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultCrossingConfig())
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()

	if p.Lives() != 5 {
		t.Errorf("Lives = %d, want 5", p.Lives())
	}
	if p.Score() != 0 {
		t.Errorf("Score = %d, want 0", p.Score())
	}
	if x, y := p.Tile(); x != 202 || y != 395 {
		t.Errorf("start tile = (%d,%d), want (202,395)", x, y)
	}
}

func TestHandleInputMovesOneTile(t *testing.T) {
	tests := []struct {
		name  string
		dir   Direction
		wantX int
		wantY int
	}{
		{"left", DirectionLeft, 101, 395},
		{"right", DirectionRight, 303, 395},
		{"up", DirectionUp, 202, 312},
		{"down blocked at bottom", DirectionDown, 202, 395},
		{"none ignored", DirectionNone, 202, 395},
		{"unknown ignored", Direction(42), 202, 395},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			if p.HandleInput(tt.dir) {
				t.Fatal("single move should not score")
			}
			if x, y := p.Tile(); x != tt.wantX || y != tt.wantY {
				t.Errorf("position = (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	p := newTestPlayer()

	for iter := 0; iter < 10; iter++ {
		p.HandleInput(DirectionRight)
	}
	if x, _ := p.Tile(); x != 404 {
		t.Errorf("x after pushing right = %d, want 404", x)
	}

	for iter := 0; iter < 10; iter++ {
		p.HandleInput(DirectionLeft)
	}
	if x, _ := p.Tile(); x != 0 {
		t.Errorf("x after pushing left = %d, want 0", x)
	}
}

func TestUpdateChecksAxesIndependently(t *testing.T) {
	p := newTestPlayer()
	p.x = 404

	// x would leave the board, y is still valid
	p.Update(101, -83)

	if x, y := p.Tile(); x != 404 || y != 312 {
		t.Errorf("position = (%d,%d), want (404,312)", x, y)
	}
}

func TestCrossingScoresAndReturnsToStart(t *testing.T) {
	p := newTestPlayer()

	for i := 1; i <= 4; i++ {
		if p.HandleInput(DirectionUp) {
			t.Fatalf("move %d scored early", i)
		}
	}
	if !p.HandleInput(DirectionUp) {
		t.Fatal("fifth move up should reach the water")
	}

	if p.Score() != 1 {
		t.Errorf("Score = %d, want 1", p.Score())
	}
	if x, y := p.Tile(); x != 202 || y != 395 {
		t.Errorf("position after crossing = (%d,%d), want start tile", x, y)
	}
	if p.Lives() != 5 {
		t.Errorf("crossing changed lives to %d", p.Lives())
	}
}

func TestLoseLife(t *testing.T) {
	p := newTestPlayer()
	p.HandleInput(DirectionUp)
	p.HandleInput(DirectionLeft)

	p.LoseLife()

	if p.Lives() != 4 {
		t.Errorf("Lives = %d, want 4", p.Lives())
	}
	if x, y := p.Tile(); x != 202 || y != 395 {
		t.Errorf("position after losing a life = (%d,%d), want start tile", x, y)
	}

	for iter := 0; iter < 4; iter++ {
		p.LoseLife()
	}
	if p.Lives() != 0 {
		t.Errorf("Lives = %d, want 0", p.Lives())
	}
}

func TestResetScoreAndLives(t *testing.T) {
	p := newTestPlayer()
	for iter := 0; iter < 5; iter++ {
		p.HandleInput(DirectionUp)
	}
	p.LoseLife()

	p.ResetScore()
	p.ResetLives()

	if p.Score() != 0 || p.Lives() != 5 {
		t.Errorf("after reset score=%d lives=%d, want 0 and 5", p.Score(), p.Lives())
	}
}
