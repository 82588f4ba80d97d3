package crossing

import (
	"fmt"

	"github.com/vovakirdan/bug-crossing/internal/core"
)

// Scoreboard bar geometry in board pixels.
const (
	barTop    = 545
	barHeight = 50
	barTextY  = 578
	scoreX    = 15
	bestX     = 190
	livesX    = 380
)

// Scoreboard is a display cache of the player's score and lives.
// It holds a reference to the player but never changes it.
type Scoreboard struct {
	player *Player
	score  int
	lives  int
	best   int // Best recorded score, 0 when unknown
}

// NewScoreboard creates a scoreboard showing the player's current values.
func NewScoreboard(p *Player) *Scoreboard {
	sb := &Scoreboard{player: p}
	sb.Update()
	return sb
}

// Update copies the current score and lives from the player.
func (sb *Scoreboard) Update() {
	sb.score = sb.player.Score()
	sb.lives = sb.player.Lives()
}

// Score returns the cached score.
func (sb *Scoreboard) Score() int {
	return sb.score
}

// Lives returns the cached lives.
func (sb *Scoreboard) Lives() int {
	return sb.lives
}

// SetBest sets the best recorded score shown between score and lives.
func (sb *Scoreboard) SetBest(n int) {
	sb.best = n
}

// Best returns the best score, counting the current one.
func (sb *Scoreboard) Best() int {
	return max(sb.best, sb.score)
}

// Render draws the bar with the score on the left and lives on the right.
func (sb *Scoreboard) Render(dst *core.Screen, vp Viewport) {
	bar := vp.Rect(core.NewBox(0, barTop, float64(vp.BoardW), barHeight))
	for line := bar.Y; line < bar.Bottom(); line++ {
		for col := bar.X; col < bar.Right(); col++ {
			vp.Set(dst, col, line, '░', core.ColorGreen)
		}
	}

	line := vp.CellY(barTextY)
	vp.Text(dst, vp.CellX(scoreX), line, fmt.Sprintf(" SCORE: %d ", sb.score), core.ColorBrightGreen)
	if best := sb.Best(); best > 0 {
		vp.Text(dst, vp.CellX(bestX), line, fmt.Sprintf(" BEST: %d ", best), core.ColorBrightWhite)
	}
	vp.Text(dst, vp.CellX(livesX), line, fmt.Sprintf(" LIVES: %d ", sb.lives), core.ColorBrightGreen)
}
