package crossing

import (
	"github.com/vovakirdan/bug-crossing/internal/config"
	"github.com/vovakirdan/bug-crossing/internal/core"
)

// Direction is a single tile move requested by the user.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionUp
	DirectionRight
	DirectionDown
)

// directionFor maps a platform action to a move; non-move actions map to DirectionNone.
func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionLeft:
		return DirectionLeft
	case core.ActionUp:
		return DirectionUp
	case core.ActionRight:
		return DirectionRight
	case core.ActionDown:
		return DirectionDown
	default:
		return DirectionNone
	}
}

// Player is the user-controlled character. It moves one tile at a time,
// stays inside its bounds, and scores a point on reaching the goal row.
type Player struct {
	x, y   int // Sprite position in pixels, always on the tile grid
	lives  int
	score  int
	bounds config.CrossingPlayer
	tileW  int
	tileH  int
	hitbox config.CrossingHitbox
}

// NewPlayer creates a player on the start tile with full lives and no score.
func NewPlayer(cfg config.CrossingConfig) *Player {
	p := &Player{
		bounds: cfg.Player,
		tileW:  cfg.Board.TileWidth,
		tileH:  cfg.Board.TileHeight,
		hitbox: cfg.Hitbox,
	}
	p.GoBackToStart()
	p.ResetLives()
	p.ResetScore()
	return p
}

// HandleInput translates a direction into one tile of displacement and applies it.
// Unknown directions are ignored. Returns true if the move scored a point.
func (p *Player) HandleInput(dir Direction) bool {
	var dx, dy int
	switch dir {
	case DirectionLeft:
		dx = -p.tileW
	case DirectionUp:
		dy = -p.tileH
	case DirectionRight:
		dx = p.tileW
	case DirectionDown:
		dy = p.tileH
	default:
		return false
	}
	return p.Update(dx, dy)
}

// Update applies a displacement. Each axis moves only if its result stays
// within that axis' bounds. Reaching the goal row scores a point and sends
// the player back to the start tile. Returns true if a point was scored.
func (p *Player) Update(dx, dy int) bool {
	if ny := p.y + dy; ny >= p.bounds.MinY && ny <= p.bounds.MaxY {
		p.y = ny
	}
	if nx := p.x + dx; nx >= p.bounds.MinX && nx <= p.bounds.MaxX {
		p.x = nx
	}

	if p.ReachedGoal() {
		p.score++
		p.GoBackToStart()
		return true
	}
	return false
}

// ReachedGoal reports whether the player stands on the goal row.
func (p *Player) ReachedGoal() bool {
	return p.y == p.bounds.MinY
}

// GoBackToStart moves the player to the start tile (center-bottom).
func (p *Player) GoBackToStart() {
	p.x = p.bounds.StartX
	p.y = p.bounds.MaxY
}

// LoseLife takes one life and sends the player back to the start tile.
// Reaching zero lives is the game loop's concern.
func (p *Player) LoseLife() {
	p.lives--
	p.GoBackToStart()
}

// Score returns the number of crossings.
func (p *Player) Score() int {
	return p.score
}

// Lives returns the remaining lives.
func (p *Player) Lives() int {
	return p.lives
}

// ResetScore sets the score to zero.
func (p *Player) ResetScore() {
	p.score = 0
}

// ResetLives restores the configured starting lives.
func (p *Player) ResetLives() {
	p.lives = p.bounds.Lives
}

// Tile returns the player's position as grid pixels.
func (p *Player) Tile() (x, y int) {
	return p.x, p.y
}

// Position returns the sprite position.
func (p *Player) Position() (float64, float64) {
	return float64(p.x), float64(p.y)
}

// Bounds returns the collision box.
func (p *Player) Bounds() core.Box {
	return hitbox(float64(p.x), float64(p.y+p.bounds.OffsetY), p.hitbox)
}

// Render draws the player at its current position.
func (p *Player) Render(dst *core.Screen, vp Viewport) {
	x, y := p.Position()
	playerSprite.Draw(dst, vp, vp.CellX(x), vp.CellY(y+float64(p.bounds.OffsetY)))
}
