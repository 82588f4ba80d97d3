package crossing

import (
	"github.com/vovakirdan/bug-crossing/internal/config"
	"github.com/vovakirdan/bug-crossing/internal/core"
)

// Enemy is a bug that crosses its lane from left to right.
// When it leaves the board it is respawned in place behind the left edge
// with a new random velocity.
type Enemy struct {
	x, y       float64 // Sprite position in pixels; y never changes
	velocity   float64 // Pixels per second, drawn from [MinVelocity, MaxVelocity)
	speedScale float64 // Difficulty multiplier applied on top of velocity
	cfg        config.CrossingEnemies
	hitbox     config.CrossingHitbox
	offsetY    float64
	rng        RandSource
}

// NewEnemy creates an enemy in the lane at y with a randomized start and velocity.
func NewEnemy(y float64, cfg config.CrossingConfig, rng RandSource) *Enemy {
	e := &Enemy{
		y:          y,
		speedScale: 1.0,
		cfg:        cfg.Enemies,
		hitbox:     cfg.Hitbox,
		offsetY:    float64(cfg.Player.OffsetY),
		rng:        rng,
	}
	e.Respawn()
	return e
}

// createEnemies builds the enemy pool, cycling through the lanes.
func createEnemies(cfg config.CrossingConfig, rng RandSource) []*Enemy {
	enemies := make([]*Enemy, 0, cfg.Enemies.Count)
	for i := 0; i < cfg.Enemies.Count; i++ {
		y := cfg.Enemies.LaneBaseY + float64(cfg.Board.TileHeight*(i%cfg.Enemies.Lanes))
		enemies = append(enemies, NewEnemy(y, cfg, rng))
	}
	return enemies
}

// Update moves the enemy by velocity * dt seconds.
// An enemy that has reached the right edge respawns instead of moving.
func (e *Enemy) Update(dt float64) {
	if e.x >= e.cfg.MaxX {
		e.Respawn()
		return
	}
	e.x += e.velocity * e.speedScale * dt
}

// Respawn resets x to a random point behind the off-screen anchor and draws a new velocity.
func (e *Enemy) Respawn() {
	e.x = e.startingX()
	e.velocity = e.newVelocity()
}

// startingX returns a position uniformly spread over SpawnSpread pixels,
// strictly before StartingX, so enemies created together enter at different times.
func (e *Enemy) startingX() float64 {
	return e.cfg.StartingX - e.cfg.SpawnSpread*(1-e.rng.Float64())
}

// newVelocity draws a velocity uniformly from [MinVelocity, MaxVelocity).
func (e *Enemy) newVelocity() float64 {
	return e.cfg.MinVelocity + (e.cfg.MaxVelocity-e.cfg.MinVelocity)*e.rng.Float64()
}

// SetSpeedScale sets the difficulty multiplier. It does not change Velocity.
func (e *Enemy) SetSpeedScale(scale float64) {
	e.speedScale = scale
}

// Velocity returns the drawn velocity in pixels per second.
func (e *Enemy) Velocity() float64 {
	return e.velocity
}

// Position returns the sprite position.
func (e *Enemy) Position() (float64, float64) {
	return e.x, e.y
}

// Bounds returns the collision box.
func (e *Enemy) Bounds() core.Box {
	return hitbox(e.x, e.y+e.offsetY, e.hitbox)
}

// Render draws the bug at its current position.
func (e *Enemy) Render(dst *core.Screen, vp Viewport) {
	enemySprite.Draw(dst, vp, vp.CellX(e.x), vp.CellY(e.y+e.offsetY))
}
