// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for configurations the game cannot run with.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// CrossingConfig contains all configuration for the Bug Crossing game.
// Distances are board pixels, speeds are pixels per second.
type CrossingConfig struct {
	Board      CrossingBoard    `yaml:"board"`
	Player     CrossingPlayer   `yaml:"player"`
	Enemies    CrossingEnemies  `yaml:"enemies"`
	Hitbox     CrossingHitbox   `yaml:"hitbox"`
	Loop       CrossingLoop     `yaml:"loop"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Viewport   CrossingViewport `yaml:"viewport"`
}

// CrossingBoard defines the playing surface.
type CrossingBoard struct {
	Width      int `yaml:"width"`       // Board width in pixels
	Height     int `yaml:"height"`      // Board height in pixels
	TileWidth  int `yaml:"tile_width"`  // Horizontal movement step
	TileHeight int `yaml:"tile_height"` // Vertical movement step
	Rows       int `yaml:"rows"`        // Number of tile rows (water, road, grass)
	Cols       int `yaml:"cols"`        // Number of tile columns
}

// CrossingPlayer defines the player's bounds, start tile and lives.
type CrossingPlayer struct {
	StartX  int `yaml:"start_x"`
	MinX    int `yaml:"min_x"`
	MaxX    int `yaml:"max_x"`
	MinY    int `yaml:"min_y"` // Goal row
	MaxY    int `yaml:"max_y"` // Start row
	OffsetY int `yaml:"offset_y"`
	Lives   int `yaml:"lives"`
}

// CrossingEnemies defines the enemy pool and its spawn rules.
type CrossingEnemies struct {
	Count       int     `yaml:"count"`
	Lanes       int     `yaml:"lanes"`
	LaneBaseY   float64 `yaml:"lane_base_y"`
	StartingX   float64 `yaml:"starting_x"`   // Anchor behind which enemies (re)join
	MaxX        float64 `yaml:"max_x"`        // Right edge at which enemies respawn
	SpawnSpread float64 `yaml:"spawn_spread"` // Width of the random spawn range
	MinVelocity float64 `yaml:"min_velocity"`
	MaxVelocity float64 `yaml:"max_velocity"`
}

// CrossingHitbox is the collision box of a sprite relative to its position.
// The same box is used for the player and the enemies.
type CrossingHitbox struct {
	InsetX float64 `yaml:"inset_x"`
	InsetY float64 `yaml:"inset_y"` // Measured from the top of the tile row
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CrossingLoop defines frame timing limits.
type CrossingLoop struct {
	MaxDelta float64 `yaml:"max_delta"` // Longest frame in seconds; longer gaps are clamped
}

// CrossingViewport defines how many terminal cells one tile occupies.
type CrossingViewport struct {
	CellsPerTileX int `yaml:"cells_per_tile_x"`
	CellsPerTileY int `yaml:"cells_per_tile_y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI value to a preset.
// The empty string means "use the config file as is".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate checks that the configuration describes a playable board.
// All returned errors wrap ErrInvalidConfig.
func (c CrossingConfig) Validate() error {
	b, p, e := c.Board, c.Player, c.Enemies
	switch {
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, b.Width, b.Height)
	case b.TileWidth <= 0 || b.TileHeight <= 0:
		return fmt.Errorf("%w: tile size %dx%d", ErrInvalidConfig, b.TileWidth, b.TileHeight)
	case b.Rows <= 0 || b.Cols <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, b.Cols, b.Rows)
	case p.MinX > p.MaxX:
		return fmt.Errorf("%w: player min_x %d > max_x %d", ErrInvalidConfig, p.MinX, p.MaxX)
	case p.MinY >= p.MaxY:
		return fmt.Errorf("%w: player min_y %d >= max_y %d", ErrInvalidConfig, p.MinY, p.MaxY)
	case p.StartX < p.MinX || p.StartX > p.MaxX:
		return fmt.Errorf("%w: player start_x %d outside [%d, %d]", ErrInvalidConfig, p.StartX, p.MinX, p.MaxX)
	case p.Lives <= 0:
		return fmt.Errorf("%w: player lives %d", ErrInvalidConfig, p.Lives)
	case e.Count < 0:
		return fmt.Errorf("%w: enemy count %d", ErrInvalidConfig, e.Count)
	case e.Count > 0 && e.Lanes <= 0:
		return fmt.Errorf("%w: enemy lanes %d", ErrInvalidConfig, e.Lanes)
	case e.MinVelocity <= 0 || e.MinVelocity >= e.MaxVelocity:
		return fmt.Errorf("%w: enemy velocity range [%g, %g)", ErrInvalidConfig, e.MinVelocity, e.MaxVelocity)
	case e.SpawnSpread < 0:
		return fmt.Errorf("%w: spawn spread %g", ErrInvalidConfig, e.SpawnSpread)
	case e.StartingX >= e.MaxX:
		return fmt.Errorf("%w: enemy starting_x %g >= max_x %g", ErrInvalidConfig, e.StartingX, e.MaxX)
	case c.Hitbox.Width <= 0 || c.Hitbox.Height <= 0:
		return fmt.Errorf("%w: hitbox %gx%g", ErrInvalidConfig, c.Hitbox.Width, c.Hitbox.Height)
	case c.Loop.MaxDelta <= 0:
		return fmt.Errorf("%w: loop max_delta %g", ErrInvalidConfig, c.Loop.MaxDelta)
	case c.Viewport.CellsPerTileX <= 0 || c.Viewport.CellsPerTileY <= 0:
		return fmt.Errorf("%w: viewport %dx%d cells per tile", ErrInvalidConfig,
			c.Viewport.CellsPerTileX, c.Viewport.CellsPerTileY)
	}
	return nil
}
