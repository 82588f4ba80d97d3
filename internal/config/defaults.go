package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default Bug Crossing configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Board: CrossingBoard{
			Width:      505,
			Height:     606,
			TileWidth:  101,
			TileHeight: 83,
			Rows:       6,
			Cols:       5,
		},
		Player: CrossingPlayer{
			StartX:  202,
			MinX:    0,
			MaxX:    404,
			MinY:    -20, // 0 - offset
			MaxY:    395, // 415 - offset
			OffsetY: 20,
			Lives:   5,
		},
		Enemies: CrossingEnemies{
			Count:       12,
			Lanes:       3,
			LaneBaseY:   63,
			StartingX:   -131,
			MaxX:        505,
			SpawnSpread: 2000,
			MinVelocity: 150,
			MaxVelocity: 500,
		},
		Hitbox: CrossingHitbox{
			InsetX: 10,
			InsetY: 10,
			Width:  81,
			Height: 63,
		},
		Loop: CrossingLoop{
			MaxDelta: 0.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
		Viewport: CrossingViewport{
			CellsPerTileX: 12,
			CellsPerTileY: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCrossingYAML
}
