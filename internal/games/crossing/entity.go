package crossing

import (
	"github.com/vovakirdan/bug-crossing/internal/config"
	"github.com/vovakirdan/bug-crossing/internal/core"
)

// Entity is anything positioned on the board that can be drawn and collided with.
// Player and Enemy implement it independently.
type Entity interface {
	// Position returns the sprite's top-left corner in board pixels.
	Position() (x, y float64)

	// Bounds returns the collision box in board pixels.
	Bounds() core.Box

	// Render draws the entity; it must not change any state.
	Render(dst *core.Screen, vp Viewport)
}

// RandSource supplies the uniform [0, 1) draws used for enemy spawns.
// *math/rand.Rand satisfies it; tests inject a scripted source.
type RandSource interface {
	Float64() float64
}

// Sprite is a small block of text drawn with its top-left corner at a cell.
// Spaces are transparent.
type Sprite struct {
	Lines []string
	Color core.Color
}

// Draw renders the sprite at the given screen cell, clipped to the viewport.
func (s Sprite) Draw(dst *core.Screen, vp Viewport, col, line int) {
	for dy, l := range s.Lines {
		dx := 0
		for _, r := range l {
			if r != ' ' {
				vp.Set(dst, col+dx, line+dy, r, s.Color)
			}
			dx++
		}
	}
}

var (
	playerSprite = Sprite{
		Lines: []string{
			`     O     `,
			`    /|\    `,
			`    / \    `,
		},
		Color: core.ColorBrightYellow,
	}

	enemySprite = Sprite{
		Lines: []string{
			`  _/\_/\_  `,
			` (@@@@@@@)>`,
			`  /\ /\ /\ `,
		},
		Color: core.ColorBrightRed,
	}
)

// hitbox returns the collision box for a sprite whose tile row starts at rowTop.
func hitbox(x, rowTop float64, hb config.CrossingHitbox) core.Box {
	return core.NewBox(x+hb.InsetX, rowTop+hb.InsetY, hb.Width, hb.Height)
}
