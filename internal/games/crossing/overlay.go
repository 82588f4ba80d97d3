package crossing

import (
	"fmt"

	"github.com/vovakirdan/bug-crossing/internal/core"
)

// Overlay buttons in board pixels.
var (
	startButton     = core.NewBox(183, 480, 138, 48)
	playAgainButton = core.NewBox(183, 300, 138, 48)
	gameOverPanel   = core.NewBox(20, 70, 466, 500)
)

// instructionLines returns the body of the title overlay.
func instructionLines(lives int) []string {
	return []string{
		"Reach the water without touching a bug.",
		"",
		"Move one tile per key press with the arrows",
		"(h j k l and w a s d work too).",
		"",
		"Each crossing scores a point and puts you",
		"back on the grass. A bug bite costs a life.",
		"",
		fmt.Sprintf("You start with %d lives.", lives),
		"P pauses the game, Q quits.",
	}
}

// buttonHit reports whether a click landed on the button's cells.
func buttonHit(in core.InputFrame, vp Viewport, button core.Box) bool {
	if !in.Clicked {
		return false
	}
	return vp.Rect(button).Contains(in.Click.X, in.Click.Y)
}

// renderButton draws a framed button with a centered label.
func renderButton(dst *core.Screen, vp Viewport, button core.Box, label string) {
	r := vp.Rect(button)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorBrightGreen)
	col := r.X + (r.W-len([]rune(label)))/2
	dst.DrawTextColor(col, r.Y+r.H/2, label, core.ColorBrightWhite)
}

// renderInstructions covers the whole board with the title overlay.
func (g *Game) renderInstructions(dst *core.Screen) {
	surface := g.vp.Surface()
	dst.DrawRect(surface, ' ', core.ColorDefault)
	dst.DrawBox(surface, core.ColorCyan)

	line := surface.Y + 2
	g.vp.CenteredText(dst, line, "B U G   C R O S S I N G", core.ColorBrightYellow)
	line += 2
	for _, text := range instructionLines(g.cfg.Player.Lives) {
		g.vp.CenteredText(dst, line, text, core.ColorWhite)
		line++
	}

	renderButton(dst, g.vp, startButton, "START")
	g.vp.CenteredText(dst, g.vp.Rect(startButton).Bottom(), "or press enter", core.ColorGray)
}

// renderGameOver draws the game-over panel above the frozen board.
func (g *Game) renderGameOver(dst *core.Screen) {
	panel := g.vp.Rect(gameOverPanel)
	dst.DrawRect(panel, ' ', core.ColorDefault)
	dst.DrawBox(panel, core.ColorRed)

	line := panel.Y + 2
	g.vp.CenteredText(dst, line, "G A M E   O V E R", core.ColorBrightRed)
	g.vp.CenteredText(dst, line+2, fmt.Sprintf("Crossings: %d", g.player.Score()), core.ColorWhite)
	if best := g.scoreboard.Best(); best > 0 {
		g.vp.CenteredText(dst, line+3, fmt.Sprintf("Best: %d", best), core.ColorWhite)
	}

	renderButton(dst, g.vp, playAgainButton, "PLAY AGAIN")
	g.vp.CenteredText(dst, g.vp.Rect(playAgainButton).Bottom()+1, "enter or R to replay", core.ColorGray)
}

// renderPaused draws a small centered banner.
func (g *Game) renderPaused(dst *core.Screen) {
	surface := g.vp.Surface()
	r := core.NewRect(surface.X+(surface.W-24)/2, surface.Y+surface.H/2-2, 24, 5)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorYellow)
	g.vp.CenteredText(dst, r.Y+1, "PAUSED", core.ColorBrightYellow)
	g.vp.CenteredText(dst, r.Y+3, "press P to continue", core.ColorGray)
}
