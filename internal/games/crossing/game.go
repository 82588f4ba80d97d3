// Package crossing implements Bug Crossing: cross the road to the water
// one tile at a time while bugs race along their lanes.
//
// All game logic works in board pixels (a 505x606 board of 101x83 tiles).
// A Viewport maps the board onto terminal cells for rendering and clicks.
package crossing

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/bug-crossing/internal/config"
	"github.com/vovakirdan/bug-crossing/internal/core"
)

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseInstructions Phase = iota // Title overlay, shown once per session
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name used in logs and snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseInstructions:
		return "instructions"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Option configures a Game.
type Option func(*Game)

// WithRandSource makes the game draw enemy spawns from src instead of
// a math/rand generator seeded by Reset.
func WithRandSource(src RandSource) Option {
	return func(g *Game) {
		g.randOverride = src
	}
}

// Game owns the player, the enemy pool and the scoreboard, and drives
// the Instructions -> Playing -> GameOver -> Playing phase machine.
type Game struct {
	cfg          config.CrossingConfig
	rng          RandSource
	randOverride RandSource
	difficulty   *config.DifficultyManager

	player     *Player
	enemies    []*Enemy
	scoreboard *Scoreboard
	vp         Viewport

	phase     Phase
	paused    bool
	tick      uint64
	bestScore int
}

// New creates a game for the given configuration. Call Reset before Step.
func New(cfg config.CrossingConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the identifier used for stored scores.
func (g *Game) ID() string {
	return "crossing"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bug Crossing"
}

// Reset starts a new session: entities are created from scratch and the
// instructions overlay is shown.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if g.randOverride != nil {
		g.rng = g.randOverride
	} else {
		g.rng = rand.New(rand.NewSource(rt.Seed)) //#nosec G404 -- gameplay randomness
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.tick = 0
	g.paused = false
	g.phase = PhaseInstructions

	g.player = NewPlayer(g.cfg)
	g.enemies = createEnemies(g.cfg, g.rng)
	g.scoreboard = NewScoreboard(g.player)
	g.scoreboard.SetBest(g.bestScore)

	g.Resize(rt.ScreenW, rt.ScreenH)
}

// NewGame resets score, lives and positions and enters the Playing phase.
func (g *Game) NewGame() {
	g.player.ResetScore()
	g.player.ResetLives()
	g.player.GoBackToStart()
	for _, e := range g.enemies {
		e.Respawn()
		e.SetSpeedScale(1.0)
	}
	g.scoreboard.Update()
	g.tick = 0
	g.paused = false
	g.phase = PhasePlaying
}

// Resize recenters the board on a screen of the given size.
func (g *Game) Resize(w, h int) {
	g.vp = NewViewport(g.cfg, w, h)
}

// SetBestScore sets the best recorded score displayed on the scoreboard.
func (g *Game) SetBestScore(n int) {
	g.bestScore = n
	if g.scoreboard != nil {
		g.scoreboard.SetBest(n)
	}
}

// Step advances the game by dt. Directional input is applied before enemies
// move; at most one life is lost per step.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	var events []core.Event

	switch g.phase {
	case PhaseInstructions:
		if in.Has(core.ActionConfirm) || buttonHit(in, g.vp, startButton) {
			g.NewGame()
			events = append(events, core.EventGameStarted)
		}
		return core.StepResult{State: g.State(), Events: events}

	case PhaseGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) || buttonHit(in, g.vp, playAgainButton) {
			g.NewGame()
			events = append(events, core.EventGameStarted)
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	for _, a := range in.Moves {
		if g.player.HandleInput(directionFor(a)) {
			events = append(events, core.EventScored)
		}
	}

	seconds := core.ClampF(dt.Seconds(), 0, g.cfg.Loop.MaxDelta)
	scale := g.difficulty.SpeedScale(g.player.Score(), int(g.tick)) //#nosec G115 -- tick count fits in int
	for _, e := range g.enemies {
		e.SetSpeedScale(scale)
		e.Update(seconds)
	}

	if g.collides() {
		g.player.LoseLife()
		events = append(events, core.EventLifeLost)
		if g.player.Lives() <= 0 {
			g.phase = PhaseGameOver
			events = append(events, core.EventGameOver)
		}
	}

	g.scoreboard.Update()

	return core.StepResult{State: g.State(), Events: events}
}

// collides reports whether any enemy overlaps the player.
func (g *Game) collides() bool {
	pb := g.player.Bounds()
	for _, e := range g.enemies {
		if pb.Intersects(e.Bounds()) {
			return true
		}
	}
	return false
}

// State returns the state reported to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.player.Score(),
		Lives:    g.player.Lives(),
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Player returns the player.
func (g *Game) Player() *Player {
	return g.player
}

// Enemies returns the enemy pool.
func (g *Game) Enemies() []*Enemy {
	return g.enemies
}

// Scoreboard returns the scoreboard.
func (g *Game) Scoreboard() *Scoreboard {
	return g.scoreboard
}

// Viewport returns the current pixel to cell mapping.
func (g *Game) Viewport() Viewport {
	return g.vp
}

// Entities returns everything drawn on the board, enemies first.
func (g *Game) Entities() []Entity {
	entities := make([]Entity, 0, len(g.enemies)+1)
	for _, e := range g.enemies {
		entities = append(entities, e)
	}
	return append(entities, g.player)
}

// Render draws the board, the entities, the scoreboard and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if !g.vp.Fits(dst.Width(), dst.Height()) {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, "Resize to continue")
		return
	}

	g.renderTerrain(dst)
	for _, e := range g.Entities() {
		e.Render(dst, g.vp)
	}
	g.scoreboard.Render(dst, g.vp)

	switch {
	case g.phase == PhaseInstructions:
		g.renderInstructions(dst)
	case g.phase == PhaseGameOver:
		g.renderGameOver(dst)
	case g.paused:
		g.renderPaused(dst)
	}
}

// renderTerrain draws water on the goal row, road under the enemy lanes
// and grass everywhere below.
func (g *Game) renderTerrain(dst *core.Screen) {
	surface := g.vp.Surface()
	for line := surface.Y; line < surface.Bottom(); line++ {
		r, c := g.terrainAt(line)
		for col := surface.X; col < surface.Right(); col++ {
			if (col+line)%2 == 0 {
				g.vp.Set(dst, col, line, r, c)
			}
		}
	}
}

// terrainAt returns the texture of a screen line.
func (g *Game) terrainAt(line int) (rune, core.Color) {
	for row := 0; row < g.cfg.Board.Rows; row++ {
		if line >= g.vp.CellY(float64((row+1)*g.cfg.Board.TileHeight)) {
			continue
		}
		switch {
		case row == 0:
			return '~', core.ColorBlue
		case row <= g.cfg.Enemies.Lanes:
			return '·', core.ColorGray
		default:
			return '"', core.ColorGreen
		}
	}
	return '"', core.ColorGreen
}
