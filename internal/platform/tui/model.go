package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bug-crossing/internal/core"
	"github.com/vovakirdan/bug-crossing/internal/games/crossing"
	"github.com/vovakirdan/bug-crossing/internal/storage"
)

// helpLines is the height reserved under the board for the help bar.
const helpLines = 1

// Model is the Bubble Tea model for one player's game.
type Model struct {
	game       *crossing.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	scoreSaved bool // Whether the score of the current game over has been handled
}

// NewModel creates a model and resets the game for a new session.
// store may be nil, in which case scores are not persisted.
func NewModel(game *crossing.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, player string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW

	w, h := m.boardSize()
	m.screen = core.NewScreen(w, h)
	game.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: cfg.TickRate, Seed: cfg.Seed})
	m.gameState = game.State()
	m.loadBestScore()

	return m
}

// boardSize returns the screen area left for the game above the help bar.
func (m Model) boardSize() (int, int) {
	return max(m.config.ScreenW, 1), max(m.config.ScreenH-helpLines, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse records left button presses for the overlay buttons.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.SetClick(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize recenters the board without restarting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	w, h := m.boardSize()
	m.screen.Resize(w, h)
	m.game.Resize(w, h)

	return m, nil
}

// handleTick steps the game by the real time elapsed since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := elapsed(m.lastTick, now)
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("game event",
			"event", ev,
			"score", result.State.Score,
			"lives", result.State.Lives,
		)
		switch ev {
		case core.EventGameStarted:
			m.scoreSaved = false
		case core.EventGameOver:
			m.finishGame()
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishGame records the final score once per game over and refreshes the best score.
func (m *Model) finishGame() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	score := m.gameState.Score
	m.logger.Info("game over", "player", m.player, "score", score)

	if m.store == nil {
		return
	}
	if score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.player, score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}
	m.loadBestScore()
}

// loadBestScore shows the stored high score on the scoreboard.
func (m *Model) loadBestScore() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	m.game.SetBestScore(best)
}

// saveScreenshot writes the current board as plain text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the board and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays the game in the current terminal until the user quits.
func Run(game *crossing.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, player string) error {
	model := NewModel(game, store, cfg, logger, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
