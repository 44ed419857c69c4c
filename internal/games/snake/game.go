// Package snake adapts the board engine to the terminal platform. All game
// rules live in the board package; this layer translates platform actions
// into board steps and draws board cells into the screen buffer.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ayefimov/termsnake/internal/board"
	"github.com/ayefimov/termsnake/internal/config"
	"github.com/ayefimov/termsnake/internal/core"
)

// hudHeight is the number of screen rows above the board (title + separator).
const hudHeight = 2

// theme holds the resolved glyphs and colors from the config.
type theme struct {
	head      rune
	body      rune
	food      rune
	headColor core.Color
	bodyColor core.Color
	foodColor core.Color
}

func themeOf(t config.ThemeConfig) theme {
	return theme{
		head:      config.Rune(t.Head, 'O'),
		body:      config.Rune(t.Body, 'o'),
		food:      config.Rune(t.Food, '*'),
		headColor: config.ParseColor(t.HeadColor),
		bodyColor: config.ParseColor(t.BodyColor),
		foodColor: config.ParseColor(t.FoodColor),
	}
}

// Game implements the platform game interface for snake.
type Game struct {
	cfg config.Config
	th  theme
	b   *board.Board

	screenW  int
	screenH  int
	offsetX  int
	offsetY  int
	tooSmall bool
}

// New creates a game from the given configuration.
func New(cfg config.Config) (*Game, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, th: themeOf(cfg.Theme)}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset starts a new round sized to the configured board, seeding the food
// RNG from the runtime config.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	b, err := board.New(g.cfg.Board.Width, g.cfg.Board.Height, rand.New(rand.NewSource(seed)))
	if err != nil {
		// Dimensions were validated in New; keep the previous board if this
		// ever fires.
		return
	}
	g.b = b
	g.layout(rc.ScreenW, rc.ScreenH)
}

// layout centers the board on the screen and checks that it fits, leaving
// room for the HUD and the border.
func (g *Game) layout(w, h int) {
	g.screenW = w
	g.screenH = h
	bw, bh := g.cfg.Board.Width, g.cfg.Board.Height
	g.tooSmall = w < bw+2 || h < bh+hudHeight+2
	g.offsetX = (w - bw) / 2
	g.offsetY = hudHeight + core.Max(0, (h-hudHeight-bh)/2)
}

// Step advances the round by one tick. Each tick is driven by one input
// event and consumes at most one direction; non-direction input is a no-op.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.b == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionRestart) && g.b.Status() == board.StatusLost {
		g.b.Reset()
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall || g.b.Status() == board.StatusLost {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFor(in); ok {
		g.b.Step(dir)
	}
	return core.StepResult{State: g.State()}
}

// directionFor picks at most one direction from the frame. The engine
// consumes exactly one direction per tick; the order here is arbitrary but
// fixed so simultaneous presses stay deterministic.
func directionFor(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.DirUp, true
	case in.Has(core.ActionDown):
		return board.DirDown, true
	case in.Has(core.ActionLeft):
		return board.DirLeft, true
	case in.Has(core.ActionRight):
		return board.DirRight, true
	}
	return 0, false
}

// State returns the current round state.
func (g *Game) State() core.GameState {
	if g.b == nil {
		return core.GameState{}
	}
	return core.GameState{GameOver: g.b.Status() == board.StatusLost}
}

// Render draws the current round into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need at least %dx%d", g.cfg.Board.Width+2, g.cfg.Board.Height+hudHeight+2))
		return
	}
	if g.b == nil {
		return
	}

	g.renderBoard(dst)

	if g.b.Status() == board.StatusLost {
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	}
}

// renderHUD draws the title line and a separator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, "Snake")
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the border, the snake and the food.
func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(core.NewRect(g.offsetX-1, g.offsetY-1, g.cfg.Board.Width+2, g.cfg.Board.Height+2))

	for row := 0; row < g.b.Height(); row++ {
		for col := 0; col < g.b.Width(); col++ {
			x, y := g.offsetX+col, g.offsetY+row
			switch g.b.CellAt(row, col).Kind {
			case board.CellSnake:
				dst.SetCell(x, y, g.th.body, g.th.bodyColor)
			case board.CellFood:
				dst.SetCell(x, y, g.th.food, g.th.foodColor)
			}
		}
	}

	// The head is drawn from its tracked position: at round start its cell
	// is still empty on the board.
	head := g.b.Head()
	dst.SetCell(g.offsetX+head.Col, g.offsetY+head.Row, g.th.head, g.th.headColor)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
