// Package view lays out the snake screen for pointer-driven clients and
// decides what each phase shows. It draws nothing itself.
package view

import (
	"fmt"

	"github.com/zucenko/folio/model"
)

const (
	Margin     = 20
	HudHeight  = 60
	PadButton  = 56
	PadSpacing = 4
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= r.X && fx < r.X+r.W && fy >= r.Y && fy < r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

type Button int

const (
	BTN_NONE Button = iota
	BTN_UP
	BTN_DOWN
	BTN_LEFT
	BTN_RIGHT
	BTN_ACTION
	BTN_BACK
)

func (b Button) Name() string {
	switch b {
	case BTN_NONE:
		return "NONE"
	case BTN_UP:
		return "UP"
	case BTN_DOWN:
		return "DOWN"
	case BTN_LEFT:
		return "LEFT"
	case BTN_RIGHT:
		return "RIGHT"
	case BTN_ACTION:
		return "ACTION"
	case BTN_BACK:
		return "BACK"
	default:
		return fmt.Sprintf("N/A(%d)", b)
	}
}

// Direction is the heading a D-pad button asks for, zero for other buttons.
func (b Button) Direction() model.Direction {
	switch b {
	case BTN_UP:
		return model.UP
	case BTN_DOWN:
		return model.DOWN
	case BTN_LEFT:
		return model.LEFT
	case BTN_RIGHT:
		return model.RIGHT
	}
	return 0
}

// Controls is what the snake screen's buttons drive.
type Controls interface {
	OnDirectionButton(d model.Direction) bool
	OnStart() bool
	OnPauseToggle() bool
	OnReset() bool
}

// Press applies b to c in the given phase. It reports true for BTN_BACK,
// which leaves c untouched: the caller navigates away and c may be gone.
func Press(b Button, phase model.Phase, c Controls) bool {
	if d := b.Direction(); d != 0 {
		c.OnDirectionButton(d)
		return false
	}
	switch b {
	case BTN_BACK:
		return true
	case BTN_ACTION:
		switch phase {
		case model.IDLE:
			c.OnStart()
		case model.RUNNING, model.PAUSED:
			c.OnPauseToggle()
		case model.GAME_OVER:
			if c.OnReset() {
				c.OnStart()
			}
		}
	}
	return false
}

// PressAll presses bs in order and stops at the first one that leaves.
func PressAll(bs []Button, phase model.Phase, c Controls) bool {
	for _, b := range bs {
		if Press(b, phase, c) {
			return true
		}
	}
	return false
}

// Layout places the board, the HUD and the buttons on a portrait screen.
type Layout struct {
	Width, Height int
	Grid          int
	Cell          float64
	Board         Rect
	Buttons       map[Button]Rect
}

func NewLayout(width, height, grid int) Layout {
	side := float64(width - 2*Margin)
	cell := float64(int(side) / grid)
	side = cell * float64(grid)
	board := Rect{X: (float64(width) - side) / 2, Y: HudHeight, W: side, H: side}

	cx := float64(width) / 2
	top := board.Y + board.H + Margin
	step := float64(PadButton + PadSpacing)
	pad := func(col, row float64) Rect {
		return Rect{X: cx - PadButton/2 + col*step, Y: top + row*step, W: PadButton, H: PadButton}
	}
	return Layout{
		Width:  width,
		Height: height,
		Grid:   grid,
		Cell:   cell,
		Board:  board,
		Buttons: map[Button]Rect{
			BTN_UP:     pad(0, 0),
			BTN_LEFT:   pad(-1, 1),
			BTN_RIGHT:  pad(1, 1),
			BTN_DOWN:   pad(0, 2),
			BTN_ACTION: {X: float64(width) - Margin - 120, Y: 10, W: 120, H: 40},
			BTN_BACK:   {X: Margin, Y: 10, W: 80, H: 40},
		},
	}
}

func (l Layout) CellRect(c model.Cell) Rect {
	return Rect{
		X: l.Board.X + float64(c.Col)*l.Cell,
		Y: l.Board.Y + float64(c.Row)*l.Cell,
		W: l.Cell,
		H: l.Cell,
	}
}

func (l Layout) ButtonAt(x, y int) Button {
	for b, r := range l.Buttons {
		if r.Contains(x, y) {
			return b
		}
	}
	return BTN_NONE
}

// ActionLabel names what the action button does in a phase.
func ActionLabel(p model.Phase) string {
	switch p {
	case model.IDLE:
		return "Start"
	case model.RUNNING:
		return "Pause"
	case model.PAUSED:
		return "Resume"
	case model.GAME_OVER:
		return "Play Again"
	}
	return ""
}

// Banner is the overlay text for a snapshot, empty while the snake moves.
func Banner(s model.Snapshot) []string {
	switch s.Phase {
	case model.IDLE:
		return []string{"Swipe or tap to steer", "Press Start"}
	case model.COUNTDOWN:
		return []string{fmt.Sprintf("%d", s.Countdown)}
	case model.PAUSED:
		return []string{"Paused"}
	case model.GAME_OVER:
		lines := []string{"Game Over!", fmt.Sprintf("Score: %d", s.Score)}
		if s.NewHighScore {
			lines = append(lines, "New High Score!")
		}
		return lines
	}
	return nil
}

// Hud is the score line shown above the board.
func Hud(s model.Snapshot) string {
	return fmt.Sprintf("Score: %d   High: %d", s.Score, s.HighScore)
}
