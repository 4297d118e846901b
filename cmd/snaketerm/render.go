package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/zucenko/folio/model"
	"github.com/zucenko/folio/nav"
)

var (
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan).Bold(true)
	styleWall  = tcell.StyleDefault.Background(tcell.ColorDimGray)
	styleHead  = tcell.StyleDefault.Background(tcell.ColorLawnGreen)
	styleBody  = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	styleFood  = tcell.StyleDefault.Background(tcell.ColorOrangeRed)
	styleCard  = tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite).Bold(true)
)

func (a *app) render() {
	s := a.screen
	s.Clear()
	if a.nav.Current() == nav.ScreenProjects {
		a.renderProjects()
	} else {
		a.renderGame()
	}
	s.Show()
}

func (a *app) renderProjects() {
	drawText(a.screen, 2, 1, "Projects", styleTitle)
	for i, p := range a.projects {
		st := styleText
		marker := "  "
		if i == a.selected {
			marker = "> "
			st = st.Bold(true)
		}
		if p.Screen == "" {
			st = styleDim
		}
		drawText(a.screen, 2, 3+i*2, marker+p.Name, st)
		drawText(a.screen, 6, 4+i*2, p.Description, styleDim)
	}
	drawText(a.screen, 2, 4+len(a.projects)*2, "arrows select, enter opens, q quits", styleDim)
}

func (a *app) renderGame() {
	snap := a.last
	grid := snap.Grid
	ox, oy := 2, 2
	hud := fmt.Sprintf("Score %d   Best %d   %s", snap.Score, snap.HighScore, snap.Phase.Name())
	drawText(a.screen, ox, 0, hud, styleTitle)

	// two columns per cell keep the board roughly square
	for x := -1; x <= grid; x++ {
		setCell(a.screen, ox, oy, x, -1, styleWall)
		setCell(a.screen, ox, oy, x, grid, styleWall)
	}
	for y := 0; y < grid; y++ {
		setCell(a.screen, ox, oy, -1, y, styleWall)
		setCell(a.screen, ox, oy, grid, y, styleWall)
	}
	setCell(a.screen, ox, oy, snap.Food.Col, snap.Food.Row, styleFood)
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		st := styleBody
		if i == 0 {
			st = styleHead
		}
		setCell(a.screen, ox, oy, snap.Snake[i].Col, snap.Snake[i].Row, st)
	}

	cx := ox + 2 + grid
	cy := oy + grid/2
	switch snap.Phase {
	case model.IDLE:
		drawCentered(a.screen, cx, cy, " Press ENTER to start ", styleCard)
	case model.COUNTDOWN:
		drawCentered(a.screen, cx, cy, fmt.Sprintf(" %d ", snap.Countdown), styleCard)
	case model.PAUSED:
		drawCentered(a.screen, cx, cy, " PAUSED ", styleCard)
	case model.GAME_OVER:
		drawCentered(a.screen, cx, cy-1, " Game Over! ", styleCard)
		drawCentered(a.screen, cx, cy, fmt.Sprintf(" Score: %d ", snap.Score), styleCard)
		if snap.NewHighScore {
			drawCentered(a.screen, cx, cy+1, " New High Score! ", styleCard)
		}
	}
	drawText(a.screen, ox, oy+grid+2, "arrows/wasd steer, space pauses, enter starts, esc goes back", styleDim)
}

func setCell(s tcell.Screen, ox, oy, col, row int, st tcell.Style) {
	x := ox + 2 + col*2
	y := oy + 1 + row
	s.SetContent(x, y, ' ', nil, st)
	s.SetContent(x+1, y, ' ', nil, st)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	drawText(s, x, cy, text, st)
}
