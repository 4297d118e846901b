package main

import (
	"context"
	"errors"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/folio/cv"
	"github.com/zucenko/folio/engine"
	"github.com/zucenko/folio/model"
	"github.com/zucenko/folio/nav"
	"github.com/zucenko/folio/store"
	"github.com/zucenko/folio/view"
	"golang.org/x/image/font"
)

const (
	screenWidth  = 400
	screenHeight = 700
	frame        = float32(1) / 60
)

var errQuit = errors.New("quit")

type Game struct {
	Nav      *nav.Stack
	Store    store.Store
	Options  []engine.Option
	Projects []cv.Project
	Layout   view.Layout
	Card     *Nine
	Big      font.Face
	Small    font.Face

	Engine  *engine.Engine
	View    model.Snapshot
	updates <-chan model.Snapshot
	cancel  func()

	strokes map[*Stroke]struct{}
	Tweens  map[*gween.Tween]*Action
	Pulse   float64
	Fade    float64
	quit    bool
	closing sync.WaitGroup
}

func (g *Game) enterSnake() {
	e, err := engine.New(g.Store, g.Options...)
	if err != nil {
		log.Errorf("snake screen: %v", err)
		return
	}
	go func() {
		if err := e.Loop(context.Background()); err != nil {
			log.Warnf("engine loop: %v", err)
		}
	}()
	g.Engine = e
	g.updates, g.cancel = e.Subscribe()
	g.View = e.Snapshot()
	g.Layout = view.NewLayout(screenWidth, screenHeight, g.View.Grid)
}

func (g *Game) leaveSnake() {
	if g.Engine == nil {
		return
	}
	g.cancel()
	e := g.Engine
	g.Engine = nil
	g.updates = nil
	g.strokes = map[*Stroke]struct{}{}
	// Close blocks until pending score writes end
	g.closing.Add(1)
	go func() {
		defer g.closing.Done()
		e.Close()
	}()
}

// drainUpdates keeps only the newest snapshot of the frame.
func (g *Game) drainUpdates() {
	for {
		select {
		case s, ok := <-g.updates:
			if !ok {
				g.updates = nil
				return
			}
			prev := g.View
			g.View = s
			if phaseChanged(prev, s) {
				g.overlayIn(s.Phase)
			}
		default:
			return
		}
	}
}

// overlayIn pulses the countdown digit and fades the other cards in.
func (g *Game) overlayIn(p model.Phase) {
	if p == model.COUNTDOWN {
		a := g.animate(gween.New(1.6, 1, float32(engine.CountdownStep.Seconds())/2, ease.OutBack), func(v float32) {
			g.Pulse = float64(v)
		})
		a.next(gween.New(1, 0.8, float32(engine.CountdownStep.Seconds())/2, ease.InQuad)).onChange = func(v float32) {
			g.Pulse = float64(v)
		}
		return
	}
	g.Pulse = 1
	a := g.animate(gween.New(0, 1, 0.3, ease.OutQuad), func(v float32) {
		g.Fade = float64(v)
	})
	a.addOnFinish(func() { g.Fade = 1 })
}

func (g *Game) updateProjects() {
	for _, s := range pressedStrokes() {
		x, y := s.Start()
		for i, p := range g.Projects {
			if projectRect(i).Contains(x, y) && p.Screen != "" {
				g.Nav.NavigateTo(p.Screen)
				return
			}
		}
	}
	if justPressed(ebiten.KeyEnter) {
		for _, p := range g.Projects {
			if p.Screen != "" {
				g.Nav.NavigateTo(p.Screen)
				return
			}
		}
	}
	if justPressed(ebiten.KeyEscape, ebiten.KeyQ) {
		g.quit = true
	}
}

func (g *Game) updateSnake() {
	if g.Engine == nil {
		g.Nav.GoBack()
		return
	}
	g.drainUpdates()

	var pressed []view.Button
	for _, s := range pressedStrokes() {
		x, y := s.Start()
		if b := g.Layout.ButtonAt(x, y); b != view.BTN_NONE {
			pressed = append(pressed, b)
			continue
		}
		g.strokes[s] = struct{}{}
	}
	if justPressed(ebiten.KeyEnter) {
		pressed = append(pressed, view.BTN_ACTION)
	}
	if justPressed(ebiten.KeyEscape, ebiten.KeyBackspace) {
		pressed = append(pressed, view.BTN_BACK)
	}
	if view.PressAll(pressed, g.View.Phase, g.Engine) {
		// leaveSnake drops the engine
		g.Nav.GoBack()
		return
	}

	for s := range g.strokes {
		s.Update()
		if !s.IsReleased() {
			continue
		}
		dx, dy := s.PositionDiff()
		g.Engine.OnSwipeEnd(float64(dx), float64(dy))
		delete(g.strokes, s)
	}
	for k, d := range arrowKeys {
		if justPressed(k) {
			g.Engine.OnDirectionButton(d)
		}
	}
	if justPressed(ebiten.KeySpace, ebiten.KeyP) {
		g.Engine.OnPauseToggle()
	}
	if justPressed(ebiten.KeyR) {
		g.Engine.OnReset()
	}
}

func projectRect(i int) view.Rect {
	return view.Rect{X: view.Margin, Y: 90 + float64(i)*110, W: screenWidth - 2*view.Margin, H: 96}
}

func (g *Game) update(screen *ebiten.Image) error {
	g.stepTweens(frame)
	if g.Nav.Current() == nav.ScreenSnakeGame {
		g.updateSnake()
	} else {
		g.updateProjects()
	}
	if g.quit {
		return errQuit
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	if err := screen.Fill(COLOR_BACKGROUND); err != nil {
		log.Printf("%v", err)
	}
	if g.Nav.Current() == nav.ScreenSnakeGame {
		g.drawSnake(screen)
	} else {
		g.drawProjects(screen)
	}
	return nil
}

func (g *Game) drawProjects(screen *ebiten.Image) {
	text.Draw(screen, "Projects", g.Big, view.Margin, 60, COLOR_TEXT)
	for i, p := range g.Projects {
		r := projectRect(i)
		card := g.Card.Tinted(COLOR_BUTTON)
		if p.Screen != "" {
			card = g.Card
		}
		card.Draw(screen, r)
		text.Draw(screen, p.Name, g.Small, int(r.X)+14, int(r.Y)+30, COLOR_TEXT)
		ebitenutil.DebugPrintAt(screen, p.Description, int(r.X)+14, int(r.Y)+44)
	}
}

func (g *Game) drawSnake(screen *ebiten.Image) {
	l := g.Layout
	s := g.View

	text.Draw(screen, view.Hud(s), g.Small, view.Margin+100, 36, COLOR_TEXT)
	g.drawButton(screen, view.BTN_BACK, "Back")
	if label := view.ActionLabel(s.Phase); label != "" {
		g.drawButton(screen, view.BTN_ACTION, label)
	}

	ebitenutil.DrawRect(screen, l.Board.X, l.Board.Y, l.Board.W, l.Board.H, COLOR_BOARD)
	for i := 1; i < l.Grid; i++ {
		off := float64(i) * l.Cell
		ebitenutil.DrawRect(screen, l.Board.X+off, l.Board.Y, 1, l.Board.H, COLOR_GRID)
		ebitenutil.DrawRect(screen, l.Board.X, l.Board.Y+off, l.Board.W, 1, COLOR_GRID)
	}
	fr := l.CellRect(s.Food)
	ebitenutil.DrawRect(screen, fr.X+2, fr.Y+2, fr.W-4, fr.H-4, COLOR_FOOD)
	for i := len(s.Snake) - 1; i >= 0; i-- {
		r := l.CellRect(s.Snake[i])
		ebitenutil.DrawRect(screen, r.X+1, r.Y+1, r.W-2, r.H-2, segmentColor(i, len(s.Snake)))
	}

	for _, b := range []view.Button{view.BTN_UP, view.BTN_DOWN, view.BTN_LEFT, view.BTN_RIGHT} {
		g.drawButton(screen, b, b.Direction().Name()[:1])
	}
	g.drawBanner(screen)
	ebitenutil.DebugPrintAt(screen, s.Phase.Name(), view.Margin, screenHeight-16)
}

func (g *Game) drawButton(screen *ebiten.Image, b view.Button, label string) {
	r := g.Layout.Buttons[b]
	g.Card.Tinted(COLOR_BUTTON).Draw(screen, r)
	drawCentered(screen, label, g.Small, r, COLOR_TEXT)
}

func (g *Game) drawBanner(screen *ebiten.Image) {
	lines := view.Banner(g.View)
	if len(lines) == 0 {
		return
	}
	b := g.Layout.Board
	ebitenutil.DrawRect(screen, b.X, b.Y, b.W, b.H, color.RGBA{0, 0, 0, uint8(140 * g.Fade)})

	if g.View.Phase == model.COUNTDOWN {
		size := 80 * g.Pulse
		cx, cy := b.Center()
		r := view.Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size}
		g.Card.Draw(screen, r)
		drawCentered(screen, lines[0], g.Big, r, COLOR_TEXT)
		return
	}

	h := float64(40*len(lines) + 20)
	r := view.Rect{X: b.X + 30, Y: b.Y + (b.H-h)/2, W: b.W - 60, H: h}
	card := *g.Card
	card.Alpha = g.Fade
	card.Draw(screen, r)
	for i, line := range lines {
		clr := color.Color(COLOR_TEXT)
		if i == 2 {
			clr = COLOR_ACCENT
		}
		drawCentered(screen, line, g.Small, view.Rect{X: r.X, Y: r.Y + 10 + float64(i*40), W: r.W, H: 40}, clr)
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, r view.Rect, clr color.Color) {
	bounds, _ := font.BoundString(face, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := int(r.X + (r.W-float64(w))/2)
	y := int(r.Y+(r.H+float64(h))/2) - 1
	text.Draw(screen, s, face, x, y, clr)
}

func main() {
	g, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	defer g.Store.Close()

	err = ebiten.Run(g.update, screenWidth, screenHeight, 1, "Folio")
	g.Nav.Unwind()
	g.closing.Wait()
	if err != nil && err != errQuit {
		log.Fatal(err)
	}
}
