package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/zucenko/folio/model"
)

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke follows one drag from press to release.
type Stroke struct {
	source StrokeSource

	initX, initY       int
	currentX, currentY int

	released bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		initX:    cx,
		initY:    cy,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	s.currentX, s.currentY = s.source.Position()
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

func (s *Stroke) Start() (int, int) {
	return s.initX, s.initY
}

func (s *Stroke) PositionDiff() (int, int) {
	return s.currentX - s.initX, s.currentY - s.initY
}

// pressedStrokes starts a stroke for every pointer that went down this frame.
func pressedStrokes() []*Stroke {
	var out []*Stroke
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		out = append(out, NewStroke(&MouseStrokeSource{}))
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		out = append(out, NewStroke(&TouchStrokeSource{id}))
	}
	return out
}

var arrowKeys = map[ebiten.Key]model.Direction{
	ebiten.KeyUp:    model.UP,
	ebiten.KeyW:     model.UP,
	ebiten.KeyDown:  model.DOWN,
	ebiten.KeyS:     model.DOWN,
	ebiten.KeyLeft:  model.LEFT,
	ebiten.KeyA:     model.LEFT,
	ebiten.KeyRight: model.RIGHT,
	ebiten.KeyD:     model.RIGHT,
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
