package main

import (
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/folio/config"
	"github.com/zucenko/folio/cv"
	"github.com/zucenko/folio/model"
	"github.com/zucenko/folio/nav"
	"github.com/zucenko/folio/view"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func newFace(tt *truetype.Font, size float64) font.Face {
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:       size,
		DPI:        dpi,
		SubPixelsX: 100,
		Hinting:    font.HintingFull,
	})
}

// Load reads the environment, opens the score store and prepares fonts and
// card textures.
func Load() (*Game, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.SetupLogging(); err != nil {
		return nil, err
	}
	st, err := cfg.OpenStore()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.EngineOptions()
	if err != nil {
		st.Close()
		return nil, err
	}
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		st.Close()
		return nil, err
	}
	card, err := NewNine(COLOR_CARD)
	if err != nil {
		st.Close()
		return nil, err
	}
	log.Infof("client store %s at %s", cfg.Store, cfg.StorePath)

	g := &Game{
		Store:    st,
		Options:  opts,
		Nav:      nav.NewStack(nav.ScreenProjects),
		Projects: cv.Default().Projects,
		Layout:   view.NewLayout(screenWidth, screenHeight, model.GridSize),
		Card:     card,
		Big:      newFace(tt, 48),
		Small:    newFace(tt, 18),
		strokes:  map[*Stroke]struct{}{},
		Tweens:   make(map[*gween.Tween]*Action),
		Pulse:    1,
		Fade:     1,
	}
	g.Nav.Register(nav.ScreenProjects, nav.Screen{})
	g.Nav.Register(nav.ScreenSnakeGame, nav.Screen{Enter: g.enterSnake, Leave: g.leaveSnake})
	return g, nil
}
