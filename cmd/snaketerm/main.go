package main

import (
	"context"
	"flag"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/folio/config"
	"github.com/zucenko/folio/cv"
	"github.com/zucenko/folio/engine"
	"github.com/zucenko/folio/model"
	"github.com/zucenko/folio/nav"
	"github.com/zucenko/folio/store"
	"github.com/zucenko/folio/view"
)

type app struct {
	screen   tcell.Screen
	nav      *nav.Stack
	store    store.Store
	opts     []engine.Option
	projects []cv.Project
	selected int

	eng       *engine.Engine
	updates   <-chan model.Snapshot
	cancelSub func()
	last      model.Snapshot
	best      int
	closing   sync.WaitGroup
}

func main() {
	layout := flag.String("layout", "", "ASCII board to start from")
	logFile := flag.String("log", "snaketerm.log", "log file, the terminal is busy drawing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		color.Red("config: %v", err)
		os.Exit(1)
	}
	if *layout != "" {
		cfg.Layout = *layout
	}
	if err := cfg.SetupLogging(); err != nil {
		color.Red("logging: %v", err)
		os.Exit(1)
	}
	if f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}
	st, err := cfg.OpenStore()
	if err != nil {
		color.Red("store: %v", err)
		os.Exit(1)
	}
	defer st.Close()
	opts, err := cfg.EngineOptions()
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		color.Red("screen: %v", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		color.Red("screen: %v", err)
		os.Exit(1)
	}

	a := &app{
		screen:   s,
		nav:      nav.NewStack(nav.ScreenProjects),
		store:    st,
		opts:     opts,
		projects: cv.Default().Projects,
	}
	a.nav.Register(nav.ScreenProjects, nav.Screen{})
	a.nav.Register(nav.ScreenSnakeGame, nav.Screen{Enter: a.enterGame, Leave: a.leaveGame})
	a.run()
	a.nav.Unwind()
	s.Fini()
	a.closing.Wait()

	if a.best > 0 {
		color.Green("Best score this session: %d", a.best)
	}
	color.Cyan("Bye.")
}

func (a *app) run() {
	s := a.screen
	s.Clear()
	s.HideCursor()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.render()
	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if !a.handleKey(e) {
					return
				}
			}
			a.render()
		case snap, ok := <-a.updates:
			if !ok {
				a.updates = nil
				continue
			}
			a.last = snap
			if snap.HighScore > a.best {
				a.best = snap.HighScore
			}
			a.render()
		}
	}
}

func (a *app) enterGame() {
	e, err := engine.New(a.store, a.opts...)
	if err != nil {
		log.Errorf("snaketerm: %v", err)
		return
	}
	go e.Loop(context.Background())
	a.eng = e
	a.updates, a.cancelSub = e.Subscribe()
	a.last = e.Snapshot()
}

func (a *app) leaveGame() {
	if a.eng == nil {
		return
	}
	a.cancelSub()
	e := a.eng
	a.eng = nil
	a.updates = nil
	// Close blocks until pending score writes end
	a.closing.Add(1)
	go func() {
		defer a.closing.Done()
		e.Close()
	}()
}

// handleKey reports false when the app should quit.
func (a *app) handleKey(e *tcell.EventKey) bool {
	act := keyAction(e)
	if a.nav.Current() == nav.ScreenProjects {
		switch act {
		case actQuit, actBack:
			return false
		case actUp:
			a.selected = (a.selected + len(a.projects) - 1) % len(a.projects)
		case actDown:
			a.selected = (a.selected + 1) % len(a.projects)
		case actConfirm:
			if p := a.projects[a.selected]; p.Screen != "" {
				a.nav.NavigateTo(p.Screen)
			}
		}
		return true
	}

	if a.eng == nil {
		a.nav.GoBack()
		return true
	}
	switch act {
	case actQuit:
		return false
	case actBack:
		a.nav.GoBack()
	case actUp:
		a.eng.OnDirectionButton(model.UP)
	case actDown:
		a.eng.OnDirectionButton(model.DOWN)
	case actLeft:
		a.eng.OnDirectionButton(model.LEFT)
	case actRight:
		a.eng.OnDirectionButton(model.RIGHT)
	case actPause:
		a.eng.OnPauseToggle()
	case actReset:
		a.eng.OnReset()
	case actConfirm:
		view.Press(view.BTN_ACTION, a.last.Phase, a.eng)
	}
	return true
}
