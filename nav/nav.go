// Package nav is a minimal screen stack for the clients.
package nav

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

const (
	ScreenProjects  = "Projects"
	ScreenSnakeGame = "SnakeGame"
)

// Host is what a screen uses to move around.
type Host interface {
	GoBack()
	NavigateTo(screen string)
}

// Screen hooks run when a screen is pushed and when it is popped.
type Screen struct {
	Enter func()
	Leave func()
}

type Stack struct {
	mu      sync.Mutex
	screens map[string]Screen
	stack   []string
}

func NewStack(root string) *Stack {
	return &Stack{
		screens: make(map[string]Screen),
		stack:   []string{root},
	}
}

func (s *Stack) Register(name string, screen Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screens[name] = screen
}

func (s *Stack) NavigateTo(name string) {
	s.mu.Lock()
	screen, ok := s.screens[name]
	if !ok {
		s.mu.Unlock()
		log.Warnf("nav: no screen %q", name)
		return
	}
	if s.stack[len(s.stack)-1] == name {
		s.mu.Unlock()
		return
	}
	s.stack = append(s.stack, name)
	s.mu.Unlock()
	log.Debugf("nav: enter %s", name)
	if screen.Enter != nil {
		screen.Enter()
	}
}

// GoBack pops the top screen. The root screen is never popped.
func (s *Stack) GoBack() {
	s.mu.Lock()
	if len(s.stack) < 2 {
		s.mu.Unlock()
		return
	}
	name := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	screen := s.screens[name]
	s.mu.Unlock()
	log.Debugf("nav: leave %s", name)
	if screen.Leave != nil {
		screen.Leave()
	}
}

// Unwind pops every screen above the root.
func (s *Stack) Unwind() {
	for s.Depth() > 1 {
		s.GoBack()
	}
}

func (s *Stack) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack[len(s.stack)-1]
}

func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stack)
}
