package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	var entered, left int
	s := NewStack(ScreenProjects)
	s.Register(ScreenProjects, Screen{})
	s.Register(ScreenSnakeGame, Screen{
		Enter: func() { entered++ },
		Leave: func() { left++ },
	})
	var host Host = s

	host.GoBack()
	assert.Equal(t, ScreenProjects, s.Current())

	host.NavigateTo(ScreenSnakeGame)
	assert.Equal(t, ScreenSnakeGame, s.Current())
	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, 1, entered)

	host.NavigateTo(ScreenSnakeGame)
	assert.Equal(t, 1, entered)

	host.NavigateTo("Missing")
	assert.Equal(t, ScreenSnakeGame, s.Current())

	host.GoBack()
	assert.Equal(t, ScreenProjects, s.Current())
	assert.Equal(t, 1, left)
}

func TestStack_Unwind(t *testing.T) {
	var left []string
	s := NewStack(ScreenProjects)
	for _, name := range []string{"A", "B"} {
		n := name
		s.Register(n, Screen{Leave: func() { left = append(left, n) }})
	}
	s.NavigateTo("A")
	s.NavigateTo("B")
	s.Unwind()
	assert.Equal(t, []string{"B", "A"}, left)
	assert.Equal(t, 1, s.Depth())
}
