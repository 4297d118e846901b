package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zucenko/folio/model"
)

func TestNewLayout(t *testing.T) {
	l := NewLayout(400, 700, model.GridSize)
	assert.Equal(t, 18.0, l.Cell)
	assert.Equal(t, 360.0, l.Board.W)
	assert.Equal(t, l.Board.W, l.Board.H)
	assert.Equal(t, 20.0, l.Board.X)

	r := l.CellRect(model.Cell{Col: 2, Row: 3})
	assert.Equal(t, Rect{X: 56, Y: HudHeight + 54, W: 18, H: 18}, r)

	for b, r := range l.Buttons {
		assert.LessOrEqual(t, r.Y+r.H, float64(l.Height), b.Name())
	}
}

func TestButtonAt(t *testing.T) {
	l := NewLayout(400, 700, model.GridSize)
	for _, b := range []Button{BTN_UP, BTN_DOWN, BTN_LEFT, BTN_RIGHT, BTN_ACTION, BTN_BACK} {
		x, y := l.Buttons[b].Center()
		assert.Equal(t, b, l.ButtonAt(int(x), int(y)), b.Name())
	}
	x, y := l.Board.Center()
	assert.Equal(t, BTN_NONE, l.ButtonAt(int(x), int(y)))
}

func TestButtonDirection(t *testing.T) {
	assert.Equal(t, model.UP, BTN_UP.Direction())
	assert.Equal(t, model.LEFT, BTN_LEFT.Direction())
	assert.Equal(t, model.Direction(0), BTN_ACTION.Direction())
}

func TestBanner(t *testing.T) {
	assert.Equal(t, []string{"2"}, Banner(model.Snapshot{Phase: model.COUNTDOWN, Countdown: 2}))
	assert.Nil(t, Banner(model.Snapshot{Phase: model.RUNNING}))
	assert.Equal(t, []string{"Game Over!", "Score: 30"}, Banner(model.Snapshot{Phase: model.GAME_OVER, Score: 30}))
	assert.Contains(t, Banner(model.Snapshot{Phase: model.GAME_OVER, Score: 90, NewHighScore: true}), "New High Score!")
	assert.Equal(t, "Play Again", ActionLabel(model.GAME_OVER))
	assert.Equal(t, "", ActionLabel(model.COUNTDOWN))
}

type controls struct {
	calls []string
	reset bool
}

func (c *controls) OnDirectionButton(d model.Direction) bool {
	c.calls = append(c.calls, d.Name())
	return true
}

func (c *controls) OnStart() bool {
	c.calls = append(c.calls, "start")
	return true
}

func (c *controls) OnPauseToggle() bool {
	c.calls = append(c.calls, "pause")
	return true
}

func (c *controls) OnReset() bool {
	c.calls = append(c.calls, "reset")
	return c.reset
}

func TestPress(t *testing.T) {
	cases := []struct {
		b     Button
		phase model.Phase
		reset bool
		want  []string
	}{
		{BTN_LEFT, model.RUNNING, false, []string{"LEFT"}},
		{BTN_ACTION, model.IDLE, false, []string{"start"}},
		{BTN_ACTION, model.RUNNING, false, []string{"pause"}},
		{BTN_ACTION, model.PAUSED, false, []string{"pause"}},
		{BTN_ACTION, model.GAME_OVER, true, []string{"reset", "start"}},
		{BTN_ACTION, model.GAME_OVER, false, []string{"reset"}},
		{BTN_ACTION, model.COUNTDOWN, false, nil},
		{BTN_NONE, model.RUNNING, false, nil},
	}
	for _, c := range cases {
		ctl := &controls{reset: c.reset}
		assert.False(t, Press(c.b, c.phase, ctl))
		assert.Equal(t, c.want, ctl.calls, "%s in %s", c.b.Name(), c.phase.Name())
	}
}

func TestPressAll_StopsAtBack(t *testing.T) {
	ctl := &controls{}
	assert.True(t, PressAll([]Button{BTN_BACK, BTN_UP, BTN_ACTION}, model.RUNNING, ctl))
	assert.Empty(t, ctl.calls)

	ctl = &controls{}
	assert.True(t, PressAll([]Button{BTN_DOWN, BTN_BACK, BTN_UP}, model.RUNNING, ctl))
	assert.Equal(t, []string{"DOWN"}, ctl.calls)

	// a nil engine behind the interface is never reached once Back is seen
	var gone *controls
	assert.True(t, PressAll([]Button{BTN_BACK, BTN_LEFT}, model.RUNNING, gone))

	ctl = &controls{}
	assert.False(t, PressAll([]Button{BTN_UP, BTN_ACTION}, model.IDLE, ctl))
	assert.Equal(t, []string{"UP", "start"}, ctl.calls)
}
