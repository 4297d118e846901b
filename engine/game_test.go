package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/folio/model"
	"golang.org/x/exp/rand"
)

func newGame(t *testing.T, board string) *Game {
	t.Helper()
	l := DefaultLayout()
	if board != "" {
		var err error
		l, err = ReadLayout(strings.NewReader(board))
		require.NoError(t, err)
	}
	return NewGame(l, rand.New(rand.NewSource(7)))
}

func running(t *testing.T, g *Game) *Game {
	t.Helper()
	require.True(t, g.Start())
	for g.Phase == model.COUNTDOWN {
		require.True(t, g.CountDown())
	}
	require.Equal(t, model.RUNNING, g.Phase)
	return g
}

func TestGame_ThreeTicksFromStart(t *testing.T) {
	g := running(t, newGame(t, ""))
	assert.Equal(t, InitialSpeed, g.Speed)
	assert.Equal(t, model.Cell{Col: 5, Row: 5}, g.Food)

	for _, want := range []model.Cell{{Col: 11, Row: 10}, {Col: 12, Row: 10}, {Col: 13, Row: 10}} {
		assert.Equal(t, model.MOVED, g.Tick())
		assert.Equal(t, want, g.Snake[0])
		assert.Len(t, g.Snake, 1)
	}
	assert.Equal(t, 0, g.Score)
}

func TestGame_Countdown(t *testing.T) {
	g := newGame(t, "")
	assert.False(t, g.CountDown())
	require.True(t, g.Start())
	assert.Equal(t, model.COUNTDOWN, g.Phase)
	assert.Equal(t, 3, g.Countdown)
	g.CountDown()
	assert.Equal(t, 2, g.Countdown)
	g.CountDown()
	assert.Equal(t, 1, g.Countdown)
	assert.Equal(t, model.COUNTDOWN, g.Phase)
	g.CountDown()
	assert.Equal(t, model.RUNNING, g.Phase)
	assert.Equal(t, 0, g.Countdown)
	assert.False(t, g.Start())
}

func TestGame_WallCollision(t *testing.T) {
	cases := []struct {
		name string
		head model.Cell
		dir  model.Direction
	}{
		{"left", model.Cell{Col: 0, Row: 4}, model.LEFT},
		{"right", model.Cell{Col: model.GridSize - 1, Row: 4}, model.RIGHT},
		{"top", model.Cell{Col: 4, Row: 0}, model.UP},
		{"bottom", model.Cell{Col: 4, Row: model.GridSize - 1}, model.DOWN},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := DefaultLayout()
			l.Snake = []model.Cell{c.head}
			l.Direction = c.dir
			g := running(t, NewGame(l, rand.New(rand.NewSource(1))))

			assert.Equal(t, model.HIT_WALL, g.Tick())
			assert.Equal(t, model.GAME_OVER, g.Phase)
			assert.Equal(t, []model.Cell{c.head}, g.Snake)
			assert.Equal(t, model.NO_TICK, g.Tick())
		})
	}
}

func TestGame_SelfCollision(t *testing.T) {
	g := running(t, newGame(t, `
		.....
		.10..
		.234.
		.....
		....*`))
	require.Equal(t, model.RIGHT, g.Direction)
	require.True(t, g.Steer(model.DOWN))

	assert.Equal(t, model.HIT_SELF, g.Tick())
	assert.Equal(t, model.GAME_OVER, g.Phase)
	assert.Len(t, g.Snake, 5)
}

func TestGame_FollowTail(t *testing.T) {
	g := running(t, newGame(t, `
		.....
		.10..
		.23..
		.....
		....*`))
	require.True(t, g.Steer(model.DOWN))

	assert.Equal(t, model.MOVED, g.Tick())
	assert.Equal(t, []model.Cell{{Col: 2, Row: 2}, {Col: 2, Row: 1}, {Col: 1, Row: 1}, {Col: 1, Row: 2}}, g.Snake)
}

func TestGame_Growth(t *testing.T) {
	g := running(t, newGame(t, `
		.....
		.10*.
		.....
		.....
		.....`))

	assert.Equal(t, model.ATE, g.Tick())
	assert.Len(t, g.Snake, 3)
	assert.Equal(t, 10, g.Score)
	assert.Equal(t, InitialSpeed-SpeedStep, g.Speed)
	assert.Equal(t, []model.Cell{{Col: 3, Row: 1}, {Col: 2, Row: 1}, {Col: 1, Row: 1}}, g.Snake)
	assert.NotContains(t, g.Snake, g.Food)

	g.Food = model.Cell{Col: 0, Row: 4}
	require.True(t, g.Steer(model.DOWN))
	assert.Equal(t, model.MOVED, g.Tick())
	assert.Len(t, g.Snake, 3)
	assert.Equal(t, 10, g.Score)
}

func TestGame_SpeedFloor(t *testing.T) {
	l := DefaultLayout()
	l.Snake = []model.Cell{{Col: 0, Row: 0}}
	l.Food = model.Cell{Col: 1, Row: 0}
	g := running(t, NewGame(l, rand.New(rand.NewSource(3))))
	g.Speed = MinSpeed + 10*time.Millisecond

	require.Equal(t, model.ATE, g.Tick())
	assert.Equal(t, MinSpeed, g.Speed)

	g.Food = g.Snake[0].Step(model.RIGHT)
	require.Equal(t, model.ATE, g.Tick())
	assert.Equal(t, MinSpeed, g.Speed)
}

func TestGame_ReversalRejected(t *testing.T) {
	g := running(t, newGame(t, ""))
	require.Equal(t, model.RIGHT, g.Direction)

	assert.False(t, g.Steer(model.LEFT))
	assert.Equal(t, model.Direction(0), g.Pending)
	assert.True(t, g.Steer(model.UP))
	assert.True(t, g.Steer(model.DOWN))
	assert.Equal(t, model.DOWN, g.Pending)

	g.Tick()
	assert.Equal(t, model.DOWN, g.Direction)
	assert.Equal(t, model.Cell{Col: 10, Row: 11}, g.Snake[0])
	assert.False(t, g.Steer(model.UP))
}

func TestGame_InputIgnoredUnlessRunning(t *testing.T) {
	g := newGame(t, "")
	assert.False(t, g.Steer(model.UP))
	assert.False(t, g.Swipe(0, -100))
	require.True(t, g.Start())
	assert.False(t, g.Steer(model.UP))

	g = running(t, newGame(t, ""))
	require.True(t, g.TogglePause())
	assert.False(t, g.Steer(model.UP))
	assert.Equal(t, model.NO_TICK, g.Tick())
}

func TestSwipeDirection(t *testing.T) {
	cases := []struct {
		dx, dy float64
		want   model.Direction
	}{
		{50, 10, model.RIGHT},
		{-50, 10, model.LEFT},
		{5, 31, model.DOWN},
		{5, -31, model.UP},
		{30, 0, 0},
		{0, -30, 0},
		{40, 40, model.DOWN},
		{-40, -40, model.UP},
		{0, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SwipeDirection(c.dx, c.dy), "dx=%v dy=%v", c.dx, c.dy)
	}
}

func TestGame_Swipe(t *testing.T) {
	g := running(t, newGame(t, ""))
	assert.False(t, g.Swipe(-80, 0))
	assert.False(t, g.Swipe(10, 20))
	assert.True(t, g.Swipe(10, -45))
	assert.Equal(t, model.UP, g.Pending)
}

func TestGame_PauseAndReset(t *testing.T) {
	g := newGame(t, "")
	assert.False(t, g.TogglePause())
	assert.False(t, g.Reset())

	running(t, g)
	g.Tick()
	assert.False(t, g.Reset())
	require.True(t, g.TogglePause())
	assert.Equal(t, model.PAUSED, g.Phase)
	require.True(t, g.TogglePause())
	assert.Equal(t, model.RUNNING, g.Phase)

	g.Snake = []model.Cell{{Col: model.GridSize - 1, Row: 0}}
	require.Equal(t, model.HIT_WALL, g.Tick())
	assert.False(t, g.TogglePause())

	require.True(t, g.Reset())
	assert.Equal(t, model.IDLE, g.Phase)
	assert.Equal(t, []model.Cell{{Col: 10, Row: 10}}, g.Snake)
	assert.Equal(t, 0, g.Score)
	assert.Equal(t, InitialSpeed, g.Speed)
	assert.Equal(t, model.NO_TICK, g.Outcome)
}

func TestGame_PlaceFoodAvoidsSnake(t *testing.T) {
	g := newGame(t, "")
	var occupied []model.Cell
	for c := 0; c < model.GridSize; c++ {
		for r := 0; r < model.GridSize/2; r++ {
			occupied = append(occupied, model.Cell{Col: c, Row: r})
		}
	}
	for i := 0; i < 500; i++ {
		food, ok := g.placeFood(occupied)
		require.True(t, ok)
		assert.GreaterOrEqual(t, food.Row, model.GridSize/2)
		assert.True(t, food.In(model.GridSize))
	}

	free := occupied[len(occupied)-1]
	all := append([]model.Cell(nil), occupied[:len(occupied)-1]...)
	for c := 0; c < model.GridSize; c++ {
		for r := model.GridSize / 2; r < model.GridSize; r++ {
			all = append(all, model.Cell{Col: c, Row: r})
		}
	}
	food, ok := g.placeFood(all)
	require.True(t, ok)
	assert.Equal(t, free, food)

	_, ok = g.placeFood(append(all, free))
	assert.False(t, ok)
}

func TestGame_BoardFull(t *testing.T) {
	g := running(t, newGame(t, `
		10
		2*`))
	require.True(t, g.Steer(model.DOWN))

	assert.Equal(t, model.BOARD_FULL, g.Tick())
	assert.Equal(t, model.GAME_OVER, g.Phase)
	assert.Len(t, g.Snake, 4)
	assert.Equal(t, 10, g.Score)
}

func TestSettleHighScore(t *testing.T) {
	best, write := settleHighScore(50, 80)
	assert.Equal(t, 80, best)
	assert.True(t, write)

	best, write = settleHighScore(50, 30)
	assert.Equal(t, 50, best)
	assert.False(t, write)

	_, write = settleHighScore(50, 50)
	assert.False(t, write)
	_, write = settleHighScore(0, 0)
	assert.False(t, write)
}
