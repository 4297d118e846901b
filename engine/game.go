package engine

import (
	"math"
	"time"

	"github.com/zucenko/folio/model"
	"golang.org/x/exp/rand"
)

const (
	FoodScore      = 10
	InitialSpeed   = 300 * time.Millisecond
	SpeedStep      = 15 * time.Millisecond
	MinSpeed       = 80 * time.Millisecond
	CountdownFrom  = 3
	CountdownStep  = time.Second
	SwipeThreshold = 30.0
)

// Game is the snake state machine. It has no timers and no locking; the
// owner advances it with Tick and CountDown and feeds it input.
type Game struct {
	Phase     model.Phase
	Countdown int
	Snake     []model.Cell
	Food      model.Cell
	Direction model.Direction
	Pending   model.Direction
	Score     int
	Speed     time.Duration
	Outcome   model.Outcome

	layout Layout
	rng    *rand.Rand
}

func NewGame(layout Layout, rng *rand.Rand) *Game {
	g := &Game{layout: layout, rng: rng, Phase: model.IDLE}
	g.init()
	return g
}

func (g *Game) Grid() int {
	return g.layout.Grid
}

func (g *Game) init() {
	g.Snake = append([]model.Cell(nil), g.layout.Snake...)
	g.Food = g.layout.Food
	g.Direction = g.layout.Direction
	g.Pending = 0
	g.Score = 0
	g.Speed = InitialSpeed
	g.Countdown = 0
	g.Outcome = model.NO_TICK
}

// Start leaves IDLE for a fresh game counting down from CountdownFrom.
func (g *Game) Start() bool {
	if g.Phase != model.IDLE {
		return false
	}
	g.init()
	g.Phase = model.COUNTDOWN
	g.Countdown = CountdownFrom
	return true
}

// CountDown consumes one countdown step; the last one switches to RUNNING.
func (g *Game) CountDown() bool {
	if g.Phase != model.COUNTDOWN {
		return false
	}
	g.Countdown--
	if g.Countdown <= 0 {
		g.Countdown = 0
		g.Phase = model.RUNNING
	}
	return true
}

func (g *Game) TogglePause() bool {
	switch g.Phase {
	case model.RUNNING:
		g.Phase = model.PAUSED
	case model.PAUSED:
		g.Phase = model.RUNNING
	default:
		return false
	}
	return true
}

// Reset returns a finished or paused game to IDLE with a fresh board.
func (g *Game) Reset() bool {
	if g.Phase != model.GAME_OVER && g.Phase != model.PAUSED {
		return false
	}
	g.init()
	g.Phase = model.IDLE
	return true
}

// Steer buffers d for the next tick. Later calls overwrite earlier ones.
func (g *Game) Steer(d model.Direction) bool {
	if g.Phase != model.RUNNING || !d.Valid() {
		return false
	}
	if d == g.Direction.Opposite() {
		return false
	}
	g.Pending = d
	return true
}

func (g *Game) Swipe(dx, dy float64) bool {
	d := SwipeDirection(dx, dy)
	if d == 0 {
		return false
	}
	return g.Steer(d)
}

// SwipeDirection maps a gesture displacement to a direction, or 0 when the
// dominant axis does not exceed SwipeThreshold. Ties go to the vertical axis.
func SwipeDirection(dx, dy float64) model.Direction {
	if math.Abs(dx) > math.Abs(dy) {
		switch {
		case dx > SwipeThreshold:
			return model.RIGHT
		case dx < -SwipeThreshold:
			return model.LEFT
		}
		return 0
	}
	switch {
	case dy > SwipeThreshold:
		return model.DOWN
	case dy < -SwipeThreshold:
		return model.UP
	}
	return 0
}

// Tick advances the snake by one cell.
func (g *Game) Tick() model.Outcome {
	if g.Phase != model.RUNNING {
		return model.NO_TICK
	}
	if g.Pending.Valid() && g.Pending != g.Direction.Opposite() {
		g.Direction = g.Pending
	}
	g.Pending = 0

	head := g.Snake[0].Step(g.Direction)
	if !head.In(g.layout.Grid) {
		return g.over(model.HIT_WALL)
	}

	// the tail moves away in the same tick, so it is not part of the candidate
	candidate := make([]model.Cell, 0, len(g.Snake))
	candidate = append(candidate, head)
	candidate = append(candidate, g.Snake[:len(g.Snake)-1]...)
	for _, c := range candidate[1:] {
		if c == head {
			return g.over(model.HIT_SELF)
		}
	}

	if head != g.Food {
		g.Snake = candidate
		g.Outcome = model.MOVED
		return g.Outcome
	}

	grown := make([]model.Cell, 0, len(g.Snake)+1)
	grown = append(grown, head)
	grown = append(grown, g.Snake...)
	g.Snake = grown
	g.Score += FoodScore
	g.Speed -= SpeedStep
	if g.Speed < MinSpeed {
		g.Speed = MinSpeed
	}
	food, ok := g.placeFood(grown)
	if !ok {
		return g.over(model.BOARD_FULL)
	}
	g.Food = food
	g.Outcome = model.ATE
	return g.Outcome
}

func (g *Game) over(o model.Outcome) model.Outcome {
	g.Phase = model.GAME_OVER
	g.Outcome = o
	return o
}

// placeFood draws uniformly random cells until one is free of occupied.
// A board without free cells reports false.
func (g *Game) placeFood(occupied []model.Cell) (model.Cell, bool) {
	grid := g.layout.Grid
	if len(occupied) >= grid*grid {
		return model.Cell{}, false
	}
	taken := make(map[model.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}
	for {
		c := model.Cell{Col: g.rng.Intn(grid), Row: g.rng.Intn(grid)}
		if _, hit := taken[c]; !hit {
			return c, true
		}
	}
}

// settleHighScore returns the best score after a game ending with score and
// whether it has to be written to the store.
func settleHighScore(best, score int) (int, bool) {
	if score > best {
		return score, true
	}
	return best, false
}
