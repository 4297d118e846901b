package model

import "time"

const GridSize = 20

type Cell struct {
	Col, Row int
}

type Direction int

const (
	UP Direction = iota + 1
	DOWN
	LEFT
	RIGHT
)

type Phase int

const (
	IDLE Phase = iota + 1
	COUNTDOWN
	RUNNING
	PAUSED
	GAME_OVER
)

// Outcome describes what the last simulation tick did.
type Outcome int

const (
	NO_TICK Outcome = iota
	MOVED
	ATE
	HIT_WALL
	HIT_SELF
	BOARD_FULL
)

// Snapshot is the read-only view published after every committed change.
// Snake is never modified after publication.
type Snapshot struct {
	Seq          uint64
	Grid         int
	Snake        []Cell
	Food         Cell
	Direction    Direction
	Score        int
	HighScore    int
	NewHighScore bool
	Speed        time.Duration
	Phase        Phase
	Countdown    int
	Outcome      Outcome
}
