package model

import "fmt"

func (c Cell) Step(d Direction) Cell {
	dc, dr := d.Delta()
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

func (c Cell) In(grid int) bool {
	return c.Col >= 0 && c.Col < grid && c.Row >= 0 && c.Row < grid
}

// Delta returns the column and row shift of one move. Rows grow downwards.
func (d Direction) Delta() (int, int) {
	switch d {
	case UP:
		return 0, -1
	case DOWN:
		return 0, 1
	case LEFT:
		return -1, 0
	case RIGHT:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	case RIGHT:
		return LEFT
	default:
		return d
	}
}

func (d Direction) Valid() bool {
	return d >= UP && d <= RIGHT
}

func (d Direction) Name() string {
	switch d {
	case UP:
		return "UP"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	case RIGHT:
		return "RIGHT"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

func (p Phase) Name() string {
	switch p {
	case IDLE:
		return "IDLE"
	case COUNTDOWN:
		return "COUNTDOWN"
	case RUNNING:
		return "RUNNING"
	case PAUSED:
		return "PAUSED"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", p)
	}
}

func (o Outcome) Name() string {
	switch o {
	case NO_TICK:
		return "NO_TICK"
	case MOVED:
		return "MOVED"
	case ATE:
		return "ATE"
	case HIT_WALL:
		return "HIT_WALL"
	case HIT_SELF:
		return "HIT_SELF"
	case BOARD_FULL:
		return "BOARD_FULL"
	default:
		return fmt.Sprintf("N/A(%d)", o)
	}
}

// Collided reports whether the outcome ended the game.
func (o Outcome) Collided() bool {
	return o == HIT_WALL || o == HIT_SELF || o == BOARD_FULL
}

// Occupies reports whether any snake segment is on c.
func (s Snapshot) Occupies(c Cell) bool {
	for _, b := range s.Snake {
		if b == c {
			return true
		}
	}
	return false
}
