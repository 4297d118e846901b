package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zucenko/folio/model"
)

var ErrBadLayout = errors.New("bad layout")

// Layout is the board a game starts from.
type Layout struct {
	Grid      int
	Snake     []model.Cell
	Food      model.Cell
	Direction model.Direction
}

func DefaultLayout() Layout {
	return Layout{
		Grid:      model.GridSize,
		Snake:     []model.Cell{{Col: 10, Row: 10}},
		Food:      model.Cell{Col: 5, Row: 5},
		Direction: model.RIGHT,
	}
}

func (l Layout) Validate() error {
	if l.Grid < 2 {
		return fmt.Errorf("%w: grid %d", ErrBadLayout, l.Grid)
	}
	if len(l.Snake) == 0 {
		return fmt.Errorf("%w: no snake", ErrBadLayout)
	}
	if !l.Direction.Valid() {
		return fmt.Errorf("%w: direction %d", ErrBadLayout, l.Direction)
	}
	seen := make(map[model.Cell]bool, len(l.Snake))
	for i, c := range l.Snake {
		if !c.In(l.Grid) {
			return fmt.Errorf("%w: segment %d at %v is off the board", ErrBadLayout, i, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: segment %d at %v overlaps", ErrBadLayout, i, c)
		}
		seen[c] = true
		if i > 0 && !adjacent(c, l.Snake[i-1]) {
			return fmt.Errorf("%w: segment %d at %v is detached", ErrBadLayout, i, c)
		}
	}
	if !l.Food.In(l.Grid) || seen[l.Food] {
		return fmt.Errorf("%w: food at %v", ErrBadLayout, l.Food)
	}
	return nil
}

func adjacent(a, b model.Cell) bool {
	dc, dr := a.Col-b.Col, a.Row-b.Row
	return dc*dc+dr*dr == 1
}

func LoadLayout(path string) (Layout, error) {
	file, err := os.Open(path)
	if err != nil {
		return Layout{}, err
	}
	defer file.Close()
	return ReadLayout(file)
}

// ReadLayout parses an ASCII board. Every line is a row, '.' is an empty
// cell, '*' the food and '0'-'9' 'a'-'z' the snake segments in order from
// the head. Blanks are ignored. The heading follows the neck to the head,
// a one-cell snake heads RIGHT.
func ReadLayout(reader io.Reader) (Layout, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	segments := make(map[int]model.Cell)
	foods := 0
	l := Layout{Direction: model.RIGHT}
	row := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		col := 0
		for _, char := range line {
			cell := model.Cell{Col: col, Row: row}
			switch {
			case char == ' ' || char == '\t':
				continue
			case char == '.':
			case char == '*':
				l.Food = cell
				foods++
			case char >= '0' && char <= '9', char >= 'a' && char <= 'z':
				idx := int(char - '0')
				if char >= 'a' {
					idx = int(char-'a') + 10
				}
				if prev, dup := segments[idx]; dup {
					return Layout{}, fmt.Errorf("%w: segment %q at %v and %v", ErrBadLayout, char, prev, cell)
				}
				segments[idx] = cell
			default:
				return Layout{}, fmt.Errorf("%w: unexpected %q at %v", ErrBadLayout, char, cell)
			}
			col++
		}
		if row == 0 {
			l.Grid = col
		} else if col != l.Grid {
			return Layout{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadLayout, row, col, l.Grid)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return Layout{}, err
	}
	if row != l.Grid {
		return Layout{}, fmt.Errorf("%w: %d rows for %d columns", ErrBadLayout, row, l.Grid)
	}
	if foods != 1 {
		return Layout{}, fmt.Errorf("%w: %d food cells", ErrBadLayout, foods)
	}
	for i := 0; i < len(segments); i++ {
		c, ok := segments[i]
		if !ok {
			return Layout{}, fmt.Errorf("%w: segment %d missing", ErrBadLayout, i)
		}
		l.Snake = append(l.Snake, c)
	}
	if len(l.Snake) > 1 {
		for _, d := range []model.Direction{model.UP, model.DOWN, model.LEFT, model.RIGHT} {
			if l.Snake[1].Step(d) == l.Snake[0] {
				l.Direction = d
			}
		}
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}
