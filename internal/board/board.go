// Package board implements the snake board state engine. It owns the grid,
// the snake's head and tail positions and the food cell, and exposes the
// per-tick state transition. The package is UI-agnostic and deterministic
// given its RNG.
package board

import (
	"fmt"
	"math/rand"
)

// Status is the outcome of a round so far.
type Status uint8

const (
	StatusContinue Status = iota
	StatusLost
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Board holds the full state of one snake round.
//
// The snake body is implicit. Only head and tail are tracked; every cell the
// snake occupies stores the direction the head was moving when it passed
// through, so the body path can be reconstructed by walking from the tail and
// following the stored directions. Advancing the tail is O(1): read the
// tail cell's direction, clear the cell, move the tail along it.
//
// Board is not safe for concurrent use; callers serialize Step.
type Board struct {
	width  int
	height int
	cells  []Cell // row-major, index = row*width + col
	head   Point
	tail   Point
	food   Point
	status Status
	rng    *rand.Rand
}

// New creates a board with the given dimensions and resets it to the initial
// round state. Dimensions below 1x1 are rejected.
func New(width, height int, rng *rand.Rand) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("board: invalid dimensions %dx%d", width, height)
	}
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		rng:    rng,
	}
	b.Reset()
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Head returns the snake's head position.
func (b *Board) Head() Point { return b.head }

// Tail returns the snake's tail position.
func (b *Board) Tail() Point { return b.tail }

// Food returns the current food position, or (-1,-1) if the board had no
// empty cell left when food was last placed.
func (b *Board) Food() Point { return b.food }

// Status returns the round status. StatusLost is terminal until Reset.
func (b *Board) Status() Status { return b.status }

// InBounds reports whether p is a valid board position.
func (b *Board) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

// CellAt returns the state of the cell at (row, col). Out-of-range
// coordinates read as empty. The renderer is the intended caller; the engine
// itself never reads through this.
func (b *Board) CellAt(row, col int) Cell {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return Cell{}
	}
	return b.cells[row*b.width+col]
}

func (b *Board) at(p Point) Cell {
	return b.cells[p.Row*b.width+p.Col]
}

func (b *Board) set(p Point, c Cell) {
	b.cells[p.Row*b.width+p.Col] = c
}

// Reset clears the board and starts a new round: a length-1 snake at the
// board center and one food cell. The center cell itself stays empty until
// the first step marks it, same as a fresh board in every other respect.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
	center := Point{Row: b.height / 2, Col: b.width / 2}
	b.head = center
	b.tail = center
	b.status = StatusContinue
	b.placeFood()
}

// placeFood puts food on a uniformly random empty cell. Collecting the empty
// cells first keeps placement bounded on a crowded board, where rejection
// sampling would degenerate. With no empty cell left the food is parked at
// the off-board sentinel (-1,-1) so it can never be eaten.
func (b *Board) placeFood() {
	empty := make([]Point, 0, len(b.cells))
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.cells[row*b.width+col].Kind == CellEmpty {
				empty = append(empty, Point{Row: row, Col: col})
			}
		}
	}
	if len(empty) == 0 {
		b.food = Point{Row: -1, Col: -1}
		return
	}
	b.food = empty[b.rng.Intn(len(empty))]
	b.set(b.food, Cell{Kind: CellFood})
}

// Step advances the round by one tick in the given direction and returns the
// resulting status.
//
// An invalid direction is a no-op tick: the board is left untouched and the
// current status returned. After StatusLost every Step is a no-op until
// Reset.
func (b *Board) Step(dir Direction) Status {
	if b.status == StatusLost {
		return StatusLost
	}
	if !dir.Valid() {
		return StatusContinue
	}

	// Leave the movement direction behind in the cell the head is vacating;
	// the tail reads it back when it passes through.
	b.set(b.head, Cell{Kind: CellSnake, Dir: dir})

	next := b.head.Move(dir)

	// The tail cell is exempt from self-collision: unless the snake grows
	// this tick, the tail vacates it in the same move.
	if !b.InBounds(next) || (next != b.tail && b.at(next).Kind == CellSnake) {
		b.status = StatusLost
		return StatusLost
	}

	if b.at(next).Kind == CellFood {
		// Growing: the tail stays put. The eaten cell still reads CellFood
		// here, so placeFood cannot pick it for the new food.
		b.placeFood()
	} else {
		tailDir := b.at(b.tail).Dir
		b.set(b.tail, Cell{})
		b.tail = b.tail.Move(tailDir)
	}

	b.head = next
	b.set(b.head, Cell{Kind: CellSnake, Dir: dir})
	return StatusContinue
}
