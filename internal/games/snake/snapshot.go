package snake

import "github.com/ayefimov/termsnake/internal/board"

// Snapshot captures the observable round state for determinism testing.
type Snapshot struct {
	Width    int
	Height   int
	Head     board.Point
	Tail     board.Point
	Food     board.Point
	Occupied int
	Lost     bool
}

// Snapshot returns the current round snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.b == nil {
		return Snapshot{}
	}

	occupied := 0
	for row := 0; row < g.b.Height(); row++ {
		for col := 0; col < g.b.Width(); col++ {
			if g.b.CellAt(row, col).Kind == board.CellSnake {
				occupied++
			}
		}
	}

	return Snapshot{
		Width:    g.b.Width(),
		Height:   g.b.Height(),
		Head:     g.b.Head(),
		Tail:     g.b.Tail(),
		Food:     g.b.Food(),
		Occupied: occupied,
		Lost:     g.b.Status() == board.StatusLost,
	}
}
