package board

// Direction is the direction the snake is heading.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Valid reports whether d is one of the four movement directions.
// Step rejects anything else before touching the board.
func (d Direction) Valid() bool {
	return d <= DirDown
}

// Delta returns the (row, column) offset of one step in this direction.
// Rows grow downward, columns rightward.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Point is a board cell location.
type Point struct {
	Row int
	Col int
}

// Move returns the neighboring point one step in the given direction.
func (p Point) Move(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// CellKind discriminates the contents of a board cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellFood
	CellSnake
)

// Cell is the state of one board cell. Dir is meaningful only for CellSnake
// cells: it records the direction the snake was heading when its head last
// occupied the cell. The tail reads it back to retrace the head's path, which
// is what lets the snake body stay implicit instead of being a stored list.
type Cell struct {
	Kind CellKind
	Dir  Direction
}
