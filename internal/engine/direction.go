package engine

// Direction is a unit step on the grid.
type Direction struct {
	X, Y int
}

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Valid reports whether d is one of the four cardinal unit vectors.
func (d Direction) Valid() bool {
	return (d.X == 0) != (d.Y == 0) && abs(d.X)+abs(d.Y) == 1
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool { return d.X != 0 }

// SameAxis reports whether d and o are both horizontal or both vertical.
// Reversals and repeats both share an axis.
func (d Direction) SameAxis(o Direction) bool {
	return (d.X != 0 && o.X != 0) || (d.Y != 0 && o.Y != 0)
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction { return Direction{X: -d.X, Y: -d.Y} }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
