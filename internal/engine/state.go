// Package engine holds the grid Snake rules: a value-typed State advanced by
// a pure Step function, plus a small Session wrapper for the desktop loop.
package engine

// Point is an integer grid cell.
type Point struct {
	X, Y int
}

// Add returns p moved one step along d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// InBounds reports whether p lies on the CellCount x CellCount grid.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < CellCount && p.Y >= 0 && p.Y < CellCount
}

// State is one snapshot of a game. Snake[0] is the head.
type State struct {
	Snake []Point
	Food  Point

	// Direction is applied on the next step; Heading is what the last step
	// applied. A turn may not undo Heading, so two quick key presses within
	// one tick can never fold the snake back onto its neck.
	Direction Direction
	Heading   Direction

	Score    int
	Ticks    int
	GameOver bool
	Won      bool // board filled; implies GameOver
}

// NewState returns the fixed initial state.
func NewState() State {
	return State{
		Snake:     []Point{StartCell},
		Food:      StartFood,
		Direction: StartDirection,
		Heading:   StartDirection,
	}
}

// Reset restores the initial state. It is legal at any time; the shell only
// offers it once the game is over.
func Reset() State { return NewState() }

// Head returns the head cell.
func (s State) Head() Point { return s.Snake[0] }

// Len returns the snake length.
func (s State) Len() int { return len(s.Snake) }

// Occupies reports whether any segment sits on p.
func (s State) Occupies(p Point) bool {
	return occupied(s.Snake, p)
}

// Clone returns a deep copy safe to hand to another consumer.
func (s State) Clone() State {
	c := s
	c.Snake = append([]Point(nil), s.Snake...)
	return c
}

// Step advances s by one tick and returns the new state. The input is not
// modified. rng supplies food placement.
func Step(s State, rng *Rand) State {
	if s.GameOver || len(s.Snake) == 0 {
		return s
	}

	head := s.Head().Add(s.Direction)

	// Self-collision is checked against the pre-move body, tail included.
	if !head.InBounds() || occupied(s.Snake, head) {
		s.GameOver = true
		return s
	}

	next := make([]Point, 0, len(s.Snake)+1)
	next = append(next, head)
	next = append(next, s.Snake...)

	s.Heading = s.Direction
	s.Ticks++

	if head == s.Food {
		s.Score++
		s.Snake = next
		food, ok := spawnFood(next, rng)
		if !ok {
			s.GameOver = true
			s.Won = true
			return s
		}
		s.Food = food
		return s
	}

	s.Snake = next[:len(next)-1]
	return s
}

// SetDirection queues d for the next step. Directions sharing an axis with
// the pending direction are ignored, which rejects both reversals and
// repeats. The reverse of the last applied move is ignored too, so the
// snake cannot fold back within one tick.
func SetDirection(s State, d Direction) State {
	if !d.Valid() || d.SameAxis(s.Direction) || d == s.Heading.Opposite() {
		return s
	}
	s.Direction = d
	return s
}

func occupied(snake []Point, p Point) bool {
	for _, seg := range snake {
		if seg == p {
			return true
		}
	}
	return false
}
