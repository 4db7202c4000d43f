package game

// Direction is one of the closed set of exit directions a room may use.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Directions lists every valid direction in display order.
var Directions = []Direction{North, South, East, West, Up, Down}

var reverses = map[Direction]Direction{
	North: South,
	South: North,
	East:  West,
	West:  East,
	Up:    Down,
	Down:  Up,
}

// ParseDirection resolves a direction token. The token must already be
// lowercased by the caller.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(s)
	_, ok := reverses[d]
	return d, ok
}

// Reverse returns the opposite direction, used when wiring bidirectional
// connections. Reverse is its own inverse.
func (d Direction) Reverse() Direction {
	return reverses[d]
}

func (d Direction) String() string {
	return string(d)
}
