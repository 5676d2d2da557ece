package Geometry

// Point is a coordinate on the canvas. Y grows downwards.
type Point struct {
	X, Y float64
}

// Position is where a node is painted: the centre of its circle and the radius.
// A Position is fixed once assigned to a node.
type Position struct {
	Point
	R float64
}

// Direction is the branch taken from a parent to reach a child.
type Direction byte

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Policy places children at fixed offsets from their parent: Spread*r across
// and Spread*r down, where r is the parent's radius. Children inherit the radius.
type Policy struct {
	Root   Position
	Spread float64
}

// Default policy: root at (200, 20) with radius 15, children 3 radii away on both axes.
var Default = Policy{
	Root:   Position{Point{200, 20}, 15},
	Spread: 3,
}

// Child position of parent in direction d.
// Time: O(1)
func (u Policy) Child(parent Position, d Direction) Position {
	off := u.Spread * parent.R
	c := Position{Point{parent.X + off, parent.Y + off}, parent.R}
	if d == Left {
		c.X = parent.X - off
	}
	return c
}

// Path returns the position reached by following dirs from the root.
func (u Policy) Path(dirs ...Direction) Position {
	p := u.Root
	for _, d := range dirs {
		p = u.Child(p, d)
	}
	return p
}

// Edge returns the endpoints of the line joining from to a child at to: it leaves
// the bottom of the from circle and ends at the top of the to circle.
func Edge(from, to Position) (a, b Point) {
	return Point{from.X, from.Y + from.R}, Point{to.X, to.Y - to.R}
}
