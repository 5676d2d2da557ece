package Trees

import "github.com/g-m-twostay/tree-canvas/Geometry"

// Tree represents a tree like structure implemented using nodes whose positions
// on a canvas are fixed when they are created.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be undefined.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree, returning the node created for it.
	Insert(v T) *Node[T]
	//Remove v from the Tree. Returning true if a node was removed, false if
	//v isn't in the Tree.
	Remove(v T) bool
	//Root of the tree, nil when empty.
	Root() *Node[T]
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//InOrder calls f on the elements in in-order until f returns false.
	//The tree must not be modified by f. A panic in f propagates after the tree is restored.
	InOrder(f func(T) bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering of the tree.
	Corrupt() bool
}

// Surface is what a tree draws itself on. DrawNode paints a labelled circle;
// DrawEdge paints the line from a parent circle to a child circle, see Geometry.Edge.
type Surface interface {
	DrawNode(at Geometry.Position, label string)
	DrawEdge(from, to Geometry.Position)
}

// Clearer is implemented by surfaces that can be wiped. BST.Redraw uses it.
type Clearer interface {
	Clear()
}

type discard struct{}

func (discard) DrawNode(Geometry.Position, string) {}
func (discard) DrawEdge(Geometry.Position, Geometry.Position) {}

// Discard is a Surface that draws nothing.
var Discard Surface = discard{}
