package Trees

import "github.com/g-m-twostay/tree-canvas/Geometry"

// A node in the BST. Each node exclusively owns its children.
// The zero value is meaningless, nodes are only created by BST.Insert.
type Node[T any] struct {
	v    T
	l, r *Node[T]
	at   Geometry.Position //assigned at creation, never changes.
}

// Key of the node. Removing a node that has 2 children overwrites the key
// of that node with its successor's, the position stays.
func (n *Node[T]) Key() T {
	return n.v
}

func (n *Node[T]) Left() *Node[T] {
	return n.l
}

func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// Child in direction d.
func (n *Node[T]) Child(d Geometry.Direction) *Node[T] {
	if d == Geometry.Left {
		return n.l
	}
	return n.r
}

// Position the node is painted at.
func (n *Node[T]) Position() Geometry.Position {
	return n.at
}

// findMin returns the leftmost node of the subtree rooting at n.
// n mustn't be nil.
// Time: O(D); Space: O(1)
func findMin[T any](n *Node[T]) *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// findMax returns the rightmost node of the subtree rooting at n.
// n mustn't be nil.
// Time: O(D); Space: O(1)
func findMax[T any](n *Node[T]) *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}
