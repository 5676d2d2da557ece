package Trees

import (
	"fmt"
	"io"
	"strings"

	"github.com/g-m-twostay/tree-canvas/Geometry"
	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree that draws itself on a Surface as
// it grows. Values equal to a node's value go to its left, so repeated values
// form a chain to the left; the tree never rotates.
// Every node gets its Position from its parent's through the Policy when it's
// created. Nothing is drawn on removal, the Surface keeps showing removed nodes
// until Redraw is called.
// A BST isn't safe for concurrent use.
type BST[T constraints.Ordered] struct {
	root   *Node[T]
	size   uint
	policy Geometry.Policy
	s      Surface
}

// New returns an empty BST drawing on s with Geometry.Default. A nil s draws nothing.
func New[T constraints.Ordered](s Surface) *BST[T] {
	return NewWithPolicy[T](s, Geometry.Default)
}

// NewWithPolicy returns an empty BST drawing on s and placing nodes with p.
func NewWithPolicy[T constraints.Ordered](s Surface, p Geometry.Policy) *BST[T] {
	if s == nil {
		s = Discard
	}
	return &BST[T]{policy: p, s: s}
}

// Root [Tree.Root]
func (u *BST[T]) Root() *Node[T] {
	return u.root
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() uint {
	return u.size
}

// Policy used to place the nodes.
func (u *BST[T]) Policy() Geometry.Policy {
	return u.policy
}

func label[T any](v T) string {
	return fmt.Sprint(v)
}

// insert v to the subtree rooting at *curPtr recursively. curPtr is passed by reference,
// parent is the node owning *curPtr and d the side *curPtr is on; parent is nil for the root.
// The new node is drawn, followed by the edge from its parent.
func (u *BST[T]) insert(curPtr **Node[T], parent *Node[T], d Geometry.Direction, v T) *Node[T] {
	if cur := *curPtr; cur == nil {
		n := &Node[T]{v: v, at: u.policy.Root}
		if parent != nil {
			n.at = u.policy.Child(parent.at, d)
		}
		u.s.DrawNode(n.at, label(v))
		if parent != nil {
			u.s.DrawEdge(parent.at, n.at)
		}
		*curPtr = n
		u.size++
		return n
	} else if v <= cur.v {
		return u.insert(&cur.l, cur, Geometry.Left, v)
	} else {
		return u.insert(&cur.r, cur, Geometry.Right, v)
	}
}

// Insert [Tree.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *BST[T]) Insert(v T) *Node[T] {
	return u.insert(&u.root, nil, Geometry.Left, v)
}

// remove v from the subtree rooting at *curPtr recursively. curPtr is passed by reference.
// Returns false if v isn't in the subtree.
// When the matched node has 2 children, it takes the key of the minimum of its right
// subtree, and that key is then removed from the right subtree. The matched node keeps
// its position.
// Time: O(D)
func (u *BST[T]) remove(curPtr **Node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if v < cur.v {
		return u.remove(&cur.l, v)
	} else if v != cur.v {
		return u.remove(&cur.r, v)
	}
	switch {
	case cur.l == nil && cur.r == nil:
		*curPtr = nil
	case cur.l == nil:
		*curPtr = cur.r
	case cur.r == nil:
		*curPtr = cur.l
	default:
		cur.v = findMin(cur.r).v
		return u.remove(&cur.r, cur.v)
	}
	cur.l, cur.r = nil, nil
	u.size--
	return true
}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove. Removing a value that isn't in u does nothing.
// Time: O(D)
func (u *BST[T]) Remove(v T) bool {
	return u.remove(&u.root, v)
}

// Search returns the first node holding v on the path from the root, nil if there's none.
// Time: O(D); Space: O(1)
func (u *BST[T]) Search(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	return u.Search(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return findMin(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return findMax(u.root).v, true
}

// InOrder [Tree.InOrder]. Uses morris traversal, the links threaded during the
// traversal are all restored before returning, even when f stops early or panics.
// A panic in f is raised again once the tree is whole.
// Time: O(n); Space: O(1)
func (u *BST[T]) InOrder(f func(T) bool) {
	var p any
	visit := func(v T) (more bool) {
		defer func() {
			if r := recover(); r != nil {
				p, more = r, false
			}
		}()
		return f(v)
	}
	cur := u.root
	for stop := false; cur != nil; {
		if cur.l == nil {
			if !stop && !visit(cur.v) {
				stop = true
			}
			cur = cur.r
			continue
		}
		pre := cur.l
		for pre.r != nil && pre.r != cur {
			pre = pre.r
		}
		if pre.r == nil {
			pre.r = cur
			cur = cur.l
		} else {
			pre.r = nil
			if !stop && !visit(cur.v) {
				stop = true
			}
			cur = cur.r
		}
	}
	if p != nil {
		panic(p)
	}
}

// Keys in in-order.
func (u *BST[T]) Keys() []T {
	s := make([]T, 0, u.size)
	u.InOrder(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// corrupt checks that every value in the subtree rooting at c is in [lo, hi];
// a nil bound is unbounded. Values equal to a node can end up on its right
// after a removal when the tree holds repeated values, so both bounds are inclusive.
func (u *BST[T]) corrupt(c *Node[T], lo, hi *T) bool {
	if c == nil {
		return false
	}
	if (lo != nil && c.v < *lo) || (hi != nil && c.v > *hi) {
		return true
	}
	return u.corrupt(c.l, lo, &c.v) || u.corrupt(c.r, &c.v, hi)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *BST[T]) Corrupt() bool {
	return u.corrupt(u.root, nil, nil)
}

func (u *BST[T]) minDepth(c *Node[T]) uint {
	if c == nil {
		return 0
	}
	if c.l == nil {
		return u.minDepth(c.r) + 1
	} else if c.r == nil {
		return u.minDepth(c.l) + 1
	}
	return min(u.minDepth(c.l), u.minDepth(c.r)) + 1
}

// MinDepth is the number of nodes on the shortest path from the root to a leaf. Recursive.
func (u *BST[T]) MinDepth() uint {
	return u.minDepth(u.root)
}

func (u *BST[T]) maxDepth(c *Node[T]) uint {
	if c == nil {
		return 0
	}
	return max(u.maxDepth(c.l), u.maxDepth(c.r)) + 1
}

// MaxDepth is the number of levels of the tree. Recursive.
func (u *BST[T]) MaxDepth() uint {
	return u.maxDepth(u.root)
}

// Redraw paints the whole tree again: clears the Surface when it is a Clearer,
// then draws every node in pre-order, each followed by the edge from its parent.
// Time: O(n)
func (u *BST[T]) Redraw() {
	if c, ok := u.s.(Clearer); ok {
		c.Clear()
	}
	u.PreOrder(func(parent, n *Node[T]) bool {
		u.s.DrawNode(n.at, label(n.v))
		if parent != nil {
			u.s.DrawEdge(parent.at, n.at)
		}
		return true
	})
}

// Print the tree to w in pre-order, one node per line indented by depth.
func (u *BST[T]) Print(w io.Writer) error {
	var err error
	u.walkDepth(func(n *Node[T], d int) bool {
		_, err = fmt.Fprintf(w, "%s%v (%g, %g)\n", strings.Repeat("  ", d), n.v, n.at.X, n.at.Y)
		return err == nil
	})
	return err
}
