package Trees

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// frame on the traversal stack.
type frame[T any] struct {
	parent, n *Node[T]
	d         int
}

// walk the tree in pre-order using an explicit stack, so deep chains of
// repeated values don't grow the goroutine stack.
func (u *BST[T]) walk(f func(frame[T]) bool) {
	if u.root == nil {
		return
	}
	st := arraystack.New()
	st.Push(frame[T]{nil, u.root, 0})
	for !st.Empty() {
		top, _ := st.Pop()
		fr := top.(frame[T])
		if !f(fr) {
			return
		}
		if fr.n.r != nil {
			st.Push(frame[T]{fr.n, fr.n.r, fr.d + 1})
		}
		if fr.n.l != nil {
			st.Push(frame[T]{fr.n, fr.n.l, fr.d + 1})
		}
	}
}

// PreOrder calls f on every node with its parent, parents before children and
// left subtrees before right ones, until f returns false. The parent of the root is nil.
// Time: O(n); Space: O(D)
func (u *BST[T]) PreOrder(f func(parent, n *Node[T]) bool) {
	u.walk(func(fr frame[T]) bool {
		return f(fr.parent, fr.n)
	})
}

func (u *BST[T]) walkDepth(f func(n *Node[T], d int) bool) {
	u.walk(func(fr frame[T]) bool {
		return f(fr.n, fr.d)
	})
}

// Levels returns the values level by level from the root, each level left to right.
// Time: O(n); Space: O(n)
func (u *BST[T]) Levels() [][]T {
	var lv [][]T
	if u.root == nil {
		return lv
	}
	q := linkedlistqueue.New()
	q.Enqueue(u.root)
	for !q.Empty() {
		row := make([]T, 0, q.Size())
		for i, n := 0, q.Size(); i < n; i++ {
			top, _ := q.Dequeue()
			c := top.(*Node[T])
			row = append(row, c.v)
			if c.l != nil {
				q.Enqueue(c.l)
			}
			if c.r != nil {
				q.Enqueue(c.r)
			}
		}
		lv = append(lv, row)
	}
	return lv
}
