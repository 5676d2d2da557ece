package Trees

import (
	"testing"
)

const (
	bAddN = 1 << 14
)

var sideEff *Node[int]

func BenchmarkBST_Insert(b *testing.B) {
	for range b.N {
		tree := New[int](nil)
		for range bAddN {
			sideEff = tree.Insert(rg.Int())
		}
	}
}

func BenchmarkBST_Remove(b *testing.B) {
	all := make([]int, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := New[int](nil)
		for i := range all {
			all[i] = rg.Int()
			tree.Insert(all[i])
		}
		b.StartTimer()
		for _, v := range all {
			tree.Remove(v)
		}
	}
}

func BenchmarkBST_Search(b *testing.B) {
	tree := New[int](nil)
	all := rg.Perm(bAddN)
	for _, v := range all {
		tree.Insert(v)
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range all {
			sideEff = tree.Search(v)
		}
	}
}

func BenchmarkBST_Redraw(b *testing.B) {
	tree := New[int](nil)
	for _, v := range rg.Perm(bAddN) {
		tree.Insert(v)
	}
	b.ResetTimer()
	for range b.N {
		tree.Redraw()
	}
}
