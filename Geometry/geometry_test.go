package Geometry

import "testing"

func TestPolicy_Child(t *testing.T) {
	root := Default.Root
	if root.X != 200 || root.Y != 20 || root.R != 15 {
		t.Fatalf("wrong root %v", root)
	}
	if l := Default.Child(root, Left); l != (Position{Point{155, 65}, 15}) {
		t.Errorf("wrong left child %v", l)
	}
	if r := Default.Child(root, Right); r != (Position{Point{245, 65}, 15}) {
		t.Errorf("wrong right child %v", r)
	}
}

func TestPolicy_Path(t *testing.T) {
	if p := Default.Path(); p != Default.Root {
		t.Errorf("empty path is %v, want root", p)
	}
	p := Default.Path(Left, Right, Left)
	want := Default.Child(Default.Child(Default.Child(Default.Root, Left), Right), Left)
	if p != want {
		t.Errorf("path is %v, want %v", p, want)
	}
	if p.Y != 20+3*45 {
		t.Errorf("depth 3 is at y=%v", p.Y)
	}
}

func TestPolicy_Custom(t *testing.T) {
	u := Policy{Position{Point{0, 0}, 10}, 2}
	if c := u.Child(u.Root, Right); c != (Position{Point{20, 20}, 10}) {
		t.Errorf("wrong child %v", c)
	}
}

func TestEdge(t *testing.T) {
	from := Default.Root
	to := Default.Child(from, Right)
	a, b := Edge(from, to)
	if a != (Point{200, 35}) {
		t.Errorf("edge starts at %v", a)
	}
	if b != (Point{245, 50}) {
		t.Errorf("edge ends at %v", b)
	}
}

func TestDirection_String(t *testing.T) {
	if Left.String() != "left" || Right.String() != "right" {
		t.Errorf("wrong names %s %s", Left, Right)
	}
}
