package Canvas

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/alphadose/haxmap"
	"github.com/cespare/xxhash"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/tree-canvas/Geometry"
	"github.com/google/btree"
	"github.com/puzpuzpuz/xsync/v3"
)

// Circle is a painted node.
type Circle struct {
	At    Geometry.Position
	Label string
}

// Segment is a painted edge, from the bottom of the parent circle to the top of the child.
type Segment struct {
	From, To Geometry.Point
}

// shape is one paint operation, exactly one of c and s is set.
type shape struct {
	seq uint64
	c   *Circle
	s   *Segment
}

func lessShape(a, b shape) bool {
	return a.seq < b.seq
}

// Stats counts paint operations over the lifetime of a Scene.
type Stats struct {
	Draws    int64 // circles and segments painted.
	Overlaps int64 // circles painted on the centre of a circle with a different label.
}

// Scene is a drawing surface that keeps every shape painted on it, like a canvas:
// painting is additive and nothing goes away until Clear. It implements
// Trees.Surface and Trees.Clearer.
// Painting and Clear are serialized, readers see a Scene between 2 of them.
type Scene struct {
	Width, Height float64

	mu       sync.RWMutex
	seq      uint64
	order    *btree.BTreeG[shape]          // paint order.
	circles  *haxmap.Map[uint64, Circle]   // topmost circle by centre.
	segments *hashmap.Map[uint64, Segment] // segments by endpoints.
	draws    *xsync.Counter
	overlaps *xsync.Counter
}

// NewScene returns an empty Scene of the given size.
func NewScene(width, height float64) *Scene {
	return &Scene{
		Width:    width,
		Height:   height,
		order:    btree.NewG[shape](8, lessShape),
		circles:  haxmap.New[uint64, Circle](),
		segments: hashmap.New[uint64, Segment](),
		draws:    xsync.NewCounter(),
		overlaps: xsync.NewCounter(),
	}
}

func putPoint(b []byte, p Geometry.Point) {
	binary.LittleEndian.PutUint64(b, math.Float64bits(p.X))
	binary.LittleEndian.PutUint64(b[8:], math.Float64bits(p.Y))
}

func pointKey(p Geometry.Point) uint64 {
	var b [16]byte
	putPoint(b[:], p)
	return xxhash.Sum64(b[:])
}

func segmentKey(from, to Geometry.Point) uint64 {
	var b [32]byte
	putPoint(b[:], from)
	putPoint(b[16:], to)
	return xxhash.Sum64(b[:])
}

// paint appends sh to the paint order. u.mu must be held.
func (u *Scene) paint(sh shape) {
	u.seq++
	sh.seq = u.seq
	u.order.ReplaceOrInsert(sh)
	u.draws.Inc()
}

// DrawNode paints a circle labelled label at at.
func (u *Scene) DrawNode(at Geometry.Position, label string) {
	c := Circle{at, label}
	k := pointKey(at.Point)
	u.mu.Lock()
	defer u.mu.Unlock()
	if old, ok := u.circles.Get(k); ok && old.At.Point == at.Point && old.Label != label {
		u.overlaps.Inc()
	}
	u.circles.Set(k, c)
	u.paint(shape{c: &c})
}

// DrawEdge paints the segment joining the circle at from to the circle at to, see Geometry.Edge.
func (u *Scene) DrawEdge(from, to Geometry.Position) {
	a, b := Geometry.Edge(from, to)
	s := Segment{a, b}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.segments.Set(segmentKey(a, b), s)
	u.paint(shape{s: &s})
}

// Clear wipes the Scene. Stats are kept.
func (u *Scene) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.order.Ascend(func(sh shape) bool {
		if sh.c != nil {
			u.circles.Del(pointKey(sh.c.At.Point))
		} else {
			u.segments.Del(segmentKey(sh.s.From, sh.s.To))
		}
		return true
	})
	u.order.Clear(false)
}

// NodeAt returns the label of the topmost circle centred at p.
func (u *Scene) NodeAt(p Geometry.Point) (string, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	c, ok := u.circles.Get(pointKey(p))
	if !ok || c.At.Point != p {
		return "", false
	}
	return c.Label, true
}

// HasEdge reports whether the edge from the circle at from to the circle at to is painted.
func (u *Scene) HasEdge(from, to Geometry.Position) bool {
	a, b := Geometry.Edge(from, to)
	u.mu.RLock()
	defer u.mu.RUnlock()
	s, ok := u.segments.Get(segmentKey(a, b))
	return ok && s.From == a && s.To == b
}

// Len is the number of shapes painted since the last Clear.
func (u *Scene) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.order.Len()
}

// Stats of u.
func (u *Scene) Stats() Stats {
	return Stats{u.draws.Value(), u.overlaps.Value()}
}

// Shapes calls f on the painted shapes in paint order until f returns false.
// Exactly one of c and s is non nil. f mustn't paint on u.
func (u *Scene) Shapes(f func(c *Circle, s *Segment) bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	u.order.Ascend(func(sh shape) bool {
		return f(sh.c, sh.s)
	})
}
