package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/g-m-twostay/tree-canvas/Canvas"
	"github.com/g-m-twostay/tree-canvas/Geometry"
	"github.com/g-m-twostay/tree-canvas/Trees"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Session owns one tree and the Scene it draws on. Calls are serialized, the
// tree itself is never touched by 2 goroutines at once.
type Session struct {
	mu     sync.Mutex
	tree   *Trees.BST[int]
	scene  *Canvas.Scene
	redraw bool
}

func NewSession(cfg Config) *Session {
	scene := Canvas.NewScene(cfg.Canvas.Width, cfg.Canvas.Height)
	return &Session{
		tree:   Trees.NewWithPolicy[int](scene, cfg.Policy()),
		scene:  scene,
		redraw: cfg.RedrawOnRemove,
	}
}

// Insert key and return where it was drawn.
func (s *Session) Insert(key int) Geometry.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	at := s.tree.Insert(key).Position()
	Log.WithFields(logrus.Fields{
		"op": "insert", "key": key, "x": at.X, "y": at.Y, "size": s.tree.Size(),
	}).Info("inserted")
	if at.X-at.R < 0 || at.X+at.R > s.scene.Width || at.Y+at.R > s.scene.Height {
		Log.WithFields(logrus.Fields{"key": key, "x": at.X, "y": at.Y}).Warn("node drawn outside the canvas")
	}
	return at
}

// Remove key, reporting whether it was in the tree.
func (s *Session) Remove(key int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.tree.Remove(key)
	l := Log.WithFields(logrus.Fields{"op": "remove", "key": key, "size": s.tree.Size()})
	if !removed {
		l.Debug("key not in tree")
		return false
	}
	l.Info("removed")
	if s.redraw {
		s.tree.Redraw()
	}
	return true
}

// Redraw the whole tree on a cleared scene.
func (s *Session) Redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Redraw()
	Log.WithFields(logrus.Fields{"op": "redraw", "shapes": s.scene.Len()}).Info("redrawn")
}

// Keys in order.
func (s *Session) Keys() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Keys()
}

func (s *Session) Print(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Print(w)
}

func (s *Session) WriteSVG(w io.Writer) error {
	return s.scene.WriteSVG(w)
}

// Apply runs c, writing what it prints to w.
func (s *Session) Apply(c Command, w io.Writer) error {
	switch c.Op {
	case OpInsert:
		s.Insert(c.Key)
	case OpRemove:
		s.Remove(c.Key)
	case OpRedraw:
		s.Redraw()
	case OpPrint:
		return s.Print(w)
	case OpKeys:
		_, err := fmt.Fprintln(w, s.Keys())
		return err
	default:
		return errors.Wrapf(ErrUnknownCommand, "op %d", c.Op)
	}
	return nil
}

// SaveSVG writes the scene to the file at path.
func (s *Session) SaveSVG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create svg")
	}
	if err = s.WriteSVG(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "cannot write %s", path)
	}
	return errors.Wrapf(f.Close(), "cannot close %s", path)
}
