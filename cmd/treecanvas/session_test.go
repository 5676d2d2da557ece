package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/g-m-twostay/tree-canvas/Geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newSession(redraw bool) *Session {
	cfg := DefaultConfig()
	cfg.RedrawOnRemove = redraw
	return NewSession(cfg)
}

func TestSession_InsertRemove(t *testing.T) {
	s := newSession(false)
	for _, k := range []int{50, 30, 70, 20, 40} {
		s.Insert(k)
	}
	assert.Equal(t, []int{20, 30, 40, 50, 70}, s.Keys())
	assert.Equal(t, Geometry.Default.Path(Geometry.Left, Geometry.Right, Geometry.Left), s.Insert(35))

	assert.True(t, s.Remove(30))
	assert.False(t, s.Remove(999))
	assert.Equal(t, []int{20, 35, 40, 50, 70}, s.Keys())
	// the picture still shows everything that was inserted.
	assert.Equal(t, 11, s.scene.Len())
	label, _ := s.scene.NodeAt(Geometry.Default.Path(Geometry.Left).Point)
	assert.Equal(t, "30", label)
}

func TestSession_RedrawOnRemove(t *testing.T) {
	s := newSession(true)
	for _, k := range []int{50, 30, 70} {
		s.Insert(k)
	}
	s.Remove(999)
	assert.Equal(t, 5, s.scene.Len())
	s.Remove(30)
	assert.Equal(t, 3, s.scene.Len())
	_, ok := s.scene.NodeAt(Geometry.Default.Path(Geometry.Left).Point)
	assert.False(t, ok)
}

func TestRepl(t *testing.T) {
	s := newSession(false)
	svg := filepath.Join(t.TempDir(), "tree.svg")
	in := strings.NewReader("insert 50\n30\nadd 70\n\nhello\ninsert x\nremove 30\nkeys\nprint\n")
	var out bytes.Buffer
	require.NoError(t, repl(context.Background(), s, in, &out, svg))

	got := out.String()
	assert.Contains(t, got, "unknown command")
	assert.Contains(t, got, "Wrong input")
	assert.Contains(t, got, "[50 70]\n")
	assert.Contains(t, got, "50 (200, 20)\n  70 (245, 65)\n")
	assert.Equal(t, 4, strings.Count(got, "tree.svg"))

	b, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(b), "<circle"))
	assert.Equal(t, 2, strings.Count(string(b), "<line"))
}

func TestRepl_Cancelled(t *testing.T) {
	s := newSession(false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, repl(ctx, s, strings.NewReader("insert 1\n"), io.Discard, ""))
	assert.Empty(t, s.Keys())
}

func TestRepl_CancelledWhileWaiting(t *testing.T) {
	s := newSession(false)
	r, w := io.Pipe()
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- repl(ctx, s, r, io.Discard, "")
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("repl kept waiting for input after cancel")
	}
}
