package main

import (
	"bufio"
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

var (
	warn = color.New(color.FgRed)
	note = color.New(color.FgCyan)
)

// repl reads commands from in until it is exhausted or ctx is done. Bad lines
// are reported on out and skipped. After every change the scene is saved to
// svgPath unless it is empty.
// Reading happens on its own goroutine so that ctx is seen while in blocks; that
// goroutine stays parked on in until in returns.
func repl(ctx context.Context, s *Session, in io.Reader, out io.Writer, svgPath string) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()
	for {
		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			return errors.Wrap(<-readErr, "cannot read commands")
		}
		if ctx.Err() != nil {
			return nil
		}
		if len(line) == 0 {
			continue
		}
		c, err := ParseCommand(line)
		if err != nil {
			warn.Fprintln(out, err)
			continue
		}
		if err = s.Apply(c, out); err != nil {
			return err
		}
		if c.Op.Mutates() && svgPath != "" {
			if err = s.SaveSVG(svgPath); err != nil {
				return err
			}
			note.Fprintf(out, "%s %s\n", c.Op, svgPath)
		}
	}
}
