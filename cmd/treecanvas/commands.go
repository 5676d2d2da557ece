package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Op byte

const (
	_ Op = iota
	OpInsert
	OpRemove
	OpRedraw
	OpPrint
	OpKeys
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpRedraw:
		return "redraw"
	case OpPrint:
		return "print"
	case OpKeys:
		return "keys"
	}
	return "unknown"
}

// Mutates reports whether the op changes the tree or the picture.
func (o Op) Mutates() bool {
	return o == OpInsert || o == OpRemove || o == OpRedraw
}

type Command struct {
	Op  Op
	Key int
}

// ParseKey parses a key typed by the user. Only base 10 integers are keys,
// surrounding spaces are ignored.
func ParseKey(s string) (int, error) {
	k, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrWrongInput, "%q", s)
	}
	return k, nil
}

var opNames = map[string]Op{
	"insert": OpInsert,
	"add":    OpInsert,
	"remove": OpRemove,
	"delete": OpRemove,
	"redraw": OpRedraw,
	"print":  OpPrint,
	"keys":   OpKeys,
}

// ParseCommand parses one line of input: "insert 5", "remove 5", "redraw", "print", "keys".
// A line holding only a key inserts it.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, errors.Wrap(ErrUnknownCommand, "empty line")
	}
	op, ok := opNames[strings.ToLower(fields[0])]
	if !ok {
		if len(fields) == 1 {
			if k, err := ParseKey(fields[0]); err == nil {
				return Command{OpInsert, k}, nil
			}
		}
		return Command{}, errors.Wrapf(ErrUnknownCommand, "%q", fields[0])
	}
	switch {
	case op == OpInsert || op == OpRemove:
		if len(fields) != 2 {
			return Command{}, errors.Wrapf(ErrWrongInput, "%s takes one key", op)
		}
		k, err := ParseKey(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{op, k}, nil
	case len(fields) != 1:
		return Command{}, errors.Wrapf(ErrWrongInput, "%s takes no arguments", op)
	}
	return Command{Op: op}, nil
}
