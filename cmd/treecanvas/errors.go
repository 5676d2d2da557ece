package main

import "github.com/pkg/errors"

var (
	// ErrWrongInput is returned for keys that aren't base 10 integers.
	ErrWrongInput     = errors.New("Wrong input")
	ErrUnknownCommand = errors.New("unknown command")
	ErrConfigInvalid  = errors.New("invalid config")
)
