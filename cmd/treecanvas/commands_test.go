package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	for in, want := range map[string]int{"5": 5, " 42 ": 42, "-7": -7, "0": 0} {
		k, err := ParseKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, k, in)
	}
	for _, in := range []string{"", "abc", "12abc", "1.5", "0x10"} {
		_, err := ParseKey(in)
		assert.True(t, errors.Is(err, ErrWrongInput), in)
	}
}

func TestParseCommand(t *testing.T) {
	tests := map[string]Command{
		"insert 5":  {OpInsert, 5},
		"add 5":     {OpInsert, 5},
		"INSERT -3": {OpInsert, -3},
		"remove 9":  {OpRemove, 9},
		"delete 9":  {OpRemove, 9},
		"redraw":    {Op: OpRedraw},
		"print":     {Op: OpPrint},
		"  keys  ":  {Op: OpKeys},
		"17":        {OpInsert, 17},
	}
	for in, want := range tests {
		c, err := ParseCommand(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, c, in)
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := map[string]error{
		"":             ErrUnknownCommand,
		"grow 5":       ErrUnknownCommand,
		"hello":        ErrUnknownCommand,
		"insert":       ErrWrongInput,
		"insert x":     ErrWrongInput,
		"remove 1 2":   ErrWrongInput,
		"redraw now":   ErrWrongInput,
		"insert 2.5e3": ErrWrongInput,
	}
	for in, want := range tests {
		_, err := ParseCommand(in)
		assert.True(t, errors.Is(err, want), "%q gave %v", in, err)
	}
}

func TestOp(t *testing.T) {
	assert.True(t, OpInsert.Mutates())
	assert.True(t, OpRemove.Mutates())
	assert.True(t, OpRedraw.Mutates())
	assert.False(t, OpPrint.Mutates())
	assert.False(t, OpKeys.Mutates())
	assert.Equal(t, "remove", OpRemove.String())
	assert.Equal(t, "unknown", Op(0).String())
}
