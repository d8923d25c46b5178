package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatParts(t *testing.T) {
	assert := assert.New(t)

	register := map[string]int64{"a": 3, "b": -12}

	table := [](struct {
		parts []MsgPart
		text  string
	}){
		{[]MsgPart{{Text: "(5+1)/2 = ", Literal: true}, {Reg: "a"}}, "(5+1)/2 = 3"},
		{[]MsgPart{{Reg: "a"}, {Reg: "b"}}, "3-12"},
		{[]MsgPart{{Text: "  spaced  ", Literal: true}}, "  spaced  "},
		{[]MsgPart{{Text: "", Literal: true}}, ""},
	}

	for _, entry := range table {
		text, err := formatParts(entry.parts, register)
		assert.NoError(err)
		assert.Equal(entry.text, text)
	}

	_, err := formatParts([]MsgPart{{Reg: "zz"}}, register)
	assert.True(errors.Is(err, ErrRegisterUnset("zz")))
}

func TestParseJoinMode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word string
		mode JoinMode
	}){
		{"concat", JOIN_CONCAT},
		{"last", JOIN_LAST},
		{"lines", JOIN_LINES},
	}

	for _, entry := range table {
		mode, err := ParseJoinMode(entry.word)
		assert.NoError(err)
		assert.Equal(entry.mode, mode)
		assert.Equal(entry.word, mode.String())
	}

	_, err := ParseJoinMode("bogus")
	assert.True(errors.Is(err, ErrJoinInvalid))
}

func TestMachine_Output(t *testing.T) {
	assert := assert.New(t)

	m, err := doRun(t, []string{
		"mov a, 1",
		"msg 'one'",
		"msg 'two'",
		"msg 'a=', a",
		"end",
	})
	assert.NoError(err)

	assert.Equal("onetwoa=1", m.Output(JOIN_CONCAT))
	assert.Equal("a=1", m.Output(JOIN_LAST))
	assert.Equal("one\ntwo\na=1", m.Output(JOIN_LINES))
}

func TestMachine_Output_Empty(t *testing.T) {
	assert := assert.New(t)

	m, err := doRun(t, []string{"end"})
	assert.NoError(err)

	assert.Equal("", m.Output(JOIN_CONCAT))
	assert.Equal("", m.Output(JOIN_LAST))
	assert.Equal("", m.Output(JOIN_LINES))
}
