package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Resolve(t *testing.T) {
	assert := assert.New(t)

	prog := doParse(t, []string{
		"jmp fwd", // forward reference, defined below
		"back:",
		"mov a, 1",
		"fwd:",
		"end",
	})

	index, err := prog.Resolve("fwd")
	assert.NoError(err)
	assert.Equal(4, index)

	index, err = prog.Resolve("back")
	assert.NoError(err)
	assert.Equal(2, index)

	_, err = prog.Resolve("nowhere")
	assert.True(errors.Is(err, ErrLabelMissing("nowhere")))
}

func TestProgram_At(t *testing.T) {
	assert := assert.New(t)

	prog := doParse(t, []string{
		"mov a, 1",
		"end",
	})

	assert.Equal(2, prog.Len())
	assert.Equal(OP_MOV, prog.At(0).Op)
	assert.Equal(OP_END, prog.At(1).Op)

	assert.Equal(1, prog.LineNo(0))
	assert.Equal(2, prog.LineNo(1))
	assert.Equal(0, prog.LineNo(2))
	assert.Equal(0, prog.LineNo(-1))
}

func TestProgram_All(t *testing.T) {
	assert := assert.New(t)

	prog := doParse(t, []string{
		"mov a, 1",
		"inc a",
		"end",
	})

	var indexes []int
	var ops []Op
	for n, inst := range prog.All() {
		indexes = append(indexes, n)
		ops = append(ops, inst.Op)
	}
	assert.Equal([]int{0, 1, 2}, indexes)
	assert.Equal([]Op{OP_MOV, OP_INC, OP_END}, ops)

	// Early exit.
	count := 0
	for range prog.All() {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestProgram_Listing(t *testing.T) {
	assert := assert.New(t)

	prog := doParse(t, []string{
		"mov   a,5",
		"msg 'a = ', a    ; trailing comment",
		"lbl:",
		"jmp lbl",
	})

	expected := []string{
		"  0: mov a, 5",
		"  1: msg 'a = ', a",
		"  2: lbl:",
		"  3: jmp lbl",
	}

	assert.Equal(expected, prog.Listing())
}
