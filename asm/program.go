package asm

import (
	"fmt"
	"iter"
)

// Program is an immutable parsed instruction table with its label index.
type Program struct {
	Insts []Inst         // Instructions, addressable by 0-based index.
	Label map[string]int // Map of label names to instruction indexes.
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Insts)
}

// At returns the instruction at an index.
func (prog *Program) At(index int) Inst {
	return prog.Insts[index]
}

// LineNo returns the source line number of the instruction at an
// index, or 0 when the index is out of range.
func (prog *Program) LineNo(index int) int {
	if index < 0 || index >= len(prog.Insts) {
		return 0
	}

	return prog.Insts[index].LineNo
}

// Resolve resolves a label name to the index of the instruction
// following its definition.
func (prog *Program) Resolve(label string) (index int, err error) {
	index, ok := prog.Label[label]
	if !ok {
		err = ErrLabelMissing(label)
	}

	return
}

// All iterates over the instructions by index.
func (prog *Program) All() iter.Seq2[int, Inst] {
	return func(yield func(index int, inst Inst) bool) {
		for n, inst := range prog.Insts {
			if !yield(n, inst) {
				return
			}
		}
	}
}

// Listing returns the canonical text of each instruction, one line
// per table entry, prefixed with its index.
func (prog *Program) Listing() (lines []string) {
	for n, inst := range prog.All() {
		lines = append(lines, fmt.Sprintf("%3d: %v", n, inst))
	}

	return
}
