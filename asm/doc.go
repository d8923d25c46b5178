// Package asm implements the parser and machine for the µASM language.
//
// The language is a fixed assembly dialect: named 64-bit integer
// registers created on first write, a latched three-way comparison
// flag, labels with jumps and conditional branches, call/ret over a
// return stack, and a msg instruction that appends rendered text to
// an output buffer. Programs terminate normally through end, or with
// the default (empty) result when execution runs past the final
// instruction.
//
// The parser turns source text into a Program table of instructions
// and label indexes. The Machine executes a Program one instruction
// per Step, stopping at the first fault: unknown labels, reads of
// unwritten registers, division by zero, ret without call, and
// conditional jumps before any cmp are all fatal.
package asm
