package asm

import (
	"fmt"
	"log"
	"maps"
	"slices"
)

// Flags is the latched result of the most recent cmp. It persists
// until the next cmp; nothing else invalidates it.
type Flags int

//go:generate go tool stringer -linecomment -type=Flags
const (
	FLAGS_NONE    = Flags(0) // none
	FLAGS_LESS    = Flags(1) // less
	FLAGS_EQUAL   = Flags(2) // equal
	FLAGS_GREATER = Flags(3) // greater
)

// State is the machine execution state.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_ENDED   = State(1) // ended
	STATE_OVERRUN = State(2) // overrun
)

// Machine executes a parsed Program one instruction per Step. All
// run state is owned by the machine; a fresh machine per run needs
// no coordination with concurrent runs.
type Machine struct {
	Verbose bool // If set, verbosely logs each executed instruction.

	prog     *Program
	ip       int
	register map[string]int64
	flags    Flags
	stack    Stack
	messages []string
	state    State
	steps    int
}

// NewMachine creates a machine for a program, ready to run from index 0.
func NewMachine(prog *Program) (m *Machine) {
	m = &Machine{
		prog:     prog,
		register: make(map[string]int64, 16),
	}

	return
}

// Ip returns the current instruction index.
func (m *Machine) Ip() int {
	return m.ip
}

// Steps returns the number of instructions executed.
func (m *Machine) Steps() int {
	return m.steps
}

// State returns the machine execution state.
func (m *Machine) State() State {
	return m.state
}

// Completed reports whether the program executed end.
func (m *Machine) Completed() bool {
	return m.state == STATE_ENDED
}

// Flags returns the latched comparison flags.
func (m *Machine) Flags() Flags {
	return m.flags
}

// Reg returns the value of a register; ok is false when the register
// was never written.
func (m *Machine) Reg(name string) (value int64, ok bool) {
	value, ok = m.register[name]
	return
}

// Registers returns a copy of the register bank.
func (m *Machine) Registers() map[string]int64 {
	return maps.Clone(m.register)
}

// Messages returns a copy of the accumulated output, one entry per
// executed msg, in order.
func (m *Machine) Messages() []string {
	return slices.Clone(m.messages)
}

// Snapshot is a read-only copy of the machine state at one step.
type Snapshot struct {
	Ip        int
	Steps     int
	State     State
	Flags     Flags
	Registers map[string]int64
	Stack     []int
	Messages  []string
}

// Snapshot returns a deep copy of the current machine state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Ip:        m.ip,
		Steps:     m.steps,
		State:     m.state,
		Flags:     m.flags,
		Registers: maps.Clone(m.register),
		Stack:     slices.Clone(m.stack.Data),
		Messages:  slices.Clone(m.messages),
	}
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("% 6s: %v\n", "ip", m.ip)
	text += fmt.Sprintf("% 6s: %v\n", "state", m.state)
	text += fmt.Sprintf("% 6s: %v\n", "flags", m.flags)
	text += fmt.Sprintf("% 6s: %v\n", "steps", m.steps)

	for _, name := range slices.Sorted(maps.Keys(m.register)) {
		text += fmt.Sprintf("% 6s: %v\n", name, m.register[name])
	}

	strval := "----"
	if !m.stack.Empty() {
		strval = ""
		for n, index := range m.stack.Data {
			if n > 0 {
				strval += " "
			}
			strval += fmt.Sprintf("%v", index)
		}
	}
	text += fmt.Sprintf("% 6s: %v\n", "stack", strval)

	return
}

// eval returns the value of a source operand. Reading a register
// that was never written is fatal.
func (m *Machine) eval(src Operand) (value int64, err error) {
	if src.Imm {
		value = src.Value
		return
	}

	value, ok := m.register[src.Reg]
	if !ok {
		err = ErrRegisterUnset(src.Reg)
	}

	return
}

// taken reports whether a conditional jump fires for the current flags.
func (m *Machine) taken(op Op) bool {
	switch op {
	case OP_JNE:
		return m.flags != FLAGS_EQUAL
	case OP_JE:
		return m.flags == FLAGS_EQUAL
	case OP_JGE:
		return m.flags != FLAGS_LESS
	case OP_JG:
		return m.flags == FLAGS_GREATER
	case OP_JLE:
		return m.flags != FLAGS_GREATER
	default: // OP_JL
		return m.flags == FLAGS_LESS
	}
}

// Step executes a single instruction. done is true once the machine
// has ended normally or run past the final instruction. On error the
// instruction index is left at the faulting instruction.
func (m *Machine) Step() (done bool, err error) {
	if m.state != STATE_RUNNING {
		done = true
		return
	}
	if m.ip >= m.prog.Len() {
		m.state = STATE_OVERRUN
		done = true
		return
	}

	inst := m.prog.At(m.ip)

	if m.Verbose {
		log.Printf("%3d: %v", m.ip, inst)
	}

	next := m.ip + 1

	switch inst.Op {
	case OP_MOV:
		var value int64
		value, err = m.eval(inst.Src)
		if err != nil {
			return
		}
		m.register[inst.Dst] = value
	case OP_INC, OP_DEC, OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		value := int64(1)
		if inst.Op != OP_INC && inst.Op != OP_DEC {
			value, err = m.eval(inst.Src)
			if err != nil {
				return
			}
		}
		input, ok := m.register[inst.Dst]
		if !ok {
			err = ErrRegisterUnset(inst.Dst)
			return
		}
		var output int64
		switch inst.Op {
		case OP_INC, OP_ADD:
			output = input + value
		case OP_DEC, OP_SUB:
			output = input - value
		case OP_MUL:
			output = input * value
		case OP_DIV:
			if value == 0 {
				err = ErrDivideByZero
				return
			}
			// Go integer division truncates toward zero.
			output = input / value
		}
		m.register[inst.Dst] = output
	case OP_LABEL:
		// no-op
	case OP_JMP:
		next, err = m.prog.Resolve(inst.Target)
		if err != nil {
			return
		}
	case OP_CMP:
		var a, b int64
		a, err = m.eval(inst.Src)
		if err != nil {
			return
		}
		b, err = m.eval(inst.Src2)
		if err != nil {
			return
		}
		switch {
		case a < b:
			m.flags = FLAGS_LESS
		case a > b:
			m.flags = FLAGS_GREATER
		default:
			m.flags = FLAGS_EQUAL
		}
	case OP_JNE, OP_JE, OP_JGE, OP_JG, OP_JLE, OP_JL:
		if m.flags == FLAGS_NONE {
			err = ErrFlagsUnset
			return
		}
		if m.taken(inst.Op) {
			next, err = m.prog.Resolve(inst.Target)
			if err != nil {
				return
			}
		}
	case OP_CALL:
		var target int
		target, err = m.prog.Resolve(inst.Target)
		if err != nil {
			return
		}
		m.stack.Push(m.ip + 1)
		next = target
	case OP_RET:
		var ok bool
		next, ok = m.stack.Pop()
		if !ok {
			err = ErrStackEmpty
			return
		}
	case OP_MSG:
		var text string
		text, err = formatParts(inst.Parts, m.register)
		if err != nil {
			return
		}
		m.messages = append(m.messages, text)
	case OP_END:
		m.state = STATE_ENDED
		done = true
	}

	m.steps += 1

	if m.state == STATE_RUNNING {
		m.ip = next
		if m.ip >= m.prog.Len() {
			m.state = STATE_OVERRUN
			done = true
		}
	}

	return
}
