package asm

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is an instruction operation type.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_MOV   = Op(0)  // mov
	OP_INC   = Op(1)  // inc
	OP_DEC   = Op(2)  // dec
	OP_ADD   = Op(3)  // add
	OP_SUB   = Op(4)  // sub
	OP_MUL   = Op(5)  // mul
	OP_DIV   = Op(6)  // div
	OP_JMP   = Op(7)  // jmp
	OP_CMP   = Op(8)  // cmp
	OP_JNE   = Op(9)  // jne
	OP_JE    = Op(10) // je
	OP_JGE   = Op(11) // jge
	OP_JG    = Op(12) // jg
	OP_JLE   = Op(13) // jle
	OP_JL    = Op(14) // jl
	OP_CALL  = Op(15) // call
	OP_RET   = Op(16) // ret
	OP_MSG   = Op(17) // msg
	OP_END   = Op(18) // end
	OP_LABEL = Op(19) // label
)

// Operand is an instruction source argument, either a register name
// or an immediate value.
type Operand struct {
	Reg   string // Register name, when Imm is unset.
	Value int64  // Immediate value, when Imm is set.
	Imm   bool
}

// MakeImm makes an immediate operand.
func MakeImm(value int64) Operand {
	return Operand{Value: value, Imm: true}
}

// MakeReg makes a register operand.
func MakeReg(name string) Operand {
	return Operand{Reg: name}
}

func (src Operand) String() string {
	if src.Imm {
		return strconv.FormatInt(src.Value, 10)
	}

	return src.Reg
}

// MsgPart is a single msg argument, a quoted literal or a register name.
type MsgPart struct {
	Text    string // Literal text, when Literal is set.
	Reg     string // Register name, otherwise.
	Literal bool
}

func (part MsgPart) String() string {
	if part.Literal {
		return "'" + part.Text + "'"
	}

	return part.Reg
}

// Inst represents a single parsed instruction with its source location.
type Inst struct {
	Op     Op
	Dst    string    // Destination register of mov and arithmetic ops.
	Src    Operand   // Source operand; left comparison operand of cmp.
	Src2   Operand   // Right comparison operand of cmp.
	Target string    // Branch target of jumps and call; name of a label.
	Parts  []MsgPart // Arguments of msg, in source order.
	LineNo int       // Source line number.
	Text   string    // Source text, comment stripped.
}

// String returns the canonical assembly representation of the instruction.
func (inst Inst) String() (out string) {
	switch inst.Op {
	case OP_LABEL:
		out = inst.Target + ":"
	case OP_MOV, OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		out = fmt.Sprintf("%v %v, %v", inst.Op, inst.Dst, inst.Src)
	case OP_INC, OP_DEC:
		out = fmt.Sprintf("%v %v", inst.Op, inst.Dst)
	case OP_CMP:
		out = fmt.Sprintf("%v %v, %v", inst.Op, inst.Src, inst.Src2)
	case OP_JMP, OP_JNE, OP_JE, OP_JGE, OP_JG, OP_JLE, OP_JL, OP_CALL:
		out = fmt.Sprintf("%v %v", inst.Op, inst.Target)
	case OP_MSG:
		parts := make([]string, len(inst.Parts))
		for n, part := range inst.Parts {
			parts[n] = part.String()
		}
		out = fmt.Sprintf("%v %v", inst.Op, strings.Join(parts, ", "))
	default:
		out = inst.Op.String()
	}

	return
}
