// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Parser is a single pass parser for µASM source text.
type Parser struct {
	Verbose bool // If set, verbosely logs each scanned line.
}

// identRe matches register and label names.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// opMap is a map of opcode names to operations.
var opMap = map[string]Op{
	"mov":  OP_MOV,
	"inc":  OP_INC,
	"dec":  OP_DEC,
	"add":  OP_ADD,
	"sub":  OP_SUB,
	"mul":  OP_MUL,
	"div":  OP_DIV,
	"jmp":  OP_JMP,
	"cmp":  OP_CMP,
	"jne":  OP_JNE,
	"je":   OP_JE,
	"jge":  OP_JGE,
	"jg":   OP_JG,
	"jle":  OP_JLE,
	"jl":   OP_JL,
	"call": OP_CALL,
	"ret":  OP_RET,
	"msg":  OP_MSG,
	"end":  OP_END,
}

// stripComment removes everything from the first unquoted ';' onward.
func stripComment(text string) string {
	quoted := false
	for n, r := range text {
		switch r {
		case '\'':
			quoted = !quoted
		case ';':
			if !quoted {
				return text[:n]
			}
		}
	}

	return text
}

// splitArgs splits a comma separated argument list, keeping quoted
// segments intact. Each argument is trimmed of surrounding whitespace.
func splitArgs(rest string) (args []string, err error) {
	if len(strings.TrimSpace(rest)) == 0 {
		return
	}

	var arg strings.Builder
	quoted := false
	for _, r := range rest {
		switch {
		case r == '\'':
			quoted = !quoted
			arg.WriteRune(r)
		case r == ',' && !quoted:
			args = append(args, strings.TrimSpace(arg.String()))
			arg.Reset()
		default:
			arg.WriteRune(r)
		}
	}
	if quoted {
		err = ErrQuoteOpen
		return
	}
	args = append(args, strings.TrimSpace(arg.String()))

	return
}

// parseRegister parses a destination register name.
func parseRegister(word string) (name string, err error) {
	if !identRe.MatchString(word) {
		err = ErrParseRegister(word)
		return
	}

	name = word
	return
}

// parseTarget parses a jump or call target label name.
func parseTarget(word string) (name string, err error) {
	if !identRe.MatchString(word) {
		err = ErrParseTarget(word)
		return
	}

	name = word
	return
}

// parseOperand parses a source operand, an immediate or a register name.
func parseOperand(word string) (src Operand, err error) {
	value, verr := strconv.ParseInt(word, 10, 64)
	if verr == nil {
		src = MakeImm(value)
		return
	}

	if !identRe.MatchString(word) {
		err = ErrParseValue(word)
		return
	}

	src = MakeReg(word)
	return
}

// parseMsgPart parses a single msg argument, a quoted literal or a
// register name. Numbers are not valid msg arguments.
func parseMsgPart(word string) (part MsgPart, err error) {
	if strings.HasPrefix(word, "'") {
		if len(word) < 2 || !strings.HasSuffix(word[1:], "'") {
			err = ErrParseLiteral(word)
			return
		}
		text := word[1 : len(word)-1]
		if strings.Contains(text, "'") {
			err = ErrParseLiteral(word)
			return
		}
		part = MsgPart{Text: text, Literal: true}
		return
	}

	if !identRe.MatchString(word) {
		err = ErrParseRegister(word)
		return
	}

	part = MsgPart{Reg: word}
	return
}

// parseLine parses a single cleaned, non-empty line into an instruction.
func (p *Parser) parseLine(line string) (inst Inst, err error) {
	// Label definition: ends in ':' with no embedded whitespace.
	if strings.HasSuffix(line, ":") && !strings.ContainsFunc(line, unicode.IsSpace) {
		name := line[:len(line)-1]
		if !identRe.MatchString(name) {
			err = ErrLabelInvalid
			return
		}
		inst = Inst{Op: OP_LABEL, Target: name}
		return
	}

	opcode := line
	rest := ""
	if n := strings.IndexFunc(line, unicode.IsSpace); n >= 0 {
		opcode = line[:n]
		rest = strings.TrimSpace(line[n+1:])
	}

	op, ok := opMap[opcode]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	args, err := splitArgs(rest)
	if err != nil {
		return
	}

	inst = Inst{Op: op}

	// Per-opcode arity.
	var want int
	switch op {
	case OP_MOV, OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_CMP:
		want = 2
	case OP_INC, OP_DEC, OP_JMP, OP_JNE, OP_JE, OP_JGE, OP_JG, OP_JLE, OP_JL, OP_CALL:
		want = 1
	case OP_MSG:
		want = len(args)
		if want == 0 {
			want = 1
		}
	case OP_RET, OP_END:
		want = 0
	}
	if len(args) < want {
		err = ErrOperandMissing
		return
	}
	if len(args) > want {
		err = ErrOperandExtra
		return
	}

	switch op {
	case OP_MOV, OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		inst.Dst, err = parseRegister(args[0])
		if err != nil {
			return
		}
		inst.Src, err = parseOperand(args[1])
	case OP_INC, OP_DEC:
		inst.Dst, err = parseRegister(args[0])
	case OP_CMP:
		inst.Src, err = parseOperand(args[0])
		if err != nil {
			return
		}
		inst.Src2, err = parseOperand(args[1])
	case OP_JMP, OP_JNE, OP_JE, OP_JGE, OP_JG, OP_JLE, OP_JL, OP_CALL:
		inst.Target, err = parseTarget(args[0])
	case OP_MSG:
		inst.Parts = make([]MsgPart, len(args))
		for n, arg := range args {
			inst.Parts[n], err = parseMsgPart(arg)
			if err != nil {
				return
			}
		}
	case OP_RET, OP_END:
		// no operands
	}

	return
}

// Parse parses an input stream into a Program of instructions and
// label indexes. Labels map to the index of the instruction that
// follows their definition.
func (p *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	prog = &Program{
		Label: make(map[string]int, 16),
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(stripComment(text))
		if len(line) == 0 {
			continue
		}

		var inst Inst
		inst, err = p.parseLine(line)
		if err != nil {
			return
		}
		inst.LineNo = lineno
		inst.Text = line

		if inst.Op == OP_LABEL {
			_, ok := prog.Label[inst.Target]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			prog.Label[inst.Target] = len(prog.Insts) + 1
		}

		prog.Insts = append(prog.Insts, inst)
	}
	if serr := scanner.Err(); serr != nil {
		lineno += 1
		line = ""
		err = serr
	}

	return
}
