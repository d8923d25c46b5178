package asm

import (
	"errors"

	"github.com/ezrec/uasm/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrOperandExtra   = errors.New(f("excessive operands"))
	ErrQuoteOpen      = errors.New(f("quote not terminated"))
	ErrLabelInvalid   = errors.New(f("label invalid"))
	ErrLabelDuplicate = errors.New(f("label duplicated"))

	// Machine errors
	ErrDivideByZero = errors.New(f("division by zero"))
	ErrStackEmpty   = errors.New(f("return without call"))
	ErrFlagsUnset   = errors.New(f("conditional jump before cmp"))

	// Formatter errors
	ErrJoinInvalid = errors.New(f("join mode invalid"))
)

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value or register", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseTarget string

func (err ErrParseTarget) Error() string {
	return f("'%v' is not a label name", string(err))
}

type ErrParseLiteral string

func (err ErrParseLiteral) Error() string {
	return f("'%v' is not a quoted literal", string(err))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrRegisterUnset string

func (er ErrRegisterUnset) Error() string {
	return f("register %v read before write", string(er))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
