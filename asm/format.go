package asm

import (
	"strconv"
	"strings"
)

// JoinMode selects how the accumulated msg output joins into one
// result string.
type JoinMode int

//go:generate go tool stringer -linecomment -type=JoinMode
const (
	JOIN_CONCAT = JoinMode(0) // concat
	JOIN_LAST   = JoinMode(1) // last
	JOIN_LINES  = JoinMode(2) // lines
)

// ParseJoinMode parses a join mode name.
func ParseJoinMode(word string) (mode JoinMode, err error) {
	switch word {
	case "concat":
		mode = JOIN_CONCAT
	case "last":
		mode = JOIN_LAST
	case "lines":
		mode = JOIN_LINES
	default:
		err = ErrJoinInvalid
	}

	return
}

// formatParts renders one msg argument list against the register
// bank. Literal text is copied verbatim; register references render
// as decimal integers. No separator is inserted between parts.
func formatParts(parts []MsgPart, register map[string]int64) (text string, err error) {
	var sb strings.Builder

	for _, part := range parts {
		if part.Literal {
			sb.WriteString(part.Text)
			continue
		}
		value, ok := register[part.Reg]
		if !ok {
			err = ErrRegisterUnset(part.Reg)
			return
		}
		sb.WriteString(strconv.FormatInt(value, 10))
	}

	text = sb.String()
	return
}

// Output joins the accumulated messages according to the mode.
func (m *Machine) Output(mode JoinMode) (out string) {
	switch mode {
	case JOIN_LAST:
		if len(m.messages) > 0 {
			out = m.messages[len(m.messages)-1]
		}
	case JOIN_LINES:
		out = strings.Join(m.messages, "\n")
	default:
		out = strings.Join(m.messages, "")
	}

	return
}
