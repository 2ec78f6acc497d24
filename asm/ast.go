package asm

import (
	"fmt"
	"strconv"

	"bbcx/machine"
)

// WordKind identifies the source word form carried by a line.
type WordKind int

const (
	WORD_NONE WordKind = iota // blank or comment-only line
	WORD_I
	WORD_F
	WORD_S
	WORD_P
)

// OperandKind identifies the store operand form of a P-word.
type OperandKind int

const (
	OPERAND_NONE    OperandKind = iota
	OPERAND_ADDRESS             // numeric address
	OPERAND_SYMBOL              // identifier address, resolved by the linker
	OPERAND_CONST_I             // signed integer literal
	OPERAND_CONST_F             // signed float literal
	OPERAND_CONST_S             // quoted string literal
)

// Operand is the store operand of a P-word. Address forms may carry an
// indirection marker and an index register; constant forms are placed
// into storage by the linker.
type Operand struct {
	Kind     OperandKind
	Indirect bool
	Index    int
	Symbol   string
	Address  int
	Int      int64
	Float    float64
	Text     string
}

// IsConst reports whether the operand requires a storage slot.
func (op Operand) IsConst() bool {
	switch op.Kind {
	case OPERAND_CONST_I, OPERAND_CONST_F, OPERAND_CONST_S:
		return true
	}
	return false
}

func (op Operand) String() string {
	text := ""
	switch op.Kind {
	case OPERAND_NONE:
		return ""
	case OPERAND_ADDRESS:
		text = strconv.Itoa(op.Address)
	case OPERAND_SYMBOL:
		text = op.Symbol
	case OPERAND_CONST_I:
		return fmt.Sprintf("%+d", op.Int)
	case OPERAND_CONST_F:
		return fmt.Sprintf("%+v", op.Float)
	case OPERAND_CONST_S:
		return fmt.Sprintf("%q", op.Text)
	}
	if op.Indirect {
		text = "*" + text
	}
	if op.Index != 0 {
		text += fmt.Sprintf("[%d]", op.Index)
	}
	return text
}

// Acc is the accumulator digit of a P-word as written, 0 when omitted.
// An omitted accumulator addresses accumulator 1.
type Acc byte

// Value returns the accumulator address the digit denotes.
func (acc Acc) Value() int {
	if acc == 0 {
		return 1
	}
	return int(acc - '0')
}

func (acc Acc) String() string {
	if acc == 0 {
		return ""
	}
	return string(rune(acc))
}

// Pword is a parsed instruction word.
type Pword struct {
	Mnemonic    machine.Function
	Accumulator Acc
	Operand     Operand
}

func (p Pword) String() string {
	return fmt.Sprintf("%-8s%2s %s", p.Mnemonic, p.Accumulator, p.Operand)
}

// SourceWord is the content of a source line: one of the four word
// forms, or nothing for a blank or comment-only line.
type SourceWord struct {
	Kind  WordKind
	Int   int64
	Float float64
	Text  string
	Pword Pword
}

func (w SourceWord) String() string {
	switch w.Kind {
	case WORD_I:
		return fmt.Sprintf("%+d", w.Int)
	case WORD_F:
		return fmt.Sprintf("%+v", w.Float)
	case WORD_S:
		return fmt.Sprintf("%q", w.Text)
	case WORD_P:
		return w.Pword.String()
	}
	return ""
}

// SourceLine is one parsed line of source code. Location is the memory
// address receiving the translated word; when the source gives no
// explicit location the parser assigns the previous location plus one.
type SourceLine struct {
	LineNo   int
	Text     string
	Location int
	Label    string
	Word     SourceWord
	Comment  string
}

func (line SourceLine) String() string {
	label := ""
	if line.Label != "" {
		label = line.Label + ":"
	}
	location := fmt.Sprintf("%04d", line.Location)
	return fmt.Sprintf("%-8s%-10s%-42s%s", location, label, line.Word, line.Comment)
}
