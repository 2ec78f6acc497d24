package asm

import (
	"log"

	"bbcx/machine"
)

// Linker folds an Assembly into a memory image.
type Linker struct {
	Verbose bool // If set, verbosely logs each word as it is stored.
}

// Link encodes every assembled line into a fresh memory image. Each
// constant operand gets a storage slot of its own, allocated from the
// top of memory down, and the owning instruction's address field
// points at the slot. Identical constants do not share slots.
func (l *Linker) Link(assembly *Assembly) (memory *machine.Memory, err error) {
	memory = &machine.Memory{}
	for location, line := range assembly.Lines() {
		if !memory.Valid(location) {
			err = &ErrLink{LineNo: line.LineNo, Location: location, Err: ErrLocationRange}
			return
		}
		var w machine.Word
		w, err = l.encode(assembly, memory, line)
		if err != nil {
			err = &ErrLink{LineNo: line.LineNo, Location: location, Err: err}
			return
		}
		if l.Verbose {
			log.Printf("%04d: %v\n", location, w)
		}
		memory.Set(location, w)
	}
	return
}

func (l *Linker) encode(assembly *Assembly, memory *machine.Memory, line SourceLine) (w machine.Word, err error) {
	switch line.Word.Kind {
	case WORD_I:
		w, err = machine.NewIWord(line.Word.Int)
	case WORD_F:
		w, err = machine.NewFWord(line.Word.Float)
	case WORD_S:
		w, err = machine.NewSWord(line.Word.Text)
	case WORD_P:
		w, err = l.encodePword(assembly, memory, line.Word.Pword)
	}
	return
}

func (l *Linker) encodePword(assembly *Assembly, memory *machine.Memory, pword Pword) (w machine.Word, err error) {
	address, err := l.operandAddress(assembly, memory, pword.Operand)
	if err != nil {
		return
	}

	if pword.Mnemonic > machine.FN_EXTRA {
		// A library call encodes as EXTRA: the operand names the
		// accumulator to operate on and the address field carries
		// the routine number.
		if address > 7 {
			err = ErrLibraryOperand
			return
		}
		w = machine.Instruction{
			Function:    machine.FN_EXTRA,
			Accumulator: address,
			Address:     int(pword.Mnemonic - machine.FN_EXTRA),
		}.Pack()
		return
	}

	w = machine.Instruction{
		Function:      pword.Mnemonic,
		Accumulator:   pword.Accumulator.Value(),
		IndexRegister: pword.Operand.Index,
		Indirect:      pword.Operand.Indirect,
		Address:       address,
	}.Pack()
	return
}

// operandAddress resolves an operand to the address the instruction
// will carry: a literal's freshly allocated slot, a symbol's location,
// a numeric address as written, or zero when there is no operand.
func (l *Linker) operandAddress(assembly *Assembly, memory *machine.Memory, operand Operand) (address int, err error) {
	switch operand.Kind {
	case OPERAND_NONE:
		return
	case OPERAND_ADDRESS:
		address = operand.Address
	case OPERAND_SYMBOL:
		var ok bool
		address, ok = assembly.Location(operand.Symbol)
		if !ok {
			err = ErrUndefinedSymbols{operand.Symbol}
			return
		}
	case OPERAND_CONST_I, OPERAND_CONST_F, OPERAND_CONST_S:
		var w machine.Word
		w, err = constWord(operand)
		if err != nil {
			return
		}
		address, err = memory.NextStorage()
		if err != nil {
			return
		}
		memory.Set(address, w)
	}
	if !memory.Valid(address) {
		err = machine.ErrInvalidOperand
	}
	return
}

func constWord(operand Operand) (w machine.Word, err error) {
	switch operand.Kind {
	case OPERAND_CONST_I:
		return machine.NewIWord(operand.Int)
	case OPERAND_CONST_F:
		return machine.NewFWord(operand.Float)
	default:
		return machine.NewSWord(operand.Text)
	}
}
