package exec

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"

	"bbcx/machine"
)

// Executor runs a linked memory image one instruction at a time. The
// zero value is inert; give it a Memory and a starting Pc to run a
// program.
type Executor struct {
	Verbose  bool            // If set, verbosely logs each instruction.
	Memory   *machine.Memory // The word store the program runs in.
	Pc       int             // Address of the next instruction.
	Steps    int             // Instructions executed so far.
	MaxSteps int             // Step budget; zero means unlimited.
	Console  *Console        // Program input and output.
	Trace    io.Writer       // Optional per-instruction trace sink.
	Rand     *rand.Rand      // Source for the RND routine.

	halted bool
}

// Run steps the program until it halts or faults.
func (e *Executor) Run() (err error) {
	done := false
	for !done && err == nil {
		done, err = e.Step()
	}
	return
}

// Step fetches, decodes and executes one instruction. The run is done
// when the program counter leaves memory or the word under it is not
// an instruction.
func (e *Executor) Step() (done bool, err error) {
	if e.halted || e.Memory == nil || !e.Memory.Valid(e.Pc) {
		done = true
		return
	}
	w := e.Memory.At(e.Pc)
	if w.Tag != machine.TAG_P {
		done = true
		return
	}
	if e.MaxSteps > 0 && e.Steps >= e.MaxSteps {
		err = &ErrRuntime{Pc: e.Pc, Err: ErrStepLimit}
		return
	}
	e.Steps += 1

	at := e.Pc
	e.Pc += 1

	inst, ierr := w.Instruction()
	if ierr != nil {
		err = &ErrRuntime{Pc: at, Err: ierr}
		return
	}

	if e.Verbose {
		log.Printf("%04d: %v\n", at, inst)
	}
	if e.Trace != nil {
		fmt.Fprintf(e.Trace, "%04d  %v\n", at, inst)
	}

	if xerr := e.execute(at, inst, false); xerr != nil {
		err = &ErrRuntime{Pc: at, Err: xerr}
		return
	}
	done = e.halted
	return
}

// resolve computes the effective address and fetches the operand word:
// an indirect instruction takes the address field of the word it
// points at, and a nonzero index register adds that cell's signed
// integer. The effective address must land inside memory.
func (e *Executor) resolve(inst machine.Instruction) (address int, operand machine.Word, err error) {
	address = inst.Address
	if inst.Indirect {
		if !e.Memory.Valid(address) {
			err = machine.ErrInvalidOperand
			return
		}
		var via machine.Instruction
		if via, err = e.Memory.At(address).Instruction(); err != nil {
			return
		}
		address = via.Address
	}
	if inst.IndexRegister != 0 {
		index := e.Memory.At(inst.IndexRegister)
		if index.Tag != machine.TAG_I {
			err = machine.ErrInvalidOperand
			return
		}
		address += int(index.Int())
	}
	if !e.Memory.Valid(address) {
		err = machine.ErrInvalidOperand
		return
	}
	operand = e.Memory.At(address)
	return
}

func (e *Executor) execute(at int, inst machine.Instruction, nested bool) (err error) {
	address, operand, err := e.resolve(inst)
	if err != nil {
		return
	}

	acc := inst.Accumulator
	accWord := e.Memory.At(acc)

	switch fn := inst.Function; fn {
	case machine.FN_NIL:

	case machine.FN_OR, machine.FN_NEQV, machine.FN_AND,
		machine.FN_ADD, machine.FN_SUBT, machine.FN_MULT, machine.FN_DVD,
		machine.FN_DIV, machine.FN_POWR:
		var result machine.Word
		if result, err = apply(fn, accWord, operand); err == nil {
			e.Memory.Set(acc, result)
		}

	case machine.FN_TAKE:
		e.Memory.Set(acc, operand)

	case machine.FN_TSTR:
		if err = checkPair(acc); err != nil {
			return
		}
		var order int
		if order, err = operand.Compare(intWord(1)); err != nil {
			return
		}
		flag := intWord(0)
		if order < 0 {
			flag = intWord(-1)
		}
		e.Memory.Set(acc, operand)
		e.Memory.Set(acc-1, flag)

	case machine.FN_TNEG:
		var result machine.Word
		if result, err = operand.Neg(); err == nil {
			e.Memory.Set(acc, result)
		}

	case machine.FN_TNOT:
		e.Memory.Set(acc, operand.Not())

	case machine.FN_TTYP:
		var code int64
		if code, err = operand.TypeCode(); err == nil {
			e.Memory.Set(acc, intWord(code))
		}

	case machine.FN_TTYZ:
		e.Memory.Set(acc, operand.WithTag(machine.TAG_I))

	case machine.FN_TOUT:
		var c byte
		if c, err = machine.DecodeChar(operand.Bits & 0o77); err != nil {
			return
		}
		err = e.Console.WriteByte(c)

	case machine.FN_SKIP:
		e.Pc += 1

	case machine.FN_SKAE, machine.FN_SKAN:
		var equal bool
		if equal, err = wordsEqual(accWord, operand); err != nil {
			return
		}
		if equal == (fn == machine.FN_SKAE) {
			e.Pc += 1
		}

	case machine.FN_SKET:
		if accWord.Tag == operand.Tag {
			e.Pc += 1
		}

	case machine.FN_SKAL, machine.FN_SKAG:
		var order int
		if order, err = accWord.Compare(operand); err != nil {
			return
		}
		if order < 0 && fn == machine.FN_SKAL || order > 0 && fn == machine.FN_SKAG {
			e.Pc += 1
		}

	case machine.FN_SKED, machine.FN_SKEI:
		var equal bool
		if equal, err = wordsEqual(accWord, operand); err != nil {
			return
		}
		if equal {
			e.Pc += 1
			return
		}
		var result machine.Word
		if fn == machine.FN_SKED {
			result, err = accWord.Sub(intWord(1))
		} else {
			result, err = accWord.Add(intWord(1))
		}
		if err == nil {
			e.Memory.Set(acc, result)
		}

	case machine.FN_SHL:
		e.Memory.Set(acc, accWord.Shl(operand.Int()))

	case machine.FN_ROT:
		e.Memory.Set(acc, accWord.Rot(operand.Int()))

	case machine.FN_DSHL, machine.FN_DROT:
		if err = checkPair(acc); err != nil {
			return
		}
		high, low := e.Memory.At(acc-1), e.Memory.At(acc)
		if fn == machine.FN_DSHL {
			high, low = machine.Dshl(high, low, operand.Int())
		} else {
			high, low = machine.Drot(high, low, operand.Int())
		}
		e.Memory.Set(acc-1, high)
		e.Memory.Set(acc, low)

	case machine.FN_DMULT:
		if err = checkPair(acc); err != nil {
			return
		}
		var high, low machine.Word
		if high, low, err = machine.Dmult(accWord, operand); err != nil {
			return
		}
		e.Memory.Set(acc-1, high)
		e.Memory.Set(acc, low)

	case machine.FN_DDIV:
		if err = checkPair(acc); err != nil {
			return
		}
		var rem, quot machine.Word
		if rem, quot, err = machine.Ddiv(e.Memory.At(acc-1), accWord, operand); err != nil {
			return
		}
		e.Memory.Set(acc-1, rem)
		e.Memory.Set(acc, quot)

	case machine.FN_NILX, machine.FN_ORX, machine.FN_NEQVX, machine.FN_ANDX,
		machine.FN_ADDX, machine.FN_SUBTX, machine.FN_MULTX, machine.FN_DVDX:
		var result machine.Word
		if result, err = apply(fn, accWord, operand); err != nil {
			return
		}
		if err = e.checkDirect(inst.Address); err != nil {
			return
		}
		e.Memory.Set(acc, e.Memory.At(inst.Address))
		e.Memory.Set(inst.Address, result)

	case machine.FN_PUT:
		if err = e.checkDirect(inst.Address); err != nil {
			return
		}
		e.Memory.Set(inst.Address, accWord)

	case machine.FN_PSQU:
		if err = checkPair(acc); err != nil {
			return
		}
		if err = e.checkDirect(inst.Address); err != nil {
			return
		}
		e.Memory.Set(inst.Address, machine.Squash(e.Memory.At(acc-1), accWord))

	case machine.FN_PNEG:
		if err = e.checkDirect(inst.Address); err != nil {
			return
		}
		var result machine.Word
		if result, err = accWord.Neg(); err == nil {
			e.Memory.Set(inst.Address, result)
		}

	case machine.FN_PNOT:
		if err = e.checkDirect(inst.Address); err != nil {
			return
		}
		e.Memory.Set(inst.Address, accWord.Not())

	case machine.FN_PTYP:
		if err = e.checkDirect(inst.Address); err != nil {
			return
		}
		e.Memory.Set(inst.Address, e.Memory.At(inst.Address).WithTag(accWord.Tag))

	case machine.FN_PTYZ:
		if err = e.checkDirect(inst.Address); err != nil {
			return
		}
		target := e.Memory.At(inst.Address)
		tag := target.Tag
		if tag == machine.TAG_UNDEFINED {
			tag = machine.TAG_I
		}
		e.Memory.Set(inst.Address, machine.Word{Tag: tag, Bits: accWord.Bits})

	case machine.FN_PIN:
		if err = e.checkDirect(inst.Address); err != nil {
			return
		}
		var c byte
		c, err = e.Console.ReadByte()
		if errors.Is(err, io.EOF) {
			err = e.Console.WriteString("DATA*")
			return
		}
		if err != nil {
			return
		}
		if err = e.Console.WriteByte(c); err != nil {
			return
		}
		var w machine.Word
		if w, err = machine.NewSWord(string(c)); err != nil {
			return
		}
		e.Memory.Set(inst.Address, w)

	case machine.FN_JUMP:
		if err = checkPair(acc); err != nil {
			return
		}
		e.Memory.Set(acc-1, intWord(int64(at)))
		e.Pc = address

	case machine.FN_JEZ, machine.FN_JNZ, machine.FN_JLZ, machine.FN_JGZ:
		var order int
		if order, err = accWord.Compare(intWord(0)); err != nil {
			return
		}
		jump := false
		switch fn {
		case machine.FN_JEZ:
			jump = order == 0
		case machine.FN_JNZ:
			jump = order != 0
		case machine.FN_JLZ:
			jump = order < 0
		case machine.FN_JGZ:
			jump = order > 0
		}
		if jump {
			e.Pc = address
		}

	case machine.FN_JZD, machine.FN_JZI:
		var order int
		if order, err = accWord.Compare(intWord(0)); err != nil {
			return
		}
		if order == 0 {
			e.Pc = address
			return
		}
		var result machine.Word
		if fn == machine.FN_JZD {
			result, err = accWord.Sub(intWord(1))
		} else {
			result, err = accWord.Add(intWord(1))
		}
		if err == nil {
			e.Memory.Set(acc, result)
		}

	case machine.FN_DECR, machine.FN_INCR:
		var result machine.Word
		if fn == machine.FN_DECR {
			result, err = operand.Sub(intWord(1))
		} else {
			result, err = operand.Add(intWord(1))
		}
		if err == nil {
			e.Memory.Set(address, result)
		}

	case machine.FN_EXEC:
		if nested {
			err = ErrNestedExec
			return
		}
		var inner machine.Instruction
		if inner, err = operand.Instruction(); err != nil {
			return
		}
		err = e.execute(at, inner, true)

	case machine.FN_EXTRA:
		err = e.library(inst.Address, acc)

	default:
		// TTTT, PFFP, JAT, MOCKP, MOCKS and DBYTE are unassigned.
		// UNUSED never reaches dispatch; decode rejects it.
		err = errors.Join(ErrUnassignedFunction, machine.ErrFunction(fn))
	}
	return
}

// apply performs the accumulator-updating operation shared between the
// plain and exchange instruction forms. NILX passes the accumulator
// through so the exchange family reduces to a pure swap.
func apply(fn machine.Function, acc, operand machine.Word) (machine.Word, error) {
	switch fn {
	case machine.FN_OR, machine.FN_ORX:
		return acc.Or(operand), nil
	case machine.FN_NEQV, machine.FN_NEQVX:
		return acc.Xor(operand), nil
	case machine.FN_AND, machine.FN_ANDX:
		return acc.And(operand), nil
	case machine.FN_ADD, machine.FN_ADDX:
		return acc.Add(operand)
	case machine.FN_SUBT, machine.FN_SUBTX:
		return acc.Sub(operand)
	case machine.FN_MULT, machine.FN_MULTX:
		return acc.Mul(operand)
	case machine.FN_DVD, machine.FN_DVDX, machine.FN_DIV:
		return acc.Div(operand)
	case machine.FN_POWR:
		return acc.Pow(operand)
	case machine.FN_NILX:
		return acc, nil
	}
	return machine.Word{}, errors.Join(ErrUnassignedFunction, machine.ErrFunction(fn))
}

// wordsEqual applies skip equality: two S-words match on their packed
// characters, anything else compares numerically.
func wordsEqual(a, b machine.Word) (equal bool, err error) {
	if a.Tag == machine.TAG_S && b.Tag == machine.TAG_S {
		equal = a.Bits == b.Bits
		return
	}
	var order int
	if order, err = a.Compare(b); err != nil {
		return
	}
	equal = order == 0
	return
}

// checkDirect validates the raw address field used by the store class
// instructions, which bypass operand resolution.
func (e *Executor) checkDirect(address int) (err error) {
	if !e.Memory.Valid(address) {
		err = machine.ErrInvalidOperand
	}
	return
}

// checkPair validates an accumulator used as the low half of a
// double-length pair; accumulator 0 has no partner.
func checkPair(acc int) (err error) {
	if acc < 1 {
		err = machine.ErrInvalidOperand
	}
	return
}

// intWord packs a small integer constant; the values used in dispatch
// always fit.
func intWord(value int64) machine.Word {
	w, _ := machine.NewIWord(value)
	return w
}
