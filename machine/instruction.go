package machine

import (
	"errors"
	"fmt"
	"strconv"
)

// P-word field masks.
const (
	FUNCTION_MASK       = 0o77000000
	ACCUMULATOR_MASK    = 0o00700000
	INDEX_REGISTER_MASK = 0o00070000
	INDIRECT_MASK       = 0o00004000
	PAGE_MASK           = 0o00002000
	ADDRESS_MASK        = 0o00001777

	functionShift      = 18
	accumulatorShift   = 15
	indexRegisterShift = 12
	pageShift          = 10
)

// Function selects the operation a P-word performs. The codes up to
// EXTRA pack into the 6-bit function field; the codes from SQRT on name
// library routines, which the linker folds into EXTRA.
//
//go:generate go tool stringer -linecomment -type=Function
type Function int

const (
	FN_NIL   Function = iota // NIL
	FN_OR                    // OR
	FN_NEQV                  // NEQV
	FN_AND                   // AND
	FN_ADD                   // ADD
	FN_SUBT                  // SUBT
	FN_MULT                  // MULT
	FN_DVD                   // DVD
	FN_TAKE                  // TAKE
	FN_TSTR                  // TSTR
	FN_TNEG                  // TNEG
	FN_TNOT                  // TNOT
	FN_TTYP                  // TTYP
	FN_TTYZ                  // TTYZ
	FN_TTTT                  // TTTT
	FN_TOUT                  // TOUT
	FN_SKIP                  // SKIP
	FN_SKAE                  // SKAE
	FN_SKAN                  // SKAN
	FN_SKET                  // SKET
	FN_SKAL                  // SKAL
	FN_SKAG                  // SKAG
	FN_SKED                  // SKED
	FN_SKEI                  // SKEI
	FN_SHL                   // SHL
	FN_ROT                   // ROT
	FN_DSHL                  // DSHL
	FN_DROT                  // DROT
	FN_POWR                  // POWR
	FN_DMULT                 // DMULT
	FN_DIV                   // DIV
	FN_DDIV                  // DDIV
	FN_NILX                  // NILX
	FN_ORX                   // ORX
	FN_NEQVX                 // NEQVX
	FN_ANDX                  // ANDX
	FN_ADDX                  // ADDX
	FN_SUBTX                 // SUBTX
	FN_MULTX                 // MULTX
	FN_DVDX                  // DVDX
	FN_PUT                   // PUT
	FN_PSQU                  // PSQU
	FN_PNEG                  // PNEG
	FN_PNOT                  // PNOT
	FN_PTYP                  // PTYP
	FN_PTYZ                  // PTYZ
	FN_PFFP                  // PFFP
	FN_PIN                   // PIN
	FN_JUMP                  // JUMP
	FN_JEZ                   // JEZ
	FN_JNZ                   // JNZ
	FN_JAT                   // JAT
	FN_JLZ                   // JLZ
	FN_JGZ                   // JGZ
	FN_JZD                   // JZD
	FN_JZI                   // JZI
	FN_DECR                  // DECR
	FN_INCR                  // INCR
	FN_MOCKP                 // MOCKP
	FN_MOCKS                 // MOCKS
	FN_DBYTE                 // DBYTE
	FN_UNUSED                // UNUSED
	FN_EXEC                  // EXEC
	FN_EXTRA                 // EXTRA
	FN_SQRT                  // SQRT
	FN_LN                    // LN
	FN_EXP                   // EXP
	FN_READ                  // READ
	FN_PRINT                 // PRINT
	FN_SIN                   // SIN
	FN_COS                   // COS
	FN_TAN                   // TAN
	FN_ATN                   // ATN
	FN_STOP                  // STOP
	FN_LINE                  // LINE
	FN_INT                   // INT
	FN_FRAC                  // FRAC
	FN_FLOAT                 // FLOAT
	FN_CAPTN                 // CAPTN
	FN_PAGE                  // PAGE
	FN_RND                   // RND
	FN_ABS                   // ABS
)

// Function code bounds: FUNCTION_COUNT codes fit the field, and the
// library routine numbers run 1..LIBRARY_COUNT.
const (
	FUNCTION_COUNT = int(FN_EXTRA) + 1
	LIBRARY_COUNT  = int(FN_ABS - FN_EXTRA)
)

// Instruction is the decoded form of a P-word.
type Instruction struct {
	Function      Function
	Accumulator   int
	IndexRegister int
	Indirect      bool
	Page          int
	Address       int
}

// Pack encodes the instruction fields into a P-tagged word. Fields are
// masked to their widths.
func (inst Instruction) Pack() Word {
	bits := uint32(inst.Function) << functionShift & FUNCTION_MASK
	bits |= uint32(inst.Accumulator) << accumulatorShift & ACCUMULATOR_MASK
	bits |= uint32(inst.IndexRegister) << indexRegisterShift & INDEX_REGISTER_MASK
	if inst.Indirect {
		bits |= INDIRECT_MASK
	}
	bits |= uint32(inst.Page) << pageShift & PAGE_MASK
	bits |= uint32(inst.Address) & ADDRESS_MASK
	return Word{Tag: TAG_P, Bits: bits}
}

// Instruction decodes the bits as a packed instruction, whatever the
// tag says. The one unassigned function code is rejected.
func (w Word) Instruction() (inst Instruction, err error) {
	fn := Function((w.Bits & FUNCTION_MASK) >> functionShift)
	if fn == FN_UNUSED {
		err = errors.Join(ErrNotAnInstruction, ErrFunction(fn))
		return
	}
	inst = Instruction{
		Function:      fn,
		Accumulator:   int((w.Bits & ACCUMULATOR_MASK) >> accumulatorShift),
		IndexRegister: int((w.Bits & INDEX_REGISTER_MASK) >> indexRegisterShift),
		Indirect:      w.Bits&INDIRECT_MASK != 0,
		Page:          int((w.Bits & PAGE_MASK) >> pageShift),
		Address:       int(w.Bits & ADDRESS_MASK),
	}
	return
}

// String prints the instruction roughly as written, naming the library
// routine behind an EXTRA.
func (inst Instruction) String() string {
	if inst.Function == FN_EXTRA && inst.Address >= 1 && inst.Address <= LIBRARY_COUNT {
		return fmt.Sprintf("%v %d", FN_EXTRA+Function(inst.Address), inst.Accumulator)
	}
	text := fmt.Sprintf("%v %d ", inst.Function, inst.Accumulator)
	if inst.Indirect {
		text += "*"
	}
	text += strconv.Itoa(inst.Address)
	if inst.IndexRegister != 0 {
		text += fmt.Sprintf("[%d]", inst.IndexRegister)
	}
	return text
}
