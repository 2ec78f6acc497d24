package exec

import (
	"errors"
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"bbcx/machine"
)

// mathRoutines are the one-argument float library routines.
var mathRoutines = map[machine.Function]func(float64) float64{
	machine.FN_SQRT: math.Sqrt,
	machine.FN_LN:   math.Log,
	machine.FN_EXP:  math.Exp,
	machine.FN_SIN:  math.Sin,
	machine.FN_COS:  math.Cos,
	machine.FN_TAN:  math.Tan,
	machine.FN_ATN:  math.Atan,
}

// library dispatches an EXTRA instruction: the address field carries
// the routine number and the accumulator field names the cell the
// routine works on.
func (e *Executor) library(routine, acc int) (err error) {
	fn := machine.FN_EXTRA + machine.Function(routine)
	if routine < 1 || routine > machine.LIBRARY_COUNT {
		return errors.Join(ErrUnassignedFunction, machine.ErrFunction(fn))
	}
	w := e.Memory.At(acc)

	if mathFn, ok := mathRoutines[fn]; ok {
		var value float64
		if value, err = numberValue(w); err != nil {
			return
		}
		var result machine.Word
		if result, err = machine.NewFWord(mathFn(value)); err != nil {
			return
		}
		e.Memory.Set(acc, result)
		return
	}

	switch fn {
	case machine.FN_READ:
		var result machine.Word
		if result, err = e.readNumber(); err == nil {
			e.Memory.Set(acc, result)
		}

	case machine.FN_PRINT:
		err = e.print(w)

	case machine.FN_STOP:
		e.halted = true

	case machine.FN_LINE:
		err = e.Console.WriteByte('\n')

	case machine.FN_INT:
		var value float64
		if value, err = numberValue(w); err != nil {
			return
		}
		var result machine.Word
		if result, err = machine.NewIWord(int64(math.Trunc(value))); err == nil {
			e.Memory.Set(acc, result)
		}

	case machine.FN_FRAC:
		var value float64
		if value, err = numberValue(w); err != nil {
			return
		}
		var result machine.Word
		if result, err = machine.NewFWord(value - math.Trunc(value)); err == nil {
			e.Memory.Set(acc, result)
		}

	case machine.FN_FLOAT:
		var value float64
		if value, err = numberValue(w); err != nil {
			return
		}
		var result machine.Word
		if result, err = machine.NewFWord(value); err == nil {
			e.Memory.Set(acc, result)
		}

	case machine.FN_CAPTN:
		if w.Tag != machine.TAG_S {
			err = machine.ErrTypeMismatch
			return
		}
		var text string
		if text, err = w.Text(); err != nil {
			return
		}
		err = e.Console.WriteString(text)

	case machine.FN_PAGE:
		err = e.Console.WriteByte('\f')

	case machine.FN_RND:
		var result machine.Word
		if result, err = machine.NewFWord(e.random()); err == nil {
			e.Memory.Set(acc, result)
		}

	case machine.FN_ABS:
		var result machine.Word
		switch w.Tag {
		case machine.TAG_I:
			value := w.Int()
			if value < 0 {
				value = -value
			}
			result, err = machine.NewIWord(value)
		case machine.TAG_F:
			result, err = machine.NewFWord(math.Abs(w.Float()))
		default:
			err = machine.ErrTypeMismatch
		}
		if err == nil {
			e.Memory.Set(acc, result)
		}
	}
	return
}

// numberValue reads an I or F word as a float.
func numberValue(w machine.Word) (value float64, err error) {
	switch w.Tag {
	case machine.TAG_I:
		value = float64(w.Int())
	case machine.TAG_F:
		value = w.Float()
	default:
		err = machine.ErrTypeMismatch
	}
	return
}

// readNumber scans the next whitespace-delimited input token and
// encodes it as an I or F word, accepting the source literal forms
// including the @-exponent.
func (e *Executor) readNumber() (w machine.Word, err error) {
	var token strings.Builder
	for {
		var c byte
		c, err = e.Console.ReadByte()
		if errors.Is(err, io.EOF) {
			if token.Len() > 0 {
				err = nil
				break
			}
			err = ErrEndOfInput
			return
		}
		if err != nil {
			return
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			if token.Len() > 0 {
				break
			}
			continue
		}
		token.WriteByte(c)
	}

	text := token.String()
	if value, ierr := strconv.ParseInt(text, 10, 64); ierr == nil {
		return machine.NewIWord(value)
	}
	value, ferr := strconv.ParseFloat(strings.Replace(text, "@", "e", 1), 64)
	if ferr != nil {
		err = errors.Join(ErrNotANumber, ErrToken(text))
		return
	}
	return machine.NewFWord(value)
}

// print renders a word the way the teletype shows values: integers in
// decimal, floats in their shortest decimal form, strings verbatim.
func (e *Executor) print(w machine.Word) (err error) {
	switch w.Tag {
	case machine.TAG_I:
		return e.Console.WriteString(strconv.FormatInt(w.Int(), 10))
	case machine.TAG_F:
		return e.Console.WriteString(strconv.FormatFloat(w.Float(), 'g', -1, 64))
	case machine.TAG_S:
		var text string
		if text, err = w.Text(); err != nil {
			return
		}
		return e.Console.WriteString(text)
	}
	return machine.ErrTypeMismatch
}

// random draws from the executor's source, or the shared one when the
// driver left it unseeded.
func (e *Executor) random() float64 {
	if e.Rand != nil {
		return e.Rand.Float64()
	}
	return rand.Float64()
}
