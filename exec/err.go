package exec

import (
	"errors"

	"bbcx/translate"
)

var f = translate.From

var (
	ErrUnassignedFunction = errors.New(f("unassigned function"))
	ErrNestedExec         = errors.New(f("EXEC of an EXEC word"))
	ErrStepLimit          = errors.New(f("step limit exceeded"))
	ErrEndOfInput         = errors.New(f("end of input"))
	ErrNotANumber         = errors.New(f("input is not a number"))
)

// ErrRuntime locates a fault at the instruction that raised it.
type ErrRuntime struct {
	Pc  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc %04d %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrToken carries the input token that could not be read as a number.
type ErrToken string

func (err ErrToken) Error() string {
	return f("token %q", string(err))
}

func (err ErrToken) Is(target error) bool {
	_, ok := target.(ErrToken)
	return ok
}
