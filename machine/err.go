package machine

import (
	"errors"

	"bbcx/translate"
)

var f = translate.From

// Errors
var (
	ErrInvalidIWordValue = errors.New(f("integer out of 24-bit range"))
	ErrInvalidFWordValue = errors.New(f("float not representable"))
	ErrInvalidSWordValue = errors.New(f("string not encodable"))
	ErrNotAnInstruction  = errors.New(f("word is not an instruction"))
	ErrInvalidOperand    = errors.New(f("invalid operand"))
	ErrTypeMismatch      = errors.New(f("operation not supported between word types"))
	ErrDivisionByZero    = errors.New(f("division by zero"))
	ErrOutOfMemory       = errors.New(f("no free storage"))
)

type ErrFunction Function

func (err ErrFunction) Error() string {
	return f("function %v", Function(err))
}

func (err ErrFunction) Is(target error) bool {
	_, ok := target.(ErrFunction)
	return ok
}

type ErrCharacter byte

func (err ErrCharacter) Error() string {
	return f("character %q", byte(err))
}

func (err ErrCharacter) Is(target error) bool {
	_, ok := target.(ErrCharacter)
	return ok
}

type ErrCharCode uint32

func (err ErrCharCode) Error() string {
	return f("character code %#o", uint32(err))
}

func (err ErrCharCode) Is(target error) bool {
	_, ok := target.(ErrCharCode)
	return ok
}
