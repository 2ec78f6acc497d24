package asm

import (
	"errors"
	"strconv"
	"strings"

	"bbcx/translate"
)

var f = translate.From

var (
	ErrParseFailed    = errors.New(f("failed to parse"))
	ErrBadMnemonic    = errors.New(f("unknown mnemonic"))
	ErrBadOperand     = errors.New(f("malformed operand"))
	ErrBadIndex       = errors.New(f("index register out of range"))
	ErrBadNumber      = errors.New(f("malformed number"))
	ErrBadString      = errors.New(f("malformed string"))
	ErrBadSourceWord  = errors.New(f("not a source word"))
	ErrTrailingText   = errors.New(f("unexpected text after source word"))
	ErrLibraryOperand = errors.New(f("library routine operand is not an accumulator"))
	ErrLocationRange  = errors.New(f("location out of range"))
)

// ErrParse reports a source line that failed to parse.
type ErrParse struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrParse) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrParse) Unwrap() error {
	return err.Err
}

// ErrDuplicatedSymbols reports locations and labels defined more than
// once. Locations are sorted ascending and labels lexicographically so
// the message is deterministic.
type ErrDuplicatedSymbols struct {
	Locations []int
	Labels    []string
}

func (err *ErrDuplicatedSymbols) Error() string {
	locations := make([]string, 0, len(err.Locations))
	for _, location := range err.Locations {
		locations = append(locations, strconv.Itoa(location))
	}
	labels := make([]string, 0, len(err.Labels))
	for _, label := range err.Labels {
		labels = append(labels, label+":")
	}
	return f("multiple definitions: locations: %q, labels: %q",
		strings.Join(locations, ", "), strings.Join(labels, ", "))
}

func (err *ErrDuplicatedSymbols) Is(target error) (ok bool) {
	_, ok = target.(*ErrDuplicatedSymbols)
	return
}

// ErrUndefinedSymbols reports operand identifiers that resolve to no
// label, sorted lexicographically.
type ErrUndefinedSymbols []string

func (err ErrUndefinedSymbols) Error() string {
	return f("undefined symbols: %q", strings.Join(err, ", "))
}

func (err ErrUndefinedSymbols) Is(target error) (ok bool) {
	_, ok = target.(ErrUndefinedSymbols)
	return
}

// ErrLink reports a source line the linker could not fold into the
// memory image.
type ErrLink struct {
	LineNo   int
	Location int
	Err      error
}

func (err *ErrLink) Error() string {
	return f("line %d location %04d %v", err.LineNo, err.Location, err.Err)
}

func (err *ErrLink) Unwrap() error {
	return err.Err
}
