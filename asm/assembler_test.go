package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bbcx/machine"
)

func assemble(input string) (*Assembly, error) {
	parser := &Parser{}
	parsed, err := parser.Parse(strings.NewReader(input))
	if err != nil {
		return nil, err
	}
	assembler := &Assembler{}
	return assembler.Assemble(SourceLines(parsed))
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"0001            +12",
		"0100    START:  TAKE 1, DATA",
		"0101            ADD 1, +10",
		"0102    LOOP:   JUMP LOOP",
		"0103    DATA:   +34",
	}

	assembly, err := assemble(strings.Join(program, "\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	location, ok := assembly.Location("START")
	assert.True(ok)
	assert.Equal(100, location)
	location, ok = assembly.Location("DATA")
	assert.True(ok)
	assert.Equal(103, location)
	_, ok = assembly.Location("ABSENT")
	assert.False(ok)

	line, ok := assembly.LineAt(101)
	assert.True(ok)
	assert.Equal(machine.FN_ADD, line.Word.Pword.Mnemonic)
	_, ok = assembly.LineAt(50)
	assert.False(ok)

	assert.Equal(100, assembly.EntryPoint())

	locations := []int{}
	for location := range assembly.Lines() {
		locations = append(locations, location)
	}
	assert.Equal([]int{1, 100, 101, 102, 103}, locations)

	labels := []string{}
	for label, location := range assembly.Symbols() {
		labels = append(labels, label)
		expected, _ := assembly.Location(label)
		assert.Equal(expected, location)
	}
	assert.Equal([]string{"DATA", "LOOP", "START"}, labels)
}

func TestAssemblerEntryPoint(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"0001    +1",
		"0002    +2",
		"0010    NIL",
	}

	assembly, err := assemble(strings.Join(program, "\n"))
	assert.NoError(err)
	assert.Equal(10, assembly.EntryPoint())

	assembly, err = assemble("0005 +1")
	assert.NoError(err)
	assert.Equal(0, assembly.EntryPoint())
}

func TestAssemblerDuplicateLocations(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"0002    +22",
		"0001    +11",
		"0002    +33",
		"0001    +44",
	}

	assembly, err := assemble(strings.Join(program, "\n"))
	assert.Nil(assembly)
	assert.ErrorIs(err, &ErrDuplicatedSymbols{})

	var derr *ErrDuplicatedSymbols
	if assert.ErrorAs(err, &derr) {
		assert.Equal([]int{1, 2}, derr.Locations)
		assert.Empty(derr.Labels)
	}
	assert.Contains(err.Error(), `multiple definitions: locations: "1, 2", labels: ""`)
}

func TestAssemblerDuplicateLabels(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"0001    LABEL2: +1",
		"0002    LABEL1: +2",
		"0003    LABEL2: +3",
		"0004    LABEL1: +4",
	}

	assembly, err := assemble(strings.Join(program, "\n"))
	assert.Nil(assembly)

	var derr *ErrDuplicatedSymbols
	if assert.ErrorAs(err, &derr) {
		assert.Empty(derr.Locations)
		assert.Equal([]string{"LABEL1", "LABEL2"}, derr.Labels)
	}
	assert.Contains(err.Error(), `labels: "LABEL1:, LABEL2:"`)
}

func TestAssemblerUndefinedSymbols(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"0001    HERE:   TAKE 1, ZEBRA",
		"0002            ADD 1, APPLE",
		"0003            JUMP HERE",
		"0004            PUT 1, ZEBRA",
	}

	assembly, err := assemble(strings.Join(program, "\n"))
	assert.Nil(assembly)
	assert.ErrorIs(err, ErrUndefinedSymbols{})

	var uerr ErrUndefinedSymbols
	if assert.ErrorAs(err, &uerr) {
		assert.Equal(ErrUndefinedSymbols{"APPLE", "ZEBRA"}, uerr)
	}
}

func TestAssemblerCollectsEveryError(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"0001    TWICE:  +1",
		"0001    TWICE:  +2",
		"0002            JUMP NOWHERE",
	}

	assembly, err := assemble(strings.Join(program, "\n"))
	assert.Nil(assembly)
	assert.ErrorIs(err, &ErrDuplicatedSymbols{})
	assert.ErrorIs(err, ErrUndefinedSymbols{})
}

func TestAssemblerLabelAnchoring(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"; setup",
		"FIRST:",
		"SECOND:",
		"        NIL",
		"        JUMP FIRST",
	}

	assembly, err := assemble(strings.Join(program, "\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	location, ok := assembly.Location("FIRST")
	assert.True(ok)
	assert.Equal(0, location)
	location, ok = assembly.Location("SECOND")
	assert.True(ok)
	assert.Equal(0, location)

	line, ok := assembly.LineAt(0)
	assert.True(ok)
	assert.Equal(machine.FN_NIL, line.Word.Pword.Mnemonic)
}

func TestAssemblerSkipsFailedLines(t *testing.T) {
	assert := assert.New(t)

	parser := &Parser{}
	parsed, err := parser.Parse(strings.NewReader("0001 NIL\n0002 ???\n0003 NIL"))
	assert.Error(err)

	assembler := &Assembler{}
	assembly, err := assembler.Assemble(SourceLines(parsed))
	assert.NoError(err)

	_, ok := assembly.LineAt(1)
	assert.True(ok)
	_, ok = assembly.LineAt(2)
	assert.False(ok)
	_, ok = assembly.LineAt(3)
	assert.True(ok)
}

func TestAssemblerEmbeddedErrorIs(t *testing.T) {
	assert := assert.New(t)

	err := errors.Join(
		&ErrDuplicatedSymbols{Locations: []int{7}},
		ErrUndefinedSymbols{"X"},
	)
	assert.ErrorIs(err, &ErrDuplicatedSymbols{})
	assert.ErrorIs(err, ErrUndefinedSymbols{})
	assert.NotErrorIs(err, ErrParseFailed)
}
