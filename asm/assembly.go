package asm

import (
	"iter"
	"maps"
	"slices"
)

// Assembly is the assembler's output before linking: a code map from
// location to source line and a symbol table from label to location.
// An Assembly is immutable once built.
type Assembly struct {
	code    map[int]SourceLine
	symbols map[string]int
}

// Lines yields the code bearing source lines sorted by location.
func (a *Assembly) Lines() iter.Seq2[int, SourceLine] {
	return func(yield func(int, SourceLine) bool) {
		for _, location := range slices.Sorted(maps.Keys(a.code)) {
			if !yield(location, a.code[location]) {
				return
			}
		}
	}
}

// Symbols yields the symbol table sorted by label.
func (a *Assembly) Symbols() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, label := range slices.Sorted(maps.Keys(a.symbols)) {
			if !yield(label, a.symbols[label]) {
				return
			}
		}
	}
}

// LineAt returns the source line assembled at a location.
func (a *Assembly) LineAt(location int) (line SourceLine, ok bool) {
	line, ok = a.code[location]
	return
}

// Location resolves a label to its location.
func (a *Assembly) Location(label string) (location int, ok bool) {
	location, ok = a.symbols[label]
	return
}

// EntryPoint returns the smallest location holding an instruction
// word, or zero when the program has none.
func (a *Assembly) EntryPoint() int {
	for location, line := range a.Lines() {
		if line.Word.Kind == WORD_P {
			return location
		}
	}
	return 0
}

// undefinedSymbols lists the operand identifiers missing from the
// symbol table, sorted and deduplicated.
func (a *Assembly) undefinedSymbols() (missing []string) {
	seen := map[string]bool{}
	for _, line := range a.Lines() {
		if line.Word.Kind != WORD_P {
			continue
		}
		operand := line.Word.Pword.Operand
		if operand.Kind != OPERAND_SYMBOL || seen[operand.Symbol] {
			continue
		}
		seen[operand.Symbol] = true
		if _, ok := a.symbols[operand.Symbol]; !ok {
			missing = append(missing, operand.Symbol)
		}
	}
	slices.Sort(missing)
	return
}
