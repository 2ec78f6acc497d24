package asm

import (
	"errors"
	"log"
	"slices"
)

// Assembler validates parsed source lines and builds an Assembly.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembled code map.
}

// Assemble builds the code map and symbol table. Lines without a
// source word contribute their label but occupy no location. Duplicate
// locations, duplicate labels and unresolved operand symbols fail the
// assembly; every offender is collected before reporting.
func (asm *Assembler) Assemble(lines []SourceLine) (assembly *Assembly, err error) {
	code := make(map[int]SourceLine, len(lines))
	symbols := make(map[string]int)

	locationCount := map[int]int{}
	labelCount := map[string]int{}
	for _, line := range lines {
		if line.Label != "" {
			labelCount[line.Label] += 1
			symbols[line.Label] = line.Location
		}
		if line.Word.Kind == WORD_NONE {
			continue
		}
		locationCount[line.Location] += 1
		code[line.Location] = line
	}

	var locations []int
	for location, count := range locationCount {
		if count > 1 {
			locations = append(locations, location)
		}
	}
	var labels []string
	for label, count := range labelCount {
		if count > 1 {
			labels = append(labels, label)
		}
	}

	assembly = &Assembly{code: code, symbols: symbols}

	var errs []error
	if len(locations) > 0 || len(labels) > 0 {
		slices.Sort(locations)
		slices.Sort(labels)
		errs = append(errs, &ErrDuplicatedSymbols{Locations: locations, Labels: labels})
	}
	if missing := assembly.undefinedSymbols(); len(missing) > 0 {
		errs = append(errs, ErrUndefinedSymbols(missing))
	}
	if len(errs) > 0 {
		assembly = nil
		err = errors.Join(errs...)
		return
	}

	if asm.Verbose {
		for location, line := range assembly.Lines() {
			log.Printf("%04d: %v\n", location, line.Word)
		}
	}
	return
}
