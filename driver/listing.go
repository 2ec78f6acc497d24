package driver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bbcx/asm"
)

// Listing accumulates the numbered lines of an assembly listing: a
// title naming the source file, the source echoed line by line with
// failed lines flagged, and the symbol table of a clean assembly.
type Listing struct {
	lines []string
}

// NewListing opens a listing titled with the source file name and a
// timestamp, both uppercased in the house style of the machine's
// original printouts.
func NewListing(name string, now time.Time) *Listing {
	l := &Listing{}
	stamp := now.UTC().Format("Mon 02 Jan 2006 15:04")
	l.Add(strings.ToUpper(fmt.Sprintf("%-14s%-42s %s", "", name, stamp)))
	return l
}

// Add appends text, numbering each of its lines.
func (l *Listing) Add(text string) {
	for _, line := range strings.Split(text, "\n") {
		numbered := fmt.Sprintf("%5d %s", len(l.lines)+1, line)
		l.lines = append(l.lines, strings.TrimRight(numbered, " \t"))
	}
}

// AddParsed echoes the parsed source. A line that failed to parse is
// flagged with a star marker and followed by the reason.
func (l *Listing) AddParsed(parsed []asm.ParsedLine) {
	for _, line := range parsed {
		if line.Err == nil {
			l.Add("        " + line.SourceLine.String())
			continue
		}
		reason := line.Err
		var perr *asm.ErrParse
		if errors.As(line.Err, &perr) {
			reason = perr.Err
		}
		l.Add(" *****  " + line.Text)
		l.Add("         " + reason.Error())
	}
}

// AddSymbols appends the symbol table, labels in order, locations in
// octal.
func (l *Listing) AddSymbols(assembly *asm.Assembly) {
	l.Add("\nSYMBOL TABLE:\n=============\n")
	for label, location := range assembly.Symbols() {
		l.Add(fmt.Sprintf("%-8s%08o", label, location))
	}
}

func (l *Listing) String() string {
	return strings.Join(l.lines, "\n")
}
