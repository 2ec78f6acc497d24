// Package driver builds source files end to end: parse, list,
// assemble, link and optionally execute, one file at a time.
package driver

import (
	"bytes"
	"errors"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bbcx/asm"
	"bbcx/exec"
	"bbcx/machine"
)

// Driver holds the build options shared by every file of an
// invocation. The zero value builds without listings and without
// running.
type Driver struct {
	Verbose   bool       // If set, verbosely logs each build stage.
	List      bool       // Write an assembly listing beside each source file.
	ListPath  string     // Directory override for listing files.
	Run       bool       // Execute after a clean build.
	Trace     bool       // Write an execution trace beside each source file.
	TracePath string     // Directory override for trace files.
	MaxSteps  int        // Execution step budget; zero means unlimited.
	Input     io.Reader  // Console input for executed programs.
	Output    io.Writer  // Console output for executed programs.
	Rand      *rand.Rand // Source for the RND library routine.
}

// BuildAll builds every file independently and collects the per-file
// errors.
func (d *Driver) BuildAll(paths []string) error {
	var errs []error
	for _, path := range paths {
		if err := d.Build(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Build runs the pipeline for one source file. The listing is written
// even when the build fails, so the star markers reach the programmer.
func (d *Driver) Build(path string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrFile{Path: path, Err: err}
		}
	}()

	source, err := os.ReadFile(path)
	if err != nil {
		return
	}

	if d.Verbose {
		log.Printf("%s: parsing\n", path)
	}
	parser := &asm.Parser{}
	parsed, perr := parser.Parse(bytes.NewReader(source))

	var assembly *asm.Assembly
	var aerr error
	if perr == nil {
		assembler := &asm.Assembler{}
		assembly, aerr = assembler.Assemble(asm.SourceLines(parsed))
	}

	var lerr error
	if d.List {
		lerr = d.writeListing(path, parsed, assembly)
	}
	if err = errors.Join(perr, aerr); err != nil {
		return
	}
	if err = lerr; err != nil {
		return
	}

	linker := &asm.Linker{}
	memory, err := linker.Link(assembly)
	if err != nil {
		return
	}

	if !d.Run {
		return
	}
	return d.run(path, assembly, memory)
}

func (d *Driver) writeListing(path string, parsed []asm.ParsedLine, assembly *asm.Assembly) error {
	listing := NewListing(path, time.Now())
	listing.AddParsed(parsed)
	if assembly != nil {
		listing.AddSymbols(assembly)
	}
	return os.WriteFile(d.listFile(path), []byte(listing.String()), 0o644)
}

func (d *Driver) run(path string, assembly *asm.Assembly, memory *machine.Memory) error {
	executor := &exec.Executor{
		Verbose:  d.Verbose,
		Memory:   memory,
		Pc:       assembly.EntryPoint(),
		MaxSteps: d.MaxSteps,
		Console:  &exec.Console{Input: d.Input, Output: d.Output},
		Rand:     d.Rand,
	}

	if d.Trace {
		file, err := os.Create(d.traceFile(path))
		if err != nil {
			return err
		}
		defer file.Close()
		executor.Trace = file
	}

	if d.Verbose {
		log.Printf("%s: running from %04d\n", path, executor.Pc)
	}
	return executor.Run()
}

// listFile names the listing written for a source file.
func (d *Driver) listFile(path string) string {
	return sibling(path, d.ListPath, ".lst")
}

// traceFile names the execution trace written for a source file.
func (d *Driver) traceFile(path string) string {
	return sibling(path, d.TracePath, ".out")
}

// sibling swaps the extension of path, rehoming the file when a
// directory override is given.
func sibling(path, dir, ext string) string {
	if dir == "" {
		dir = filepath.Dir(path)
	}
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+ext)
}
