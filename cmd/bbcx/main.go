package main

import (
	"flag"
	"log"
	"math/rand"
	"os"

	"golang.org/x/term"

	"bbcx/driver"
)

func main() {
	var list bool
	var listPath string
	var run bool
	var trace bool
	var tracePath string
	var input string
	var maxSteps int
	var seed int64
	var verbose bool

	flag.BoolVar(&list, "l", false, "Write an assembly listing ('<FILE>.lst')")
	flag.BoolVar(&list, "list", false, "Write an assembly listing ('<FILE>.lst')")
	flag.StringVar(&listPath, "list-path", "", "Folder for listing files, implies -list")
	flag.BoolVar(&run, "r", false, "Run each file after a clean build")
	flag.BoolVar(&run, "run", false, "Run each file after a clean build")
	flag.BoolVar(&trace, "t", false, "Trace execution ('<FILE>.out'), implies -run")
	flag.BoolVar(&trace, "trace", false, "Trace execution ('<FILE>.out'), implies -run")
	flag.StringVar(&tracePath, "trace-path", "", "Folder for trace files, implies -trace")
	flag.StringVar(&input, "i", "-", "Program input")
	flag.IntVar(&maxSteps, "max-steps", 0, "Execution step budget, 0 is unlimited")
	flag.Int64Var(&seed, "seed", 0, "Seed for the RND library routine")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("%v: no source files", os.Args[0])
	}

	if listPath != "" {
		list = true
	}
	if tracePath != "" {
		trace = true
	}
	if trace {
		run = true
	}

	d := &driver.Driver{
		Verbose:   verbose,
		List:      list,
		ListPath:  listPath,
		Run:       run,
		Trace:     trace,
		TracePath: tracePath,
		MaxSteps:  maxSteps,
		Output:    os.Stdout,
	}
	if seed != 0 {
		d.Rand = rand.New(rand.NewSource(seed))
	}

	if err := build(d, input, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

// build wires the console input and builds every file. Raw mode is
// restored before the error reaches log.Fatal.
func build(d *driver.Driver, input string, files []string) error {
	if input == "-" {
		d.Input = os.Stdin
		fd := int(os.Stdin.Fd())
		if d.Run && term.IsTerminal(fd) {
			state, err := term.MakeRaw(fd)
			if err != nil {
				return err
			}
			defer term.Restore(fd, state)
		}
	} else {
		file, err := os.Open(input)
		if err != nil {
			return err
		}
		defer file.Close()
		d.Input = file
	}

	return d.BuildAll(files)
}
