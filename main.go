package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	malbolge "malbolge/vm"

	_ "github.com/tliron/commonlog/simple"
)

/*
	Interpreter for Malbolge, the ternary self-modifying language

		- memory is 59049 (3^10) cells, each holding a ten-trit value
		- three registers: accumulator a, code pointer c, data pointer d
		- an instruction decodes from both its value and its address
		- every executed cell rewrites itself through a fixed table

	The vm package owns all of the machine semantics. This wrapper only
	parses arguments, reads the source file into a buffer and renders
	failures on stderr.
*/

func main() {
	verbose := flag.Bool("v", false, "log interpreter diagnostics to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] FILE\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)
	log := commonlog.GetLogger("malbolge")

	path := flag.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Infof("read %d bytes from %s", len(source), path)

	program, err := malbolge.Load(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not initialize memory: %v\n", err)
		os.Exit(1)
	}
	log.Info("memory image initialized")

	vm := malbolge.NewVirtualMachine(program)
	if err := vm.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
