package malbolge

import (
	"bufio"
	"errors"
	"os"
)

// cell = uint32 so that cell is a type alias - no casting needed when
// register values index memory
type cell = uint32

// 3^10 cells; every cell and register value lives in [0, memorySize).
const memorySize = 59049

var (
	errSegmentationFault = errors.New("segmentation fault")
	errIO                = errors.New("input-output error")
)

// VM owns one memory image and the three machine registers for the duration
// of a single run. Nothing here is shared: one program, one image, one
// execution.
type VM struct {
	memory [memorySize]cell

	a cell // accumulator
	c cell // code pointer
	d cell // data pointer

	// Allows vm to read/write to some type of input/output
	stdout *bufio.Writer
	stdin  *bufio.Reader

	// This gets written to whenever program encounters a normal or critical error
	errcode error
}

// NewVirtualMachine takes a loaded program and returns a VM that's ready to
// execute it from the beginning.
func NewVirtualMachine(program *Program) *VM {
	return &VM{
		memory: program.memory,
		stdin:  bufio.NewReader(os.Stdin),
		stdout: bufio.NewWriter(os.Stdout),
	}
}
