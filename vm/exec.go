package malbolge

import (
	"fmt"
	"io"
)

// Run executes the program until it halts. A nil return is a normal halt:
// either the stop operation or the code pointer landing on a cell outside
// the printable range.
//
// A program whose self-mutation rewrites the executing cell out of table
// range crashes the reference interpreter; here the fault is recovered and
// reported as an error instead.
func (vm *VM) Run() (err error) {
	defer func() {
		if r := recover(); r != nil && vm.errcode == nil {
			vm.errcode = errSegmentationFault
		}
		err = vm.errcode
	}()

	vm.execCycles()
	return vm.errcode
}

// Instruction fetch, decode+execute.
//
// This is a tight loop. The whole machine is three registers, one switch and
// two table lookups per cycle, so the opcode logic stays embedded in the
// switch rather than split into per-opcode functions.
func (vm *VM) execCycles() {
	for isPrintable(vm.memory[vm.c]) {
		op := xlat1[(vm.memory[vm.c]-33+vm.c)%94]

		switch op {
		case opJumpData:
			vm.d = vm.memory[vm.d]
		case opJumpCode:
			vm.c = vm.memory[vm.d]
		case opRotate:
			vm.a = rotateTrits(vm.memory[vm.d])
			vm.memory[vm.d] = vm.a
		case opCrazy:
			vm.a = crazyOp(vm.a, vm.memory[vm.d])
			vm.memory[vm.d] = vm.a
		case opOutput:
			vm.stdout.WriteByte(byte(vm.a))
			if err := vm.stdout.Flush(); err != nil {
				vm.errcode = fmt.Errorf("%w: %v", errIO, err)
				return
			}
		case opInput:
			b, err := vm.stdin.ReadByte()
			switch {
			case err == nil:
				vm.a = cell(b)
			case err == io.EOF:
				// end of input is a value, not a failure
				vm.a = memorySize - 1
			default:
				vm.errcode = fmt.Errorf("%w: %v", errIO, err)
				return
			}
		case opHalt:
			// halts before the cell rewrites itself
			return
		default:
			// everything else, opNop included, only goes through the
			// rewrite below
		}

		// The executed cell rewrites itself. After jump-C this applies to
		// the jump target, exactly as the reference interpreter does.
		vm.memory[vm.c] = cell(xlat2[vm.memory[vm.c]-33])
		vm.c = (vm.c + 1) % memorySize
		vm.d = (vm.d + 1) % memorySize
	}
}
