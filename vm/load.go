package malbolge

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Program is a fully initialized memory image ready to execute.
type Program struct {
	memory [memorySize]cell
}

var (
	ErrSourceTooShort = errors.New("source program is too short")
	ErrSourceTooLong  = errors.New("source program is too long")
)

// InvalidCharError reports a source character whose decoded instruction is
// not one of the eight Malbolge operations. Offset is the byte position in
// the original source, whitespace included.
type InvalidCharError struct {
	Char   byte
	Offset int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character in source program: %q at location: %#x", e.Char, e.Offset)
}

// Load validates source and builds the initial memory image.
//
// Whitespace is skipped without consuming a cell. A printable byte must
// decode, at the cell index it will occupy, to one of the eight operations;
// anything else is rejected immediately. Bytes outside the printable range
// are stored as-is without validation. Whatever the source does not cover
// is filled with the crazy operation over the previous two cells, so the
// same source always produces the same image.
func Load(source []byte) (*Program, error) {
	p := &Program{}
	i := 0

	for offset, b := range source {
		if unicode.IsSpace(rune(b)) {
			continue
		}

		if isPrintable(cell(b)) {
			op := xlat1[(int(b)-33+i)%94]
			if !strings.ContainsRune(validOpcodes, rune(op)) {
				return nil, &InvalidCharError{Char: b, Offset: offset}
			}
		}

		if i >= memorySize {
			return nil, ErrSourceTooLong
		}

		p.memory[i] = cell(b)
		i++
	}

	// The fill below reads the previous two cells
	if i < 2 {
		return nil, ErrSourceTooShort
	}

	for n := i; n < memorySize; n++ {
		p.memory[n] = crazyOp(p.memory[n-1], p.memory[n-2])
	}

	return p, nil
}
