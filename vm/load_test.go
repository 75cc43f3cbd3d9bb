package malbolge

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// "QP" is the smallest program this loader accepts: 'Q' decodes to the stop
// operation at cell 0 and 'P' decodes to it again at cell 1.
const minimalProgram = "QP"

func TestLoadRejectsShortSource(t *testing.T) {
	for _, src := range []string{"", "Q", " \n\t ", "Q \n"} {
		_, err := Load([]byte(src))
		assert(t, errors.Is(err, ErrSourceTooShort), "expected too-short error for %q, got %v", src, err)
	}
}

func TestLoadRejectsLongSource(t *testing.T) {
	// Non-printable bytes are stored without validation, which makes an
	// oversized source easy to build
	src := bytes.Repeat([]byte{1}, memorySize+1)
	_, err := Load(src)
	assert(t, errors.Is(err, ErrSourceTooLong), "expected too-long error, got %v", err)
}

func TestLoadRejectsInvalidCharacter(t *testing.T) {
	_, err := Load([]byte("}P"))
	var icerr *InvalidCharError
	assert(t, errors.As(err, &icerr), "expected invalid-character error, got %v", err)
	assert(t, icerr.Char == '}', "wrong character reported: %q", icerr.Char)
	assert(t, icerr.Offset == 0, "wrong offset reported: %d", icerr.Offset)
}

func TestLoadReportsOriginalByteOffset(t *testing.T) {
	// The offset counts bytes of the raw source, not cells: the leading
	// whitespace occupies no cell but still shifts the reported position
	_, err := Load([]byte(" Q}"))
	var icerr *InvalidCharError
	assert(t, errors.As(err, &icerr), "expected invalid-character error, got %v", err)
	assert(t, icerr.Char == '}', "wrong character reported: %q", icerr.Char)
	assert(t, icerr.Offset == 2, "wrong offset reported: %d", icerr.Offset)
	assert(t, strings.Contains(err.Error(), "0x2"), "offset should render in hex: %v", err)
}

func TestLoadSkipsWhitespace(t *testing.T) {
	plain, err := Load([]byte(minimalProgram))
	assert(t, err == nil, "failed to load: %v", err)

	spaced, err := Load([]byte(" Q\n\tP \r\n"))
	assert(t, err == nil, "failed to load: %v", err)

	assert(t, plain.memory == spaced.memory, "whitespace changed the loaded image")
}

func TestLoadStoresUnprintableBytes(t *testing.T) {
	// Bytes outside the printable range skip validation but still occupy
	// a cell
	p, err := Load([]byte("Q\x01O"))
	assert(t, err == nil, "failed to load: %v", err)
	assert(t, p.memory[0] == 'Q', "cell 0 = %d", p.memory[0])
	assert(t, p.memory[1] == 1, "cell 1 = %d", p.memory[1])
	assert(t, p.memory[2] == 'O', "cell 2 = %d", p.memory[2])
}

func TestLoadFillsRemainingMemory(t *testing.T) {
	p, err := Load([]byte(minimalProgram))
	assert(t, err == nil, "failed to load: %v", err)
	assert(t, p.memory[0] == 'Q' && p.memory[1] == 'P', "source prefix not copied")

	for n := 2; n < memorySize; n++ {
		want := crazyOp(p.memory[n-1], p.memory[n-2])
		assert(t, p.memory[n] == want, "fill mismatch at cell %d: %d", n, p.memory[n])
	}
}

func TestLoadDeterministic(t *testing.T) {
	first, err := Load([]byte(minimalProgram))
	assert(t, err == nil, "failed to load: %v", err)
	second, err := Load([]byte(minimalProgram))
	assert(t, err == nil, "failed to load: %v", err)
	assert(t, first.memory == second.memory, "identical source produced different images")
}
