package malbolge

// The two translation tables from the reference interpreter. An instruction
// decodes through xlat1 at (cell - 33 + address) % 94; after it executes, the
// cell rewrites itself through xlat2 at (cell - 33). A single transposed
// entry changes the meaning of every program, so both are reproduced byte
// for byte.
const (
	xlat1 = "+b(29e*j1VMEKLyC})8&m#~W>qxdRp0wkrUo[D7,XTcA\"lI" +
		".v%{gJh4G\\-=O@5`_3i<?Z';FNQuY]szf$!BS/|t:Pn6^Ha"

	xlat2 = "5z]&gqtyfr$(we4{WP)H-Zn,[%\\3dL+Q;>U!pJS72FhOA1C" +
		"B6v^=I_0/8|jsb9m<.TVac`uY*MK'X~xDl}REokN:#?G\"i@"
)

// The eight characters xlat1 can decode to that mean something. 'o' is the
// conventional explicit no-op; at runtime every other decoded character is
// treated the same way as 'o'.
const (
	opJumpData = 'j' // d = mem[d]
	opJumpCode = 'i' // c = mem[d]
	opRotate   = '*' // a = mem[d] = rotate(mem[d])
	opCrazy    = 'p' // a = mem[d] = crazyOp(a, mem[d])
	opOutput   = '<' // write low byte of a
	opInput    = '/' // read byte into a, end of input reads 59048
	opHalt     = 'v'
	opNop      = 'o'
)

// Only these may appear as the decoded form of a printable source byte.
const validOpcodes = "ji*p</vo"

// Cells outside this range are neither decoded nor rewritten; fetching one
// halts the machine.
func isPrintable(c cell) bool {
	return 32 < c && c < 127
}
