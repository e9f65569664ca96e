package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEveryOpcodeHasOperandLengthConsistentWithSyntax checks the table-wide
// invariant the resolver and the disassembler both depend on: a mode's
// OperandBytes() must agree with how many bytes resolve() actually consumes,
// which we approximate here by re-deriving it from the mnemonic's expected
// byte count for a handful of representative families.
func TestEveryOpcodeHasOperandLengthConsistentWithSyntax(t *testing.T) {
	cases := []struct {
		op   byte
		mode AddressingMode
		n    int
	}{
		{0xEA, Implied, 0},
		{0x0A, Accumulator, 0},
		{0xA9, Immediate, 1},
		{0xA5, ZeroPage, 1},
		{0xB5, ZeroPageX, 1},
		{0xB6, ZeroPageY, 1},
		{0xAD, Absolute, 2},
		{0xBD, AbsoluteX, 2},
		{0xB9, AbsoluteY, 2},
		{0x6C, Indirect, 2},
		{0xA1, IndexedIndirect, 1},
		{0xB1, IndirectIndexed, 1},
		{0x90, Relative, 1},
	}
	for _, tc := range cases {
		def := opcodeTable[tc.op]
		assert.NotNil(t, def.exec, "opcode $%02X should be defined", tc.op)
		assert.Equal(t, tc.mode, def.mode)
		assert.Equal(t, tc.n, def.mode.OperandBytes())
	}
}

// TestOpcodeCountMatchesDocumentedSubset the CORE claims exactly 56 unique
// mnemonics spread over 151 legal opcodes (spec §6); every other byte value
// is left undefined and reported by Step as an UnknownOpcodeError.
func TestOpcodeCountMatchesDocumentedSubset(t *testing.T) {
	defined := 0
	mnemonics := map[string]bool{}
	for _, d := range opcodeTable {
		if d.exec == nil {
			continue
		}
		defined++
		mnemonics[d.mnemonic] = true
	}
	assert.Equal(t, 151, defined)
	assert.Equal(t, 56, len(mnemonics))
}

func TestUndefinedOpcodesReportAsSuch(t *testing.T) {
	for _, b := range []byte{0x02, 0x03, 0x04, 0xFF, 0xCB} {
		assert.Nil(t, opcodeTable[b].exec, "opcode $%02X should be undefined", b)
	}
}

// TestDisassembleMatchesOperandBytesLength the length Disassemble reports
// must equal the addressing mode's OperandBytes() plus one for the opcode
// byte itself, the same invariant Step's PC-advance relies on.
func TestDisassembleMatchesOperandBytesLength(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x1000, 0xAD) // LDA absolute
	bus.Write(0x1001, 0x34)
	bus.Write(0x1002, 0x12)
	resetTo(c, bus, 0x1000)

	text, length := c.Disassemble(0x1000)
	assert.Equal(t, "LDA $1234", text)
	assert.Equal(t, 3, length)
}

func TestDisassembleUnknownOpcode(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x1000, 0x02)
	resetTo(c, bus, 0x1000)

	text, length := c.Disassemble(0x1000)
	assert.Equal(t, "???", text)
	assert.Equal(t, 1, length)
}
