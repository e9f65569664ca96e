package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go6510/memory"
)

func newTestCpu() (*Cpu, *memory.Bus) {
	bus := memory.New()
	c := New(bus, Variant6502)
	return c, bus
}

// resetTo writes the given address as the reset vector and resets the Cpu.
func resetTo(c *Cpu, bus *memory.Bus, addr uint16) {
	bus.Write(memory.ResetVectorLow, byte(addr))
	bus.Write(memory.ResetVectorHigh, byte(addr>>8))
	c.Reset()
}

func TestResetLoadsVectorAndIsIdempotent(t *testing.T) {
	c, bus := newTestCpu()
	resetTo(c, bus, 0x8000)

	assert.Equal(t, uint16(0x8000), c.Reg.PC)
	assert.Equal(t, byte(0xFF), c.Reg.SP)
	assert.Equal(t, byte(0), c.Reg.P)

	c.Reg.A = 0x42 // perturb state the way a ROM would
	c.Reset()
	assert.Equal(t, byte(0), c.Reg.A)
	assert.Equal(t, uint16(0x8000), c.Reg.PC)
	assert.Equal(t, byte(0xFF), c.Reg.SP)
}

// Scenario 1: LDA immediate sets N.
func TestLDAImmediateSetsNegative(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0000, 0xA9)
	bus.Write(0x0001, 0xFA)
	resetTo(c, bus, 0x0000)

	require := assert.New(t)
	require.NoError(c.Step())
	require.Equal(byte(0xFA), c.Reg.A)
	require.Equal(uint16(0x0002), c.Reg.PC)
	require.False(c.Reg.Flag(FlagZero))
	require.True(c.Reg.Flag(FlagNegative))
}

// Scenario 2: DEX underflow.
func TestDEXUnderflow(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0000, 0xCA)
	resetTo(c, bus, 0x0000)
	c.Reg.X = 0x00
	c.Reg.P = 0x00

	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0xFF), c.Reg.X)
	assert.False(t, c.Reg.Flag(FlagZero))
	assert.True(t, c.Reg.Flag(FlagNegative))
}

// Scenario 3: branch forward BCC.
func TestBranchForwardBCC(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0000, 0x90) // BCC
	bus.Write(0x0001, 0x02)
	resetTo(c, bus, 0x0000)
	c.Reg.P = 0x00

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0004), c.Reg.PC)
}

// Scenario 4: branch not taken when condition false.
func TestBranchNotTakenWhenFalse(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0000, 0x90) // BCC
	bus.Write(0x0001, 0x02)
	resetTo(c, bus, 0x0000)
	c.Reg.P = FlagCarry

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0002), c.Reg.PC)
}

// Scenario 5: branch backward BEQ.
func TestBranchBackwardBEQ(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0000, 0xEA) // NOP
	bus.Write(0x0001, 0xEA) // NOP
	bus.Write(0x0002, 0xA9) // LDA #$00
	bus.Write(0x0003, 0x00)
	bus.Write(0x0004, 0xF0) // BEQ -4
	bus.Write(0x0005, 0xFC)
	resetTo(c, bus, 0x0000)

	for i := 0; i < 4; i++ {
		assert.NoError(t, c.Step())
	}
	assert.Equal(t, uint16(0x0002), c.Reg.PC)
	assert.True(t, c.Reg.Flag(FlagZero))
}

// Scenario 6: ROL through carry, accumulator mode.
func TestROLAccumulatorThroughCarry(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0000, 0x2A) // ROL A
	resetTo(c, bus, 0x0000)
	c.Reg.A = 0x00
	c.Reg.P = FlagCarry | FlagZero | FlagNegative

	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x01), c.Reg.A)
	assert.False(t, c.Reg.Flag(FlagCarry))
	assert.False(t, c.Reg.Flag(FlagZero))
	assert.False(t, c.Reg.Flag(FlagNegative))
}

// Scenario 7: ROL memory with bit 7 set.
func TestROLMemoryBit7Set(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0042, 0x80)
	bus.Write(0x0000, 0x26) // ROL zp
	bus.Write(0x0001, 0x42)
	resetTo(c, bus, 0x0000)
	c.Reg.P = FlagNegative

	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x00), bus.Read(0x0042))
	assert.True(t, c.Reg.Flag(FlagCarry))
	assert.True(t, c.Reg.Flag(FlagZero))
	assert.False(t, c.Reg.Flag(FlagNegative))
}

// Scenario 8: JSR/RTS round trip.
func TestJSRRTSRoundTrip(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0000, 0x20) // JSR $0010
	bus.Write(0x0001, 0x10)
	bus.Write(0x0002, 0x00)
	bus.Write(0x0010, 0x60) // RTS
	resetTo(c, bus, 0x0000)

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0010), c.Reg.PC)
	assert.Equal(t, byte(0xFD), c.Reg.SP) // two bytes pushed

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0003), c.Reg.PC)
	assert.Equal(t, byte(0xFF), c.Reg.SP)
}

func TestPushPopRoundTrips(t *testing.T) {
	c, _ := newTestCpu()
	c.didReset = true
	c.Reg.SP = 0xFF

	for _, b := range []byte{0x00, 0x7F, 0x80, 0xFF, 0x42} {
		before := c.Reg.SP
		c.push(b)
		assert.Equal(t, byte(before-1), c.Reg.SP)
		got := c.pop()
		assert.Equal(t, b, got)
		assert.Equal(t, before, c.Reg.SP)
	}
}

func TestStackPointerWrapsAtBoundary(t *testing.T) {
	c, _ := newTestCpu()
	c.didReset = true
	c.Reg.SP = 0x00
	c.push(0xAB) // writes at $0100, SP wraps to $FF
	assert.Equal(t, byte(0xFF), c.Reg.SP)

	c.Reg.SP = 0xFF
	got := c.pop() // SP wraps to $00, reads $0100
	assert.Equal(t, byte(0xAB), got)
	assert.Equal(t, byte(0x00), c.Reg.SP)
}

func TestStepBeforeResetFailsFast(t *testing.T) {
	c, _ := newTestCpu()
	err := c.Step()
	assert.ErrorIs(t, err, ErrNotReset)
}

func TestUnknownOpcodeIsFatalToTheStep(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0000, 0xFF) // not a defined opcode in this table's set
	resetTo(c, bus, 0x0000)

	err := c.Step()
	assert.Error(t, err)
	var unk *UnknownOpcodeError
	assert.ErrorAs(t, err, &unk)
	assert.Equal(t, byte(0xFF), unk.Opcode)
	assert.Equal(t, uint16(0x0000), unk.PC)
}

func TestHaltResumeMakesStepANoOp(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0000, 0xA9)
	bus.Write(0x0001, 0x01)
	resetTo(c, bus, 0x0000)

	c.HaltResume()
	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x00), c.Reg.A) // LDA never executed
	assert.Equal(t, uint16(0x0000), c.Reg.PC)

	c.HaltResume()
	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x01), c.Reg.A)
}

func TestBRKPushesAuthenticReturnAddressAndSetsI(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0000, 0x00) // BRK
	bus.Write(memory.InterruptVectorLow, 0x00)
	bus.Write(memory.InterruptVectorHigh, 0x90)
	resetTo(c, bus, 0x0000)

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x9000), c.Reg.PC)
	assert.True(t, c.Reg.Flag(FlagInterrupt))

	// pushed: P (at SP=$FF-2=$FD area, read back last), lo, hi of PC+2
	p := bus.Read(0x01FD)
	assert.NotZero(t, p&FlagBreak)
	assert.NotZero(t, p&FlagUnused)

	lo := bus.Read(0x01FE)
	hi := bus.Read(0x01FF)
	assert.Equal(t, uint16(0x0002), uint16(hi)<<8|uint16(lo))
}

func TestNMOS6502VariantHasNoProcessorPort(t *testing.T) {
	c, bus := newTestCpu()
	resetTo(c, bus, 0x0000)
	c.write(0x0000, 0x2F)
	assert.Equal(t, byte(0x2F), bus.Read(0x0000))
}

func TestSixtyFiveTenProcessorPortInterceptsZeroPage(t *testing.T) {
	bus := memory.New()
	c := New(bus, Variant6510)
	resetTo(c, bus, 0x0000)

	c.write(0x0000, 0xFF) // DDR: all outputs
	c.write(0x0001, 0x07) // LORAM|HIRAM|CHAREN
	assert.Equal(t, byte(0x07), c.read(0x0001))
	// the underlying Byte Store at $00/$01 is untouched by the port
	assert.Equal(t, byte(0x00), bus.Read(0x0000))
}
