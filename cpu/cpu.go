// Package cpu implements the MOS 6502/6510 instruction interpreter: the
// fetch-decode-execute loop, the addressing-mode machinery, the
// arithmetic/logic kernel, and the per-opcode handlers that together form the
// emulator CORE. The 6510 variant (Commodore 64) is treated as the reference;
// see Variant6502 for the narrower subset without the zero-page I/O port.
package cpu

import (
	"log"

	"go6510/memory"
)

// Variant selects which processor family this Cpu emulates.
type Variant int

const (
	// Variant6502 is the plain NMOS 6502: no zero-page I/O port.
	Variant6502 Variant = iota
	// Variant6510 is the 6502 superset used in the Commodore 64, with a
	// processor I/O port at zero-page $00/$01.
	Variant6510
)

// Quirks selects, per field, whether a particular instruction behaves
// authentically (matching real silicon) or reproduces a documented reference
// deviation (spec §9). The zero value gives authentic ADC/SBC carry, compare
// carry and BRK behavior, and the straightforward (non-wrapping) JMP-indirect
// and zero-page pointer reads; see SPEC_FULL.md's "Open Question decisions"
// for the reasoning behind each default.
type Quirks struct {
	// NoCarryOnAddSub reverts ADC/SBC to leaving C unmodified instead of
	// computing the 9-bit carry-out / borrow-out complement.
	NoCarryOnAddSub bool
	// BitwiseCompareCarry reverts CMP/CPX/CPY's carry update to "bit 7 of
	// the subtraction result" instead of "C <- R >= M".
	BitwiseCompareCarry bool
	// ShortBreak reverts BRK to pushing PC+1 (no padding byte) and leaving
	// the I flag alone, instead of pushing PC+2 and setting I.
	ShortBreak bool
	// IndirectJumpPageWrapBug reproduces the authentic 6502 bug where
	// JMP (ind) re-fetches the pointer's high byte from the start of the
	// same page when the pointer's low byte is $FF, instead of crossing
	// into the next page.
	IndirectJumpPageWrapBug bool
	// ZeroPageWrap makes zero-page pointer reads (IndexedIndirect and
	// IndirectIndexed) wrap within the zero page instead of spilling into
	// page 1. Single-byte zero-page operand reads, such as BIT's, are not
	// affected.
	ZeroPageWrap bool
}

// Cpu is the MOS 6502/6510 instruction interpreter. It owns a register file
// and a halted latch, and holds a reference to a Byte Store it does not own.
// The zero value is not ready for use; construct one with New, and call
// Reset before the first Step.
type Cpu struct {
	Reg     Registers
	Bus     *memory.Bus
	Variant Variant
	Quirks  Quirks

	// Trace, when true, makes Step log a one-line execution trace before
	// dispatching each instruction, mirroring the original implementation's
	// debug-build-only "== Executing $xx at $xxxx ==" trace.
	Trace bool

	port ioPort // only meaningful when Variant == Variant6510

	// Scratch fields set by resolve() for the current instruction and read
	// by the handler it dispatches to.
	addr       uint16
	operand    byte
	fromAccum  bool
	branchTake bool // not written by resolve; branch handlers test the flags directly

	didReset bool
}

// New constructs a Cpu wired to bus. Reset must be called before the first
// Step.
func New(bus *memory.Bus, variant Variant) *Cpu {
	return &Cpu{Bus: bus, Variant: variant}
}

// Reset clears A/X/Y/P to 0, sets SP to $FF, and loads PC from the reset
// vector at $FFFC/$FFFD. It is idempotent: calling it twice in a row leaves
// the Cpu in the same state, since every field it touches is set from a
// fixed value or from the (unchanged) Byte Store, never incrementally.
func (c *Cpu) Reset() {
	c.Reg.A = 0
	c.Reg.X = 0
	c.Reg.Y = 0
	c.Reg.P = 0
	c.Reg.SP = 0xFF
	c.Reg.PC = c.Bus.ResetVector()
	// Halted is deliberately untouched: reset() does not change halted.
	c.didReset = true
}

// HaltResume toggles the halted latch. Reset does not affect it.
func (c *Cpu) HaltResume() {
	c.Reg.Halted = !c.Reg.Halted
}

// Step executes exactly one instruction: it fetches the opcode byte at PC,
// advances PC, dispatches to the opcode's handler (which uses the
// addressing-mode resolver and, where shared, the arithmetic/logic kernel),
// and returns. If the Cpu is halted, Step is a no-op and returns nil.
func (c *Cpu) Step() error {
	if c.Reg.Halted {
		return nil
	}
	if !c.didReset {
		return ErrNotReset
	}

	opByte := c.fetchByte()
	def := opcodeTable[opByte]
	if def.exec == nil {
		return &UnknownOpcodeError{Opcode: opByte, PC: c.Reg.PC - 1}
	}

	if c.Trace {
		log.Printf("== executing $%02X (%s) at $%04X ==", opByte, def.mnemonic, c.Reg.PC-1)
	}

	c.resolve(def.mode)
	def.exec(c)
	return nil
}

// fetchByte reads the byte at PC and advances PC by one.
func (c *Cpu) fetchByte() byte {
	v := c.read(c.Reg.PC)
	c.Reg.PC++
	return v
}

// read dispatches through the 6510 processor port when addressing zero-page
// $00/$01 on that variant; otherwise it reads straight from the Byte Store.
func (c *Cpu) read(addr uint16) byte {
	if c.Variant == Variant6510 {
		if v, ok := c.port.read(addr); ok {
			return v
		}
	}
	return c.Bus.Read(addr)
}

// write mirrors read's processor-port interception.
func (c *Cpu) write(addr uint16, v byte) {
	if c.Variant == Variant6510 {
		if c.port.write(addr, v) {
			return
		}
	}
	c.Bus.Write(addr, v)
}

// push writes v to the stack page at $0100+SP, then decrements SP (wrapping
// modulo 256). The stack grows downward from $01FF.
func (c *Cpu) push(v byte) {
	c.write(0x0100+uint16(c.Reg.SP), v)
	c.Reg.SP--
}

// pop increments SP (wrapping modulo 256), then returns the byte at the
// resulting $0100+SP.
func (c *Cpu) pop() byte {
	c.Reg.SP++
	return c.read(0x0100 + uint16(c.Reg.SP))
}

// pushWord pushes v high byte first, then low byte - the order every
// control-flow instruction that saves a return address or vector uses.
func (c *Cpu) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

// popWord pops a low byte then a high byte and recombines them, the inverse
// of pushWord.
func (c *Cpu) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}

// statusForPush returns P with bits 4 (B) and 5 (unused) forced to 1, the
// value PHP and BRK push onto the stack. breaking distinguishes a software
// BRK (B=1) from a hardware IRQ pushing the same helper (B=0); both still
// force the unused bit.
func (c *Cpu) statusForPush(breaking bool) byte {
	p := c.Reg.P | FlagUnused
	if breaking {
		p |= FlagBreak
	} else {
		p &^= FlagBreak
	}
	return p
}
