package cpu

import "fmt"

// syntax returns the operand-syntax fragment conventionally used for a mode
// in 6502 assembly listings, built around the already-formatted operand.
func (m AddressingMode) syntax(operand string) string {
	switch m {
	case Implied:
		return ""
	case Accumulator:
		return "A"
	case Immediate:
		return "#" + operand
	case ZeroPage:
		return operand
	case ZeroPageX:
		return operand + ",X"
	case ZeroPageY:
		return operand + ",Y"
	case Absolute:
		return operand
	case AbsoluteX:
		return operand + ",X"
	case AbsoluteY:
		return operand + ",Y"
	case Indirect:
		return "(" + operand + ")"
	case IndexedIndirect:
		return "(" + operand + ",X)"
	case IndirectIndexed:
		return "(" + operand + "),Y"
	case Relative:
		return operand
	default:
		return operand
	}
}

// Disassemble decodes exactly one instruction starting at addr, without
// mutating the Cpu or the Byte Store. It returns the formatted mnemonic and
// the total instruction length in bytes (opcode + operand bytes), the same
// length the PC-advance invariant in spec §8 checks against.
//
// Unknown opcodes disassemble as "???" with a length of 1, rather than
// erroring, since a disassembler commonly has to make forward progress
// through data interspersed with code.
func (c *Cpu) Disassemble(addr uint16) (text string, length int) {
	opByte := c.Bus.Read(addr)
	d := opcodeTable[opByte]
	if d.exec == nil {
		return "???", 1
	}

	length = 1 + d.mode.OperandBytes()

	var operand string
	switch d.mode.OperandBytes() {
	case 1:
		operand = fmt.Sprintf("$%02X", c.Bus.Read(addr+1))
	case 2:
		lo := c.Bus.Read(addr + 1)
		hi := c.Bus.Read(addr + 2)
		operand = fmt.Sprintf("$%04X", uint16(hi)<<8|uint16(lo))
	}

	syntax := d.mode.syntax(operand)
	if syntax == "" {
		return d.mnemonic, length
	}
	return d.mnemonic + " " + syntax, length
}
