package cpu

// opcodeDef pairs an addressing mode with the handler method it drives. The
// dispatcher is the 256-entry function table spec §9 names as an
// alternative to a tagged (op, mode) enum; illegal opcodes leave exec nil,
// which Step reports as UnknownOpcodeError.
type opcodeDef struct {
	mnemonic string
	mode     AddressingMode
	exec     func(*Cpu)
}

var opcodeTable [256]opcodeDef

func def(b byte, mnemonic string, mode AddressingMode, exec func(*Cpu)) {
	opcodeTable[b] = opcodeDef{mnemonic: mnemonic, mode: mode, exec: exec}
}

func init() {
	// Control / flags
	def(0xEA, "NOP", Implied, (*Cpu).iNOP)
	def(0x00, "BRK", Implied, (*Cpu).iBRK)
	def(0x40, "RTI", Implied, (*Cpu).iRTI)
	def(0x20, "JSR", Absolute, (*Cpu).iJSR)
	def(0x60, "RTS", Implied, (*Cpu).iRTS)
	def(0x18, "CLC", Implied, (*Cpu).iCLC)
	def(0x38, "SEC", Implied, (*Cpu).iSEC)
	def(0xD8, "CLD", Implied, (*Cpu).iCLD)
	def(0xF8, "SED", Implied, (*Cpu).iSED)
	def(0x58, "CLI", Implied, (*Cpu).iCLI)
	def(0x78, "SEI", Implied, (*Cpu).iSEI)
	def(0xB8, "CLV", Implied, (*Cpu).iCLV)

	// Register moves / inc-dec
	def(0xAA, "TAX", Implied, (*Cpu).iTAX)
	def(0xA8, "TAY", Implied, (*Cpu).iTAY)
	def(0xBA, "TSX", Implied, (*Cpu).iTSX)
	def(0x8A, "TXA", Implied, (*Cpu).iTXA)
	def(0x9A, "TXS", Implied, (*Cpu).iTXS)
	def(0x98, "TYA", Implied, (*Cpu).iTYA)
	def(0xE8, "INX", Implied, (*Cpu).iINX)
	def(0xC8, "INY", Implied, (*Cpu).iINY)
	def(0xCA, "DEX", Implied, (*Cpu).iDEX)
	def(0x88, "DEY", Implied, (*Cpu).iDEY)
	def(0x48, "PHA", Implied, (*Cpu).iPHA)
	def(0x08, "PHP", Implied, (*Cpu).iPHP)
	def(0x68, "PLA", Implied, (*Cpu).iPLA)
	def(0x28, "PLP", Implied, (*Cpu).iPLP)

	// LDA
	def(0xA9, "LDA", Immediate, (*Cpu).iLDA)
	def(0xA5, "LDA", ZeroPage, (*Cpu).iLDA)
	def(0xB5, "LDA", ZeroPageX, (*Cpu).iLDA)
	def(0xAD, "LDA", Absolute, (*Cpu).iLDA)
	def(0xBD, "LDA", AbsoluteX, (*Cpu).iLDA)
	def(0xB9, "LDA", AbsoluteY, (*Cpu).iLDA)
	def(0xA1, "LDA", IndexedIndirect, (*Cpu).iLDA)
	def(0xB1, "LDA", IndirectIndexed, (*Cpu).iLDA)

	// LDX
	def(0xA2, "LDX", Immediate, (*Cpu).iLDX)
	def(0xA6, "LDX", ZeroPage, (*Cpu).iLDX)
	def(0xB6, "LDX", ZeroPageY, (*Cpu).iLDX)
	def(0xAE, "LDX", Absolute, (*Cpu).iLDX)
	def(0xBE, "LDX", AbsoluteY, (*Cpu).iLDX)

	// LDY
	def(0xA0, "LDY", Immediate, (*Cpu).iLDY)
	def(0xA4, "LDY", ZeroPage, (*Cpu).iLDY)
	def(0xB4, "LDY", ZeroPageX, (*Cpu).iLDY)
	def(0xAC, "LDY", Absolute, (*Cpu).iLDY)
	def(0xBC, "LDY", AbsoluteX, (*Cpu).iLDY)

	// STA
	def(0x85, "STA", ZeroPage, (*Cpu).iSTA)
	def(0x95, "STA", ZeroPageX, (*Cpu).iSTA)
	def(0x8D, "STA", Absolute, (*Cpu).iSTA)
	def(0x9D, "STA", AbsoluteX, (*Cpu).iSTA)
	def(0x99, "STA", AbsoluteY, (*Cpu).iSTA)
	def(0x81, "STA", IndexedIndirect, (*Cpu).iSTA)
	def(0x91, "STA", IndirectIndexed, (*Cpu).iSTA)

	// STX / STY
	def(0x86, "STX", ZeroPage, (*Cpu).iSTX)
	def(0x96, "STX", ZeroPageY, (*Cpu).iSTX)
	def(0x8E, "STX", Absolute, (*Cpu).iSTX)
	def(0x84, "STY", ZeroPage, (*Cpu).iSTY)
	def(0x94, "STY", ZeroPageX, (*Cpu).iSTY)
	def(0x8C, "STY", Absolute, (*Cpu).iSTY)

	// INC / DEC
	def(0xE6, "INC", ZeroPage, (*Cpu).iINC)
	def(0xF6, "INC", ZeroPageX, (*Cpu).iINC)
	def(0xEE, "INC", Absolute, (*Cpu).iINC)
	def(0xFE, "INC", AbsoluteX, (*Cpu).iINC)
	def(0xC6, "DEC", ZeroPage, (*Cpu).iDEC)
	def(0xD6, "DEC", ZeroPageX, (*Cpu).iDEC)
	def(0xCE, "DEC", Absolute, (*Cpu).iDEC)
	def(0xDE, "DEC", AbsoluteX, (*Cpu).iDEC)

	// ADC
	def(0x69, "ADC", Immediate, (*Cpu).iADC)
	def(0x65, "ADC", ZeroPage, (*Cpu).iADC)
	def(0x75, "ADC", ZeroPageX, (*Cpu).iADC)
	def(0x6D, "ADC", Absolute, (*Cpu).iADC)
	def(0x7D, "ADC", AbsoluteX, (*Cpu).iADC)
	def(0x79, "ADC", AbsoluteY, (*Cpu).iADC)
	def(0x61, "ADC", IndexedIndirect, (*Cpu).iADC)
	def(0x71, "ADC", IndirectIndexed, (*Cpu).iADC)

	// SBC
	def(0xE9, "SBC", Immediate, (*Cpu).iSBC)
	def(0xE5, "SBC", ZeroPage, (*Cpu).iSBC)
	def(0xF5, "SBC", ZeroPageX, (*Cpu).iSBC)
	def(0xED, "SBC", Absolute, (*Cpu).iSBC)
	def(0xFD, "SBC", AbsoluteX, (*Cpu).iSBC)
	def(0xF9, "SBC", AbsoluteY, (*Cpu).iSBC)
	def(0xE1, "SBC", IndexedIndirect, (*Cpu).iSBC)
	def(0xF1, "SBC", IndirectIndexed, (*Cpu).iSBC)

	// AND
	def(0x29, "AND", Immediate, (*Cpu).iAND)
	def(0x25, "AND", ZeroPage, (*Cpu).iAND)
	def(0x35, "AND", ZeroPageX, (*Cpu).iAND)
	def(0x2D, "AND", Absolute, (*Cpu).iAND)
	def(0x3D, "AND", AbsoluteX, (*Cpu).iAND)
	def(0x39, "AND", AbsoluteY, (*Cpu).iAND)
	def(0x21, "AND", IndexedIndirect, (*Cpu).iAND)
	def(0x31, "AND", IndirectIndexed, (*Cpu).iAND)

	// ORA
	def(0x09, "ORA", Immediate, (*Cpu).iORA)
	def(0x05, "ORA", ZeroPage, (*Cpu).iORA)
	def(0x15, "ORA", ZeroPageX, (*Cpu).iORA)
	def(0x0D, "ORA", Absolute, (*Cpu).iORA)
	def(0x1D, "ORA", AbsoluteX, (*Cpu).iORA)
	def(0x19, "ORA", AbsoluteY, (*Cpu).iORA)
	def(0x01, "ORA", IndexedIndirect, (*Cpu).iORA)
	def(0x11, "ORA", IndirectIndexed, (*Cpu).iORA)

	// EOR
	def(0x49, "EOR", Immediate, (*Cpu).iEOR)
	def(0x45, "EOR", ZeroPage, (*Cpu).iEOR)
	def(0x55, "EOR", ZeroPageX, (*Cpu).iEOR)
	def(0x4D, "EOR", Absolute, (*Cpu).iEOR)
	def(0x5D, "EOR", AbsoluteX, (*Cpu).iEOR)
	def(0x59, "EOR", AbsoluteY, (*Cpu).iEOR)
	def(0x41, "EOR", IndexedIndirect, (*Cpu).iEOR)
	def(0x51, "EOR", IndirectIndexed, (*Cpu).iEOR)

	// BIT
	def(0x24, "BIT", ZeroPage, (*Cpu).iBIT)
	def(0x2C, "BIT", Absolute, (*Cpu).iBIT)

	// ASL / LSR / ROL / ROR
	def(0x0A, "ASL", Accumulator, (*Cpu).iASL)
	def(0x06, "ASL", ZeroPage, (*Cpu).iASL)
	def(0x16, "ASL", ZeroPageX, (*Cpu).iASL)
	def(0x0E, "ASL", Absolute, (*Cpu).iASL)
	def(0x1E, "ASL", AbsoluteX, (*Cpu).iASL)

	def(0x4A, "LSR", Accumulator, (*Cpu).iLSR)
	def(0x46, "LSR", ZeroPage, (*Cpu).iLSR)
	def(0x56, "LSR", ZeroPageX, (*Cpu).iLSR)
	def(0x4E, "LSR", Absolute, (*Cpu).iLSR)
	def(0x5E, "LSR", AbsoluteX, (*Cpu).iLSR)

	def(0x2A, "ROL", Accumulator, (*Cpu).iROL)
	def(0x26, "ROL", ZeroPage, (*Cpu).iROL)
	def(0x36, "ROL", ZeroPageX, (*Cpu).iROL)
	def(0x2E, "ROL", Absolute, (*Cpu).iROL)
	def(0x3E, "ROL", AbsoluteX, (*Cpu).iROL)

	def(0x6A, "ROR", Accumulator, (*Cpu).iROR)
	def(0x66, "ROR", ZeroPage, (*Cpu).iROR)
	def(0x76, "ROR", ZeroPageX, (*Cpu).iROR)
	def(0x6E, "ROR", Absolute, (*Cpu).iROR)
	def(0x7E, "ROR", AbsoluteX, (*Cpu).iROR)

	// CMP / CPX / CPY
	def(0xC9, "CMP", Immediate, (*Cpu).iCMP)
	def(0xC5, "CMP", ZeroPage, (*Cpu).iCMP)
	def(0xD5, "CMP", ZeroPageX, (*Cpu).iCMP)
	def(0xCD, "CMP", Absolute, (*Cpu).iCMP)
	def(0xDD, "CMP", AbsoluteX, (*Cpu).iCMP)
	def(0xD9, "CMP", AbsoluteY, (*Cpu).iCMP)
	def(0xC1, "CMP", IndexedIndirect, (*Cpu).iCMP)
	def(0xD1, "CMP", IndirectIndexed, (*Cpu).iCMP)

	def(0xE0, "CPX", Immediate, (*Cpu).iCPX)
	def(0xE4, "CPX", ZeroPage, (*Cpu).iCPX)
	def(0xEC, "CPX", Absolute, (*Cpu).iCPX)

	def(0xC0, "CPY", Immediate, (*Cpu).iCPY)
	def(0xC4, "CPY", ZeroPage, (*Cpu).iCPY)
	def(0xCC, "CPY", Absolute, (*Cpu).iCPY)

	// JMP
	def(0x4C, "JMP", Absolute, (*Cpu).iJMP)
	def(0x6C, "JMP", Indirect, (*Cpu).iJMP)

	// Branches
	def(0x10, "BPL", Relative, (*Cpu).iBPL)
	def(0x30, "BMI", Relative, (*Cpu).iBMI)
	def(0x50, "BVC", Relative, (*Cpu).iBVC)
	def(0x70, "BVS", Relative, (*Cpu).iBVS)
	def(0x90, "BCC", Relative, (*Cpu).iBCC)
	def(0xB0, "BCS", Relative, (*Cpu).iBCS)
	def(0xD0, "BNE", Relative, (*Cpu).iBNE)
	def(0xF0, "BEQ", Relative, (*Cpu).iBEQ)
}
