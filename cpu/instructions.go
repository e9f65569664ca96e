package cpu

// Each handler is dispatched after resolve() has already populated
// c.addr/c.operand/c.fromAccum for the opcode's addressing mode. Handlers
// never touch PC themselves except the explicit control-flow family
// (branches, JMP, JSR, RTS, RTI, BRK): every other instruction's PC advance
// is entirely the resolver's doing.

// --- Load / store -----------------------------------------------------

func (c *Cpu) iLDA() {
	c.Reg.A = c.operand
	c.Reg.updateZN(c.Reg.A)
}

func (c *Cpu) iLDX() {
	c.Reg.X = c.operand
	c.Reg.updateZN(c.Reg.X)
}

func (c *Cpu) iLDY() {
	c.Reg.Y = c.operand
	c.Reg.updateZN(c.Reg.Y)
}

func (c *Cpu) iSTA() { c.write(c.addr, c.Reg.A) }
func (c *Cpu) iSTX() { c.write(c.addr, c.Reg.X) }
func (c *Cpu) iSTY() { c.write(c.addr, c.Reg.Y) }

// --- Register transfers -------------------------------------------------

func (c *Cpu) iTAX() { c.Reg.X = c.Reg.A; c.Reg.updateZN(c.Reg.X) }
func (c *Cpu) iTAY() { c.Reg.Y = c.Reg.A; c.Reg.updateZN(c.Reg.Y) }
func (c *Cpu) iTXA() { c.Reg.A = c.Reg.X; c.Reg.updateZN(c.Reg.A) }
func (c *Cpu) iTYA() { c.Reg.A = c.Reg.Y; c.Reg.updateZN(c.Reg.A) }
func (c *Cpu) iTSX() { c.Reg.X = c.Reg.SP; c.Reg.updateZN(c.Reg.X) }
func (c *Cpu) iTXS() { c.Reg.SP = c.Reg.X } // no flag change

// --- Stack ----------------------------------------------------------------

func (c *Cpu) iPHA() { c.push(c.Reg.A) }
func (c *Cpu) iPHP() { c.push(c.statusForPush(true)) }

func (c *Cpu) iPLA() {
	c.Reg.A = c.pop()
	c.Reg.updateZN(c.Reg.A)
}

func (c *Cpu) iPLP() { c.Reg.P = c.pop() } // PLP replaces P entirely

// --- Logic ------------------------------------------------------------

func (c *Cpu) iAND() { c.Reg.A &= c.operand; c.Reg.updateZN(c.Reg.A) }
func (c *Cpu) iORA() { c.Reg.A |= c.operand; c.Reg.updateZN(c.Reg.A) }
func (c *Cpu) iEOR() { c.Reg.A ^= c.operand; c.Reg.updateZN(c.Reg.A) }

func (c *Cpu) iBIT() {
	m := c.operand
	c.Reg.SetFlagTo(FlagZero, c.Reg.A&m == 0)
	c.Reg.SetFlagTo(FlagNegative, m&0x80 != 0)
	c.Reg.SetFlagTo(FlagOverflow, m&0x40 != 0)
}

// --- Increment / decrement ----------------------------------------------

func (c *Cpu) iINC() {
	v := c.operand + 1
	c.write(c.addr, v)
	c.Reg.updateZN(v)
}

func (c *Cpu) iDEC() {
	v := c.operand - 1
	c.write(c.addr, v)
	c.Reg.updateZN(v)
}

func (c *Cpu) iINX() { c.Reg.X++; c.Reg.updateZN(c.Reg.X) }
func (c *Cpu) iINY() { c.Reg.Y++; c.Reg.updateZN(c.Reg.Y) }
func (c *Cpu) iDEX() { c.Reg.X--; c.Reg.updateZN(c.Reg.X) }
func (c *Cpu) iDEY() { c.Reg.Y--; c.Reg.updateZN(c.Reg.Y) }

// --- Shifts / rotates -----------------------------------------------------

func (c *Cpu) shiftWriteBack(result byte) {
	if c.fromAccum {
		c.Reg.A = result
	} else {
		c.write(c.addr, result)
	}
}

func (c *Cpu) iASL() { c.shiftWriteBack(c.asl(c.operand)) }
func (c *Cpu) iLSR() { c.shiftWriteBack(c.lsr(c.operand)) }
func (c *Cpu) iROL() { c.shiftWriteBack(c.rol(c.operand)) }
func (c *Cpu) iROR() { c.shiftWriteBack(c.ror(c.operand)) }

// --- Arithmetic -------------------------------------------------------

func (c *Cpu) iADC() { c.adc(c.operand) }
func (c *Cpu) iSBC() { c.sbc(c.operand) }

func (c *Cpu) iCMP() { c.compare(c.Reg.A, c.operand) }
func (c *Cpu) iCPX() { c.compare(c.Reg.X, c.operand) }
func (c *Cpu) iCPY() { c.compare(c.Reg.Y, c.operand) }

// --- Branches ---------------------------------------------------------

// branch takes the branch (PC <- the resolver's computed target) iff cond
// holds. The offset's sign extension and the 16-bit wrapping add are both
// already folded into c.addr by resolve(Relative).
func (c *Cpu) branch(cond bool) {
	if cond {
		c.Reg.PC = c.addr
	}
}

func (c *Cpu) iBCC() { c.branch(!c.Reg.Flag(FlagCarry)) }
func (c *Cpu) iBCS() { c.branch(c.Reg.Flag(FlagCarry)) }
func (c *Cpu) iBEQ() { c.branch(c.Reg.Flag(FlagZero)) }
func (c *Cpu) iBNE() { c.branch(!c.Reg.Flag(FlagZero)) }
func (c *Cpu) iBMI() { c.branch(c.Reg.Flag(FlagNegative)) }
func (c *Cpu) iBPL() { c.branch(!c.Reg.Flag(FlagNegative)) }
func (c *Cpu) iBVC() { c.branch(!c.Reg.Flag(FlagOverflow)) }
func (c *Cpu) iBVS() { c.branch(c.Reg.Flag(FlagOverflow)) }

// --- Jumps / subroutines -------------------------------------------------

func (c *Cpu) iJMP() { c.Reg.PC = c.addr }

func (c *Cpu) iJSR() {
	// The return address pushed is the address of the last byte of the JSR
	// instruction (the 2nd operand byte): PC has already advanced past both
	// operand bytes, so that address is PC-1.
	c.pushWord(c.Reg.PC - 1)
	c.Reg.PC = c.addr
}

func (c *Cpu) iRTS() {
	c.Reg.PC = c.popWord() + 1
}

func (c *Cpu) iRTI() {
	c.Reg.P = c.pop()
	c.Reg.PC = c.popWord()
}

func (c *Cpu) iBRK() {
	c.Reg.SetFlag(FlagBreak)
	pc := c.Reg.PC
	if !c.Quirks.ShortBreak {
		pc++ // authentic: return address skips a padding byte (PC+2 total)
		c.Reg.SetFlag(FlagInterrupt)
	}
	c.pushWord(pc)
	c.push(c.statusForPush(true))
	c.Reg.PC = c.Bus.InterruptVector()
}

// --- Flag operations ----------------------------------------------------

func (c *Cpu) iCLC() { c.Reg.ClearFlag(FlagCarry) }
func (c *Cpu) iSEC() { c.Reg.SetFlag(FlagCarry) }
func (c *Cpu) iCLD() { c.Reg.ClearFlag(FlagDecimal) }
func (c *Cpu) iSED() { c.Reg.SetFlag(FlagDecimal) }
func (c *Cpu) iCLI() { c.Reg.ClearFlag(FlagInterrupt) }
func (c *Cpu) iSEI() { c.Reg.SetFlag(FlagInterrupt) }
func (c *Cpu) iCLV() { c.Reg.ClearFlag(FlagOverflow) }

// --- No-op ----------------------------------------------------------------

func (c *Cpu) iNOP() {}
