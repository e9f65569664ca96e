package cpu

// adc implements Add with Carry: r = A + v + C. V is set iff the two
// operands share a sign and the result's sign differs (two's-complement
// overflow). C, by default, is the carry-out of the 9-bit addition; with
// Quirks.NoCarryOnAddSub it reproduces the reference's non-update.
func (c *Cpu) adc(v byte) {
	a := c.Reg.A
	carryIn := uint16(0)
	if c.Reg.Flag(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(a) + uint16(v) + carryIn
	result := byte(sum)

	overflow := (a^v)&0x80 == 0 && (a^result)&0x80 != 0

	c.Reg.A = result
	c.Reg.updateZN(result)
	c.Reg.SetFlagTo(FlagOverflow, overflow)
	if !c.Quirks.NoCarryOnAddSub {
		c.Reg.SetFlagTo(FlagCarry, sum > 0xFF)
	}
}

// sbc implements Subtract with Carry. If C=0, r = A - v - 1; else r = A - v.
// V is set iff (A^v)&(A^r)&0x80 != 0. C, by default, is the borrow-out
// complement (set iff no borrow occurred); with Quirks.NoCarryOnAddSub it
// reproduces the reference's non-update.
func (c *Cpu) sbc(v byte) {
	a := c.Reg.A
	borrowIn := uint16(0)
	if !c.Reg.Flag(FlagCarry) {
		borrowIn = 1
	}
	diff := uint16(a) - uint16(v) - borrowIn
	result := byte(diff)

	overflow := (a^v)&(a^result)&0x80 != 0

	c.Reg.A = result
	c.Reg.updateZN(result)
	c.Reg.SetFlagTo(FlagOverflow, overflow)
	if !c.Quirks.NoCarryOnAddSub {
		// diff is computed in 16-bit two's complement; no borrow out iff the
		// subtraction did not wrap below 0, i.e. the top bit of the 16-bit
		// result (beyond the low byte) is clear.
		c.Reg.SetFlagTo(FlagCarry, diff <= 0xFF)
	}
}

// compare computes r - m with wrapping subtraction, updates Z/N from the
// resulting byte, and sets C. By default C is set iff r >= m (authentic);
// with Quirks.BitwiseCompareCarry it reproduces the reference's "bit 7 of
// the subtraction result" update, which is wrong for general operands.
func (c *Cpu) compare(r byte, m byte) {
	result := r - m
	c.Reg.updateZN(result)
	if c.Quirks.BitwiseCompareCarry {
		c.Reg.SetFlagTo(FlagCarry, result&0x80 != 0)
	} else {
		c.Reg.SetFlagTo(FlagCarry, r >= m)
	}
}

// asl shifts op left by one bit. C <- old bit 7.
func (c *Cpu) asl(op byte) byte {
	c.Reg.SetFlagTo(FlagCarry, op&0x80 != 0)
	result := op << 1
	c.Reg.updateZN(result)
	return result
}

// lsr shifts op right by one bit (logical). C <- old bit 0.
func (c *Cpu) lsr(op byte) byte {
	c.Reg.SetFlagTo(FlagCarry, op&0x01 != 0)
	result := op >> 1
	c.Reg.updateZN(result)
	return result
}

// rol rotates op left through carry. new C <- old bit 7; bit 0 <- old C.
func (c *Cpu) rol(op byte) byte {
	oldCarry := c.Reg.Flag(FlagCarry)
	c.Reg.SetFlagTo(FlagCarry, op&0x80 != 0)
	result := op << 1
	if oldCarry {
		result |= 0x01
	}
	c.Reg.updateZN(result)
	return result
}

// ror rotates op right through carry. new C <- old bit 0; bit 7 <- old C.
func (c *Cpu) ror(op byte) byte {
	oldCarry := c.Reg.Flag(FlagCarry)
	c.Reg.SetFlagTo(FlagCarry, op&0x01 != 0)
	result := op >> 1
	if oldCarry {
		result |= 0x80
	}
	c.Reg.updateZN(result)
	return result
}
