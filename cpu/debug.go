package cpu

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"go6510/mask"
)

// flagLine renders the NV-BDIZC status byte as an 8-character line, one
// marker per bit, matching the bit layout documented in spec §3.
func flagLine(p byte) string {
	return string(mask.Line(p, '1', '0'))
}

// Dump returns a multi-line human-readable rendering of the register file,
// the flag byte, and the opcode at PC. It is the CORE's print_state
// operation (spec §6); PrintState writes the same text to stdout.
func (c *Cpu) Dump() string {
	opByte := c.Bus.Read(c.Reg.PC)
	d := opcodeTable[opByte]
	mnemonic := d.mnemonic
	if d.exec == nil {
		mnemonic = "???"
	}

	return fmt.Sprintf(`== cpu state ==
  A:  $%02X
  X:  $%02X
  Y:  $%02X
  SP: $%02X
  PC: $%04X  (next: $%02X %s)
  P:  $%02X  NVUBDIZC=%s
  halted: %v
`,
		c.Reg.A, c.Reg.X, c.Reg.Y, c.Reg.SP, c.Reg.PC,
		opByte, mnemonic,
		c.Reg.P, flagLine(c.Reg.P),
		c.Reg.Halted,
	)
}

// PrintState writes Dump's text to stdout, followed by a spew dump of the
// decoded opcode at PC — the diagnostic hook named in spec §6/§7. It has no
// effect on CPU state and is never called from Step.
func (c *Cpu) PrintState() {
	fmt.Print(c.Dump())
	opByte := c.Bus.Read(c.Reg.PC)
	fmt.Print(spew.Sdump(opcodeTable[opByte]))
}
