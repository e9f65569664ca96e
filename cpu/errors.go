package cpu

import "fmt"

// UnknownOpcodeError is returned by Step when the byte fetched at PC has no
// defined handler. The CORE has no undocumented-opcode emulation: this is
// fatal to the step, and is propagated to the caller rather than retried.
type UnknownOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode $%02X at $%04X", e.Opcode, e.PC)
}

// ErrNotReset is returned by Step if called before Reset. Authentic 6502
// behavior here is undefined (execution proceeds from PC=0); this CORE
// instead fails fast, per the strict-implementation guidance for malformed
// reset state.
var ErrNotReset = fmt.Errorf("cpu: Step called before Reset")
