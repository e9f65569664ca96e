package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// stepModel is the bubbletea model backing Debug: an optional, interactive
// step-through viewer. It is a pure consumer of Cpu's public operations
// (Step, Reset, HaltResume) — the host window/UI and its menu dispatcher
// remain out of scope (spec §1); this is the CORE's own "Debug Printer"
// component (spec §2, item 8), not a replacement for that external layer.
type stepModel struct {
	cpu    *Cpu
	offset uint16 // first page shown in the page table

	prevPC uint16
	err    error
}

// Init satisfies tea.Model. It performs no command; Reset/LoadROM must
// already have been done by the caller before Debug is invoked.
func (m stepModel) Init() tea.Cmd { return nil }

// Update satisfies tea.Model: space/j steps one instruction, r resets, h
// toggles halted, q quits.
func (m stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "j":
		m.prevPC = m.cpu.Reg.PC
		if err := m.cpu.Step(); err != nil {
			m.err = err
			return m, tea.Quit
		}
	case "r":
		m.cpu.Reset()
	case "h":
		m.cpu.HaltResume()
	}
	return m, nil
}

const bytesPerPageRow = 16

// renderPageRow renders one 16-byte row of the Byte Store starting at start,
// bracketing the byte at the current PC.
func (m stepModel) renderPageRow(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := 0; i < bytesPerPageRow; i++ {
		addr := start + uint16(i)
		b := m.cpu.Bus.Read(addr)
		if addr == m.cpu.Reg.PC {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

func (m stepModel) pageTable() string {
	header := "page | "
	for col := 0; col < bytesPerPageRow; col++ {
		header += fmt.Sprintf("  %X  ", col)
	}
	rows := []string{header}

	base := m.offset - (m.offset % bytesPerPageRow)
	for r := 0; r < 6; r++ {
		rows = append(rows, m.renderPageRow(base+uint16(r*bytesPerPageRow)))
	}
	return strings.Join(rows, "\n")
}

func (m stepModel) status() string {
	text, _ := m.cpu.Disassemble(m.cpu.Reg.PC)
	return fmt.Sprintf(`
PC: $%04X (was $%04X)
next: %s
 A: $%02X   X: $%02X   Y: $%02X
SP: $%02X
 P: $%02X  NVUBDIZC=%s
halted: %v
`,
		m.cpu.Reg.PC, m.prevPC, text,
		m.cpu.Reg.A, m.cpu.Reg.X, m.cpu.Reg.Y,
		m.cpu.Reg.SP,
		m.cpu.Reg.P, flagLine(m.cpu.Reg.P),
		m.cpu.Reg.Halted,
	)
}

// View satisfies tea.Model.
func (m stepModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		"space/j: step   r: reset   h: halt/resume   q: quit",
	)
}

// Debug starts an interactive terminal viewer over c, windowed on the page
// containing offset. The caller is responsible for loading a program and
// calling Reset first; Debug only drives the already-public Step/Reset/
// HaltResume operations.
func (c *Cpu) Debug(offset uint16) error {
	m, err := tea.NewProgram(stepModel{cpu: c, offset: offset}).Run()
	if err != nil {
		return err
	}
	if sm, ok := m.(stepModel); ok && sm.err != nil {
		return sm.err
	}
	return nil
}
