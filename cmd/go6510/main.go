// Command go6510 is a batch driver for the CORE: it loads a raw program
// image into the Byte Store, resets the CPU, and either steps it a fixed
// number of times or opens the interactive step viewer. It does not read
// live keystrokes to drive single steps and owns no menu dispatcher, so it
// is not the "host window/UI" or "interactive driver" spec.md's §1 puts out
// of scope for the CORE — it is a thin consumer of the CORE's already-public
// operations, the way a library repo carries a `cmd/` smoke-test front end.
package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"go6510/cpu"
	"go6510/memory"
)

func main() {
	app := &cli.App{
		Name:    "go6510",
		Usage:   "load a 6502/6510 program image and step the CORE",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "path to the raw program image",
			},
			&cli.UintFlag{
				Name:    "base",
				Aliases: []string{"b"},
				Usage:   "load address for the image",
				Value:   0x0600,
			},
			&cli.UintFlag{
				Name:    "steps",
				Aliases: []string{"n"},
				Usage:   "number of instructions to execute before printing state",
				Value:   1,
			},
			&cli.BoolFlag{
				Name:  "sixtyfive-oh-two",
				Usage: "emulate the plain 6502 instead of the 6510 (no processor port)",
			},
			&cli.BoolFlag{
				Name:  "disasm",
				Usage: "print the disassembly of the instruction at PC before each step",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "open the interactive step viewer instead of batch-stepping",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log a one-line execution trace for every instruction",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "go6510:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		return cli.Exit("missing required -rom <path>", 86)
	}

	bus := memory.New()
	base := uint16(c.Uint("base"))
	if err := bus.LoadROMFile(romPath, base); err != nil {
		return err
	}

	variant := cpu.Variant6510
	if c.Bool("sixtyfive-oh-two") {
		variant = cpu.Variant6502
	}

	m := cpu.New(bus, variant)
	m.Trace = c.Bool("trace")
	m.Reset()

	if c.Bool("debug") {
		return m.Debug(base)
	}

	steps := c.Uint("steps")
	for i := uint(0); i < steps; i++ {
		if c.Bool("disasm") {
			text, _ := m.Disassemble(m.Reg.PC)
			fmt.Printf("$%04X: %s\n", m.Reg.PC, text)
		}
		if err := m.Step(); err != nil {
			m.PrintState()
			return err
		}
	}

	m.PrintState()
	return nil
}
