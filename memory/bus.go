// Package memory implements the Byte Store: the flat, 64 kB address space
// shared between the CPU, a ROM loader, and (on a multi-threaded host) any
// other caller that needs to peek at it while the CPU is not mid-step.
package memory

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/semaphore"
)

// Size is the number of addressable bytes: the full 16-bit address range.
const Size = 1 << 16

// ResetVectorLow, ResetVectorHigh hold the reset vector; InterruptVectorLow,
// InterruptVectorHigh hold the IRQ/BRK vector. Both are little-endian words.
const (
	ResetVectorLow      = 0xFFFC
	ResetVectorHigh     = 0xFFFD
	InterruptVectorLow  = 0xFFFE
	InterruptVectorHigh = 0xFFFF
)

// A Bus is a linear 64 kB byte store. The zero value is not ready for use;
// construct one with New. Address arithmetic on the public interface wraps
// modulo 2^16, which is automatic here since addr is already a uint16.
type Bus struct {
	data [Size]byte

	// guard serializes Read/Write/LoadROM so a multi-threaded host can share
	// one Bus across goroutines without external locking. On a
	// single-threaded host this never contends. A weighted semaphore with
	// capacity 1 is used instead of sync.Mutex so the guard composes with
	// context-based cancellation the way the rest of the call graph does;
	// plain stdlib sync.Mutex has no such hook.
	guard *semaphore.Weighted
}

// New returns an empty (all-zero) Bus, ready for use.
func New() *Bus {
	return &Bus{guard: semaphore.NewWeighted(1)}
}

func (b *Bus) lock() {
	// capacity is 1, so this waits while another caller holds the guard;
	// context.Background() is never cancelled, so Acquire cannot fail.
	_ = b.guard.Acquire(context.Background(), 1)
}

func (b *Bus) unlock() {
	b.guard.Release(1)
}

// Read returns the byte at addr. There is no memory-mapped I/O dispatch at
// this layer; a higher layer (see cpu.ioPort for the 6510 zero-page port)
// may interpose before a read reaches here.
func (b *Bus) Read(addr uint16) byte {
	b.lock()
	defer b.unlock()
	return b.data[addr]
}

// Write stores v at addr.
func (b *Bus) Write(addr uint16, v byte) {
	b.lock()
	defer b.unlock()
	b.data[addr] = v
}

// ReadWord returns the little-endian word at addr/addr+1. The high-byte read
// wraps modulo 2^16 (addr=0xFFFF reads its high byte from 0x0000), per the
// Byte Store's modular address-arithmetic invariant.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// ResetVector returns the 16-bit reset vector at $FFFC/$FFFD.
func (b *Bus) ResetVector() uint16 {
	return b.ReadWord(ResetVectorLow)
}

// InterruptVector returns the 16-bit IRQ/BRK vector at $FFFE/$FFFF.
func (b *Bus) InterruptVector() uint16 {
	return b.ReadWord(InterruptVectorLow)
}

// LoadROM copies data into the store starting at base. It is a caller error
// for base+len(data) to exceed the 64 kB address space; LoadROM reports this
// rather than silently truncating or wrapping, since a wrapped ROM load would
// silently corrupt the low addresses of the image.
func (b *Bus) LoadROM(data []byte, base uint16) error {
	if int(base)+len(data) > Size {
		return fmt.Errorf("memory: LoadROM: %d bytes at base $%04X overflow the 64KB address space", len(data), base)
	}
	b.lock()
	defer b.unlock()
	copy(b.data[base:], data)
	return nil
}

// LoadROMFile reads the file at path and loads its raw bytes starting at
// base, via LoadROM. ROM-file-format parsing (headers, bank layout) is out of
// scope here; this is the "raw bytes to the byte store" ingestion the CORE
// expects from an external ROM-loading layer.
func (b *Bus) LoadROMFile(path string, base uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("memory: LoadROMFile: %w", err)
	}
	return b.LoadROM(data, base)
}
