// Package mos6502 implements the Ricoh 2A03's 6502-derived CPU core:
// registers, addressing modes, the full official and commonly-emulated
// unofficial instruction set, and interrupt handling.
// https://en.wikipedia.org/wiki/MOS_Technology_6502
package mos6502

import (
	"fmt"
	"strings"
)

// Bus is everything the CPU needs from the rest of the machine: a flat
// 16-bit address space. The concrete CPU-Bus (RAM, PPU registers,
// cartridge mapper, controller ports) lives outside this package so
// the CPU never references the console directly.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// 6502 Interrupt Vectors
// https://en.wikipedia.org/wiki/Interrupts_in_65xx_processors
const (
	INT_IRQ   = 0xFFFE
	INT_BRK   = INT_IRQ
	INT_RESET = 0xFFFC
	INT_NMI   = 0xFFFA
)

// 6502 Processor Status Flags
// https://www.nesdev.org/obelisk-6502-guide/registers.html
const (
	STATUS_FLAG_CARRY             = 1 << 0 // C
	STATUS_FLAG_ZERO              = 1 << 1 // Z
	STATUS_FLAG_INTERRUPT_DISABLE = 1 << 2 // I
	STATUS_FLAG_DECIMAL           = 1 << 3 // D, ignored by the 2A03's ALU but still settable
	STATUS_FLAG_BREAK             = 1 << 4 // B
	UNUSED_STATUS_FLAG            = 1 << 5 // always reads as 1
	STATUS_FLAG_OVERFLOW          = 1 << 6 // V
	STATUS_FLAG_NEGATIVE          = 1 << 7 // N
)

const STACK_PAGE = 0x0100

// MEM_SIZE is the full 16-bit address space the CPU can address,
// handy for tests and the debugger's memory dump command.
const MEM_SIZE = 1 << 16

// CPU implements all of the 2A03's programmer-visible state plus the
// cycle bookkeeping the scheduler relies on to step it one clock at a
// time.
type CPU struct {
	acc    uint8 // accumulator
	x, y   uint8 // index registers
	status uint8 // processor status flags
	sp     uint8 // stack pointer; stack lives at 0x0100-0x01FF
	pc     uint16

	bus Bus

	cycles int // clocks remaining in the instruction underway

	nmiPending bool
	irqLine    bool // held high by a mapper or APU source wanting service
}

// New constructs a CPU wired to bus and loaded to its power-on state.
// https://nesdev-wiki.nes.science/wikipages/CPU_ALL.xhtml#Power_up_state
func New(bus Bus) *CPU {
	c := &CPU{
		sp:     0xFD,
		bus:    bus,
		status: UNUSED_STATUS_FLAG | STATUS_FLAG_BREAK | STATUS_FLAG_INTERRUPT_DISABLE,
	}
	c.pc = c.Read16(INT_RESET)
	return c
}

// Reset restores the CPU to its reset vector without clearing RAM; it
// models the console's reset line, not a power cycle.
func (c *CPU) Reset() {
	c.sp -= 3
	c.flagsOn(STATUS_FLAG_INTERRUPT_DISABLE)
	c.pc = c.Read16(INT_RESET)
	c.cycles = 7
}

// Stall adds n cycles of idle time before the next instruction
// dispatch, without running an interrupt or opcode. Used by the
// scheduler to model OAM-DMA's CPU stall.
func (c *CPU) Stall(n int) { c.cycles += n }

// RaiseNMI latches a non-maskable interrupt request. The 2A03 polls
// for this at the end of the instruction underway, so it is safe to
// call from the PPU at any point in its own clock.
func (c *CPU) RaiseNMI() {
	c.nmiPending = true
}

// SetIRQ sets the level of the maskable interrupt line. Unlike NMI,
// IRQ is masked by the I flag and is a level, not an edge: the mapper
// or other source holds it until its own condition clears.
func (c *CPU) SetIRQ(asserted bool) {
	c.irqLine = asserted
}

func (c *CPU) PC() uint16 { return c.pc }

// SetPC forces the program counter, bypassing reset/interrupt vectors.
// Meant for the debugger REPL, not normal execution.
func (c *CPU) SetPC(addr uint16) { c.pc = addr }

// StackAddr returns the current top-of-stack address in page one.
func (c *CPU) StackAddr() uint16 { return c.getStackAddr() }

// InstBytes returns the opcode and operand bytes of the instruction at
// the current PC, for the debugger's instruction-dump command.
func (c *CPU) InstBytes() []uint8 {
	op, err := c.getInst()
	if err != nil {
		return []uint8{c.Read(c.pc)}
	}
	b := make([]uint8, op.bytes)
	for i := range b {
		b[i] = c.Read(c.pc + uint16(i))
	}
	return b
}

func (c *CPU) Read(addr uint16) uint8 { return c.bus.Read(addr) }

func (c *CPU) Write(addr uint16, val uint8) { c.bus.Write(addr, val) }

// Read16 returns the two bytes at addr (little-endian).
func (c *CPU) Read16(addr uint16) uint16 {
	lsb := uint16(c.Read(addr))
	msb := uint16(c.Read(addr + 1))
	return (msb << 8) | lsb
}

// Tick advances the CPU by a single clock cycle. Most cycles just
// decrement the instruction-in-progress counter; a new instruction
// (and any pending interrupt) is dispatched only when that counter
// reaches zero, matching the real part's cycle-at-a-time behavior
// closely enough for bus timing without modeling every internal
// micro-op.
func (c *CPU) Tick() {
	if c.cycles > 0 {
		c.cycles--
		return
	}
	c.Step()
}

// Step executes one full instruction (or interrupt sequence),
// charging c.cycles with however many clocks it consumes. It is meant
// for the scheduler's cycle-level Tick loop, but is also useful
// standalone for tests and the debugger's single-step command.
func (c *CPU) Step() {
	if c.nmiPending {
		c.nmiPending = false
		c.interrupt(INT_NMI, false)
		return
	}
	if c.irqLine && c.status&STATUS_FLAG_INTERRUPT_DISABLE == 0 {
		c.interrupt(INT_IRQ, false)
		return
	}

	op, err := c.getInst()
	if err != nil {
		panic(err)
	}

	c.cycles = int(op.cycles) - 1
	c.pc++
	opc := c.pc

	op.fn(c, op.mode)

	// If the instruction didn't redirect the PC itself (branch,
	// jump, interrupt return), advance past its operand bytes.
	if c.pc == opc {
		c.pc += uint16(op.bytes) - 1
	}
}

// interrupt pushes PC and status and jumps to vector, mirroring BRK's
// stack discipline. The pushed B flag is set only when brk is true
// (brk distinguishes itself from a hardware interrupt by that bit
// alone); NMI and IRQ pass false.
func (c *CPU) interrupt(vector uint16, brk bool) {
	c.pushAddress(c.pc)
	p := c.status &^ STATUS_FLAG_BREAK
	if brk {
		p |= STATUS_FLAG_BREAK
	}
	c.pushStack(p | UNUSED_STATUS_FLAG)
	c.flagsOn(STATUS_FLAG_INTERRUPT_DISABLE)
	c.pc = c.Read16(vector)
	c.cycles = 7
}

var invalidInstruction = fmt.Errorf("invalid instruction")

func (c *CPU) getInst() (opcode, error) {
	m := c.Read(c.pc)
	op, ok := opcodes[m]
	if !ok {
		return opcode{}, fmt.Errorf("pc: 0x%04x, inst: 0x%02x: %w", c.pc, m, invalidInstruction)
	}
	return op, nil
}

func (c *CPU) getStackAddr() uint16 { return STACK_PAGE + uint16(c.sp) }

func (c *CPU) pushStack(val uint8) {
	c.Write(c.getStackAddr(), val)
	c.sp--
}

func (c *CPU) popStack() uint8 {
	c.sp++
	return c.Read(c.getStackAddr())
}

func (c *CPU) pushAddress(addr uint16) {
	c.pushStack(uint8(addr >> 8))
	c.pushStack(uint8(addr & 0x00FF))
}

func (c *CPU) popAddress() uint16 {
	return uint16(c.popStack()) | (uint16(c.popStack()) << 8)
}

func (c *CPU) flagsOn(mask uint8)  { c.status |= mask }
func (c *CPU) flagsOff(mask uint8) { c.status &^= mask }

func (c *CPU) setNegativeAndZeroFlags(n uint8) {
	if n == 0 {
		c.flagsOn(STATUS_FLAG_ZERO)
	} else {
		c.flagsOff(STATUS_FLAG_ZERO)
	}
	if n&0b1000_0000 != 0 {
		c.flagsOn(STATUS_FLAG_NEGATIVE)
	} else {
		c.flagsOff(STATUS_FLAG_NEGATIVE)
	}
}

// extraCycles returns 1 if addr1 and addr2 fall in different pages, 0
// otherwise: the bus takes an extra clock to fix up the high byte of
// an indexed address when the index carries into a new page.
func extraCycles(addr1, addr2 uint16) int {
	if addr1&0xFF00 != addr2&0xFF00 {
		return 1
	}
	return 0
}

var flagMap = map[uint8]byte{
	STATUS_FLAG_NEGATIVE:          'N',
	STATUS_FLAG_OVERFLOW:          'V',
	UNUSED_STATUS_FLAG:            '-',
	STATUS_FLAG_BREAK:             'B',
	STATUS_FLAG_DECIMAL:           'D',
	STATUS_FLAG_INTERRUPT_DISABLE: 'I',
	STATUS_FLAG_ZERO:              'Z',
	STATUS_FLAG_CARRY:             'C',
}

func statusString(p uint8) string {
	var sb strings.Builder
	for _, f := range []uint8{
		STATUS_FLAG_NEGATIVE, STATUS_FLAG_OVERFLOW, UNUSED_STATUS_FLAG, STATUS_FLAG_BREAK,
		STATUS_FLAG_DECIMAL, STATUS_FLAG_INTERRUPT_DISABLE, STATUS_FLAG_ZERO, STATUS_FLAG_CARRY,
	} {
		if p&f > 0 {
			sb.WriteByte(flagMap[f])
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func (c *CPU) String() string {
	op := opcodes[c.Read(c.pc)]
	return fmt.Sprintf("A,X,Y: %3d,%3d,%3d PC: 0x%04x SP: 0x%02x P: %s OP: %s",
		c.acc, c.x, c.y, c.pc, c.sp, statusString(c.status), op)
}
