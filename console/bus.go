// Package console wires the CPU, PPU, cartridge mapper, and controller
// ports together into the NES's address space and drives the
// cycle-accurate scheduler that steps them. It also hosts the ebiten
// video sink and an interactive debugger REPL.
package console

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/bdwalton/gintendo/input"
	"github.com/bdwalton/gintendo/mappers"
	"github.com/bdwalton/gintendo/mos6502"
	"github.com/bdwalton/gintendo/ppu"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	NES_BASE_MEMORY = 0x800 // 2KiB built-in RAM

	MAX_ADDRESS          = math.MaxUint16
	MAX_NES_BASE_RAM     = 0x1FFF
	MAX_PPU_REG_MIRRORED = 0x3FFF
	MAX_IO_REG           = 0x4020
	MAX_SRAM             = 0x7FFF
)

const (
	JOY1   = 0x4016
	JOY2   = 0x4017
	OAMDMA = 0x4014 // triggers a 256-byte copy from CPU RAM into OAM

	// OAM-DMA always costs 513 CPU cycles here (514 only on an odd
	// CPU cycle, a distinction this core's 1:3 CPU:PPU tick
	// granularity doesn't preserve; see DESIGN.md).
	oamDMAStallCycles = 513
)

// Bus is the NES's CPU-visible address space: 2 KiB of work RAM
// mirrored through 0x1FFF, the PPU's eight registers mirrored through
// 0x3FFF, the controller ports and OAM-DMA at 0x4014-0x4017, the
// cartridge's save RAM at 0x6000-0x7FFF, and PRG ROM at 0x8000-0xFFFF.
// It also implements ebiten.Game, presenting the PPU's framebuffer.
type Bus struct {
	cpu    *mos6502.CPU
	ppu    *ppu.PPU
	mapper mappers.Mapper
	ram    [NES_BASE_MEMORY]uint8
	pad    *input.Pad
	keys   *keyAdapter
	ticks  uint64

	screen *ebiten.Image
}

func New(m mappers.Mapper) *Bus {
	b := &Bus{mapper: m, pad: &input.Pad{}}

	b.cpu = mos6502.New(b)
	b.ppu = ppu.New(b)
	b.keys = newKeyAdapter()
	b.screen = ebiten.NewImage(ppu.NES_RES_WIDTH, ppu.NES_RES_HEIGHT)

	ebiten.SetWindowSize(ppu.NES_RES_WIDTH*2, ppu.NES_RES_HEIGHT*2)
	ebiten.SetWindowTitle("Gintendo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return b
}

// MirroringMode satisfies ppu.Bus.
func (b *Bus) MirroringMode() uint8 { return b.mapper.MirroringMode() }

// ChrRead satisfies ppu.Bus.
func (b *Bus) ChrRead(addr uint16) uint8 { return b.mapper.ChrRead(addr) }

// ChrWrite satisfies ppu.Bus. Only cartridges with CHR RAM honor it.
func (b *Bus) ChrWrite(addr uint16, val uint8) { b.mapper.ChrWrite(addr, val) }

// Layout returns the NES's fixed native resolution, part of the
// ebiten.Game interface. Returning a constant here makes ebiten do the
// window scaling instead of us.
func (b *Bus) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.NES_RES_WIDTH, ppu.NES_RES_HEIGHT
}

// Draw blits the PPU's most recent framebuffer onto the ebiten screen.
func (b *Bus) Draw(screen *ebiten.Image) {
	b.screen.WritePixels(b.ppu.Framebuffer())
	screen.DrawImage(b.screen, nil)
}

// Update polls the keyboard into the controller's live button state.
// The emulation itself runs on its own goroutine via Run; ebiten drives
// only input and presentation.
func (b *Bus) Update() error {
	b.keys.poll(b.pad)
	return nil
}

// Read services a CPU read of the full 16-bit address space.
// https://www.nesdev.org/wiki/CPU_memory_map
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= MAX_NES_BASE_RAM:
		return b.ram[addr&0x07FF]
	case addr <= MAX_PPU_REG_MIRRORED:
		return b.ppu.ReadRegister(uint8(addr & 0x0007))
	case addr == JOY1:
		return b.pad.Read(input.Port1)
	case addr == JOY2:
		return b.pad.Read(input.Port2)
	case addr < MAX_IO_REG:
		return 0 // APU and remaining I/O registers: not implemented
	case addr <= MAX_SRAM:
		// 0x4020-0x5FFF (expansion area) isn't backed by anything.
		if addr >= 0x6000 && b.mapper.HasSaveRAM() {
			return b.mapper.SaveRAMRead(addr - 0x6000)
		}
		return 0
	default:
		return b.mapper.PrgRead(addr)
	}
}

// Write services a CPU write to the full 16-bit address space.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= MAX_NES_BASE_RAM:
		b.ram[addr&0x07FF] = val
	case addr <= MAX_PPU_REG_MIRRORED:
		b.ppu.WriteRegister(uint8(addr&0x0007), val)
	case addr == OAMDMA:
		b.runOAMDMA(val)
	case addr == JOY1:
		b.pad.Write(val)
	case addr == JOY2:
		// writes to 0x4017 belong to the APU frame counter on real
		// hardware; no APU here, so this is a deliberate no-op.
	case addr < MAX_IO_REG:
		// remaining APU/IO registers: not implemented
	case addr <= MAX_SRAM:
		if addr >= 0x6000 && b.mapper.HasSaveRAM() {
			b.mapper.SaveRAMWrite(addr-0x6000, val)
		}
	default:
		b.mapper.PrgWrite(addr, val)
	}
}

// runOAMDMA copies the 256-byte page starting at val<<8 into OAM and
// stalls the CPU for the duration, matching real hardware's behavior
// of suspending CPU fetches for the whole transfer.
func (b *Bus) runOAMDMA(val uint8) {
	base := uint16(val) << 8
	buf := make([]uint8, 256)
	for i := range buf {
		buf[i] = b.Read(base + uint16(i))
	}
	b.ppu.WriteOAM(buf)
	b.cpu.Stall(oamDMAStallCycles)
}

func readAddress(prompt string) uint16 {
	var a uint16
	fmt.Print(prompt)
	fmt.Scanf("%04x\n", &a)
	return a
}

// Run drives the cycle-accurate scheduler: three PPU dots per CPU
// cycle, polling the PPU's NMI latch once per PPU tick. It blocks
// until ctx is cancelled.
func (b *Bus) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			b.tick()
		}
	}
}

func (b *Bus) tick() {
	b.ppu.Tick()
	if b.ppu.TakeNMI() {
		b.cpu.RaiseNMI()
	}
	if b.ticks%3 == 0 {
		b.cpu.Tick()
	}
	b.ticks++
}

// BIOS is an interactive debugger REPL: breakpoints, single-stepping,
// memory and stack dumps, and a raw "run to completion" mode.
func (b *Bus) BIOS(ctx context.Context) {
	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)

	breaks := make(map[uint16]struct{})

	for {
		fmt.Printf("%s\n\n", b.cpu)
		fmt.Println("(B)reak - add breakpoint")
		fmt.Println("(C)lear - clear breakpoints")
		fmt.Println("(R)un - run to completion")
		fmt.Println("(S)tep - step the cpu one instruction")
		fmt.Println("R(e)set - hit the reset button")
		fmt.Println("(M)emory - display a memory range")
		fmt.Println("S(t)ack - show the top of the stack")
		fmt.Println("(I)nstruction - show the current instruction's bytes")
		fmt.Println("(P)C - set the program counter")
		fmt.Println("(Q)uit - shut down")
		fmt.Printf("Choice: ")

		var in rune
		fmt.Scanf("%c\n", &in)

		switch in {
		case 'b', 'B':
			breaks[readAddress("Breakpoint (eg: ff15): ")] = struct{}{}
		case 'c', 'C':
			breaks = make(map[uint16]struct{})
		case 'p', 'P':
			b.cpu.SetPC(readAddress("Set PC to what address (eg: 0400)?: "))
		case 'q', 'Q':
			return
		case 'r', 'R':
			cctx, cancel := context.WithCancel(ctx)
			go func(ctx context.Context) {
				for {
					select {
					case <-sigQuit:
						cancel()
					case <-ctx.Done():
						return
					}
				}
			}(cctx)
			b.runWithBreakpoints(cctx, breaks)
		case 's', 'S':
			b.cpu.Step()
		case 't', 'T':
			fmt.Println()
			addr := b.cpu.StackAddr()
			for i := 0; i < 3; i++ {
				m := addr + uint16(i)
				fmt.Printf("0x%04x: 0x%02x ", m, b.Read(m))
				if m == 0x01FF {
					break
				}
			}
			fmt.Printf("\n\n")
		case 'i', 'I':
			fmt.Println()
			for _, by := range b.cpu.InstBytes() {
				fmt.Printf("0x%02x ", by)
			}
			fmt.Printf("\n\n")
		case 'e', 'E':
			b.cpu.Reset()
		case 'm', 'M':
			fmt.Println()
			low := readAddress("Low address (eg f00d): ")
			high := readAddress("High address (eg beef): ")
			fmt.Println()

			x := 1
			i := low
			for {
				fmt.Printf("0x%04x: 0x%02x ", i, b.Read(i))
				if x%5 == 0 {
					fmt.Println()
				}
				if i == high || i == math.MaxUint16 {
					break
				}
				x++
				i++
			}
			fmt.Printf("\n\n")
		}
	}
}

// runWithBreakpoints is Run plus a check, once per CPU cycle boundary,
// for the CPU's PC landing on a breakpoint before it dispatches.
func (b *Bus) runWithBreakpoints(ctx context.Context, breaks map[uint16]struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			if b.ticks%3 == 0 {
				if _, hit := breaks[b.cpu.PC()]; hit {
					return
				}
			}
			b.tick()
		}
	}
}
