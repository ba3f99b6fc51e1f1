package mappers

import (
	"fmt"

	"github.com/bdwalton/gintendo/nesrom"
)

func init() {
	registerMapper(0, func() Mapper {
		return &nrom{baseMapper: newBaseMapper(0, "NROM")}
	})
}

// nrom implements mapper 0, the flat (unbanked) mapping used by the
// earliest NES cartridges: one or two 16 KiB PRG banks mapped straight
// into 0x8000-0xFFFF, and a single 8 KiB CHR bank (or CHR RAM when the
// cartridge has none) mapped straight into the PPU's pattern tables.
type nrom struct {
	*baseMapper
	chrRAM bool
	chr    []uint8
}

func (m *nrom) Init(r *nesrom.ROM) {
	m.baseMapper.Init(r)
	if r.NumChrBlocks() == 0 {
		m.chrRAM = true
		m.chr = make([]uint8, 0x2000)
	}
}

// PrgRead maps 0x8000-0xFFFF onto the cartridge's PRG ROM. A 16 KiB
// cartridge (NumPrgBlocks() == 1) mirrors its single bank across both
// halves of the window.
func (m *nrom) PrgRead(addr uint16) uint8 {
	off := addr - 0x8000
	if m.rom.NumPrgBlocks() == 1 {
		off %= 0x4000
	}
	return m.rom.PrgRead(off)
}

// PrgWrite treats every write as the program-ROM-write invariant
// violation: NROM carries no bankable registers, and ROM itself can't
// be written. It panics, the same way the CPU reports an undefined
// opcode.
func (m *nrom) PrgWrite(addr uint16, val uint8) {
	panic(fmt.Errorf("write of 0x%02x to program ROM at 0x%04x", val, addr))
}

func (m *nrom) ChrRead(addr uint16) uint8 {
	if m.chrRAM {
		return m.chr[addr]
	}
	return m.rom.ChrRead(addr)
}

func (m *nrom) ChrWrite(addr uint16, val uint8) {
	if m.chrRAM {
		m.chr[addr] = val
	}
	// Writes to CHR ROM are silently ignored; no banking to drive.
}
