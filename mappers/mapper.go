// Package mappers implements and registers mappers that are referenced
// numerically by iNES ROM files. Only mapper 0 (NROM, flat mapping) is
// implemented; the broader mapper ecosystem is a Non-goal of this core.
package mappers

import (
	"fmt"

	"github.com/bdwalton/gintendo/nesrom"
)

// Mapper is the interface the CPU-Bus and PPU-Bus use to reach
// cartridge-resident memory: program ROM, character ROM/RAM, and
// whatever save RAM the cartridge exposes.
type Mapper interface {
	ID() uint16
	Name() string
	Init(*nesrom.ROM)
	PrgRead(uint16) uint8
	PrgWrite(uint16, uint8)
	ChrRead(uint16) uint8
	ChrWrite(uint16, uint8)
	MirroringMode() uint8
	HasSaveRAM() bool
	SaveRAMRead(uint16) uint8
	SaveRAMWrite(uint16, uint8)
}

// allMappers is a global registry of mappers, keyed by mapper id.
var allMappers = map[uint16]func() Mapper{}

func registerMapper(id uint16, ctor func() Mapper) {
	if _, ok := allMappers[id]; ok {
		panic(fmt.Sprintf("mapper id %d already registered", id))
	}
	allMappers[id] = ctor
}

// Get returns a freshly initialized mapper for rom, or an error if no
// mapper is registered for the ROM's mapper number.
func Get(rom *nesrom.ROM) (Mapper, error) {
	id := rom.MapperNum()
	ctor, ok := allMappers[id]
	if !ok {
		return nil, fmt.Errorf("unknown mapper id %d", id)
	}

	m := ctor()
	m.Init(rom)
	return m, nil
}

const saveRAMSize = 0x2000 // 0x6000-0x7FFF

// baseMapper carries the fields and trivial accessors every mapper
// shares: the backing ROM, identity, and unbattery-backed save RAM.
type baseMapper struct {
	id      uint16
	name    string
	rom     *nesrom.ROM
	saveRAM []uint8
}

func newBaseMapper(id uint16, name string) *baseMapper {
	return &baseMapper{id: id, name: name, saveRAM: make([]uint8, saveRAMSize)}
}

func (bm *baseMapper) ID() uint16          { return bm.id }
func (bm *baseMapper) Name() string        { return bm.name }
func (bm *baseMapper) Init(r *nesrom.ROM)  { bm.rom = r }
func (bm *baseMapper) MirroringMode() uint8 {
	return bm.rom.MirroringMode()
}
func (bm *baseMapper) HasSaveRAM() bool {
	return bm.rom.HasSaveRAM()
}
func (bm *baseMapper) SaveRAMRead(addr uint16) uint8 {
	return bm.saveRAM[addr]
}
func (bm *baseMapper) SaveRAMWrite(addr uint16, val uint8) {
	bm.saveRAM[addr] = val
}
