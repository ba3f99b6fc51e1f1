// Package nesrom implements the iNES cartridge container format: the
// 16-byte header plus the PRG and CHR ROM images it describes.
// https://www.nesdev.org/wiki/INES
package nesrom

import (
	"fmt"
	"io"
	"os"
)

// Mirroring mode, as reported to the PPU-Bus.
const (
	MIRROR_HORIZONTAL = iota
	MIRROR_VERTICAL
	MIRROR_FOUR_SCREEN
)

// header flag6 bit identifiers; the top nibble is the low nibble of
// the mapper number.
const (
	flag6Mirroring     = 1 << 0
	flag6BatteryBacked = 1 << 1
	flag6Trainer       = 1 << 2
	flag6FourScreen    = 1 << 3
)

const (
	headerSize     = 16
	trainerSize    = 512
	prgBlockSize   = 16384
	chrBlockSize   = 8192
)

type header struct {
	constant                                 string
	prgSize, chrSize                         uint8
	flags6, flags7, flags8, flags9, flags10 uint8
	pad                                      [5]byte
}

func parseHeader(b []byte) *header {
	h := &header{
		constant: string(b[0:4]),
		prgSize:  b[4],
		chrSize:  b[5],
		flags6:   b[6],
		flags7:   b[7],
		flags8:   b[8],
		flags9:   b[9],
		flags10:  b[10],
	}
	copy(h.pad[:], b[11:16])
	return h
}

func (h *header) isINES() bool {
	return h.constant == "NES\x1a"
}

func (h *header) paddingIsZero() bool {
	for _, x := range h.pad {
		if x != 0 {
			return false
		}
	}
	return true
}

func (h *header) hasTrainer() bool {
	return h.flags6&flag6Trainer != 0
}

func (h *header) hasSaveRAM() bool {
	return h.flags6&flag6BatteryBacked != 0
}

// mapperNum assembles the mapper id from the top nibble of flags6 and
// the top nibble of flags7, per spec.
func (h *header) mapperNum() uint16 {
	return uint16(h.flags7&0xF0) | uint16(h.flags6>>4)
}

func (h *header) mirroringMode() uint8 {
	if h.flags6&flag6FourScreen != 0 {
		return MIRROR_FOUR_SCREEN
	}
	if h.flags6&flag6Mirroring != 0 {
		return MIRROR_VERTICAL
	}
	return MIRROR_HORIZONTAL
}

// ROM is a parsed iNES cartridge image: the header plus the program
// and character ROM byte arrays the core needs, and the mapper number
// and mirroring mode derived from the header.
type ROM struct {
	h   *header
	prg []byte
	chr []byte
}

// Load reads and validates an iNES container from path. A trainer
// present in the header, a non-iNES magic, or non-zero header padding
// (bytes 11-15) are all rejected: the first as an explicitly
// unsupported feature, the latter two as malformed input.
func Load(path string) (*ROM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ROM %q: %w", path, err)
	}
	defer f.Close()

	return load(f)
}

// LoadFromReader parses an iNES container from an arbitrary reader,
// applying the same validation as Load. Exported chiefly so other
// packages can build synthetic ROMs in tests without touching disk.
func LoadFromReader(r io.Reader) (*ROM, error) {
	return load(r)
}

func load(r io.Reader) (*ROM, error) {
	hb := make([]byte, headerSize)
	if _, err := io.ReadFull(r, hb); err != nil {
		return nil, fmt.Errorf("reading iNES header: %w", err)
	}

	h := parseHeader(hb)
	if !h.isINES() {
		return nil, fmt.Errorf("not an iNES file (bad magic %q)", h.constant)
	}
	if !h.paddingIsZero() {
		return nil, fmt.Errorf("iNES header bytes 11-15 must be zero")
	}
	if h.hasTrainer() {
		return nil, fmt.Errorf("trainer-equipped ROMs are not supported")
	}

	prg := make([]byte, int(h.prgSize)*prgBlockSize)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, fmt.Errorf("reading PRG ROM (%d bytes): %w", len(prg), err)
	}

	chr := make([]byte, int(h.chrSize)*chrBlockSize)
	if _, err := io.ReadFull(r, chr); err != nil {
		return nil, fmt.Errorf("reading CHR ROM (%d bytes): %w", len(chr), err)
	}

	return &ROM{h: h, prg: prg, chr: chr}, nil
}

func (r *ROM) PrgRead(addr uint16) uint8 { return r.prg[addr] }
func (r *ROM) ChrRead(addr uint16) uint8 { return r.chr[addr] }

func (r *ROM) NumPrgBlocks() uint8 { return r.h.prgSize }
func (r *ROM) NumChrBlocks() uint8 { return r.h.chrSize }

func (r *ROM) MapperNum() uint16      { return r.h.mapperNum() }
func (r *ROM) MirroringMode() uint8   { return r.h.mirroringMode() }
func (r *ROM) HasSaveRAM() bool       { return r.h.hasSaveRAM() }

func (r *ROM) String() string {
	return fmt.Sprintf("%s prg=%dx16KiB chr=%dx8KiB mapper=%d mirror=%d",
		r.h.constant, r.h.prgSize, r.h.chrSize, r.MapperNum(), r.MirroringMode())
}
