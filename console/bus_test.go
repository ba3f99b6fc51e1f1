package console

import (
	"bytes"
	"testing"

	"github.com/bdwalton/gintendo/input"
	"github.com/bdwalton/gintendo/mappers"
	"github.com/bdwalton/gintendo/mos6502"
	"github.com/bdwalton/gintendo/nesrom"
	"github.com/bdwalton/gintendo/ppu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testROM(t *testing.T, prgBlocks, chrBlocks, flags6 byte) *nesrom.ROM {
	t.Helper()
	header := []byte("NES\x1a")
	header = append(header, prgBlocks, chrBlocks, flags6, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	body := make([]byte, int(prgBlocks)*16384+int(chrBlocks)*8192)
	rom, err := nesrom.LoadFromReader(bytes.NewReader(append(header, body...)))
	require.NoError(t, err)
	return rom
}

// newTestBus wires a CPU-Bus against a real NROM mapper, skipping the
// ebiten window setup New does: these tests exercise address-space
// logic, not the video sink.
func newTestBus(t *testing.T, flags6 byte) *Bus {
	t.Helper()
	rom := testROM(t, 2, 1, flags6)
	m, err := mappers.Get(rom)
	require.NoError(t, err)

	b := &Bus{mapper: m, pad: &input.Pad{}}
	b.cpu = mos6502.New(b)
	b.ppu = ppu.New(b)
	return b
}

func TestRAMMirroring(t *testing.T) {
	b := newTestBus(t, 0)
	for i := 0; i < 10; i++ {
		b.Write(uint16(i), uint8(i+1))
	}
	for _, base := range []uint16{0, 0x0800, 0x1000, 0x1800} {
		for i := 0; i < 10; i++ {
			assert.EqualValues(t, i+1, b.Read(base+uint16(i)))
		}
	}
}

func TestPPURegistersMirrorEvery8Bytes(t *testing.T) {
	b := newTestBus(t, 0)

	// OAMADDR (register 3) at every mirror of $2003 should reach the
	// same underlying register.
	b.Write(0x2003, 5)
	b.Write(0x2004, 0xAB) // OAMDATA, written at OAMADDR 5

	b.Write(0x200B, 5) // $200B mirrors $2003 (0x200B & 7 == 3)
	assert.EqualValues(t, 0xAB, b.Read(0x200C), "$200C mirrors OAMDATA the same as $2004")
}

func TestOAMDMACopiesAPageIntoOAM(t *testing.T) {
	b := newTestBus(t, 0)
	for i := 0; i < 256; i++ {
		b.ram[i] = uint8(i)
	}

	b.Write(OAMDMA, 0x00) // page 0x0000, entirely inside mirrored RAM

	for i := 0; i < 256; i++ {
		b.Write(0x2003, uint8(i))
		assert.EqualValues(t, i, b.Read(0x2004), "OAM byte %d", i)
	}
}

func TestSaveRAMWindowRoundTrips(t *testing.T) {
	b := newTestBus(t, nesromBattery)
	require.True(t, b.mapper.HasSaveRAM())

	b.Write(0x6000, 0x42)
	assert.EqualValues(t, 0x42, b.Read(0x6000))
}

const nesromBattery = 1 << 1 // flags6 battery-backed-RAM bit

func TestControllerPortsShiftOutMSBFirst(t *testing.T) {
	b := newTestBus(t, 0)
	b.pad.Set(input.Port1, input.A, true)
	b.pad.Set(input.Port1, input.Right, true)

	b.Write(JOY1, 1) // strobe high
	b.Write(JOY1, 0) // latch

	var got uint8
	for i := 0; i < 8; i++ {
		got = (got << 1) | (b.Read(JOY1) & 1)
	}
	assert.EqualValues(t, 0b1000_0001, got)
}
