package nesrom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header16(prg, chr, flags6, flags7 byte) []byte {
	b := make([]byte, headerSize)
	copy(b, []byte("NES\x1a"))
	b[4], b[5], b[6], b[7] = prg, chr, flags6, flags7
	return b
}

func TestLoadValidROM(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header16(1, 1, 0, 0))
	buf.Write(make([]byte, prgBlockSize))
	buf.Write(make([]byte, chrBlockSize))

	rom, err := load(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rom.NumPrgBlocks())
	assert.EqualValues(t, 1, rom.NumChrBlocks())
	assert.EqualValues(t, 0, rom.MapperNum())
}

func TestLoadRejectsNonZeroPadding(t *testing.T) {
	hb := header16(1, 1, 0, 0)
	hb[11] = 0x42

	var buf bytes.Buffer
	buf.Write(hb)
	buf.Write(make([]byte, prgBlockSize))
	buf.Write(make([]byte, chrBlockSize))

	_, err := load(&buf)
	assert.Error(t, err)
}

func TestLoadRejectsTrainer(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header16(1, 1, flag6Trainer, 0))
	buf.Write(make([]byte, trainerSize))
	buf.Write(make([]byte, prgBlockSize))
	buf.Write(make([]byte, chrBlockSize))

	_, err := load(&buf)
	assert.Error(t, err)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	hb := header16(1, 1, 0, 0)
	hb[0] = 'X'

	var buf bytes.Buffer
	buf.Write(hb)

	_, err := load(&buf)
	assert.Error(t, err)
}

func TestMapperNum(t *testing.T) {
	h := parseHeader(header16(1, 1, 0x10, 0x20))
	assert.EqualValues(t, 0x21, h.mapperNum())
}

func TestMirroringMode(t *testing.T) {
	cases := []struct {
		flags6 byte
		want   uint8
	}{
		{0x00, MIRROR_HORIZONTAL},
		{0x01, MIRROR_VERTICAL},
		{0x08, MIRROR_FOUR_SCREEN},
		{0x09, MIRROR_FOUR_SCREEN},
	}
	for _, tc := range cases {
		h := parseHeader(header16(1, 1, tc.flags6, 0))
		assert.Equal(t, tc.want, h.mirroringMode())
	}
}

func TestHasSaveRAM(t *testing.T) {
	h := parseHeader(header16(1, 1, flag6BatteryBacked, 0))
	assert.True(t, h.hasSaveRAM())

	h = parseHeader(header16(1, 1, 0, 0))
	assert.False(t, h.hasSaveRAM())
}
