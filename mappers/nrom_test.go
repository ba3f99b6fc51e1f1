package mappers

import (
	"bytes"
	"testing"

	"github.com/bdwalton/gintendo/nesrom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testROM(t *testing.T, prgBlocks, chrBlocks byte) *nesrom.ROM {
	t.Helper()

	var buf bytes.Buffer
	buf.Write([]byte("NES\x1a"))
	buf.WriteByte(prgBlocks)
	buf.WriteByte(chrBlocks)
	buf.Write(make([]byte, 10)) // flags6..flags10 + the 5 padding bytes

	buf.Write(make([]byte, int(prgBlocks)*16384))
	buf.Write(make([]byte, int(chrBlocks)*8192))

	r, err := nesrom.LoadFromReader(&buf)
	require.NoError(t, err)
	return r
}

func TestNROMMirrorsSingleBank(t *testing.T) {
	rom, err := Get(testROM(t, 1, 1))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		rom.PrgRead(0x8000)
		rom.PrgRead(0xC000)
	})
}

func TestNROMUsesCHRRAMWhenAbsent(t *testing.T) {
	m, err := Get(testROM(t, 1, 0))
	require.NoError(t, err)

	m.ChrWrite(0, 0x42)
	assert.EqualValues(t, 0x42, m.ChrRead(0))
}
