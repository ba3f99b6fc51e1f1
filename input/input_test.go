package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonBitDiscipline(t *testing.T) {
	var l Latch

	l.Set(B, true)
	assert.Equal(t, uint8(0b0100_0000), l.live)

	l.Set(Up, true)
	assert.Equal(t, uint8(0b0100_1000), l.live)

	l.Set(B, false)
	assert.Equal(t, uint8(0b0000_1000), l.live)
}

func TestLatchAndShift(t *testing.T) {
	var l Latch
	l.live = 0b1001_0010

	l.Write(1)
	l.Write(0)

	want := []uint8{1, 0, 0, 1, 0, 0, 1, 0}
	for i, w := range want {
		assert.Equal(t, w, l.Read(), "bit %d", i)
	}
}

func TestReadPastEighthBitReturnsOne(t *testing.T) {
	var l Latch
	l.live = 0xFF

	l.Write(1)
	l.Write(0)

	for i := 0; i < 8; i++ {
		l.Read()
	}

	for i := 0; i < 4; i++ {
		assert.Equal(t, uint8(1), l.Read())
	}
}

func TestStrobeHeldHighAlwaysReturnsLiveA(t *testing.T) {
	var l Latch
	l.live = 0 // A not pressed

	l.Write(1)
	assert.Equal(t, uint8(0), l.Read())
	assert.Equal(t, uint8(0), l.Read())

	l.Set(A, true)
	assert.Equal(t, uint8(1), l.Read())
}

func TestPadSharesStrobe(t *testing.T) {
	var p Pad
	p.Set(Port1, A, true)
	p.Set(Port2, B, true)

	p.Write(1)
	p.Write(0)

	assert.Equal(t, uint8(1), p.Read(Port1))
	assert.Equal(t, uint8(0), p.Read(Port2), "Port2's A bit comes out first")
	assert.Equal(t, uint8(1), p.Read(Port2), "Port2's B bit was latched by the shared strobe")
}
