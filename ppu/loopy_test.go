package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoarseXWrapsAndFlipsNametable(t *testing.T) {
	var l loopy
	l.setCoarseX(31)

	l.incrementCoarseX()

	assert.EqualValues(t, 0, l.coarseX())
	assert.EqualValues(t, 1, l.nametableX())
}

func TestCoarseXIncrementDoesNotDisturbCoarseY(t *testing.T) {
	var l loopy
	l.setCoarseX(5)
	l.setCoarseY(10)

	l.incrementCoarseX()

	assert.EqualValues(t, 6, l.coarseX())
	assert.EqualValues(t, 10, l.coarseY())
}

func TestIncrementYAdvancesFineYWithoutTouchingCoarseY(t *testing.T) {
	var l loopy
	l.setFineY(3)
	l.setCoarseY(10)

	l.incrementY()

	assert.EqualValues(t, 4, l.fineY())
	assert.EqualValues(t, 10, l.coarseY(), "coarse Y only advances once fine Y overflows")
}

func TestIncrementYCarriesIntoCoarseYOnFineYOverflow(t *testing.T) {
	var l loopy
	l.setFineY(7)
	l.setCoarseY(10)

	l.incrementY()

	assert.EqualValues(t, 0, l.fineY())
	assert.EqualValues(t, 11, l.coarseY())
}

func TestIncrementYWrapsAtRow29AndFlipsNametable(t *testing.T) {
	var l loopy
	l.setFineY(7)
	l.setCoarseY(29)

	l.incrementY()

	assert.EqualValues(t, 0, l.fineY())
	assert.EqualValues(t, 0, l.coarseY())
	assert.EqualValues(t, 1, l.nametableY())
}

func TestIncrementYRow31WrapsWithoutFlip(t *testing.T) {
	var l loopy
	l.setFineY(7)
	l.setCoarseY(31)

	l.incrementY()

	assert.EqualValues(t, 0, l.fineY())
	assert.EqualValues(t, 0, l.coarseY())
	assert.EqualValues(t, 0, l.nametableY())
}

func TestCopyHorizontalOnlyTouchesXBits(t *testing.T) {
	var dst, src loopy
	dst.setCoarseY(12)
	dst.setFineY(3)
	src.setCoarseX(7)
	src.data |= 0x0400 // nametable X

	dst.copyHorizontal(src)

	assert.EqualValues(t, 7, dst.coarseX())
	assert.EqualValues(t, 1, dst.nametableX())
	assert.EqualValues(t, 12, dst.coarseY(), "vertical bits must survive a horizontal copy")
	assert.EqualValues(t, 3, dst.fineY())
}

func TestCopyVerticalOnlyTouchesYBits(t *testing.T) {
	var dst, src loopy
	dst.setCoarseX(9)
	src.setCoarseY(20)
	src.setFineY(5)
	src.data |= 0x0800 // nametable Y

	dst.copyVertical(src)

	assert.EqualValues(t, 20, dst.coarseY())
	assert.EqualValues(t, 5, dst.fineY())
	assert.EqualValues(t, 1, dst.nametableY())
	assert.EqualValues(t, 9, dst.coarseX(), "horizontal bits must survive a vertical copy")
}
