package ppu

// loopy holds one of the PPU's internal v/t scroll registers:
// yyy NN YYYYY XXXXX
// ||| || ||||| +++++-- coarse X scroll
// ||| || +++++-------- coarse Y scroll
// ||| ++-------------- nametable select
// +++----------------- fine Y scroll
// https://www.nesdev.org/wiki/PPU_scrolling
type loopy struct {
	data uint16 // only 15 bits used
}

func (l *loopy) coarseX() uint16 { return l.data & 0x001F }

func (l *loopy) setCoarseX(n uint16) {
	l.data = (l.data & 0xFFE0) | (n & 0x001F)
}

// incrementCoarseX wraps at 31 and flips the horizontal nametable bit
// rather than carrying into coarse Y.
func (l *loopy) incrementCoarseX() {
	if l.coarseX() == 31 {
		l.data &^= 0x001F
		l.data ^= 0x0400
	} else {
		l.data++
	}
}

func (l *loopy) coarseY() uint16 { return (l.data & 0x03E0) >> 5 }

func (l *loopy) setCoarseY(n uint16) {
	l.data = (l.data & 0xFC1F) | ((n & 0x001F) << 5)
}

// incrementY is the PPU's dot-256 "Y increment": fine Y advances every
// scanline, and only carries into coarse Y (wrapping at 29 with a
// nametable-Y flip, or at 31 without one — row 31 is off the edge of
// the nametable, used by some games to store non-rendered data) once
// fine Y itself overflows from 7 back to 0.
// https://www.nesdev.org/wiki/PPU_scrolling#Y_increment
func (l *loopy) incrementY() {
	if l.fineY() < 7 {
		l.setFineY(l.fineY() + 1)
		return
	}

	l.setFineY(0)
	switch y := l.coarseY(); y {
	case 29:
		l.setCoarseY(0)
		l.data ^= 0x0800
	case 31:
		l.setCoarseY(0)
	default:
		l.setCoarseY(y + 1)
	}
}

func (l *loopy) nametableX() uint16 { return (l.data & 0x0400) >> 10 }
func (l *loopy) nametableY() uint16 { return (l.data & 0x0800) >> 11 }

func (l *loopy) fineY() uint16 { return (l.data & 0x7000) >> 12 }

func (l *loopy) setFineY(n uint16) {
	l.data = (l.data & 0x0FFF) | ((n & 0x0007) << 12)
}

// copyHorizontal pulls the horizontal scroll bits (coarse X and
// nametable X) from src into l, used at dot 257 of each scanline.
func (l *loopy) copyHorizontal(src loopy) {
	l.data = (l.data &^ 0x041F) | (src.data & 0x041F)
}

// copyVertical pulls every vertical scroll bit from src into l, used
// during dots 280-304 of the pre-render line.
func (l *loopy) copyVertical(src loopy) {
	l.data = (l.data &^ 0x7BE0) | (src.data & 0x7BE0)
}
