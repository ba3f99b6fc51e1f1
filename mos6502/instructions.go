package mos6502

import "math/bits"

// getOperandAddr resolves mode to an address for the operand
// referenced by the program counter (which has already been advanced
// past the opcode byte itself).
func (c *CPU) getOperandAddr(mode uint8) uint16 {
	switch mode {
	case ACCUMULATOR:
		panic("ACCUMULATOR addressing mode has no operand address")
	case IMPLICIT:
		panic("IMPLICIT addressing mode has no operand address")
	case IMMEDIATE:
		return c.pc
	case ZERO_PAGE:
		return uint16(c.Read(c.pc))
	case ZERO_PAGE_X:
		return uint16(c.Read(c.pc) + c.x)
	case ZERO_PAGE_Y:
		return uint16(c.Read(c.pc) + c.y)
	case ABSOLUTE:
		return c.Read16(c.pc)
	case ABSOLUTE_X:
		a := c.Read16(c.pc)
		addr := a + uint16(c.x)
		c.cycles += extraCycles(a, addr)
		return addr
	case ABSOLUTE_Y:
		a := c.Read16(c.pc)
		addr := a + uint16(c.y)
		c.cycles += extraCycles(a, addr)
		return addr
	case INDIRECT:
		return c.indirectRead16(c.Read16(c.pc))
	case INDIRECT_X:
		return c.indirectRead16ZP(c.Read(c.pc) + c.x)
	case INDIRECT_Y:
		a := c.indirectRead16ZP(c.Read(c.pc))
		addr := a + uint16(c.y)
		c.cycles += extraCycles(a, addr)
		return addr
	case RELATIVE:
		// Relative to the address of the next instruction. We've
		// already advanced past the opcode byte, so c.pc is the
		// operand byte and the base is the byte after it (c.pc + 1).
		return (c.pc + 1) + uint16(int8(c.Read(c.pc)))
	default:
		panic("invalid addressing mode")
	}
}

// indirectRead16 reproduces the original 6502's JMP ($xxxx) page-wrap
// bug: if the low byte of the pointer is 0xFF, the high byte of the
// target is fetched from the start of the same page rather than the
// next one.
func (c *CPU) indirectRead16(ptr uint16) uint16 {
	lsb := uint16(c.Read(ptr))
	hi := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	msb := uint16(c.Read(hi))
	return (msb << 8) | lsb
}

// indirectRead16ZP reads a two-byte pointer out of the zero page,
// wrapping within the zero page rather than crossing into page one.
func (c *CPU) indirectRead16ZP(zpAddr uint8) uint16 {
	lsb := uint16(c.Read(uint16(zpAddr)))
	msb := uint16(c.Read(uint16(zpAddr + 1)))
	return (msb << 8) | lsb
}

// branch takes the relative jump when the flag(s) in mask are set
// (wantSet) or clear (!wantSet), charging one extra cycle for a taken
// branch and, via extraCycles, one more when the target lies on a
// different page from the instruction that follows the branch.
func (c *CPU) branch(mask uint8, wantSet bool) {
	if (c.status&mask != 0) == wantSet {
		target := c.getOperandAddr(RELATIVE)
		// Page-cross is measured from the address right after the
		// full 2-byte branch instruction, since that's where the
		// real part resumes fetching if it doesn't branch.
		c.cycles += extraCycles(c.pc+1, target)
		c.cycles++ // taken branches cost one extra cycle
		c.pc = target
	}
}

// addWithOverflow adds b and the carry flag into the accumulator,
// setting C, V, N and Z. Used directly by ADC and, with the operand
// complemented, by SBC.
func (c *CPU) addWithOverflow(b uint8) {
	sum := uint16(c.acc) + uint16(b) + uint16(c.status&STATUS_FLAG_CARRY)
	res := uint8(sum)

	var mask uint8
	if sum&0x100 != 0 {
		mask |= STATUS_FLAG_CARRY
	}
	if (c.acc^res)&(b^res)&0x80 != 0 {
		mask |= STATUS_FLAG_OVERFLOW
	}

	c.flagsOff(STATUS_FLAG_CARRY | STATUS_FLAG_OVERFLOW)
	c.flagsOn(mask)
	c.acc = res
	c.setNegativeAndZeroFlags(c.acc)
}

func (c *CPU) baseCMP(a, b uint8) {
	c.setNegativeAndZeroFlags(a - b)
	if a >= b {
		c.flagsOn(STATUS_FLAG_CARRY)
	} else {
		c.flagsOff(STATUS_FLAG_CARRY)
	}
}

func (c *CPU) ADC(mode uint8) { c.addWithOverflow(c.Read(c.getOperandAddr(mode))) }

func (c *CPU) AND(mode uint8) {
	c.acc &= c.Read(c.getOperandAddr(mode))
	c.setNegativeAndZeroFlags(c.acc)
}

func (c *CPU) ASL(mode uint8) {
	var ov, nv uint8
	if mode == ACCUMULATOR {
		ov = c.acc
		c.acc <<= 1
		nv = c.acc
	} else {
		addr := c.getOperandAddr(mode)
		ov = c.Read(addr)
		nv = ov << 1
		c.Write(addr, nv)
	}
	c.flagsOff(STATUS_FLAG_CARRY)
	c.setNegativeAndZeroFlags(nv)
	if ov&0x80 != 0 {
		c.flagsOn(STATUS_FLAG_CARRY)
	}
}

func (c *CPU) BCC(mode uint8) { c.branch(STATUS_FLAG_CARRY, false) }
func (c *CPU) BCS(mode uint8) { c.branch(STATUS_FLAG_CARRY, true) }
func (c *CPU) BEQ(mode uint8) { c.branch(STATUS_FLAG_ZERO, true) }
func (c *CPU) BMI(mode uint8) { c.branch(STATUS_FLAG_NEGATIVE, true) }
func (c *CPU) BNE(mode uint8) { c.branch(STATUS_FLAG_ZERO, false) }
func (c *CPU) BPL(mode uint8) { c.branch(STATUS_FLAG_NEGATIVE, false) }
func (c *CPU) BVC(mode uint8) { c.branch(STATUS_FLAG_OVERFLOW, false) }
func (c *CPU) BVS(mode uint8) { c.branch(STATUS_FLAG_OVERFLOW, true) }

func (c *CPU) BIT(mode uint8) {
	o := c.Read(c.getOperandAddr(mode))
	c.flagsOff(STATUS_FLAG_NEGATIVE | STATUS_FLAG_OVERFLOW | STATUS_FLAG_ZERO)
	if o&c.acc == 0 {
		c.flagsOn(STATUS_FLAG_ZERO)
	}
	c.flagsOn(o & (STATUS_FLAG_NEGATIVE | STATUS_FLAG_OVERFLOW))
}

// BRK sets the B flag (distinguishing a software interrupt from NMI
// or IRQ on the pushed status byte) and otherwise behaves like a
// hardware interrupt to the IRQ/BRK vector. It pushes PC+1 (the
// already-advanced PC), since BRK's second byte is a padding byte the
// 6502 skips over rather than an operand.
func (c *CPU) BRK(mode uint8) {
	c.pushAddress(c.pc + 1)
	c.pushStack(c.status | STATUS_FLAG_BREAK | UNUSED_STATUS_FLAG)
	c.flagsOn(STATUS_FLAG_INTERRUPT_DISABLE)
	c.pc = c.Read16(INT_BRK)
	c.cycles = 7
}

func (c *CPU) CLC(mode uint8) { c.flagsOff(STATUS_FLAG_CARRY) }
func (c *CPU) CLD(mode uint8) { c.flagsOff(STATUS_FLAG_DECIMAL) }
func (c *CPU) CLI(mode uint8) { c.flagsOff(STATUS_FLAG_INTERRUPT_DISABLE) }
func (c *CPU) CLV(mode uint8) { c.flagsOff(STATUS_FLAG_OVERFLOW) }

func (c *CPU) CMP(mode uint8) { c.baseCMP(c.acc, c.Read(c.getOperandAddr(mode))) }
func (c *CPU) CPX(mode uint8) { c.baseCMP(c.x, c.Read(c.getOperandAddr(mode))) }
func (c *CPU) CPY(mode uint8) { c.baseCMP(c.y, c.Read(c.getOperandAddr(mode))) }

func (c *CPU) DEC(mode uint8) {
	a := c.getOperandAddr(mode)
	v := c.Read(a) - 1
	c.Write(a, v)
	c.setNegativeAndZeroFlags(v)
}

func (c *CPU) DEX(mode uint8) { c.x--; c.setNegativeAndZeroFlags(c.x) }
func (c *CPU) DEY(mode uint8) { c.y--; c.setNegativeAndZeroFlags(c.y) }

func (c *CPU) EOR(mode uint8) {
	c.acc ^= c.Read(c.getOperandAddr(mode))
	c.setNegativeAndZeroFlags(c.acc)
}

func (c *CPU) INC(mode uint8) {
	a := c.getOperandAddr(mode)
	v := c.Read(a) + 1
	c.Write(a, v)
	c.setNegativeAndZeroFlags(v)
}

func (c *CPU) INX(mode uint8) { c.x++; c.setNegativeAndZeroFlags(c.x) }
func (c *CPU) INY(mode uint8) { c.y++; c.setNegativeAndZeroFlags(c.y) }

func (c *CPU) JMP(mode uint8) { c.pc = c.getOperandAddr(mode) }

func (c *CPU) JSR(mode uint8) {
	target := c.getOperandAddr(mode)
	c.pushAddress(c.pc + 1) // last byte of the JSR operand
	c.pc = target
}

func (c *CPU) LDA(mode uint8) {
	c.acc = c.Read(c.getOperandAddr(mode))
	c.setNegativeAndZeroFlags(c.acc)
}

func (c *CPU) LDX(mode uint8) {
	c.x = c.Read(c.getOperandAddr(mode))
	c.setNegativeAndZeroFlags(c.x)
}

func (c *CPU) LDY(mode uint8) {
	c.y = c.Read(c.getOperandAddr(mode))
	c.setNegativeAndZeroFlags(c.y)
}

func (c *CPU) LSR(mode uint8) {
	var ov, nv uint8
	if mode == ACCUMULATOR {
		ov = c.acc
		c.acc >>= 1
		nv = c.acc
	} else {
		addr := c.getOperandAddr(mode)
		ov = c.Read(addr)
		nv = ov >> 1
		c.Write(addr, nv)
	}
	c.flagsOff(STATUS_FLAG_CARRY)
	c.setNegativeAndZeroFlags(nv)
	if ov&0x01 != 0 {
		c.flagsOn(STATUS_FLAG_CARRY)
	}
}

func (c *CPU) NOP(mode uint8) {
	// Unofficial NOPs still read their operand, for the bus side
	// effects some mappers depend on; the value itself is discarded.
	if mode != IMPLICIT {
		c.Read(c.getOperandAddr(mode))
	}
}

func (c *CPU) ORA(mode uint8) {
	c.acc |= c.Read(c.getOperandAddr(mode))
	c.setNegativeAndZeroFlags(c.acc)
}

func (c *CPU) PHA(mode uint8) { c.pushStack(c.acc) }
func (c *CPU) PHP(mode uint8) { c.pushStack(c.status | STATUS_FLAG_BREAK | UNUSED_STATUS_FLAG) }

func (c *CPU) PLA(mode uint8) {
	c.acc = c.popStack()
	c.setNegativeAndZeroFlags(c.acc)
}

func (c *CPU) PLP(mode uint8) {
	c.status = (c.popStack() &^ STATUS_FLAG_BREAK) | UNUSED_STATUS_FLAG
}

func (c *CPU) ROL(mode uint8) {
	var ov, nv uint8
	if mode == ACCUMULATOR {
		ov = c.acc
		c.acc = bits.RotateLeft8(ov, 1)&^1 | (c.status & STATUS_FLAG_CARRY)
		nv = c.acc
	} else {
		addr := c.getOperandAddr(mode)
		ov = c.Read(addr)
		nv = bits.RotateLeft8(ov, 1)&^1 | (c.status & STATUS_FLAG_CARRY)
		c.Write(addr, nv)
	}
	c.flagsOff(STATUS_FLAG_CARRY)
	c.setNegativeAndZeroFlags(nv)
	if ov&0x80 != 0 {
		c.flagsOn(STATUS_FLAG_CARRY)
	}
}

func (c *CPU) ROR(mode uint8) {
	var ov, nv uint8
	if mode == ACCUMULATOR {
		ov = c.acc
		c.acc = bits.RotateLeft8(ov, -1)&^0x80 | ((c.status & STATUS_FLAG_CARRY) << 7)
		nv = c.acc
	} else {
		addr := c.getOperandAddr(mode)
		ov = c.Read(addr)
		nv = bits.RotateLeft8(ov, -1)&^0x80 | ((c.status & STATUS_FLAG_CARRY) << 7)
		c.Write(addr, nv)
	}
	c.flagsOff(STATUS_FLAG_CARRY)
	c.setNegativeAndZeroFlags(nv)
	if ov&0x01 != 0 {
		c.flagsOn(STATUS_FLAG_CARRY)
	}
}

func (c *CPU) RTI(mode uint8) {
	c.status = (c.popStack() &^ STATUS_FLAG_BREAK) | UNUSED_STATUS_FLAG
	c.pc = c.popAddress()
}

func (c *CPU) RTS(mode uint8) { c.pc = c.popAddress() + 1 }

func (c *CPU) SBC(mode uint8) { c.addWithOverflow(^c.Read(c.getOperandAddr(mode))) }

func (c *CPU) SEC(mode uint8) { c.flagsOn(STATUS_FLAG_CARRY) }
func (c *CPU) SED(mode uint8) { c.flagsOn(STATUS_FLAG_DECIMAL) }
func (c *CPU) SEI(mode uint8) { c.flagsOn(STATUS_FLAG_INTERRUPT_DISABLE) }

func (c *CPU) STA(mode uint8) { c.Write(c.getOperandAddr(mode), c.acc) }
func (c *CPU) STX(mode uint8) { c.Write(c.getOperandAddr(mode), c.x) }
func (c *CPU) STY(mode uint8) { c.Write(c.getOperandAddr(mode), c.y) }

func (c *CPU) TAX(mode uint8) { c.x = c.acc; c.setNegativeAndZeroFlags(c.x) }
func (c *CPU) TAY(mode uint8) { c.y = c.acc; c.setNegativeAndZeroFlags(c.y) }
func (c *CPU) TSX(mode uint8) { c.x = c.sp; c.setNegativeAndZeroFlags(c.x) }
func (c *CPU) TXA(mode uint8) { c.acc = c.x; c.setNegativeAndZeroFlags(c.acc) }
func (c *CPU) TXS(mode uint8) { c.sp = c.x }
func (c *CPU) TYA(mode uint8) { c.acc = c.y; c.setNegativeAndZeroFlags(c.acc) }

// LAX loads both A and X from memory in one shot; used by cartridges
// to save a byte over an LDA/TAX pair.
func (c *CPU) LAX(mode uint8) {
	v := c.Read(c.getOperandAddr(mode))
	c.acc, c.x = v, v
	c.setNegativeAndZeroFlags(v)
}

// SAX stores A & X without touching any flags.
func (c *CPU) SAX(mode uint8) {
	c.Write(c.getOperandAddr(mode), c.acc&c.x)
}

// DCP decrements memory then compares it against A, combining DEC and
// CMP into a single read-modify-write.
func (c *CPU) DCP(mode uint8) {
	addr := c.getOperandAddr(mode)
	v := c.Read(addr) - 1
	c.Write(addr, v)
	c.baseCMP(c.acc, v)
}

// ISB increments memory then subtracts it from A, combining INC and
// SBC.
func (c *CPU) ISB(mode uint8) {
	addr := c.getOperandAddr(mode)
	v := c.Read(addr) + 1
	c.Write(addr, v)
	c.addWithOverflow(^v)
}

// SLO shifts memory left then ORs the result into A, combining ASL
// and ORA.
func (c *CPU) SLO(mode uint8) {
	addr := c.getOperandAddr(mode)
	ov := c.Read(addr)
	nv := ov << 1
	c.Write(addr, nv)
	c.flagsOff(STATUS_FLAG_CARRY)
	if ov&0x80 != 0 {
		c.flagsOn(STATUS_FLAG_CARRY)
	}
	c.acc |= nv
	c.setNegativeAndZeroFlags(c.acc)
}

// RLA rotates memory left then ANDs the result into A, combining ROL
// and AND.
func (c *CPU) RLA(mode uint8) {
	addr := c.getOperandAddr(mode)
	ov := c.Read(addr)
	nv := bits.RotateLeft8(ov, 1)&^1 | (c.status & STATUS_FLAG_CARRY)
	c.Write(addr, nv)
	c.flagsOff(STATUS_FLAG_CARRY)
	if ov&0x80 != 0 {
		c.flagsOn(STATUS_FLAG_CARRY)
	}
	c.acc &= nv
	c.setNegativeAndZeroFlags(c.acc)
}

// SRE shifts memory right then EORs the result into A, combining LSR
// and EOR.
func (c *CPU) SRE(mode uint8) {
	addr := c.getOperandAddr(mode)
	ov := c.Read(addr)
	nv := ov >> 1
	c.Write(addr, nv)
	c.flagsOff(STATUS_FLAG_CARRY)
	if ov&0x01 != 0 {
		c.flagsOn(STATUS_FLAG_CARRY)
	}
	c.acc ^= nv
	c.setNegativeAndZeroFlags(c.acc)
}

// RRA rotates memory right then adds the result into A with carry,
// combining ROR and ADC.
func (c *CPU) RRA(mode uint8) {
	addr := c.getOperandAddr(mode)
	ov := c.Read(addr)
	nv := bits.RotateLeft8(ov, -1)&^0x80 | ((c.status & STATUS_FLAG_CARRY) << 7)
	c.Write(addr, nv)
	c.flagsOff(STATUS_FLAG_CARRY)
	if ov&0x01 != 0 {
		c.flagsOn(STATUS_FLAG_CARRY)
	}
	c.addWithOverflow(nv)
}
