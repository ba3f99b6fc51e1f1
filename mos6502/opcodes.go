package mos6502

import "fmt"

// 6502 Addressing Modes
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	IMPLICIT = iota
	ACCUMULATOR
	IMMEDIATE
	ZERO_PAGE
	ZERO_PAGE_X
	ZERO_PAGE_Y
	RELATIVE
	ABSOLUTE
	ABSOLUTE_X
	ABSOLUTE_Y
	INDIRECT
	INDIRECT_X // Indexed Indirect
	INDIRECT_Y // Indirect Indexed
)

var modenames = map[uint8]string{
	IMPLICIT: "IMPLICIT", ACCUMULATOR: "ACCUMULATOR", IMMEDIATE: "IMMEDIATE",
	ZERO_PAGE: "ZERO_PAGE", ZERO_PAGE_X: "ZERO_PAGE_X", ZERO_PAGE_Y: "ZERO_PAGE_Y",
	RELATIVE: "RELATIVE", ABSOLUTE: "ABSOLUTE", ABSOLUTE_X: "ABSOLUTE_X", ABSOLUTE_Y: "ABSOLUTE_Y",
	INDIRECT: "INDIRECT", INDIRECT_X: "INDIRECT_X", INDIRECT_Y: "INDIRECT_Y",
}

// opcodeFn is the shape every dispatched instruction takes: the CPU to
// act on, and the addressing mode the specific opcode byte selected.
type opcodeFn func(*CPU, uint8)

type opcode struct {
	name   string
	mode   uint8
	fn     opcodeFn
	bytes  uint8
	cycles uint8
}

func (o opcode) String() string {
	return fmt.Sprintf("{%s, %s}", o.name, modenames[o.mode])
}

// opcodes is the dispatch table, replacing reflection-based method
// lookup with direct function values keyed by opcode byte. Only
// defined opcodes have an entry; getInst reports a byte with no entry
// as an invalid instruction. Unofficial opcodes used by real cartridges (LAX,
// SAX, DCP, ISB, SLO, RLA, RRA, SRE, and the assorted multi-byte NOPs)
// are included alongside the documented instruction set.
var opcodes = map[uint8]opcode{
	0x69: {"ADC", IMMEDIATE, (*CPU).ADC, 2, 2},
	0x65: {"ADC", ZERO_PAGE, (*CPU).ADC, 2, 3},
	0x75: {"ADC", ZERO_PAGE_X, (*CPU).ADC, 2, 4},
	0x6D: {"ADC", ABSOLUTE, (*CPU).ADC, 3, 4},
	0x7D: {"ADC", ABSOLUTE_X, (*CPU).ADC, 3, 4},
	0x79: {"ADC", ABSOLUTE_Y, (*CPU).ADC, 3, 4},
	0x61: {"ADC", INDIRECT_X, (*CPU).ADC, 2, 6},
	0x71: {"ADC", INDIRECT_Y, (*CPU).ADC, 2, 5},

	0x29: {"AND", IMMEDIATE, (*CPU).AND, 2, 2},
	0x25: {"AND", ZERO_PAGE, (*CPU).AND, 2, 3},
	0x35: {"AND", ZERO_PAGE_X, (*CPU).AND, 2, 4},
	0x2D: {"AND", ABSOLUTE, (*CPU).AND, 3, 4},
	0x3D: {"AND", ABSOLUTE_X, (*CPU).AND, 3, 4},
	0x39: {"AND", ABSOLUTE_Y, (*CPU).AND, 3, 4},
	0x21: {"AND", INDIRECT_X, (*CPU).AND, 2, 6},
	0x31: {"AND", INDIRECT_Y, (*CPU).AND, 2, 5},

	0x0A: {"ASL", ACCUMULATOR, (*CPU).ASL, 1, 2},
	0x06: {"ASL", ZERO_PAGE, (*CPU).ASL, 2, 5},
	0x16: {"ASL", ZERO_PAGE_X, (*CPU).ASL, 2, 6},
	0x0E: {"ASL", ABSOLUTE, (*CPU).ASL, 3, 6},
	0x1E: {"ASL", ABSOLUTE_X, (*CPU).ASL, 3, 7},

	0x90: {"BCC", RELATIVE, (*CPU).BCC, 2, 2},
	0xB0: {"BCS", RELATIVE, (*CPU).BCS, 2, 2},
	0xF0: {"BEQ", RELATIVE, (*CPU).BEQ, 2, 2},
	0x30: {"BMI", RELATIVE, (*CPU).BMI, 2, 2},
	0xD0: {"BNE", RELATIVE, (*CPU).BNE, 2, 2},
	0x10: {"BPL", RELATIVE, (*CPU).BPL, 2, 2},
	0x50: {"BVC", RELATIVE, (*CPU).BVC, 2, 2},
	0x70: {"BVS", RELATIVE, (*CPU).BVS, 2, 2},

	0x24: {"BIT", ZERO_PAGE, (*CPU).BIT, 2, 3},
	0x2C: {"BIT", ABSOLUTE, (*CPU).BIT, 3, 4},

	0x00: {"BRK", IMPLICIT, (*CPU).BRK, 2, 7},

	0x18: {"CLC", IMPLICIT, (*CPU).CLC, 1, 2},
	0xD8: {"CLD", IMPLICIT, (*CPU).CLD, 1, 2},
	0x58: {"CLI", IMPLICIT, (*CPU).CLI, 1, 2},
	0xB8: {"CLV", IMPLICIT, (*CPU).CLV, 1, 2},

	0xC9: {"CMP", IMMEDIATE, (*CPU).CMP, 2, 2},
	0xC5: {"CMP", ZERO_PAGE, (*CPU).CMP, 2, 3},
	0xD5: {"CMP", ZERO_PAGE_X, (*CPU).CMP, 2, 4},
	0xCD: {"CMP", ABSOLUTE, (*CPU).CMP, 3, 4},
	0xDD: {"CMP", ABSOLUTE_X, (*CPU).CMP, 3, 4},
	0xD9: {"CMP", ABSOLUTE_Y, (*CPU).CMP, 3, 4},
	0xC1: {"CMP", INDIRECT_X, (*CPU).CMP, 2, 6},
	0xD1: {"CMP", INDIRECT_Y, (*CPU).CMP, 2, 5},

	0xE0: {"CPX", IMMEDIATE, (*CPU).CPX, 2, 2},
	0xE4: {"CPX", ZERO_PAGE, (*CPU).CPX, 2, 3},
	0xEC: {"CPX", ABSOLUTE, (*CPU).CPX, 3, 4},

	0xC0: {"CPY", IMMEDIATE, (*CPU).CPY, 2, 2},
	0xC4: {"CPY", ZERO_PAGE, (*CPU).CPY, 2, 3},
	0xCC: {"CPY", ABSOLUTE, (*CPU).CPY, 3, 4},

	0xC6: {"DEC", ZERO_PAGE, (*CPU).DEC, 2, 5},
	0xD6: {"DEC", ZERO_PAGE_X, (*CPU).DEC, 2, 6},
	0xCE: {"DEC", ABSOLUTE, (*CPU).DEC, 3, 6},
	0xDE: {"DEC", ABSOLUTE_X, (*CPU).DEC, 3, 7},

	0xCA: {"DEX", IMPLICIT, (*CPU).DEX, 1, 2},
	0x88: {"DEY", IMPLICIT, (*CPU).DEY, 1, 2},

	0x49: {"EOR", IMMEDIATE, (*CPU).EOR, 2, 2},
	0x45: {"EOR", ZERO_PAGE, (*CPU).EOR, 2, 3},
	0x55: {"EOR", ZERO_PAGE_X, (*CPU).EOR, 2, 4},
	0x4D: {"EOR", ABSOLUTE, (*CPU).EOR, 3, 4},
	0x5D: {"EOR", ABSOLUTE_X, (*CPU).EOR, 3, 4},
	0x59: {"EOR", ABSOLUTE_Y, (*CPU).EOR, 3, 4},
	0x41: {"EOR", INDIRECT_X, (*CPU).EOR, 2, 6},
	0x51: {"EOR", INDIRECT_Y, (*CPU).EOR, 2, 5},

	0xE6: {"INC", ZERO_PAGE, (*CPU).INC, 2, 5},
	0xF6: {"INC", ZERO_PAGE_X, (*CPU).INC, 2, 6},
	0xEE: {"INC", ABSOLUTE, (*CPU).INC, 3, 6},
	0xFE: {"INC", ABSOLUTE_X, (*CPU).INC, 3, 7},

	0xE8: {"INX", IMPLICIT, (*CPU).INX, 1, 2},
	0xC8: {"INY", IMPLICIT, (*CPU).INY, 1, 2},

	0x4C: {"JMP", ABSOLUTE, (*CPU).JMP, 3, 3},
	0x6C: {"JMP", INDIRECT, (*CPU).JMP, 3, 5},

	0x20: {"JSR", ABSOLUTE, (*CPU).JSR, 3, 6},

	0xA9: {"LDA", IMMEDIATE, (*CPU).LDA, 2, 2},
	0xA5: {"LDA", ZERO_PAGE, (*CPU).LDA, 2, 3},
	0xB5: {"LDA", ZERO_PAGE_X, (*CPU).LDA, 2, 4},
	0xAD: {"LDA", ABSOLUTE, (*CPU).LDA, 3, 4},
	0xBD: {"LDA", ABSOLUTE_X, (*CPU).LDA, 3, 4},
	0xB9: {"LDA", ABSOLUTE_Y, (*CPU).LDA, 3, 4},
	0xA1: {"LDA", INDIRECT_X, (*CPU).LDA, 2, 6},
	0xB1: {"LDA", INDIRECT_Y, (*CPU).LDA, 2, 5},

	0xA2: {"LDX", IMMEDIATE, (*CPU).LDX, 2, 2},
	0xA6: {"LDX", ZERO_PAGE, (*CPU).LDX, 2, 3},
	0xB6: {"LDX", ZERO_PAGE_Y, (*CPU).LDX, 2, 4},
	0xAE: {"LDX", ABSOLUTE, (*CPU).LDX, 3, 4},
	0xBE: {"LDX", ABSOLUTE_Y, (*CPU).LDX, 3, 4},

	0xA0: {"LDY", IMMEDIATE, (*CPU).LDY, 2, 2},
	0xA4: {"LDY", ZERO_PAGE, (*CPU).LDY, 2, 3},
	0xB4: {"LDY", ZERO_PAGE_X, (*CPU).LDY, 2, 4},
	0xAC: {"LDY", ABSOLUTE, (*CPU).LDY, 3, 4},
	0xBC: {"LDY", ABSOLUTE_X, (*CPU).LDY, 3, 4},

	0x4A: {"LSR", ACCUMULATOR, (*CPU).LSR, 1, 2},
	0x46: {"LSR", ZERO_PAGE, (*CPU).LSR, 2, 5},
	0x56: {"LSR", ZERO_PAGE_X, (*CPU).LSR, 2, 6},
	0x4E: {"LSR", ABSOLUTE, (*CPU).LSR, 3, 6},
	0x5E: {"LSR", ABSOLUTE_X, (*CPU).LSR, 3, 7},

	0xEA: {"NOP", IMPLICIT, (*CPU).NOP, 1, 2},
	0x1A: {"NOP", IMPLICIT, (*CPU).NOP, 1, 2},
	0x3A: {"NOP", IMPLICIT, (*CPU).NOP, 1, 2},
	0x5A: {"NOP", IMPLICIT, (*CPU).NOP, 1, 2},
	0x7A: {"NOP", IMPLICIT, (*CPU).NOP, 1, 2},
	0xDA: {"NOP", IMPLICIT, (*CPU).NOP, 1, 2},
	0xFA: {"NOP", IMPLICIT, (*CPU).NOP, 1, 2},
	0x80: {"NOP", IMMEDIATE, (*CPU).NOP, 2, 2},
	0x82: {"NOP", IMMEDIATE, (*CPU).NOP, 2, 2},
	0x89: {"NOP", IMMEDIATE, (*CPU).NOP, 2, 2},
	0xC2: {"NOP", IMMEDIATE, (*CPU).NOP, 2, 2},
	0xE2: {"NOP", IMMEDIATE, (*CPU).NOP, 2, 2},
	0x04: {"NOP", ZERO_PAGE, (*CPU).NOP, 2, 3},
	0x44: {"NOP", ZERO_PAGE, (*CPU).NOP, 2, 3},
	0x64: {"NOP", ZERO_PAGE, (*CPU).NOP, 2, 3},
	0x14: {"NOP", ZERO_PAGE_X, (*CPU).NOP, 2, 4},
	0x34: {"NOP", ZERO_PAGE_X, (*CPU).NOP, 2, 4},
	0x54: {"NOP", ZERO_PAGE_X, (*CPU).NOP, 2, 4},
	0x74: {"NOP", ZERO_PAGE_X, (*CPU).NOP, 2, 4},
	0xD4: {"NOP", ZERO_PAGE_X, (*CPU).NOP, 2, 4},
	0xF4: {"NOP", ZERO_PAGE_X, (*CPU).NOP, 2, 4},
	0x0C: {"NOP", ABSOLUTE, (*CPU).NOP, 3, 4},
	0x1C: {"NOP", ABSOLUTE_X, (*CPU).NOP, 3, 4},
	0x3C: {"NOP", ABSOLUTE_X, (*CPU).NOP, 3, 4},
	0x5C: {"NOP", ABSOLUTE_X, (*CPU).NOP, 3, 4},
	0x7C: {"NOP", ABSOLUTE_X, (*CPU).NOP, 3, 4},
	0xDC: {"NOP", ABSOLUTE_X, (*CPU).NOP, 3, 4},
	0xFC: {"NOP", ABSOLUTE_X, (*CPU).NOP, 3, 4},

	0x09: {"ORA", IMMEDIATE, (*CPU).ORA, 2, 2},
	0x05: {"ORA", ZERO_PAGE, (*CPU).ORA, 2, 3},
	0x15: {"ORA", ZERO_PAGE_X, (*CPU).ORA, 2, 4},
	0x0D: {"ORA", ABSOLUTE, (*CPU).ORA, 3, 4},
	0x1D: {"ORA", ABSOLUTE_X, (*CPU).ORA, 3, 4},
	0x19: {"ORA", ABSOLUTE_Y, (*CPU).ORA, 3, 4},
	0x01: {"ORA", INDIRECT_X, (*CPU).ORA, 2, 6},
	0x11: {"ORA", INDIRECT_Y, (*CPU).ORA, 2, 5},

	0x48: {"PHA", IMPLICIT, (*CPU).PHA, 1, 3},
	0x08: {"PHP", IMPLICIT, (*CPU).PHP, 1, 3},
	0x68: {"PLA", IMPLICIT, (*CPU).PLA, 1, 4},
	0x28: {"PLP", IMPLICIT, (*CPU).PLP, 1, 4},

	0x2A: {"ROL", ACCUMULATOR, (*CPU).ROL, 1, 2},
	0x26: {"ROL", ZERO_PAGE, (*CPU).ROL, 2, 5},
	0x36: {"ROL", ZERO_PAGE_X, (*CPU).ROL, 2, 6},
	0x2E: {"ROL", ABSOLUTE, (*CPU).ROL, 3, 6},
	0x3E: {"ROL", ABSOLUTE_X, (*CPU).ROL, 3, 7},

	0x6A: {"ROR", ACCUMULATOR, (*CPU).ROR, 1, 2},
	0x66: {"ROR", ZERO_PAGE, (*CPU).ROR, 2, 5},
	0x76: {"ROR", ZERO_PAGE_X, (*CPU).ROR, 2, 6},
	0x6E: {"ROR", ABSOLUTE, (*CPU).ROR, 3, 6},
	0x7E: {"ROR", ABSOLUTE_X, (*CPU).ROR, 3, 7},

	0x40: {"RTI", IMPLICIT, (*CPU).RTI, 1, 6},
	0x60: {"RTS", IMPLICIT, (*CPU).RTS, 1, 6},

	0xE9: {"SBC", IMMEDIATE, (*CPU).SBC, 2, 2},
	0xEB: {"SBC", IMMEDIATE, (*CPU).SBC, 2, 2},
	0xE5: {"SBC", ZERO_PAGE, (*CPU).SBC, 2, 3},
	0xF5: {"SBC", ZERO_PAGE_X, (*CPU).SBC, 2, 4},
	0xED: {"SBC", ABSOLUTE, (*CPU).SBC, 3, 4},
	0xFD: {"SBC", ABSOLUTE_X, (*CPU).SBC, 3, 4},
	0xF9: {"SBC", ABSOLUTE_Y, (*CPU).SBC, 3, 4},
	0xE1: {"SBC", INDIRECT_X, (*CPU).SBC, 2, 6},
	0xF1: {"SBC", INDIRECT_Y, (*CPU).SBC, 2, 5},

	0x38: {"SEC", IMPLICIT, (*CPU).SEC, 1, 2},
	0xF8: {"SED", IMPLICIT, (*CPU).SED, 1, 2},
	0x78: {"SEI", IMPLICIT, (*CPU).SEI, 1, 2},

	0x85: {"STA", ZERO_PAGE, (*CPU).STA, 2, 3},
	0x95: {"STA", ZERO_PAGE_X, (*CPU).STA, 2, 4},
	0x8D: {"STA", ABSOLUTE, (*CPU).STA, 3, 4},
	0x9D: {"STA", ABSOLUTE_X, (*CPU).STA, 3, 5},
	0x99: {"STA", ABSOLUTE_Y, (*CPU).STA, 3, 5},
	0x81: {"STA", INDIRECT_X, (*CPU).STA, 2, 6},
	0x91: {"STA", INDIRECT_Y, (*CPU).STA, 2, 6},

	0x86: {"STX", ZERO_PAGE, (*CPU).STX, 2, 3},
	0x96: {"STX", ZERO_PAGE_Y, (*CPU).STX, 2, 4},
	0x8E: {"STX", ABSOLUTE, (*CPU).STX, 3, 4},

	0x84: {"STY", ZERO_PAGE, (*CPU).STY, 2, 3},
	0x94: {"STY", ZERO_PAGE_X, (*CPU).STY, 2, 4},
	0x8C: {"STY", ABSOLUTE, (*CPU).STY, 3, 4},

	0xAA: {"TAX", IMPLICIT, (*CPU).TAX, 1, 2},
	0xA8: {"TAY", IMPLICIT, (*CPU).TAY, 1, 2},
	0xBA: {"TSX", IMPLICIT, (*CPU).TSX, 1, 2},
	0x8A: {"TXA", IMPLICIT, (*CPU).TXA, 1, 2},
	0x9A: {"TXS", IMPLICIT, (*CPU).TXS, 1, 2},
	0x98: {"TYA", IMPLICIT, (*CPU).TYA, 1, 2},

	// Unofficial opcodes. Naming and cycle counts follow the widely
	// used "LAX/SAX/DCP/ISB/SLO/RLA/RRA/SRE" convention rather than
	// the 6502's internal micro-op mnemonics.
	0xA3: {"LAX", INDIRECT_X, (*CPU).LAX, 2, 6},
	0xA7: {"LAX", ZERO_PAGE, (*CPU).LAX, 2, 3},
	0xAF: {"LAX", ABSOLUTE, (*CPU).LAX, 3, 4},
	0xB3: {"LAX", INDIRECT_Y, (*CPU).LAX, 2, 5},
	0xB7: {"LAX", ZERO_PAGE_Y, (*CPU).LAX, 2, 4},
	0xBF: {"LAX", ABSOLUTE_Y, (*CPU).LAX, 3, 4},

	0x83: {"SAX", INDIRECT_X, (*CPU).SAX, 2, 6},
	0x87: {"SAX", ZERO_PAGE, (*CPU).SAX, 2, 3},
	0x8F: {"SAX", ABSOLUTE, (*CPU).SAX, 3, 4},
	0x97: {"SAX", ZERO_PAGE_Y, (*CPU).SAX, 2, 4},

	0xC3: {"DCP", INDIRECT_X, (*CPU).DCP, 2, 8},
	0xC7: {"DCP", ZERO_PAGE, (*CPU).DCP, 2, 5},
	0xCF: {"DCP", ABSOLUTE, (*CPU).DCP, 3, 6},
	0xD3: {"DCP", INDIRECT_Y, (*CPU).DCP, 2, 8},
	0xD7: {"DCP", ZERO_PAGE_X, (*CPU).DCP, 2, 6},
	0xDB: {"DCP", ABSOLUTE_Y, (*CPU).DCP, 3, 7},
	0xDF: {"DCP", ABSOLUTE_X, (*CPU).DCP, 3, 7},

	0xE3: {"ISB", INDIRECT_X, (*CPU).ISB, 2, 8},
	0xE7: {"ISB", ZERO_PAGE, (*CPU).ISB, 2, 5},
	0xEF: {"ISB", ABSOLUTE, (*CPU).ISB, 3, 6},
	0xF3: {"ISB", INDIRECT_Y, (*CPU).ISB, 2, 8},
	0xF7: {"ISB", ZERO_PAGE_X, (*CPU).ISB, 2, 6},
	0xFB: {"ISB", ABSOLUTE_Y, (*CPU).ISB, 3, 7},
	0xFF: {"ISB", ABSOLUTE_X, (*CPU).ISB, 3, 7},

	0x03: {"SLO", INDIRECT_X, (*CPU).SLO, 2, 8},
	0x07: {"SLO", ZERO_PAGE, (*CPU).SLO, 2, 5},
	0x0F: {"SLO", ABSOLUTE, (*CPU).SLO, 3, 6},
	0x13: {"SLO", INDIRECT_Y, (*CPU).SLO, 2, 8},
	0x17: {"SLO", ZERO_PAGE_X, (*CPU).SLO, 2, 6},
	0x1B: {"SLO", ABSOLUTE_Y, (*CPU).SLO, 3, 7},
	0x1F: {"SLO", ABSOLUTE_X, (*CPU).SLO, 3, 7},

	0x23: {"RLA", INDIRECT_X, (*CPU).RLA, 2, 8},
	0x27: {"RLA", ZERO_PAGE, (*CPU).RLA, 2, 5},
	0x2F: {"RLA", ABSOLUTE, (*CPU).RLA, 3, 6},
	0x33: {"RLA", INDIRECT_Y, (*CPU).RLA, 2, 8},
	0x37: {"RLA", ZERO_PAGE_X, (*CPU).RLA, 2, 6},
	0x3B: {"RLA", ABSOLUTE_Y, (*CPU).RLA, 3, 7},
	0x3F: {"RLA", ABSOLUTE_X, (*CPU).RLA, 3, 7},

	0x43: {"SRE", INDIRECT_X, (*CPU).SRE, 2, 8},
	0x47: {"SRE", ZERO_PAGE, (*CPU).SRE, 2, 5},
	0x4F: {"SRE", ABSOLUTE, (*CPU).SRE, 3, 6},
	0x53: {"SRE", INDIRECT_Y, (*CPU).SRE, 2, 8},
	0x57: {"SRE", ZERO_PAGE_X, (*CPU).SRE, 2, 6},
	0x5B: {"SRE", ABSOLUTE_Y, (*CPU).SRE, 3, 7},
	0x5F: {"SRE", ABSOLUTE_X, (*CPU).SRE, 3, 7},

	0x63: {"RRA", INDIRECT_X, (*CPU).RRA, 2, 8},
	0x67: {"RRA", ZERO_PAGE, (*CPU).RRA, 2, 5},
	0x6F: {"RRA", ABSOLUTE, (*CPU).RRA, 3, 6},
	0x73: {"RRA", INDIRECT_Y, (*CPU).RRA, 2, 8},
	0x77: {"RRA", ZERO_PAGE_X, (*CPU).RRA, 2, 6},
	0x7B: {"RRA", ABSOLUTE_Y, (*CPU).RRA, 3, 7},
	0x7F: {"RRA", ABSOLUTE_X, (*CPU).RRA, 3, 7},
}
