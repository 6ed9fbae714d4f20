package emulator

import "fmt"

// Op identifies a decoded instruction variant.
type Op uint8

const (
	OpUnknown Op = iota
	OpCls        // 00E0
	OpRet        // 00EE
	OpJp         // 1nnn
	OpCall       // 2nnn
	OpSeByte     // 3xkk
	OpSneByte    // 4xkk
	OpSeReg      // 5xy0
	OpLdByte     // 6xkk
	OpAddByte    // 7xkk
	OpLdReg      // 8xy0
	OpOr         // 8xy1
	OpAnd        // 8xy2
	OpXor        // 8xy3
	OpAddReg     // 8xy4
	OpSub        // 8xy5
	OpShr        // 8xy6
	OpSubn       // 8xy7
	OpShl        // 8xyE
	OpSneReg     // 9xy0
	OpLdI        // Annn
	OpJpV0       // Bnnn
	OpRnd        // Cxkk
	OpDrw        // Dxyn
	OpSkp        // Ex9E
	OpSknp       // ExA1
	OpLdVxDT     // Fx07
	OpLdVxK      // Fx0A
	OpLdDTVx     // Fx15
	OpLdSTVx     // Fx18
	OpAddI       // Fx1E
	OpLdF        // Fx29
	OpLdB        // Fx33
	OpStore      // Fx55
	OpLoad       // Fx65
)

// Instruction is a decoded 2-byte instruction word.
type Instruction struct {
	Op   Op
	Word uint16
}

// Decode classifies any 16-bit word. Words matching no pattern decode to OpUnknown.
func Decode(w uint16) Instruction {
	return Instruction{Op: classify(w), Word: w}
}

func classify(w uint16) Op {
	n1, n4 := w>>12, w&0xf
	kk := w & 0xff

	switch n1 {
	case 0x0:
		switch w {
		case 0x00E0:
			return OpCls
		case 0x00EE:
			return OpRet
		}
	case 0x1:
		return OpJp
	case 0x2:
		return OpCall
	case 0x3:
		return OpSeByte
	case 0x4:
		return OpSneByte
	case 0x5:
		if n4 == 0 {
			return OpSeReg
		}
	case 0x6:
		return OpLdByte
	case 0x7:
		return OpAddByte
	case 0x8:
		switch n4 {
		case 0x0:
			return OpLdReg
		case 0x1:
			return OpOr
		case 0x2:
			return OpAnd
		case 0x3:
			return OpXor
		case 0x4:
			return OpAddReg
		case 0x5:
			return OpSub
		case 0x6:
			return OpShr
		case 0x7:
			return OpSubn
		case 0xE:
			return OpShl
		}
	case 0x9:
		if n4 == 0 {
			return OpSneReg
		}
	case 0xA:
		return OpLdI
	case 0xB:
		return OpJpV0
	case 0xC:
		return OpRnd
	case 0xD:
		return OpDrw
	case 0xE:
		switch kk {
		case 0x9E:
			return OpSkp
		case 0xA1:
			return OpSknp
		}
	case 0xF:
		switch kk {
		case 0x07:
			return OpLdVxDT
		case 0x0A:
			return OpLdVxK
		case 0x15:
			return OpLdDTVx
		case 0x18:
			return OpLdSTVx
		case 0x1E:
			return OpAddI
		case 0x29:
			return OpLdF
		case 0x33:
			return OpLdB
		case 0x55:
			return OpStore
		case 0x65:
			return OpLoad
		}
	}
	return OpUnknown
}

// Nibbles returns the four 4-bit fields, most significant first.
func (i Instruction) Nibbles() (uint8, uint8, uint8, uint8) {
	w := i.Word
	return uint8(w >> 12), uint8(w>>8) & 0xf, uint8(w>>4) & 0xf, uint8(w) & 0xf
}

// X is the second nibble, usually a register index.
func (i Instruction) X() uint8 { return uint8(i.Word>>8) & 0xf }

// Y is the third nibble, usually a register index.
func (i Instruction) Y() uint8 { return uint8(i.Word>>4) & 0xf }

// N is the lowest nibble, the sprite row count for DRW.
func (i Instruction) N() uint8 { return uint8(i.Word) & 0xf }

// KK is the low byte.
func (i Instruction) KK() uint8 { return uint8(i.Word) }

// NNN is the low 12-bit address.
func (i Instruction) NNN() uint16 { return i.Word & 0x0fff }

// String renders the instruction as an assembler mnemonic.
func (i Instruction) String() string {
	x, y, n, kk, nnn := i.X(), i.Y(), i.N(), i.KK(), i.NNN()
	switch i.Op {
	case OpCls:
		return "CLS"
	case OpRet:
		return "RET"
	case OpJp:
		return fmt.Sprintf("JP   %03X", nnn)
	case OpCall:
		return fmt.Sprintf("CALL %03X", nnn)
	case OpSeByte:
		return fmt.Sprintf("SE   V%X,#%02X", x, kk)
	case OpSneByte:
		return fmt.Sprintf("SNE  V%X,#%02X", x, kk)
	case OpSeReg:
		return fmt.Sprintf("SE   V%X,V%X", x, y)
	case OpLdByte:
		return fmt.Sprintf("LD   V%X,#%02X", x, kk)
	case OpAddByte:
		return fmt.Sprintf("ADD  V%X,#%02X", x, kk)
	case OpLdReg:
		return fmt.Sprintf("LD   V%X,V%X", x, y)
	case OpOr:
		return fmt.Sprintf("OR   V%X,V%X", x, y)
	case OpAnd:
		return fmt.Sprintf("AND  V%X,V%X", x, y)
	case OpXor:
		return fmt.Sprintf("XOR  V%X,V%X", x, y)
	case OpAddReg:
		return fmt.Sprintf("ADD  V%X,V%X", x, y)
	case OpSub:
		return fmt.Sprintf("SUB  V%X,V%X", x, y)
	case OpShr:
		return fmt.Sprintf("SHR  V%X,V%X", x, y)
	case OpSubn:
		return fmt.Sprintf("SUBN V%X,V%X", x, y)
	case OpShl:
		return fmt.Sprintf("SHL  V%X,V%X", x, y)
	case OpSneReg:
		return fmt.Sprintf("SNE  V%X,V%X", x, y)
	case OpLdI:
		return fmt.Sprintf("LD   I,#%03X", nnn)
	case OpJpV0:
		return fmt.Sprintf("JP   V0,#%03X", nnn)
	case OpRnd:
		return fmt.Sprintf("RND  V%X,#%02X", x, kk)
	case OpDrw:
		return fmt.Sprintf("DRW  V%X,V%X,%d", x, y, n)
	case OpSkp:
		return fmt.Sprintf("SKP  V%X", x)
	case OpSknp:
		return fmt.Sprintf("SKNP V%X", x)
	case OpLdVxDT:
		return fmt.Sprintf("LD   V%X,DT", x)
	case OpLdVxK:
		return fmt.Sprintf("LD   V%X,K", x)
	case OpLdDTVx:
		return fmt.Sprintf("LD   DT,V%X", x)
	case OpLdSTVx:
		return fmt.Sprintf("LD   ST,V%X", x)
	case OpAddI:
		return fmt.Sprintf("ADD  I,V%X", x)
	case OpLdF:
		return fmt.Sprintf("LD   F,V%X", x)
	case OpLdB:
		return fmt.Sprintf("LD   B,V%X", x)
	case OpStore:
		return fmt.Sprintf("LD   [I],V%X", x)
	case OpLoad:
		return fmt.Sprintf("LD   V%X,[I]", x)
	}
	return fmt.Sprintf("DW   #%04X", i.Word)
}
