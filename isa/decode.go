package isa

import "fmt"

// ErrDecode is returned (wrapped with the offending opcode) when Decode is
// given a word whose opcode is not one this package understands.
type ErrDecode struct {
	Opcode uint32
	Word   uint32
}

func (e *ErrDecode) Error() string {
	return fmt.Sprintf("isa: unknown opcode 0x%02X in word 0x%08X", e.Opcode, e.Word)
}

func fieldsCommon(word uint32) (opcode, rd, funct3, rs1, rs2, funct7 uint32) {
	opcode = word & 0x7F
	rd = (word >> 7) & 0x1F
	funct3 = (word >> 12) & 0x7
	rs1 = (word >> 15) & 0x1F
	rs2 = (word >> 20) & 0x1F
	funct7 = (word >> 25) & 0x7F
	return
}

// DecodeR extracts the R-type fields from a raw word without checking its
// opcode; used internally by Decode once the opcode has been classified.
func DecodeR(word uint32) (funct7, rs2, rs1, funct3, rd, opcode uint32) {
	opcode, rd, funct3, rs1, rs2, funct7 = fieldsCommon(word)
	return
}

// DecodeI extracts the I-type fields, sign-extending the 12-bit immediate.
func DecodeI(word uint32) (imm int32, rs1, funct3, rd, opcode uint32) {
	opcode, rd, funct3, rs1, _, _ = fieldsCommon(word)
	raw := (word >> 20) & 0xFFF
	imm = SignExtend(raw, 12)
	return
}

// DecodeS extracts the S-type fields, sign-extending the 12-bit immediate.
func DecodeS(word uint32) (imm int32, rs2, rs1, funct3, opcode uint32) {
	opcode, _, funct3, rs1, rs2, _ = fieldsCommon(word)
	raw := ((word >> 25) & 0x7F << 5) | ((word >> 7) & 0x1F)
	imm = SignExtend(raw, 12)
	return
}

// DecodeB extracts the B-type fields, sign-extending the 13-bit immediate.
func DecodeB(word uint32) (imm int32, rs2, rs1, funct3, opcode uint32) {
	opcode, _, funct3, rs1, rs2, _ = fieldsCommon(word)
	raw := ((word >> 31) & 0x1) << 12
	raw |= ((word >> 7) & 0x1) << 11
	raw |= ((word >> 25) & 0x3F) << 5
	raw |= ((word >> 8) & 0xF) << 1
	imm = SignExtend(raw, 13)
	return
}

// DecodeU extracts the U-type fields; the immediate occupies [31:12]
// directly and needs no sign extension beyond the natural int32 cast.
func DecodeU(word uint32) (imm int32, rd, opcode uint32) {
	opcode, rd, _, _, _, _ = fieldsCommon(word)
	imm = int32(word & 0xFFFFF000)
	return
}

// DecodeJ extracts the J-type fields, sign-extending the 21-bit immediate.
func DecodeJ(word uint32) (imm int32, rd, opcode uint32) {
	opcode, rd, _, _, _, _ = fieldsCommon(word)
	raw := ((word >> 31) & 0x1) << 20
	raw |= ((word >> 21) & 0x3FF) << 1
	raw |= ((word >> 20) & 0x1) << 11
	raw |= ((word >> 12) & 0xFF) << 12
	imm = SignExtend(raw, 21)
	return
}

// Decode classifies word by its opcode and returns the fully reconstructed
// Instruction, with the immediate already sign-extended to 32 bits. It
// returns a non-nil *ErrDecode for any opcode outside the supported table.
func Decode(word uint32) (Instruction, error) {
	opcode, rd, funct3, rs1, rs2, funct7 := fieldsCommon(word)

	switch opcode {
	case OpcodeRType:
		return Instruction{Format: FormatR, Opcode: opcode, Rd: rd, Rs1: rs1, Rs2: rs2, Funct3: funct3, Funct7: funct7}, nil
	case OpcodeMemIType, OpcodeIType, OpcodeJALR, OpcodeSystem:
		imm, _, _, _, _ := DecodeI(word)
		return Instruction{Format: FormatI, Opcode: opcode, Rd: rd, Rs1: rs1, Funct3: funct3, Imm: imm}, nil
	case OpcodeSType:
		imm, _, _, _, _ := DecodeS(word)
		return Instruction{Format: FormatS, Opcode: opcode, Rs1: rs1, Rs2: rs2, Funct3: funct3, Imm: imm}, nil
	case OpcodeBType:
		imm, _, _, _, _ := DecodeB(word)
		return Instruction{Format: FormatB, Opcode: opcode, Rs1: rs1, Rs2: rs2, Funct3: funct3, Imm: imm}, nil
	case OpcodeLUI, OpcodeAUIPC:
		imm, _, _ := DecodeU(word)
		return Instruction{Format: FormatU, Opcode: opcode, Rd: rd, Imm: imm}, nil
	case OpcodeJAL:
		imm, _, _ := DecodeJ(word)
		return Instruction{Format: FormatJ, Opcode: opcode, Rd: rd, Imm: imm}, nil
	default:
		return Instruction{}, &ErrDecode{Opcode: opcode, Word: word}
	}
}
