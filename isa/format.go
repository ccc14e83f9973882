// Package isa implements the pure, stateless parts of the RV32I instruction
// set: the six instruction-format encoders and their inverse decoders, the
// opcode table, and the ABI register name table.
package isa

// Format identifies one of the six RV32I instruction encodings.
type Format int

const (
	FormatR Format = iota
	FormatI
	FormatS
	FormatB
	FormatU
	FormatJ
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	default:
		return "unknown"
	}
}

// Opcode values, 7-bit opcode field.
const (
	OpcodeRType    uint32 = 0b0110011
	OpcodeIType    uint32 = 0b0010011
	OpcodeSType    uint32 = 0b0100011
	OpcodeBType    uint32 = 0b1100011
	OpcodeLUI      uint32 = 0b0110111
	OpcodeAUIPC    uint32 = 0b0010111
	OpcodeJAL      uint32 = 0b1101111
	OpcodeJALR     uint32 = 0b1100111
	OpcodeMemIType uint32 = 0b0000011
	OpcodeSystem   uint32 = 0b1110011
)

// Funct7 value that selects the optional M-extension over OpcodeRType.
const Funct7MExtension uint32 = 0b0000001

// Instruction is a tagged record produced by Decode and consumed by the
// executor. Its zero value is not meaningful; Format always comes from a
// successful Decode call.
type Instruction struct {
	Format Format
	Opcode uint32
	Rd     uint32
	Rs1    uint32
	Rs2    uint32
	Funct3 uint32
	Funct7 uint32
	Imm    int32
}

// SignExtend extends the low n bits of v as a two's-complement signed value
// out to 32 bits. For n == 32 it is the identity.
func SignExtend(v uint32, n uint) int32 {
	if n == 0 || n >= 32 {
		return int32(v)
	}
	shift := 32 - n
	return int32(v<<shift) >> shift
}
