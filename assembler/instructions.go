package assembler

import "github.com/rvtoolchain/rv32i/isa"

// instrDef describes one real (non-pseudo) mnemonic's encoding.
type instrDef struct {
	format isa.Format
	opcode uint32
	funct3 uint32
	funct7 uint32 // only meaningful for R-type and shift I-type
	hasF7  bool
}

var instrTable = map[string]instrDef{
	"add":  {isa.FormatR, isa.OpcodeRType, 0x0, 0x00, true},
	"sub":  {isa.FormatR, isa.OpcodeRType, 0x0, 0x20, true},
	"sll":  {isa.FormatR, isa.OpcodeRType, 0x1, 0x00, true},
	"slt":  {isa.FormatR, isa.OpcodeRType, 0x2, 0x00, true},
	"sltu": {isa.FormatR, isa.OpcodeRType, 0x3, 0x00, true},
	"xor":  {isa.FormatR, isa.OpcodeRType, 0x4, 0x00, true},
	"srl":  {isa.FormatR, isa.OpcodeRType, 0x5, 0x00, true},
	"sra":  {isa.FormatR, isa.OpcodeRType, 0x5, 0x20, true},
	"or":   {isa.FormatR, isa.OpcodeRType, 0x6, 0x00, true},
	"and":  {isa.FormatR, isa.OpcodeRType, 0x7, 0x00, true},

	"mul":    {isa.FormatR, isa.OpcodeRType, 0x0, isa.Funct7MExtension, true},
	"mulh":   {isa.FormatR, isa.OpcodeRType, 0x1, isa.Funct7MExtension, true},
	"mulhsu": {isa.FormatR, isa.OpcodeRType, 0x2, isa.Funct7MExtension, true},
	"mulhu":  {isa.FormatR, isa.OpcodeRType, 0x3, isa.Funct7MExtension, true},
	"div":    {isa.FormatR, isa.OpcodeRType, 0x4, isa.Funct7MExtension, true},
	"divu":   {isa.FormatR, isa.OpcodeRType, 0x5, isa.Funct7MExtension, true},
	"rem":    {isa.FormatR, isa.OpcodeRType, 0x6, isa.Funct7MExtension, true},
	"remu":   {isa.FormatR, isa.OpcodeRType, 0x7, isa.Funct7MExtension, true},

	"addi":  {isa.FormatI, isa.OpcodeIType, 0x0, 0, false},
	"slti":  {isa.FormatI, isa.OpcodeIType, 0x2, 0, false},
	"sltiu": {isa.FormatI, isa.OpcodeIType, 0x3, 0, false},
	"xori":  {isa.FormatI, isa.OpcodeIType, 0x4, 0, false},
	"ori":   {isa.FormatI, isa.OpcodeIType, 0x6, 0, false},
	"andi":  {isa.FormatI, isa.OpcodeIType, 0x7, 0, false},
	"slli":  {isa.FormatI, isa.OpcodeIType, 0x1, 0x00, true},
	"srli":  {isa.FormatI, isa.OpcodeIType, 0x5, 0x00, true},
	"srai":  {isa.FormatI, isa.OpcodeIType, 0x5, 0x20, true},

	"lb":  {isa.FormatI, isa.OpcodeMemIType, 0x0, 0, false},
	"lh":  {isa.FormatI, isa.OpcodeMemIType, 0x1, 0, false},
	"lw":  {isa.FormatI, isa.OpcodeMemIType, 0x2, 0, false},
	"lbu": {isa.FormatI, isa.OpcodeMemIType, 0x4, 0, false},
	"lhu": {isa.FormatI, isa.OpcodeMemIType, 0x5, 0, false},

	"sb": {isa.FormatS, isa.OpcodeSType, 0x0, 0, false},
	"sh": {isa.FormatS, isa.OpcodeSType, 0x1, 0, false},
	"sw": {isa.FormatS, isa.OpcodeSType, 0x2, 0, false},

	"beq":  {isa.FormatB, isa.OpcodeBType, 0x0, 0, false},
	"bne":  {isa.FormatB, isa.OpcodeBType, 0x1, 0, false},
	"blt":  {isa.FormatB, isa.OpcodeBType, 0x4, 0, false},
	"bge":  {isa.FormatB, isa.OpcodeBType, 0x5, 0, false},
	"bltu": {isa.FormatB, isa.OpcodeBType, 0x6, 0, false},
	"bgeu": {isa.FormatB, isa.OpcodeBType, 0x7, 0, false},

	"jal": {isa.FormatJ, isa.OpcodeJAL, 0, 0, false},

	"jalr": {isa.FormatI, isa.OpcodeJALR, 0x0, 0, false},

	"lui":   {isa.FormatU, isa.OpcodeLUI, 0, 0, false},
	"auipc": {isa.FormatU, isa.OpcodeAUIPC, 0, 0, false},

	"ecall":  {isa.FormatI, isa.OpcodeSystem, 0x0, 0, false},
	"ebreak": {isa.FormatI, isa.OpcodeSystem, 0x0, 0, false},
}

// shiftInstrs is the set of I-type mnemonics whose third operand is a
// shift amount (rs2 slot) rather than a sign-extended immediate.
var shiftInstrs = map[string]bool{"slli": true, "srli": true, "srai": true}
