package isa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rvtoolchain/rv32i/isa"
)

func TestEncodeGoldens(t *testing.T) {
	require.Equal(t, uint32(0x003100B3), isa.EncodeR(0x00, 3, 2, 0x0, 1, 0x33))
	require.Equal(t, uint32(0x02A10093), isa.EncodeI(42, 2, 0x0, 1, 0x13))
	require.Equal(t, uint32(0x00312223), isa.EncodeS(4, 3, 2, 0x2, 0x23))
	require.Equal(t, uint32(0x00310463), isa.EncodeB(8, 3, 2, 0x0, 0x63))
	require.Equal(t, uint32(0x123450B7), isa.EncodeU(0x12345000, 1, 0x37))
	require.Equal(t, uint32(0x400000EF), isa.EncodeJ(1024, 1, 0x6F))
}

func TestDecodeInverseOfEncodeRoundTrip(t *testing.T) {
	luiImm := uint32(0xABCDE000)
	cases := []isa.Instruction{
		{Format: isa.FormatR, Opcode: isa.OpcodeRType, Rd: 5, Rs1: 6, Rs2: 7, Funct3: 0, Funct7: 0x20},
		{Format: isa.FormatI, Opcode: isa.OpcodeIType, Rd: 1, Rs1: 2, Funct3: 0x2, Imm: -37},
		{Format: isa.FormatS, Opcode: isa.OpcodeSType, Rs1: 2, Rs2: 3, Funct3: 0x2, Imm: -2048},
		{Format: isa.FormatB, Opcode: isa.OpcodeBType, Rs1: 1, Rs2: 2, Funct3: 0x4, Imm: -4096},
		{Format: isa.FormatU, Opcode: isa.OpcodeLUI, Rd: 9, Imm: int32(luiImm)},
		{Format: isa.FormatJ, Opcode: isa.OpcodeJAL, Rd: 1, Imm: 1048574},
	}

	for _, want := range cases {
		word := isa.Encode(want)
		got, err := isa.Decode(word)
		require.NoError(t, err)
		require.Equal(t, want.Format, got.Format)
		require.Equal(t, want.Rd, got.Rd)
		require.Equal(t, want.Rs1, got.Rs1)
		require.Equal(t, want.Rs2, got.Rs2)
		require.Equal(t, want.Funct3, got.Funct3)
		require.Equal(t, want.Imm, got.Imm)

		reencoded := isa.Encode(got)
		require.Equal(t, word, reencoded)
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	_, err := isa.Decode(0x0000007F)
	require.Error(t, err)
	var decErr *isa.ErrDecode
	require.ErrorAs(t, err, &decErr)
}

func TestSignExtend(t *testing.T) {
	require.Equal(t, int32(-1), isa.SignExtend(0xFFF, 12))
	require.Equal(t, int32(2047), isa.SignExtend(0x7FF, 12))
	require.Equal(t, int32(-2048), isa.SignExtend(0x800, 12))
	require.Equal(t, int32(5), isa.SignExtend(5, 32))
}

func TestEncodeCoversEveryFormatConstant(t *testing.T) {
	// One minimal, valid instruction per isa.Format constant. If a new
	// format is ever added to format.go without a matching case in
	// Encode's switch, this falls through to the "default: panic" arm
	// and fails this test instead of panicking in production code.
	formats := []struct {
		name string
		inst isa.Instruction
	}{
		{"FormatR", isa.Instruction{Format: isa.FormatR, Opcode: isa.OpcodeRType}},
		{"FormatI", isa.Instruction{Format: isa.FormatI, Opcode: isa.OpcodeIType}},
		{"FormatS", isa.Instruction{Format: isa.FormatS, Opcode: isa.OpcodeSType}},
		{"FormatB", isa.Instruction{Format: isa.FormatB, Opcode: isa.OpcodeBType}},
		{"FormatU", isa.Instruction{Format: isa.FormatU, Opcode: isa.OpcodeLUI}},
		{"FormatJ", isa.Instruction{Format: isa.FormatJ, Opcode: isa.OpcodeJAL}},
	}

	require.Len(t, formats, int(isa.FormatJ)+1, "a new isa.Format constant was added without a case here")

	for _, f := range formats {
		require.NotPanics(t, func() {
			isa.Encode(f.inst)
		}, f.name)
	}
}

func TestRegisterNames(t *testing.T) {
	require.Equal(t, uint32(0), isa.RegisterNames["zero"])
	require.Equal(t, uint32(2), isa.RegisterNames["sp"])
	require.Equal(t, uint32(10), isa.RegisterNames["a0"])
	require.Equal(t, uint32(17), isa.RegisterNames["a7"])
	require.Equal(t, uint32(8), isa.RegisterNames["fp"])
	require.Equal(t, uint32(8), isa.RegisterNames["s0"])
	require.Equal(t, uint32(31), isa.RegisterNames["x31"])
	require.Equal(t, uint32(31), isa.RegisterNames["t6"])

	require.Equal(t, "a0", isa.RegisterName(10))
	require.Equal(t, "sp", isa.RegisterName(2))
	require.Equal(t, "t6", isa.RegisterName(31))
	require.Equal(t, "", isa.RegisterName(99))
}
