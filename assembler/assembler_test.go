package assembler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rvtoolchain/rv32i/assembler"
	"github.com/rvtoolchain/rv32i/isa"
)

func decodeAt(t *testing.T, img []byte, addr uint32) isa.Instruction {
	t.Helper()
	word := uint32(img[addr]) | uint32(img[addr+1])<<8 | uint32(img[addr+2])<<16 | uint32(img[addr+3])<<24
	inst, err := isa.Decode(word)
	require.NoError(t, err)
	return inst
}

func TestPseudoInstructionSizing(t *testing.T) {
	src := `
		nop
		li x1, 42
		li x2, 0x12345
		mv x3, x4
	`
	res, err := assembler.Assemble(src)
	require.NoError(t, err)
	require.Equal(t, uint32(20), res.TextSize)
	require.Len(t, res.Image, 20)
}

func TestLiWithSmallLiteralExpandsToSingleAddi(t *testing.T) {
	res, err := assembler.Assemble("li x1, 42")
	require.NoError(t, err)
	require.Equal(t, uint32(4), res.TextSize)

	inst := decodeAt(t, res.Image, 0)
	require.Equal(t, isa.OpcodeIType, inst.Opcode)
	require.EqualValues(t, 1, inst.Rd)
	require.EqualValues(t, 0, inst.Rs1)
	require.EqualValues(t, 42, inst.Imm)
}

func TestLiWithLargeLiteralExpandsToLuiAddi(t *testing.T) {
	res, err := assembler.Assemble("li x2, 0x12345")
	require.NoError(t, err)
	require.Equal(t, uint32(8), res.TextSize)

	lui := decodeAt(t, res.Image, 0)
	addi := decodeAt(t, res.Image, 4)
	require.Equal(t, isa.OpcodeLUI, lui.Opcode)
	require.Equal(t, isa.OpcodeIType, addi.Opcode)

	// lui's pre-shifted immediate plus addi's sign-extended 12-bit
	// immediate must reconstruct 0x12345 exactly.
	require.Equal(t, int32(0x12345), lui.Imm+addi.Imm)
}

func TestLabelsResolveToAbsoluteAddresses(t *testing.T) {
	src := `
	start:
		addi x1, x0, 1
		jal  x0, start
	`
	res, err := assembler.Assemble(src)
	require.NoError(t, err)
	require.Equal(t, uint32(0), res.Labels["start"])

	jal := decodeAt(t, res.Image, 4)
	require.Equal(t, isa.OpcodeJAL, jal.Opcode)
	require.Equal(t, int32(-4), jal.Imm)
}

func TestBranchImmediateIsRelativeToBranchAddress(t *testing.T) {
	src := `
		addi x1, x0, 0
	loop:
		addi x1, x1, 1
		blt  x1, x2, loop
	`
	res, err := assembler.Assemble(src)
	require.NoError(t, err)

	branch := decodeAt(t, res.Image, 8)
	require.Equal(t, isa.OpcodeBType, branch.Opcode)
	require.Equal(t, int32(-4), branch.Imm)
}

func TestLoadStoreOffsetRegSyntax(t *testing.T) {
	res, err := assembler.Assemble("lw a0, 8(sp)")
	require.NoError(t, err)

	inst := decodeAt(t, res.Image, 0)
	require.Equal(t, isa.OpcodeMemIType, inst.Opcode)
	require.EqualValues(t, isa.RegisterNames["a0"], inst.Rd)
	require.EqualValues(t, isa.RegisterNames["sp"], inst.Rs1)
	require.Equal(t, int32(8), inst.Imm)
}

func TestDataDirectivesAreRelocatedAfterText(t *testing.T) {
	src := `
		addi x1, x0, 0
		.data
	msg:
		.byte 1, 2, 3
		.word 0xAABBCCDD
	`
	res, err := assembler.Assemble(src)
	require.NoError(t, err)
	require.Equal(t, uint32(4), res.TextSize)
	require.EqualValues(t, 4, res.Labels["msg"])
	require.Equal(t, byte(1), res.Image[4])
	require.Equal(t, byte(2), res.Image[5])
	require.Equal(t, byte(3), res.Image[6])
	require.Equal(t, uint32(0xAABBCCDD), uint32(res.Image[7])|uint32(res.Image[8])<<8|uint32(res.Image[9])<<16|uint32(res.Image[10])<<24)
}

func TestAsciizDirectiveNullTerminates(t *testing.T) {
	src := `
		.data
	greeting:
		.asciiz "hi"
	`
	res, err := assembler.Assemble(src)
	require.NoError(t, err)
	require.Equal(t, []byte{'h', 'i', 0}, res.Image[0:3])
}

func TestBssReservesZeroedSpace(t *testing.T) {
	src := `
		addi x1, x0, 0
		.bss
	buf:
		.space 16
	`
	res, err := assembler.Assemble(src)
	require.NoError(t, err)
	require.EqualValues(t, 4, res.Labels["buf"])
	require.Len(t, res.Image, 20)
	for _, b := range res.Image[4:20] {
		require.Equal(t, byte(0), b)
	}
}

func TestDuplicateLabelIsAnError(t *testing.T) {
	src := `
	start:
		nop
	start:
		nop
	`
	_, err := assembler.Assemble(src)
	require.Error(t, err)
}

func TestUndefinedLabelIsAnError(t *testing.T) {
	_, err := assembler.Assemble("jal x0, nowhere")
	require.Error(t, err)
}

func TestUnknownMnemonicIsAnError(t *testing.T) {
	_, err := assembler.Assemble("frobnicate x1, x2")
	require.Error(t, err)
}

func TestUnknownDirectiveIsAnError(t *testing.T) {
	_, err := assembler.Assemble(".wat x1")
	require.Error(t, err)
}

func TestLaComputesPcRelativeOffset(t *testing.T) {
	src := `
		la x1, target
	target:
		nop
	`
	res, err := assembler.Assemble(src)
	require.NoError(t, err)

	auipc := decodeAt(t, res.Image, 0)
	addi := decodeAt(t, res.Image, 4)
	require.Equal(t, isa.OpcodeAUIPC, auipc.Opcode)
	require.Equal(t, int32(8), auipc.Imm+addi.Imm)
}

func TestCallAndRetExpandToJalAndJalr(t *testing.T) {
	src := `
	main:
		call sub
		nop
	sub:
		ret
	`
	res, err := assembler.Assemble(src)
	require.NoError(t, err)

	call := decodeAt(t, res.Image, 0)
	ret := decodeAt(t, res.Image, 8)
	require.Equal(t, isa.OpcodeJAL, call.Opcode)
	require.EqualValues(t, 1, call.Rd)
	require.Equal(t, isa.OpcodeJALR, ret.Opcode)
	require.EqualValues(t, 0, ret.Rd)
	require.EqualValues(t, 1, ret.Rs1)
}

func TestMExtensionInstructionEncodes(t *testing.T) {
	res, err := assembler.Assemble("rem x3, x1, x2")
	require.NoError(t, err)

	inst := decodeAt(t, res.Image, 0)
	require.Equal(t, isa.OpcodeRType, inst.Opcode)
	require.Equal(t, isa.Funct7MExtension, inst.Funct7)
	require.EqualValues(t, 0x6, inst.Funct3)
}

func TestShiftImmediateEncodesFunct7InUpperImmBits(t *testing.T) {
	res, err := assembler.Assemble("srai x1, x2, 5")
	require.NoError(t, err)

	inst := decodeAt(t, res.Image, 0)
	require.Equal(t, int32(0x405), inst.Imm)
}

func TestCommentsAndBlankLinesAreIgnored(t *testing.T) {
	src := `
	# this is a whole-line comment
	nop # trailing comment

	nop
	`
	res, err := assembler.Assemble(src)
	require.NoError(t, err)
	require.Equal(t, uint32(8), res.TextSize)
}
