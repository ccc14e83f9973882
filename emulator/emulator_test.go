package emulator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rvtoolchain/rv32i/cpu"
	"github.com/rvtoolchain/rv32i/emulator"
	"github.com/rvtoolchain/rv32i/isa"
)

func addi(rd, rs1 uint32, imm int32) isa.Instruction {
	return isa.Instruction{Format: isa.FormatI, Opcode: isa.OpcodeIType, Rd: rd, Rs1: rs1, Funct3: 0x0, Imm: imm}
}

func ecall() isa.Instruction {
	return isa.Instruction{Format: isa.FormatI, Opcode: isa.OpcodeSystem, Funct3: 0x0, Imm: 0}
}

func TestRunExitsWithA0(t *testing.T) {
	img := emulator.EncodeProgram([]isa.Instruction{
		addi(10, 0, 7),
		addi(17, 0, 93),
		ecall(),
	})

	result, err := emulator.Run(context.Background(), img, emulator.Config{LoadAddress: 0})
	require.NoError(t, err)
	require.Equal(t, cpu.SyscallExit, result.Status)
	require.Equal(t, uint32(7), result.ExitA0)
}

func TestRunHonorsStepLimit(t *testing.T) {
	// An infinite loop: jal x0, 0 (jump to self).
	img := emulator.EncodeProgram([]isa.Instruction{
		{Format: isa.FormatJ, Opcode: isa.OpcodeJAL, Rd: 0, Imm: 0},
	})

	result, err := emulator.Run(context.Background(), img, emulator.Config{LoadAddress: 0, StepLimit: 50})
	require.NoError(t, err)
	require.Equal(t, 50, result.Steps)
	require.Equal(t, cpu.OK, result.Status)
}

func TestRunInvokesObserverPerStep(t *testing.T) {
	img := emulator.EncodeProgram([]isa.Instruction{
		addi(10, 0, 1),
		addi(10, 10, 1),
		addi(17, 0, 93),
		ecall(),
	})

	var snapshots []emulator.Snapshot
	result, err := emulator.Run(context.Background(), img, emulator.Config{
		LoadAddress: 0,
		Observer: func(s emulator.Snapshot) {
			snapshots = append(snapshots, s)
		},
	})

	require.NoError(t, err)
	require.Equal(t, cpu.SyscallExit, result.Status)
	require.Len(t, snapshots, result.Steps)
	require.Equal(t, uint32(2), snapshots[1].Registers[10])
}

func TestRunRespectsContextCancellation(t *testing.T) {
	img := emulator.EncodeProgram([]isa.Instruction{
		{Format: isa.FormatJ, Opcode: isa.OpcodeJAL, Rd: 0, Imm: 0},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := emulator.Run(ctx, img, emulator.Config{LoadAddress: 0})
	require.Error(t, err)
}

func TestRunReportsLoadImageOutOfBounds(t *testing.T) {
	img := make([]byte, 32)
	_, err := emulator.Run(context.Background(), img, emulator.Config{
		LoadAddress: 0xFFFFFFF0,
		MemorySize:  64,
		StackWindow: emulator.NoStackWindow,
	})
	require.Error(t, err)
}
