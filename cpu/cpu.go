// Package cpu implements the RV32I fetch-decode-execute core: a 32-entry
// register file, program counter, and the Step method that advances the
// machine by exactly one instruction.
package cpu

import (
	"github.com/rvtoolchain/rv32i/isa"
	"github.com/rvtoolchain/rv32i/memory"
)

// Status is the sum type Step returns.
type Status int

const (
	OK Status = iota
	FetchMisaligned
	FetchOutOfBounds
	FetchError
	DecodeError
	ExecutionError
	IllegalInstruction
	SyscallExit
	Breakpoint
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case FetchMisaligned:
		return "fetch_misaligned"
	case FetchOutOfBounds:
		return "fetch_out_of_bounds"
	case FetchError:
		return "fetch_error"
	case DecodeError:
		return "decode_error"
	case ExecutionError:
		return "execution_error"
	case IllegalInstruction:
		return "illegal_instruction"
	case SyscallExit:
		return "syscall_exit"
	case Breakpoint:
		return "breakpoint"
	default:
		return "unknown"
	}
}

// Syscall is the interface the system-call handler satisfies; cpu depends
// only on this narrow surface so the syscall package can live independently
// and be swapped out in tests. a0..a2 are the x10..x12 argument registers,
// a7 is the x17 syscall number; the handler returns the value to place in
// a0 and whether the guest has requested an exit.
type Syscall interface {
	Handle(a7, a0, a1, a2 uint32, mem *memory.Memory) (result uint32, exit bool)
}

// CPU is a single RV32I hart: a 32-entry register file (x0 hard-wired to
// zero), a program counter, and a running flag.
type CPU struct {
	registers [isa.NumRegisters]uint32
	pc        uint32
	running   bool
	syscalls  Syscall
}

// New creates a CPU with all registers zeroed except sp (x2), which is
// initialized to memory.StackTop, and wires in the given syscall handler
// (may be nil if the program never issues ecall).
func New(syscalls Syscall) *CPU {
	c := &CPU{syscalls: syscalls, running: true}
	c.registers[2] = memory.StackTop
	return c
}

// SetPC sets the program counter.
func (c *CPU) SetPC(pc uint32) { c.pc = pc }

// PC returns the current program counter.
func (c *CPU) PC() uint32 { return c.pc }

// SetRegister writes a register. Writes to x0 are silently discarded.
func (c *CPU) SetRegister(idx uint32, value uint32) {
	if idx == 0 || idx >= isa.NumRegisters {
		return
	}
	c.registers[idx] = value
}

// Register reads a register. x0 always reads as zero.
func (c *CPU) Register(idx uint32) uint32 {
	if idx == 0 || idx >= isa.NumRegisters {
		return 0
	}
	return c.registers[idx]
}

// IsRunning reports whether the CPU has not yet executed an exit syscall.
func (c *CPU) IsRunning() bool { return c.running }

// Step performs one fetch-decode-execute cycle against mem.
func (c *CPU) Step(mem *memory.Memory) Status {
	if c.pc%4 != 0 {
		return FetchMisaligned
	}

	word, memStatus := mem.Read32(c.pc)
	switch memStatus {
	case memory.MisalignedError:
		return FetchMisaligned
	case memory.ReadError:
		return FetchOutOfBounds
	}

	inst, err := isa.Decode(word)
	if err != nil {
		return DecodeError
	}

	// PC is advanced immediately after a successful fetch; every PC-relative
	// executor below computes its base from pcAfterFetch-4, the address of
	// the instruction currently executing.
	pcAfterFetch := c.pc + 4
	c.pc = pcAfterFetch

	return c.execute(inst, pcAfterFetch, mem)
}

func (c *CPU) execute(inst isa.Instruction, pcAfterFetch uint32, mem *memory.Memory) Status {
	switch inst.Format {
	case isa.FormatR:
		return c.executeRType(inst)
	case isa.FormatI:
		return c.executeIType(inst, pcAfterFetch, mem)
	case isa.FormatS:
		return c.executeSType(inst, mem)
	case isa.FormatB:
		return c.executeBType(inst, pcAfterFetch)
	case isa.FormatU:
		return c.executeUType(inst, pcAfterFetch)
	case isa.FormatJ:
		return c.executeJType(inst, pcAfterFetch)
	default:
		return IllegalInstruction
	}
}
