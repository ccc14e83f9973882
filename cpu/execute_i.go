package cpu

import (
	"github.com/rvtoolchain/rv32i/isa"
	"github.com/rvtoolchain/rv32i/memory"
)

func (c *CPU) executeIType(inst isa.Instruction, pcAfterFetch uint32, mem *memory.Memory) Status {
	switch inst.Opcode {
	case isa.OpcodeIType:
		return c.executeALUImm(inst)
	case isa.OpcodeMemIType:
		return c.executeLoad(inst, mem)
	case isa.OpcodeJALR:
		return c.executeJALR(inst, pcAfterFetch)
	case isa.OpcodeSystem:
		return c.executeSystem(inst, mem)
	default:
		return IllegalInstruction
	}
}

func (c *CPU) executeALUImm(inst isa.Instruction) Status {
	a := c.Register(inst.Rs1)
	b := uint32(inst.Imm)

	funct7 := uint32(0)
	if inst.Funct3 == 0x1 || inst.Funct3 == 0x5 {
		// slli/srli/srai: shift amount is the low 5 bits of imm, and the
		// arithmetic/logical choice rides in what would be funct7 for an
		// R-type encoding, bits [11:5] of the immediate's source word.
		b = uint32(inst.Imm) & 0x1F
		if inst.Funct3 == 0x5 && (inst.Imm&0x400) != 0 {
			funct7 = 0x20
		}
	}

	result, ok := aluOp(inst.Funct3, funct7, a, b)
	if !ok {
		return IllegalInstruction
	}
	c.SetRegister(inst.Rd, result)
	return OK
}

func (c *CPU) executeLoad(inst isa.Instruction, mem *memory.Memory) Status {
	addr := c.Register(inst.Rs1) + uint32(inst.Imm)

	var value uint32
	switch inst.Funct3 {
	case 0x0: // lb
		b, status := mem.Read8(addr)
		if status != memory.OK {
			return memStatusToStep(status)
		}
		value = uint32(isa.SignExtend(uint32(b), 8))
	case 0x1: // lh
		h, status := mem.Read16(addr)
		if status != memory.OK {
			return memStatusToStep(status)
		}
		value = uint32(isa.SignExtend(uint32(h), 16))
	case 0x2: // lw
		w, status := mem.Read32(addr)
		if status != memory.OK {
			return memStatusToStep(status)
		}
		value = w
	case 0x4: // lbu
		b, status := mem.Read8(addr)
		if status != memory.OK {
			return memStatusToStep(status)
		}
		value = uint32(b)
	case 0x5: // lhu
		h, status := mem.Read16(addr)
		if status != memory.OK {
			return memStatusToStep(status)
		}
		value = uint32(h)
	default:
		return IllegalInstruction
	}

	c.SetRegister(inst.Rd, value)
	return OK
}

func (c *CPU) executeJALR(inst isa.Instruction, pcAfterFetch uint32) Status {
	target := (c.Register(inst.Rs1) + uint32(inst.Imm)) &^ 1
	c.SetRegister(inst.Rd, pcAfterFetch)
	c.pc = target
	return OK
}

func (c *CPU) executeSystem(inst isa.Instruction, mem *memory.Memory) Status {
	switch inst.Imm & 0xFFF {
	case 0x000: // ecall
		if c.syscalls == nil {
			return ExecutionError
		}
		a7 := c.Register(17)
		a0 := c.Register(10)
		a1 := c.Register(11)
		a2 := c.Register(12)
		result, exit := c.syscalls.Handle(a7, a0, a1, a2, mem)
		c.SetRegister(10, result)
		if exit {
			c.running = false
			return SyscallExit
		}
		return OK
	case 0x001: // ebreak
		return Breakpoint
	default:
		return IllegalInstruction
	}
}

// memStatusToStep converts a non-fetch memory status (load/store) to a CPU
// step status. Unlike instruction fetch, both misalignment and
// out-of-bounds access during execute surface uniformly as an execution
// error; only fetch distinguishes the two.
func memStatusToStep(status memory.Status) Status {
	if status == memory.OK {
		return OK
	}
	return ExecutionError
}
