package cpu

import (
	"github.com/rvtoolchain/rv32i/isa"
	"github.com/rvtoolchain/rv32i/memory"
)

func (c *CPU) executeSType(inst isa.Instruction, mem *memory.Memory) Status {
	addr := c.Register(inst.Rs1) + uint32(inst.Imm)
	value := c.Register(inst.Rs2)

	var status memory.Status
	switch inst.Funct3 {
	case 0x0: // sb
		status = mem.Write8(addr, uint8(value))
	case 0x1: // sh
		status = mem.Write16(addr, uint16(value))
	case 0x2: // sw
		status = mem.Write32(addr, value)
	default:
		return IllegalInstruction
	}

	return memStatusToStep(status)
}
