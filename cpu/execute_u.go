package cpu

import "github.com/rvtoolchain/rv32i/isa"

func (c *CPU) executeUType(inst isa.Instruction, pcAfterFetch uint32) Status {
	switch inst.Opcode {
	case isa.OpcodeLUI:
		c.SetRegister(inst.Rd, uint32(inst.Imm))
	case isa.OpcodeAUIPC:
		c.SetRegister(inst.Rd, pcAfterFetch+uint32(inst.Imm)-4)
	default:
		return IllegalInstruction
	}
	return OK
}
