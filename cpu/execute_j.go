package cpu

import "github.com/rvtoolchain/rv32i/isa"

func (c *CPU) executeJType(inst isa.Instruction, pcAfterFetch uint32) Status {
	c.SetRegister(inst.Rd, pcAfterFetch)
	c.pc = pcAfterFetch + uint32(inst.Imm) - 4
	return OK
}
