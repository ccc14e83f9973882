package cpu

import "github.com/rvtoolchain/rv32i/isa"

func (c *CPU) executeRType(inst isa.Instruction) Status {
	a, b := c.Register(inst.Rs1), c.Register(inst.Rs2)

	var result uint32
	var ok bool
	if inst.Funct7 == isa.Funct7MExtension {
		result, ok = mExtOp(inst.Funct3, a, b)
	} else {
		result, ok = aluOp(inst.Funct3, inst.Funct7, a, b)
	}
	if !ok {
		return IllegalInstruction
	}

	c.SetRegister(inst.Rd, result)
	return OK
}
