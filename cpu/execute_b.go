package cpu

import "github.com/rvtoolchain/rv32i/isa"

func (c *CPU) executeBType(inst isa.Instruction, pcAfterFetch uint32) Status {
	a, b := c.Register(inst.Rs1), c.Register(inst.Rs2)

	var taken bool
	switch inst.Funct3 {
	case 0x0: // beq
		taken = a == b
	case 0x1: // bne
		taken = a != b
	case 0x4: // blt
		taken = int32(a) < int32(b)
	case 0x5: // bge
		taken = int32(a) >= int32(b)
	case 0x6: // bltu
		taken = a < b
	case 0x7: // bgeu
		taken = a >= b
	default:
		return IllegalInstruction
	}

	if taken {
		c.pc = pcAfterFetch + uint32(inst.Imm) - 4
	}
	return OK
}
