package cpu

// aluOp computes the base RV32I ALU operation selected by funct3 over
// operands a, b. funct7 only matters as 0x20, which selects sub for
// funct3 0x0 and sra for funct3 0x5; any other funct7 value is treated as
// 0x00 and is not rejected. ok is false only for a funct3 outside 0x0..0x7.
func aluOp(funct3, funct7 uint32, a, b uint32) (result uint32, ok bool) {
	switch funct3 {
	case 0x0:
		if funct7 == 0x20 {
			return a - b, true
		}
		return a + b, true
	case 0x1:
		return a << (b & 0x1F), true
	case 0x2:
		if int32(a) < int32(b) {
			return 1, true
		}
		return 0, true
	case 0x3:
		if a < b {
			return 1, true
		}
		return 0, true
	case 0x4:
		return a ^ b, true
	case 0x5:
		if funct7 == 0x20 {
			return uint32(int32(a) >> (b & 0x1F)), true
		}
		return a >> (b & 0x1F), true
	case 0x6:
		return a | b, true
	case 0x7:
		return a & b, true
	default:
		return 0, false
	}
}

// mExtOp computes the optional M-extension multiply/divide/remainder unit,
// selected by funct3 with funct7 fixed at isa.Funct7MExtension. Division
// and remainder by zero, and signed overflow, follow the RISC-V M-extension's
// defined trap-free results rather than a Go panic.
func mExtOp(funct3 uint32, a, b uint32) (result uint32, ok bool) {
	sa, sb := int32(a), int32(b)
	switch funct3 {
	case 0x0: // mul
		return a * b, true
	case 0x1: // mulh (signed x signed)
		return uint32(int64(sa) * int64(sb) >> 32), true
	case 0x2: // mulhsu (signed x unsigned)
		return uint32((int64(sa) * int64(uint64(b))) >> 32), true
	case 0x3: // mulhu (unsigned x unsigned)
		return uint32((uint64(a) * uint64(b)) >> 32), true
	case 0x4: // div
		if b == 0 {
			return 0xFFFFFFFF, true
		}
		if sa == -0x80000000 && sb == -1 {
			return a, true
		}
		return uint32(sa / sb), true
	case 0x5: // divu
		if b == 0 {
			return 0xFFFFFFFF, true
		}
		return a / b, true
	case 0x6: // rem
		if b == 0 {
			return a, true
		}
		if sa == -0x80000000 && sb == -1 {
			return 0, true
		}
		return uint32(sa % sb), true
	case 0x7: // remu
		if b == 0 {
			return a, true
		}
		return a % b, true
	default:
		return 0, false
	}
}
