package assembler

import (
	"fmt"
	"strings"
)

// realInstr is one concrete instruction produced by expanding a
// pseudo-instruction.
type realInstr struct {
	mnemonic string
	operands []string
}

// expandPseudo expands mnemonic into 1 or 2 real instructions if it is a
// pseudo-instruction, using pc (the address the expansion begins at) and
// labels (already resolved to absolute addresses) where needed.
func expandPseudo(mnemonic string, operands []string, pc uint32, labels map[string]uint32, lineNo int) (expansion []realInstr, isPseudo bool, err error) {
	switch strings.ToLower(mnemonic) {
	case "nop":
		return []realInstr{{"addi", []string{"x0", "x0", "0"}}}, true, nil

	case "mv":
		if len(operands) != 2 {
			return nil, true, Err.WrongOperandCount(mnemonic, 2, len(operands), lineNo)
		}
		return []realInstr{{"addi", []string{operands[0], operands[1], "0"}}}, true, nil

	case "j":
		if len(operands) != 1 {
			return nil, true, Err.WrongOperandCount(mnemonic, 1, len(operands), lineNo)
		}
		return []realInstr{{"jal", []string{"x0", operands[0]}}}, true, nil

	case "call":
		if len(operands) != 1 {
			return nil, true, Err.WrongOperandCount(mnemonic, 1, len(operands), lineNo)
		}
		return []realInstr{{"jal", []string{"x1", operands[0]}}}, true, nil

	case "ret":
		return []realInstr{{"jalr", []string{"x0", "x1", "0"}}}, true, nil

	case "li":
		if len(operands) != 2 {
			return nil, true, Err.WrongOperandCount(mnemonic, 2, len(operands), lineNo)
		}
		rd, token := operands[0], operands[1]
		if imm, ok := ParseImm(token, nil); ok && isLiteral(token) && fitsSigned12(imm) {
			return []realInstr{{"addi", []string{rd, "x0", token}}}, true, nil
		}
		addr, ok := resolveAddr(token, labels)
		if !ok {
			return nil, true, Err.UndefinedLabel(token, lineNo)
		}
		hi, lo := splitHiLo(int32(addr))
		return []realInstr{
			{"lui", []string{rd, fmt.Sprintf("%d", hi)}},
			{"addi", []string{rd, rd, fmt.Sprintf("%d", lo)}},
		}, true, nil

	case "la":
		if len(operands) != 2 {
			return nil, true, Err.WrongOperandCount(mnemonic, 2, len(operands), lineNo)
		}
		rd, sym := operands[0], operands[1]
		addr, ok := resolveAddr(sym, labels)
		if !ok {
			return nil, true, Err.UndefinedLabel(sym, lineNo)
		}
		offset := int32(addr - pc)
		hi, lo := splitHiLo(offset)
		return []realInstr{
			{"auipc", []string{rd, fmt.Sprintf("%d", hi)}},
			{"addi", []string{rd, rd, fmt.Sprintf("%d", lo)}},
		}, true, nil

	default:
		return nil, false, nil
	}
}

// splitHiLo splits a 32-bit value into a 20-bit upper part (hi, the
// operand a real `lui`/`auipc` expects) and a 12-bit signed lower part
// (lo, fed to the following `addi`), such that hi<<12 + sign-extend(lo)
// reconstructs value exactly.
func splitHiLo(value int32) (hi, lo int32) {
	lo = value & 0xFFF
	if lo >= 0x800 {
		lo -= 0x1000
	}
	hi = (value - lo) >> 12
	return hi, lo
}
