package assembler

import "strings"

// pseudoSize returns the number of bytes a pseudo-instruction expands to.
// Pass 1 uses it for sizing; pass 2 emits through expandPseudo, which
// applies the same literal-and-fits-12-bit test for li, so the emitted
// expansion has the size reported here.
func pseudoSize(mnemonic string, operands []string) (size int, isPseudo bool) {
	switch strings.ToLower(mnemonic) {
	case "nop", "mv", "j", "call", "ret":
		return 4, true
	case "la":
		return 8, true
	case "li":
		if len(operands) < 2 {
			return 4, true
		}
		if imm, ok := ParseImm(operands[1], nil); ok && isLiteral(operands[1]) && fitsSigned12(imm) {
			return 4, true
		}
		return 8, true
	default:
		return 0, false
	}
}
