package emulator

import "github.com/rvtoolchain/rv32i/isa"

// EncodeProgram is a small convenience for tests and the CLI driver: it
// assembles a slice of already-decoded isa.Instruction values into a flat
// little-endian byte image, skipping the textual assembler entirely.
func EncodeProgram(insts []isa.Instruction) []byte {
	buf := make([]byte, 0, len(insts)*4)
	for _, inst := range insts {
		word := isa.Encode(inst)
		buf = append(buf, byte(word), byte(word>>8), byte(word>>16), byte(word>>24))
	}
	return buf
}
