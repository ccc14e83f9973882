package isa

import "fmt"

// NumRegisters is the number of integer registers in the RV32I register
// file, x0 through x31.
const NumRegisters = 32

// RegisterNames maps every ABI register alias to its numeric index.
var RegisterNames = buildRegisterNames()

func buildRegisterNames() map[string]uint32 {
	m := map[string]uint32{
		"zero": 0,
		"ra":   1,
		"sp":   2,
		"gp":   3,
		"tp":   4,
		"fp":   8, // alias for s0
	}
	for i := 0; i <= 31; i++ {
		m[fmt.Sprintf("x%d", i)] = uint32(i)
	}
	tNames := []string{"t0", "t1", "t2"}
	for i, name := range tNames {
		m[name] = uint32(5 + i)
	}
	tNames2 := []string{"t3", "t4", "t5", "t6"}
	for i, name := range tNames2 {
		m[name] = uint32(28 + i)
	}
	sNames := []string{"s0", "s1"}
	for i, name := range sNames {
		m[name] = uint32(8 + i)
	}
	for i := 2; i <= 11; i++ {
		m[fmt.Sprintf("s%d", i)] = uint32(16 + i)
	}
	for i := 0; i <= 7; i++ {
		m[fmt.Sprintf("a%d", i)] = uint32(10 + i)
	}
	return m
}

// RegisterName returns the canonical ABI name for a register index
// (preferring a0..a7/s0..s11/t0..t6 style names over the raw x<n> form),
// or "" if idx is out of range.
func RegisterName(idx uint32) string {
	switch {
	case idx > 31:
		return ""
	case idx == 0:
		return "zero"
	case idx == 1:
		return "ra"
	case idx == 2:
		return "sp"
	case idx == 3:
		return "gp"
	case idx == 4:
		return "tp"
	case idx >= 5 && idx <= 7:
		return fmt.Sprintf("t%d", idx-5)
	case idx == 8:
		return "s0"
	case idx == 9:
		return "s1"
	case idx >= 10 && idx <= 17:
		return fmt.Sprintf("a%d", idx-10)
	case idx >= 18 && idx <= 27:
		return fmt.Sprintf("s%d", idx-16)
	case idx >= 28 && idx <= 31:
		return fmt.Sprintf("t%d", idx-28+3)
	default:
		return ""
	}
}
