package langserver

import "fmt"

// mnemonicHover is the markdown hover text for every real RV32I(+M)
// mnemonic, grounded on assembler/hoverInfo.go's hoverInfoFormatsType
// table verbatim. The pseudo-instructions have their own entries here,
// each describing its expansion, and hoverAt looks them up directly.
var mnemonicHover = map[string]string{
	"add":  "Addition Instruction.\n\nFormat: `add <dst reg>, <src reg>, <src reg>`\n\nExample: `add x10, x11, x12` is the same as `x10 = x11 + x12`",
	"sub":  "Subtraction Instruction.\n\nFormat: `sub <dst reg>, <src reg>, <src reg>`\n\nExample: `sub x10, x11, x12` is the same as `x10 = x11 - x12`",
	"xor":  "XOR Instruction.\n\nFormat: `xor <dst reg>, <src reg>, <src reg>`\n\nExample: `xor x10, x11, x12` is the same as `x10 = x11 ^ x12`",
	"or":   "OR Instruction.\n\nFormat: `or <dst reg>, <src reg>, <src reg>`\n\nExample: `or x10, x11, x12` is the same as `x10 = x11 | x12`",
	"and":  "AND Instruction.\n\nFormat: `and <dst reg>, <src reg>, <src reg>`\n\nExample: `and x10, x11, x12` is the same as `x10 = x11 & x12`",
	"sll":  "Shift Left Logical Instruction.\n\nFormat: `sll <dst reg>, <src reg>, <amt reg>`\n\nExample: `sll x10, x11, x12` is the same as `x10 = x11 << x12`",
	"srl":  "Shift Right Logical Instruction.\n\nFormat: `srl <dst reg>, <src reg>, <amt reg>`\n\nExample: `srl x10, x11, x12` is the same as `x10 = x11 >> x12`",
	"sra":  "Shift Right Arithmetic Instruction.\n\nFormat: `sra <dst reg>, <src reg>, <amt reg>`\n\nExample: `sra x10, x11, x12` is the same as `x10 = x11 >> x12`\n\nThe most-significant bit is copied into each bit shifted in, unlike `srl`.",
	"slt":  "Set Less Than Instruction.\n\nFormat: `slt <dst reg>, <src reg>, <src reg>`\n\n`x10 = 1` if `x11 < x12`, else `0`. Signed comparison.",
	"sltu": "Set Less Than Unsigned Instruction.\n\nFormat: `sltu <dst reg>, <src reg>, <src reg>`\n\n`x10 = 1` if `x11 < x12`, else `0`. Unsigned comparison.",

	"addi":  "Addition Immediate Instruction.\n\nFormat: `addi <dst reg>, <src reg>, <imm>`\n\nExample: `addi x10, x11, 2035` is the same as `x10 = x11 + 2035`\n\nThe immediate is signed 12-bit: -2048 to 2047.",
	"xori":  "XOR Immediate Instruction.\n\nFormat: `xori <dst reg>, <src reg>, <imm>`\n\nImmediate is 12-bit: -2048 to 2047.",
	"ori":   "OR Immediate Instruction.\n\nFormat: `ori <dst reg>, <src reg>, <imm>`\n\nImmediate is 12-bit: -2048 to 2047.",
	"andi":  "AND Immediate Instruction.\n\nFormat: `andi <dst reg>, <src reg>, <imm>`\n\nImmediate is 12-bit: -2048 to 2047.",
	"slli":  "Shift Left Logical Immediate Instruction.\n\nFormat: `slli <dst reg>, <src reg>, <amt>`\n\n`<amt>` is unsigned 5-bit: 0 to 31.",
	"srli":  "Shift Right Logical Immediate Instruction.\n\nFormat: `srli <dst reg>, <src reg>, <amt>`\n\n`<amt>` is unsigned 5-bit: 0 to 31.",
	"srai":  "Shift Right Arithmetic Immediate Instruction.\n\nFormat: `srai <dst reg>, <src reg>, <amt>`\n\n`<amt>` is unsigned 5-bit: 0 to 31. Sign bit is preserved.",
	"slti":  "Set Less Than Immediate Instruction.\n\nFormat: `slti <dst reg>, <src reg>, <imm>`\n\nSigned comparison against a signed 12-bit immediate.",
	"sltiu": "Set Less Than Unsigned Immediate Instruction.\n\nFormat: `sltiu <dst reg>, <src reg>, <imm>`\n\nUnsigned comparison against a signed 12-bit immediate.",

	"lb":  "Load Byte Instruction.\n\nFormat: `lb <dst reg>, <imm>(<base reg>)`\n\nSign-extends the loaded byte.",
	"lh":  "Load Halfword Instruction.\n\nFormat: `lh <dst reg>, <imm>(<base reg>)`\n\nSign-extends the loaded halfword.",
	"lw":  "Load Word Instruction.\n\nFormat: `lw <dst reg>, <imm>(<base reg>)`",
	"lbu": "Load Byte Unsigned Instruction.\n\nFormat: `lbu <dst reg>, <imm>(<base reg>)`\n\nZero-extends the loaded byte.",
	"lhu": "Load Halfword Unsigned Instruction.\n\nFormat: `lhu <dst reg>, <imm>(<base reg>)`\n\nZero-extends the loaded halfword.",

	"sb": "Store Byte Instruction.\n\nFormat: `sb <src reg>, <imm>(<base reg>)`",
	"sh": "Store Halfword Instruction.\n\nFormat: `sh <src reg>, <imm>(<base reg>)`",
	"sw": "Store Word Instruction.\n\nFormat: `sw <src reg>, <imm>(<base reg>)`",

	"beq":  "Branch Equal Instruction.\n\nFormat: `beq <reg>, <reg>, <label or imm>`",
	"bne":  "Branch Not Equal Instruction.\n\nFormat: `bne <reg>, <reg>, <label or imm>`",
	"blt":  "Branch Less Than Instruction.\n\nFormat: `blt <reg>, <reg>, <label or imm>`\n\nSigned comparison.",
	"bge":  "Branch Greater Than or Equal Instruction.\n\nFormat: `bge <reg>, <reg>, <label or imm>`\n\nSigned comparison.",
	"bltu": "Branch Less Than Unsigned Instruction.\n\nFormat: `bltu <reg>, <reg>, <label or imm>`\n\nUnsigned comparison.",
	"bgeu": "Branch Greater Than or Equal Unsigned Instruction.\n\nFormat: `bgeu <reg>, <reg>, <label or imm>`\n\nUnsigned comparison.",

	"jal":  "Jump and Link Instruction.\n\nFormat: `jal <dst reg>, <label or imm>`\n\n`<dst reg> = pc + 4`, then jumps.",
	"jalr": "Jump and Link Register Instruction.\n\nFormat: `jalr <dst reg>, <src reg>, <imm>`\n\nTarget is `(<src reg> + <imm>) & ~1`.",

	"lui":   "Load Upper Immediate Instruction.\n\nFormat: `lui <dst reg>, <imm>`\n\nExample: `lui x10, 0x12345` sets `x10 = 0x12345000`. `<imm>` is the unshifted upper 20 bits.",
	"auipc": "Add Upper Immediate to PC Instruction.\n\nFormat: `auipc <dst reg>, <imm>`\n\nExample: `auipc x10, 0x12345` sets `x10 = pc + 0x12345000`.",

	"ecall":  "Environment Call Instruction.\n\nFormat: `ecall`\n\nInvokes the syscall numbered in `a7`, with arguments in `a0`-`a2`; the result or error code is returned in `a0`.",
	"ebreak": "Environment Break Instruction.\n\nFormat: `ebreak`\n\nTriggers a breakpoint; `Step` returns `Breakpoint` without advancing further.",

	"mul":    "Multiply Instruction.\n\n`x10 = x11 * x12` (low 32 bits).",
	"mulh":   "Multiply High (signed x signed) Instruction.\n\n`x10` = high 32 bits of the signed 64-bit product.",
	"mulhsu": "Multiply High (signed x unsigned) Instruction.\n\n`x10` = high 32 bits of the product, treating `<src reg 2>` as unsigned.",
	"mulhu":  "Multiply High (unsigned x unsigned) Instruction.\n\n`x10` = high 32 bits of the unsigned 64-bit product.",
	"div":    "Divide Instruction.\n\nSigned division. Division by zero yields `-1`; `INT32_MIN / -1` yields `INT32_MIN`.",
	"divu":   "Divide Unsigned Instruction.\n\nUnsigned division. Division by zero yields `0xFFFFFFFF`.",
	"rem":    "Remainder Instruction.\n\nSigned remainder. Remainder by zero yields the dividend.",
	"remu":   "Remainder Unsigned Instruction.\n\nUnsigned remainder. Remainder by zero yields the dividend.",

	"nop":  "No-Operation Pseudo-Instruction.\n\nExpands to `addi x0, x0, 0`.",
	"mv":   "Move Pseudo-Instruction.\n\nFormat: `mv <dst reg>, <src reg>`\n\nExpands to `addi <dst reg>, <src reg>, 0`.",
	"li":   "Load Immediate Pseudo-Instruction.\n\nFormat: `li <dst reg>, <imm>`\n\nExpands to a single `addi` if the value fits 12 signed bits, otherwise `lui`+`addi`.",
	"la":   "Load Address Pseudo-Instruction.\n\nFormat: `la <dst reg>, <label>`\n\nExpands to `auipc`+`addi` computing a PC-relative address.",
	"j":    "Jump Pseudo-Instruction.\n\nFormat: `j <label>`\n\nExpands to `jal x0, <label>`.",
	"call": "Call Pseudo-Instruction.\n\nFormat: `call <label>`\n\nExpands to `jal x1, <label>`, saving the return address in `ra`.",
	"ret":  "Return Pseudo-Instruction.\n\nExpands to `jalr x0, x1, 0`, jumping to the address in `ra`.",
}

var namedRegisterHover = map[string]string{
	"zero": "Zero Register `zero` (`x0`)\n\nAlways evaluates to `0`; writes to it are discarded.",
	"x0":   "Zero Register `zero` (`x0`)\n\nAlways evaluates to `0`; writes to it are discarded.",
	"ra":   "Return Address Register `ra` (`x1`)\n\nHolds the return address saved by `call`/`jal`.",
	"x1":   "Return Address Register `ra` (`x1`)\n\nHolds the return address saved by `call`/`jal`.",
	"sp":   "Stack Pointer Register `sp` (`x2`)\n\nHolds the address of the top of the stack.",
	"x2":   "Stack Pointer Register `sp` (`x2`)\n\nHolds the address of the top of the stack.",
	"gp":   "Global Pointer Register `gp` (`x3`)\n\nConventionally holds the start of the global data segment.",
	"x3":   "Global Pointer Register `gp` (`x3`)\n\nConventionally holds the start of the global data segment.",
	"tp":   "Thread Pointer Register `tp` (`x4`)\n\nConventionally holds thread-local storage.",
	"x4":   "Thread Pointer Register `tp` (`x4`)\n\nConventionally holds thread-local storage.",
}

func registerHover(name string, index uint32) string {
	if text, ok := namedRegisterHover[name]; ok {
		return text
	}
	if name != fmt.Sprintf("x%d", index) {
		return fmt.Sprintf("Register `%s` (`x%d`). 32-bit general-purpose register.", name, index)
	}
	return fmt.Sprintf("Register `x%d`. 32-bit general-purpose register.", index)
}

func integerLiteralHover(token string, value int32) string {
	return fmt.Sprintf("Integer literal `%s` (`%d`)", token, value)
}

func labelDefinitionHover(name string, addr uint32) string {
	return fmt.Sprintf("Definition of label `%s`.\n\nAddress `0x%X`", name, addr)
}

func labelReferenceHover(name string, addr uint32) string {
	return fmt.Sprintf("Reference to label `%s`.\n\nEvaluates to `0x%X`", name, addr)
}
