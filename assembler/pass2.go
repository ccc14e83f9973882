package assembler

import (
	"strings"

	"github.com/rvtoolchain/rv32i/isa"
)

// pass2State rewinds the input and re-walks it with labels resolved,
// expanding pseudo-instructions and encoding real ones into img at the
// position their pass-1 offset (now absolute) reserved.
type pass2State struct {
	img     []byte
	labels  map[string]uint32
	cursors map[string]uint32 // per-section write cursor, starts at base
	sect    map[string]*section
	current string
}

func runPass2(source string, st *pass1State, labels map[string]uint32, totalSize uint32) ([]byte, error) {
	p2 := &pass2State{
		img:     make([]byte, totalSize),
		labels:  labels,
		cursors: map[string]uint32{},
		sect:    st.sections,
		current: ".text",
	}
	for name, s := range st.sections {
		p2.cursors[name] = s.base
	}

	lines := strings.Split(source, "\n")
	for lineNo, raw := range lines {
		line := Trim(stripComment(raw))
		if line == "" {
			continue
		}
		if err := p2.processLine(line, lineNo); err != nil {
			return nil, err
		}
	}

	return p2.img, nil
}

func (p2 *pass2State) pc() uint32 { return p2.cursors[p2.current] }

func (p2 *pass2State) advance(n uint32) { p2.cursors[p2.current] += n }

func (p2 *pass2State) processLine(line string, lineNo int) error {
	if idx := strings.IndexByte(line, ':'); idx >= 0 && isLabelDef(line[:idx]) {
		rest := Trim(line[idx+1:])
		if rest == "" {
			return nil
		}
		return p2.processLine(rest, lineNo)
	}

	if strings.HasPrefix(line, ".") {
		return p2.emitDirective(line, lineNo)
	}

	mnemonic, operands := splitMnemonicOperands(line)
	return p2.emitInstruction(mnemonic, operands, lineNo)
}

func (p2 *pass2State) emitDirective(line string, lineNo int) error {
	name, rest := splitDirective(line)
	switch strings.ToLower(name) {
	case ".section":
		sectionName := Trim(strings.Split(rest, ",")[0])
		p2.current = sectionName
	case ".text", ".data", ".rodata", ".bss":
		p2.current = name
	case ".globl", ".global":
	case ".ascii", ".asciiz":
		content, _, err := extractQuoted(rest, lineNo)
		if err != nil {
			return err
		}
		decoded, err := ParseEscapedString(content, lineNo)
		if err != nil {
			return err
		}
		if strings.ToLower(name) == ".asciiz" {
			decoded = append(decoded, 0)
		}
		for _, b := range decoded {
			p2.img[p2.pc()] = b
			p2.advance(1)
		}
	case ".byte":
		for _, op := range splitOperands(rest) {
			v, ok := ParseImm(op, p2.labels)
			if !ok {
				return Err.InvalidIntegerLiteral(op, lineNo)
			}
			p2.img[p2.pc()] = byte(v)
			p2.advance(1)
		}
	case ".half":
		for _, op := range splitOperands(rest) {
			v, ok := ParseImm(op, p2.labels)
			if !ok {
				return Err.InvalidIntegerLiteral(op, lineNo)
			}
			p2.img[p2.pc()] = byte(v)
			p2.img[p2.pc()+1] = byte(v >> 8)
			p2.advance(2)
		}
	case ".word":
		for _, op := range splitOperands(rest) {
			v, ok := ParseImm(op, p2.labels)
			if !ok {
				return Err.InvalidIntegerLiteral(op, lineNo)
			}
			p2.writeWordAt(p2.pc(), uint32(v))
			p2.advance(4)
		}
	case ".space":
		n, ok := ParseImm(Trim(rest), p2.labels)
		if !ok {
			return Err.InvalidIntegerLiteral(rest, lineNo)
		}
		p2.advance(uint32(n))
	default:
		return Err.InvalidDataDirective(name, lineNo)
	}
	return nil
}

func (p2 *pass2State) writeWordAt(addr uint32, word uint32) {
	p2.img[addr] = byte(word)
	p2.img[addr+1] = byte(word >> 8)
	p2.img[addr+2] = byte(word >> 16)
	p2.img[addr+3] = byte(word >> 24)
}

func (p2 *pass2State) emitInstruction(mnemonic string, operands []string, lineNo int) error {
	if expansion, isPseudo, err := expandPseudo(mnemonic, operands, p2.pc(), p2.labels, lineNo); isPseudo {
		if err != nil {
			return err
		}
		for _, real := range expansion {
			if err := p2.emitReal(real.mnemonic, real.operands, lineNo); err != nil {
				return err
			}
		}
		return nil
	}

	return p2.emitReal(mnemonic, operands, lineNo)
}

func (p2 *pass2State) emitReal(mnemonic string, operands []string, lineNo int) error {
	def, ok := instrTable[strings.ToLower(mnemonic)]
	if !ok {
		return Err.UnknownMnemonic(mnemonic, lineNo)
	}

	inst, err := p2.buildInstruction(mnemonic, def, operands, lineNo)
	if err != nil {
		return err
	}

	p2.writeWordAt(p2.pc(), isa.Encode(inst))
	p2.advance(4)
	return nil
}

func (p2 *pass2State) buildInstruction(mnemonic string, def instrDef, operands []string, lineNo int) (isa.Instruction, error) {
	inst := isa.Instruction{Format: def.format, Opcode: def.opcode, Funct3: def.funct3, Funct7: def.funct7}

	switch def.format {
	case isa.FormatR:
		if len(operands) != 3 {
			return inst, Err.WrongOperandCount(mnemonic, 3, len(operands), lineNo)
		}
		rd, ok1 := RegNum(operands[0])
		rs1, ok2 := RegNum(operands[1])
		rs2, ok3 := RegNum(operands[2])
		if !ok1 || !ok2 || !ok3 {
			return inst, Err.InvalidRegister(mnemonic, lineNo)
		}
		inst.Rd, inst.Rs1, inst.Rs2 = rd, rs1, rs2

	case isa.FormatI:
		switch def.opcode {
		case isa.OpcodeMemIType: // rd, imm, rs1
			if len(operands) != 3 {
				return inst, Err.WrongOperandCount(mnemonic, 3, len(operands), lineNo)
			}
			rd, ok1 := RegNum(operands[0])
			imm, ok2 := ParseImm(operands[1], p2.labels)
			rs1, ok3 := RegNum(operands[2])
			if !ok1 || !ok2 || !ok3 {
				return inst, Err.InvalidRegister(mnemonic, lineNo)
			}
			inst.Rd, inst.Imm, inst.Rs1 = rd, imm, rs1
		case isa.OpcodeJALR: // rd, rs1, imm
			if len(operands) != 3 {
				return inst, Err.WrongOperandCount(mnemonic, 3, len(operands), lineNo)
			}
			rd, ok1 := RegNum(operands[0])
			rs1, ok2 := RegNum(operands[1])
			imm, ok3 := ParseImm(operands[2], p2.labels)
			if !ok1 || !ok2 || !ok3 {
				return inst, Err.InvalidRegister(mnemonic, lineNo)
			}
			inst.Rd, inst.Rs1, inst.Imm = rd, rs1, imm
		case isa.OpcodeSystem: // ecall/ebreak take no operands
			if strings.ToLower(mnemonic) == "ebreak" {
				inst.Imm = 1
			}
		default: // ALU-immediate: rd, rs1, imm (or shamt for shifts)
			if len(operands) != 3 {
				return inst, Err.WrongOperandCount(mnemonic, 3, len(operands), lineNo)
			}
			rd, ok1 := RegNum(operands[0])
			rs1, ok2 := RegNum(operands[1])
			if !ok1 || !ok2 {
				return inst, Err.InvalidRegister(mnemonic, lineNo)
			}
			imm, ok3 := ParseImm(operands[2], p2.labels)
			if !ok3 {
				return inst, Err.InvalidIntegerLiteral(operands[2], lineNo)
			}
			if shiftInstrs[strings.ToLower(mnemonic)] {
				imm &= 0x1F
				if def.funct7 == 0x20 {
					imm |= 0x400
				}
			}
			inst.Rd, inst.Rs1, inst.Imm = rd, rs1, imm
		}

	case isa.FormatS: // rs2, imm, rs1
		if len(operands) != 3 {
			return inst, Err.WrongOperandCount(mnemonic, 3, len(operands), lineNo)
		}
		rs2, ok1 := RegNum(operands[0])
		imm, ok2 := ParseImm(operands[1], p2.labels)
		rs1, ok3 := RegNum(operands[2])
		if !ok1 || !ok2 || !ok3 {
			return inst, Err.InvalidRegister(mnemonic, lineNo)
		}
		inst.Rs2, inst.Imm, inst.Rs1 = rs2, imm, rs1

	case isa.FormatB: // rs1, rs2, label
		if len(operands) != 3 {
			return inst, Err.WrongOperandCount(mnemonic, 3, len(operands), lineNo)
		}
		rs1, ok1 := RegNum(operands[0])
		rs2, ok2 := RegNum(operands[1])
		if !ok1 || !ok2 {
			return inst, Err.InvalidRegister(mnemonic, lineNo)
		}
		target, ok3 := resolveAddr(operands[2], p2.labels)
		if !ok3 {
			return inst, Err.UndefinedLabel(operands[2], lineNo)
		}
		inst.Rs1, inst.Rs2, inst.Imm = rs1, rs2, int32(target-p2.pc())

	case isa.FormatU: // rd, imm20 (the textual operand is the unshifted
		// upper 20 bits, per RISC-V assembly convention; isa.Encode's
		// contract expects the pre-shifted form, so this is where the
		// shift happens, once, on the way into the encoder).
		if len(operands) != 2 {
			return inst, Err.WrongOperandCount(mnemonic, 2, len(operands), lineNo)
		}
		rd, ok1 := RegNum(operands[0])
		imm, ok2 := ParseImm(operands[1], p2.labels)
		if !ok1 || !ok2 {
			return inst, Err.InvalidRegister(mnemonic, lineNo)
		}
		inst.Rd, inst.Imm = rd, imm<<12

	case isa.FormatJ: // rd, label
		if len(operands) != 2 {
			return inst, Err.WrongOperandCount(mnemonic, 2, len(operands), lineNo)
		}
		rd, ok1 := RegNum(operands[0])
		if !ok1 {
			return inst, Err.InvalidRegister(mnemonic, lineNo)
		}
		target, ok2 := resolveAddr(operands[1], p2.labels)
		if !ok2 {
			return inst, Err.UndefinedLabel(operands[1], lineNo)
		}
		inst.Rd, inst.Imm = rd, int32(target-p2.pc())
	}

	return inst, nil
}

// resolveAddr resolves a label name or a bare numeric address.
func resolveAddr(token string, labels map[string]uint32) (uint32, bool) {
	if addr, ok := labels[token]; ok {
		return addr, true
	}
	v, ok := ParseImm(token, nil)
	if !ok || !isLiteral(token) {
		return 0, false
	}
	return uint32(v), true
}
