package assembler

import "strings"

// label is a symbol with a section-relative offset, later patched to an
// absolute address during relocation.
type label struct {
	name    string
	section string
	offset  uint32
}

// pass1State accumulates sections and label offsets while walking the
// source once.
type pass1State struct {
	sections    map[string]*section
	sectionList []string // first-seen order, for section ordering within a kind
	current     string
	labels      map[string]*label
}

func newPass1State() *pass1State {
	st := &pass1State{
		sections: map[string]*section{},
		labels:   map[string]*label{},
		current:  ".text",
	}
	st.ensureSection(".text")
	return st
}

func (st *pass1State) ensureSection(name string) *section {
	if s, ok := st.sections[name]; ok {
		return s
	}
	s := &section{name: name, kind: classifySection(name)}
	st.sections[name] = s
	st.sectionList = append(st.sectionList, name)
	return s
}

func (st *pass1State) curSection() *section {
	return st.sections[st.current]
}

// runPass1 walks source line by line, sizing every section and label.
func runPass1(source string) (*pass1State, error) {
	st := newPass1State()
	lines := strings.Split(source, "\n")

	for lineNo, raw := range lines {
		line := stripComment(raw)
		line = Trim(line)
		if line == "" {
			continue
		}

		if err := st.processLine(line, lineNo); err != nil {
			return nil, err
		}
	}

	return st, nil
}

func (st *pass1State) processLine(line string, lineNo int) error {
	// Label definition: identifier followed by ':'. The remainder is
	// re-classified so "label: instr" works on one line.
	if idx := strings.IndexByte(line, ':'); idx >= 0 && isLabelDef(line[:idx]) {
		name := Trim(line[:idx])
		if _, exists := st.labels[name]; exists {
			return Err.DuplicateLabel(name, lineNo)
		}
		st.labels[name] = &label{name: name, section: st.current, offset: st.curSection().size}
		rest := Trim(line[idx+1:])
		if rest == "" {
			return nil
		}
		return st.processLine(rest, lineNo)
	}

	if strings.HasPrefix(line, ".") {
		return st.sizeDirective(line, lineNo)
	}

	mnemonic, operands := splitMnemonicOperands(line)
	if size, isPseudo := pseudoSize(mnemonic, operands); isPseudo {
		st.curSection().size += uint32(size)
	} else {
		st.curSection().size += 4
	}
	return nil
}

func isLabelDef(token string) bool {
	token = Trim(token)
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if !(isAlnum(c) || c == '_') {
			return false
		}
	}
	return true
}

func (st *pass1State) sizeDirective(line string, lineNo int) error {
	name, rest := splitDirective(line)
	switch strings.ToLower(name) {
	case ".section":
		sectionName := Trim(strings.Split(rest, ",")[0])
		st.ensureSection(sectionName)
		st.current = sectionName
	case ".text", ".data", ".rodata", ".bss":
		st.ensureSection(name)
		st.current = name
	case ".globl", ".global":
		// no effect without a linker
	case ".ascii":
		str, _, err := extractQuoted(rest, lineNo)
		if err != nil {
			return err
		}
		decoded, err := ParseEscapedString(str, lineNo)
		if err != nil {
			return err
		}
		st.curSection().size += uint32(len(decoded))
	case ".asciiz":
		str, _, err := extractQuoted(rest, lineNo)
		if err != nil {
			return err
		}
		decoded, err := ParseEscapedString(str, lineNo)
		if err != nil {
			return err
		}
		st.curSection().size += uint32(len(decoded)) + 1
	case ".byte":
		st.curSection().size += uint32(countOperands(rest))
	case ".half":
		st.curSection().size += uint32(countOperands(rest)) * 2
	case ".word":
		st.curSection().size += uint32(countOperands(rest)) * 4
	case ".space":
		n, ok := ParseImm(Trim(rest), nil)
		if !ok {
			return Err.InvalidIntegerLiteral(rest, lineNo)
		}
		st.curSection().size += uint32(n)
	default:
		return Err.InvalidDataDirective(name, lineNo)
	}
	return nil
}

func splitDirective(line string) (name, rest string) {
	i := 0
	for i < len(line) && !isSpace(line[i]) {
		i++
	}
	return line[:i], Trim(line[i:])
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

func countOperands(rest string) int {
	ops := splitOperands(rest)
	return len(ops)
}

func extractQuoted(rest string, lineNo int) (content, remainder string, err error) {
	rest = Trim(rest)
	if len(rest) < 2 || rest[0] != '"' {
		return "", "", Err.MalformedString(lineNo)
	}
	end := strings.IndexByte(rest[1:], '"')
	if end < 0 {
		return "", "", Err.MalformedString(lineNo)
	}
	end += 1
	return rest[1:end], rest[end+1:], nil
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}

// splitMnemonicOperands extracts the opcode token and all comma-separated
// operand tokens from an instruction line; it does not limit their
// number, callers check the operand count.
func splitMnemonicOperands(line string) (mnemonic string, operands []string) {
	i := 0
	for i < len(line) && !isSpace(line[i]) {
		i++
	}
	mnemonic = line[:i]
	operands = splitOperands(Trim(line[i:]))
	return
}
