package langserver

import (
	"strings"

	"github.com/rvtoolchain/rv32i/assembler"
)

// isTokenByte reports whether b can be part of an identifier/label/
// register/literal token, as opposed to a delimiter (whitespace, comma,
// parenthesis, colon).
func isTokenByte(b byte) bool {
	switch b {
	case ' ', '\t', ',', '(', ')', ':', '#':
		return false
	default:
		return true
	}
}

// tokenAt returns the token touching character offset char in line, and
// whether the character immediately after it is a label-defining colon.
func tokenAt(line string, char int) (token string, isLabelDef bool, ok bool) {
	if char < 0 || char > len(line) {
		return "", false, false
	}
	start, end := char, char
	for start > 0 && isTokenByte(line[start-1]) {
		start--
	}
	for end < len(line) && isTokenByte(line[end]) {
		end++
	}
	if start == end {
		return "", false, false
	}
	token = line[start:end]
	isLabelDef = end < len(line) && line[end] == ':'
	return token, isLabelDef, true
}

// hoverAt resolves the hover markdown for the token at (lineText, char),
// given the label table of the most recent successful assembly of the
// surrounding document.
func hoverAt(lineText string, char int, labels map[string]uint32) (string, bool) {
	token, isLabelDef, ok := tokenAt(lineText, char)
	if !ok {
		return "", false
	}

	lower := strings.ToLower(token)
	if text, ok := mnemonicHover[lower]; ok {
		return text, true
	}

	if idx, ok := assembler.RegNum(token); ok {
		return registerHover(lower, idx), true
	}

	if addr, ok := labels[token]; ok {
		if isLabelDef {
			return labelDefinitionHover(token, addr), true
		}
		return labelReferenceHover(token, addr), true
	}

	if v, ok := assembler.ParseImm(token, nil); ok && token != "" && (token[0] == '-' || (token[0] >= '0' && token[0] <= '9')) {
		return integerLiteralHover(token, v), true
	}

	return "", false
}
