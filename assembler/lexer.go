package assembler

import (
	"strconv"
	"strings"

	"github.com/rvtoolchain/rv32i/isa"
)

// Trim removes leading/trailing whitespace. Diagnostics are rebuilt from
// line numbers alone (see langserver), so there is no need to track how
// many characters were trimmed off the front.
func Trim(line string) string {
	return strings.TrimSpace(line)
}

// RegNum matches the alphanumeric prefix of token against the ABI
// register table or the numeric x<0..31> form, returning the register
// index. Trailing punctuation (',' ')') is accepted as a terminator so
// callers can pass raw operand fragments straight from a comma split.
func RegNum(token string) (uint32, bool) {
	token = strings.TrimSpace(token)
	end := 0
	for end < len(token) && isAlnum(token[end]) {
		end++
	}
	name := strings.ToLower(token[:end])
	idx, ok := isa.RegisterNames[name]
	return idx, ok
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// ParseImm parses a decimal or hexadecimal integer literal. labels maps
// resolvable label names to their absolute addresses; pass nil during
// pass 1, when label values are not yet known (callers that need pass-1
// sizing never depend on a label's numeric value). If token names a
// label not present in labels, ok is false only when labels is non-nil;
// with labels == nil, unresolved identifiers return (0, true) so that
// pass 1 can size instructions without knowing label values yet.
func ParseImm(token string, labels map[string]uint32) (int32, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false
	}

	neg := false
	body := token
	if body[0] == '-' {
		neg = true
		body = body[1:]
	}

	if len(body) > 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		v, err := strconv.ParseInt(body[2:], 16, 64)
		if err != nil {
			return 0, false
		}
		if neg {
			v = -v
		}
		return int32(v), true
	}

	if isDecimal(body) {
		v, err := strconv.ParseInt(body, 10, 64)
		if err != nil {
			return 0, false
		}
		if neg {
			v = -v
		}
		return int32(v), true
	}

	// Not a literal: treat as a label reference.
	if labels == nil {
		return 0, true
	}
	addr, ok := labels[token]
	if !ok {
		return 0, false
	}
	return int32(addr), true
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isLiteral reports whether token is a numeric literal (decimal or hex,
// optionally signed) as opposed to a label reference. Used by the li
// pseudo-instruction's size-dependent expansion.
func isLiteral(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	body := token
	if body[0] == '-' {
		body = body[1:]
	}
	if len(body) > 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		return true
	}
	return isDecimal(body)
}

// fitsSigned12 reports whether v fits in a signed 12-bit field.
func fitsSigned12(v int32) bool {
	return v >= -2048 && v <= 2047
}

// ParseEscapedString decodes a double-quoted string literal's escapes
// (\n \t \r \\ \") into raw bytes. The input must not include the
// surrounding quotes. Any other escape is a fatal error.
func ParseEscapedString(s string, line int) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			out = append(out, s[i])
			continue
		}
		i++
		if i >= len(s) {
			return nil, Err.MalformedString(line)
		}
		switch s[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '\\':
			out = append(out, '\\')
		case '"':
			out = append(out, '"')
		default:
			return nil, Err.UnknownEscape(s[i], line)
		}
	}
	return out, nil
}

// splitOperands splits a comma-separated operand list, trimming
// whitespace from each field and normalizing the offset(reg) addressing
// syntax used by loads/stores into a flat "offset, reg" form
// (e.g. "8(sp)" -> "8", "sp").
func splitOperands(rest string) []string {
	rest = normalizeMemOperand(rest)
	if strings.TrimSpace(rest) == "" {
		return nil
	}
	parts := strings.Split(rest, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalizeMemOperand rewrites the first "imm(reg)" in the operand string
// to "imm,reg"; any later parenthesized group is left as it is.
func normalizeMemOperand(s string) string {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return s
	}
	close := strings.IndexByte(s[open:], ')')
	if close < 0 {
		return s
	}
	close += open
	reg := s[open+1 : close]
	return s[:open] + "," + reg + s[close+1:]
}
