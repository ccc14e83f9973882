package assembler

import "fmt"

// Error is a fatal assembler error with the source line it was raised on.
// Core packages communicate failure through plain errors, never through
// an editor-facing diagnostic type — langserver re-renders these as LSP
// Diagnostic values strictly downstream, never inside Assemble itself.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line+1, e.Message)
}

type assemblyErrors struct{}

// Err is the constructor namespace for fatal assembler errors.
var Err assemblyErrors

func (assemblyErrors) DuplicateLabel(name string, line int) error {
	return &Error{Line: line, Message: fmt.Sprintf("label %q already defined", name)}
}

func (assemblyErrors) UndefinedLabel(name string, line int) error {
	return &Error{Line: line, Message: fmt.Sprintf("undefined label %q", name)}
}

func (assemblyErrors) InvalidSymbolName(name string, line int) error {
	return &Error{Line: line, Message: fmt.Sprintf("invalid symbol name %q", name)}
}

func (assemblyErrors) InvalidRegister(token string, line int) error {
	return &Error{Line: line, Message: fmt.Sprintf("invalid register %q", token)}
}

func (assemblyErrors) InvalidIntegerLiteral(token string, line int) error {
	return &Error{Line: line, Message: fmt.Sprintf("invalid integer literal %q", token)}
}

func (assemblyErrors) ImmediateOverflow(token string, line int) error {
	return &Error{Line: line, Message: fmt.Sprintf("immediate %q does not fit the target field", token)}
}

func (assemblyErrors) InvalidDataDirective(name string, line int) error {
	return &Error{Line: line, Message: fmt.Sprintf("invalid data directive %q", name)}
}

func (assemblyErrors) MalformedString(line int) error {
	return &Error{Line: line, Message: "malformed string literal: missing closing quote"}
}

func (assemblyErrors) UnknownEscape(esc byte, line int) error {
	return &Error{Line: line, Message: fmt.Sprintf("unknown escape sequence \\%c", esc)}
}

func (assemblyErrors) UnknownMnemonic(name string, line int) error {
	return &Error{Line: line, Message: fmt.Sprintf("unknown instruction mnemonic %q", name)}
}

func (assemblyErrors) WrongOperandCount(mnemonic string, want, got int, line int) error {
	return &Error{Line: line, Message: fmt.Sprintf("%s expects %d operands, got %d", mnemonic, want, got)}
}
