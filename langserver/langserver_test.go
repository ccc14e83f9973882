package langserver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenAtFindsMnemonicAndRegister(t *testing.T) {
	line := "\taddi a0, a1, 10"

	token, isDef, ok := tokenAt(line, 2)
	require.True(t, ok)
	require.False(t, isDef)
	require.Equal(t, "addi", token)

	token, _, ok = tokenAt(line, 8)
	require.True(t, ok)
	require.Equal(t, "a0", token)
}

func TestTokenAtDetectsLabelDefinition(t *testing.T) {
	token, isDef, ok := tokenAt("loop: addi a0, a0, 1", 2)
	require.True(t, ok)
	require.True(t, isDef)
	require.Equal(t, "loop", token)
}

func TestHoverAtResolvesMnemonic(t *testing.T) {
	text, found := hoverAt("  addi a0, a0, 1", 3, nil)
	require.True(t, found)
	require.Contains(t, text, "Addition Immediate Instruction")
}

func TestHoverAtResolvesRegister(t *testing.T) {
	text, found := hoverAt("  add a0, sp, ra", 10, nil)
	require.True(t, found)
	require.Contains(t, text, "Stack Pointer")
}

func TestHoverAtResolvesLabelReference(t *testing.T) {
	labels := map[string]uint32{"loop": 0x10}
	text, found := hoverAt("  jal x0, loop", 10, labels)
	require.True(t, found)
	require.Contains(t, text, "Reference to label")
	require.Contains(t, text, "0x10")
}

func TestHoverAtResolvesLabelDefinition(t *testing.T) {
	labels := map[string]uint32{"loop": 0x10}
	text, found := hoverAt("loop: nop", 1, labels)
	require.True(t, found)
	require.Contains(t, text, "Definition of label")
}

func TestHoverAtResolvesIntegerLiteral(t *testing.T) {
	text, found := hoverAt("  addi a0, a0, 123", 16, nil)
	require.True(t, found)
	require.Contains(t, text, "Integer literal")
	require.Contains(t, text, "123")
}

func TestHoverAtReturnsFalseOnBlankPosition(t *testing.T) {
	_, found := hoverAt("   ", 1, nil)
	require.False(t, found)
}

func TestDiagnosticsForValidSourceReturnsNoDiagnostics(t *testing.T) {
	labels, diags := diagnosticsFor("addi a0, x0, 1\n")
	require.Empty(t, diags)
	require.NotNil(t, labels)
}

func TestDiagnosticsForInvalidSourceReturnsOneDiagnostic(t *testing.T) {
	_, diags := diagnosticsFor("frobnicate a0, a1\n")
	require.Len(t, diags, 1)
	require.Equal(t, SeverityError, diags[0].Severity)
	require.Contains(t, diags[0].Message, "frobnicate")
}
