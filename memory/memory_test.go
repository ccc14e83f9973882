package memory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rvtoolchain/rv32i/memory"
)

func TestWordRoundTrip(t *testing.T) {
	m := memory.New(memory.MemorySize, 0)

	status := m.Write32(0x100, 0xDEADBEEF)
	require.Equal(t, memory.OK, status)

	got, status := m.Read32(0x100)
	require.Equal(t, memory.OK, status)
	require.Equal(t, uint32(0xDEADBEEF), got)
}

func TestHalfRoundTrip(t *testing.T) {
	m := memory.New(memory.MemorySize, 0)
	require.Equal(t, memory.OK, m.Write16(0x200, 0xBEEF))
	got, status := m.Read16(0x200)
	require.Equal(t, memory.OK, status)
	require.Equal(t, uint16(0xBEEF), got)
}

func TestByteRoundTrip(t *testing.T) {
	m := memory.New(memory.MemorySize, 0)
	require.Equal(t, memory.OK, m.Write8(0x300, 0xEF))
	got, status := m.Read8(0x300)
	require.Equal(t, memory.OK, status)
	require.Equal(t, uint8(0xEF), got)
}

func TestLittleEndianByteOrder(t *testing.T) {
	m := memory.New(memory.MemorySize, 0)
	require.Equal(t, memory.OK, m.Write32(0, 0x01020304))
	b0, _ := m.Read8(0)
	b1, _ := m.Read8(1)
	b2, _ := m.Read8(2)
	b3, _ := m.Read8(3)
	require.Equal(t, uint8(0x04), b0)
	require.Equal(t, uint8(0x03), b1)
	require.Equal(t, uint8(0x02), b2)
	require.Equal(t, uint8(0x01), b3)
}

func TestMisalignment(t *testing.T) {
	m := memory.New(memory.MemorySize, 0)

	_, status := m.Read16(0x101)
	require.Equal(t, memory.MisalignedError, status)
	require.Equal(t, memory.MisalignedError, m.Write16(0x101, 1))

	_, status = m.Read32(0x102)
	require.Equal(t, memory.MisalignedError, status)
	require.Equal(t, memory.MisalignedError, m.Write32(0x102, 1))
}

func TestOutOfBounds(t *testing.T) {
	m := memory.New(16, 0)

	_, status := m.Read32(16)
	require.Equal(t, memory.ReadError, status)
	require.Equal(t, memory.WriteError, m.Write32(16, 1))

	_, status = m.Read8(16)
	require.Equal(t, memory.ReadError, status)
}

func TestStackWindowBacksDefaultStackTop(t *testing.T) {
	m := memory.New(16*1024*1024, 64*1024)

	addr := uint32(memory.StackTop - 4)
	require.Equal(t, memory.OK, m.Write32(addr, 7))
	got, status := m.Read32(addr)
	require.Equal(t, memory.OK, status)
	require.Equal(t, uint32(7), got)
}

func TestDefaultImageDoesNotBackStack(t *testing.T) {
	m := memory.New(memory.MemorySize, 0)
	_, status := m.Read32(memory.StackTop - 4)
	require.Equal(t, memory.ReadError, status)
}
