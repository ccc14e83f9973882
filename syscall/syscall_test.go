package syscall_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rvtoolchain/rv32i/memory"
	"github.com/rvtoolchain/rv32i/syscall"
)

// openTestFile creates a guest-visible fd for a temp file containing
// content, by round-tripping the host path through openat the way a
// guest program would.
func openTestFile(t *testing.T, h *syscall.Handler, mem *memory.Memory, content string) uint32 {
	t.Helper()
	path := filepath.Join(t.TempDir(), "read-test")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	const pathAddr = 0x9000
	for i := 0; i < len(path); i++ {
		require.Equal(t, memory.OK, mem.Write8(uint32(pathAddr+i), path[i]))
	}
	require.Equal(t, memory.OK, mem.Write8(uint32(pathAddr+len(path)), 0))

	fd, exit := h.Handle(56, 0, pathAddr, uint32(os.O_RDONLY), mem)
	require.False(t, exit)
	require.Less(t, fd, uint32(0xFFFFFF00)) // not an error code
	return fd
}

func TestExitReturnsA0AndExit(t *testing.T) {
	h := syscall.New()
	mem := memory.New(memory.MemorySize, 0)

	result, exit := h.Handle(93, 42, 0, 0, mem)
	require.True(t, exit)
	require.Equal(t, uint32(42), result)
}

func TestUnknownSyscallReturnsENOSYS(t *testing.T) {
	h := syscall.New()
	mem := memory.New(memory.MemorySize, 0)

	result, exit := h.Handle(9999, 0, 0, 0, mem)
	require.False(t, exit)
	require.Equal(t, uint32(0xFFFFFFDA), result) // -38 as uint32
}

func TestBrkReturnsENOMEM(t *testing.T) {
	h := syscall.New()
	mem := memory.New(memory.MemorySize, 0)

	result, exit := h.Handle(214, 0x5000, 0, 0, mem)
	require.False(t, exit)
	require.Equal(t, uint32(0xFFFFFFF4), result) // -12 as uint32
}

func TestWriteToStdoutFD(t *testing.T) {
	h := syscall.New()
	mem := memory.New(memory.MemorySize, 0)

	msg := []byte("hi")
	for i, b := range msg {
		require.Equal(t, memory.OK, mem.Write8(uint32(0x1000+i), b))
	}

	result, exit := h.Handle(64, 1, 0x1000, uint32(len(msg)), mem)
	require.False(t, exit)
	require.Equal(t, uint32(len(msg)), result)
}

func TestReadFromFileIntoGuestBuffer(t *testing.T) {
	h := syscall.New()
	mem := memory.New(memory.MemorySize, 0)
	fd := openTestFile(t, h, mem, "hello")

	const bufAddr = 0x2000
	result, exit := h.Handle(63, fd, bufAddr, 5, mem)
	require.False(t, exit)
	require.Equal(t, uint32(5), result)

	for i, want := range []byte("hello") {
		got, status := mem.Read8(uint32(bufAddr + i))
		require.Equal(t, memory.OK, status)
		require.Equal(t, want, got)
	}
}

func TestReadWithOutOfBoundsBufferFailsWithoutConsumingInput(t *testing.T) {
	h := syscall.New()
	mem := memory.New(memory.MemorySize, 0)
	fd := openTestFile(t, h, mem, "hello")

	// bufAddr + count runs past mem.Size(), so this must be rejected
	// before the host file is ever touched.
	oobAddr := mem.Size() - 2
	result, exit := h.Handle(63, fd, oobAddr, 5, mem)
	require.False(t, exit)
	require.Equal(t, uint32(0xFFFFFFF2), result) // -EFAULT as uint32

	// The file's read position must be untouched: a fresh, in-bounds read
	// still sees the whole original content from the start.
	const bufAddr = 0x2000
	result, exit = h.Handle(63, fd, bufAddr, 5, mem)
	require.False(t, exit)
	require.Equal(t, uint32(5), result)
	for i, want := range []byte("hello") {
		got, status := mem.Read8(uint32(bufAddr + i))
		require.Equal(t, memory.OK, status)
		require.Equal(t, want, got)
	}
}

func TestWriteToUnknownFDFails(t *testing.T) {
	h := syscall.New()
	mem := memory.New(memory.MemorySize, 0)

	result, exit := h.Handle(64, 99, 0x1000, 2, mem)
	require.False(t, exit)
	require.Equal(t, uint32(0xFFFFFFF2), result) // -EFAULT as uint32
}

func TestCloseStandardFDIsNoop(t *testing.T) {
	h := syscall.New()
	mem := memory.New(memory.MemorySize, 0)

	result, exit := h.Handle(57, 1, 0, 0, mem)
	require.False(t, exit)
	require.Equal(t, uint32(0), result)
}
