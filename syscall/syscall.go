// Package syscall implements the minimal Linux-style system-call surface
// that the cpu package's ecall handler dispatches to.
package syscall

import (
	"encoding/binary"
	"io"
	"os"
	stdsyscall "syscall"

	"github.com/rvtoolchain/rv32i/memory"
)

const (
	numRead   = 63
	numWrite  = 64
	numOpenat = 56
	numClose  = 57
	numFstat  = 80
	numBrk    = 214
	numExit   = 93
)

const (
	enosys = ^uint32(38) + 1 // -ENOSYS as a two's-complement uint32
	enomem = ^uint32(12) + 1 // -ENOMEM
	efault = ^uint32(14) + 1 // -EFAULT
)

// FileTable resolves guest file descriptors to host ones. A Handler starts
// with fds 0/1/2 already mapped to stdin/stdout/stderr, matching the host
// process's own standard streams, and grows as openat succeeds.
type FileTable map[uint32]*os.File

// Handler implements cpu.Syscall. It is the narrow passthrough layer
// between a guest program's ecall and host I/O; nothing in cpu or memory
// depends on this package, only the reverse.
type Handler struct {
	files  FileTable
	nextFD uint32
}

// New creates a Handler with fds 0, 1, and 2 pre-wired to the host's
// standard streams.
func New() *Handler {
	return &Handler{
		files: FileTable{
			0: os.Stdin,
			1: os.Stdout,
			2: os.Stderr,
		},
		nextFD: 3,
	}
}

// Handle dispatches on a7 (the syscall number) and returns the value to
// place in a0, plus whether the guest has requested process exit.
func (h *Handler) Handle(a7, a0, a1, a2 uint32, mem *memory.Memory) (result uint32, exit bool) {
	switch a7 {
	case numExit:
		return a0, true
	case numRead:
		return h.read(a0, a1, a2, mem), false
	case numWrite:
		return h.write(a0, a1, a2, mem), false
	case numOpenat:
		return h.openat(a1, a2, mem), false
	case numClose:
		return h.close(a0), false
	case numFstat:
		return h.fstat(a0, a1, mem), false
	case numBrk:
		return enomem, false
	default:
		return enosys, false
	}
}

func (h *Handler) read(fd, bufAddr, count uint32, mem *memory.Memory) uint32 {
	f, ok := h.files[fd]
	if !ok {
		return efault
	}
	if uint64(bufAddr)+uint64(count) > uint64(mem.Size()) {
		return efault
	}
	buf := make([]byte, count)
	n, err := f.Read(buf)
	if n > 0 {
		for i := 0; i < n; i++ {
			// Bounds were already checked above, so this can't fail.
			mem.Write8(bufAddr+uint32(i), buf[i])
		}
	}
	if err != nil && err != io.EOF && n == 0 {
		return ^uint32(0)
	}
	return uint32(n)
}

func (h *Handler) write(fd, bufAddr, count uint32, mem *memory.Memory) uint32 {
	f, ok := h.files[fd]
	if !ok {
		return efault
	}
	buf := make([]byte, count)
	for i := uint32(0); i < count; i++ {
		b, status := mem.Read8(bufAddr + i)
		if status != memory.OK {
			return efault
		}
		buf[i] = b
	}
	n, err := f.Write(buf)
	if err != nil && n == 0 {
		return ^uint32(0)
	}
	return uint32(n)
}

func (h *Handler) openat(pathAddr, flagsAndMode uint32, mem *memory.Memory) uint32 {
	path, ok := readCString(pathAddr, mem)
	if !ok {
		return efault
	}
	flags := int(flagsAndMode)
	f, err := os.OpenFile(path, flags, os.FileMode(flagsAndMode))
	if err != nil {
		return ^uint32(0)
	}
	fd := h.nextFD
	h.nextFD++
	h.files[fd] = f
	return fd
}

func (h *Handler) close(fd uint32) uint32 {
	f, ok := h.files[fd]
	if !ok {
		return efault
	}
	delete(h.files, fd)
	if fd <= 2 {
		return 0
	}
	if err := f.Close(); err != nil {
		return ^uint32(0)
	}
	return 0
}

// statBufSize is the number of bytes of the host stat buffer this handler
// copies to the guest ("write up to 64 bytes").
const statBufSize = 64

func (h *Handler) fstat(fd, bufAddr uint32, mem *memory.Memory) uint32 {
	f, ok := h.files[fd]
	if !ok {
		return efault
	}
	info, err := f.Stat()
	if err != nil {
		return ^uint32(0)
	}
	stat, ok := info.Sys().(*stdsyscall.Stat_t)
	if !ok {
		return 0
	}

	var buf [statBufSize]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(stat.Mode))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(stat.Size))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(stat.Uid))
	binary.LittleEndian.PutUint64(buf[24:32], uint64(stat.Gid))

	for i, b := range buf {
		if mem.Write8(bufAddr+uint32(i), b) != memory.OK {
			return efault
		}
	}
	return 0
}

func readCString(addr uint32, mem *memory.Memory) (string, bool) {
	var buf []byte
	for i := uint32(0); i < 4096; i++ {
		b, status := mem.Read8(addr + i)
		if status != memory.OK {
			return "", false
		}
		if b == 0 {
			return string(buf), true
		}
		buf = append(buf, b)
	}
	return "", false
}
