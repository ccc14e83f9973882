// Package memory implements the emulator's byte-addressable, little-endian
// flat memory image.
package memory

import "encoding/binary"

// Status is the sum type every Memory read/write returns.
type Status int

const (
	OK Status = iota
	ReadError
	WriteError
	MisalignedError
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case ReadError:
		return "read_error"
	case WriteError:
		return "write_error"
	case MisalignedError:
		return "misaligned_error"
	default:
		return "unknown"
	}
}

// Default layout constants.
const (
	MemorySize = 16 * 1024 * 1024
	StackBase  = 0x8000_0000
	StackSize  = 1024 * 1024
	StackTop   = StackBase + StackSize
)

// Memory is a fixed-size, zero-filled flat byte buffer. It is created once
// and does not grow; addresses at or beyond Size() are out of bounds.
//
// When stackWindow is non-zero, New extends the backing slice up to
// StackTop, which covers the window ending there, so that a guest program
// which actually uses the stack region the register file is initialized to
// point at does not immediately fault.
type Memory struct {
	buf []byte
}

// New allocates a Memory of the given size. If stackWindow is greater than
// zero, the backing buffer is grown (if necessary) so that the byte range
// [StackTop-stackWindow, StackTop) is a valid, zero-filled, addressable
// region, in addition to [0, size). The buffer then spans all of
// [0, max(size, StackTop)); the window's size is not otherwise used.
func New(size uint32, stackWindow uint32) *Memory {
	total := uint64(size)
	if stackWindow > 0 {
		if need := uint64(StackTop); need > total {
			total = need
		}
	}
	return &Memory{buf: make([]byte, total)}
}

// Size reports the number of addressable bytes, [0, Size()).
func (m *Memory) Size() uint32 {
	return uint32(len(m.buf))
}

func inBounds(m *Memory, addr uint32, width uint32) bool {
	end := uint64(addr) + uint64(width)
	return end <= uint64(len(m.buf))
}

// Read8 reads a single byte. 8-bit accesses are always aligned.
func (m *Memory) Read8(addr uint32) (uint8, Status) {
	if !inBounds(m, addr, 1) {
		return 0, ReadError
	}
	return m.buf[addr], OK
}

// Write8 writes a single byte.
func (m *Memory) Write8(addr uint32, value uint8) Status {
	if !inBounds(m, addr, 1) {
		return WriteError
	}
	m.buf[addr] = value
	return OK
}

// Read16 reads a little-endian 16-bit value. addr must be even.
func (m *Memory) Read16(addr uint32) (uint16, Status) {
	if addr%2 != 0 {
		return 0, MisalignedError
	}
	if !inBounds(m, addr, 2) {
		return 0, ReadError
	}
	return binary.LittleEndian.Uint16(m.buf[addr : addr+2]), OK
}

// Write16 writes a little-endian 16-bit value. addr must be even.
func (m *Memory) Write16(addr uint32, value uint16) Status {
	if addr%2 != 0 {
		return MisalignedError
	}
	if !inBounds(m, addr, 2) {
		return WriteError
	}
	binary.LittleEndian.PutUint16(m.buf[addr:addr+2], value)
	return OK
}

// Read32 reads a little-endian 32-bit value. addr must be a multiple of 4.
func (m *Memory) Read32(addr uint32) (uint32, Status) {
	if addr%4 != 0 {
		return 0, MisalignedError
	}
	if !inBounds(m, addr, 4) {
		return 0, ReadError
	}
	return binary.LittleEndian.Uint32(m.buf[addr : addr+4]), OK
}

// Write32 writes a little-endian 32-bit value. addr must be a multiple of 4.
func (m *Memory) Write32(addr uint32, value uint32) Status {
	if addr%4 != 0 {
		return MisalignedError
	}
	if !inBounds(m, addr, 4) {
		return WriteError
	}
	binary.LittleEndian.PutUint32(m.buf[addr:addr+4], value)
	return OK
}

// LoadImage copies img into the memory starting at base. It is a thin
// convenience used by the emulator's integration glue to place an assembled binary image before execution begins; it
// reports WriteError if the image does not fit.
func (m *Memory) LoadImage(base uint32, img []byte) Status {
	if !inBounds(m, base, uint32(len(img))) {
		return WriteError
	}
	copy(m.buf[base:], img)
	return OK
}
