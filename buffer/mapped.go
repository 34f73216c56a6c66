//go:build unix

package buffer

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// MappedBuffer is a Buffer backed by an anonymous private memory mapping,
// keeping the region outside the Go heap. The caller owns the mapping and
// must release it with Close once the owning structure is done with it.
type MappedBuffer struct {
	b []byte
}

var _ Buffer = (*MappedBuffer)(nil)

// NewMapped maps a zero-filled anonymous region of the given size.
func NewMapped(size int) (*MappedBuffer, error) {
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return &MappedBuffer{b: b}, nil
}

// Close unmaps the region. The buffer must not be used afterwards.
func (m *MappedBuffer) Close() error {
	if m.b == nil {
		return nil
	}
	b := m.b
	m.b = nil
	return unix.Munmap(b)
}

func (m *MappedBuffer) Uint64(offset int) uint64 { return binary.BigEndian.Uint64(m.b[offset:]) }

func (m *MappedBuffer) PutUint64(offset int, v uint64) { binary.BigEndian.PutUint64(m.b[offset:], v) }

func (m *MappedBuffer) Uint32(offset int) uint32 { return binary.BigEndian.Uint32(m.b[offset:]) }

func (m *MappedBuffer) PutUint32(offset int, v uint32) { binary.BigEndian.PutUint32(m.b[offset:], v) }

func (m *MappedBuffer) ByteAt(offset int) byte { return m.b[offset] }

func (m *MappedBuffer) PutByte(offset int, v byte) { m.b[offset] = v }

func (m *MappedBuffer) Len() int { return len(m.b) }

// Bytes exposes the mapped region for bulk copies.
func (m *MappedBuffer) Bytes() []byte { return m.b }
