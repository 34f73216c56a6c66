package buffer

import "encoding/binary"

// SliceBuffer is a Buffer backed by a heap-allocated byte slice.
type SliceBuffer struct {
	b []byte
}

var _ Buffer = (*SliceBuffer)(nil)

// NewSlice allocates a zero-filled SliceBuffer of the given size.
func NewSlice(size int) *SliceBuffer {
	return &SliceBuffer{b: make([]byte, size)}
}

// SliceFactory is the default Factory used by the store and charmap packages.
func SliceFactory(size int) Buffer { return NewSlice(size) }

func (s *SliceBuffer) Uint64(offset int) uint64 { return binary.BigEndian.Uint64(s.b[offset:]) }

func (s *SliceBuffer) PutUint64(offset int, v uint64) { binary.BigEndian.PutUint64(s.b[offset:], v) }

func (s *SliceBuffer) Uint32(offset int) uint32 { return binary.BigEndian.Uint32(s.b[offset:]) }

func (s *SliceBuffer) PutUint32(offset int, v uint32) { binary.BigEndian.PutUint32(s.b[offset:], v) }

func (s *SliceBuffer) ByteAt(offset int) byte { return s.b[offset] }

func (s *SliceBuffer) PutByte(offset int, v byte) { s.b[offset] = v }

func (s *SliceBuffer) Len() int { return len(s.b) }

// Bytes exposes the backing slice for bulk copies.
func (s *SliceBuffer) Bytes() []byte { return s.b }
