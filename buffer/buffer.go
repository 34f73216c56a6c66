package buffer

import "io"

// Buffer is the access capability the data structures in this module are
// written against. Implementations are free to back it with heap memory,
// a memory mapping, or anything else byte-addressable.
type Buffer interface {
	Uint64(offset int) uint64
	PutUint64(offset int, v uint64)
	Uint32(offset int) uint32
	PutUint32(offset int, v uint32)
	ByteAt(offset int) byte
	PutByte(offset int, v byte)
	Len() int
}

// Factory allocates a fresh zero-filled Buffer of the given size. Growth
// operations (compaction, rehash) allocate a new region through the factory
// and abandon the old one.
type Factory func(size int) Buffer

// bytesExposer is the fast path for Copy between implementations that are
// ultimately backed by a byte slice.
type bytesExposer interface {
	Bytes() []byte
}

// Release returns a buffer's backing region to the system, for
// implementations that hold one (a MappedBuffer's mapping). Heap-backed
// buffers are left to the garbage collector and Release is a no-op.
func Release(b Buffer) error {
	if c, ok := b.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Copy transfers length bytes from src at srcOff to dst at dstOff.
func Copy(dst Buffer, dstOff int, src Buffer, srcOff int, length int) {
	db, dok := dst.(bytesExposer)
	sb, sok := src.(bytesExposer)
	if dok && sok {
		copy(db.Bytes()[dstOff:dstOff+length], sb.Bytes()[srcOff:srcOff+length])
		return
	}
	for i := 0; i < length; i++ {
		dst.PutByte(dstOff+i, src.ByteAt(srcOff+i))
	}
}
