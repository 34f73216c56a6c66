package store

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/YuriiPovkh/recall/buffer"
)

// Store keeps up to maxRecords fixed-size records inside a single buffer.
// See the package documentation for the slot layout and lifecycle.
type Store[T any] struct {
	recordLength int
	maxRecords   int
	factory      buffer.Factory

	buf       buffer.Buffer
	index     map[int64]int
	nextWrite int
	live      int

	compactions      prometheus.Counter
	capacityExceeded prometheus.Counter
}

// Option configures a Store beyond its two fixed construction parameters.
type Option func(*options)

type options struct {
	factory buffer.Factory
	name    string
}

// WithBufferFactory overrides the allocator used for the initial buffer and
// for the fresh region Compact relocates into. The default allocates heap
// byte slices.
func WithBufferFactory(f buffer.Factory) Option {
	return func(o *options) { o.factory = f }
}

// WithName sets the label under which this store reports its metrics.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// New constructs an empty store of maxRecords slots of recordLength bytes
// each. recordLength includes the slot header, so the payload available to
// a transcoder is recordLength-SlotHeaderBytes bytes. Both parameters are
// fixed for the store's lifetime.
func New[T any](recordLength, maxRecords int, opts ...Option) (*Store[T], error) {
	if recordLength <= SlotHeaderBytes {
		return nil, ErrBadRecordLength
	}
	if maxRecords <= 0 {
		return nil, ErrBadMaxRecords
	}

	o := options{factory: buffer.SliceFactory}
	for _, opt := range opts {
		opt(&o)
	}

	registerStoreMetrics()

	return &Store[T]{
		recordLength: recordLength,
		maxRecords:   maxRecords,
		factory:      o.factory,
		buf:          o.factory(recordLength * maxRecords),
		index:        make(map[int64]int),

		compactions:      storeCompactions.WithLabelValues(o.name),
		capacityExceeded: storeCapacityExceeded.WithLabelValues(o.name),
	}, nil
}

// Put stores record under the key the transcoder extracts from it.
//
// An existing key is re-encoded in place at its current slot; the write
// cursor and every other record's offset are unchanged. A new key is
// appended at the write cursor. If no slot can be appended, either because
// maxRecords records are live or because tombstones have exhausted the
// append region, Put returns ErrCapacityExceeded and leaves the store
// untouched.
func (s *Store[T]) Put(tc Transcoder[T], record T) error {
	key := tc.Key(record)
	if offset, ok := s.index[key]; ok {
		tc.Encode(s.buf, offset+SlotHeaderBytes, record)
		return nil
	}

	if s.live == s.maxRecords || s.nextWrite+s.recordLength > s.buf.Len() {
		s.capacityExceeded.Inc()
		return ErrCapacityExceeded
	}

	offset := s.nextWrite
	s.buf.PutByte(offset, slotLive)
	s.buf.PutUint64(offset+1, uint64(key))
	tc.Encode(s.buf, offset+SlotHeaderBytes, record)

	s.index[key] = offset
	s.live++
	s.nextWrite += s.recordLength
	return nil
}

// Load decodes the record stored under key into container and reports
// whether it was present. container is untouched when key is absent.
func (s *Store[T]) Load(key int64, tc Transcoder[T], container *T) bool {
	offset, ok := s.index[key]
	if !ok {
		return false
	}
	tc.Decode(s.buf, offset+SlotHeaderBytes, container)
	return true
}

// Remove tombstones the record stored under key and reports whether it was
// present. The slot is not reused by subsequent Puts until Compact runs.
func (s *Store[T]) Remove(key int64) bool {
	offset, ok := s.index[key]
	if !ok {
		return false
	}
	s.buf.PutByte(offset, slotTombstone)
	delete(s.index, key)
	s.live--
	return true
}

// Compact relocates all live slots to a contiguous prefix of a fresh
// buffer, preserving their relative order, and resets the write cursor to
// the end of the live data so the reclaimed space is available to Put.
func (s *Store[T]) Compact() {
	fresh := s.factory(s.recordLength * s.maxRecords)

	out := 0
	for offset := 0; offset < s.nextWrite; offset += s.recordLength {
		if s.buf.ByteAt(offset) != slotLive {
			continue
		}
		buffer.Copy(fresh, out, s.buf, offset, s.recordLength)
		s.index[int64(s.buf.Uint64(offset+1))] = out
		out += s.recordLength
	}

	_ = buffer.Release(s.buf)
	s.buf = fresh
	s.nextWrite = out
	s.compactions.Inc()
}

// NextWriteOffset reports the byte offset at which the next new key will be
// appended.
func (s *Store[T]) NextWriteOffset() int { return s.nextWrite }

// Len reports the number of live records.
func (s *Store[T]) Len() int { return s.live }

// Cap reports the fixed slot capacity.
func (s *Store[T]) Cap() int { return s.maxRecords }
