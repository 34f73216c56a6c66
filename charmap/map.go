package charmap

import (
	"math/bits"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/YuriiPovkh/recall/buffer"
)

// Map is an open-addressing map from char-sequence keys to 64-bit ids. See
// the package documentation for the bucket layout and probing rules.
type Map struct {
	maxKeyLength int
	entrySize    int
	hash         Hash
	missing      int64
	factory      buffer.Factory

	buf             buffer.Buffer
	totalEntryCount int
	liveEntryCount  int
	rehashThreshold int
	mask            uint64
	tableBytes      int

	insertProbes  prometheus.Observer
	searchFound   prometheus.Observer
	searchMissing prometheus.Observer
	rehashes      prometheus.Counter
}

// Option configures a Map beyond its two fixed construction parameters.
type Option func(*mapOptions)

type mapOptions struct {
	hash    Hash
	missing int64
	factory buffer.Factory
	name    string
}

// WithHash replaces the default PolynomialHash.
func WithHash(h Hash) Option {
	return func(o *mapOptions) { o.hash = h }
}

// WithMissingValue sets the sentinel Search returns for an absent key.
func WithMissingValue(v int64) Option {
	return func(o *mapOptions) { o.missing = v }
}

// WithBufferFactory overrides the allocator used for the initial bucket
// table and for each doubled table. The default allocates heap byte slices.
func WithBufferFactory(f buffer.Factory) Option {
	return func(o *mapOptions) { o.factory = f }
}

// WithName sets the label under which this map reports its metrics.
func WithName(name string) Option {
	return func(o *mapOptions) { o.name = name }
}

// New constructs an empty map holding keys of up to maxKeyLength bytes.
// initialSize is rounded up to the next power of two.
func New(maxKeyLength, initialSize int, opts ...Option) (*Map, error) {
	if maxKeyLength < 0 {
		return nil, ErrBadMaxKeyLength
	}
	if initialSize <= 0 {
		return nil, ErrBadInitialSize
	}

	o := mapOptions{
		hash:    PolynomialHash,
		missing: DefaultMissingValue,
		factory: buffer.SliceFactory,
	}
	for _, opt := range opts {
		opt(&o)
	}

	registerCharmapMetrics()

	m := &Map{
		maxKeyLength: maxKeyLength,
		entrySize:    entryHeaderBytes + maxKeyLength + idBytes,
		hash:         o.hash,
		missing:      o.missing,
		factory:      o.factory,

		insertProbes:  mapInsertProbes.WithLabelValues(o.name),
		searchFound:   mapSearchProbes.WithLabelValues(o.name, "Found"),
		searchMissing: mapSearchProbes.WithLabelValues(o.name, "Missing"),
		rehashes:      mapRehashes.WithLabelValues(o.name),
	}
	m.resetTable(nextPowerOfTwo(initialSize))
	m.buf = o.factory(m.tableBytes)
	return m, nil
}

// resetTable recomputes every quantity derived from the entry count. The
// caller allocates the buffer.
func (m *Map) resetTable(totalEntryCount int) {
	m.totalEntryCount = totalEntryCount
	m.mask = uint64(totalEntryCount - 1)
	m.rehashThreshold = int(loadFactor * float64(totalEntryCount))
	m.tableBytes = totalEntryCount * m.entrySize
	m.liveEntryCount = 0
}

// Insert stores id under key, replacing the id of an existing entry for the
// same key. The only failure is a key longer than maxKeyLength.
func (m *Map) Insert(key string, id int64) error {
	if len(key) > m.maxKeyLength {
		return ErrKeyTooLong
	}
	m.insert(key, id)
	return nil
}

func (m *Map) insert(key string, id int64) {
	if m.liveEntryCount > m.rehashThreshold {
		m.rehash()
	}

	home := int(m.hash(key)&m.mask) * m.entrySize
	if m.bucketAvailable(key, home) {
		m.insertEntry(key, id, home)
		m.insertProbes.Observe(1)
		return
	}

	for i := 1; i < m.totalEntryCount; i++ {
		candidate := home + i*m.entrySize
		if candidate >= m.tableBytes {
			candidate -= m.tableBytes
		}
		if m.bucketAvailable(key, candidate) {
			m.insertEntry(key, id, candidate)
			m.insertProbes.Observe(float64(i + 1))
			return
		}
	}

	// Every bucket holds some other key, which is only reachable when the
	// load factor logic has been bypassed. Retrying from the top rehashes
	// first, because a full table is always past the threshold.
	m.insert(key, id)
}

// Search returns the id stored under key, or the missing-value sentinel.
func (m *Map) Search(key string) int64 {
	if len(key) > m.maxKeyLength {
		return m.missing
	}

	offset := int(m.hash(key)&m.mask) * m.entrySize
	for entry := 0; entry < m.totalEntryCount; entry++ {
		idx := offset % m.tableBytes
		if m.buf.Uint32(idx) == 0 {
			m.searchMissing.Observe(float64(entry + 1))
			return m.missing
		}
		if m.entryHasKey(key, idx) {
			m.searchFound.Observe(float64(entry + 1))
			return int64(m.buf.Uint64(idx + entryHeaderBytes + m.maxKeyLength))
		}
		offset += m.entrySize
	}

	m.searchMissing.Observe(float64(m.totalEntryCount))
	return m.missing
}

// Len reports the number of live entries.
func (m *Map) Len() int { return m.liveEntryCount }

// bucketAvailable reports whether the bucket at offset can receive key:
// either it is empty or it already holds this exact key.
func (m *Map) bucketAvailable(key string, offset int) bool {
	return m.buf.Uint32(offset) == 0 || m.entryHasKey(key, offset)
}

// entryHasKey reports whether the occupied bucket at offset holds exactly
// key, comparing both length and content.
func (m *Map) entryHasKey(key string, offset int) bool {
	if int(m.buf.Uint32(offset+4)) != len(key) {
		return false
	}
	for i := 0; i < len(key); i++ {
		if m.buf.ByteAt(offset+entryHeaderBytes+i) != key[i] {
			return false
		}
	}
	return true
}

func (m *Map) insertEntry(key string, id int64, offset int) {
	fresh := m.buf.Uint32(offset) == 0
	m.buf.PutUint32(offset, 1)
	m.buf.PutUint32(offset+4, uint32(len(key)))
	for i := 0; i < len(key); i++ {
		m.buf.PutByte(offset+entryHeaderBytes+i, key[i])
	}
	m.buf.PutUint64(offset+entryHeaderBytes+m.maxKeyLength, uint64(id))
	if fresh {
		m.liveEntryCount++
	}
}

// rehash doubles the bucket table and re-inserts every live entry, in
// ascending bucket order, through the normal insert path. That path cannot
// recurse into another rehash here: the old live count is always below the
// doubled table's threshold.
func (m *Map) rehash() {
	old := m.buf
	oldEntryCount := m.totalEntryCount

	m.resetTable(m.totalEntryCount * 2)
	m.buf = m.factory(m.tableBytes)
	m.rehashes.Inc()

	scratch := make([]byte, m.maxKeyLength)
	for i := 0; i < oldEntryCount; i++ {
		offset := i * m.entrySize
		if old.Uint32(offset) == 0 {
			continue
		}
		n := int(old.Uint32(offset + 4))
		for j := 0; j < n; j++ {
			scratch[j] = old.ByteAt(offset + entryHeaderBytes + j)
		}
		id := int64(old.Uint64(offset + entryHeaderBytes + m.maxKeyLength))
		m.insert(string(scratch[:n]), id)
	}

	_ = buffer.Release(old)
}

func nextPowerOfTwo(v int) int {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(v-1))
}
