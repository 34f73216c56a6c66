package charmap

import "errors"

const (
	// entryHeaderBytes precedes the key bytes in every bucket: a 4 byte
	// presence marker and a 4 byte key length.
	entryHeaderBytes = 4 + 4

	// idBytes trails the key bytes in every bucket.
	idBytes = 8

	// loadFactor is the live/total ratio beyond which an insert first
	// doubles the table.
	loadFactor = 0.7

	// DefaultMissingValue is returned by Search when the key is absent and
	// no sentinel was configured.
	DefaultMissingValue int64 = -1
)

var (
	// ErrKeyTooLong is returned by Insert for a key longer than the
	// configured maximum key length.
	ErrKeyTooLong = errors.New("charmap: key exceeds maxKeyLength")

	// ErrBadMaxKeyLength is returned by New for a negative maximum key
	// length.
	ErrBadMaxKeyLength = errors.New("charmap: maxKeyLength must not be negative")

	// ErrBadInitialSize is returned by New for a non-positive initial size.
	ErrBadInitialSize = errors.New("charmap: initialSize must be positive")
)
