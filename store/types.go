package store

import (
	"errors"

	"github.com/YuriiPovkh/recall/buffer"
)

const (
	// SlotHeaderBytes is the per-slot overhead preceding the payload:
	// a one byte state marker and the 8 byte record key.
	SlotHeaderBytes = 1 + 8

	slotEmpty     byte = 0
	slotLive      byte = 1
	slotTombstone byte = 2
)

var (
	// ErrCapacityExceeded is returned by Put when a new key cannot be
	// accommodated, either because maxRecords live records already exist or
	// because tombstones have exhausted the append region. The store is left
	// exactly as it was; the caller recovers by removing entries or calling
	// Compact, then retrying.
	ErrCapacityExceeded = errors.New("store: capacity exceeded")

	// ErrBadRecordLength is returned by New when recordLength cannot hold a
	// slot header.
	ErrBadRecordLength = errors.New("store: recordLength must exceed the slot header")

	// ErrBadMaxRecords is returned by New for a non-positive capacity.
	ErrBadMaxRecords = errors.New("store: maxRecords must be positive")
)

// Transcoder bridges opaque records and raw bytes. The store never inspects
// a record directly; it calls Key to identify it and Encode/Decode to move
// its fields in and out of a slot payload.
//
// Encode must write at most recordLength-SlotHeaderBytes bytes starting at
// offset; Decode must be the exact inverse of Encode for any value
// previously encoded at offset.
type Transcoder[T any] interface {
	Key(source T) int64
	Encode(dst buffer.Buffer, offset int, value T)
	Decode(src buffer.Buffer, offset int, container *T)
}
