package store

/*

# Slotted record store

A fixed-capacity store for caller-defined records, persisted into a single
contiguous buffer as equal-size slots. Records are opaque payloads to the
store; a caller-supplied Transcoder extracts each record's 64-bit key and
encodes/decodes its fields at a byte offset.

The buffer is divided into maxRecords slots of recordLength bytes each:

	|--------|--------|--------|---- ----|--------|
	| slot 0 | slot 1 | slot 2 |   ...   | slot N |
	|--------|--------|--------|---- ----|--------|

Each slot:

	+-------+---------------+---------------------------+
	| state |      key      |          payload          |
	+-------+---------------+---------------------------+
	| 1 byte|    8 bytes    |   recordLength - 9 bytes  |
	+-------+---------------+---------------------------+

A slot is empty, live, or a tombstone; only live slots are visible to Load.
New keys are appended at the write cursor; updating an existing key
re-encodes in place and never relocates the slot. Remove leaves a tombstone
and does not rewind the cursor; the space is reclaimed only by Compact,
which relocates all live slots to a contiguous prefix of a fresh buffer,
preserving their relative order.

An in-memory index maps each live key to its slot offset, so Put, Load and
Remove are O(1); Compact is O(slots).

The store is single-threaded: callers sharing one across goroutines must
serialize access externally.

A transcoder that encodes more than recordLength-9 bytes, or decodes
inconsistently with its own encoding, violates the contract; the store does
not defend against it and the resulting behavior is undefined.

*/
