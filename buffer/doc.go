package buffer

/*

# Buffer operations

This package provides the typed, offset-addressed access capability shared by
the store and charmap packages. Both structures keep all of their data inside
a single contiguous region and address it with explicit byte offsets; they
never hold per-entry objects. The capability they need is deliberately small:

- read/write a 64-bit integer at an offset
- read/write a 32-bit integer at an offset
- read/write a single byte at an offset
- bulk copy between two regions

All multi-byte integers are big-endian.

Two implementations are provided:

- SliceBuffer: a plain heap-allocated byte slice. The default.
- MappedBuffer: an anonymous private memory mapping, for callers that want
  the region outside the Go heap. Unix only.

The owning structure computes every offset it uses, so out-of-range access
indicates a bug in the owner, not a recoverable condition; it panics via the
normal slice bounds checks.

*/
