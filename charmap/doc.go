package charmap

/*

# Probing char-sequence map

An open-addressing hash map from character-sequence keys to 64-bit ids,
stored entirely inside one growable buffer. No per-entry objects are ever
allocated; an entry is a fixed-size bucket region inside the buffer:

	+----------+---------+----------------------+---------+
	| presence | key len |      key bytes       |   id    |
	+----------+---------+----------------------+---------+
	| 4 bytes  | 4 bytes |  maxKeyLength bytes  | 8 bytes |
	+----------+---------+----------------------+---------+

The bucket table always holds a power-of-two number of entries, so the home
bucket is hash(key) & mask. Collisions are resolved by linear probing with
wraparound. Insert and search deliberately probe differently:

- Insert steps forward one bucket at a time, wrapping the candidate offset
  back past the end of the table, and claims the first bucket that is empty
  or already holds the key. Re-inserting a key replaces its id in place.
- Search walks forward bucket-by-bucket from the home bucket and stops as
  soon as it encounters an empty bucket, the classic open-addressing early
  exit. This is sound because inserts always fill forward without leaving
  gaps inside an occupied run, and the map has no deletion path that could
  punch holes into one.

Crossing the load factor triggers a rehash immediately before the insert
that would violate it: a fresh buffer of double capacity is allocated and
every live entry re-inserted through the normal insert path. Search never
triggers a rehash.

Keys are treated as byte sequences; a code unit is a byte and no Unicode
normalization is applied. Zero-length keys are legal and occupy a bucket
like any other key. Failed searches return the configured missing-value
sentinel rather than an error.

The hash function is pluggable. Correctness never depends on its quality: a
constant hash degrades every operation to a linear scan but still yields
correct results.

The map is single-threaded; callers sharing one across goroutines must
serialize access externally.

*/
