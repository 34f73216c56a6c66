package charmap

import "github.com/cespare/xxhash/v2"

// Hash maps a key to a 64-bit value. The map masks the result down to its
// current table size, so only the low bits are consumed until the table
// grows.
type Hash func(key string) uint64

// PolynomialHash is the default hash: a rolling polynomial over the key's
// bytes with multiplier 31.
func PolynomialHash(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = 31*h + uint64(key[i])
	}
	return h
}

// XXHash hashes the key with xxHash64. Prefer it over PolynomialHash for
// large maps of short, similar keys, where the polynomial's low bits
// cluster.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}
