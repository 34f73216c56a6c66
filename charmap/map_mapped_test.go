//go:build unix

package charmap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YuriiPovkh/recall/buffer"
	"github.com/YuriiPovkh/recall/charmap"
)

// Rehashing allocates every doubled table through the factory; drive the
// map across several doublings over off-heap mapped regions.
func TestMapWithMappedBuffer(t *testing.T) {
	factory := func(size int) buffer.Buffer {
		m, err := buffer.NewMapped(size)
		require.NoError(t, err)
		return m
	}
	m, err := charmap.New(maxKeyLength, 8, charmap.WithBufferFactory(factory))
	require.NoError(t, err)

	const n = 64
	for i := 0; i < n; i++ {
		require.NoError(t, m.Insert(fmt.Sprintf("term_%d", i), int64(i)))
	}
	require.Equal(t, n, m.Len())
	for i := 0; i < n; i++ {
		require.Equal(t, int64(i), m.Search(fmt.Sprintf("term_%d", i)))
	}
}
