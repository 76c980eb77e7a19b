package btree_test

import (
	"testing"

	"github.com/davidvella/kvq/store/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreBasicOperations(t *testing.T) {
	s := btree.New()

	v, ok, err := s.Get([]byte("missing"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)

	require.NoError(t, s.Set([]byte("k1"), []byte("v1")))
	v, ok, err = s.Get([]byte("k1"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v1"), v)

	// Replace keeps a single entry.
	require.NoError(t, s.Set([]byte("k1"), []byte("v2")))
	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, s.Delete([]byte("k1")))
	require.NoError(t, s.Delete([]byte("k1")))

	n, err = s.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, s.Close())
}

func TestStoreAllIsAscending(t *testing.T) {
	s := btree.New()

	for _, k := range []string{"delta", "alpha", "charlie", "bravo"} {
		require.NoError(t, s.Set([]byte(k), []byte("v")))
	}

	var got []string
	for key, err := range s.All() {
		require.NoError(t, err)
		got = append(got, string(key))
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, got)
}

func TestStoreMax(t *testing.T) {
	s := btree.New()

	// Empty store has no maximum.
	_, ok, err := s.Max()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set([]byte{0x00, 0x01}, []byte("low")))
	require.NoError(t, s.Set([]byte{0x01, 0x00}, []byte("high")))

	key, ok, err := s.Max()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x00}, key)

	// Deleting the maximum exposes the next one.
	require.NoError(t, s.Delete(key))
	key, ok, err = s.Max()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte{0x00, 0x01}, key)
}
