package pebble_test

import (
	"testing"

	"github.com/davidvella/kvq/store/pebble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore opens an in-memory store and registers cleanup.
func newTestStore(t *testing.T) *pebble.Store {
	t.Helper()

	s, err := pebble.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestStoreBasicOperations(t *testing.T) {
	s := newTestStore(t)

	v, ok, err := s.Get([]byte("missing"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)

	require.NoError(t, s.Set([]byte("k1"), []byte("v1")))
	v, ok, err = s.Get([]byte("k1"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v1"), v)

	require.NoError(t, s.Set([]byte("k1"), []byte("v2")))
	v, _, err = s.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, s.Delete([]byte("k1")))
	require.NoError(t, s.Delete([]byte("k1")))

	n, err = s.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStoreAllIsAscending(t *testing.T) {
	s := newTestStore(t)

	for _, k := range []string{"delta", "alpha", "charlie", "bravo"} {
		require.NoError(t, s.Set([]byte(k), []byte("v")))
	}

	var got []string
	for key, err := range s.All() {
		require.NoError(t, err)
		// Iterator keys are only valid during the step; copy before
		// accumulating.
		got = append(got, string(key))
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, got)
}

func TestStoreMax(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Max()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set([]byte{0x00, 0x01}, []byte("low")))
	require.NoError(t, s.Set([]byte{0x01, 0x00}, []byte("high")))

	key, ok, err := s.Max()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x00}, key)

	require.NoError(t, s.Delete(key))
	key, ok, err = s.Max()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte{0x00, 0x01}, key)
}

func TestStoreGetCopiesValue(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set([]byte("k"), []byte("abc")))

	v, ok, err := s.Get([]byte("k"))
	require.NoError(t, err)
	require.True(t, ok)

	// Mutating the returned slice must not leak into the store.
	v[0] = 'z'
	again, _, err := s.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
