// Package store defines the key-value contract the queue engine is built
// on. Any associative container keyed by byte sequences satisfies it; the
// engine depends only on get, set, delete, length, and key iteration, never
// on iteration order.
//
// Every method returns an error so that fallible engines can sit behind the
// same interface. The in-memory implementations under store/hashmap and
// store/btree never fail; store/pebble surfaces engine errors as-is.
package store

import "iter"

// Store is an associative container from byte-sequence keys to
// byte-sequence values. Implementations are not required to be safe for
// concurrent use; the queue engine assumes single-owner access.
type Store interface {
	// Get returns the value for key, reporting whether the key exists.
	Get(key []byte) (value []byte, ok bool, err error)

	// Set associates key with value, replacing any existing value.
	Set(key, value []byte) error

	// Delete removes key and its value. Deleting an absent key is a no-op.
	Delete(key []byte) error

	// Len returns the number of keys present.
	Len() (int, error)

	// All iterates every key in no particular order. The yielded slices
	// must not be retained across iterations.
	All() iter.Seq2[[]byte, error]

	// Close releases any resources held by the store.
	Close() error
}

// Ordered is implemented by stores that keep keys in lexicographic byte
// order. The queue engine uses Max as a fast path instead of scanning every
// key, which is equivalent because priority keys are big-endian.
type Ordered interface {
	Store

	// Max returns the lexicographically largest key, reporting whether the
	// store holds any keys at all.
	Max() ([]byte, bool, error)
}
