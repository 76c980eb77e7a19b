// Package hashmap provides the default store: a plain Go map from key bytes
// to value bytes. Iteration order is unspecified, which exercises the queue
// engine's linear scan. No operation ever returns a non-nil error.
package hashmap

import "iter"

// Store is a map-backed key-value store. The zero value is not usable; use
// New.
type Store struct {
	m map[string][]byte
}

// New returns an empty store.
func New() *Store {
	return &Store{m: make(map[string][]byte)}
}

// Get returns the value for key, reporting whether the key exists.
func (s *Store) Get(key []byte) ([]byte, bool, error) {
	v, ok := s.m[string(key)]
	return v, ok, nil
}

// Set associates key with value, replacing any existing value.
func (s *Store) Set(key, value []byte) error {
	s.m[string(key)] = value
	return nil
}

// Delete removes key and its value.
func (s *Store) Delete(key []byte) error {
	delete(s.m, string(key))
	return nil
}

// Len returns the number of keys present.
func (s *Store) Len() (int, error) {
	return len(s.m), nil
}

// All iterates every key in map order, which is unspecified.
func (s *Store) All() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for k := range s.m {
			if !yield([]byte(k), nil) {
				return
			}
		}
	}
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
