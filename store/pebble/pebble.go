// Package pebble provides an ordered store backed by cockroachdb/pebble
// running on an in-memory filesystem. The engine keeps keys in
// lexicographic byte order, so the store satisfies store.Ordered. Nothing
// touches disk and nothing survives Close.
package pebble

import (
	"errors"
	"fmt"
	"iter"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

// Store is a pebble-backed key-value store. Use New; the zero value is not
// usable. Callers must Close the store to release engine resources.
type Store struct {
	db *pebble.DB
}

// New opens a fresh pebble database on an in-memory VFS.
func New() (*Store, error) {
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	if err != nil {
		return nil, fmt.Errorf("pebble: failed to open in-memory db: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the value for key, reporting whether the key exists.
func (s *Store) Get(key []byte) ([]byte, bool, error) {
	v, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("pebble: get: %w", err)
	}

	// The returned slice is only valid until the closer is released.
	value := append([]byte(nil), v...)
	if err := closer.Close(); err != nil {
		return nil, false, fmt.Errorf("pebble: get: %w", err)
	}
	return value, true, nil
}

// Set associates key with value, replacing any existing value.
func (s *Store) Set(key, value []byte) error {
	if err := s.db.Set(key, value, pebble.NoSync); err != nil {
		return fmt.Errorf("pebble: set: %w", err)
	}
	return nil
}

// Delete removes key and its value.
func (s *Store) Delete(key []byte) error {
	if err := s.db.Delete(key, pebble.NoSync); err != nil {
		return fmt.Errorf("pebble: delete: %w", err)
	}
	return nil
}

// Len returns the number of keys present.
func (s *Store) Len() (int, error) {
	it, err := s.db.NewIter(nil)
	if err != nil {
		return 0, fmt.Errorf("pebble: len: %w", err)
	}

	n := 0
	for it.First(); it.Valid(); it.Next() {
		n++
	}
	if err := it.Close(); err != nil {
		return 0, fmt.Errorf("pebble: len: %w", err)
	}
	return n, nil
}

// All iterates every key in ascending byte order.
func (s *Store) All() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		it, err := s.db.NewIter(nil)
		if err != nil {
			yield(nil, fmt.Errorf("pebble: iter: %w", err))
			return
		}
		defer it.Close()

		for it.First(); it.Valid(); it.Next() {
			if !yield(it.Key(), nil) {
				return
			}
		}
		if err := it.Error(); err != nil {
			yield(nil, fmt.Errorf("pebble: iter: %w", err))
		}
	}
}

// Max returns the lexicographically largest key, reporting whether the
// store holds any keys.
func (s *Store) Max() ([]byte, bool, error) {
	it, err := s.db.NewIter(nil)
	if err != nil {
		return nil, false, fmt.Errorf("pebble: max: %w", err)
	}

	var key []byte
	ok := it.Last()
	if ok {
		// Iterator keys are invalidated by Close.
		key = append([]byte(nil), it.Key()...)
	}
	if err := it.Close(); err != nil {
		return nil, false, fmt.Errorf("pebble: max: %w", err)
	}
	return key, ok, nil
}

// Close releases the underlying database. The store must not be used
// afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}
