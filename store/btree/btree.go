// Package btree provides an ordered store backed by google/btree. Keys are
// kept in lexicographic byte order, so the store satisfies store.Ordered
// and the queue engine can locate the highest priority without a scan.
package btree

import (
	"bytes"
	"iter"

	"github.com/google/btree"
)

const degree = 2

type entry struct {
	key   []byte
	value []byte
}

// Store is a B-tree-backed key-value store ordered by bytes.Compare. The
// zero value is not usable; use New.
type Store struct {
	tree *btree.BTreeG[entry]
}

// New returns an empty store.
func New() *Store {
	return &Store{
		tree: btree.NewG(degree, func(a, b entry) bool {
			return bytes.Compare(a.key, b.key) < 0
		}),
	}
}

// Get returns the value for key, reporting whether the key exists.
func (s *Store) Get(key []byte) ([]byte, bool, error) {
	e, ok := s.tree.Get(entry{key: key})
	if !ok {
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set associates key with value, replacing any existing value.
func (s *Store) Set(key, value []byte) error {
	s.tree.ReplaceOrInsert(entry{key: key, value: value})
	return nil
}

// Delete removes key and its value.
func (s *Store) Delete(key []byte) error {
	s.tree.Delete(entry{key: key})
	return nil
}

// Len returns the number of keys present.
func (s *Store) Len() (int, error) {
	return s.tree.Len(), nil
}

// All iterates every key in ascending byte order.
func (s *Store) All() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		s.tree.Ascend(func(e entry) bool {
			return yield(e.key, nil)
		})
	}
}

// Max returns the lexicographically largest key, reporting whether the
// store holds any keys.
func (s *Store) Max() ([]byte, bool, error) {
	e, ok := s.tree.Max()
	if !ok {
		return nil, false, nil
	}
	return e.key, true, nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
