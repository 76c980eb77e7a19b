package kvq

import (
	"fmt"

	"github.com/davidvella/kvq/recordio"
	"github.com/davidvella/kvq/store"
)

// Queue is a priority queue over opaque byte payloads, backed by a flat
// key-value store. Priorities map to fixed-width big-endian keys and
// payloads to length-prefixed records, concatenated per priority into
// buckets; Pop returns the highest priority first and is FIFO among
// payloads that share a priority.
//
// A Queue exclusively owns its store. It is not safe for concurrent use;
// callers needing that must wrap the whole queue behind one mutex.
type Queue struct {
	store store.Store
}

// New creates an empty queue. Without options it is backed by the in-memory
// hashmap store.
func New(opts ...Option) *Queue {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Queue{store: o.store}
}

// IsEmpty reports whether the queue holds no payloads. The error is always
// nil for the in-memory stores.
func (q *Queue) IsEmpty() (bool, error) {
	n, err := q.store.Len()
	if err != nil {
		return false, fmt.Errorf("kvq: is empty: %w", err)
	}
	return n == 0, nil
}

// Len returns the number of pending payloads across all priorities.
func (q *Queue) Len() (int, error) {
	var total int
	for key, err := range q.store.All() {
		if err != nil {
			return 0, fmt.Errorf("kvq: len: %w", err)
		}

		bucket, ok, err := q.store.Get(key)
		if err != nil {
			return 0, fmt.Errorf("kvq: len: %w", err)
		}
		if !ok {
			continue
		}

		for _, err := range recordio.Records(bucket) {
			if err != nil {
				return 0, fmt.Errorf("kvq: len: %w", err)
			}
			total++
		}
	}
	return total, nil
}

// Insert adds a payload with the given priority. Payloads longer than
// recordio.MaxPayloadSize fail with recordio.ErrPayloadTooLarge; the
// payload must be shrunk or chunked by the caller. Payloads sharing a
// priority are appended behind the ones already queued.
func (q *Queue) Insert(payload []byte, priority uint64) error {
	record, err := recordio.EncodeRecord(payload)
	if err != nil {
		return fmt.Errorf("kvq: insert: %w", err)
	}

	key := recordio.EncodeKey(priority)
	bucket, ok, err := q.store.Get(key)
	if err != nil {
		return fmt.Errorf("kvq: insert: %w", err)
	}
	if ok {
		record = append(bucket, record...)
	}

	if err := q.store.Set(key, record); err != nil {
		return fmt.Errorf("kvq: insert: %w", err)
	}
	return nil
}

// Peek returns the highest-priority payload without removing it, reporting
// whether the queue held one. Calling Peek repeatedly without an
// intervening mutation returns the same payload. It fails with
// recordio.ErrMalformedKey or recordio.ErrMalformedRecord if the store was
// populated outside Insert.
func (q *Queue) Peek() ([]byte, bool, error) {
	key, ok, err := q.topKey()
	if err != nil {
		return nil, false, fmt.Errorf("kvq: peek: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	bucket, ok, err := q.store.Get(key)
	if err != nil {
		return nil, false, fmt.Errorf("kvq: peek: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	payload, _, err := recordio.DecodeFront(bucket)
	if err != nil {
		return nil, false, fmt.Errorf("kvq: peek: %w", err)
	}
	return append([]byte(nil), payload...), true, nil
}

// Pop removes and returns the highest-priority payload, reporting whether
// the queue held one. Payloads sharing a priority come out in insertion
// order. When the last payload of a priority is popped, the priority's
// entry is removed from the store entirely. It fails with
// recordio.ErrMalformedKey or recordio.ErrMalformedRecord if the store was
// populated outside Insert.
func (q *Queue) Pop() ([]byte, bool, error) {
	key, ok, err := q.topKey()
	if err != nil {
		return nil, false, fmt.Errorf("kvq: pop: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	bucket, ok, err := q.store.Get(key)
	if err != nil {
		return nil, false, fmt.Errorf("kvq: pop: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	payload, rest, err := recordio.DecodeFront(bucket)
	if err != nil {
		return nil, false, fmt.Errorf("kvq: pop: %w", err)
	}
	payload = append([]byte(nil), payload...)

	if len(rest) == 0 {
		// An empty bucket must not survive, or emptiness checks and
		// scans would see a phantom priority.
		if err := q.store.Delete(key); err != nil {
			return nil, false, fmt.Errorf("kvq: pop: %w", err)
		}
		return payload, true, nil
	}

	if err := q.store.Set(key, rest); err != nil {
		return nil, false, fmt.Errorf("kvq: pop: %w", err)
	}
	return payload, true, nil
}

// Close releases the underlying store. The queue must not be used
// afterwards.
func (q *Queue) Close() error {
	return q.store.Close()
}

// topKey locates the encoded key of the highest priority present,
// reporting whether the store holds any keys. Ordered stores answer
// directly via their maximum key; big-endian encoding makes byte order and
// numeric order agree. Unordered stores take a linear scan over every key,
// O(distinct priorities) per call.
func (q *Queue) topKey() ([]byte, bool, error) {
	if o, ok := q.store.(store.Ordered); ok {
		return o.Max()
	}

	var (
		max   uint64
		found bool
	)
	for key, err := range q.store.All() {
		if err != nil {
			return nil, false, err
		}

		priority, err := recordio.DecodeKey(key)
		if err != nil {
			return nil, false, err
		}

		// The explicit found flag keeps a queued priority of zero
		// distinguishable from an empty store.
		if !found || priority > max {
			max = priority
			found = true
		}
	}
	if !found {
		return nil, false, nil
	}
	return recordio.EncodeKey(max), true, nil
}
