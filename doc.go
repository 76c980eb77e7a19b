// Package kvq implements a priority queue over opaque byte payloads backed
// by a flat key-value store rather than a heap. Priorities are 64-bit
// unsigned integers encoded as fixed-width big-endian keys; payloads are
// stored as length-prefixed records concatenated per priority, which gives
// first-in-first-out ordering among payloads that share a priority.
//
// The store is pluggable. The default is an unordered in-memory map, in
// which case finding the highest priority is a linear scan over the
// distinct priorities present. Stores that keep keys in byte order
// (store/btree, store/pebble) answer the same question with a direct
// max-key lookup; the big-endian key encoding makes the two equivalent.
//
// Key features:
//   - O(1) insertion into an existing priority tier
//   - FIFO ordering within a priority tier by construction
//   - Pluggable store backends behind a small interface
//   - No persistence: queue lifetime equals process lifetime
//
// Basic usage:
//
//	q := kvq.New()
//
//	_ = q.Insert([]byte("routine"), 1)
//	_ = q.Insert([]byte("urgent"), 10)
//
//	payload, ok, err := q.Pop()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if ok {
//	    fmt.Printf("popped %s\n", payload) // popped urgent
//	}
//
//	// Swap in an ordered backend:
//	q = kvq.New(kvq.WithStore(btree.New()))
//
// Payloads are capped at 255 bytes by the one-byte record length prefix;
// Insert fails with recordio.ErrPayloadTooLarge beyond that.
//
// A Queue exclusively owns its store and is not safe for concurrent use.
// Embedders that share a queue across goroutines must serialize every call
// behind a single mutex.
package kvq
