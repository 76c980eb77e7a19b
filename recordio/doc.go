// Package recordio implements the binary encoding that lets a flat
// key-value store emulate a priority queue. It converts 64-bit priorities to
// fixed-width sortable keys and frames payloads as length-prefixed records
// that concatenate into buckets.
//
// Keys are 8-byte big-endian serializations of the priority, so unsigned
// numeric order equals lexicographic byte order. Records carry a one-byte
// length prefix followed by the payload, which caps payloads at 255 bytes.
//
// Basic usage:
//
//	key := recordio.EncodeKey(42)
//
//	record, err := recordio.EncodeRecord([]byte("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Buckets are concatenations of records; read them front to back.
//	payload, rest, err := recordio.DecodeFront(record)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("payload %q, %d bytes remaining\n", payload, len(rest))
//
// All functions are pure; the package holds no state.
package recordio
