package recordio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
)

// KeySize is the width of an encoded priority key in bytes.
const KeySize = 8

// MaxPayloadSize is the largest payload a single record can carry. The
// record format spends one byte on the length prefix, which caps payloads
// at 255 bytes.
const MaxPayloadSize = 255

var (
	// ErrMalformedKey indicates a store key that is not exactly KeySize
	// bytes, i.e. one that was not produced by EncodeKey.
	ErrMalformedKey = errors.New("recordio: key is not 8 bytes")

	// ErrMalformedRecord indicates a bucket shorter than its own declared
	// length prefix, i.e. one that was not produced by EncodeRecord.
	ErrMalformedRecord = errors.New("recordio: bucket shorter than declared record length")

	// ErrPayloadTooLarge indicates a payload longer than MaxPayloadSize.
	ErrPayloadTooLarge = errors.New("recordio: payload exceeds 255 bytes")
)

// EncodeKey serializes a priority as a fixed 8-byte big-endian key.
// Big-endian is load-bearing: it makes unsigned numeric order equal
// lexicographic byte order, so ordered stores can compare keys directly.
func EncodeKey(priority uint64) []byte {
	key := make([]byte, KeySize)
	binary.BigEndian.PutUint64(key, priority)
	return key
}

// DecodeKey recovers the priority from an encoded key. It returns
// ErrMalformedKey if the key is not exactly 8 bytes, which signals a store
// populated outside the documented insert path.
func DecodeKey(key []byte) (uint64, error) {
	if len(key) != KeySize {
		return 0, fmt.Errorf("%w: got %d bytes", ErrMalformedKey, len(key))
	}
	return binary.BigEndian.Uint64(key), nil
}

// EncodeRecord frames a payload as a single length-prefixed record: one
// length byte followed by exactly that many payload bytes. It returns
// ErrPayloadTooLarge if the payload does not fit the one-byte prefix.
func EncodeRecord(payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrPayloadTooLarge, len(payload))
	}

	record := make([]byte, 1+len(payload))
	record[0] = byte(len(payload))
	copy(record[1:], payload)
	return record, nil
}

// DecodeFront splits a bucket into its first record's payload and the
// remaining records. It returns ErrMalformedRecord if the bucket is shorter
// than the length its own prefix declares.
func DecodeFront(bucket []byte) (payload, rest []byte, err error) {
	if len(bucket) == 0 {
		return nil, nil, fmt.Errorf("%w: empty bucket", ErrMalformedRecord)
	}

	n := int(bucket[0])
	if len(bucket) < 1+n {
		return nil, nil, fmt.Errorf("%w: declared %d bytes, %d available",
			ErrMalformedRecord, n, len(bucket)-1)
	}

	return bucket[1 : 1+n], bucket[1+n:], nil
}

// Size returns the number of bytes a payload occupies once encoded,
// including the length prefix.
func Size(payload []byte) int {
	return 1 + len(payload)
}

// Records iterates a bucket's payloads front to back. Iteration stops after
// yielding ErrMalformedRecord if the bucket's framing is broken.
func Records(bucket []byte) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for len(bucket) > 0 {
			payload, rest, err := DecodeFront(bucket)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(payload, nil) {
				return
			}
			bucket = rest
		}
	}
}
