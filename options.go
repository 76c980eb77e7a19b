package kvq

import (
	"github.com/davidvella/kvq/store"
	"github.com/davidvella/kvq/store/hashmap"
)

// options defines all configuration options for the queue.
type options struct {
	store store.Store
}

// Option is a function that configures the queue options.
type Option func(*options)

// WithStore sets the key-value store backing the queue. The queue takes
// exclusive ownership of the store; nothing else may read or write it. A
// store that implements store.Ordered turns the highest-priority scan into
// a direct max-key lookup.
func WithStore(s store.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		store: hashmap.New(),
	}
}
