package arenaqueue

type options struct {
	freeListCapacity int
	freeListGrowth   float64
	disableReuse     bool
}

func defaultOptions() options {
	return options{
		freeListCapacity: 15,
		freeListGrowth:   1.5,
	}
}

// Option adjusts the free-list behaviour of a queue.
type Option func(*options)

// WithFreeListCapacity sets the initial capacity of the free list.
func WithFreeListCapacity(capacity int) Option {
	return func(o *options) {
		o.freeListCapacity = capacity
	}
}

// WithFreeListGrowth sets the growth factor applied once the free list is full.
func WithFreeListGrowth(growth float64) Option {
	return func(o *options) {
		o.freeListGrowth = growth
	}
}

// WithoutReuse disables the free list entirely. Detached nodes then stay
// unreachable inside the arena and every insert consumes a fresh slot.
func WithoutReuse() Option {
	return func(o *options) {
		o.disableReuse = true
	}
}
