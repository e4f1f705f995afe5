package arenaqueue

import (
	"errors"

	"github.com/timzifer/arena_queue/internal/arena"
	"github.com/timzifer/arena_queue/internal/freelist"
	"github.com/timzifer/arena_queue/internal/telemetry"
)

// ErrArenaExhausted is returned by Append and Prepend when neither the free
// list nor the arena can provide a node. The value is dropped and the queue
// is left untouched.
var ErrArenaExhausted = errors.New("arenaqueue: arena exhausted")

// ErrQueueEmpty is returned by Shift when the queue holds no elements.
var ErrQueueEmpty = errors.New("arenaqueue: queue is empty")

type node[T any] struct {
	value T
	next  *node[T]
}

// Queue is a singly linked queue backed by a chunked arena. Every node lives
// in an arena slot for the lifetime of the queue; detached nodes are parked
// on a free list and reused before new slots are requested.
type Queue[T any] struct {
	head    *node[T]
	tail    *node[T]
	size    int
	alloc   *arena.Arena[node[T]]
	free    *freelist.Stack[*node[T]]
	metrics telemetry.AcquireMetrics
}

// Stats reports how nodes were obtained over the lifetime of a queue.
type Stats struct {
	// ArenaAllocs counts fresh slot allocations from the arena.
	ArenaAllocs uint64
	// Reuses counts nodes recycled through the free list.
	Reuses uint64
	// Exhausted counts failed acquisitions, one per dropped value.
	Exhausted uint64
}

// New creates a queue whose nodes are allocated from an arena sized for
// arenaCapacity nodes. With a non-positive arenaCapacity the queue comes up
// without an allocator: it stays empty and every operation reports a checked
// error instead of misbehaving. The free list starts with capacity 15 and
// grows by factor 1.5 unless configured otherwise.
func New[T any](arenaCapacity int, opts ...Option) *Queue[T] {
	q := &Queue[T]{}

	alloc, err := arena.New[node[T]](arenaCapacity)
	if err != nil {
		return q
	}
	q.alloc = alloc

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.disableReuse {
		q.free = freelist.New[*node[T]](o.freeListCapacity, o.freeListGrowth)
	}

	return q
}

// Len returns the number of elements currently linked in the queue.
func (q *Queue[T]) Len() int {
	return q.size
}

// Head returns the payload of the front element without removing it.
func (q *Queue[T]) Head() (zero T, _ bool) {
	if q.head == nil {
		return zero, false
	}
	return q.head.value, true
}

// Tail returns the payload of the back element without removing it.
func (q *Queue[T]) Tail() (zero T, _ bool) {
	if q.tail == nil {
		return zero, false
	}
	return q.tail.value, true
}

// Append adds value as the new tail.
func (q *Queue[T]) Append(value T) error {
	n := q.acquire()
	if n == nil {
		return ErrArenaExhausted
	}

	n.value = value
	n.next = nil

	if q.size == 0 {
		q.head = n
		q.tail = n
	} else {
		q.tail.next = n
		q.tail = n
	}

	q.size++
	return nil
}

// Prepend adds value as the new head.
func (q *Queue[T]) Prepend(value T) error {
	n := q.acquire()
	if n == nil {
		return ErrArenaExhausted
	}

	n.value = value
	n.next = q.head

	if q.size == 0 {
		q.tail = n
	}

	q.head = n
	q.size++
	return nil
}

// Shift removes the front element and returns its payload. The detached node
// is pushed onto the free list for later reuse; without a free list it stays
// unreachable inside the arena until Destroy.
func (q *Queue[T]) Shift() (zero T, _ error) {
	if q.head == nil {
		return zero, ErrQueueEmpty
	}

	n := q.head
	if q.head == q.tail {
		q.head = nil
		q.tail = nil
	} else {
		q.head = n.next
	}
	q.size--

	value := n.value
	q.release(n)
	return value, nil
}

// Clear detaches every element and recycles the nodes through the free list.
// The arena keeps all its slots, so subsequent inserts reuse them.
func (q *Queue[T]) Clear() {
	for n := q.head; n != nil; {
		next := n.next
		q.release(n)
		n = next
	}

	q.head = nil
	q.tail = nil
	q.size = 0
}

// Destroy releases the arena, invalidating every node the queue ever handed
// out, and truncates the free-list container without touching its elements.
// Calling Destroy twice is a no-op: the allocator reference is cleared after
// the release.
func (q *Queue[T]) Destroy() {
	if q.alloc != nil {
		q.alloc.Release()
		q.alloc = nil
	}

	q.head = nil
	q.tail = nil
	q.size = 0

	if q.free != nil {
		q.free.Reset()
		q.free = nil
	}
}

// Stats returns a snapshot of the acquisition counters.
func (q *Queue[T]) Stats() Stats {
	allocs, reuses, exhausted := q.metrics.Snapshot()
	return Stats{ArenaAllocs: allocs, Reuses: reuses, Exhausted: exhausted}
}

// acquire hands out a node ready to carry payload and link data: the most
// recently freed node first, a fresh arena slot otherwise.
func (q *Queue[T]) acquire() *node[T] {
	if q.free != nil {
		if n, ok := q.free.Pop(); ok {
			q.metrics.RecordReuse()
			return n
		}
	}

	if q.alloc == nil {
		q.metrics.RecordExhausted()
		return nil
	}

	n, ok := q.alloc.Alloc()
	if !ok {
		q.metrics.RecordExhausted()
		return nil
	}

	q.metrics.RecordArenaAlloc()
	return n
}

// release parks a detached node on the free list, clearing payload and link
// so no stale references keep foreign values alive.
func (q *Queue[T]) release(n *node[T]) {
	var zero T
	n.value = zero
	n.next = nil

	if q.free != nil {
		q.free.Push(n)
	}
}
