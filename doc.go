// Package arenaqueue provides a generic singly linked queue whose nodes are
// allocated from a chunked arena and recycled through a LIFO free list.
//
// Nodes removed by Shift are never handed back to the arena. They move onto
// the free list instead, and later inserts reuse the most recently freed
// node before a fresh arena slot is requested. Destroy releases all node
// memory at once by dropping the arena.
//
// The queue performs no synchronisation. Sharing one instance across
// goroutines requires external locking, and the arena and free list belong
// to exactly one queue.
package arenaqueue
