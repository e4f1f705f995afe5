// Package freelist provides a growable LIFO stack used to recycle detached
// queue nodes. Capacity management is explicit: the stack starts with a
// caller-supplied capacity and grows by a configurable factor once it is
// full, instead of relying on append's internal policy.
//
// Pop hands back the most recently pushed element first, so hot queues reuse
// the storage that was touched last. Reset truncates the container without
// releasing the elements themselves; they stay owned by the arena they were
// allocated from.
package freelist
