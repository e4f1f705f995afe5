package arenaqueue

// GenericQueue is a pre-instantiated queue for opaque payloads. Callers that
// mix element types can use it directly instead of instantiating their own
// Queue type.
type GenericQueue = Queue[any]

// NewGeneric creates a GenericQueue.
func NewGeneric(arenaCapacity int, opts ...Option) *GenericQueue {
	return New[any](arenaCapacity, opts...)
}
