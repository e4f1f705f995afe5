package arena

import "errors"

// chunkSlots begrenzt die Anzahl der Slots, die ein einzelner Chunk trägt.
const chunkSlots = 64

// ErrInvalidCapacity meldet, dass keine positive Slot-Anzahl angefordert wurde.
var ErrInvalidCapacity = errors.New("arena: capacity must be positive")

// Arena verwaltet eine feste Anzahl an Slots des Typs T in vorab
// dimensionierten Chunks. Ein Chunk wird nach seiner Anlage nie verschoben
// oder vergrößert, daher bleiben alle herausgegebenen Slot-Adressen für die
// gesamte Lebensdauer der Arena stabil. Einzelne Slots können nicht
// zurückgegeben werden; Release gibt die gesamte Arena auf einmal frei.
type Arena[T any] struct {
	chunks   [][]T
	capacity int
	used     int
	released bool
}

// New erzeugt eine Arena mit Platz für genau slots Elemente. Die Chunks
// werden erst bei Bedarf angelegt.
func New[T any](slots int) (*Arena[T], error) {
	if slots <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Arena[T]{capacity: slots}, nil
}

// Alloc gibt einen Zeiger auf den nächsten freien Slot zurück. Ist die Arena
// erschöpft oder bereits freigegeben, liefert Alloc false.
func (a *Arena[T]) Alloc() (*T, bool) {
	if a.released || a.used == a.capacity {
		return nil, false
	}

	idx := a.used % chunkSlots
	if idx == 0 {
		size := chunkSlots
		if remaining := a.capacity - a.used; remaining < size {
			size = remaining
		}
		a.chunks = append(a.chunks, make([]T, size))
	}

	slot := &a.chunks[len(a.chunks)-1][idx]
	a.used++
	return slot, true
}

// Len gibt die Anzahl der bereits vergebenen Slots zurück.
func (a *Arena[T]) Len() int {
	return a.used
}

// Cap gibt die Gesamtkapazität der Arena zurück; nach Release ist sie null.
func (a *Arena[T]) Cap() int {
	return a.capacity
}

// Release gibt alle Chunks auf einmal frei und entwertet damit sämtliche
// jemals vergebenen Slots. Weitere Alloc-Aufrufe schlagen fehl. Release ist
// idempotent.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.capacity = 0
	a.used = 0
	a.released = true
}
