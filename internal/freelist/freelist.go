package freelist

const (
	defaultCapacity = 15
	minGrowth       = 1.1
)

type Stack[T any] struct {
	items  []T
	growth float64
}

func New[T any](capacity int, growth float64) *Stack[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if growth < minGrowth {
		growth = minGrowth
	}
	return &Stack[T]{
		items:  make([]T, 0, capacity),
		growth: growth,
	}
}

func (s *Stack[T]) Push(v T) {
	if len(s.items) == cap(s.items) {
		s.grow(len(s.items) + 1)
	}
	s.items = append(s.items, v)
}

func (s *Stack[T]) Pop() (zero T, _ bool) {
	if len(s.items) == 0 {
		return zero, false
	}

	last := len(s.items) - 1
	v := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return v, true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Cap() int {
	return cap(s.items)
}

func (s *Stack[T]) Reset() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}

func (s *Stack[T]) grow(need int) {
	next := int(float64(cap(s.items)) * s.growth)
	if next < need {
		next = need
	}
	resized := make([]T, len(s.items), next)
	copy(resized, s.items)
	s.items = resized
}
