package freelist

import "testing"

func TestStackPopIsLIFO(t *testing.T) {
	s := New[int](4, 1.5)

	for i := 0; i < 4; i++ {
		s.Push(i)
	}
	if got := s.Len(); got != 4 {
		t.Fatalf("expected length 4, got %d", got)
	}

	for want := 3; want >= 0; want-- {
		v, ok := s.Pop()
		if !ok || v != want {
			t.Fatalf("expected pop to return %d,true got %v,%v", want, v, ok)
		}
	}

	if _, ok := s.Pop(); ok {
		t.Fatalf("expected pop on empty stack to fail")
	}
}

func TestStackGrowsByFactor(t *testing.T) {
	s := New[int](2, 1.5)

	for i := 0; i < 20; i++ {
		s.Push(i)
	}
	if got := s.Len(); got != 20 {
		t.Fatalf("expected length 20, got %d", got)
	}
	if s.Cap() < 20 {
		t.Fatalf("expected capacity to cover 20 elements, got %d", s.Cap())
	}

	for want := 19; want >= 0; want-- {
		v, ok := s.Pop()
		if !ok || v != want {
			t.Fatalf("expected pop to return %d,true got %v,%v", want, v, ok)
		}
	}
}

func TestStackDefaultsForInvalidArguments(t *testing.T) {
	s := New[int](0, 0)

	if got := s.Cap(); got != 15 {
		t.Fatalf("expected default capacity 15, got %d", got)
	}

	s.Push(1)
	if v, ok := s.Pop(); !ok || v != 1 {
		t.Fatalf("expected pop to return 1,true got %v,%v", v, ok)
	}
}

func TestStackResetKeepsCapacity(t *testing.T) {
	s := New[*int](4, 1.5)

	v := 42
	s.Push(&v)
	s.Push(&v)
	s.Reset()

	if got := s.Len(); got != 0 {
		t.Fatalf("expected empty stack after reset, got length %d", got)
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("expected pop after reset to fail")
	}

	s.Push(&v)
	if got := s.Len(); got != 1 {
		t.Fatalf("expected length 1 after push, got %d", got)
	}
}
