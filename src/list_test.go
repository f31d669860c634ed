package ppl

import "testing"

func TestListRendering(t *testing.T) {
	tests := []struct {
		name string
		list *ListValue
		want string
	}{
		{"empty", NewList(), "[]"},
		{"integers", NewList(Integer(1), Integer(-2), Integer(3)), "[1, -2, 3]"},
		{"nested", NewList(Integer(1), NewList(Integer(2), Integer(3)), Integer(4)), "[1, [2, 3], 4]"},
		{"nested empty", NewList(NewList()), "[[]]"},
		{"deep", NewList(NewList(NewList(Integer(7)))), "[[[7]]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.String(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestListPrependAppend(t *testing.T) {
	l := NewList()
	if !l.IsEmpty() {
		t.Fatal("New list should be empty")
	}

	l.Append(Integer(2))
	l.Prepend(Integer(1))
	l.Append(Integer(3))

	if l.Len() != 3 {
		t.Errorf("Expected length 3, got %d", l.Len())
	}
	if got := l.String(); got != "[1, 2, 3]" {
		t.Errorf("Expected [1, 2, 3], got %s", got)
	}

	first, ok := l.First()
	if !ok || first != Integer(1) {
		t.Errorf("Expected first element 1, got %v (ok=%v)", first, ok)
	}

	// Prepend onto an empty list must also set the tail for later appends
	m := NewList()
	m.Prepend(Integer(5))
	m.Append(Integer(6))
	if got := m.String(); got != "[5, 6]" {
		t.Errorf("Expected [5, 6], got %s", got)
	}
}

func TestListFirstOnEmpty(t *testing.T) {
	if e, ok := NewList().First(); ok || e != nil {
		t.Errorf("Expected no first element, got %v", e)
	}
}

func TestDeepCopyIndependence(t *testing.T) {
	inner := NewList(Integer(2), Integer(3))
	src := NewList(Integer(1), inner, Integer(4))

	cp := src.DeepCopy()
	if !cp.Equal(src) {
		t.Fatalf("Copy %s differs from source %s", cp, src)
	}

	// Mutate the copy at the top level and inside the nested list
	cp.Prepend(Integer(0))
	elems := cp.Elements()
	nested, ok := elems[2].(*ListValue)
	if !ok {
		t.Fatalf("Expected nested list at index 2, got %T", elems[2])
	}
	if nested == inner {
		t.Fatal("Nested list was aliased, not copied")
	}
	nested.Prepend(Integer(99))

	if got := src.String(); got != "[1, [2, 3], 4]" {
		t.Errorf("Source changed after mutating copy: %s", got)
	}
	if got := cp.String(); got != "[0, 1, [99, 2, 3], 4]" {
		t.Errorf("Unexpected copy contents: %s", got)
	}
}

func TestTailAsNewList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		tail := NewList().TailAsNewList()
		if !tail.IsEmpty() {
			t.Errorf("Expected empty tail, got %s", tail)
		}
	})

	t.Run("single element", func(t *testing.T) {
		tail := NewList(Integer(1)).TailAsNewList()
		if !tail.IsEmpty() {
			t.Errorf("Expected empty tail, got %s", tail)
		}
	})

	t.Run("keeps order and shares nothing", func(t *testing.T) {
		inner := NewList(Integer(5))
		src := NewList(Integer(1), Integer(2), inner, Integer(3))

		tail := src.TailAsNewList()
		if tail.Len() != src.Len()-1 {
			t.Errorf("Expected length %d, got %d", src.Len()-1, tail.Len())
		}
		if got := tail.String(); got != "[2, [5], 3]" {
			t.Errorf("Expected [2, [5], 3], got %s", got)
		}

		for a := src.head; a != nil; a = a.next {
			for b := tail.head; b != nil; b = b.next {
				if a == b {
					t.Fatal("Tail shares a node with the source")
				}
			}
		}

		tail.Elements()[1].(*ListValue).Prepend(Integer(6))
		tail.Append(Integer(7))
		if got := src.String(); got != "[1, 2, [5], 3]" {
			t.Errorf("Source changed after mutating tail: %s", got)
		}
	})
}

func TestListEqual(t *testing.T) {
	a := NewList(Integer(1), NewList(Integer(2)))
	b := NewList(Integer(1), NewList(Integer(2)))
	c := NewList(Integer(1), Integer(2))

	if !a.Equal(b) {
		t.Error("Expected structurally equal lists to be Equal")
	}
	if a.Equal(c) {
		t.Error("Expected [1, [2]] and [1, 2] to differ")
	}
	if a.Equal(NewList(Integer(1))) {
		t.Error("Expected lists of different length to differ")
	}
}

func TestMatchElement(t *testing.T) {
	kind := func(e Element) string {
		return MatchElement(e,
			func(Integer) string { return "integer" },
			func(*ListValue) string { return "list" },
		)
	}

	if got := kind(Integer(3)); got != "integer" {
		t.Errorf("Expected integer, got %s", got)
	}
	if got := kind(NewList()); got != "list" {
		t.Errorf("Expected list, got %s", got)
	}
}
