package ppl

import (
	"strconv"
	"strings"
)

// Element is a value stored in a list: an Integer or a nested *ListValue
type Element interface {
	isElement()
}

// Integer is a machine integer element
type Integer int64

func (Integer) isElement() {}

func (*ListValue) isElement() {}

// MatchElement dispatches on the two element variants. All element consumers go
// through here so a new variant cannot be added without touching every caller.
func MatchElement[T any](e Element, onInteger func(Integer) T, onList func(*ListValue) T) T {
	switch v := e.(type) {
	case Integer:
		return onInteger(v)
	case *ListValue:
		return onList(v)
	}
	panic("ppl: unknown element variant")
}

// copyElement returns an independent copy of e
func copyElement(e Element) Element {
	return MatchElement(e,
		func(i Integer) Element { return i },
		func(l *ListValue) Element { return l.DeepCopy() },
	)
}

// renderElement writes the display form of e
func renderElement(sb *strings.Builder, e Element) {
	MatchElement(e,
		func(i Integer) struct{} {
			sb.WriteString(strconv.FormatInt(int64(i), 10))
			return struct{}{}
		},
		func(l *ListValue) struct{} {
			l.render(sb)
			return struct{}{}
		},
	)
}

type listNode struct {
	value Element
	next  *listNode
}

// ListValue is a singly-linked list of elements. A ListValue is owned by exactly one
// symbol; values move between symbols only through DeepCopy or TailAsNewList.
type ListValue struct {
	head   *listNode
	tail   *listNode
	length int
}

// NewList creates a list holding elems in order
func NewList(elems ...Element) *ListValue {
	l := &ListValue{}
	for _, e := range elems {
		l.Append(e)
	}
	return l
}

// Prepend inserts e as the new first element
func (l *ListValue) Prepend(e Element) {
	n := &listNode{value: e, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.length++
}

// Append inserts e at the end. Only used while building fresh lists.
func (l *ListValue) Append(e Element) {
	n := &listNode{value: e}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

// First returns the head element, or false if the list is empty
func (l *ListValue) First() (Element, bool) {
	if l.head == nil {
		return nil, false
	}
	return l.head.value, true
}

// IsEmpty reports whether the list has no elements
func (l *ListValue) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements
func (l *ListValue) Len() int {
	return l.length
}

// Elements returns the elements in order. Nested lists are not copied.
func (l *ListValue) Elements() []Element {
	elems := make([]Element, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		elems = append(elems, n.value)
	}
	return elems
}

// TailAsNewList returns a new list with deep copies of every element but the first.
// Empty and single-element lists yield an empty list.
func (l *ListValue) TailAsNewList() *ListValue {
	result := &ListValue{}
	if l.head == nil {
		return result
	}
	for n := l.head.next; n != nil; n = n.next {
		result.Append(copyElement(n.value))
	}
	return result
}

// DeepCopy returns a list sharing no nodes or nested lists with l
func (l *ListValue) DeepCopy() *ListValue {
	result := &ListValue{}
	for n := l.head; n != nil; n = n.next {
		result.Append(copyElement(n.value))
	}
	return result
}

// Equal reports structural equality
func (l *ListValue) Equal(other *ListValue) bool {
	if l.length != other.length {
		return false
	}
	a, b := l.head, other.head
	for a != nil && b != nil {
		if !elementsEqual(a.value, b.value) {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}

func elementsEqual(a, b Element) bool {
	return MatchElement(a,
		func(i Integer) bool {
			j, ok := b.(Integer)
			return ok && i == j
		},
		func(l *ListValue) bool {
			m, ok := b.(*ListValue)
			return ok && l.Equal(m)
		},
	)
}

// String renders the list as [e1, e2, ...]
func (l *ListValue) String() string {
	var sb strings.Builder
	l.render(&sb)
	return sb.String()
}

func (l *ListValue) render(sb *strings.Builder) {
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteString(", ")
		}
		renderElement(sb, n.value)
	}
	sb.WriteByte(']')
}
