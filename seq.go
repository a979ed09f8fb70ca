package listkit

import "iter"

// All returns an iterator over the contents of the list starting at head.
func All[T any](head *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := head; n != nil; n = n.next {
			if !yield(n.Content) {
				return
			}
		}
	}
}

// FromSlice builds a list holding values in order. No values gives the empty
// list.
func FromSlice[T any](values ...T) *Node[T] {
	var head, tail *Node[T]
	for _, v := range values {
		n := New(v)
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	return head
}

// ToSlice copies the contents of the list into a slice, head first.
func ToSlice[T any](head *Node[T]) []T {
	dest := make([]T, 0, Size(head))
	for n := head; n != nil; n = n.next {
		dest = append(dest, n.Content)
	}
	return dest
}
