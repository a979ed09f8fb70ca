package listkit

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted is returned by an allocator that cannot provide another node.
	ErrExhausted = errors.New("listkit: allocator exhausted")

	// ErrNoTransform is returned by Map when a non-empty list is mapped with a nil transform.
	ErrNoTransform = errors.New("listkit: nil transform")
)

// ============================================================================
// Node Construction / Destruction
// ============================================================================

// Node is one link of a singly linked list. A list is identified by its head
// node; a nil *Node is the empty list.
//
// Content belongs to the caller. The kit stores it verbatim and never looks at
// it; whether the list owns it is decided per call through an Ownership.
type Node[T any] struct {
	Content T
	next    *Node[T]
}

// Next returns the successor of n, or nil if n is the last node or nil itself.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// New returns a detached node holding content. The zero value of T is a valid
// content.
//
// Example:
//
//	var head *Node[string]
//	AddBack(&head, New("hello"))
func New[T any](content T) *Node[T] {
	return &Node[T]{Content: content}
}

// DeleteOne releases a single node. If own owns content, its release runs once
// on n.Content before the node itself is released. A nil n is a no-op.
//
// n must already be detached from any list: DeleteOne does not follow or
// destroy the successor, it only severs n's own link so the released node keeps
// nothing reachable.
func DeleteOne[T any](n *Node[T], own Ownership[T]) {
	if n == nil {
		return
	}
	own.Release(n.Content)
	var zero T
	n.Content = zero
	n.next = nil
}

// ============================================================================
// Insertion
// ============================================================================

// AddFront links n in front of the list held in *head and makes it the new
// head. A nil head slot or a nil n is a no-op.
func AddFront[T any](head **Node[T], n *Node[T]) {
	if head == nil || n == nil {
		return
	}
	n.next = *head
	*head = n
}

// AddBack attaches n after the last node of the list held in *head. On an
// empty list n becomes the head. n always ends up as the tail: any successor
// it carried is dropped. A nil head slot or a nil n is a no-op.
//
// AddBack walks the whole list, O(n) in its length.
func AddBack[T any](head **Node[T], n *Node[T]) {
	if head == nil || n == nil {
		return
	}
	n.next = nil
	if *head == nil {
		*head = n
		return
	}
	Last(*head).next = n
}

// ============================================================================
// Queries
// ============================================================================

// Size counts the nodes of the list starting at head.
func Size[T any](head *Node[T]) int {
	size := 0
	for n := head; n != nil; n = n.next {
		size++
	}
	return size
}

// Last returns the tail node of the list starting at head, or nil if the list
// is empty.
func Last[T any](head *Node[T]) *Node[T] {
	if head == nil {
		return nil
	}
	n := head
	for n.next != nil {
		n = n.next
	}
	return n
}

// ============================================================================
// Bulk Deletion
// ============================================================================

// Clear deletes every node of the list held in *head front to back, releasing
// content through own, and leaves *head nil. A nil head slot is a no-op.
func Clear[T any](head **Node[T], own Ownership[T]) {
	if head == nil {
		return
	}
	n := *head
	for n != nil {
		next := n.next
		DeleteOne(n, own)
		n = next
	}
	*head = nil
}

// ============================================================================
// Traversal
// ============================================================================

// ForEach calls visit once per node content, head to tail. Every node is
// visited; a visitor that needs to report failure does so through state it
// closes over. A nil visit is a no-op.
func ForEach[T any](head *Node[T], visit VisitFunc[T]) {
	if visit == nil {
		return
	}
	for n := head; n != nil; n = n.next {
		visit(n.Content)
	}
}

// ============================================================================
// Transform-to-New-List
// ============================================================================

// Map builds a new list holding f applied to every content of the list at
// head, in the same order. It is MapWith using the heap allocator.
func Map[T, U any](head *Node[T], f TransformFunc[T, U], own Ownership[U]) (*Node[U], error) {
	return MapWith(Heap[U](), head, f, own)
}

// MapWith is Map with an explicit node allocator.
//
// The result is all or nothing. If f fails or alloc cannot provide a node, every
// output node built so far is deleted through own (content released exactly
// once), and MapWith returns a nil list with the cause wrapped. Content that f
// produced for the failing node itself is released too. The input list is
// never modified.
//
// An empty input list maps to an empty list with a nil error.
func MapWith[T, U any](alloc AllocFunc[U], head *Node[T], f TransformFunc[T, U], own Ownership[U]) (*Node[U], error) {
	if head == nil {
		return nil, nil
	}
	if f == nil {
		return nil, ErrNoTransform
	}

	var out, tail *Node[U]
	k := 0
	for n := head; n != nil; n = n.next {
		k++
		content, err := f(n.Content)
		if err != nil {
			Clear(&out, own)
			return nil, fmt.Errorf("listkit: map node %d: %w", k, err)
		}
		node, err := alloc.New(content)
		if err != nil {
			own.Release(content)
			Clear(&out, own)
			return nil, fmt.Errorf("listkit: map node %d: %w", k, err)
		}
		if tail == nil {
			out = node
		} else {
			tail.next = node
		}
		tail = node
	}
	return out, nil
}
