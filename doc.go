/*
Package listkit provides a singly linked list over caller-owned content.

# Overview

A list is its head node. There is no list object: the caller holds a
*Node[T], and nil is the empty list. Operations that may change which node
comes first take the address of the caller's head variable:

	var head *listkit.Node[string]
	listkit.AddBack(&head, listkit.New("a"))
	listkit.AddFront(&head, listkit.New("b")) // b, a

The kit never interprets content. Whether deleting a node also releases its
content is stated at each call site with an Ownership:

	listkit.Clear(&head, listkit.Owned(listkit.DestructorFunc[*os.File](func(f *os.File) {
	    f.Close()
	})))

	listkit.Clear(&head, listkit.Borrowed[string]())

# Operations

  - New, DeleteOne: build and release a single node
  - AddFront, AddBack: insert at head (O(1)) or tail (O(n))
  - Size, Last: queries by traversal
  - Clear: delete every node front to back
  - ForEach: visit every content head to tail
  - Map, MapWith: build a transformed copy, all or nothing
  - All, FromSlice, ToSlice: bridges to iterators and slices

# Capabilities

Callers plug behaviour in through function types, each with small
combinators:

  - DestructorFunc: Empty, Compose, WithLogging, WithMetrics
  - TransformFunc: Tap, Recover; Identity and Chain build new ones
  - VisitFunc: Empty, Compose, Filter
  - AllocFunc: Heap, Limit, Tap, WithMetrics

# Map rollback

Map calls its transform once per input node, in order. If a transform fails or
the allocator is exhausted, every output node built by that call is deleted
through the Ownership, each content released exactly once, and Map returns a
nil list with the cause wrapped:

	out, err := listkit.MapWith(listkit.Heap[int]().Limit(2), in, double, own)
	if errors.Is(err, listkit.ErrExhausted) {
	    // out is nil, nothing leaked
	}

# Concurrency

Nothing here is safe for concurrent use of the same list. Metrics counters are
mutex-guarded and may be shared.
*/
package listkit
