package listkit

import (
	"errors"
	"fmt"
	"sync"
)

// ErrTransformPanic wraps a panic recovered by TransformFunc.Recover.
var ErrTransformPanic = errors.New("listkit: transform panicked")

// ============================================================================
// Destructors and Ownership
// ============================================================================

// DestructorFunc releases one content value when its node is deleted.
//
// Example:
//
//	release := DestructorFunc[*os.File](func(f *os.File) {
//	    f.Close()
//	}).WithLogging(log.Print)
type DestructorFunc[T any] func(content T)

// Empty returns a destructor that leaves content untouched (Monoid identity).
func (f DestructorFunc[T]) Empty() DestructorFunc[T] {
	return func(T) {}
}

// Compose runs this destructor, then next, on the same content (Monoid operation).
func (f DestructorFunc[T]) Compose(next DestructorFunc[T]) DestructorFunc[T] {
	return func(content T) {
		f(content)
		next(content)
	}
}

// WithLogging reports every release to logger.
func (f DestructorFunc[T]) WithLogging(logger func(string)) DestructorFunc[T] {
	return func(content T) {
		logger(fmt.Sprintf("release %v", content))
		f(content)
	}
}

// WithMetrics counts releases in metrics.
func (f DestructorFunc[T]) WithMetrics(metrics *Metrics) DestructorFunc[T] {
	return func(content T) {
		f(content)
		metrics.mu.Lock()
		metrics.Releases++
		metrics.mu.Unlock()
	}
}

// Ownership states, at the call site, whether deleting a node also releases
// its content. Build one with Owned or Borrowed; the zero value borrows.
type Ownership[T any] struct {
	release DestructorFunc[T]
}

// Owned returns an Ownership under which the list owns content and release
// runs once per deleted node. A nil release is an assembly error and panics.
func Owned[T any](release DestructorFunc[T]) Ownership[T] {
	if release == nil {
		panic("listkit: Owned: nil release")
	}
	return Ownership[T]{release: release}
}

// Borrowed returns an Ownership under which deleting a node never touches its
// content.
func Borrowed[T any]() Ownership[T] {
	return Ownership[T]{}
}

// Owns reports whether content is released on delete.
func (o Ownership[T]) Owns() bool {
	return o.release != nil
}

// Release releases content if o owns it.
func (o Ownership[T]) Release(content T) {
	if o.release != nil {
		o.release(content)
	}
}

// ============================================================================
// Transforms
// ============================================================================

// TransformFunc maps one content value to another. A non-nil error marks the
// transform as failed for that value.
//
// Example:
//
//	upper := TransformFunc[string, string](func(s string) (string, error) {
//	    return strings.ToUpper(s), nil
//	}).Recover()
type TransformFunc[T, U any] func(content T) (U, error)

// Identity returns the transform that hands content back unchanged.
func Identity[T any]() TransformFunc[T, T] {
	return func(content T) (T, error) {
		return content, nil
	}
}

// Chain feeds the output of f into g. g is not called when f fails.
func Chain[T, U, V any](f TransformFunc[T, U], g TransformFunc[U, V]) TransformFunc[T, V] {
	return func(content T) (V, error) {
		mid, err := f(content)
		if err != nil {
			var zero V
			return zero, err
		}
		return g(mid)
	}
}

// Tap allows side effects without modifying the result.
func (f TransformFunc[T, U]) Tap(fn func(T, U, error)) TransformFunc[T, U] {
	return func(content T) (U, error) {
		out, err := f(content)
		fn(content, out, err)
		return out, err
	}
}

// Recover turns a panic inside the transform into an error wrapping
// ErrTransformPanic.
func (f TransformFunc[T, U]) Recover() TransformFunc[T, U] {
	return func(content T) (out U, err error) {
		defer func() {
			if r := recover(); r != nil {
				var zero U
				out, err = zero, fmt.Errorf("%w: %v", ErrTransformPanic, r)
			}
		}()
		return f(content)
	}
}

// ============================================================================
// Visitors
// ============================================================================

// VisitFunc observes one content value during ForEach.
type VisitFunc[T any] func(content T)

// Empty returns a visitor that does nothing (Monoid identity).
func (f VisitFunc[T]) Empty() VisitFunc[T] {
	return func(T) {}
}

// Compose visits with this visitor, then next (Monoid operation).
func (f VisitFunc[T]) Compose(next VisitFunc[T]) VisitFunc[T] {
	return func(content T) {
		f(content)
		next(content)
	}
}

// Filter only visits content matching the predicate.
func (f VisitFunc[T]) Filter(predicate func(T) bool) VisitFunc[T] {
	return func(content T) {
		if predicate(content) {
			f(content)
		}
	}
}

// ============================================================================
// Allocators
// ============================================================================

// AllocFunc provides fresh nodes. Exhaustion is its only failure mode and is
// reported through the error.
type AllocFunc[T any] func() (*Node[T], error)

// Heap returns the default allocator. It never fails.
func Heap[T any]() AllocFunc[T] {
	return func() (*Node[T], error) {
		return new(Node[T]), nil
	}
}

// New allocates a detached node holding content. A nil allocator behaves like
// Heap.
func (f AllocFunc[T]) New(content T) (*Node[T], error) {
	if f == nil {
		return New(content), nil
	}
	n, err := f()
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrExhausted
	}
	n.Content = content
	n.next = nil
	return n, nil
}

// Limit fails with ErrExhausted once limit nodes have been allocated.
func (f AllocFunc[T]) Limit(limit int) AllocFunc[T] {
	remaining := limit
	return func() (*Node[T], error) {
		if remaining <= 0 {
			return nil, ErrExhausted
		}
		n, err := f()
		if err == nil {
			remaining--
		}
		return n, err
	}
}

// Tap allows side effects without modifying the allocation.
func (f AllocFunc[T]) Tap(fn func(*Node[T], error)) AllocFunc[T] {
	return func() (*Node[T], error) {
		n, err := f()
		fn(n, err)
		return n, err
	}
}

// WithMetrics counts allocations and allocation failures in metrics.
func (f AllocFunc[T]) WithMetrics(metrics *Metrics) AllocFunc[T] {
	return func() (*Node[T], error) {
		n, err := f()
		metrics.mu.Lock()
		if err != nil {
			metrics.AllocFailures++
		} else {
			metrics.Allocations++
		}
		metrics.mu.Unlock()
		return n, err
	}
}

// Metrics tracks node allocations and content releases.
type Metrics struct {
	mu            sync.Mutex
	Allocations   int64
	AllocFailures int64
	Releases      int64
}
