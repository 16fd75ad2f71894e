package pool

import "sync"

// SlicePool pools scratch slices of T.
//
// Slices handed out by Get have length zero and are owned by the caller until
// the returned cleanup function is called. Nothing that escapes to the caller
// of a public API may alias a pooled slice.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates a new SlicePool.
func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return &[]T{} },
		},
	}
}

// Get retrieves an empty slice with at least capacity elements of room.
//
// Parameters:
//   - capacity: Minimum capacity of the returned slice
//
// Returns:
//   - *[]T: Pointer to an empty slice; append through the pointer so the grown slice is pooled
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	pairs, cleanup := pairPool.Get(64)
//	defer cleanup()
//	*pairs = append(*pairs, p)
func (sp *SlicePool[T]) Get(capacity int) (*[]T, func()) {
	ptr, _ := sp.pool.Get().(*[]T)
	if cap(*ptr) < capacity {
		*ptr = make([]T, 0, capacity)
	} else {
		*ptr = (*ptr)[:0]
	}

	return ptr, func() {
		var zero T
		s := *ptr
		for i := range s {
			s[i] = zero
		}
		*ptr = s[:0]
		sp.pool.Put(ptr)
	}
}
