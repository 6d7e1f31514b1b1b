// Package memo caches lazily computed, per-instance values.
//
// A Cell is meant to be embedded as a field of the struct that owns the
// cached value:
//
//	type OrgClient struct {
//		org memo.Cell[any]
//	}
//
//	func (c *OrgClient) Org(ctx context.Context) (any, error) {
//		return c.org.Get(func() (any, error) { return c.fetch(ctx) })
//	}
//
// Cells are not safe for concurrent use. Callers that share an owner across
// goroutines must synchronize access themselves.
package memo

// Cell holds a value computed at most once. The zero value is empty and
// ready to use.
type Cell[T any] struct {
	value T
	done  bool
}

// Get returns the cached value, running compute first if the cell is still
// empty. A value is only stored when compute succeeds; on error the cell
// stays empty and the next Get runs compute again.
func (c *Cell[T]) Get(compute func() (T, error)) (T, error) {
	if c.done {
		return c.value, nil
	}
	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	c.value = v
	c.done = true
	return c.value, nil
}
