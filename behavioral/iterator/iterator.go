// Package iterator demonstrates the Iterator pattern.
//
// Container hides its storage behind Iterator, an explicit cursor with
// HasNext, Next, Current and Reset. Reading past the end is not an error:
// Next and Current return the zero value with ok == false. For range loops
// the container also exposes All as a standard iter.Seq.
package iterator

import (
	"fmt"
	"io"
	"iter"
)

// Iterator walks a sequence of T.
type Iterator[T any] interface {
	// Next returns the item under the cursor and advances past it.
	Next() (T, bool)
	// Current returns the item under the cursor without advancing.
	Current() (T, bool)
	// HasNext reports whether Next would return an item.
	HasNext() bool
	// Reset moves the cursor back to the first item.
	Reset()
}

// Container is an append-only collection.
type Container[T any] struct {
	data []T
}

// Add appends item.
func (c *Container[T]) Add(item T) {
	c.data = append(c.data, item)
}

// Len returns the number of items.
func (c *Container[T]) Len() int { return len(c.data) }

// Iterator returns a new cursor positioned before the first item.
func (c *Container[T]) Iterator() Iterator[T] {
	return &cursor[T]{c: c}
}

// All yields every item in insertion order.
func (c *Container[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.data {
			if !yield(v) {
				return
			}
		}
	}
}

type cursor[T any] struct {
	c   *Container[T]
	idx int
}

func (it *cursor[T]) Next() (T, bool) {
	v, ok := it.Current()
	if ok {
		it.idx++
	}
	return v, ok
}

func (it *cursor[T]) Current() (T, bool) {
	if it.idx >= len(it.c.data) {
		var zero T
		return zero, false
	}
	return it.c.data[it.idx], true
}

func (it *cursor[T]) HasNext() bool { return it.idx < len(it.c.data) }

func (it *cursor[T]) Reset() { it.idx = 0 }

// Demo reads one item, rewinds, drains the container and reads past the end.
func Demo(w io.Writer) error {
	var c Container[int]
	c.Add(1)
	c.Add(2)
	c.Add(3)

	it := c.Iterator()
	fmt.Fprintf(w, "has next: %t\n", it.HasNext())
	if v, ok := it.Next(); ok {
		fmt.Fprintf(w, "item: %d\n", v)
	}

	it.Reset()
	for it.HasNext() {
		v, _ := it.Next()
		fmt.Fprintf(w, "item: %d\n", v)
	}

	if _, ok := it.Next(); !ok {
		fmt.Fprintln(w, "no items left")
	}
	return nil
}
