package prototype

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/mohae/deepcopy"
)

// ErrUnknownPrototype indicates a Registry lookup for a name never registered.
var ErrUnknownPrototype = errors.New("prototype: unknown prototype")

// Prototype is anything that can produce an independent copy of itself.
type Prototype[T any] interface {
	Clone() T
}

// Human is a flat value with an explicit copy.
type Human struct {
	Name string
	Age  int
}

// Clone implements Prototype.
func (h *Human) Clone() *Human {
	return &Human{
		Name: h.Name,
		Age:  h.Age,
	}
}

// Address is nested inside Employee.
type Address struct {
	Street string
	City   string
}

// Employee holds reference-typed fields that a shallow copy would share.
type Employee struct {
	Name    string
	Address *Address
	Skills  []string
	Meta    map[string]string
}

// Clone implements Prototype with a deep copy of every reference field.
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	return deepcopy.Copy(e).(*Employee)
}

// Registry stores named prototypes and returns clones of them.
type Registry[T Prototype[T]] struct {
	items map[string]T
}

// NewRegistry returns an empty Registry.
func NewRegistry[T Prototype[T]]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Register stores p under name, replacing any previous prototype.
// The registry keeps its own copy so later changes to p are not observed.
func (r *Registry[T]) Register(name string, p T) {
	r.items[name] = p.Clone()
}

// Clone returns a fresh copy of the prototype registered under name.
func (r *Registry[T]) Clone(name string) (T, error) {
	p, ok := r.items[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrUnknownPrototype, name)
	}
	return p.Clone(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.items))
	for n := range r.items {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Demo clones a Human, ages the original, and prints both.
func Demo(w io.Writer) error {
	human1 := &Human{Name: "Chethan", Age: 21}
	human2 := human1.Clone()

	human1.Age = 22

	fmt.Fprintf(w, "%+v %+v\n", *human1, *human2)
	return nil
}
