// Package decorator demonstrates the Decorator pattern.
//
// A decorator implements the same interface as the object it wraps and adds
// behaviour before or after delegating. Decorators stack: each layer sees
// only the interface, never the concrete type underneath.
package decorator

import (
	"fmt"
	"io"
)

// Color fills a shape.
type Color interface {
	Fill(w io.Writer)
}

// Black is a plain fill.
type Black struct{}

// Fill implements Color.
func (Black) Fill(w io.Writer) { fmt.Fprintln(w, "Black color") }

// PatternDecorator adds a pattern on top of any Color.
type PatternDecorator struct {
	Colored Color
}

// Fill delegates and then draws the pattern.
func (p PatternDecorator) Fill(w io.Writer) {
	p.Colored.Fill(w)
	fmt.Fprintln(w, "Pattern")
}

// Pizza has a price.
type Pizza interface {
	Cost() int
}

// Margherita is a base pizza.
type Margherita struct{}

// Cost implements Pizza.
func (Margherita) Cost() int { return 10 }

// Farmhouse is a base pizza.
type Farmhouse struct{}

// Cost implements Pizza.
func (Farmhouse) Cost() int { return 20 }

// Cheese is a topping decorator.
type Cheese struct {
	Pizza Pizza
}

// Cost adds the topping price.
func (c Cheese) Cost() int { return c.Pizza.Cost() + 1 }

// Mushroom is a topping decorator.
type Mushroom struct {
	Pizza Pizza
}

// Cost adds the topping price.
func (m Mushroom) Cost() int { return m.Pizza.Cost() + 2 }

// Demo fills a plain and a patterned shape, then prices three pizzas.
func Demo(w io.Writer) error {
	fmt.Fprintln(w, "Style: Solid")
	Black{}.Fill(w)

	fmt.Fprintln(w, "Style: Pattern")
	PatternDecorator{Colored: Black{}}.Fill(w)

	fmt.Fprintf(w, "Cost of plain pizza = %d\n", Margherita{}.Cost())
	fmt.Fprintf(w, "Cost of pizza with cheese = %d\n", Cheese{Pizza: Margherita{}}.Cost())
	fmt.Fprintf(w, "Cost of pizza with cheese + mushroom = %d\n", Mushroom{Pizza: Cheese{Pizza: Margherita{}}}.Cost())

	return nil
}
