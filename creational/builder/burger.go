// SPDX-License-Identifier: MIT
// Package: gopatterns/builder
//
// burger.go - value-receiver BurgerBuilder.

package builder

// Burger is a two-item order.
type Burger struct {
	Item1 string
	Item2 string
}

// BurgerBuilder builds a Burger by value: every setter returns a new
// builder, so a partially configured builder can be reused as a template.
type BurgerBuilder struct {
	burger Burger
}

// NewBurgerBuilder returns an empty builder.
func NewBurgerBuilder() BurgerBuilder { return BurgerBuilder{} }

// AddItem1 sets the first item.
func (b BurgerBuilder) AddItem1(item string) BurgerBuilder {
	b.burger.Item1 = item
	return b
}

// AddItem2 sets the second item.
func (b BurgerBuilder) AddItem2(item string) BurgerBuilder {
	b.burger.Item2 = item
	return b
}

// Build returns the configured Burger. Unset items are empty.
func (b BurgerBuilder) Build() Burger { return b.burger }
