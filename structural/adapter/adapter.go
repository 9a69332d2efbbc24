// Package adapter demonstrates the Adapter pattern.
//
// An adapter wraps an object whose API the client cannot use and exposes the
// interface the client expects, translating each call. Two examples:
//
//   - Target / Incompatible / Adapter: the smallest possible translation.
//   - RocketShip / SpaceXShip / SpaceXAdapter: one client call can map to
//     several adaptee calls (TurnOn is Ignition followed by On).
package adapter

import (
	"fmt"
	"io"
)

// Target is the interface the client understands.
type Target interface {
	Request() string
}

// Call is the client: it only knows Target.
func Call(w io.Writer, t Target) {
	fmt.Fprintln(w, t.Request())
}

// Compatible already speaks Target.
type Compatible struct{}

// SpecificRequest is Compatible's own API.
func (Compatible) SpecificRequest() string { return "I'm compatible object" }

// Request implements Target.
func (c Compatible) Request() string { return c.SpecificRequest() }

// Incompatible has the behaviour the client wants but not the interface.
type Incompatible struct{}

// SpecificRequest is the adaptee API.
func (Incompatible) SpecificRequest() string { return "I'm incompatible object" }

// Adapter makes an Incompatible usable as a Target.
type Adapter struct {
	Adaptee Incompatible
}

// Request implements Target by delegating to the adaptee.
func (a Adapter) Request() string { return a.Adaptee.SpecificRequest() }
