// Package strategy demonstrates the Strategy pattern.
//
// The algorithm is a value: Values.Filter takes any FilterStrategy, and
// Vehicle delegates Drive to whichever DriveStrategy it was built with, so
// vehicles that share a driving style share the code instead of
// duplicating it in each type.
package strategy

import (
	"fmt"
	"io"
)

// FilterStrategy decides which values survive a filter.
type FilterStrategy interface {
	Keep(v int) bool
}

// FilterFunc adapts a plain function to FilterStrategy.
type FilterFunc func(int) bool

// Keep implements FilterStrategy.
func (f FilterFunc) Keep(v int) bool { return f(v) }

// NonNegative keeps zero and positive values.
type NonNegative struct{}

// Keep implements FilterStrategy.
func (NonNegative) Keep(v int) bool { return v >= 0 }

// Even keeps values divisible by two.
type Even struct{}

// Keep implements FilterStrategy.
func (Even) Keep(v int) bool { return v%2 == 0 }

// Values is a filterable list of integers.
type Values []int

// Filter retains, in order, the values s keeps. It filters in place.
func (vs *Values) Filter(s FilterStrategy) {
	out := (*vs)[:0]
	for _, v := range *vs {
		if s.Keep(v) {
			out = append(out, v)
		}
	}
	*vs = out
}

// DriveStrategy is a driving style.
type DriveStrategy interface {
	Drive() string
}

// SpecialDrive is shared by performance vehicles.
type SpecialDrive struct{}

// Drive implements DriveStrategy.
func (SpecialDrive) Drive() string { return "Special drive logic" }

// NormalDrive is the everyday style.
type NormalDrive struct{}

// Drive implements DriveStrategy.
func (NormalDrive) Drive() string { return "Normal drive logic" }

// Vehicle is composed with a DriveStrategy rather than inheriting one.
type Vehicle struct {
	Kind     string
	strategy DriveStrategy
}

// NewVehicle returns a vehicle of the given kind driving with s.
func NewVehicle(kind string, s DriveStrategy) Vehicle {
	return Vehicle{Kind: kind, strategy: s}
}

// NewSportsVehicle drives with SpecialDrive.
func NewSportsVehicle() Vehicle { return NewVehicle("sports", SpecialDrive{}) }

// NewPassengerVehicle drives with NormalDrive.
func NewPassengerVehicle() Vehicle { return NewVehicle("passenger", NormalDrive{}) }

// NewOffRoadVehicle drives with SpecialDrive.
func NewOffRoadVehicle() Vehicle { return NewVehicle("off-road", SpecialDrive{}) }

// Drive delegates to the vehicle's strategy.
func (v Vehicle) Drive() string { return v.strategy.Drive() }

// Demo filters one list with two strategies and drives three vehicles.
func Demo(w io.Writer) error {
	input := []int{-1, 3, 2, 4, -5}

	for _, s := range []FilterStrategy{NonNegative{}, Even{}} {
		vs := append(Values(nil), input...)
		vs.Filter(s)
		fmt.Fprintf(w, "%T: %v\n", s, []int(vs))
	}

	for _, v := range []Vehicle{NewSportsVehicle(), NewPassengerVehicle(), NewOffRoadVehicle()} {
		fmt.Fprintln(w, v.Drive())
	}
	return nil
}
