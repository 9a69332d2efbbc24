package adapter

import (
	"fmt"
	"io"
)

// RocketShip is what a pilot knows how to fly.
type RocketShip interface {
	TurnOn(w io.Writer)
	TurnOff(w io.Writer)
	BlastOff(w io.Writer)
	Fly(w io.Writer)
}

// NASAShip is a native RocketShip.
type NASAShip struct{}

func (NASAShip) TurnOn(w io.Writer)   { fmt.Fprintln(w, "NASA Ship is turning on.") }
func (NASAShip) TurnOff(w io.Writer)  { fmt.Fprintln(w, "NASA Ship is turning off.") }
func (NASAShip) BlastOff(w io.Writer) { fmt.Fprintln(w, "NASA Ship is blasting off.") }
func (NASAShip) Fly(w io.Writer)      { fmt.Fprintln(w, "NASA Ship is flying away.") }

// SpaceXShip is a different control panel for the same job.
type SpaceXShip interface {
	Ignition(w io.Writer)
	On(w io.Writer)
	Off(w io.Writer)
	Launch(w io.Writer)
	Fly(w io.Writer)
}

// SpaceXDragon implements SpaceXShip only.
type SpaceXDragon struct{}

func (SpaceXDragon) Ignition(w io.Writer) { fmt.Fprintln(w, "Turning Dragon's ignition.") }
func (SpaceXDragon) On(w io.Writer)       { fmt.Fprintln(w, "Turning on the Dragon.") }
func (SpaceXDragon) Off(w io.Writer)      { fmt.Fprintln(w, "Turning off the Dragon.") }
func (SpaceXDragon) Launch(w io.Writer)   { fmt.Fprintln(w, "Launching the Dragon") }
func (SpaceXDragon) Fly(w io.Writer)      { fmt.Fprintln(w, "The Dragon is flying away.") }

// SpaceXAdapter lets a pilot fly any SpaceXShip.
type SpaceXAdapter struct {
	Ship SpaceXShip
}

// TurnOn needs two steps on a SpaceX ship.
func (a SpaceXAdapter) TurnOn(w io.Writer) {
	a.Ship.Ignition(w)
	a.Ship.On(w)
}

func (a SpaceXAdapter) TurnOff(w io.Writer)  { a.Ship.Off(w) }
func (a SpaceXAdapter) BlastOff(w io.Writer) { a.Ship.Launch(w) }
func (a SpaceXAdapter) Fly(w io.Writer)      { a.Ship.Fly(w) }

// Pilot runs a full flight on any RocketShip.
func Pilot(w io.Writer, ship RocketShip) {
	ship.TurnOn(w)
	ship.BlastOff(w)
	ship.Fly(w)
	ship.TurnOff(w)
}

// Demo runs both adapter examples.
func Demo(w io.Writer) error {
	Call(w, Compatible{})
	Call(w, Adapter{Adaptee: Incompatible{}})

	fmt.Fprintln(w, "Piloting the Saturn 5.")
	Pilot(w, NASAShip{})

	fmt.Fprintln(w, "Piloting the Dragon Adapter.")
	Pilot(w, SpaceXAdapter{Ship: SpaceXDragon{}})

	return nil
}
