// Package command demonstrates the Command pattern.
//
// Each action on the TV is wrapped in an object implementing Command, and
// the RemoteControl maps button numbers to commands. The remote never
// knows what a button does; pressing an unmapped button is a harmless
// no-op.
package command

import (
	"fmt"
	"io"
	"sort"
)

// Command is an executable action.
type Command interface {
	Execute(w io.Writer)
}

// TV is the receiver the commands act on.
type TV struct {
	on bool
}

// On switches the TV on.
func (tv *TV) On(w io.Writer) {
	tv.on = true
	fmt.Fprintln(w, "TV is on, watch movies.")
}

// Off switches the TV off.
func (tv *TV) Off(w io.Writer) {
	tv.on = false
	fmt.Fprintln(w, "TV is off")
}

// IsOn reports the current power state.
func (tv *TV) IsOn() bool { return tv.on }

// TVOnCommand turns a TV on.
type TVOnCommand struct{ TV *TV }

// Execute implements Command.
func (c TVOnCommand) Execute(w io.Writer) { c.TV.On(w) }

// TVOffCommand turns a TV off.
type TVOffCommand struct{ TV *TV }

// Execute implements Command.
func (c TVOffCommand) Execute(w io.Writer) { c.TV.Off(w) }

// RemoteControl binds button numbers to commands.
type RemoteControl struct {
	commands map[int]Command
}

// NewRemoteControl returns a remote with no buttons bound.
func NewRemoteControl() *RemoteControl {
	return &RemoteControl{commands: make(map[int]Command)}
}

// SetCommand binds cmd to button, replacing any previous binding.
// A nil cmd unbinds the button.
func (r *RemoteControl) SetCommand(button int, cmd Command) {
	if cmd == nil {
		delete(r.commands, button)
		return
	}
	r.commands[button] = cmd
}

// PressButton runs the command bound to button, or writes "do nothing."
func (r *RemoteControl) PressButton(w io.Writer, button int) {
	cmd, ok := r.commands[button]
	if !ok {
		fmt.Fprintln(w, "do nothing.")
		return
	}
	cmd.Execute(w)
}

// Buttons returns the bound button numbers in ascending order.
func (r *RemoteControl) Buttons() []int {
	out := make([]int, 0, len(r.commands))
	for b := range r.commands {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}

// Demo presses an unbound button, binds on/off, and presses both.
func Demo(w io.Writer) error {
	tv := &TV{}
	remote := NewRemoteControl()
	remote.PressButton(w, 0)

	remote.SetCommand(1, TVOnCommand{TV: tv})
	remote.SetCommand(2, TVOffCommand{TV: tv})

	remote.PressButton(w, 1)
	remote.PressButton(w, 2)
	return nil
}
