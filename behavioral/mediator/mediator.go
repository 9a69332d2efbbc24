// Package mediator demonstrates the Mediator pattern with a chat room.
//
// Users never reference each other. Each user holds only its mediator and
// sends through it; the ChatRoom holds every participant and decides who
// receives a message. Adding a user touches the room, not the other users.
package mediator

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotJoined indicates a user sent a message without joining a room.
	ErrNotJoined = errors.New("mediator: user has not joined a room")

	// ErrDuplicateUser indicates a user already present in the room.
	ErrDuplicateUser = errors.New("mediator: user already in room")
)

// ChatMediator routes messages between users.
type ChatMediator interface {
	AddUser(u *User) error
	SendMessage(from *User, msg string)
}

// User is a chat participant.
type User struct {
	Name     string
	mediator ChatMediator
	out      io.Writer
}

// NewUser returns a user that writes received messages to out.
func NewUser(name string, out io.Writer) *User {
	return &User{Name: name, out: out}
}

// Send delivers msg to the other participants through the mediator.
func (u *User) Send(msg string) error {
	if u.mediator == nil {
		return fmt.Errorf("%w: %s", ErrNotJoined, u.Name)
	}
	fmt.Fprintf(u.out, "%s sends: %s\n", u.Name, msg)
	u.mediator.SendMessage(u, msg)
	return nil
}

// Receive is called by the mediator.
func (u *User) Receive(from, msg string) {
	fmt.Fprintf(u.out, "%s received from %s: %s\n", u.Name, from, msg)
}

// ChatRoom is the concrete mediator.
type ChatRoom struct {
	users []*User
}

// NewChatRoom returns an empty room.
func NewChatRoom() *ChatRoom { return &ChatRoom{} }

// AddUser registers u with the room and points u at it.
func (r *ChatRoom) AddUser(u *User) error {
	for _, existing := range r.users {
		if existing == u {
			return fmt.Errorf("%w: %s", ErrDuplicateUser, u.Name)
		}
	}
	r.users = append(r.users, u)
	u.mediator = r
	return nil
}

// SendMessage delivers msg to every participant except the sender, in
// join order.
func (r *ChatRoom) SendMessage(from *User, msg string) {
	for _, u := range r.users {
		if u == from {
			continue
		}
		u.Receive(from.Name, msg)
	}
}

// Len returns the number of participants.
func (r *ChatRoom) Len() int { return len(r.users) }

// Demo has three users exchange two messages.
func Demo(w io.Writer) error {
	room := NewChatRoom()
	alice := NewUser("Alice", w)
	bob := NewUser("Bob", w)
	carol := NewUser("Carol", w)

	for _, u := range []*User{alice, bob, carol} {
		if err := room.AddUser(u); err != nil {
			return err
		}
	}

	if err := alice.Send("Hi all!"); err != nil {
		return err
	}
	return bob.Send("Hey Alice")
}
