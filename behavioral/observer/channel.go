package observer

import (
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"
)

// Subscriber receives channel events.
type Subscriber interface {
	Notify(w io.Writer, event string)
}

// Subscription identifies one registration on a Channel.
type Subscription uuid.UUID

// String returns the canonical UUID form.
func (s Subscription) String() string { return uuid.UUID(s).String() }

type subscription struct {
	id  Subscription
	sub Subscriber
}

// Channel is a subject that fans events out to its subscribers.
type Channel struct {
	Name string
	subs []subscription
}

// NewChannel returns a Channel with no subscribers.
func NewChannel(name string) *Channel {
	return &Channel{Name: name}
}

// Subscribe registers s and returns the handle needed to remove it.
// The same Subscriber may be registered more than once.
func (c *Channel) Subscribe(s Subscriber) Subscription {
	id := Subscription(uuid.New())
	c.subs = append(c.subs, subscription{id: id, sub: s})
	return id
}

// Unsubscribe removes the registration identified by id and reports
// whether it was present. It is safe to call from inside Notify: the
// publish in progress still reaches every subscriber it started with.
func (c *Channel) Unsubscribe(id Subscription) bool {
	i := slices.IndexFunc(c.subs, func(s subscription) bool { return s.id == id })
	if i < 0 {
		return false
	}
	c.subs = slices.Delete(slices.Clone(c.subs), i, i+1)
	return true
}

// Len returns the number of active subscriptions.
func (c *Channel) Len() int { return len(c.subs) }

// Publish notifies every subscriber in subscription order. Changes made by
// subscribers during the call apply from the next Publish.
func (c *Channel) Publish(w io.Writer, event string) {
	for _, s := range c.subs {
		s.sub.Notify(w, event)
	}
}

// User is a Subscriber that prints what it receives.
type User struct {
	Name string
}

// Notify implements Subscriber.
func (u User) Notify(w io.Writer, event string) {
	fmt.Fprintf(w, "User %s received notification: %s\n", u.Name, event)
}
