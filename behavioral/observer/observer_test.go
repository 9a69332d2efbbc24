package observer_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopatterns/behavioral/observer"
)

func TestChannel_PublishOrder(t *testing.T) {
	var buf bytes.Buffer
	ch := observer.NewChannel("c")
	ch.Subscribe(observer.User{Name: "a"})
	ch.Subscribe(observer.User{Name: "b"})
	ch.Publish(&buf, "hi")
	assert.Equal(t, "User a received notification: hi\nUser b received notification: hi\n", buf.String())
}

func TestChannel_Unsubscribe(t *testing.T) {
	ch := observer.NewChannel("c")
	a := ch.Subscribe(observer.User{Name: "a"})
	ch.Subscribe(observer.User{Name: "b"})
	require.Equal(t, 2, ch.Len())

	require.True(t, ch.Unsubscribe(a))
	require.False(t, ch.Unsubscribe(a), "second removal is a no-op")

	var buf bytes.Buffer
	ch.Publish(&buf, "x")
	assert.Equal(t, "User b received notification: x\n", buf.String())
}

// quitter leaves the channel the first time it is notified.
type quitter struct {
	ch *observer.Channel
	id observer.Subscription
}

func (q *quitter) Notify(w io.Writer, event string) {
	io.WriteString(w, "quitter got "+event+"\n")
	q.ch.Unsubscribe(q.id)
}

func TestChannel_UnsubscribeDuringPublish(t *testing.T) {
	ch := observer.NewChannel("c")
	q := &quitter{ch: ch}
	q.id = ch.Subscribe(q)
	ch.Subscribe(observer.User{Name: "b"})
	ch.Subscribe(observer.User{Name: "c"})

	var buf bytes.Buffer
	ch.Publish(&buf, "one")
	assert.Equal(t,
		"quitter got one\nUser b received notification: one\nUser c received notification: one\n",
		buf.String())
	assert.Equal(t, 2, ch.Len())

	buf.Reset()
	ch.Publish(&buf, "two")
	assert.Equal(t, "User b received notification: two\nUser c received notification: two\n", buf.String())
}

func TestChannel_SubscriptionsDistinct(t *testing.T) {
	ch := observer.NewChannel("c")
	u := observer.User{Name: "dup"}
	a, b := ch.Subscribe(u), ch.Subscribe(u)
	assert.NotEqual(t, a, b)
	assert.Len(t, a.String(), 36)
}

func TestChannel_NoSubscribers(t *testing.T) {
	var buf bytes.Buffer
	observer.NewChannel("empty").Publish(&buf, "x")
	assert.Empty(t, buf.String())
}

func TestStock_NotifiesOnlyOnRestock(t *testing.T) {
	var buf bytes.Buffer
	var s observer.StockObservable
	s.Register(observer.MobileObserver{Number: "1"})

	s.SetStock(&buf, 0)
	assert.Empty(t, buf.String(), "adding nothing is not a restock")

	s.SetStock(&buf, 5)
	assert.Equal(t, "Message sent to 1\n", buf.String())

	buf.Reset()
	s.SetStock(&buf, 5)
	assert.Empty(t, buf.String(), "already in stock")
	assert.Equal(t, 10, s.Stock())

	assert.Equal(t, 10, s.Take(99))
	s.SetStock(&buf, 1)
	assert.Equal(t, "Message sent to 1\n", buf.String())
}

func ExampleDemo() {
	_ = observer.Demo(os.Stdout)
	// Output:
	// User sub1 received notification: New video uploaded
	// User sub2 received notification: New video uploaded
	// User sub3 received notification: New video uploaded
	// Message sent to 123
	// Email sent to abc@gmail.com
	// Email sent to xyz@gmail.com
}
