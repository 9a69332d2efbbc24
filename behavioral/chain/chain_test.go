package chain_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopatterns/behavioral/chain"
)

func TestExecute_FirstRun(t *testing.T) {
	var (
		buf bytes.Buffer
		u   chain.User
	)
	chain.Execute(&buf, chain.NewChain(&chain.Order{}, &chain.Payment{}, &chain.Delivery{}), &u)

	assert.Equal(t, "Order placed\nPayment done\nDelivered\n", buf.String())
	assert.Equal(t, chain.User{OrderPlaced: true, PaymentDone: true, Delivered: true}, u)
}

// A second run reports "already" for every step and changes nothing.
func TestExecute_Idempotent(t *testing.T) {
	var u chain.User
	head := chain.NewChain(&chain.Order{}, &chain.Payment{}, &chain.Delivery{})
	chain.Execute(io.Discard, head, &u)
	after := u

	var buf bytes.Buffer
	chain.Execute(&buf, head, &u)
	assert.Equal(t, "Order is already placed\nPayment is already done\nDelivery is already done\n", buf.String())
	assert.Equal(t, after, u)
}

// Handlers only act on their own field.
func TestExecute_PartiallyProcessed(t *testing.T) {
	var buf bytes.Buffer
	u := chain.User{PaymentDone: true}
	chain.Execute(&buf, chain.NewChain(&chain.Order{}, &chain.Payment{}, &chain.Delivery{}), &u)
	assert.Equal(t, "Order placed\nPayment is already done\nDelivered\n", buf.String())
}

func TestNewChain(t *testing.T) {
	assert.Nil(t, chain.NewChain())

	o, p := &chain.Order{}, &chain.Payment{}
	head := chain.NewChain(o, p)
	require.Same(t, o, head)
	require.Same(t, p, head.Next())
	assert.Nil(t, p.Next())
}

func TestExecute_NilHead(t *testing.T) {
	var u chain.User
	chain.Execute(io.Discard, nil, &u)
	assert.Equal(t, chain.User{}, u)
}

func ExampleDemo() {
	_ = chain.Demo(os.Stdout)
	// Output:
	// Order placed
	// Payment done
	// Delivered
	//
	// The Order has been already handled:
	//
	// Order is already placed
	// Payment is already done
	// Delivery is already done
}
