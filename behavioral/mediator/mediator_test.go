package mediator_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopatterns/behavioral/mediator"
)

func TestChatRoom_SenderExcluded(t *testing.T) {
	var a, b, c bytes.Buffer
	room := mediator.NewChatRoom()
	alice := mediator.NewUser("Alice", &a)
	bob := mediator.NewUser("Bob", &b)
	carol := mediator.NewUser("Carol", &c)
	for _, u := range []*mediator.User{alice, bob, carol} {
		require.NoError(t, room.AddUser(u))
	}

	require.NoError(t, alice.Send("ping"))

	assert.Equal(t, "Alice sends: ping\n", a.String())
	assert.Equal(t, "Bob received from Alice: ping\n", b.String())
	assert.Equal(t, "Carol received from Alice: ping\n", c.String())
}

func TestUser_SendWithoutRoom(t *testing.T) {
	err := mediator.NewUser("lonely", io.Discard).Send("hello?")
	require.ErrorIs(t, err, mediator.ErrNotJoined)
}

func TestChatRoom_DuplicateUser(t *testing.T) {
	room := mediator.NewChatRoom()
	u := mediator.NewUser("dup", io.Discard)
	require.NoError(t, room.AddUser(u))
	require.ErrorIs(t, room.AddUser(u), mediator.ErrDuplicateUser)
	assert.Equal(t, 1, room.Len())
}

// Rooms are isolated: members of one never hear another.
func TestChatRoom_Isolation(t *testing.T) {
	var heard bytes.Buffer
	r1, r2 := mediator.NewChatRoom(), mediator.NewChatRoom()
	speaker := mediator.NewUser("s", io.Discard)
	listener := mediator.NewUser("l", &heard)
	require.NoError(t, r1.AddUser(speaker))
	require.NoError(t, r2.AddUser(listener))

	require.NoError(t, speaker.Send("x"))
	assert.Empty(t, heard.String())
}

func ExampleDemo() {
	_ = mediator.Demo(os.Stdout)
	// Output:
	// Alice sends: Hi all!
	// Bob received from Alice: Hi all!
	// Carol received from Alice: Hi all!
	// Bob sends: Hey Alice
	// Alice received from Bob: Hey Alice
	// Carol received from Bob: Hey Alice
}
