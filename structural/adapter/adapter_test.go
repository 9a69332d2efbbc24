package adapter_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopatterns/structural/adapter"
)

func TestCall(t *testing.T) {
	var buf bytes.Buffer
	adapter.Call(&buf, adapter.Compatible{})
	adapter.Call(&buf, adapter.Adapter{})
	assert.Equal(t, "I'm compatible object\nI'm incompatible object\n", buf.String())
}

func TestPilot_NASA(t *testing.T) {
	var buf bytes.Buffer
	adapter.Pilot(&buf, adapter.NASAShip{})
	assert.Equal(t, []string{
		"NASA Ship is turning on.",
		"NASA Ship is blasting off.",
		"NASA Ship is flying away.",
		"NASA Ship is turning off.",
	}, lines(buf.String()))
}

func TestPilot_SpaceXAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter.Pilot(&buf, adapter.SpaceXAdapter{Ship: adapter.SpaceXDragon{}})
	assert.Equal(t, []string{
		"Turning Dragon's ignition.",
		"Turning on the Dragon.",
		"Launching the Dragon",
		"The Dragon is flying away.",
		"Turning off the Dragon.",
	}, lines(buf.String()))
}

// recordingShip captures the adaptee calls the adapter makes.
type recordingShip struct{ calls []string }

func (r *recordingShip) Ignition(io.Writer) { r.calls = append(r.calls, "ignition") }
func (r *recordingShip) On(io.Writer)       { r.calls = append(r.calls, "on") }
func (r *recordingShip) Off(io.Writer)      { r.calls = append(r.calls, "off") }
func (r *recordingShip) Launch(io.Writer)   { r.calls = append(r.calls, "launch") }
func (r *recordingShip) Fly(io.Writer)      { r.calls = append(r.calls, "fly") }

func TestSpaceXAdapter_Translation(t *testing.T) {
	rec := &recordingShip{}
	adapter.Pilot(io.Discard, adapter.SpaceXAdapter{Ship: rec})
	assert.Equal(t, []string{"ignition", "on", "launch", "fly", "off"}, rec.calls)
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, adapter.Demo(&buf))
	out := lines(buf.String())
	require.Len(t, out, 13)
	assert.Equal(t, "Piloting the Saturn 5.", out[2])
	assert.Equal(t, "Piloting the Dragon Adapter.", out[7])
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
