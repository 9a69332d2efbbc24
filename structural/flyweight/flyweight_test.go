package flyweight_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopatterns/structural/flyweight"
)

func TestGetOrCreate_SameHandle(t *testing.T) {
	f := flyweight.NewBookFactory()
	a := f.GetOrCreate("Action", "distributor1")
	b := f.GetOrCreate("Action", "distributor1")
	require.Same(t, a, b)
	assert.Equal(t, 1, f.Len())
}

// Later calls cannot overwrite the attributes stored by the first call.
func TestGetOrCreate_FirstWriteWins(t *testing.T) {
	f := flyweight.NewBookFactory()
	first := f.GetOrCreate("Action", "distributor1")
	again := f.GetOrCreate("Action", "someone-else")

	require.Same(t, first, again)
	assert.Equal(t, "distributor1", again.Distributor())
	assert.Equal(t, "Action", again.Category())
}

func TestGetOrCreate_DistinctCategories(t *testing.T) {
	f := flyweight.NewBookFactory()
	a := f.GetOrCreate("Action", "d")
	b := f.GetOrCreate("Adventure", "d")
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, f.Len())
}

func TestStore_SharesTypes(t *testing.T) {
	f := flyweight.NewBookFactory()
	var s flyweight.Store
	s.AddBook(f, "b1", 10, "Action", "d1")
	s.AddBook(f, "b2", 11, "Action", "d2")

	books := s.Books()
	require.Len(t, books, 2)
	assert.Same(t, books[0].Type, books[1].Type)
	assert.Equal(t, "d1", books[1].Type.Distributor())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, flyweight.Demo(&buf))

	out := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, out, 11)
	assert.Equal(t, "book1 10 Action distributor1", out[0])
	assert.Equal(t, "book2 20 Adventure distributor2", out[1])
	assert.Equal(t, "book6 24 Adventure distributor2", out[9])
	assert.Equal(t, "10 books share 2 book types", out[10])
}
