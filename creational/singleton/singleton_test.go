package singleton_test

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gopatterns/creational/singleton"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestInstance_SamePointer(t *testing.T) {
	require.Same(t, singleton.Instance(), singleton.Instance())
}

// Racing first callers must all see one instance.
func TestInstance_Concurrent(t *testing.T) {
	const workers = 64

	var (
		g   errgroup.Group
		mu  sync.Mutex
		got = make(map[*singleton.Config]struct{})
	)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			c := singleton.Instance()
			mu.Lock()
			got[c] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Len(t, got, 1)
}

func TestConfig_ConcurrentWrites(t *testing.T) {
	c := singleton.New()

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			c.Set(fmt.Sprintf("k%02d", i), "v")
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Len(t, c.Keys(), 32)
	assert.Equal(t, "k00", c.Keys()[0])
}

func TestNew_Independent(t *testing.T) {
	a, b := singleton.New(), singleton.New()
	a.Set("x", "1")
	_, ok := b.Get("x")
	assert.False(t, ok)
	assert.NotSame(t, a, b)
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, singleton.Demo(&buf))
	assert.Equal(t, "Same instance: true\ntheme = dark\nIndependent config sees theme: false\n", buf.String())
}
