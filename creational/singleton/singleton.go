// Package singleton demonstrates the Singleton pattern the Go way.
//
// Instance returns the one process-wide Config, created lazily on first use
// under sync.Once, so concurrent first callers all observe the same pointer.
// Code that only needs "a" config should prefer New and pass the value
// explicitly; the global accessor exists for the cases where a single shared
// instance is the requirement.
package singleton

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

var (
	once     sync.Once
	instance *Config
)

// Instance returns the process-wide Config, creating it on first call.
func Instance() *Config {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// Config is a small string key/value store safe for concurrent use.
type Config struct {
	mu       sync.RWMutex
	settings map[string]string
}

// New returns an independent, empty Config.
func New() *Config {
	return &Config{settings: make(map[string]string)}
}

// Set stores value under key, replacing any previous value.
func (c *Config) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings[key] = value
}

// Get returns the value stored under key.
func (c *Config) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.settings[key]
	return v, ok
}

// Keys returns all keys in sorted order.
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.settings))
	for k := range c.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Demo writes through one accessor call and reads through another.
func Demo(w io.Writer) error {
	a := Instance()
	a.Set("theme", "dark")

	b := Instance()
	v, _ := b.Get("theme")

	fmt.Fprintf(w, "Same instance: %t\n", a == b)
	fmt.Fprintf(w, "theme = %s\n", v)
	fmt.Fprintf(w, "Independent config sees theme: %t\n", hasKey(New(), "theme"))
	return nil
}

func hasKey(c *Config, key string) bool {
	_, ok := c.Get(key)
	return ok
}
