// SPDX-License-Identifier: MIT
// Package: gopatterns/catalog
//
// catalog.go - Registry, Entry and the built-in pattern table.

package catalog

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/gopatterns/behavioral/chain"
	"github.com/katalvlaran/gopatterns/behavioral/command"
	"github.com/katalvlaran/gopatterns/behavioral/iterator"
	"github.com/katalvlaran/gopatterns/behavioral/mediator"
	"github.com/katalvlaran/gopatterns/behavioral/observer"
	"github.com/katalvlaran/gopatterns/behavioral/strategy"
	"github.com/katalvlaran/gopatterns/creational/abstractfactory"
	"github.com/katalvlaran/gopatterns/creational/builder"
	"github.com/katalvlaran/gopatterns/creational/factory"
	"github.com/katalvlaran/gopatterns/creational/prototype"
	"github.com/katalvlaran/gopatterns/creational/singleton"
	"github.com/katalvlaran/gopatterns/structural/adapter"
	"github.com/katalvlaran/gopatterns/structural/composite"
	"github.com/katalvlaran/gopatterns/structural/decorator"
	"github.com/katalvlaran/gopatterns/structural/facade"
	"github.com/katalvlaran/gopatterns/structural/flyweight"
	"github.com/katalvlaran/gopatterns/structural/proxy"
)

var (
	// ErrUnknownPattern indicates a lookup for a name not in the catalog.
	ErrUnknownPattern = errors.New("catalog: unknown pattern")

	// ErrDuplicate indicates a second registration under an existing name.
	ErrDuplicate = errors.New("catalog: duplicate pattern name")

	// ErrInvalidEntry indicates an entry without a name or runner.
	ErrInvalidEntry = errors.New("catalog: invalid entry")

	// ErrUnknownCategory indicates a category name other than creational,
	// structural or behavioral.
	ErrUnknownCategory = errors.New("catalog: unknown category")
)

// Category is the GoF family of a pattern.
type Category int

const (
	Creational Category = iota + 1
	Structural
	Behavioral
)

var categoryNames = map[Category]string{
	Creational: "creational",
	Structural: "structural",
	Behavioral: "behavioral",
}

// String returns the lower-case category name.
func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory is the inverse of Category.String. Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, n := range categoryNames {
		if n == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Entry is one runnable demo.
type Entry struct {
	Name     string
	Category Category
	Summary  string
	Run      func(io.Writer) error
}

// Registry holds entries keyed by name.
type Registry struct {
	entries map[string]Entry
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds e. Names are case-sensitive and must be unique.
func (r *Registry) Register(e Entry) error {
	if e.Name == "" || e.Run == nil {
		return fmt.Errorf("%w: %q", ErrInvalidEntry, e.Name)
	}
	if _, ok := r.entries[e.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, e.Name)
	}
	r.entries[e.Name] = e
	return nil
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownPattern, name)
	}
	return e, nil
}

// List returns entries ordered by category then name. A zero cat lists all.
func (r *Registry) List(cat Category) []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if cat == 0 || e.Category == cat {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Run writes a header and the output of the named demo to w.
func (r *Registry) Run(w io.Writer, name string) error {
	e, err := r.Lookup(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "== %s ==\n", e.Name)
	if err := e.Run(w); err != nil {
		return fmt.Errorf("catalog: run %s: %w", e.Name, err)
	}
	return nil
}

// RunAll runs every entry in List order, separated by blank lines. It stops
// at the first failing demo.
func (r *Registry) RunAll(w io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	for i, e := range r.List(0) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		logger.Debug("running demo", zap.String("pattern", e.Name), zap.Stringer("category", e.Category))
		if err := r.Run(w, e.Name); err != nil {
			logger.Error("demo failed", zap.String("pattern", e.Name), zap.Error(err))
			return err
		}
	}
	return nil
}

// Default returns a registry holding every pattern in this module.
func Default() *Registry {
	r := New()
	for _, e := range builtin {
		if err := r.Register(e); err != nil {
			panic(err)
		}
	}
	return r
}

var builtin = []Entry{
	{"factory", Creational, "Factory methods hide which concrete type is built.", factory.Demo},
	{"abstract-factory", Creational, "One factory builds a whole family of related widgets.", abstractfactory.Demo},
	{"builder", Creational, "Step-by-step construction of an immutable value.", builder.Demo},
	{"singleton", Creational, "One lazily created process-wide instance.", singleton.Demo},
	{"prototype", Creational, "New objects are deep copies of existing ones.", prototype.Demo},

	{"adapter", Structural, "Wrap an incompatible API behind the expected interface.", adapter.Demo},
	{"composite", Structural, "Treat trees and leaves through one interface.", composite.Demo},
	{"decorator", Structural, "Stack behaviour by wrapping objects.", decorator.Demo},
	{"facade", Structural, "One simple call in front of several subsystems.", facade.Demo},
	{"flyweight", Structural, "Share immutable state between many objects.", flyweight.Demo},
	{"proxy", Structural, "A rate-limiting stand-in for the real server.", proxy.Demo},

	{"observer", Behavioral, "Subjects notify subscribers of changes.", observer.Demo},
	{"strategy", Behavioral, "Swap algorithms behind one interface.", strategy.Demo},
	{"chain", Behavioral, "Pass a request along a chain of idempotent handlers.", chain.Demo},
	{"command", Behavioral, "Actions as objects bound to remote buttons.", command.Demo},
	{"iterator", Behavioral, "Walk a collection without exposing its storage.", iterator.Demo},
	{"mediator", Behavioral, "Participants talk through a central mediator.", mediator.Demo},
}
