// Package flyweight demonstrates the Flyweight pattern.
//
// Books of the same category share one immutable BookType instead of each
// carrying its own copy of the category and distributor strings.
//
// Overview:
//
//   - BookFactory.GetOrCreate is keyed by category only. The first call for a
//     category creates the BookType; every later call returns the same
//     *BookType handle, even if it passes a different distributor
//     (first write wins).
//   - Nothing is ever evicted: the factory lives as long as its owner.
//   - A *BookType is a read-only handle. Its fields are reachable only
//     through accessors.
//
// Thread safety:
//
//   - BookFactory and Store are not safe for concurrent use.
package flyweight
