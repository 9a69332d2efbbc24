// Package catalog registers every pattern demo under a stable name so the
// CLI and tests can list, describe and run them uniformly.
//
// Overview:
//
//   - Entry binds a Name, a Category, a one-line Summary and a Run function
//     with the signature func(io.Writer) error. Every pattern package exports
//     a Demo with exactly that shape.
//   - Registry stores entries by name. Register rejects empty names, nil
//     runners and duplicates; Lookup and Run report unknown names.
//   - Default returns a Registry holding all seventeen built-in patterns.
//
// Ordering:
//
//	List sorts by Category (creational, structural, behavioral) and then by
//	name, so output is stable across runs. RunAll follows the same order and
//	separates demos with a blank line.
//
// Output format:
//
//	Run writes "== <name> ==" followed by the demo's own output. Demo output
//	goes only to the supplied writer; RunAll logs progress through an
//	optional *zap.Logger (Debug per demo, Error on failure).
//
// Errors (sentinel):
//
//   - ErrUnknownPattern  Lookup/Run with a name that is not registered.
//   - ErrDuplicate       Register with a name already present.
//   - ErrInvalidEntry    Register with an empty name or nil Run.
//   - ErrUnknownCategory ParseCategory with an unrecognised name.
//
// A Registry is not safe for concurrent Register calls. Reads after setup
// are safe.
package catalog
