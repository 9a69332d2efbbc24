// Package prototype demonstrates the Prototype pattern.
//
// Every prototype exposes Clone, which returns a fully independent copy:
// mutating the copy never affects the original and vice versa. Human copies
// itself field by field. Employee carries nested pointers, slices and maps
// and relies on a generic deep copy. Registry keeps named templates and
// hands out fresh clones on request.
package prototype
