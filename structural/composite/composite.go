// Package composite demonstrates the Composite pattern.
//
// Files and folders share the Component interface, so a client can search a
// single file or an entire tree with the same call. A Folder forwards the
// search to each child in insertion order, recursing into nested folders.
package composite

import (
	"fmt"
	"io"
)

// Component is a node of the file tree.
type Component interface {
	Search(w io.Writer, keyword string)
	// Count reports the number of files at or below the node.
	Count() int
}

// File is a leaf.
type File struct {
	Name string
}

// NewFile returns a File named name.
func NewFile(name string) *File { return &File{Name: name} }

// Search implements Component.
func (f *File) Search(w io.Writer, keyword string) {
	fmt.Fprintf(w, "Searching for %s in file %s\n", keyword, f.Name)
}

// Count implements Component. A file counts as one.
func (f *File) Count() int { return 1 }

// Folder is a composite holding files and other folders.
type Folder struct {
	Name     string
	children []Component
}

// NewFolder returns an empty Folder named name.
func NewFolder(name string) *Folder { return &Folder{Name: name} }

// Add appends c to the folder's children.
func (f *Folder) Add(c Component) *Folder {
	f.children = append(f.children, c)
	return f
}

// Children returns the direct children in insertion order.
func (f *Folder) Children() []Component {
	out := make([]Component, len(f.children))
	copy(out, f.children)
	return out
}

// Search announces the folder and then searches every child.
func (f *Folder) Search(w io.Writer, keyword string) {
	fmt.Fprintf(w, "Searching recursively for keyword %s in folder %s\n", keyword, f.Name)
	for _, c := range f.children {
		c.Search(w, keyword)
	}
}

// Count returns the number of files anywhere below f.
func (f *Folder) Count() int {
	n := 0
	for _, c := range f.children {
		n += c.Count()
	}
	return n
}

// Demo nests folder1 inside folder2 and searches the whole tree.
func Demo(w io.Writer) error {
	folder1 := NewFolder("folder1").Add(NewFile("file1"))
	folder2 := NewFolder("folder2").
		Add(NewFile("file2")).
		Add(NewFile("file3")).
		Add(folder1)

	folder2.Search(w, "rose")
	return nil
}
