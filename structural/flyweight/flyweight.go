package flyweight

import (
	"fmt"
	"io"
)

// BookType is the shared, intrinsic state of a book.
type BookType struct {
	category    string
	distributor string
}

// Category returns the book category.
func (t *BookType) Category() string { return t.category }

// Distributor returns the distributor recorded when the type was first created.
func (t *BookType) Distributor() string { return t.distributor }

// BookFactory deduplicates BookType values by category.
type BookFactory struct {
	types map[string]*BookType
}

// NewBookFactory returns an empty factory.
func NewBookFactory() *BookFactory {
	return &BookFactory{types: make(map[string]*BookType)}
}

// GetOrCreate returns the shared BookType for category, creating it with
// distributor if the category has not been seen yet.
func (f *BookFactory) GetOrCreate(category, distributor string) *BookType {
	if t, ok := f.types[category]; ok {
		return t
	}
	t := &BookType{category: category, distributor: distributor}
	f.types[category] = t
	return t
}

// Len returns the number of distinct book types held.
func (f *BookFactory) Len() int { return len(f.types) }

// Book carries its own extrinsic state plus a shared BookType handle.
type Book struct {
	Name  string
	Price int
	Type  *BookType
}

// Store is the flyweight client.
type Store struct {
	books []Book
}

// AddBook resolves the shared type through f and appends a book.
func (s *Store) AddBook(f *BookFactory, name string, price int, category, distributor string) {
	s.books = append(s.books, Book{
		Name:  name,
		Price: price,
		Type:  f.GetOrCreate(category, distributor),
	})
}

// Books returns the stored books in insertion order.
func (s *Store) Books() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

// Display writes one line per book.
func (s *Store) Display(w io.Writer) {
	for _, b := range s.books {
		fmt.Fprintf(w, "%s %d %s %s\n", b.Name, b.Price, b.Type.Category(), b.Type.Distributor())
	}
}

// Demo stocks ten books over two shared types.
func Demo(w io.Writer) error {
	var store Store
	f := NewBookFactory()

	for i := 0; i < 5; i++ {
		store.AddBook(f, fmt.Sprintf("book%d", i+1), i+10, "Action", "distributor1")
		store.AddBook(f, fmt.Sprintf("book%d", i+2), i+20, "Adventure", "distributor2")
	}

	store.Display(w)
	fmt.Fprintf(w, "%d books share %d book types\n", len(store.books), f.Len())
	return nil
}
