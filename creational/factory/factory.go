package factory

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrUnknownAnimal indicates an AnimalType outside the declared set.
	ErrUnknownAnimal = errors.New("factory: unknown animal type")

	// ErrUnknownShape indicates a shape name the ShapeFactory cannot build.
	ErrUnknownShape = errors.New("factory: unknown shape")
)

// Animal is anything that can speak.
type Animal interface {
	Speak() string
}

// Dog barks.
type Dog struct{}

// Speak implements Animal.
func (Dog) Speak() string { return "Dog says: Woof!" }

// Cat meows.
type Cat struct{}

// Speak implements Animal.
func (Cat) Speak() string { return "Cat says: Meow!" }

// AnimalType selects the concrete Animal built by NewAnimal.
type AnimalType int

const (
	// DogType builds a Dog.
	DogType AnimalType = iota
	// CatType builds a Cat.
	CatType
)

// String returns the lower-case name of the type.
func (t AnimalType) String() string {
	switch t {
	case DogType:
		return "dog"
	case CatType:
		return "cat"
	default:
		return fmt.Sprintf("AnimalType(%d)", int(t))
	}
}

// NewAnimal is the factory method for animals.
func NewAnimal(t AnimalType) (Animal, error) {
	switch t {
	case DogType:
		return Dog{}, nil
	case CatType:
		return Cat{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAnimal, t)
	}
}

// Shape is anything that can be drawn.
type Shape interface {
	Draw() string
}

// Circle is a round Shape.
type Circle struct{}

// Draw implements Shape.
func (Circle) Draw() string { return "Drawing circle" }

// Triangle is a three-sided Shape.
type Triangle struct{}

// Draw implements Shape.
func (Triangle) Draw() string { return "Drawing triangle" }

// ShapeFactory builds shapes by name. The zero value is ready to use.
type ShapeFactory struct{}

// Create returns the Shape registered under name. Lookup is case-insensitive
// and ignores surrounding whitespace.
func (ShapeFactory) Create(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "circle":
		return Circle{}, nil
	case "triangle":
		return Triangle{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}

// Demo builds one of each product and writes what it does.
func Demo(w io.Writer) error {
	for _, t := range []AnimalType{DogType, CatType} {
		a, err := NewAnimal(t)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, a.Speak())
	}

	var sf ShapeFactory
	for _, name := range []string{"circle", "triangle"} {
		s, err := sf.Create(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, s.Draw())
	}

	return nil
}
