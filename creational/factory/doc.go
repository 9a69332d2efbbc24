// Package factory demonstrates the Factory Method pattern.
//
// A factory hides the concrete type behind a capability interface: callers
// ask for "a dog" or "a circle" and receive an Animal or a Shape, never the
// struct itself. Adding a new variant touches the factory only.
//
// Two factories are provided:
//
//   - NewAnimal(AnimalType) builds Dog or Cat values behind Animal.
//   - ShapeFactory.Create(name) builds Circle or Triangle values behind Shape.
//
// Errors (sentinel):
//
//   - ErrUnknownAnimal if the AnimalType is not one of the declared constants.
//   - ErrUnknownShape  if the shape name is not registered.
//
// Example:
//
//	dog, _ := factory.NewAnimal(factory.DogType)
//	fmt.Println(dog.Speak()) // Dog says: Woof!
package factory
