package factory_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gopatterns/creational/factory"
)

// ExampleNewAnimal shows the caller working only with the Animal interface.
func ExampleNewAnimal() {
	a, err := factory.NewAnimal(factory.CatType)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(a.Speak())
	// Output: Cat says: Meow!
}

func ExampleDemo() {
	_ = factory.Demo(os.Stdout)
	// Output:
	// Dog says: Woof!
	// Cat says: Meow!
	// Drawing circle
	// Drawing triangle
}
