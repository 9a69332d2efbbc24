package abstractfactory_test

import (
	"os"

	"github.com/katalvlaran/gopatterns/creational/abstractfactory"
)

func ExampleRenderGUI() {
	abstractfactory.RenderGUI(os.Stdout, abstractfactory.MacFactory{})
	// Output:
	// Mac Button
	// Mac Menu
	// Mac Textbox
}
