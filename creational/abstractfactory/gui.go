package abstractfactory

import (
	"fmt"
	"io"
)

// Button is a clickable widget.
type Button interface {
	Paint() string
}

// Menu is a list of entries.
type Menu interface {
	Display() string
}

// Textbox holds text.
type Textbox interface {
	Text() string
}

// GUIFactory creates one consistent family of widgets.
type GUIFactory interface {
	CreateButton() Button
	CreateMenu() Menu
	CreateTextbox() Textbox
}

// Windows widgets.
type (
	WinButton  struct{}
	WinMenu    struct{}
	WinTextbox struct{}
)

func (WinButton) Paint() string { return "Windows Button" }
func (WinMenu) Display() string { return "Windows Menu" }
func (WinTextbox) Text() string { return "Windows Textbox" }

// WinFactory produces Windows widgets.
type WinFactory struct{}

func (WinFactory) CreateButton() Button   { return WinButton{} }
func (WinFactory) CreateMenu() Menu       { return WinMenu{} }
func (WinFactory) CreateTextbox() Textbox { return WinTextbox{} }

// Linux widgets.
type (
	LinuxButton  struct{}
	LinuxMenu    struct{}
	LinuxTextbox struct{}
)

func (LinuxButton) Paint() string { return "Linux Button" }
func (LinuxMenu) Display() string { return "Linux Menu" }
func (LinuxTextbox) Text() string { return "Linux Textbox" }

// LinuxFactory produces Linux widgets.
type LinuxFactory struct{}

func (LinuxFactory) CreateButton() Button   { return LinuxButton{} }
func (LinuxFactory) CreateMenu() Menu       { return LinuxMenu{} }
func (LinuxFactory) CreateTextbox() Textbox { return LinuxTextbox{} }

// Mac widgets.
type (
	MacButton  struct{}
	MacMenu    struct{}
	MacTextbox struct{}
)

func (MacButton) Paint() string { return "Mac Button" }
func (MacMenu) Display() string { return "Mac Menu" }
func (MacTextbox) Text() string { return "Mac Textbox" }

// MacFactory produces Mac widgets.
type MacFactory struct{}

func (MacFactory) CreateButton() Button   { return MacButton{} }
func (MacFactory) CreateMenu() Menu       { return MacMenu{} }
func (MacFactory) CreateTextbox() Textbox { return MacTextbox{} }

// RenderGUI asks f for a full widget set and writes one line per widget.
func RenderGUI(w io.Writer, f GUIFactory) {
	b := f.CreateButton()
	m := f.CreateMenu()
	t := f.CreateTextbox()

	fmt.Fprintln(w, b.Paint())
	fmt.Fprintln(w, m.Display())
	fmt.Fprintln(w, t.Text())
}

// Demo renders the Windows family followed by the Linux family.
func Demo(w io.Writer) error {
	for _, f := range []GUIFactory{WinFactory{}, LinuxFactory{}} {
		RenderGUI(w, f)
	}
	return nil
}
