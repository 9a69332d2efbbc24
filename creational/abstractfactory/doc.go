// Package abstractfactory demonstrates the Abstract Factory pattern.
//
// GUIFactory is the abstract factory: it creates a whole family of related
// widgets (Button, Menu, Textbox). WinFactory, LinuxFactory and MacFactory
// are the concrete factories, each producing its own concrete widget types
// (WinButton, LinuxMenu, MacTextbox, ...) that belong together.
// RenderGUI is written once against the interfaces and works for every
// family without ever inspecting a concrete type.
package abstractfactory
