// Package uictl defines small control interfaces that decouple UI
// components from the hardware they drive.
package uictl

// Knob is a simple on/off toggle control.
type Knob interface {
	Read() bool
	On()
	Off()
	Toggle()
}
