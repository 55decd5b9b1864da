// Package window is the platform-independent window layer. Backends embed
// Base, translate native input through its event factories, push the
// results, and implement GetEvent.
package window

import (
	"unsafe"

	"github.com/ushitora-anqou/wsiwindow/event"
	"github.com/ushitora-anqou/wsiwindow/keycode"
)

// Instance refers to a graphics-API instance owned by the caller. Handle is
// the VkInstance value from the caller's Vulkan binding and must be of
// pointer kind.
type Instance struct {
	Handle     interface{}
	Extensions []string
}

type Window interface {
	// GetEvent returns the next queued event, or event.None if there is
	// none. It never blocks.
	GetEvent() event.Event
	Close()
	Running() bool
	TextInput() bool
	SetTextInput(enabled bool)
	HasFocus() bool
	KeyState(key keycode.Keycode) bool
	BtnState(btn uint8) bool
	MousePos() (x, y int16)
	Shape() event.Shape
	Instance() *Instance
	Surface() unsafe.Pointer
}

// Mouse button ids, one per button state slot. Move events carry 0, which
// MouseEvent ignores for moves.
const (
	ButtonLeft uint8 = iota
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)
