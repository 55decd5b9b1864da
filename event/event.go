// Package event defines the normalized window events a platform backend
// queues for the application.
//
// Event is a closed set of value types. Consumers match on it with a type
// switch:
//
//	switch ev := wind.GetEvent().(type) {
//	case event.Mouse:
//	case event.Key:
//	case event.Text:
//	case event.Shape:
//	case event.Focus:
//	case event.Touch:
//	case event.None:
//	}
package event

import (
	"fmt"

	"github.com/ushitora-anqou/wsiwindow/keycode"
)

type Tag uint8

const (
	TagNone Tag = iota
	TagMouse
	TagKey
	TagText
	TagShape
	TagFocus
	TagTouch
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "None"
	case TagMouse:
		return "Mouse"
	case TagKey:
		return "Key"
	case TagText:
		return "Text"
	case TagShape:
		return "Shape"
	case TagFocus:
		return "Focus"
	case TagTouch:
		return "Touch"
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

type MouseAction uint8

const (
	MouseMove MouseAction = iota
	MouseDown
	MouseUp
)

func (a MouseAction) String() string {
	switch a {
	case MouseMove:
		return "move"
	case MouseDown:
		return "down"
	case MouseUp:
		return "up"
	}
	return fmt.Sprintf("MouseAction(%d)", uint8(a))
}

type KeyAction uint8

const (
	KeyDown KeyAction = iota
	KeyUp
)

func (a KeyAction) String() string {
	switch a {
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	}
	return fmt.Sprintf("KeyAction(%d)", uint8(a))
}

type Event interface {
	Tag() Tag
	String() string
	isEvent()
}

// None is returned when no event is available.
type None struct{}

// Mouse is a pointer move or button transition. Btn is meaningless for moves.
type Mouse struct {
	Action MouseAction
	X, Y   int16
	Btn    uint8
}

type Key struct {
	Action  KeyAction
	Keycode keycode.Keycode
}

// Text owns its string; it never aliases a platform buffer.
type Text struct {
	Str string
}

// Shape is a window move or resize. It also serves as the window geometry.
type Shape struct {
	X, Y          int16
	Width, Height uint16
}

type Focus struct {
	HasFocus bool
}

// Touch coordinates are in window pixels.
type Touch struct {
	Action MouseAction
	X, Y   float32
	ID     uint8
}

func (None) Tag() Tag  { return TagNone }
func (Mouse) Tag() Tag { return TagMouse }
func (Key) Tag() Tag   { return TagKey }
func (Text) Tag() Tag  { return TagText }
func (Shape) Tag() Tag { return TagShape }
func (Focus) Tag() Tag { return TagFocus }
func (Touch) Tag() Tag { return TagTouch }

func (None) isEvent()  {}
func (Mouse) isEvent() {}
func (Key) isEvent()   {}
func (Text) isEvent()  {}
func (Shape) isEvent() {}
func (Focus) isEvent() {}
func (Touch) isEvent() {}

func (None) String() string {
	return "none"
}

func (e Mouse) String() string {
	if e.Action == MouseMove {
		return fmt.Sprintf("mouse move x=%d y=%d", e.X, e.Y)
	}
	return fmt.Sprintf("mouse %v x=%d y=%d btn=%d", e.Action, e.X, e.Y, e.Btn)
}

func (e Key) String() string {
	return fmt.Sprintf("key %v %v", e.Action, e.Keycode)
}

func (e Text) String() string {
	return fmt.Sprintf("text %q", e.Str)
}

func (e Shape) String() string {
	return fmt.Sprintf("shape x=%d y=%d w=%d h=%d", e.X, e.Y, e.Width, e.Height)
}

func (e Focus) String() string {
	if e.HasFocus {
		return "focus gained"
	}
	return "focus lost"
}

func (e Touch) String() string {
	return fmt.Sprintf("touch %v x=%.1f y=%.1f id=%d", e.Action, e.X, e.Y, e.ID)
}

// IsNone reports whether ev carries no event. A nil interface counts as none.
func IsNone(ev Event) bool {
	return ev == nil || ev.Tag() == TagNone
}
