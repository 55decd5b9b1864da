package window

import (
	"testing"
	"unsafe"

	"github.com/ushitora-anqou/wsiwindow/event"
	"github.com/ushitora-anqou/wsiwindow/keycode"
)

// queueWindow is a backend with no platform behind it; events are pushed by
// the test itself.
type queueWindow struct {
	*Base
}

func (w *queueWindow) GetEvent() event.Event {
	return w.Pop()
}

var _ Window = (*queueWindow)(nil)

func TestMouseButtonState(t *testing.T) {
	b := NewBase(nil)

	ev := b.MouseEvent(event.MouseDown, 10, 20, 0)
	if ev != (event.Mouse{Action: event.MouseDown, X: 10, Y: 20, Btn: 0}) {
		t.Fatalf("(got: %v)", ev)
	}
	if !b.BtnState(0) {
		t.Fatalf("button 0 not pressed after down")
	}
	if x, y := b.MousePos(); x != 10 || y != 20 {
		t.Fatalf("(got pos: %d, %d) (expected: 10, 20)", x, y)
	}

	b.MouseEvent(event.MouseUp, 10, 20, 0)
	if b.BtnState(0) {
		t.Fatalf("button 0 still pressed after up")
	}
}

func TestMouseMoveKeepsButtons(t *testing.T) {
	b := NewBase(nil)
	b.MouseEvent(event.MouseDown, 0, 0, ButtonRight)
	ev := b.MouseEvent(event.MouseMove, -3, 7, 0)
	if ev.Tag() != event.TagMouse {
		t.Fatalf("(got: %v)", ev)
	}
	if !b.BtnState(ButtonRight) || b.BtnState(0) {
		t.Fatalf("move changed button state")
	}
	if x, y := b.MousePos(); x != -3 || y != 7 {
		t.Fatalf("(got pos: %d, %d) (expected: -3, 7)", x, y)
	}
}

func TestMouseOutOfRangeButton(t *testing.T) {
	b := NewBase(nil)
	b.MouseEvent(event.MouseMove, 1, 2, 0)

	for _, btn := range []uint8{5, 6, 255} {
		for _, action := range []event.MouseAction{event.MouseDown, event.MouseUp} {
			ev := b.MouseEvent(action, 100, 200, btn)
			if !event.IsNone(ev) {
				t.Fatalf("btn %d: (got: %v) (expected: none)", btn, ev)
			}
			if b.BtnState(btn) {
				t.Fatalf("BtnState(%d) = true", btn)
			}
		}
	}
	if x, y := b.MousePos(); x != 1 || y != 2 {
		t.Fatalf("rejected event moved the pointer to %d, %d", x, y)
	}
	for btn := uint8(0); btn < 5; btn++ {
		if b.BtnState(btn) {
			t.Fatalf("rejected event pressed button %d", btn)
		}
	}
}

func TestBtnStateOutOfRangeAlwaysFalse(t *testing.T) {
	b := NewBase(nil)
	for btn := uint8(0); btn < 5; btn++ {
		b.MouseEvent(event.MouseDown, 0, 0, btn)
	}
	if b.BtnState(5) {
		t.Fatalf("BtnState(5) = true")
	}
}

func TestKeyState(t *testing.T) {
	b := NewBase(nil)

	ev := b.KeyEvent(event.KeyDown, 65)
	if ev != (event.Key{Action: event.KeyDown, Keycode: 65}) {
		t.Fatalf("(got: %v)", ev)
	}
	if !b.KeyState(65) {
		t.Fatalf("key 65 not pressed after down")
	}
	b.KeyEvent(event.KeyUp, 65)
	if b.KeyState(65) {
		t.Fatalf("key 65 still pressed after up")
	}

	b.KeyEvent(event.KeyDown, 255)
	if !b.KeyState(255) || b.KeyState(254) {
		t.Fatalf("key 255 state mismatch")
	}
}

func TestShapeEvent(t *testing.T) {
	b := NewBase(nil)
	ev := b.ShapeEvent(0, 0, 800, 600)
	expected := event.Shape{X: 0, Y: 0, Width: 800, Height: 600}
	if ev != expected {
		t.Fatalf("(got: %v) (expected: %v)", ev, expected)
	}
	if b.Shape() != expected {
		t.Fatalf("(got shape: %v) (expected: %v)", b.Shape(), expected)
	}
}

func TestFocusEvent(t *testing.T) {
	b := NewBase(nil)
	if b.HasFocus() {
		t.Fatalf("new window has focus")
	}
	if ev := b.FocusEvent(true); ev != (event.Focus{HasFocus: true}) || !b.HasFocus() {
		t.Fatalf("(got: %v, focus: %v)", ev, b.HasFocus())
	}
	if ev := b.FocusEvent(false); ev != (event.Focus{}) || b.HasFocus() {
		t.Fatalf("(got: %v, focus: %v)", ev, b.HasFocus())
	}
}

func TestTextAndTouchLeaveStateAlone(t *testing.T) {
	b := NewBase(nil)
	before := *b
	if ev := b.TextEvent("héllo"); ev != (event.Text{Str: "héllo"}) {
		t.Fatalf("(got: %v)", ev)
	}
	if ev := b.TouchEvent(event.MouseDown, 1.5, 2.5, 3); ev != (event.Touch{Action: event.MouseDown, X: 1.5, Y: 2.5, ID: 3}) {
		t.Fatalf("(got: %v)", ev)
	}
	if b.mousePos != before.mousePos || b.btnState != before.btnState || b.keyState != before.keyState {
		t.Fatalf("text or touch event changed input state")
	}
}

func TestQueueOverwriteScenario(t *testing.T) {
	w := &queueWindow{NewBase(nil)}
	w.Push(w.MouseEvent(event.MouseMove, 1, 1, 0))
	w.Push(w.KeyEvent(event.KeyDown, keycode.KeyA))
	w.Push(w.TextEvent("a"))
	w.Push(w.ShapeEvent(0, 0, 800, 600))
	w.Push(w.FocusEvent(true))

	expected := []event.Tag{event.TagKey, event.TagText, event.TagShape, event.TagFocus}
	for _, tag := range expected {
		ev := w.GetEvent()
		if ev.Tag() != tag {
			t.Fatalf("(got: %v) (expected: %v)", ev.Tag(), tag)
		}
	}
	if ev := w.GetEvent(); !event.IsNone(ev) {
		t.Fatalf("(got: %v) (expected: none)", ev)
	}

	// State still reflects the overwritten mouse event.
	if x, y := w.MousePos(); x != 1 || y != 1 {
		t.Fatalf("(got pos: %d, %d) (expected: 1, 1)", x, y)
	}
}

func TestPushSkipsNone(t *testing.T) {
	w := &queueWindow{NewBase(nil)}
	w.Push(w.KeyEvent(event.KeyDown, keycode.KeyB))
	w.Push(w.MouseEvent(event.MouseDown, 0, 0, 9))
	w.Push(nil)

	if ev := w.GetEvent(); ev.Tag() != event.TagKey {
		t.Fatalf("(got: %v) (expected: key)", ev)
	}
	if ev := w.GetEvent(); !event.IsNone(ev) {
		t.Fatalf("(got: %v) (expected: none)", ev)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	b := NewBase(nil)
	if !b.Running() {
		t.Fatalf("new window is not running")
	}
	b.Close()
	b.Close()
	if b.Running() {
		t.Fatalf("window still running after Close")
	}
}

func TestTextInputToggle(t *testing.T) {
	b := NewBase(nil)
	if b.TextInput() {
		t.Fatalf("text input enabled by default")
	}
	b.SetTextInput(true)
	if !b.TextInput() {
		t.Fatalf("text input not enabled")
	}
	b.SetTextInput(false)
	if b.TextInput() {
		t.Fatalf("text input not disabled")
	}
}

func TestInstanceAndSurfaceAreBorrowed(t *testing.T) {
	handle := new(int)
	inst := &Instance{Handle: handle, Extensions: []string{"VK_KHR_surface"}}
	b := NewBase(inst)
	if b.Instance() != inst {
		t.Fatalf("Instance() does not return the caller's instance")
	}
	if b.Surface() != nil {
		t.Fatalf("surface set before backend created one")
	}
	var surface uint64 = 42
	b.SetSurface(unsafe.Pointer(&surface))
	if *(*uint64)(b.Surface()) != 42 {
		t.Fatalf("surface not stored")
	}
}
