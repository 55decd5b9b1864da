package window

import (
	"unsafe"

	"github.com/ushitora-anqou/wsiwindow/constant"
	"github.com/ushitora-anqou/wsiwindow/event"
	"github.com/ushitora-anqou/wsiwindow/fifo"
	"github.com/ushitora-anqou/wsiwindow/keycode"
)

// Base holds the input state shared by every backend. It is not safe for
// concurrent use; the pump and the consumer must run on one goroutine.
type Base struct {
	mousePos  struct{ x, y int16 }
	btnState  [constant.MOUSE_BUTTONS]bool
	keyState  [constant.KEY_COUNT]bool
	instance  *Instance
	surface   unsafe.Pointer
	eventFIFO *fifo.FIFO[event.Event]
	running   bool
	textInput bool
	hasFocus  bool
	shape     event.Shape
}

func NewBase(inst *Instance) *Base {
	return &Base{
		instance:  inst,
		eventFIFO: fifo.New[event.Event](constant.EVENT_QUEUE_SIZE),
		running:   true,
	}
}

// MouseEvent records the pointer position and, for presses and releases,
// the button state. A press or release of an unknown button changes nothing
// and yields event.None.
func (b *Base) MouseEvent(action event.MouseAction, x, y int16, btn uint8) event.Event {
	if action != event.MouseMove {
		if int(btn) >= len(b.btnState) {
			return event.None{}
		}
		b.btnState[btn] = action == event.MouseDown
	}
	b.mousePos.x, b.mousePos.y = x, y
	return event.Mouse{Action: action, X: x, Y: y, Btn: btn}
}

func (b *Base) KeyEvent(action event.KeyAction, key keycode.Keycode) event.Event {
	b.keyState[key] = action == event.KeyDown
	return event.Key{Action: action, Keycode: key}
}

func (b *Base) TextEvent(str string) event.Event {
	return event.Text{Str: str}
}

func (b *Base) ShapeEvent(x, y int16, width, height uint16) event.Event {
	b.shape = event.Shape{X: x, Y: y, Width: width, Height: height}
	return b.shape
}

func (b *Base) FocusEvent(hasFocus bool) event.Event {
	b.hasFocus = hasFocus
	return event.Focus{HasFocus: hasFocus}
}

func (b *Base) TouchEvent(action event.MouseAction, x, y float32, id uint8) event.Event {
	return event.Touch{Action: action, X: x, Y: y, ID: id}
}

// Push queues ev, dropping the oldest unread event if the queue is full.
// event.None is not queued.
func (b *Base) Push(ev event.Event) {
	if event.IsNone(ev) {
		return
	}
	b.eventFIFO.Push(ev)
}

// Pending reports whether queued events are waiting to be popped.
func (b *Base) Pending() bool {
	return !b.eventFIFO.IsEmpty()
}

// Pop returns the next queued event, or event.None.
func (b *Base) Pop() event.Event {
	ev, ok := b.eventFIFO.Pop()
	if !ok {
		return event.None{}
	}
	return ev
}

func (b *Base) Close() {
	b.running = false
}

func (b *Base) Running() bool {
	return b.running
}

func (b *Base) TextInput() bool {
	return b.textInput
}

func (b *Base) SetTextInput(enabled bool) {
	b.textInput = enabled
}

func (b *Base) HasFocus() bool {
	return b.hasFocus
}

func (b *Base) KeyState(key keycode.Keycode) bool {
	return b.keyState[key]
}

func (b *Base) BtnState(btn uint8) bool {
	if int(btn) >= len(b.btnState) {
		return false
	}
	return b.btnState[btn]
}

func (b *Base) MousePos() (x, y int16) {
	return b.mousePos.x, b.mousePos.y
}

func (b *Base) Shape() event.Shape {
	return b.shape
}

func (b *Base) Instance() *Instance {
	return b.instance
}

func (b *Base) Surface() unsafe.Pointer {
	return b.surface
}

// SetSurface stores the presentable surface a backend created for Instance.
// Base never destroys it.
func (b *Base) SetSurface(surface unsafe.Pointer) {
	b.surface = surface
}
