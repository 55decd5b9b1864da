//go:build sdl2

package window

import (
	"fmt"
	"unsafe"

	"github.com/mattn/go-pointer"
	"github.com/ushitora-anqou/wsiwindow/event"
	"github.com/ushitora-anqou/wsiwindow/keycode"
	"github.com/ushitora-anqou/wsiwindow/util"
	"github.com/veandco/go-sdl2/sdl"
)

// Name of the native window data slot holding the Go window.
const sdlDataName = "wsiwindow"

func SDLInitialize() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
}

func SDLQuit() {
	sdl.Quit()
}

type SDLWindow struct {
	*Base
	window   *sdl.Window
	windowID uint32
	token    unsafe.Pointer // go-pointer handle stored in the native window
	touches  *touchSlots

	pollEvent func() sdl.Event
	lookup    func(id uint32) *SDLWindow
}

func newSDLWindow(inst *Instance, window *sdl.Window, windowID uint32) *SDLWindow {
	return &SDLWindow{
		Base:      NewBase(inst),
		window:    window,
		windowID:  windowID,
		touches:   newTouchSlots(),
		pollEvent: sdl.PollEvent,
		lookup:    lookupSDLWindow,
	}
}

// NewSDLWindow opens a native window. When inst is non-nil the window is
// created Vulkan-capable and a presentable surface is made for inst; the
// caller destroys that surface through its Vulkan binding.
func NewSDLWindow(title string, width, height int32, inst *Instance) (*SDLWindow, error) {
	var flags uint32 = sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE
	if inst != nil {
		flags |= sdl.WINDOW_VULKAN
	}

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		width,
		height,
		flags,
	)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	windowID, err := window.GetID()
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("get window id: %w", err)
	}

	wind := newSDLWindow(inst, window, windowID)

	if inst != nil {
		surface, err := window.VulkanCreateSurface(inst.Handle)
		if err != nil {
			window.Destroy()
			return nil, fmt.Errorf("create vulkan surface: %w", err)
		}
		wind.SetSurface(surface)
	}

	wind.token = pointer.Save(wind)
	window.SetData(sdlDataName, wind.token)

	x, y := window.GetPosition()
	w, h := window.GetSize()
	wind.ShapeEvent(int16(x), int16(y), uint16(w), uint16(h))

	return wind, nil
}

// RequiredInstanceExtensions lists the Vulkan instance extensions needed to
// create a surface for this window.
func (wind *SDLWindow) RequiredInstanceExtensions() []string {
	return wind.window.VulkanGetInstanceExtensions()
}

// GetEvent translates native events one at a time until one of them yields
// an event for this window. Events left in SDL's queue stay there until the
// next pull, so the small event queue only ever buffers what a single native
// event produced.
func (wind *SDLWindow) GetEvent() event.Event {
	for !wind.Pending() {
		ev := wind.pollEvent()
		if ev == nil {
			break
		}
		wind.route(ev)
	}
	return wind.Pop()
}

// route hands ev to the window it belongs to. Events without a window, such
// as quit and touch, go to the pulling window.
func (wind *SDLWindow) route(ev sdl.Event) {
	target := wind
	if id, ok := sdlWindowID(ev); ok && id != 0 && id != wind.windowID {
		target = wind.lookup(id)
		if target == nil {
			util.Trace("sdl: dropping event for unknown window %d", id)
			return
		}
	}
	target.handleEvent(ev)
}

func (wind *SDLWindow) handleEvent(ev sdl.Event) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		wind.Close()

	case *sdl.MouseMotionEvent:
		wind.push(wind.MouseEvent(event.MouseMove, int16(e.X), int16(e.Y), 0))

	case *sdl.MouseButtonEvent:
		action := event.MouseDown
		if e.Type == sdl.MOUSEBUTTONUP {
			action = event.MouseUp
		}
		btn, ok := sdlButton(e.Button)
		if !ok {
			util.Trace("sdl: dropping mouse button %d", e.Button)
			return
		}
		wind.push(wind.MouseEvent(action, int16(e.X), int16(e.Y), btn))

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return
		}
		key, ok := sdlKeycode(e.Keysym.Scancode)
		if !ok {
			util.Trace("sdl: dropping key with scancode %d", e.Keysym.Scancode)
			return
		}
		action := event.KeyDown
		if e.Type == sdl.KEYUP {
			action = event.KeyUp
		}
		wind.push(wind.KeyEvent(action, key))
		if action == event.KeyDown && key == keycode.KeyV && wind.TextInput() &&
			sdl.GetModState()&sdl.KMOD_CTRL != 0 {
			wind.paste()
		}

	case *sdl.TextInputEvent:
		if wind.TextInput() {
			wind.push(wind.TextEvent(e.GetText()))
		}

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_MOVED:
			shape := wind.Shape()
			wind.push(wind.ShapeEvent(int16(e.Data1), int16(e.Data2), shape.Width, shape.Height))
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			shape := wind.Shape()
			wind.push(wind.ShapeEvent(shape.X, shape.Y, uint16(e.Data1), uint16(e.Data2)))
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			wind.push(wind.FocusEvent(true))
		case sdl.WINDOWEVENT_FOCUS_LOST:
			wind.push(wind.FocusEvent(false))
		case sdl.WINDOWEVENT_CLOSE:
			wind.Close()
		}

	case *sdl.TouchFingerEvent:
		action := event.MouseMove
		var slot uint8
		var ok bool
		switch e.Type {
		case sdl.FINGERDOWN:
			action = event.MouseDown
			slot, ok = wind.touches.acquire(int64(e.FingerID))
		case sdl.FINGERUP:
			action = event.MouseUp
			slot, ok = wind.touches.release(int64(e.FingerID))
		default:
			slot, ok = wind.touches.acquire(int64(e.FingerID))
		}
		if !ok {
			util.Trace("sdl: dropping touch for finger %d", e.FingerID)
			return
		}
		// SDL reports normalized coordinates.
		shape := wind.Shape()
		x := e.X * float32(shape.Width)
		y := e.Y * float32(shape.Height)
		wind.push(wind.TouchEvent(action, x, y, slot))
	}
}

func (wind *SDLWindow) push(ev event.Event) {
	util.Trace("sdl: window %d: %v", wind.windowID, ev)
	wind.Push(ev)
}

func (wind *SDLWindow) paste() {
	text, err := sdl.GetClipboardText()
	if err != nil {
		util.Trace("sdl: clipboard: %v", err)
		return
	}
	if text != "" {
		wind.push(wind.TextEvent(text))
	}
}

func (wind *SDLWindow) SetTextInput(enabled bool) {
	wind.Base.SetTextInput(enabled)
	if enabled {
		sdl.StartTextInput()
	} else {
		sdl.StopTextInput()
	}
}

// Close stops the window and releases the native window. The Vulkan
// surface, if any, is left to the caller.
func (wind *SDLWindow) Close() {
	wind.Base.Close()
	if wind.window == nil {
		return
	}
	wind.window.SetData(sdlDataName, nil)
	pointer.Unref(wind.token)
	wind.token = nil
	wind.window.Destroy()
	wind.window = nil
}

func (wind *SDLWindow) getTicks() int64 {
	return int64(sdl.GetTicks()) * 1000
}

func (wind *SDLWindow) delay(us int64) {
	sdl.Delay(uint32(us / 1000))
}

// SDL numbers buttons from 1 (BUTTON_LEFT) to 5 (BUTTON_X2).
func sdlButton(button uint8) (uint8, bool) {
	if button < uint8(sdl.BUTTON_LEFT) || button > uint8(sdl.BUTTON_X2) {
		return 0, false
	}
	return button - uint8(sdl.BUTTON_LEFT), true
}

// SDL scancodes are USB HID usage ids.
func sdlKeycode(scancode sdl.Scancode) (keycode.Keycode, bool) {
	if scancode == sdl.SCANCODE_UNKNOWN || scancode > 0xff {
		return keycode.KeyNone, false
	}
	return keycode.Keycode(scancode), true
}

func sdlWindowID(ev sdl.Event) (uint32, bool) {
	switch e := ev.(type) {
	case *sdl.MouseMotionEvent:
		return e.WindowID, true
	case *sdl.MouseButtonEvent:
		return e.WindowID, true
	case *sdl.KeyboardEvent:
		return e.WindowID, true
	case *sdl.TextInputEvent:
		return e.WindowID, true
	case *sdl.WindowEvent:
		return e.WindowID, true
	}
	return 0, false
}

func lookupSDLWindow(id uint32) *SDLWindow {
	window, err := sdl.GetWindowFromID(id)
	if err != nil || window == nil {
		return nil
	}
	token := window.GetData(sdlDataName)
	if token == nil {
		return nil
	}
	wind, ok := pointer.Restore(token).(*SDLWindow)
	if !ok {
		return nil
	}
	return wind
}
