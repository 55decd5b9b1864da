//go:build ebiten

package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ushitora-anqou/wsiwindow/event"
	"github.com/ushitora-anqou/wsiwindow/keycode"
	"github.com/ushitora-anqou/wsiwindow/util"
	"golang.design/x/clipboard"
)

var ebitenButtons = []struct {
	button ebiten.MouseButton
	id     uint8
}{
	{ebiten.MouseButtonLeft, ButtonLeft},
	{ebiten.MouseButtonMiddle, ButtonMiddle},
	{ebiten.MouseButtonRight, ButtonRight},
	{ebiten.MouseButton3, ButtonX1},
	{ebiten.MouseButton4, ButtonX2},
}

// EbitenWindow polls ebiten's input state once per tick and stages the
// differences as native changes. GetEvent translates one staged change per
// pull, so a busy tick waits in the stage rather than overflowing the event
// queue. ebiten owns the loop, so the window is driven by Run.
type EbitenWindow struct {
	*Base
	staged   []func() event.Event
	keys     []ebiten.Key
	touchIDs []ebiten.TouchID
	chars    []rune
	seen     ebitenSeen
	touches  map[int64][2]int
	slots    *touchSlots
	canPaste bool
}

// ebitenSeen is the input state as of the last pump. Diffs are taken against
// it, not against Base, because staged changes may not be translated yet.
type ebitenSeen struct {
	pumped  bool
	focused bool
	cursorX int16
	cursorY int16
	shape   event.Shape
}

// NewEbitenWindow configures ebiten's window. tps is the number of input
// polls per second.
func NewEbitenWindow(title string, width, height, tps int) *EbitenWindow {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	wind := &EbitenWindow{
		Base:    NewBase(nil),
		touches: map[int64][2]int{},
		slots:   newTouchSlots(),
	}
	if err := clipboard.Init(); err != nil {
		util.Trace("ebiten: clipboard unavailable, paste disabled: %v", err)
	} else {
		wind.canPaste = true
	}
	return wind
}

func (wind *EbitenWindow) GetEvent() event.Event {
	for !wind.Pending() && len(wind.staged) > 0 {
		translate := wind.staged[0]
		wind.staged[0] = nil
		wind.staged = wind.staged[1:]
		ev := translate()
		util.Trace("ebiten: %v", ev)
		wind.Push(ev)
	}
	return wind.Pop()
}

func (wind *EbitenWindow) stage(translate func() event.Event) {
	wind.staged = append(wind.staged, translate)
}

// PumpEvents must be called from ebiten's Update.
func (wind *EbitenWindow) PumpEvents() {
	x, y := ebiten.WindowPosition()
	w, h := ebiten.WindowSize()
	shape := event.Shape{X: int16(x), Y: int16(y), Width: uint16(w), Height: uint16(h)}
	if shape != wind.seen.shape || !wind.seen.pumped {
		wind.seen.shape = shape
		wind.stage(func() event.Event {
			return wind.ShapeEvent(shape.X, shape.Y, shape.Width, shape.Height)
		})
	}

	if focused := ebiten.IsFocused(); focused != wind.seen.focused || !wind.seen.pumped {
		wind.seen.focused = focused
		wind.stage(func() event.Event { return wind.FocusEvent(focused) })
	}

	cx, cy := ebiten.CursorPosition()
	mx, my := int16(cx), int16(cy)
	if mx != wind.seen.cursorX || my != wind.seen.cursorY {
		wind.seen.cursorX, wind.seen.cursorY = mx, my
		wind.stage(func() event.Event { return wind.MouseEvent(event.MouseMove, mx, my, 0) })
	}
	for _, b := range ebitenButtons {
		id := b.id
		if inpututil.IsMouseButtonJustPressed(b.button) {
			wind.stage(func() event.Event { return wind.MouseEvent(event.MouseDown, mx, my, id) })
		}
		if inpututil.IsMouseButtonJustReleased(b.button) {
			wind.stage(func() event.Event { return wind.MouseEvent(event.MouseUp, mx, my, id) })
		}
	}

	wind.keys = inpututil.AppendJustPressedKeys(wind.keys[:0])
	for _, k := range wind.keys {
		if key, ok := ebitenKeycode(k); ok {
			wind.stage(func() event.Event { return wind.KeyEvent(event.KeyDown, key) })
		}
	}
	wind.keys = inpututil.AppendJustReleasedKeys(wind.keys[:0])
	for _, k := range wind.keys {
		if key, ok := ebitenKeycode(k); ok {
			wind.stage(func() event.Event { return wind.KeyEvent(event.KeyUp, key) })
		}
	}

	if wind.TextInput() {
		wind.chars = ebiten.AppendInputChars(wind.chars[:0])
		if len(wind.chars) > 0 {
			text := string(wind.chars)
			wind.stage(func() event.Event { return wind.TextEvent(text) })
		}
		if wind.canPaste && ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyV) {
			if text := clipboard.Read(clipboard.FmtText); len(text) > 0 {
				pasted := string(text)
				wind.stage(func() event.Event { return wind.TextEvent(pasted) })
			}
		}
	}

	wind.touchIDs = ebiten.AppendTouchIDs(wind.touchIDs[:0])
	current := make([]touchPoint, 0, len(wind.touchIDs))
	for _, id := range wind.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		current = append(current, touchPoint{id: int64(id), x: tx, y: ty})
	}
	wind.stageTouches(diffTouches(wind.touches, current))

	wind.seen.pumped = true
}

// stageTouches assigns slots to the touch transitions of one tick.
func (wind *EbitenWindow) stageTouches(changes []touchChange) {
	for _, c := range changes {
		var slot uint8
		var ok bool
		if c.action == event.MouseUp {
			slot, ok = wind.slots.release(c.id)
		} else {
			slot, ok = wind.slots.acquire(c.id)
		}
		if !ok {
			util.Trace("ebiten: dropping touch %d", c.id)
			continue
		}
		action, x, y := c.action, float32(c.x), float32(c.y)
		wind.stage(func() event.Event { return wind.TouchEvent(action, x, y, slot) })
	}
}

// Run drives the window with ebiten's game loop. update is called once per
// tick after input has been pumped. Run returns when the window is closed or
// update fails.
func (wind *EbitenWindow) Run(update func(Window) error) error {
	err := ebiten.RunGame(&ebitenGame{wind: wind, update: update})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type ebitenGame struct {
	wind   *EbitenWindow
	update func(Window) error
}

func (g *ebitenGame) Update() error {
	g.wind.PumpEvents()
	if err := g.update(g.wind); err != nil {
		return err
	}
	if !g.wind.Running() {
		return ebiten.Termination
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

var ebitenKeys = map[ebiten.Key]keycode.Keycode{
	ebiten.KeyA:              keycode.KeyA,
	ebiten.KeyB:              keycode.KeyB,
	ebiten.KeyC:              keycode.KeyC,
	ebiten.KeyD:              keycode.KeyD,
	ebiten.KeyE:              keycode.KeyE,
	ebiten.KeyF:              keycode.KeyF,
	ebiten.KeyG:              keycode.KeyG,
	ebiten.KeyH:              keycode.KeyH,
	ebiten.KeyI:              keycode.KeyI,
	ebiten.KeyJ:              keycode.KeyJ,
	ebiten.KeyK:              keycode.KeyK,
	ebiten.KeyL:              keycode.KeyL,
	ebiten.KeyM:              keycode.KeyM,
	ebiten.KeyN:              keycode.KeyN,
	ebiten.KeyO:              keycode.KeyO,
	ebiten.KeyP:              keycode.KeyP,
	ebiten.KeyQ:              keycode.KeyQ,
	ebiten.KeyR:              keycode.KeyR,
	ebiten.KeyS:              keycode.KeyS,
	ebiten.KeyT:              keycode.KeyT,
	ebiten.KeyU:              keycode.KeyU,
	ebiten.KeyV:              keycode.KeyV,
	ebiten.KeyW:              keycode.KeyW,
	ebiten.KeyX:              keycode.KeyX,
	ebiten.KeyY:              keycode.KeyY,
	ebiten.KeyZ:              keycode.KeyZ,
	ebiten.KeyDigit1:         keycode.Key1,
	ebiten.KeyDigit2:         keycode.Key2,
	ebiten.KeyDigit3:         keycode.Key3,
	ebiten.KeyDigit4:         keycode.Key4,
	ebiten.KeyDigit5:         keycode.Key5,
	ebiten.KeyDigit6:         keycode.Key6,
	ebiten.KeyDigit7:         keycode.Key7,
	ebiten.KeyDigit8:         keycode.Key8,
	ebiten.KeyDigit9:         keycode.Key9,
	ebiten.KeyDigit0:         keycode.Key0,
	ebiten.KeyEnter:          keycode.KeyEnter,
	ebiten.KeyEscape:         keycode.KeyEscape,
	ebiten.KeyBackspace:      keycode.KeyBackspace,
	ebiten.KeyTab:            keycode.KeyTab,
	ebiten.KeySpace:          keycode.KeySpace,
	ebiten.KeyMinus:          keycode.KeyMinus,
	ebiten.KeyEqual:          keycode.KeyEquals,
	ebiten.KeyBracketLeft:    keycode.KeyLeftBracket,
	ebiten.KeyBracketRight:   keycode.KeyRightBracket,
	ebiten.KeyBackslash:      keycode.KeyBackslash,
	ebiten.KeySemicolon:      keycode.KeySemicolon,
	ebiten.KeyQuote:          keycode.KeyApostrophe,
	ebiten.KeyBackquote:      keycode.KeyGrave,
	ebiten.KeyComma:          keycode.KeyComma,
	ebiten.KeyPeriod:         keycode.KeyPeriod,
	ebiten.KeySlash:          keycode.KeySlash,
	ebiten.KeyCapsLock:       keycode.KeyCapsLock,
	ebiten.KeyF1:             keycode.KeyF1,
	ebiten.KeyF2:             keycode.KeyF2,
	ebiten.KeyF3:             keycode.KeyF3,
	ebiten.KeyF4:             keycode.KeyF4,
	ebiten.KeyF5:             keycode.KeyF5,
	ebiten.KeyF6:             keycode.KeyF6,
	ebiten.KeyF7:             keycode.KeyF7,
	ebiten.KeyF8:             keycode.KeyF8,
	ebiten.KeyF9:             keycode.KeyF9,
	ebiten.KeyF10:            keycode.KeyF10,
	ebiten.KeyF11:            keycode.KeyF11,
	ebiten.KeyF12:            keycode.KeyF12,
	ebiten.KeyPrintScreen:    keycode.KeyPrintScreen,
	ebiten.KeyScrollLock:     keycode.KeyScrollLock,
	ebiten.KeyPause:          keycode.KeyPause,
	ebiten.KeyInsert:         keycode.KeyInsert,
	ebiten.KeyHome:           keycode.KeyHome,
	ebiten.KeyPageUp:         keycode.KeyPageUp,
	ebiten.KeyDelete:         keycode.KeyDelete,
	ebiten.KeyEnd:            keycode.KeyEnd,
	ebiten.KeyPageDown:       keycode.KeyPageDown,
	ebiten.KeyArrowRight:     keycode.KeyRight,
	ebiten.KeyArrowLeft:      keycode.KeyLeft,
	ebiten.KeyArrowDown:      keycode.KeyDown,
	ebiten.KeyArrowUp:        keycode.KeyUp,
	ebiten.KeyNumLock:        keycode.KeyNumLock,
	ebiten.KeyNumpadDivide:   keycode.KeyKPDivide,
	ebiten.KeyNumpadMultiply: keycode.KeyKPMultiply,
	ebiten.KeyNumpadSubtract: keycode.KeyKPMinus,
	ebiten.KeyNumpadAdd:      keycode.KeyKPPlus,
	ebiten.KeyNumpadEnter:    keycode.KeyKPEnter,
	ebiten.KeyNumpad1:        keycode.KeyKP1,
	ebiten.KeyNumpad2:        keycode.KeyKP2,
	ebiten.KeyNumpad3:        keycode.KeyKP3,
	ebiten.KeyNumpad4:        keycode.KeyKP4,
	ebiten.KeyNumpad5:        keycode.KeyKP5,
	ebiten.KeyNumpad6:        keycode.KeyKP6,
	ebiten.KeyNumpad7:        keycode.KeyKP7,
	ebiten.KeyNumpad8:        keycode.KeyKP8,
	ebiten.KeyNumpad9:        keycode.KeyKP9,
	ebiten.KeyNumpad0:        keycode.KeyKP0,
	ebiten.KeyNumpadDecimal:  keycode.KeyKPPeriod,
	ebiten.KeyControlLeft:    keycode.KeyLeftCtrl,
	ebiten.KeyShiftLeft:      keycode.KeyLeftShift,
	ebiten.KeyAltLeft:        keycode.KeyLeftAlt,
	ebiten.KeyMetaLeft:       keycode.KeyLeftGUI,
	ebiten.KeyControlRight:   keycode.KeyRightCtrl,
	ebiten.KeyShiftRight:     keycode.KeyRightShift,
	ebiten.KeyAltRight:       keycode.KeyRightAlt,
	ebiten.KeyMetaRight:      keycode.KeyRightGUI,
}

func ebitenKeycode(k ebiten.Key) (keycode.Keycode, bool) {
	key, ok := ebitenKeys[k]
	return key, ok
}
