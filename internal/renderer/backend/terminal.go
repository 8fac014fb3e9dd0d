package backend

import (
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cellkit/internal/renderer/core"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.EnablePaste()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if cell.IsContinuation() {
		return
	}
	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell))
}

func (t *Terminal) GetCell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	fg, bg, _ := style.Decompose()
	return core.Cell{
		Rune:   mainc,
		Width:  core.RuneWidth(mainc),
		Colors: core.Pair(convertTcellColor(fg), convertTcellColor(bg)),
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch style {
	case CursorUnderline:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyUnderline)
	case CursorBar:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	default:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
}

func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventNone}
		}
		if out := convertEvent(ev); out.Type != EventNone {
			return out
		}
	}
}

// PostEvent supports key and interrupt events. Interrupts are delivered
// back unchanged by PollEvent.
func (t *Terminal) PostEvent(event Event) {
	switch event.Type {
	case EventKey:
		k, r := tcell.KeyRune, event.Rune
		for tk, ours := range tcellKeys {
			if ours == event.Key {
				k = tk
				break
			}
		}
		_ = t.screen.PostEvent(tcell.NewEventKey(k, r, convertToTcellMod(event.Mod)))
	case EventInterrupt:
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(event))
	}
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

func convertColor(c core.Color) tcell.Color {
	if !c.IsPalette() {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(c.ANSI())
}

func convertStyle(c core.Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(c.Colors.Foreground)).
		Background(convertColor(c.Colors.Background))
	if c.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if c.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if c.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if c.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

func convertTcellColor(tc tcell.Color) core.Color {
	if tc == tcell.ColorDefault {
		return core.NoColor
	}
	if tc >= tcell.ColorValid && tc < tcell.ColorValid+core.PaletteSize {
		idx := int(tc - tcell.ColorValid)
		for c := core.Black; c < core.PaletteSize; c++ {
			if c.ANSI() == idx {
				return c
			}
		}
	}
	r, g, b := tc.RGB()
	return core.Nearest(uint8(r), uint8(g), uint8(b))
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		mod := convertMod(e.Modifiers())
		switch k := e.Key(); {
		case k == tcell.KeyRune:
			r := e.Rune()
			if mod.Has(ModCtrl) || mod.Has(ModAlt) {
				r = unicode.ToLower(r)
			}
			return Event{Type: EventKey, Key: KeyRune, Rune: r, Mod: mod}
		case k == tcell.KeyBacktab:
			return Event{Type: EventKey, Key: KeyTab, Mod: mod | ModShift}
		case k == tcell.KeyCtrlSpace:
			return Event{Type: EventKey, Key: KeyRune, Rune: ' ', Mod: mod | ModCtrl}
		default:
			if ours, ok := tcellKeys[k]; ok {
				return Event{Type: EventKey, Key: ours, Mod: mod}
			}
			if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
				return Event{Type: EventKey, Key: KeyRune, Rune: 'a' + rune(k-tcell.KeyCtrlA), Mod: mod | ModCtrl}
			}
		}

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseButton: convertMouseButton(e.Buttons()),
			Mod:         convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventPaste:
		return Event{Type: EventPaste, Focused: e.Start()}

	case *tcell.EventFocus:
		return Event{Type: EventFocus, Focused: e.Focused}

	case *tcell.EventInterrupt:
		if inner, ok := e.Data().(Event); ok {
			return inner
		}
		return Event{Type: EventInterrupt, Data: e.Data()}
	}
	return Event{Type: EventNone}
}

func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result |= ModAlt
	}
	return result
}

func convertToTcellMod(m ModMask) tcell.ModMask {
	var result tcell.ModMask
	if m.Has(ModShift) {
		result |= tcell.ModShift
	}
	if m.Has(ModCtrl) {
		result |= tcell.ModCtrl
	}
	if m.Has(ModAlt) {
		result |= tcell.ModAlt
	}
	return result
}

func convertMouseButton(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.WheelUp != 0:
		return MouseWheelUp
	case b&tcell.WheelDown != 0:
		return MouseWheelDown
	case b&tcell.WheelLeft != 0:
		return MouseWheelLeft
	case b&tcell.WheelRight != 0:
		return MouseWheelRight
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button2 != 0:
		return MouseRight
	case b&tcell.Button3 != 0:
		return MouseMiddle
	}
	return MouseNone
}
