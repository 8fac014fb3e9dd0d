// Package backend abstracts the terminal the toolkit draws on.
package backend

import (
	"strings"

	"github.com/dshills/cellkit/internal/renderer/core"
)

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	EventFocus
	// EventInterrupt carries Data from another goroutine into the
	// event loop.
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields. Ctrl+letter arrives as KeyRune with the
	// lowercase letter in Rune and ModCtrl set.
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields. MouseButton is the button currently held, so
	// a release is reported as MouseNone.
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int

	// Focus event fields; for paste events, true marks the start.
	Focused bool

	// Interrupt payload
	Data any
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
)

// Backend is a character-cell display with an input event source.
type Backend interface {
	// Init initializes the backend. Must be called before any other method.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell. Positions outside the screen are ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at the given position.
	GetCell(x, y int) core.Cell

	// Clear clears the entire screen.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostEvent queues a synthetic event. It is safe to call from any
	// goroutine.
	PostEvent(event Event)

	// Beep produces an audible or visual bell.
	Beep()
}

// NullBackend is an in-memory backend for tests and scripted runs.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	events        chan Event
	shows         int
	beeps         int
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 256),
	}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error { return nil }
func (b *NullBackend) Shutdown()   {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Clear() {
	b.allocate()
}

func (b *NullBackend) Show() { b.shows++ }

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

// TryPollEvent returns the next queued event without blocking.
func (b *NullBackend) TryPollEvent() (Event, bool) {
	select {
	case ev := <-b.events:
		return ev, true
	default:
		return Event{}, false
	}
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// queue full; tests never post this many events
	}
}

func (b *NullBackend) Beep() { b.beeps++ }

// CursorPosition returns the current cursor position.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int { return b.shows }

// BeepCount returns how many times Beep was called.
func (b *NullBackend) BeepCount() int { return b.beeps }

// Resize changes the screen size and queues the matching resize event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// Lines returns the screen content, one string per row, with wide rune
// continuation cells skipped.
func (b *NullBackend) Lines() []string {
	lines := make([]string, b.height)
	var sb strings.Builder
	for y := range b.cells {
		sb.Reset()
		for _, c := range b.cells[y] {
			if c.IsContinuation() {
				continue
			}
			if c.Rune == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(c.Rune)
		}
		lines[y] = sb.String()
	}
	return lines
}
