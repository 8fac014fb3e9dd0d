// Package clipboard gives controls a place to copy text to and paste
// text from.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"

	"github.com/dshills/cellkit/internal/logging"
)

// Clipboard stores one piece of text.
type Clipboard interface {
	// SetText replaces the contents and reports whether it succeeded.
	SetText(text string) bool
	// GetText returns the contents, or "" when empty or unavailable.
	GetText() string
}

// System is the operating system clipboard. When the OS clipboard is
// unavailable (no xclip/xsel/wl-clipboard, headless sessions) it keeps
// the text in memory so copy and paste still work inside the program.
type System struct {
	fallback Memory
}

// NewSystem returns the OS clipboard.
func NewSystem() *System {
	return &System{}
}

// Available reports whether the OS clipboard can be reached.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// SetText writes to the OS clipboard.
func (s *System) SetText(text string) bool {
	s.fallback.SetText(text)
	if clipboard.Unsupported {
		return true
	}
	if err := clipboard.WriteAll(text); err != nil {
		logging.Component("clipboard").WithField("op", "set").Warn("system clipboard write failed: %v", err)
		return false
	}
	return true
}

// GetText reads the OS clipboard.
func (s *System) GetText() string {
	if clipboard.Unsupported {
		return s.fallback.GetText()
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		logging.Component("clipboard").WithField("op", "get").Warn("system clipboard read failed: %v", err)
		return s.fallback.GetText()
	}
	return text
}

// Memory is an in-process clipboard. The zero value is empty and ready
// to use.
type Memory struct {
	mu   sync.Mutex
	text string
	// Fail makes SetText report failure, for exercising error paths.
	Fail bool
}

// SetText stores text.
func (m *Memory) SetText(text string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return false
	}
	m.text = text
	return true
}

// GetText returns the stored text.
func (m *Memory) GetText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Clear empties the clipboard.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = ""
}
