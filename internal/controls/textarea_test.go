package controls

import (
	"testing"

	"github.com/dshills/cellkit/internal/input"
)

func newTestTextArea(t *testing.T, text string, flags TextAreaFlags) (*testRoot, *TextArea) {
	t.Helper()
	root := newTestRoot(60, 20)
	ta, err := NewTextArea(root, "x:0,y:0,w:30,h:6", text, flags)
	if err != nil {
		t.Fatalf("NewTextArea: %v", err)
	}
	return root, ta
}

func typeText(c Control, text string) {
	for _, ch := range text {
		c.OnKeyEvent(input.KeyNone, ch)
	}
}

func TestTextAreaEditing(t *testing.T) {
	_, ta := newTestTextArea(t, "hello\nworld", TextAreaNone)
	if ta.LinesCount() != 2 {
		t.Fatalf("LinesCount() = %d", ta.LinesCount())
	}
	ta.OnKeyEvent(input.KeyEnd, 0)
	typeText(ta, "!")
	ta.OnKeyEvent(input.KeyEnter, 0)
	typeText(ta, "x")
	if got := ta.Text(); got != "hello!\nx\nworld" {
		t.Errorf("Text() = %q", got)
	}
	if l, c := ta.CursorPosition(); l != 1 || c != 1 {
		t.Errorf("cursor = %d,%d, want 1,1", l, c)
	}
	ta.OnKeyEvent(input.KeyBackspace, 0)
	ta.OnKeyEvent(input.KeyBackspace, 0)
	if got := ta.Text(); got != "hello!\nworld" {
		t.Errorf("after Backspace Text() = %q", got)
	}
	ta.OnKeyEvent(input.KeyDelete, 0)
	if got := ta.Text(); got != "hello!world" {
		t.Errorf("after Delete Text() = %q", got)
	}
	ta.OnKeyEvent(input.KeyHome, 0)
	ta.OnKeyEvent(input.KeyTab, 0)
	if got := ta.Text(); got != "    hello!world" {
		t.Errorf("after Tab Text() = %q", got)
	}
	if !ta.State().Modified {
		t.Error("Modified not set")
	}
}

func TestTextAreaVerticalMoveKeepsColumn(t *testing.T) {
	_, ta := newTestTextArea(t, "abcdef\nab\nabcdef", TextAreaNone)
	ta.MoveTo(0, 5)
	ta.OnKeyEvent(input.KeyDown, 0)
	if l, c := ta.CursorPosition(); l != 1 || c != 2 {
		t.Errorf("cursor = %d,%d, want 1,2", l, c)
	}
	// the wanted column is remembered across the short line
	ta.OnKeyEvent(input.KeyDown, 0)
	if l, c := ta.CursorPosition(); l != 2 || c != 5 {
		t.Errorf("cursor = %d,%d, want 2,5", l, c)
	}
	ta.OnKeyEvent(input.KeyHome|input.KeyCtrl, 0)
	if l, c := ta.CursorPosition(); l != 0 || c != 0 {
		t.Errorf("Ctrl+Home cursor = %d,%d", l, c)
	}
	ta.OnKeyEvent(input.KeyEnd|input.KeyCtrl, 0)
	if l, c := ta.CursorPosition(); l != 2 || c != 6 {
		t.Errorf("Ctrl+End cursor = %d,%d", l, c)
	}
	ta.MoveTo(99, 99)
	if l, c := ta.CursorPosition(); l != 2 || c != 6 {
		t.Errorf("MoveTo clamp = %d,%d", l, c)
	}
}

func TestTextAreaSelectionAndClipboard(t *testing.T) {
	root, ta := newTestTextArea(t, "one\ntwo\nthree", TextAreaNone)
	ta.MoveTo(0, 1)
	ta.OnKeyEvent(input.KeyDown|input.KeyShift, 0)
	ta.OnKeyEvent(input.KeyRight|input.KeyShift, 0)
	if got := ta.SelectedText(); got != "ne\ntw" {
		t.Fatalf("SelectedText() = %q", got)
	}
	ta.OnKeyEvent(input.KeyX|input.KeyCtrl, 0)
	if root.board.GetText() != "ne\ntw" {
		t.Errorf("clipboard = %q", root.board.GetText())
	}
	if got := ta.Text(); got != "oo\nthree" {
		t.Errorf("after cut Text() = %q", got)
	}
	ta.OnKeyEvent(input.KeyV|input.KeyCtrl, 0)
	if got := ta.Text(); got != "one\ntwo\nthree" {
		t.Errorf("after paste Text() = %q", got)
	}
	if l, c := ta.CursorPosition(); l != 1 || c != 2 {
		t.Errorf("cursor after paste = %d,%d", l, c)
	}
	ta.OnKeyEvent(input.KeyA|input.KeyCtrl, 0)
	ta.OnKeyEvent(input.KeyC|input.KeyCtrl, 0)
	if root.board.GetText() != "one\ntwo\nthree" {
		t.Errorf("select all copy = %q", root.board.GetText())
	}
}

func TestTextAreaReadOnly(t *testing.T) {
	root, ta := newTestTextArea(t, "fixed", TextAreaReadOnly)
	if ta.OnKeyEvent(input.KeyNone, 'x') {
		t.Error("typing consumed in a read-only area")
	}
	if ta.InsertText("y") {
		t.Error("InsertText succeeded in a read-only area")
	}
	ta.OnKeyEvent(input.KeyA|input.KeyCtrl, 0)
	ta.OnKeyEvent(input.KeyC|input.KeyCtrl, 0)
	if root.board.GetText() != "fixed" {
		t.Errorf("copy from read-only area = %q", root.board.GetText())
	}
	ta.SetReadOnly(false)
	if !ta.InsertText("x") || ta.Text() != "x" {
		t.Errorf("after SetReadOnly(false) Text() = %q", ta.Text())
	}
}

func TestTextAreaKeepsCursorVisible(t *testing.T) {
	_, ta := newTestTextArea(t, "", TextAreaNone)
	for i := 0; i < 10; i++ {
		ta.OnKeyEvent(input.KeyEnter, 0)
	}
	// six rows visible, cursor on line 10
	if got := ta.FirstVisible().Line; got != 5 {
		t.Errorf("first visible line = %d, want 5", got)
	}
	typeText(ta, "0123456789012345678901234567890123")
	if got := ta.FirstVisible().Col; got == 0 {
		t.Error("view did not scroll right")
	}
}

func TestTextAreaLineNumbers(t *testing.T) {
	root, _ := newTestTextArea(t, "a\nb", TextAreaShowLineNumbers)
	buf := root.paint()
	if row := rowText(buf, 1); row[:3] != "2 b" {
		t.Errorf("row 1 = %q", row[:3])
	}
}
