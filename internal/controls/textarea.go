package controls

import (
	"strconv"
	"strings"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/viewport"
)

// TextAreaFlags configure a TextArea.
type TextAreaFlags uint8

// TextArea flags.
const (
	TextAreaNone            TextAreaFlags = 0
	TextAreaShowLineNumbers TextAreaFlags = 1 << (iota - 1)
	TextAreaReadOnly
	TextAreaScrollbars
)

const textAreaTabSize = 4

// Position is a location in a TextArea: a line and a rune column.
type Position struct {
	Line, Col int
}

func (p Position) before(o Position) bool {
	return p.Line < o.Line || (p.Line == o.Line && p.Col < o.Col)
}

// TextAreaContext is the state of a TextArea.
type TextAreaContext struct {
	Context

	lines  [][]rune
	cursor Position
	// anchor is the fixed end of the selection; valid when selecting
	anchor    Position
	selecting bool
	// column the cursor tries to keep on vertical moves
	wantCol int

	flags    TextAreaFlags
	view     *viewport.View
	Modified bool
}

// TextArea is a multi-line editor.
type TextArea struct {
	base
	ctx *TextAreaContext
}

// NewTextArea creates a text area holding text.
func NewTextArea(parent Container, format, text string, flags TextAreaFlags) (*TextArea, error) {
	ta := &TextArea{ctx: &TextAreaContext{
		Context: Context{MinWidth: 5, MinHeight: 3},
		flags:   flags,
		view:    viewport.NewView(1, 1),
	}}
	ta.base.ctx = &ta.ctx.Context
	ta.ctx.setText(text)
	if err := ta.ctx.init(ta, parent, format, FlagEnabled|FlagVisible|FlagTabStop); err != nil {
		return nil, err
	}
	return ta, nil
}

// State returns the typed context.
func (ta *TextArea) State() *TextAreaContext { return ta.ctx }

func (c *TextAreaContext) setText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	c.lines = make([][]rune, len(parts))
	for i, p := range parts {
		c.lines[i] = []rune(p)
	}
	c.cursor = Position{}
	c.selecting = false
	c.wantCol = 0
	c.updateView()
}

// SetText replaces the content and moves the cursor to the start.
func (ta *TextArea) SetText(text string) bool {
	if ta.ctx.dead {
		return false
	}
	ta.ctx.setText(text)
	ta.ctx.Modified = false
	return true
}

// Text returns the content with lines joined by "\n".
func (ta *TextArea) Text() string {
	var b strings.Builder
	for i, ln := range ta.ctx.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(ln))
	}
	return b.String()
}

// LinesCount returns the number of lines.
func (ta *TextArea) LinesCount() int { return len(ta.ctx.lines) }

// Line returns one line.
func (ta *TextArea) Line(i int) (string, bool) {
	if i < 0 || i >= len(ta.ctx.lines) {
		return "", false
	}
	return string(ta.ctx.lines[i]), true
}

// SetReadOnly blocks editing.
func (ta *TextArea) SetReadOnly(on bool) {
	if on {
		ta.ctx.flags |= TextAreaReadOnly
	} else {
		ta.ctx.flags &^= TextAreaReadOnly
	}
}

// IsReadOnly reports whether editing is blocked.
func (ta *TextArea) IsReadOnly() bool { return ta.ctx.flags&TextAreaReadOnly != 0 }

// CursorPosition returns the cursor line and column.
func (ta *TextArea) CursorPosition() (line, col int) {
	return ta.ctx.cursor.Line, ta.ctx.cursor.Col
}

// FirstVisible returns the top-left content position on screen.
func (ta *TextArea) FirstVisible() Position {
	return Position{Line: ta.ctx.view.Rows.Top(), Col: ta.ctx.view.Cols.Top()}
}

// MoveTo places the cursor, clamped to the text, and drops the
// selection.
func (ta *TextArea) MoveTo(line, col int) bool {
	c := ta.ctx
	if c.dead {
		return false
	}
	c.selecting = false
	c.moveTo(c.clamp(Position{line, col}), false)
	c.wantCol = c.cursor.Col
	return true
}

// Selection returns the ordered selected range.
func (ta *TextArea) Selection() (start, end Position, ok bool) {
	return ta.ctx.selection()
}

// SelectedText returns the selected text.
func (ta *TextArea) SelectedText() string {
	start, end, ok := ta.ctx.selection()
	if !ok {
		return ""
	}
	return ta.ctx.textRange(start, end)
}

// SelectAll selects everything.
func (ta *TextArea) SelectAll() {
	c := ta.ctx
	c.anchor = Position{}
	c.selecting = true
	last := len(c.lines) - 1
	c.moveTo(Position{last, len(c.lines[last])}, true)
}

// InsertText inserts text at the cursor, replacing the selection.
func (ta *TextArea) InsertText(text string) bool {
	c := ta.ctx
	if c.dead || c.flags&TextAreaReadOnly != 0 {
		return false
	}
	c.deleteSelection()
	c.insert(text)
	return true
}

func (c *TextAreaContext) clamp(p Position) Position {
	p.Line = min(max(p.Line, 0), len(c.lines)-1)
	p.Col = min(max(p.Col, 0), len(c.lines[p.Line]))
	return p
}

func (c *TextAreaContext) selection() (start, end Position, ok bool) {
	if !c.selecting || c.anchor == c.cursor {
		return Position{}, Position{}, false
	}
	if c.anchor.before(c.cursor) {
		return c.anchor, c.cursor, true
	}
	return c.cursor, c.anchor, true
}

func (c *TextAreaContext) textRange(start, end Position) string {
	if start.Line == end.Line {
		return string(c.lines[start.Line][start.Col:end.Col])
	}
	var b strings.Builder
	b.WriteString(string(c.lines[start.Line][start.Col:]))
	for i := start.Line + 1; i < end.Line; i++ {
		b.WriteByte('\n')
		b.WriteString(string(c.lines[i]))
	}
	b.WriteByte('\n')
	b.WriteString(string(c.lines[end.Line][:end.Col]))
	return b.String()
}

// moveTo places the cursor; extend keeps or starts a selection.
func (c *TextAreaContext) moveTo(p Position, extend bool) {
	if extend && !c.selecting {
		c.anchor = c.cursor
		c.selecting = true
	}
	if !extend {
		c.selecting = false
	}
	c.cursor = p
	c.updateView()
	c.view.Reveal(p.Line, p.Col)
}

func (c *TextAreaContext) deleteSelection() bool {
	start, end, ok := c.selection()
	if !ok {
		c.selecting = false
		return false
	}
	head := c.lines[start.Line][:start.Col]
	tail := c.lines[end.Line][end.Col:]
	ln := make([]rune, 0, len(head)+len(tail))
	ln = append(append(ln, head...), tail...)
	c.lines = append(c.lines[:start.Line], append([][]rune{ln}, c.lines[end.Line+1:]...)...)
	c.selecting = false
	c.Modified = true
	c.moveTo(start, false)
	c.wantCol = start.Col
	return true
}

func (c *TextAreaContext) insert(text string) {
	if text == "" {
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	cur := c.cursor
	tail := append([]rune(nil), c.lines[cur.Line][cur.Col:]...)
	head := c.lines[cur.Line][:cur.Col]

	first := append(append([]rune(nil), head...), []rune(parts[0])...)
	if len(parts) == 1 {
		c.lines[cur.Line] = append(first, tail...)
		c.Modified = true
		c.moveTo(Position{cur.Line, len(first)}, false)
		c.wantCol = c.cursor.Col
		return
	}
	added := make([][]rune, 0, len(parts))
	added = append(added, first)
	for _, p := range parts[1 : len(parts)-1] {
		added = append(added, []rune(p))
	}
	last := []rune(parts[len(parts)-1])
	end := Position{cur.Line + len(parts) - 1, len(last)}
	added = append(added, append(last, tail...))
	c.lines = append(c.lines[:cur.Line], append(added, c.lines[cur.Line+1:]...)...)
	c.Modified = true
	c.moveTo(end, false)
	c.wantCol = end.Col
}

func (c *TextAreaContext) changed() {
	c.RaiseEvent(EventTextChanged, c.ID)
}

// gutter returns the width of the line number column.
func (c *TextAreaContext) gutter() int {
	if c.flags&TextAreaShowLineNumbers == 0 {
		return 0
	}
	return len(strconv.Itoa(len(c.lines))) + 1
}

// textSize returns the size of the editing area.
func (c *TextAreaContext) textSize() (int, int) {
	w, h := c.Width-c.gutter(), c.Height
	if c.flags&TextAreaScrollbars != 0 {
		w--
		h--
	}
	return max(w, 1), max(h, 1)
}

func (c *TextAreaContext) updateView() {
	w, h := c.textSize()
	c.view.Resize(w, h)
	c.view.Rows.SetCount(len(c.lines))
	longest := 0
	for _, ln := range c.lines {
		longest = max(longest, len(ln))
	}
	// one extra column for the cursor past the end of a line
	c.view.Cols.SetCount(longest + 1)
}

// OnAfterResize implements Control.
func (ta *TextArea) OnAfterResize(int, int) {
	c := ta.ctx
	c.updateView()
	c.view.Reveal(c.cursor.Line, c.cursor.Col)
}

func (c *TextAreaContext) copy() bool {
	text := ""
	if start, end, ok := c.selection(); ok {
		text = c.textRange(start, end)
	}
	if text == "" {
		return false
	}
	if !c.board().SetText(text) {
		warn("textarea", "copy", "failed to copy %d characters to the clipboard", len(text))
		return false
	}
	return true
}

// OnKeyEvent implements Control.
func (ta *TextArea) OnKeyEvent(k input.Key, ch rune) bool {
	c := ta.ctx
	extend := k.Has(input.KeyShift)
	cur := c.cursor
	switch k &^ input.KeyShift {
	case input.KeyLeft:
		switch {
		case cur.Col > 0:
			cur.Col--
		case cur.Line > 0:
			cur.Line--
			cur.Col = len(c.lines[cur.Line])
		}
		c.moveTo(cur, extend)
		c.wantCol = cur.Col
		return true
	case input.KeyRight:
		switch {
		case cur.Col < len(c.lines[cur.Line]):
			cur.Col++
		case cur.Line < len(c.lines)-1:
			cur.Line++
			cur.Col = 0
		}
		c.moveTo(cur, extend)
		c.wantCol = cur.Col
		return true
	case input.KeyUp:
		c.moveTo(c.clamp(Position{cur.Line - 1, c.wantCol}), extend)
		return true
	case input.KeyDown:
		c.moveTo(c.clamp(Position{cur.Line + 1, c.wantCol}), extend)
		return true
	case input.KeyPageUp:
		c.moveTo(c.clamp(Position{cur.Line - c.view.Rows.Page(), c.wantCol}), extend)
		return true
	case input.KeyPageDown:
		c.moveTo(c.clamp(Position{cur.Line + c.view.Rows.Page(), c.wantCol}), extend)
		return true
	case input.KeyHome:
		c.moveTo(Position{cur.Line, 0}, extend)
		c.wantCol = 0
		return true
	case input.KeyEnd:
		c.moveTo(Position{cur.Line, len(c.lines[cur.Line])}, extend)
		c.wantCol = c.cursor.Col
		return true
	case input.KeyHome | input.KeyCtrl:
		c.moveTo(Position{}, extend)
		c.wantCol = 0
		return true
	case input.KeyEnd | input.KeyCtrl:
		last := len(c.lines) - 1
		c.moveTo(Position{last, len(c.lines[last])}, extend)
		c.wantCol = c.cursor.Col
		return true
	}

	switch k {
	case input.KeyA | input.KeyCtrl:
		ta.SelectAll()
		return true
	case input.KeyC | input.KeyCtrl, input.KeyInsert | input.KeyCtrl:
		c.copy()
		return true
	}
	if c.flags&TextAreaReadOnly != 0 {
		return false
	}
	switch k {
	case input.KeyX | input.KeyCtrl, input.KeyDelete | input.KeyShift:
		if c.copy() {
			c.deleteSelection()
			c.changed()
		}
		return true
	case input.KeyV | input.KeyCtrl, input.KeyInsert | input.KeyShift:
		text := c.board().GetText()
		if text == "" {
			return true
		}
		c.deleteSelection()
		c.insert(text)
		c.changed()
		return true
	case input.KeyBackspace:
		if !c.deleteSelection() {
			c.backspace()
		}
		c.changed()
		return true
	case input.KeyDelete:
		if !c.deleteSelection() {
			c.deleteForward()
		}
		c.changed()
		return true
	case input.KeyEnter:
		c.deleteSelection()
		c.insert("\n")
		c.changed()
		return true
	case input.KeyTab:
		c.deleteSelection()
		c.insert(strings.Repeat(" ", textAreaTabSize-c.cursor.Col%textAreaTabSize))
		c.changed()
		return true
	}
	if ch >= ' ' && k.Modifiers()&^input.KeyShift == 0 {
		c.deleteSelection()
		c.insert(string(ch))
		c.changed()
		return true
	}
	return false
}

func (c *TextAreaContext) backspace() {
	cur := c.cursor
	switch {
	case cur.Col > 0:
		ln := c.lines[cur.Line]
		c.lines[cur.Line] = append(ln[:cur.Col-1], ln[cur.Col:]...)
		cur.Col--
	case cur.Line > 0:
		prev := c.lines[cur.Line-1]
		cur = Position{cur.Line - 1, len(prev)}
		c.lines[cur.Line] = append(prev, c.lines[cur.Line+1]...)
		c.lines = append(c.lines[:cur.Line+1], c.lines[cur.Line+2:]...)
	default:
		return
	}
	c.Modified = true
	c.moveTo(cur, false)
	c.wantCol = cur.Col
}

func (c *TextAreaContext) deleteForward() {
	cur := c.cursor
	ln := c.lines[cur.Line]
	switch {
	case cur.Col < len(ln):
		c.lines[cur.Line] = append(ln[:cur.Col], ln[cur.Col+1:]...)
	case cur.Line < len(c.lines)-1:
		c.lines[cur.Line] = append(ln, c.lines[cur.Line+1]...)
		c.lines = append(c.lines[:cur.Line+1], c.lines[cur.Line+2:]...)
	default:
		return
	}
	c.Modified = true
	c.updateView()
}

// pointToPosition converts control coordinates to a text position.
func (c *TextAreaContext) pointToPosition(x, y int) Position {
	line, col := c.view.FromScreen(x-c.gutter(), y)
	return c.clamp(Position{line, col})
}

// OnMousePressed places the cursor.
func (ta *TextArea) OnMousePressed(x, y int, button input.MouseButton) bool {
	if !button.Has(input.MouseLeft) {
		return false
	}
	c := ta.ctx
	p := c.pointToPosition(x, y)
	c.moveTo(p, false)
	c.wantCol = p.Col
	return true
}

// OnMouseDrag extends the selection.
func (ta *TextArea) OnMouseDrag(x, y int, button input.MouseButton) bool {
	if !button.Has(input.MouseLeft) {
		return false
	}
	c := ta.ctx
	p := c.pointToPosition(x, y)
	c.moveTo(p, true)
	c.wantCol = p.Col
	return true
}

// OnMouseWheel scrolls without moving the cursor.
func (ta *TextArea) OnMouseWheel(_, _ int, dir input.WheelDirection) bool {
	v := ta.ctx.view
	switch dir {
	case input.WheelUp:
		return v.Rows.ScrollBy(-1)
	case input.WheelDown:
		return v.Rows.ScrollBy(1)
	case input.WheelLeft:
		return v.Cols.ScrollBy(-1)
	case input.WheelRight:
		return v.Cols.ScrollBy(1)
	}
	return false
}

// Paint implements Control.
func (ta *TextArea) Paint(r *renderer.Renderer) {
	c := ta.ctx
	if c.Theme == nil {
		return
	}
	t := c.Theme
	text := t.Editor.Get(c.IsEnabled(), c.HasFocus(), c.IsMouseOver())
	r.Clear(' ', text)
	g := c.gutter()
	w, h := c.textSize()
	top, left := c.view.Rows.Top(), c.view.Cols.Top()
	start, end, selected := c.selection()

	for row := 0; row < h; row++ {
		line := top + row
		if line >= len(c.lines) {
			break
		}
		if g > 0 {
			marker := t.LineMarker.Get(c.IsEnabled(), c.HasFocus(), false)
			if line == c.cursor.Line && c.HasFocus() {
				marker = t.Selection.LineMarker
			}
			r.FillHorizontalLineSize(0, row, g, ' ', marker)
			r.WriteText(strconv.Itoa(line+1), renderer.WriteTextParams{
				Flags: renderer.SingleLine | renderer.ClipToWidth,
				Y:     row,
				Width: g - 1,
				Color: marker,
				Align: renderer.AlignRight,
			})
		}
		ln := c.lines[line]
		for col := left; col < len(ln) && col-left < w; col++ {
			colors := text
			if p := (Position{line, col}); selected && !p.before(start) && p.before(end) {
				colors = t.Selection.Editor
			}
			r.WriteCharacter(g+col-left, row, ln[col], colors)
		}
	}

	if c.flags&TextAreaScrollbars != 0 {
		bar := t.ScrollBar.Bar.Get(c.IsEnabled(), c.HasFocus(), false)
		arrows := t.ScrollBar.Arrows.Get(c.IsEnabled(), c.HasFocus(), false)
		r.DrawVerticalScrollBar(c.Width-1, 0, h, uint64(c.cursor.Line), uint64(max(len(c.lines)-1, 0)), bar, arrows)
		r.DrawHorizontalScrollBar(g, c.Height-1, w, uint64(left), uint64(c.view.Cols.MaxTop()), bar, arrows)
	}

	if c.HasFocus() {
		if x, y, ok := c.view.ToScreen(c.cursor.Line, c.cursor.Col); ok {
			r.SetCursor(g+x, y)
		}
	}
}
