package menu

import (
	"strings"
	"testing"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/backend"
	"github.com/dshills/cellkit/internal/theme"
)

type recorder struct {
	commands []int
}

func (r *recorder) OnCommand(id int) { r.commands = append(r.commands, id) }

func newTestMenu(t *testing.T) (*Menu, *recorder) {
	t.Helper()
	cfg := theme.Dark()
	m := New(&cfg)
	rec := &recorder{}
	m.SetOwner(rec)
	return m, rec
}

func TestItemHotKey(t *testing.T) {
	m, _ := newTestMenu(t)
	h := m.AddCommandItem("&Save", 1, input.KeyS.With(input.KeyCtrl))
	it, ok := m.Item(h)
	if !ok {
		t.Fatal("Item returned false")
	}
	if string(it.Text) != "Save" {
		t.Errorf("Text = %q, want %q", string(it.Text), "Save")
	}
	if it.HotKey != input.KeyS || it.HotKeyOffset != 0 {
		t.Errorf("HotKey = %v at %d, want S at 0", it.HotKey, it.HotKeyOffset)
	}
}

func TestNavigationSkipsSeparatorsAndDisabled(t *testing.T) {
	m, _ := newTestMenu(t)
	m.AddCommandItem("One", 1, input.KeyNone)
	m.AddSeparator()
	dis := m.AddCommandItem("Two", 2, input.KeyNone)
	three := m.AddCommandItem("Three", 3, input.KeyNone)
	m.SetEnable(dis, false)
	m.Show(0, 0, 80, 25)

	if got := m.CurrentItem(); got != 0 {
		t.Fatalf("initial current = %d, want 0", got)
	}
	m.OnKeyEvent(input.KeyDown)
	if got := m.CurrentItem(); got != three {
		t.Errorf("after Down current = %d, want %d", got, three)
	}
	m.OnKeyEvent(input.KeyDown)
	if got := m.CurrentItem(); got != 0 {
		t.Errorf("Down wraps to %d, want 0", got)
	}
	m.OnKeyEvent(input.KeyUp)
	if got := m.CurrentItem(); got != three {
		t.Errorf("Up wraps to %d, want %d", got, three)
	}
	m.OnKeyEvent(input.KeyHome)
	if got := m.CurrentItem(); got != 0 {
		t.Errorf("Home = %d, want 0", got)
	}
}

func TestRadioGroup(t *testing.T) {
	m, rec := newTestMenu(t)
	a := m.AddRadioItem("A", 1, true, input.KeyNone)
	b := m.AddRadioItem("B", 2, false, input.KeyNone)
	m.AddSeparator()
	c := m.AddRadioItem("C", 3, true, input.KeyNone)

	if !m.IsChecked(a) || m.IsChecked(b) {
		t.Fatal("initial radio state wrong")
	}
	if !m.SetChecked(b, true) {
		t.Fatal("SetChecked(b) returned false")
	}
	if m.IsChecked(a) || !m.IsChecked(b) {
		t.Error("checking b should uncheck a")
	}
	if !m.IsChecked(c) {
		t.Error("c is in another group and must stay checked")
	}
	if m.SetChecked(b, false) {
		t.Error("a radio cannot be unchecked directly")
	}

	m.Show(0, 0, 80, 25)
	m.SetCurrentItem(a)
	m.OnKeyEvent(input.KeyEnter)
	if !m.IsChecked(a) || m.IsChecked(b) {
		t.Error("activating a should check it")
	}
	if len(rec.commands) != 1 || rec.commands[0] != 1 {
		t.Errorf("commands = %v, want [1]", rec.commands)
	}
	if m.IsOpen() {
		t.Error("menu should close after a command")
	}
}

func TestCheckItemToggles(t *testing.T) {
	m, _ := newTestMenu(t)
	h := m.AddCheckItem("Wrap", 7, false, input.KeyNone)
	m.Show(0, 0, 80, 25)
	m.OnKeyEvent(input.KeySpace)
	if !m.IsChecked(h) {
		t.Error("Space should toggle the check item on")
	}
	line := m.AddSeparator()
	if m.SetChecked(line, true) {
		t.Error("a separator cannot be checked")
	}
}

func TestMaxItems(t *testing.T) {
	m, _ := newTestMenu(t)
	for i := 0; i < MaxItems; i++ {
		if h := m.AddCommandItem("x", i, input.KeyNone); h == InvalidItemHandle {
			t.Fatalf("item %d rejected", i)
		}
	}
	if h := m.AddCommandItem("overflow", 0, input.KeyNone); h != InvalidItemHandle {
		t.Errorf("item past the limit = %d, want InvalidItemHandle", h)
	}
	if m.ItemsCount() != MaxItems {
		t.Errorf("ItemsCount = %d, want %d", m.ItemsCount(), MaxItems)
	}
}

func TestInvalidHandle(t *testing.T) {
	m, _ := newTestMenu(t)
	if m.SetEnable(3, false) {
		t.Error("SetEnable on a missing item returned true")
	}
	if _, ok := m.SubMenu(InvalidItemHandle); ok {
		t.Error("SubMenu(InvalidItemHandle) returned ok")
	}
}

func TestSubMenuOpenClose(t *testing.T) {
	m, rec := newTestMenu(t)
	m.AddCommandItem("Open", 1, input.KeyNone)
	h := m.AddSubMenu("&Recent")
	sub, ok := m.SubMenu(h)
	if !ok {
		t.Fatal("SubMenu returned false")
	}
	sub.AddCommandItem("first.txt", 10, input.KeyNone)
	sub.AddCommandItem("second.txt", 11, input.KeyNone)

	m.Show(0, 0, 80, 25)
	m.OnKeyEvent(input.KeyDown)
	m.OnKeyEvent(input.KeyRight)
	if m.OpenSubMenu() != sub || !sub.IsOpen() {
		t.Fatal("Right should open the submenu")
	}
	if got, want := sub.Bounds().X, m.Bounds().X+m.Bounds().Width; got != want {
		t.Errorf("submenu x = %d, want %d", got, want)
	}
	if m.Innermost() != sub {
		t.Error("Innermost should be the submenu")
	}

	m.OnKeyEvent(input.KeyLeft)
	if sub.IsOpen() || m.OpenSubMenu() != nil {
		t.Error("Left should close the submenu")
	}
	if !m.IsOpen() {
		t.Error("Left must not close the root menu")
	}

	// hot key opens it again; closing the root closes the child too
	m.OnKeyEvent(input.KeyR)
	if !sub.IsOpen() {
		t.Fatal("hot key R should open the submenu")
	}
	m.Close()
	if sub.IsOpen() {
		t.Error("closing the parent should close the submenu")
	}

	m.Show(0, 0, 80, 25)
	m.OnKeyEvent(input.KeyR)
	m.OnKeyEvent(input.KeyDown)
	m.OnKeyEvent(input.KeyEnter)
	if len(rec.commands) != 1 || rec.commands[0] != 11 {
		t.Errorf("commands = %v, want [11]", rec.commands)
	}
	if m.IsOpen() || sub.IsOpen() {
		t.Error("a command closes the whole chain")
	}
}

func TestEscapeClosesRoot(t *testing.T) {
	m, rec := newTestMenu(t)
	m.AddCommandItem("One", 1, input.KeyNone)
	m.Show(5, 5, 80, 25)
	if !m.OnKeyEvent(input.KeyEscape) {
		t.Error("Escape not consumed")
	}
	if m.IsOpen() {
		t.Error("Escape should close the root menu")
	}
	if len(rec.commands) != 0 {
		t.Errorf("commands = %v, want none", rec.commands)
	}
}

func TestProcessShortcutRecurses(t *testing.T) {
	m, rec := newTestMenu(t)
	h := m.AddSubMenu("Edit")
	sub, _ := m.SubMenu(h)
	ctrlV := input.KeyV.With(input.KeyCtrl)
	sub.AddCommandItem("Paste", 42, ctrlV)

	if !m.ProcessShortcut(ctrlV) {
		t.Fatal("ProcessShortcut returned false")
	}
	if len(rec.commands) != 1 || rec.commands[0] != 42 {
		t.Errorf("commands = %v, want [42]", rec.commands)
	}
	if m.ProcessShortcut(input.KeyX.With(input.KeyCtrl)) {
		t.Error("unknown shortcut should not be processed")
	}
}

func TestShowFlipsNearBottom(t *testing.T) {
	m, _ := newTestMenu(t)
	for i := 0; i < 3; i++ {
		m.AddCommandItem("item", i, input.KeyNone)
	}
	m.Show(10, 22, 80, 25)
	b := m.Bounds()
	if b.Height != 5 {
		t.Fatalf("height = %d, want 5", b.Height)
	}
	if b.Y != 18 {
		t.Errorf("y = %d, want 18", b.Y)
	}

	m.Show(78, 0, 80, 25)
	if b := m.Bounds(); b.X+b.Width > 80 {
		t.Errorf("menu overflows the right edge: %+v", b)
	}
}

func TestScrollingMenu(t *testing.T) {
	m, _ := newTestMenu(t)
	for i := 0; i < 20; i++ {
		m.AddCommandItem("item", i, input.KeyNone)
	}
	m.Show(0, 0, 80, 10)
	if got := m.VisibleItemsCount(); got != 8 {
		t.Fatalf("VisibleItemsCount = %d, want 8", got)
	}
	m.OnKeyEvent(input.KeyEnd)
	if got := m.FirstVisibleItem(); got != 12 {
		t.Errorf("FirstVisibleItem after End = %d, want 12", got)
	}
	if !m.OnMouseWheel(1, 1, input.WheelUp) {
		t.Error("wheel up should move the selection")
	}
	if got := m.CurrentItem(); got != 18 {
		t.Errorf("CurrentItem after wheel = %d, want 18", got)
	}
	m.OnKeyEvent(input.KeyHome)
	if got := m.FirstVisibleItem(); got != 0 {
		t.Errorf("FirstVisibleItem after Home = %d, want 0", got)
	}
}

func TestMouseActivation(t *testing.T) {
	m, rec := newTestMenu(t)
	m.AddCommandItem("One", 1, input.KeyNone)
	m.AddCommandItem("Two", 2, input.KeyNone)
	m.Show(2, 2, 80, 25)

	if !m.OnMouseMove(4, 4) {
		t.Error("moving to another item should repaint")
	}
	if got := m.CurrentItem(); got != 1 {
		t.Errorf("hovered item = %d, want 1", got)
	}
	if got := m.OnMousePressed(4, 4); got != PressActivate {
		t.Errorf("press = %v, want PressActivate", got)
	}
	if len(rec.commands) != 1 || rec.commands[0] != 2 {
		t.Errorf("commands = %v, want [2]", rec.commands)
	}

	m.Show(2, 2, 80, 25)
	m.OnMousePressed(50, 20)
	if m.IsOpen() {
		t.Error("a press outside should close the menu")
	}
}

func TestPaint(t *testing.T) {
	m, _ := newTestMenu(t)
	m.AddCommandItem("&Open", 1, input.KeyNone)
	m.AddSeparator()
	m.AddCheckItem("Wrap", 2, true, input.KeyNone)
	m.Show(0, 0, 30, 10)

	buf := backend.NewScreenBuffer(30, 10)
	r := renderer.New(buf)
	m.Paint(r)

	row := func(y int) string {
		var b strings.Builder
		for x := 0; x < m.Bounds().Width; x++ {
			b.WriteRune(buf.GetCell(x, y).Rune)
		}
		return b.String()
	}
	if got := row(0); !strings.HasPrefix(got, "┌") || !strings.HasSuffix(got, "┐") {
		t.Errorf("top border = %q", got)
	}
	if got := row(1); !strings.Contains(got, "Open") {
		t.Errorf("row 1 = %q, want it to contain Open", got)
	}
	if got := row(2); !strings.HasPrefix(got, "├─") {
		t.Errorf("separator row = %q", got)
	}
	if got := buf.GetCell(2, 3).Rune; got != renderer.CheckMark.Rune() {
		t.Errorf("check mark = %q", got)
	}
}

func TestBar(t *testing.T) {
	cfg := theme.Dark()
	rec := &recorder{}
	b := NewBar(&cfg, rec)
	file := b.AddMenu("&File")
	file.AddCommandItem("&New", 1, input.KeyN.With(input.KeyCtrl))
	edit := b.AddMenu("&Edit")
	edit.AddCommandItem("&Copy", 2, input.KeyNone)
	b.SetPosition(0, 0, 80, 80, 25)

	if b.OnKeyEvent(input.KeyE) {
		t.Error("a plain key must not open a menu")
	}
	if !b.OnKeyEvent(input.KeyE.With(input.KeyAlt)) || b.Opened() != edit {
		t.Fatal("Alt+E should open Edit")
	}
	if got := edit.Bounds(); got.Y != 1 {
		t.Errorf("drop-down y = %d, want 1", got.Y)
	}
	b.OnKeyEvent(input.KeyRight)
	if b.Opened() != file {
		t.Error("Right should wrap to File")
	}
	b.OnKeyEvent(input.KeyLeft)
	if b.Opened() != edit {
		t.Error("Left should wrap to Edit")
	}
	b.OnKeyEvent(input.KeyEnter)
	if b.IsOpen() {
		t.Error("running a command should close the bar")
	}
	if len(rec.commands) != 1 || rec.commands[0] != 2 {
		t.Errorf("commands = %v, want [2]", rec.commands)
	}

	if !b.ProcessShortcut(input.KeyN.With(input.KeyCtrl)) {
		t.Error("bar shortcut not processed")
	}

	if !b.OnMousePressed(2, 0) || b.Opened() != file {
		t.Error("clicking the File entry should open it")
	}
	b.OnKeyEvent(input.KeyEscape)
	if b.IsOpen() {
		t.Error("Escape should close the bar menu")
	}
}
