package controls

import (
	"strings"
	"testing"

	"github.com/dshills/cellkit/internal/input"
)

func TestSplitterVertical(t *testing.T) {
	root := newTestRoot(80, 10)
	sp, err := NewSplitter(root, "x:0,y:0,w:41,h:10", SplitterVertical)
	if err != nil {
		t.Fatalf("NewSplitter: %v", err)
	}
	moves := 0
	root.ctx.Handlers().OnEvent = func(ev Event) bool {
		if ev.Type == EventSplitterPositionChanged {
			moves++
		}
		return true
	}
	if sp.Position() != 20 || sp.SecondPanelSize() != 20 {
		t.Fatalf("initial position %d second %d, want 20/20", sp.Position(), sp.SecondPanelSize())
	}
	btn, err := NewButton(sp.SecondPanel(), "x:0,y:0,w:5,h:1", "Go", 1)
	if err != nil {
		t.Fatalf("NewButton: %v", err)
	}

	sp.SetPosition(10)
	first, second := sp.FirstPanel().Base(), sp.SecondPanel().Base()
	if first.Width != 10 || second.X != 11 || second.Width != 30 || second.Height != 10 {
		t.Errorf("panels: first w=%d, second x=%d %dx%d", first.Width, second.X, second.Width, second.Height)
	}
	if got := btn.Base().ScreenClip.ScreenX; got != 11 {
		t.Errorf("button moved to screen x %d, want 11", got)
	}

	sp.OnKeyEvent(input.KeyRight|input.KeyCtrl, 0)
	if sp.Position() != 11 {
		t.Errorf("Ctrl+Right position = %d, want 11", sp.Position())
	}
	if sp.OnKeyEvent(input.KeyDown|input.KeyCtrl, 0) {
		t.Errorf("vertical splitter used Ctrl+Down")
	}

	sp.OnMousePressed(11, 5, input.MouseLeft)
	sp.OnMouseDrag(15, 5, input.MouseLeft)
	sp.OnMouseReleased(15, 5, input.MouseLeft)
	if sp.Position() != 15 {
		t.Errorf("drag position = %d, want 15", sp.Position())
	}
	if sp.OnMouseDrag(18, 5, input.MouseLeft) {
		t.Errorf("drag after release moved the bar")
	}

	sp.OnMousePressed(15, 0, input.MouseLeft)
	if sp.Position() != 0 || first.Width != 0 {
		t.Errorf("first button: position %d first width %d", sp.Position(), first.Width)
	}
	sp.OnMousePressed(0, 1, input.MouseLeft)
	if sp.SecondPanelSize() != 0 || sp.Position() != 40 {
		t.Errorf("second button: second %d position %d", sp.SecondPanelSize(), sp.Position())
	}
	if moves != 5 {
		t.Errorf("position events = %d, want 5", moves)
	}

	sp.SetSecondPanelSize(10)
	sp.Base().Resize(61, 10)
	if sp.SecondPanelSize() != 10 || sp.Position() != 50 {
		t.Errorf("after resize second %d position %d, want 10/50", sp.SecondPanelSize(), sp.Position())
	}
	sp.SetSecondPanelSize(500)
	if sp.SecondPanelSize() != 60 {
		t.Errorf("oversized second panel = %d, want 60", sp.SecondPanelSize())
	}
}

func TestSplitterHorizontal(t *testing.T) {
	root := newTestRoot(40, 20)
	sp, err := NewSplitter(root, "x:0,y:0,w:40,h:11", SplitterHorizontal)
	if err != nil {
		t.Fatalf("NewSplitter: %v", err)
	}
	if sp.Position() != 5 {
		t.Fatalf("initial position %d, want 5", sp.Position())
	}
	sp.OnKeyEvent(input.KeyDown|input.KeyCtrl, 0)
	if sp.Position() != 6 {
		t.Errorf("Ctrl+Down position = %d, want 6", sp.Position())
	}
	second := sp.SecondPanel().Base()
	if second.Y != 7 || second.Height != 4 || second.Width != 40 {
		t.Errorf("second panel y=%d %dx%d", second.Y, second.Width, second.Height)
	}
	buf := root.paint()
	if c := buf.GetCell(5, 6); c.Rune != '─' {
		t.Errorf("bar cell = %q", c.Rune)
	}
}

func TestTabPages(t *testing.T) {
	root := newTestRoot(40, 10)
	tab, err := NewTab(root, "x:0,y:0,w:40,h:10", TabsOnTop)
	if err != nil {
		t.Fatalf("NewTab: %v", err)
	}
	changes := 0
	root.ctx.Handlers().OnEvent = func(ev Event) bool {
		if ev.Type == EventTabChanged {
			changes++
		}
		return true
	}
	var pages []*TabPage
	for _, caption := range []string{"&General", "&Advanced", "&Colors"} {
		p, err := NewTabPage(tab, caption)
		if err != nil {
			t.Fatalf("NewTabPage: %v", err)
		}
		pages = append(pages, p)
	}
	if tab.TabsCount() != 3 || tab.CurrentTab() != 0 {
		t.Fatalf("count %d current %d", tab.TabsCount(), tab.CurrentTab())
	}
	if !pages[0].Base().IsVisible() || pages[1].Base().IsVisible() {
		t.Errorf("only the first page should be visible")
	}
	pc := pages[0].Base()
	if pc.Width != 40 || pc.Height != 9 || pc.ScreenClip.ScreenY != 1 {
		t.Errorf("page %dx%d at screen y %d", pc.Width, pc.Height, pc.ScreenClip.ScreenY)
	}

	steps := []struct {
		key  input.Key
		want int
	}{
		{input.KeyTab | input.KeyCtrl, 1},
		{input.KeyTab | input.KeyCtrl | input.KeyShift, 0},
		{input.KeyTab | input.KeyCtrl | input.KeyShift, 2},
		{input.KeyA | input.KeyAlt, 1},
	}
	for _, s := range steps {
		tab.OnKeyEvent(s.key, 0)
		if tab.CurrentTab() != s.want {
			t.Errorf("after %v current = %d, want %d", s.key, tab.CurrentTab(), s.want)
		}
	}

	if !tab.OnMousePressed(27, 0, input.MouseLeft) || tab.CurrentTab() != 2 {
		t.Errorf("header click selected %d, want 2", tab.CurrentTab())
	}
	if tab.OnMousePressed(12, 0, input.MouseLeft) {
		t.Errorf("click between headers was used")
	}
	// the first page raised one when it became current
	if changes != 6 {
		t.Errorf("tab events = %d, want 6", changes)
	}
	if tab.SetCurrentTab(3) {
		t.Errorf("SetCurrentTab(3) succeeded")
	}

	buf := root.paint()
	if got := rowText(buf, 0); !strings.Contains(got, "General") {
		t.Errorf("header row = %q", got)
	}
}

func TestTabFocusFollowsPage(t *testing.T) {
	root := newTestRoot(40, 10)
	tab, _ := NewTab(root, "x:0,y:0,w:40,h:10", TabsOnTop)
	p0, _ := NewTabPage(tab, "One")
	p1, _ := NewTabPage(tab, "Two")
	b0, _ := NewButton(p0, "x:0,y:0,w:6,h:1", "A", 1)
	b1, _ := NewButton(p1, "x:0,y:0,w:6,h:1", "B", 2)
	Activate(root, true)

	if b1.Base().SetFocus() {
		t.Errorf("focused a button on a hidden page")
	}
	b0.Base().SetFocus()
	tab.SetCurrentTab(1)
	if b0.Base().HasFocus() {
		t.Errorf("button on the hidden page kept the focus")
	}
	b1.Base().SetFocus()
	if !b1.Base().HasFocus() {
		t.Errorf("button on the visible page not focused")
	}
}

func TestTabListMode(t *testing.T) {
	root := newTestRoot(40, 10)
	tab, _ := NewTab(root, "x:0,y:0,w:40,h:10", TabsAsList)
	for _, c := range []string{"One", "Two", "Three"} {
		NewTabPage(tab, c)
	}
	m := tab.Base().Margins
	if m.Top != 1 || m.Bottom != 2 {
		t.Errorf("margins %+v, want top 1 bottom 2", m)
	}
	st := tab.State()
	if st.headerAt(0, 8) != 1 || st.headerAt(0, 9) != 2 || st.headerAt(0, 4) != -1 {
		t.Errorf("list headers at 8/9/4 = %d/%d/%d", st.headerAt(0, 8), st.headerAt(0, 9), st.headerAt(0, 4))
	}
	tab.OnMousePressed(3, 8, input.MouseLeft)
	m = tab.Base().Margins
	if tab.CurrentTab() != 1 || m.Top != 2 || m.Bottom != 1 {
		t.Errorf("after click current %d margins %+v", tab.CurrentTab(), m)
	}
	if p, _ := tab.Page(1); p.Base().Height != 7 {
		t.Errorf("page height = %d, want 7", p.Base().Height)
	}
}

func TestTabOnLeft(t *testing.T) {
	root := newTestRoot(40, 10)
	tab, _ := NewTab(root, "x:0,y:0,w:40,h:10", TabsOnLeft)
	tab.SetTabWidth(8)
	p, _ := NewTabPage(tab, "One")
	NewTabPage(tab, "Two")
	if p.Base().Width != 31 {
		t.Errorf("page width = %d, want 31", p.Base().Width)
	}
	tab.OnMousePressed(2, 1, input.MouseLeft)
	if tab.CurrentTab() != 1 {
		t.Errorf("left header click selected %d", tab.CurrentTab())
	}
}
