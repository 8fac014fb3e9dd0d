package main

import (
	"fmt"

	"github.com/dshills/cellkit/internal/app"
	"github.com/dshills/cellkit/internal/controls"
	"github.com/dshills/cellkit/internal/dialogs"
	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/core"
)

// Demo command IDs.
const (
	cmdAbout = 100 + iota
	cmdQuit
	cmdConfirm
	cmdWarn
)

// buildDemo adds the demo window with one tab page per control family.
func buildDemo(a *app.Application) error {
	w, err := controls.NewWindow("cellkit demo", "d:c,w:90%,h:90%", controls.WindowMenu|controls.WindowSizeable)
	if err != nil {
		return err
	}
	file := w.AddMenu("&File")
	file.AddCommandItem("&About", cmdAbout, input.KeyF1)
	file.AddSeparator()
	file.AddCommandItem("E&xit", cmdQuit, input.KeyX|input.KeyAlt)

	tab, err := controls.NewTab(w, "x:0,y:0,w:100%,h:100%", controls.TabsOnTop)
	if err != nil {
		return err
	}
	for _, page := range []struct {
		caption string
		build   func(*controls.TabPage) error
	}{
		{"&Grid", buildGridPage},
		{"&Tree", buildTreePage},
		{"&List", buildListPage},
		{"&Form", buildFormPage},
	} {
		p, err := controls.NewTabPage(tab, page.caption)
		if err != nil {
			return err
		}
		if err := page.build(p); err != nil {
			return fmt.Errorf("page %s: %w", page.caption, err)
		}
	}

	w.Base().Handlers().OnEvent = func(ev controls.Event) bool {
		switch ev.Type {
		case controls.EventWindowClose:
			if dialogs.ShowYesNoCancel(a, "Quit", "Close the demo and leave cellkit?") == dialogs.ResultYes {
				a.Close()
			}
			return true
		case controls.EventCommand:
			switch ev.ID {
			case cmdAbout:
				dialogs.ShowNotification(a, "About", fmt.Sprintf("cellkit %s: windows, grids, trees and lists for the terminal.", version))
			case cmdQuit:
				a.Close()
			case cmdConfirm:
				if dialogs.ShowOkCancel(a, "Confirm", "Apply the form values?") == dialogs.ResultOk {
					dialogs.ShowNotification(a, "Applied", "The form values were applied.")
				}
			case cmdWarn:
				dialogs.ShowWarning(a, "Warning", "This button only shows a warning.")
			default:
				return false
			}
			return true
		}
		return false
	}

	a.Desktop().Base().Handlers().OnKeyEvent = func(_ controls.Control, k input.Key, _ rune) bool {
		if k == input.KeyQ|input.KeyCtrl {
			a.Close()
			return true
		}
		return false
	}
	return a.AddWindow(w)
}

func buildGridPage(p *controls.TabPage) error {
	g, err := controls.NewGrid(p, "x:0,y:0,w:100%,h:100%", 5, 5, controls.GridNone)
	if err != nil {
		return err
	}
	g.SetHeaders([]string{"Mon", "Tue", "Wed", "Thu", "Fri"})
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if (row+col)%3 == 0 {
				g.UpdateCellAt(col, row, controls.CellBoolean, row%2 == 0, renderer.AlignCenter)
				continue
			}
			g.UpdateCellAt(col, row, controls.CellString, fmt.Sprintf("%c%d", 'A'+col, row+1), renderer.AlignCenter)
		}
	}
	return nil
}

func buildTreePage(p *controls.TabPage) error {
	tr, err := controls.NewTree(p, "x:0,y:0,w:100%,h:100%", controls.TreeNone, 2)
	if err != nil {
		return err
	}
	tr.AddColumn("Name", renderer.AlignLeft, 30)
	tr.AddColumn("Kind", renderer.AlignLeft, 12)
	layout := map[string][]string{
		"internal": {"app", "controls", "layout", "menu", "renderer", "theme"},
		"cmd":      {"cellkit"},
	}
	for _, root := range []string{"cmd", "internal"} {
		h := tr.AddItem(controls.InvalidItemHandle, []string{root, "dir"}, true)
		for _, child := range layout[root] {
			tr.AddItem(h, []string{child, "package"}, false)
		}
	}
	return nil
}

func buildListPage(p *controls.TabPage) error {
	lv, err := controls.NewListView(p, "x:0,y:0,w:100%,h:100%", controls.ListViewCheckBoxes)
	if err != nil {
		return err
	}
	lv.AddColumn("&Color", renderer.AlignLeft, 16)
	lv.AddColumn("&Index", renderer.AlignRight, 8)
	for c := core.Black; c <= core.White; c++ {
		lv.AddItem(c.String(), fmt.Sprint(int(c)))
	}
	return nil
}

func buildFormPage(p *controls.TabPage) error {
	steps := []func() error{
		func() error { _, err := controls.NewLabel(p, "x:1,y:1,w:12,h:1", "&Name"); return err },
		func() error { _, err := controls.NewTextField(p, "x:14,y:1,w:30,h:1", ""); return err },
		func() error { _, err := controls.NewLabel(p, "x:1,y:3,w:12,h:1", "&Size"); return err },
		func() error { _, err := controls.NewComboBox(p, "x:14,y:3,w:20", "Small", "Medium", "Large"); return err },
		func() error { _, err := controls.NewLabel(p, "x:1,y:5,w:12,h:1", "C&ount"); return err },
		func() error { _, err := controls.NewNumericSelector(p, "x:14,y:5,w:20", 0, 100, 10); return err },
		func() error { _, err := controls.NewLabel(p, "x:1,y:7,w:12,h:1", "Colo&r"); return err },
		func() error { _, err := controls.NewColorPicker(p, "x:14,y:7,w:20", core.Aqua); return err },
		func() error { _, err := controls.NewCheckBox(p, "x:14,y:9,w:30,h:1", "R&emember", 1); return err },
		func() error { _, err := controls.NewButton(p, "x:14,y:11,w:15,h:1", "&Apply", cmdConfirm); return err },
		func() error { _, err := controls.NewButton(p, "x:31,y:11,w:15,h:1", "&Warn", cmdWarn); return err },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
