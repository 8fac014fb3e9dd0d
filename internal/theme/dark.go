package theme

import "github.com/dshills/cellkit/internal/renderer/core"

func p(fg, bg core.Color) core.ColorPair { return core.ColorPair{Foreground: fg, Background: bg} }

func state(focused, normal, inactive, hovered, pressed core.ColorPair) State {
	return State{Focused: focused, Normal: normal, Inactive: inactive, Hovered: hovered, PressedOrSelected: pressed}
}

func windowColors(w *WindowColors, bg core.Color, closeButton, tag, checkMark core.ColorPair) {
	w.Active = p(core.White, bg)
	w.Inactive = p(core.Silver, bg)
	w.TitleActive = p(core.Yellow, bg)
	w.TitleInactive = p(core.Silver, bg)

	cb := &w.ControlBar
	cb.Separators.Focused = p(core.Yellow, bg)
	cb.Separators.Normal = p(core.Silver, bg)
	cb.Item.Normal = ItemColors{Text: p(core.Gray, bg), HotKey: p(core.Silver, bg)}
	cb.Item.Focused = ItemColors{Text: p(core.Aqua, bg), HotKey: p(core.White, bg)}
	cb.Item.Hover = ItemColors{Text: p(core.Black, core.Aqua), HotKey: p(core.Black, core.Aqua)}
	cb.Item.Pressed = ItemColors{Text: p(core.Black, core.Yellow), HotKey: p(core.Black, core.Yellow)}
	cb.Item.Checked = ItemColors{Text: p(core.White, core.Gray), HotKey: p(core.Silver, core.Gray)}
	cb.CloseButton = closeButton
	cb.Tag = tag
	cb.CheckMark = checkMark
	cb.Text = p(core.Silver, bg)
}

// Dark returns the built-in dark theme.
func Dark() Config {
	var c Config
	c.Desktop = p(core.Gray, core.Black)

	windowColors(&c.Window, core.DarkBlue, p(core.Red, core.DarkBlue), p(core.Green, core.DarkBlue), p(core.White, core.DarkBlue))
	// regular windows dim the inactive frame to black
	c.Window.Inactive = p(core.Silver, core.Black)
	c.Window.TitleInactive = p(core.Silver, core.Black)
	c.Window.ControlBar.Separators.Normal = p(core.Silver, core.Black)
	c.Window.ControlBar.Item.Normal = ItemColors{Text: p(core.Gray, core.Black), HotKey: p(core.Silver, core.Black)}
	c.Window.ControlBar.Item.Focused = ItemColors{Text: p(core.Aqua, core.DarkBlue), HotKey: p(core.White, core.DarkBlue)}
	c.Window.ControlBar.Item.Checked = ItemColors{Text: p(core.Black, core.Gray), HotKey: p(core.White, core.Gray)}

	windowColors(&c.DialogError, core.DarkRed, p(core.Yellow, core.DarkRed), p(core.Silver, core.DarkRed), p(core.Green, core.DarkRed))
	windowColors(&c.DialogNotify, core.DarkGreen, p(core.White, core.DarkGreen), p(core.Yellow, core.DarkGreen), p(core.Silver, core.DarkGreen))
	windowColors(&c.DialogWarning, core.Olive, p(core.Red, core.Olive), p(core.Green, core.Olive), p(core.White, core.Olive))

	c.Splitter.Normal = p(core.Green, core.Transparent)
	c.Splitter.Hover = p(core.Black, core.Aqua)
	c.Splitter.Clicked = p(core.Red, core.Transparent)

	c.NumericSelector.Normal = p(core.Black, core.Gray)
	c.NumericSelector.Focused = p(core.Black, core.White)
	c.NumericSelector.Inactive = p(core.Gray, core.Black)
	c.NumericSelector.Hover = p(core.Black, core.Yellow)
	c.NumericSelector.WrongValue = p(core.Black, core.Red)

	c.Tree.Text.Normal = p(core.White, core.Transparent)
	c.Tree.Text.Focused = p(core.Black, core.White)
	c.Tree.Text.Inactive = p(core.Gray, core.Black)
	c.Tree.Text.Filter = p(core.White, core.DarkRed)
	c.Tree.Text.SearchActive = p(core.Silver, core.Transparent)
	c.Tree.Symbol.Collapsed = p(core.Green, core.Transparent)
	c.Tree.Symbol.Expanded = p(core.Red, core.Transparent)
	c.Tree.Symbol.SingleElement = p(core.Black, core.Transparent)
	c.Tree.Column.Text = p(core.Gray, core.Transparent)
	c.Tree.Column.Header = p(core.Transparent, core.Pink)
	c.Tree.Separator.Normal = p(core.Gray, core.Transparent)
	c.Tree.Separator.Focused = p(core.Gray, core.Pink)

	c.Grid.Lines = CellColors{
		Normal: p(core.White, core.Transparent), Selected: p(core.White, core.Transparent),
		Hovered: p(core.Yellow, core.Transparent), Duplicate: p(core.Green, core.Transparent),
	}
	c.Grid.Background.Grid = p(core.Transparent, core.DarkBlue)
	c.Grid.Background.Cell = CellColors{
		Normal: p(core.Transparent, core.DarkBlue), Selected: p(core.Transparent, core.White),
		Hovered: p(core.Transparent, core.Yellow), Duplicate: p(core.Transparent, core.Green),
	}
	c.Grid.Text = CellColors{
		Normal: p(core.White, core.Transparent), Selected: p(core.Gray, core.Transparent),
		Hovered: p(core.Black, core.Transparent), Duplicate: p(core.Black, core.Transparent),
	}
	c.Grid.Header = p(core.Black, core.Magenta)

	c.SearchBar = state(p(core.White, core.DarkRed), p(core.Silver, core.DarkRed), p(core.Gray, core.DarkRed), p(core.Yellow, core.DarkRed), p(core.Yellow, core.DarkRed))
	c.Border = state(p(core.White, core.Transparent), p(core.Silver, core.Transparent), p(core.Gray, core.Transparent), p(core.Yellow, core.Transparent), p(core.Yellow, core.Transparent))
	c.Lines = state(p(core.DarkGreen, core.Transparent), p(core.DarkGreen, core.Transparent), p(core.Gray, core.Transparent), p(core.Yellow, core.Magenta), p(core.Yellow, core.Magenta))
	c.Editor = state(p(core.White, core.Black), p(core.Silver, core.Black), p(core.Gray, core.Transparent), p(core.Yellow, core.Black), p(core.Yellow, core.Black))
	c.LineMarker = state(p(core.Black, core.Gray), p(core.White, core.Blue), p(core.Gray, core.Transparent), p(core.Yellow, core.Blue), p(core.Yellow, core.Blue))
	c.PasswordMarker = state(p(core.Aqua, core.Black), p(core.Silver, core.Black), p(core.Gray, core.Transparent), p(core.Yellow, core.Black), p(core.Yellow, core.Black))

	c.Button.Text = state(p(core.Black, core.White), p(core.Black, core.Gray), p(core.Gray, core.Black), p(core.Black, core.Yellow), p(core.Black, core.Olive))
	c.Button.HotKey = state(p(core.Magenta, core.White), p(core.DarkRed, core.Gray), p(core.Gray, core.Black), p(core.Magenta, core.Yellow), p(core.DarkRed, core.Olive))

	c.Text.Error = p(core.Red, core.Transparent)
	c.Text.Warning = p(core.Olive, core.Transparent)
	c.Text.Normal = p(core.Silver, core.Transparent)
	c.Text.Focused = p(core.White, core.Transparent)
	c.Text.Inactive = p(core.Gray, core.Transparent)
	c.Text.HotKey = p(core.Aqua, core.Transparent)
	c.Text.Hovered = p(core.Yellow, core.Transparent)
	c.Text.Highlighted = p(core.Yellow, core.Transparent)
	c.Text.Emphasized1 = p(core.Aqua, core.Transparent)
	c.Text.Emphasized2 = p(core.Green, core.Transparent)

	c.Cursor.Normal = p(core.Black, core.White)
	c.Cursor.OverInactiveItem = p(core.Gray, core.White)
	c.Cursor.OverSelection = p(core.Red, core.Yellow)
	c.Cursor.Inactive = p(core.Yellow, core.Transparent)

	c.Selection.Editor = p(core.Yellow, core.Magenta)
	c.Selection.LineMarker = p(core.Yellow, core.Magenta)
	c.Selection.Text = p(core.Yellow, core.Black)
	c.Selection.SearchMarker = p(core.Yellow, core.DarkRed)

	c.Symbol.Inactive = p(core.Gray, core.Transparent)
	c.Symbol.Hovered = p(core.Black, core.Aqua)
	c.Symbol.Pressed = p(core.Aqua, core.Yellow)
	c.Symbol.Checked = p(core.Green, core.Transparent)
	c.Symbol.Unchecked = p(core.Red, core.Transparent)
	c.Symbol.Unknown = p(core.Olive, core.Transparent)

	c.Background.Focused = core.DarkBlue
	c.Background.Regular = core.Black
	c.Background.Error = core.DarkRed
	c.Background.Warning = core.Olive
	c.Background.Notify = core.DarkGreen
	c.Background.Tab = core.Blue

	c.ProgressStatus.Empty = p(core.White, core.Black)
	c.ProgressStatus.Full = p(core.White, core.Teal)

	c.Menu.Text = state(p(core.Black, core.White), p(core.Black, core.White), p(core.Gray, core.White), p(core.Black, core.Silver), p(core.Yellow, core.Magenta))
	c.Menu.HotKey = state(p(core.DarkRed, core.White), p(core.DarkRed, core.White), p(core.Gray, core.White), p(core.DarkRed, core.Silver), p(core.White, core.Magenta))
	c.Menu.ScrollButtons = state(p(core.DarkBlue, core.White), p(core.DarkBlue, core.White), p(core.Gray, core.White), p(core.Magenta, core.White), p(core.White, core.Magenta))
	c.Menu.Symbol = state(p(core.DarkGreen, core.White), p(core.DarkGreen, core.White), p(core.Gray, core.White), p(core.Magenta, core.Silver), p(core.White, core.Magenta))
	c.Menu.ShortCut = c.Menu.HotKey

	c.ParentMenu.Text = state(p(core.Black, core.Silver), p(core.Black, core.Silver), p(core.Gray, core.Silver), p(core.Black, core.Gray), p(core.Yellow, core.Gray))
	c.ParentMenu.HotKey = state(p(core.DarkRed, core.Silver), p(core.DarkRed, core.Silver), p(core.Gray, core.Silver), p(core.DarkRed, core.Gray), p(core.White, core.Gray))
	scroll := p(core.Gray, core.Silver)
	c.ParentMenu.ScrollButtons = state(scroll, scroll, scroll, scroll, scroll)
	c.ParentMenu.Symbol = c.ParentMenu.Text
	c.ParentMenu.ShortCut = c.ParentMenu.HotKey

	c.Header.Text = state(p(core.White, core.Magenta), p(core.Silver, core.Magenta), p(core.Gray, core.Transparent), p(core.DarkRed, core.Silver), p(core.White, core.Pink))
	c.Header.HotKey = state(p(core.Yellow, core.Magenta), p(core.Yellow, core.Magenta), p(core.Gray, core.Transparent), p(core.Red, core.Silver), p(core.Yellow, core.Pink))
	c.Header.Symbol = c.Header.Text

	c.ScrollBar.Bar = state(p(core.White, core.Teal), p(core.White, core.Teal), p(core.Gray, core.Transparent), p(core.Yellow, core.Silver), p(core.Yellow, core.Silver))
	c.ScrollBar.Arrows = c.ScrollBar.Bar
	c.ScrollBar.Position = state(p(core.Green, core.Teal), p(core.Green, core.Teal), p(core.Gray, core.Transparent), p(core.Yellow, core.Silver), p(core.Yellow, core.Silver))

	c.ToolTip.Arrow = p(core.Green, core.Black)
	c.ToolTip.Text = p(core.Black, core.Aqua)

	c.Tab.Text = state(p(core.Black, core.Gray), p(core.White, core.Gray), p(core.Gray, core.Transparent), p(core.Black, core.Silver), p(core.White, core.Blue))
	c.Tab.HotKey = state(p(core.DarkRed, core.Gray), p(core.Yellow, core.Gray), p(core.Gray, core.Transparent), p(core.DarkRed, core.Silver), p(core.Yellow, core.Blue))
	c.Tab.ListText = c.Tab.Text
	c.Tab.ListText.PressedOrSelected = p(core.Black, core.White)
	c.Tab.ListHotKey = c.Tab.HotKey
	c.Tab.ListHotKey.PressedOrSelected = p(core.DarkRed, core.White)

	return c
}
