// Package theme holds the color tables controls paint with.
//
// A Config is a plain value: copying it yields an independent theme.
// Every color is addressable by a dotted, case-insensitive key built
// from the field path, for example "menu.text.normal" or
// "window.controlbar.item.focused.hotkey"; files use those keys.
package theme

import "github.com/dshills/cellkit/internal/renderer/core"

// State holds the colors of one element in each interaction state.
type State struct {
	Focused           core.ColorPair
	Normal            core.ColorPair
	Inactive          core.ColorPair
	Hovered           core.ColorPair
	PressedOrSelected core.ColorPair
}

// Get picks the color for a control's current state. Disabled wins over
// focus, focus over hover.
func (s State) Get(enabled, focused, hovered bool) core.ColorPair {
	switch {
	case !enabled:
		return s.Inactive
	case focused:
		return s.Focused
	case hovered:
		return s.Hovered
	}
	return s.Normal
}

// ItemColors is a text color with its hot key color.
type ItemColors struct {
	Text   core.ColorPair
	HotKey core.ColorPair
}

// ControlBarColors paints window title bars and their buttons.
type ControlBarColors struct {
	Separators struct {
		Focused core.ColorPair
		Normal  core.ColorPair
	}
	Item struct {
		Normal  ItemColors
		Focused ItemColors
		Hover   ItemColors
		Pressed ItemColors
		Checked ItemColors
	}
	CloseButton core.ColorPair
	Tag         core.ColorPair
	CheckMark   core.ColorPair
	Text        core.ColorPair
}

// WindowColors paints one kind of window.
type WindowColors struct {
	Active        core.ColorPair
	Inactive      core.ColorPair
	TitleActive   core.ColorPair
	TitleInactive core.ColorPair
	ControlBar    ControlBarColors
}

// MenuColors paints a popup menu.
type MenuColors struct {
	Text          State
	HotKey        State
	ScrollButtons State
	Symbol        State
	ShortCut      State
}

// CellColors is used by grid lines, backgrounds and text.
type CellColors struct {
	Normal    core.ColorPair
	Selected  core.ColorPair
	Hovered   core.ColorPair
	Duplicate core.ColorPair
}

// Config is a complete theme.
type Config struct {
	Desktop core.ColorPair

	Window        WindowColors
	DialogError   WindowColors
	DialogNotify  WindowColors
	DialogWarning WindowColors

	Splitter struct {
		Normal  core.ColorPair
		Hover   core.ColorPair
		Clicked core.ColorPair
	}

	NumericSelector struct {
		Normal     core.ColorPair
		Focused    core.ColorPair
		Inactive   core.ColorPair
		Hover      core.ColorPair
		WrongValue core.ColorPair
	}

	Tree struct {
		Text struct {
			Normal       core.ColorPair
			Focused      core.ColorPair
			Inactive     core.ColorPair
			Filter       core.ColorPair
			SearchActive core.ColorPair
		}
		Symbol struct {
			Collapsed     core.ColorPair
			Expanded      core.ColorPair
			SingleElement core.ColorPair
		}
		Column struct {
			Text   core.ColorPair
			Header core.ColorPair
		}
		Separator struct {
			Normal  core.ColorPair
			Focused core.ColorPair
		}
	}

	Grid struct {
		Lines      CellColors
		Background struct {
			Grid core.ColorPair
			Cell CellColors
		}
		Text   CellColors
		Header core.ColorPair
	}

	SearchBar      State
	Border         State
	Lines          State
	Editor         State
	LineMarker     State
	PasswordMarker State

	Button struct {
		Text   State
		HotKey State
	}

	Text struct {
		Error       core.ColorPair
		Warning     core.ColorPair
		Normal      core.ColorPair
		Focused     core.ColorPair
		Inactive    core.ColorPair
		HotKey      core.ColorPair
		Hovered     core.ColorPair
		Highlighted core.ColorPair
		Emphasized1 core.ColorPair
		Emphasized2 core.ColorPair
	}

	Cursor struct {
		Normal           core.ColorPair
		OverInactiveItem core.ColorPair
		OverSelection    core.ColorPair
		Inactive         core.ColorPair
	}

	Selection struct {
		Editor       core.ColorPair
		LineMarker   core.ColorPair
		Text         core.ColorPair
		SearchMarker core.ColorPair
	}

	Symbol struct {
		Inactive  core.ColorPair
		Hovered   core.ColorPair
		Pressed   core.ColorPair
		Checked   core.ColorPair
		Unchecked core.ColorPair
		Unknown   core.ColorPair
	}

	Background struct {
		Focused core.Color
		Regular core.Color
		Error   core.Color
		Warning core.Color
		Notify  core.Color
		Tab     core.Color
	}

	ProgressStatus struct {
		Empty core.ColorPair
		Full  core.ColorPair
	}

	Menu       MenuColors
	ParentMenu MenuColors

	Header struct {
		Text   State
		HotKey State
		Symbol State
	}

	ScrollBar struct {
		Bar      State
		Arrows   State
		Position State
	}

	ToolTip struct {
		Arrow core.ColorPair
		Text  core.ColorPair
	}

	Tab struct {
		Text       State
		HotKey     State
		ListText   State
		ListHotKey State
	}
}

// WindowKind selects the color table of a window.
type WindowKind uint8

// Window kinds.
const (
	KindWindow WindowKind = iota
	KindError
	KindNotify
	KindWarning
)

// WindowColors returns the table for a window kind.
func (c *Config) WindowColors(kind WindowKind) *WindowColors {
	switch kind {
	case KindError:
		return &c.DialogError
	case KindNotify:
		return &c.DialogNotify
	case KindWarning:
		return &c.DialogWarning
	}
	return &c.Window
}
