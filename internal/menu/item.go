package menu

import (
	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer/core"
)

// ItemType tags the variant of a menu item.
type ItemType uint8

// Item types.
const (
	ItemLine ItemType = iota
	ItemCommand
	ItemCheck
	ItemRadio
	ItemSubMenu
)

func (t ItemType) String() string {
	switch t {
	case ItemLine:
		return "line"
	case ItemCommand:
		return "command"
	case ItemCheck:
		return "check"
	case ItemRadio:
		return "radio"
	case ItemSubMenu:
		return "submenu"
	}
	return "invalid"
}

// ItemHandle identifies an item of one menu. Handles are indexes into the
// menu's item list and stay valid for the menu's lifetime.
type ItemHandle int

// InvalidItemHandle is returned when an item could not be added.
const InvalidItemHandle ItemHandle = -1

// Item is one row of a menu.
type Item struct {
	Type ItemType
	// Text is the display text with the hot key marker removed.
	Text         []rune
	HotKey       input.Key
	HotKeyOffset int
	Shortcut     input.Key
	CommandID    int
	Enabled      bool
	Checked      bool
	// SubMenu is owned by the item; only set for ItemSubMenu.
	SubMenu *Menu
}

func newItem(t ItemType, text string, commandID int, checked bool, shortcut input.Key) *Item {
	display, hk, off := input.ParseHotKey(text)
	return &Item{
		Type:         t,
		Text:         display,
		HotKey:       hk,
		HotKeyOffset: off,
		Shortcut:     shortcut,
		CommandID:    commandID,
		Enabled:      true,
		Checked:      checked,
	}
}

// selectable reports whether the cursor may stop on the item.
func (it *Item) selectable() bool {
	return it.Type != ItemLine && it.Enabled
}

func (it *Item) textWidth() int {
	return core.StringWidth(string(it.Text))
}

func (it *Item) shortcutText() string {
	if it.Shortcut == input.KeyNone {
		return ""
	}
	return it.Shortcut.String()
}
