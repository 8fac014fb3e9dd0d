package controls

import (
	"cmp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dshills/cellkit/internal/renderer"
)

// ItemHandle identifies an item of a Tree or ListView. Handles start at
// 1 and are never reused by the same control.
type ItemHandle uint64

// InvalidItemHandle is returned when an item cannot be created or found.
const InvalidItemHandle ItemHandle = 0

// Column describes one column of a Tree or ListView.
type Column struct {
	Title string
	Align renderer.TextAlignment
	// Width 0 shares the remaining space with the other auto columns.
	Width int
}

// matcher folds a query once and tests values against it.
type matcher struct {
	query string
	fold  cases.Caser
}

func newMatcher(query string) *matcher {
	m := &matcher{fold: cases.Fold()}
	m.query = m.fold.String(query)
	return m
}

func (m *matcher) empty() bool { return m.query == "" }

// match reports whether any value contains the query, ignoring case.
func (m *matcher) match(values []string) bool {
	if m.query == "" {
		return false
	}
	for _, v := range values {
		if strings.Contains(m.fold.String(v), m.query) {
			return true
		}
	}
	return false
}

// columnPositions lays columns out left to right inside width. Each
// column is followed by a one-cell separator.
func columnPositions(cols []Column, width int) (xs, widths []int) {
	fixed, auto := 0, 0
	for _, c := range cols {
		if c.Width > 0 {
			fixed += c.Width + 1
		} else {
			auto++
		}
	}
	share := 0
	if auto > 0 {
		share = max((width-fixed)/auto-1, 1)
	}
	x := 0
	for _, c := range cols {
		w := c.Width
		if w <= 0 {
			w = share
		}
		xs = append(xs, x)
		widths = append(widths, w)
		x += w + 1
	}
	return xs, widths
}

// compareText orders strings ignoring case, falling back to a byte
// comparison for values that fold to the same text.
func compareText(a, b string) int {
	fold := cases.Fold()
	if r := cmp.Compare(fold.String(a), fold.String(b)); r != 0 {
		return r
	}
	return cmp.Compare(a, b)
}
