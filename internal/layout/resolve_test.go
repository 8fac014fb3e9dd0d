package layout

import (
	"errors"
	"testing"
)

func TestDetectMode(t *testing.T) {
	tests := []struct {
		format string
		want   FormatMode
	}{
		{"", ModeNone},
		{"x:1,y:3,w:30,h:2", ModePointAndSize},
		{"d:c,w:60,h:10", ModePointAndSize},
		{"l:1,t:1,w:5,h:5", ModePointAndSize},
		{"r:1,y:1,w:5,h:5", ModePointAndSize},
		{"l:1,r:1,y:2,h:3", ModeLeftRightAnchorsAndHeight},
		{"t:1,b:1,x:2,w:3", ModeTopBottomAnchorsAndWidth},
		{"l:1,t:1,r:1,h:3", ModeLeftTopRightAnchorsAndHeight},
		{"l:1,b:1,r:1,h:3", ModeLeftBottomRightAnchorsAndHeight},
		{"t:1,l:1,b:1,w:3", ModeTopLeftBottomAnchorsAndWidth},
		{"t:1,r:1,b:1,w:3", ModeTopRightBottomAnchorsAndWidth},
		{"l:0,t:0,b:3,r:0", ModeLeftTopRightBottomAnchors},
	}
	for _, tt := range tests {
		s, err := Compile(tt.format)
		if err != nil {
			t.Errorf("Compile(%q): %v", tt.format, err)
			continue
		}
		if s.Mode() != tt.want {
			t.Errorf("Compile(%q).Mode() = %v, want %v", tt.format, s.Mode(), tt.want)
		}
	}
}

func TestDetectModeConflicts(t *testing.T) {
	for _, format := range []string{
		"l:1,r:1,w:5,h:1",
		"t:1,b:1,h:5,w:1",
		"l:1,t:1,r:1,w:4,h:2",
		"x:1,l:1,w:2,h:2",
		"y:1,b:1,w:2,h:2",
		"d:c,x:1",
		"d:l,a:c",
		"d:t,l:1",
	} {
		_, err := Compile(format)
		if !errors.Is(err, ErrLayoutConflict) {
			t.Errorf("Compile(%q) error = %v, want ErrLayoutConflict", format, err)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		format string
		pw, ph int
		want   Rect
	}{
		{"x:1,y:3,w:30,h:2", 80, 25, Rect{1, 3, 30, 2}},
		{"x:50%,y:50%,w:10,h:4,a:c", 80, 24, Rect{35, 10, 10, 4}},
		{"x:79,y:24,w:10,h:4,a:br", 80, 25, Rect{69, 20, 10, 4}},
		{"r:2,b:1,w:10,h:3", 80, 25, Rect{68, 21, 10, 3}},
		{"l:2,t:3,w:10,h:3", 80, 25, Rect{2, 3, 10, 3}},
		{"l:2,r:3,h:1", 80, 25, Rect{2, 0, 75, 1}},
		{"l:10%,r:10%,y:5,h:2", 100, 25, Rect{10, 5, 80, 2}},
		{"l:1,r:1,y:20,h:4,a:b", 40, 25, Rect{1, 16, 38, 4}},
		{"t:1,b:1,x:5,w:10", 80, 25, Rect{5, 1, 10, 23}},
		{"l:1,t:2,r:3,h:4", 80, 25, Rect{1, 2, 76, 4}},
		{"l:1,b:2,r:3,h:4", 80, 25, Rect{1, 19, 76, 4}},
		{"t:1,l:2,b:3,w:4", 80, 25, Rect{2, 1, 4, 21}},
		{"t:1,r:2,b:3,w:4", 80, 25, Rect{74, 1, 4, 21}},
		{"l:0,t:0,b:3,r:0", 80, 25, Rect{0, 0, 80, 22}},
		{"l:0,t:0,r:0,b:0,w:80,h:100%", 80, 25, Rect{0, 0, 80, 25}},
		{"d:c,w:60,h:10", 80, 25, Rect{10, 7, 60, 10}},
		{"d:c", 80, 25, Rect{0, 0, 80, 25}},
		{"d:l,w:20,h:5", 80, 25, Rect{0, 0, 20, 25}},
		{"d:r,w:20", 80, 25, Rect{60, 0, 20, 25}},
		{"d:t,w:10,h:2", 80, 25, Rect{0, 0, 80, 2}},
		{"d:b,h:3", 80, 25, Rect{0, 22, 80, 3}},
		{"d:br,w:10,h:5", 80, 25, Rect{70, 20, 10, 5}},
		{"d:tl,w:50%,h:50%", 80, 24, Rect{0, 0, 40, 12}},
		{"x:3,y:4", 80, 25, Rect{3, 4, 0, 0}},
		{"", 80, 25, Rect{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		s, err := Compile(tt.format)
		if err != nil {
			t.Errorf("Compile(%q): %v", tt.format, err)
			continue
		}
		got, err := s.Resolve(tt.pw, tt.ph, Bounds{})
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.format, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q, %dx%d) = %v, want %v", tt.format, tt.pw, tt.ph, got, tt.want)
		}
	}
}

func TestResolveLeftRightWidthProperty(t *testing.T) {
	for _, tail := range []string{",y:0,h:1", ",t:0,h:1", ",b:0,h:1", ",t:0,b:0"} {
		for l := 0; l <= 6; l++ {
			for r := 0; r <= 6; r++ {
				format := "l:" + itoa(l) + ",r:" + itoa(r) + tail
				s := MustCompile(format)
				for pw := 12; pw <= 40; pw++ {
					got, err := s.Resolve(pw, 20, Bounds{})
					if err != nil {
						t.Fatalf("Resolve(%q): %v", format, err)
					}
					if got.Width != pw-l-r {
						t.Fatalf("Resolve(%q, %d).Width = %d, want %d", format, pw, got.Width, pw-l-r)
					}
				}
			}
		}
	}
}

func itoa(n int) string {
	return Cells(n).String()
}

func TestResolveClampsToBounds(t *testing.T) {
	s := MustCompile("l:0,r:0,h:1")

	got, _ := s.Resolve(80, 25, Bounds{MaxWidth: 10})
	if got.Width != 10 {
		t.Errorf("Width = %d, want max 10", got.Width)
	}
	got, _ = s.Resolve(3, 25, Bounds{MinWidth: 5, MinHeight: 2})
	if got.Width != 5 || got.Height != 2 {
		t.Errorf("got %v, want min 5x2", got)
	}
	got, _ = s.Resolve(0, 25, Bounds{})
	if got.Width != 0 {
		t.Errorf("negative width not floored: %v", got)
	}
}

func TestResolveDefaultSize(t *testing.T) {
	got, err := MustCompile("").Resolve(80, 25, Bounds{MinWidth: 1, MinHeight: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got != (Rect{0, 0, 1, 1}) {
		t.Errorf("got %v, want minimum size at origin", got)
	}
}

func TestResolveFourAnchorConflict(t *testing.T) {
	s := MustCompile("l:0,t:0,r:0,b:0,w:70")
	_, err := s.Resolve(80, 25, Bounds{})
	if !errors.Is(err, ErrLayoutConflict) {
		t.Errorf("err = %v, want ErrLayoutConflict", err)
	}
	var ce *ConflictError
	if !errors.As(err, &ce) || !ce.Fields.Has(FieldWidth) {
		t.Errorf("conflict does not name width: %v", err)
	}
}
