package layout

import "testing"

func TestValueToInt(t *testing.T) {
	tests := []struct {
		v      Value
		parent int
		want   int
	}{
		{Cells(7), 100, 7},
		{Cells(-3), 100, -3},
		{Percent(5000), 80, 40},
		{Percent(3333), 90, 29},
		{Percent(10000), 33, 33},
		{Percent(0), 500, 0},
	}
	for _, tt := range tests {
		if got := tt.v.ToInt(tt.parent); got != tt.want {
			t.Errorf("%v.ToInt(%d) = %d, want %d", tt.v, tt.parent, got, tt.want)
		}
	}
}

func TestPercentageToIntMonotonic(t *testing.T) {
	for _, amount := range []int{0, 1, 99, 1250, 3333, 5000, 6667, 10000, 25000} {
		v := Percent(amount)
		prev := v.ToInt(0)
		for parent := 1; parent <= 1000; parent++ {
			got := v.ToInt(parent)
			if got < prev {
				t.Fatalf("%v.ToInt(%d) = %d < ToInt(%d) = %d", v, parent, got, parent-1, prev)
			}
			prev = got
		}
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Cells(12), "12"},
		{Cells(-3), "-3"},
		{Percent(5000), "50%"},
		{Percent(1250), "12.50%"},
		{Percent(-50), "-0.50%"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
