package clipboard

import "testing"

func TestMemory(t *testing.T) {
	var m Memory
	if got := m.GetText(); got != "" {
		t.Errorf("empty clipboard = %q", got)
	}
	if !m.SetText("a\tb\n") {
		t.Fatal("SetText failed")
	}
	if got := m.GetText(); got != "a\tb\n" {
		t.Errorf("GetText = %q", got)
	}
	m.Clear()
	if got := m.GetText(); got != "" {
		t.Errorf("after Clear = %q", got)
	}
}

func TestMemoryFail(t *testing.T) {
	m := Memory{Fail: true}
	if m.SetText("x") {
		t.Error("SetText succeeded on a failing clipboard")
	}
	if got := m.GetText(); got != "" {
		t.Errorf("GetText = %q after a failed set", got)
	}
}

func TestInterface(t *testing.T) {
	var _ Clipboard = (*Memory)(nil)
	var _ Clipboard = (*System)(nil)
}
