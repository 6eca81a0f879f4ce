package core

import "testing"

func TestInputFramePreservesOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone) // ignored
	f.Set(ActionRotate)
	f.Set(ActionLeft)

	want := []Action{ActionLeft, ActionRotate, ActionLeft}
	if len(f.Actions) != len(want) {
		t.Fatalf("expected %d actions, got %d", len(want), len(f.Actions))
	}
	for i, a := range want {
		if f.Actions[i] != a {
			t.Errorf("action %d = %v, expected %v", i, f.Actions[i], a)
		}
	}
}

func TestInputFrameClearKeepsCapacity(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHardDrop)
	f.Set(ActionLeft)
	f.Clear()

	if len(f.Actions) != 0 {
		t.Errorf("Clear should empty the frame, got %v", f.Actions)
	}
	if cap(f.Actions) < 2 {
		t.Errorf("Clear should reuse the backing array, cap = %d", cap(f.Actions))
	}
}

func TestActionString(t *testing.T) {
	if ActionHardDrop.String() != "HardDrop" {
		t.Errorf("unexpected name %q", ActionHardDrop.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unexpected name %q", Action(99).String())
	}
}
