package core

import "testing"

func TestTapBufferLastWins(t *testing.T) {
	var b TapBuffer

	if p := b.Take(); p.Tapped {
		t.Fatalf("empty buffer Take() = %+v, expected no tap", p)
	}

	b.Push(10, 20)
	b.Push(300, 400)

	p := b.Take()
	if !p.Tapped || p.X != 300 || p.Y != 400 {
		t.Errorf("Take() = %+v, expected tap at (300, 400)", p)
	}
	if p := b.Take(); p.Tapped {
		t.Errorf("second Take() = %+v, expected buffer cleared", p)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionTap, "Tap"},
		{ActionConfirm, "Confirm"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
