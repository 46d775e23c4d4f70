package matchorder

import (
	"testing"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/registry/registrytest"
)

// tapDish taps the button currently showing dish.
func tapDish(t *testing.T, g *Game, r *registrytest.Round, dish rune) {
	t.Helper()
	for i, d := range g.options {
		if d == dish {
			c := Button(i).Center()
			g.Update(r, 16, core.Tap(c.X, c.Y))
			return
		}
	}
	t.Fatalf("dish %q not on the buttons %q", dish, string(g.options))
}

func TestNewOrder(t *testing.T) {
	for _, hard := range []bool{false, true} {
		r := registrytest.New(hard, 1, 9)
		g := New()
		g.Init(r)

		want := 2
		if hard {
			want = 3
		}
		if len(g.Target()) != want {
			t.Errorf("hard=%v target = %d dishes, expected %d", hard, len(g.Target()), want)
		}
		if len(g.Options()) != optionCount {
			t.Errorf("options = %d, expected %d", len(g.Options()), optionCount)
		}
		seen := map[rune]bool{}
		for _, d := range g.Options() {
			if seen[d] {
				t.Errorf("duplicate option %q", d)
			}
			seen[d] = true
		}
		for _, d := range g.Target() {
			if !seen[d] {
				t.Errorf("target dish %q missing from options", d)
			}
		}
	}
}

func TestMatchAnyOrder(t *testing.T) {
	r := registrytest.New(false, 1, 1)
	g := New()
	g.Init(r)
	g.target = []rune{'s', 'c'}
	g.options = []rune{'c', 'd', 's', 'k'}

	tapDish(t, g, r, 'c')
	if len(g.Current()) != 1 {
		t.Fatalf("Current() = %q, expected one dish", string(g.Current()))
	}
	tapDish(t, g, r, 's')

	if r.Score != 50 {
		t.Errorf("Score = %d, expected 50", r.Score)
	}
	if len(g.Current()) != 0 {
		t.Errorf("Current() = %q, expected cleared", string(g.Current()))
	}
	if g.Patience() != 5000 {
		t.Errorf("Patience() = %v, expected reset to 5000", g.Patience())
	}
	if !r.Played(audio.CueWin) {
		t.Error("correct order should play the win cue")
	}
}

func TestWrongOrder(t *testing.T) {
	r := registrytest.New(true, 1, 1)
	g := New()
	g.Init(r)
	g.target = []rune{'c', 'd', 's'}
	g.options = []rune{'c', 'd', 's', 'k'}

	tapDish(t, g, r, 'c')
	tapDish(t, g, r, 'k')
	tapDish(t, g, r, 'd')

	if r.LivesLost != 1 {
		t.Errorf("LivesLost = %d, expected 1", r.LivesLost)
	}
	if r.Score != 0 {
		t.Errorf("Score = %d, expected 0", r.Score)
	}
	if !r.Played(audio.CueWrong) {
		t.Error("wrong order should play the wrong cue")
	}
}

func TestDuplicateTapIsWrong(t *testing.T) {
	r := registrytest.New(false, 1, 1)
	g := New()
	g.Init(r)
	g.target = []rune{'c', 'd'}
	g.options = []rune{'c', 'd', 's', 'k'}

	tapDish(t, g, r, 'c')
	tapDish(t, g, r, 'c')

	if r.LivesLost != 1 {
		t.Errorf("LivesLost = %d, expected 1", r.LivesLost)
	}
}

func TestPatienceRunsOut(t *testing.T) {
	r := registrytest.New(false, 1, 1)
	g := New()
	g.Init(r)

	g.Update(r, 4999, core.PointerSignal{})
	if r.LivesLost != 0 {
		t.Fatal("customer left early")
	}
	g.Update(r, 1, core.PointerSignal{})

	if r.LivesLost != 1 {
		t.Errorf("LivesLost = %d, expected 1", r.LivesLost)
	}
	if !r.Played(audio.CueAngry) {
		t.Error("leaving customer should play the angry cue")
	}
	if g.Patience() != 5000 {
		t.Errorf("Patience() = %v, expected a fresh customer", g.Patience())
	}
}

func TestTapKeptWhenCustomerLeaves(t *testing.T) {
	r := registrytest.New(false, 1, 1)
	g := New()
	g.Init(r)

	g.Update(r, 4999, core.PointerSignal{})
	c := Button(0).Center()
	g.Update(r, 1, core.Tap(c.X, c.Y))

	if r.LivesLost != 1 {
		t.Errorf("LivesLost = %d, expected 1", r.LivesLost)
	}
	if len(g.Current()) != 1 || g.Current()[0] != g.Options()[0] {
		t.Errorf("Current() = %q, expected the tap applied to the new order (%q)", string(g.Current()), g.Options()[0])
	}
}

func TestButtonEdgesExclusive(t *testing.T) {
	r := registrytest.New(false, 1, 1)
	g := New()
	g.Init(r)
	b := Button(0)

	g.Update(r, 16, core.Tap(b.X, b.Y+50))
	g.Update(r, 16, core.Tap(b.X+50, b.Y))

	if len(g.Current()) != 0 {
		t.Errorf("Current() = %q, expected edge taps ignored", string(g.Current()))
	}
}

func TestSameDishes(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"cd", "dc", true},
		{"cds", "sdc", true},
		{"cc", "cd", false},
		{"c", "cd", false},
	}

	for _, tc := range tests {
		if got := sameDishes([]rune(tc.a), []rune(tc.b)); got != tc.want {
			t.Errorf("sameDishes(%q, %q) = %v, expected %v", tc.a, tc.b, got, tc.want)
		}
	}
}
