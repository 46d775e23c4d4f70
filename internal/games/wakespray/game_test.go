package wakespray

import (
	"testing"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/entity"
	"github.com/vovakirdan/ramadhan-rush/internal/registry/registrytest"
)

// single replaces the sleepers with one at (400, 300).
func single(g *Game, sleepy bool) {
	g.sleepers.Clear()
	g.sleepers.Add(sleeper{
		Body:   entity.Body{Pos: core.Vec{X: 400, Y: 300}},
		Sleepy: sleepy,
		Timer:  10000,
	})
}

func TestInitLayout(t *testing.T) {
	r := registrytest.New(false, 1, 2)
	g := New()
	g.Init(r)

	if g.Water() != tankFull {
		t.Errorf("Water() = %d, expected %d", g.Water(), tankFull)
	}
	if g.sleepers.Len() != sleeperN {
		t.Fatalf("sleepers = %d, expected %d", g.sleepers.Len(), sleeperN)
	}
	g.sleepers.Each(func(i int, s *sleeper) {
		cx := 150 + float64(i%3)*200
		if s.Pos.X < cx-20 || s.Pos.X > cx+20 {
			t.Errorf("sleeper %d X = %v, expected within 20 of %v", i, s.Pos.X, cx)
		}
		if s.Timer < 1000 || s.Timer > 3000 {
			t.Errorf("sleeper %d Timer = %v, expected in [1000, 3000]", i, s.Timer)
		}
	})
}

func TestSpray(t *testing.T) {
	tests := []struct {
		name      string
		hard      bool
		sleepy    bool
		wantScore int
		wantLives int
	}{
		{"sleepy casual", false, true, 20, 0},
		{"sleepy hard", true, true, 40, 0},
		{"awake", false, false, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := registrytest.New(tc.hard, 1, 1)
			g := New()
			g.Init(r)
			single(g, tc.sleepy)

			g.Update(r, 16, core.Tap(410, 300))

			if r.Score != tc.wantScore {
				t.Errorf("Score = %d, expected %d", r.Score, tc.wantScore)
			}
			if r.LivesLost != tc.wantLives {
				t.Errorf("LivesLost = %d, expected %d", r.LivesLost, tc.wantLives)
			}
			if g.Water() != tankFull-sprayCost {
				t.Errorf("Water() = %d, expected %d", g.Water(), tankFull-sprayCost)
			}
			if g.sleepers.At(0).Sleepy {
				t.Error("sprayed sleeper should be awake")
			}
		})
	}
}

func TestEmptyTank(t *testing.T) {
	r := registrytest.New(false, 1, 1)
	g := New()
	g.Init(r)
	single(g, true)
	g.water = 10

	g.Update(r, 16, core.Tap(400, 300))

	if r.Score != 0 || g.Water() != 10 {
		t.Errorf("spray without water: score %d water %d", r.Score, g.Water())
	}
	if !r.Played(audio.CueWrong) {
		t.Error("dry spray should play the wrong cue")
	}
}

func TestRefill(t *testing.T) {
	r := registrytest.New(false, 1, 1)
	g := New()
	g.Init(r)
	g.water = 0

	c := Refill.Center()
	g.Update(r, 16, core.Tap(c.X, c.Y))

	if g.Water() != tankFull {
		t.Errorf("Water() = %d, expected %d", g.Water(), tankFull)
	}
	if r.Played(audio.CueWrong) {
		t.Error("refill tap should not play the wrong cue")
	}
}

func TestSleeperFlips(t *testing.T) {
	r := registrytest.New(true, 1, 1)
	g := New()
	g.Init(r)
	single(g, false)
	g.sleepers.At(0).Timer = 10

	g.Update(r, 16, core.PointerSignal{})

	s := g.sleepers.At(0)
	if !s.Sleepy {
		t.Error("awake sleeper should doze off when its timer runs out")
	}
	if s.Timer < 1500 || s.Timer > 3000 {
		t.Errorf("Timer = %v, expected a dozing timer in [1500, 3000]", s.Timer)
	}
}
