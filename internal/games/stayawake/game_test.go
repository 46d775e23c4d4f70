package stayawake

import (
	"math"
	"testing"

	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/registry/registrytest"
)

func TestCasualEmptyMeterResetsTo60(t *testing.T) {
	r := registrytest.New(false, 1, 1)
	g := New()
	g.Init(r)
	g.meter = 0

	g.Update(r, 1, core.PointerSignal{})

	if r.LivesLost != 1 {
		t.Errorf("LivesLost = %d, expected 1", r.LivesLost)
	}
	if g.Meter() != casualReset {
		t.Errorf("Meter() = %f, expected %f", g.Meter(), casualReset)
	}
}

func TestHardBounds(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		tap   bool
	}{
		{"empty", 0, false},
		{"overshoot", 95, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := registrytest.New(true, 1, 1)
			g := New()
			g.meter = tc.start
			g.fanActive = true
			g.fanTimer = 500

			p := core.PointerSignal{}
			if tc.tap {
				p = core.Tap(400, 300)
			}
			g.Update(r, 1, p)

			if r.LivesLost != 1 {
				t.Errorf("LivesLost = %d, expected 1", r.LivesLost)
			}
			if g.Meter() != hardReset {
				t.Errorf("Meter() = %f, expected %f", g.Meter(), hardReset)
			}
			if g.FanActive() {
				t.Error("a reset should switch the fan off")
			}
		})
	}
}

func TestCasualFullMeterIsSafe(t *testing.T) {
	r := registrytest.New(false, 1, 1)
	g := New()
	g.meter = 95

	g.Update(r, 1, core.Tap(400, 300))

	if r.LivesLost != 0 {
		t.Errorf("casual overshoot should be safe, LivesLost = %d", r.LivesLost)
	}
	if g.Meter() != 100 {
		t.Errorf("Meter() = %f, expected clamp at 100", g.Meter())
	}
}

func TestTapBoost(t *testing.T) {
	tests := []struct {
		hard     bool
		expected float64
	}{
		{false, 66},
		{true, 62},
	}
	for _, tc := range tests {
		r := registrytest.New(tc.hard, 0, 1) // zero multiplier: no drain
		g := New()
		g.fanActive = true
		g.fanTimer = 10000

		g.Update(r, 16, core.Tap(400, 300))

		if g.Meter() != tc.expected {
			t.Errorf("hard=%v Meter() = %f, expected %f", tc.hard, g.Meter(), tc.expected)
		}
	}
}

func TestFanDrain(t *testing.T) {
	r := registrytest.New(false, 1, 1)

	calm := New()
	calm.meter = 80
	calm.Update(r, 100, core.PointerSignal{})

	windy := New()
	windy.meter = 80
	windy.fanActive = true
	windy.fanTimer = 1000
	windy.Update(r, 100, core.PointerSignal{})

	// 0.05 per ms, times 2.5 while the fan blows.
	if d := 80 - calm.meter; math.Abs(d-5) > 1e-9 {
		t.Errorf("calm drain over 100ms = %f, expected 5", d)
	}
	if d := 80 - windy.meter; math.Abs(d-12.5) > 1e-9 {
		t.Errorf("windy drain over 100ms = %f, expected 12.5", d)
	}
}

func TestFanExpires(t *testing.T) {
	r := registrytest.New(false, 0, 1)
	g := New()
	g.fanActive = true
	g.fanTimer = 50

	g.Update(r, 60, core.PointerSignal{})

	if g.FanActive() {
		t.Error("fan should stop once its timer runs out")
	}
}
