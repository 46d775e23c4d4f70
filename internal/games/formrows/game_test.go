package formrows

import (
	"testing"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/registry/registrytest"
)

func TestInitLayout(t *testing.T) {
	for _, hard := range []bool{false, true} {
		r := registrytest.New(hard, 1, 5)
		g := New()
		g.Init(r)

		if len(g.rows) != rowCount(hard) {
			t.Errorf("hard=%v rows = %d, expected %d", hard, len(g.rows), rowCount(hard))
		}
		for i, rw := range g.rows {
			x := int(rw.GapX)
			if x < 100 || x >= 700 || (x-100)%80 != 0 {
				t.Errorf("row %d gap at %d is not a slot", i, x)
			}
		}
	}
}

func TestFillAllRowsCasual(t *testing.T) {
	r := registrytest.New(false, 1, 1)
	g := New()
	g.Init(r)

	for i := range g.rows {
		g.Update(r, 16, core.Tap(g.rows[i].GapX+10, rowY(i, false)))
	}

	if !g.Complete() {
		t.Fatal("Complete() = false after filling every row")
	}
	if g.TimeoutPenalty() {
		t.Error("no timeout penalty once complete")
	}
	// 3 rows x 40 + 100 bonus
	if r.Score != 220 {
		t.Errorf("Score = %d, expected 220", r.Score)
	}
	if !r.Played(audio.CueWin) {
		t.Error("completion should play the win cue")
	}
}

func TestWrongSpotCostsLife(t *testing.T) {
	r := registrytest.New(false, 1, 1)
	g := New()
	g.Init(r)
	g.rows[0].GapX = 100

	g.Update(r, 16, core.Tap(500, rowY(0, false)))

	if r.LivesLost != 1 {
		t.Errorf("LivesLost = %d, expected 1", r.LivesLost)
	}
	if g.Active() != 0 {
		t.Error("a miss should not advance the row")
	}
}

func TestTapOffRowIgnored(t *testing.T) {
	r := registrytest.New(false, 1, 1)
	g := New()
	g.Init(r)

	// Row 1 is not active yet; tapping its band does nothing.
	g.Update(r, 16, core.Tap(g.rows[1].GapX, rowY(1, false)))

	if r.LivesLost != 0 || r.Score != 0 || g.Active() != 0 {
		t.Error("tap outside the active row band should be a no-op")
	}
	if !g.TimeoutPenalty() {
		t.Error("open rows at timeout should cost a life")
	}
}

func TestHardDriftClamped(t *testing.T) {
	r := registrytest.New(true, 1, 1)
	g := New()
	g.Init(r)
	g.rows[0].GapX = 651
	r.Now = driftPeriod * 3.14159 / 2 // sin ~ 1, drifting right

	g.Update(r, 16.67*10, core.PointerSignal{})

	if g.rows[0].GapX != driftMaxX {
		t.Errorf("GapX = %f, expected clamp at %d", g.rows[0].GapX, driftMaxX)
	}
	if g.rows[1].GapX < 100 || g.rows[1].GapX > 660 {
		t.Error("only the active row drifts")
	}
}
