package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams st to completion and returns the number of samples.
func drain(t *testing.T, st beep.Streamer) int {
	t.Helper()
	total := 0
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := st.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream never ended")
	return total
}

func TestEveryCueHasFiniteEffect(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, c := range Cues() {
		t.Run(c.String(), func(t *testing.T) {
			st := Effect(c, rate)
			if st == nil {
				t.Fatalf("Effect(%s) = nil", c)
			}
			if n := drain(t, st); n == 0 {
				t.Errorf("Effect(%s) produced no samples", c)
			}
		})
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 250*time.Millisecond, WaveTriangle, 0.5, rate)
	if n := drain(t, osc); n != 250 {
		t.Errorf("oscillator streamed %d samples, expected 250", n)
	}
}

func TestDelayedToneIsLonger(t *testing.T) {
	rate := beep.SampleRate(1000)
	// The coin's second note starts at 100ms and lasts 150ms.
	if n := drain(t, Effect(CueCoin, rate)); n != 250 {
		t.Errorf("coin streamed %d samples, expected 250", n)
	}
}

func TestUnknownCue(t *testing.T) {
	if Effect(Cue(99), 44100) != nil {
		t.Error("Effect(unknown) should be nil")
	}
	if Cue(99).String() != "unknown" {
		t.Errorf("String() = %q, expected unknown", Cue(99).String())
	}
}

func TestNote(t *testing.T) {
	tests := []struct {
		kind     int
		expected Cue
	}{
		{0, CueDrum},
		{1, CueWood},
		{2, CuePot},
		{3, CueSnare},
		{7, CueTap},
	}
	for _, tc := range tests {
		if got := Note(tc.kind); got != tc.expected {
			t.Errorf("Note(%d) = %s, expected %s", tc.kind, got, tc.expected)
		}
	}
}

func TestNopPlay(t *testing.T) {
	for _, c := range Cues() {
		Nop{}.Play(c)
	}
}
