package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// oscillator generates a raw wave with an exponential fade from vol to
// roughly silence over its duration.
type oscillator struct {
	freq     float64
	phase    float64
	vol      float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fading tone generator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, vol float64, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		vol:      vol,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		// Exponential ramp down to 1% of the start gain.
		progress := float64(o.position) / float64(o.duration)
		gain := o.vol * math.Pow(0.01/o.vol, progress)

		samples[i][0] = val * gain
		samples[i][1] = val * gain

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// tone is one oscillator scheduled at an offset inside an effect.
type tone struct {
	freq  float64
	wave  WaveType
	dur   time.Duration
	vol   float64
	delay time.Duration
}

var effects = map[Cue][]tone{
	CueTap:  {{freq: 800, wave: WaveSine, dur: 100 * time.Millisecond, vol: 0.05}},
	CueCoin: {{freq: 1200, wave: WaveSquare, dur: 100 * time.Millisecond, vol: 0.05}, {freq: 1600, wave: WaveSquare, dur: 150 * time.Millisecond, vol: 0.05, delay: 100 * time.Millisecond}},
	CueHit:  {{freq: 150, wave: WaveSaw, dur: 300 * time.Millisecond, vol: 0.2}, {freq: 100, wave: WaveSaw, dur: 300 * time.Millisecond, vol: 0.2, delay: 100 * time.Millisecond}},
	CueJump: {{freq: 400, wave: WaveSine, dur: 100 * time.Millisecond, vol: 0.1}, {freq: 600, wave: WaveSine, dur: 200 * time.Millisecond, vol: 0.1, delay: 100 * time.Millisecond}},
	CueWrong: {{freq: 200, wave: WaveSquare, dur: 200 * time.Millisecond, vol: 0.15}, {freq: 150, wave: WaveSquare, dur: 300 * time.Millisecond, vol: 0.15, delay: 150 * time.Millisecond}},
	CueWin: {
		{freq: 440, wave: WaveTriangle, dur: 100 * time.Millisecond, vol: 0.1},
		{freq: 554, wave: WaveTriangle, dur: 100 * time.Millisecond, vol: 0.1},
		{freq: 659, wave: WaveTriangle, dur: 200 * time.Millisecond, vol: 0.1, delay: 100 * time.Millisecond},
	},
	CueWater: {{wave: WaveNoise, dur: 200 * time.Millisecond, vol: 0.1}},
	CueAngry: {{freq: 100, wave: WaveSaw, dur: 400 * time.Millisecond, vol: 0.2}},
	CueDrum:  {{freq: 150, wave: WaveTriangle, dur: 200 * time.Millisecond, vol: 0.2}},
	CueWood:  {{freq: 800, wave: WaveSquare, dur: 100 * time.Millisecond, vol: 0.1}},
	CuePot:   {{freq: 1200, wave: WaveSine, dur: 200 * time.Millisecond, vol: 0.1}},
	CueSnare: {{wave: WaveNoise, dur: 200 * time.Millisecond, vol: 0.2}},
}

// Effect builds a finite streamer for the cue, or nil for unknown cues.
func Effect(c Cue, rate beep.SampleRate) beep.Streamer {
	tones, ok := effects[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		osc := NewOscillator(t.freq, t.dur, t.wave, t.vol, rate)
		if t.delay > 0 {
			osc = beep.Seq(beep.Silence(rate.N(t.delay)), osc)
		}
		parts = append(parts, osc)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return beep.Mix(parts...)
}
