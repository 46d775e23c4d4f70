package engine

import (
	"time"

	"github.com/vovakirdan/ramadhan-rush/internal/core"
)

// Loop turns wall-clock frames into engine updates. Frontends call Frame
// from their own tick (bubbletea's tea.Tick, ebiten's Update) and render
// whenever it returns true.
type Loop struct {
	engine  *Engine
	taps    *core.TapBuffer
	stallMs float64
	last    time.Time
	started bool
	stopped bool
}

// NewLoop creates a loop that feeds taps from buf into e.
func NewLoop(e *Engine, buf *core.TapBuffer) *Loop {
	return &Loop{
		engine:  e,
		taps:    buf,
		stallMs: e.cfg.Engine.StallThresholdMs,
	}
}

// Frame advances the engine to now. The first frame has dt = 0. Frames
// at least the stall threshold apart skip the update, leaving pending taps
// for the next frame. Returns false once the loop is stopped.
func (l *Loop) Frame(now time.Time) bool {
	if l.stopped {
		return false
	}
	var dt float64
	if l.started {
		dt = float64(now.Sub(l.last)) / float64(time.Millisecond)
	}
	l.last = now
	l.started = true

	if l.stallMs > 0 && dt >= l.stallMs {
		return true
	}
	l.engine.Update(dt, l.taps.Take())
	return true
}

// Stop ends the loop; later frames are ignored.
func (l *Loop) Stop() {
	l.stopped = true
}

// Stopped reports whether Stop was called.
func (l *Loop) Stopped() bool {
	return l.stopped
}

// Engine returns the engine the loop drives.
func (l *Loop) Engine() *Engine {
	return l.engine
}

// Taps returns the buffer the frontend pushes pointer taps into.
func (l *Loop) Taps() *core.TapBuffer {
	return l.taps
}
