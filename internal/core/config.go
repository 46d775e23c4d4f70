package core

// Logical play-field size. Every variant works in these units; frontends
// scale to whatever they have (terminal cells, window pixels).
const (
	LogicalW = 800
	LogicalH = 600
)

// RuntimeConfig contains configuration passed to the engine at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters or pixels
	ScreenH  int   // Screen height in characters or pixels
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ToLogical maps a device cell (column, row) to the center of that cell in
// logical play-field coordinates.
func (c RuntimeConfig) ToLogical(col, row int) Vec {
	w, h := c.ScreenW, c.ScreenH
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Vec{
		X: (float64(col) + 0.5) * LogicalW / float64(w),
		Y: (float64(row) + 0.5) * LogicalH / float64(h),
	}
}

// ToCell maps a logical coordinate to the device cell containing it.
func (c RuntimeConfig) ToCell(p Vec) (col, row int) {
	col = int(p.X * float64(c.ScreenW) / LogicalW)
	row = int(p.Y * float64(c.ScreenH) / LogicalH)
	return col, row
}
