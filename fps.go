package blitter

import "log/slog"

// FPSCounter accumulates frame deltas and reports the average frame rate once
// per interval. Zero value is not usable; construct with NewFPSCounter.
type FPSCounter struct {
	interval float64
	elapsed  float64
	frames   int
}

// NewFPSCounter creates a counter reporting every interval seconds.
// An interval of 0 defaults to one second.
func NewFPSCounter(interval float64) *FPSCounter {
	if interval <= 0 {
		interval = 1.0
	}
	return &FPSCounter{interval: interval}
}

// Update records one frame of dt seconds. When a reporting interval elapses it
// returns the average FPS over that interval and true; otherwise (0, false).
func (f *FPSCounter) Update(dt float64) (float64, bool) {
	f.frames++
	f.elapsed += dt
	if f.elapsed < f.interval {
		return 0, false
	}
	fps := float64(f.frames) / f.elapsed
	f.frames = 0
	f.elapsed = 0
	return fps, true
}

// LogUpdate is Update plus an info-level log line when an interval elapses.
func (f *FPSCounter) LogUpdate(dt float64) {
	if fps, ok := f.Update(dt); ok {
		Logger().Info("fps", slog.Float64("average", fps))
	}
}
