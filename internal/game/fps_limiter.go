package game

import (
	"time"

	"voxview/internal/config"
)

// spinMargin is how much of the frame wait is busy-waited instead of slept.
// Sleeping right up to the deadline overshoots on most schedulers.
const spinMargin = 200 * time.Microsecond

// FPSLimiter paces the frame loop to the configured FPS cap.
type FPSLimiter struct {
	deadline time.Time
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame is due. A cap of 0 disables pacing.
// The cap is re-read every frame so config changes take effect live.
func (f *FPSLimiter) Wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		f.deadline = time.Time{}
		return
	}

	frame := time.Second / time.Duration(limit)
	if f.deadline.IsZero() {
		f.deadline = time.Now().Add(frame)
	} else {
		f.deadline = f.deadline.Add(frame)
	}

	for {
		remaining := time.Until(f.deadline)
		if remaining <= 0 {
			break
		}
		if remaining > spinMargin {
			time.Sleep(remaining - spinMargin)
		}
	}

	// After a hitch, resync instead of racing to catch up
	if late := -time.Until(f.deadline); late > frame {
		f.deadline = time.Now().Add(frame)
	}
}
