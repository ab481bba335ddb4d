package systems

import (
	"math"
	"time"
)

// maxProgress is the largest value below 1.
var maxProgress = math.Nextafter(1, 0)

// FrameClock tracks how far real time has advanced into the current tick
// interval.
type FrameClock struct {
	tickDuration time.Duration
	lastTick     time.Time
}

func NewFrameClock(tps int, now time.Time) *FrameClock {
	return &FrameClock{
		tickDuration: time.Second / time.Duration(tps),
		lastTick:     now,
	}
}

// MarkTick records that a tick was processed at now.
func (c *FrameClock) MarkTick(now time.Time) {
	c.lastTick = now
}

// Progress returns the frame progress in [0, 1). A frame that arrives late,
// before the next tick has run, stays at the end of the interval.
func (c *FrameClock) Progress(now time.Time) float64 {
	p := float64(now.Sub(c.lastTick)) / float64(c.tickDuration)
	return clampProgress(p)
}

func clampProgress(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	return math.Min(p, maxProgress)
}
