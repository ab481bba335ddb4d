package board

import "math"

type tickCallback struct {
	remaining int
	fn        func()
}

// Ticks returns the number of ticks processed so far.
func (b *Board) Ticks() int {
	return b.ticks
}

// AdvanceTick counts one processed tick.
func (b *Board) AdvanceTick() {
	b.ticks++
}

// ticksFor converts a duration in seconds to whole ticks, at least one.
func (b *Board) ticksFor(seconds float64) int {
	return max(1, int(math.Round(seconds*b.TPS())))
}

// TickIntervalHasPassed reports whether the current tick crossed a boundary of
// the given interval. It is true once per interval.
func (b *Board) TickIntervalHasPassed(seconds float64) bool {
	interval := b.ticksFor(seconds)
	return (b.ticks-1)/interval != b.ticks/interval
}

// AddTickCallback runs fn after the given number of seconds of ticks.
func (b *Board) AddTickCallback(seconds float64, fn func()) {
	b.callbacks = append(b.callbacks, tickCallback{remaining: b.ticksFor(seconds), fn: fn})
}

// UpdateTickCallbacks counts down pending callbacks and runs the ones that are
// due, in the order they were added. Callbacks added while running wait for
// the next tick.
func (b *Board) UpdateTickCallbacks() {
	pending := b.callbacks
	b.callbacks = nil

	var due []func()
	kept := pending[:0]
	for _, cb := range pending {
		cb.remaining--
		if cb.remaining <= 0 {
			due = append(due, cb.fn)
			continue
		}
		kept = append(kept, cb)
	}
	b.callbacks = append(kept, b.callbacks...)

	for _, fn := range due {
		fn()
	}
}
