package colorcatch

import (
	"fmt"
	"time"
)

// Clock converts fixed-rate simulation steps into whole-second countdown ticks.
type Clock struct {
	tickRate int
	frames   int
}

// NewClock creates a clock for a simulation running at tickRate steps per second.
func NewClock(tickRate int) Clock {
	if tickRate < 1 {
		tickRate = 1
	}
	return Clock{tickRate: tickRate}
}

// Advance counts one simulation step and reports whether a second elapsed.
func (c *Clock) Advance() bool {
	c.frames++
	if c.frames >= c.tickRate {
		c.frames = 0
		return true
	}
	return false
}

// Reset restarts the current second.
func (c *Clock) Reset() {
	c.frames = 0
}

// Delay is a one-shot countdown measured in simulation steps. It cannot be
// canceled once armed; it fires exactly once.
type Delay struct {
	remaining int
	armed     bool
}

// Arm starts the delay for d at the given tick rate. Arming an armed delay
// keeps the original deadline.
func (d *Delay) Arm(dur time.Duration, tickRate int) {
	if d.armed {
		return
	}
	d.remaining = StepsFor(dur, tickRate)
	d.armed = true
}

// Advance counts one step and reports whether the delay fired on it.
func (d *Delay) Advance() bool {
	if !d.armed {
		return false
	}
	d.remaining--
	if d.remaining <= 0 {
		d.armed = false
		return true
	}
	return false
}

// Armed reports whether the delay is waiting to fire.
func (d *Delay) Armed() bool {
	return d.armed
}

// Disarm drops a waiting delay. Used only when the game itself is reset.
func (d *Delay) Disarm() {
	d.armed = false
	d.remaining = 0
}

// StepsFor converts a duration into simulation steps, rounding up, minimum 1.
func StepsFor(dur time.Duration, tickRate int) int {
	if tickRate < 1 {
		tickRate = 1
	}
	n := int((int64(dur)*int64(tickRate) + int64(time.Second) - 1) / int64(time.Second))
	if n < 1 {
		n = 1
	}
	return n
}

// FormatTime renders seconds as M:SS.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
