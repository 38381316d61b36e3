package engine

import "time"

// Clock turns variable frame times into whole fixed-length ticks.
type Clock struct {
	interval time.Duration
	acc      time.Duration
}

func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = TickInterval
	}
	return &Clock{interval: interval}
}

// Advance adds dt and returns how many ticks are due. At most maxTickBacklog
// ticks are returned; any surplus is dropped.
func (c *Clock) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	c.acc += dt
	n := int(c.acc / c.interval)
	c.acc -= time.Duration(n) * c.interval
	if n > maxTickBacklog {
		n = maxTickBacklog
	}
	return n
}

// Reset drops any accumulated time.
func (c *Clock) Reset() { c.acc = 0 }
