package engine

import (
	"testing"
	"time"
)

func TestClockAdvance(t *testing.T) {
	c := NewClock(150 * time.Millisecond)

	if n := c.Advance(100 * time.Millisecond); n != 0 {
		t.Errorf("Expected 0 ticks, got %d", n)
	}
	if n := c.Advance(60 * time.Millisecond); n != 1 {
		t.Errorf("Expected 1 tick, got %d", n)
	}
	if n := c.Advance(140 * time.Millisecond); n != 1 {
		t.Errorf("Expected 1 tick from carried remainder, got %d", n)
	}
	if n := c.Advance(0); n != 0 {
		t.Errorf("Expected 0 ticks for zero dt, got %d", n)
	}
}

func TestClockCapsBacklog(t *testing.T) {
	c := NewClock(150 * time.Millisecond)

	if n := c.Advance(10 * time.Second); n != maxTickBacklog {
		t.Errorf("Expected %d ticks, got %d", maxTickBacklog, n)
	}
	// 10s = 66 ticks + 100ms remainder; 50ms more completes one tick.
	if n := c.Advance(50 * time.Millisecond); n != 1 {
		t.Errorf("Expected 1 tick after backlog, got %d", n)
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(0)
	c.Advance(TickInterval - time.Millisecond)
	c.Reset()

	if n := c.Advance(time.Millisecond); n != 0 {
		t.Errorf("Expected accumulator cleared, got %d ticks", n)
	}
}
