// Package stats accumulates the per-search resource diagnostics the
// routing core reports: current/peak usage counters and running means
// of wall time and peak usage across many set_up calls, grouped by
// search algorithm.
package stats

// Counter tracks a current value and the highest value it has ever
// reached: incremented on every push/insert, decremented on every pop,
// with the peak latched at the running maximum.
type Counter struct {
	cur, max int
}

// Inc increments the current value, updating the peak if exceeded.
func (c *Counter) Inc() {
	c.cur++
	if c.cur > c.max {
		c.max = c.cur
	}
}

// Dec decrements the current value; it never affects the peak.
func (c *Counter) Dec() {
	c.cur--
}

// Cur returns the current value.
func (c *Counter) Cur() int {
	return c.cur
}

// Max returns the highest value Inc has ever produced.
func (c *Counter) Max() int {
	return c.max
}

// Reset zeroes the current value; the peak is left untouched, which
// preserves the lifetime maximum across resets.
func (c *Counter) Reset() {
	c.cur = 0
}

// SetPeak raises the peak directly to n if n exceeds it, without
// disturbing the current value.
func (c *Counter) SetPeak(n int) {
	if n > c.max {
		c.max = n
	}
}
