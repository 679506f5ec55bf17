package tui

import "time"

// repeatGauge measures how quickly the same navigation key repeats so held
// buttons accelerate. Presses further apart than the interval reset the
// count.
type repeatGauge struct {
	interval time.Duration

	key  string
	last time.Time
	runs int
}

func newRepeatGauge(interval time.Duration) *repeatGauge {
	if interval <= 0 {
		interval = 150 * time.Millisecond
	}
	return &repeatGauge{interval: interval}
}

// bump records a press of key and returns the current run length.
func (g *repeatGauge) bump(key string, now time.Time) int {
	if key != g.key || now.Sub(g.last) > g.interval {
		g.key = key
		g.runs = 0
	}
	g.runs++
	g.last = now
	return g.runs
}

// stepFor converts a run length into a cursor step: movement speeds up the
// longer a direction is held, bounded so a jump never exceeds a page.
func stepFor(base, runs, pageSize int) int {
	if base < 1 {
		base = 1
	}
	step := base
	if runs > 8 {
		step = base * 4
	} else if runs > 4 {
		step = base * 2
	}
	if pageSize > 0 && step > pageSize {
		step = pageSize
	}
	return step
}
