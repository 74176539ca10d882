package render

import "time"

// Pacer schedules frames at a fixed timestep. Each Wait blocks until the
// next deadline, then advances the deadline by one period from its
// scheduled time — never from "now". A persistently slow renderer
// therefore lags without drifting and without catch-up bursts.
type Pacer struct {
	period time.Duration
	next   time.Time
}

// NewPacer creates a pacer for the target frame rate. A rate of zero (or
// negative) disables pacing: Wait returns immediately.
func NewPacer(fps int) *Pacer {
	if fps <= 0 {
		return &Pacer{}
	}
	return &Pacer{period: time.Second / time.Duration(fps)}
}

// Enabled reports whether the pacer throttles at all.
func (p *Pacer) Enabled() bool {
	return p.period > 0
}

// Wait blocks until the next frame deadline and advances it.
func (p *Pacer) Wait() {
	if p.period == 0 {
		return
	}
	if p.next.IsZero() {
		p.next = time.Now()
	}
	time.Sleep(time.Until(p.next))
	p.next = p.next.Add(p.period)
}
