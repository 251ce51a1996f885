package core

import "time"

// Pacer spaces simulation ticks at a steady generations-per-second rate.
// It is poll-based: callers ask Ready in their own loop and advance the
// simulation when it reports true.
type Pacer struct {
	step    time.Duration
	carry   time.Duration
	last    time.Time
	started bool
}

// NewPacer constructs a Pacer targeting the given ticks per second.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	p.SetTPS(tps)
	p.carry = p.step
	return p
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	p.step = time.Second / time.Duration(tps)
}

// Ready reports whether enough time has passed for one more tick.
func (p *Pacer) Ready() bool {
	now := time.Now()
	if !p.started {
		p.last = now
		p.started = true
	}
	p.carry += now.Sub(p.last)
	p.last = now
	if p.carry < p.step {
		return false
	}
	p.carry -= p.step
	return true
}
