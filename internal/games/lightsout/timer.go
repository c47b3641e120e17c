package lightsout

import "time"

// Timer counts whole seconds for one run. It does not schedule itself: the
// owner feeds it elapsed wall time through Advance from the loop that drives
// the game.
type Timer struct {
	running bool
	carry   time.Duration
}

// Start (re)starts the timer from zero.
func (t *Timer) Start() {
	t.running = true
	t.carry = 0
}

// Stop halts the timer and drops any partial second.
func (t *Timer) Stop() {
	t.running = false
	t.carry = 0
}

// Running reports whether the timer is started.
func (t *Timer) Running() bool {
	return t.running
}

// Advance adds d to the running timer and returns how many whole seconds
// completed. A stopped timer always returns 0.
func (t *Timer) Advance(d time.Duration) int {
	if !t.running || d <= 0 {
		return 0
	}
	t.carry += d
	n := int(t.carry / time.Second)
	t.carry -= time.Duration(n) * time.Second
	return n
}
