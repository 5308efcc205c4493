package domain

import "github.com/jonboulle/clockwork"

// clock is a package-level time source so tests can freeze time via SetClock.
// The forecast-horizon gate compares game dates against this clock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for the engine. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
