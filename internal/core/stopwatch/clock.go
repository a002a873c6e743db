package stopwatch

import "time"

// Ticker delivers periodic tick times until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock abstracts time so tests can drive ticks by hand.
type Clock interface {
	Now() time.Time
	NewTicker(interval time.Duration) Ticker
}

// SystemClock is the Clock backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) NewTicker(interval time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(interval)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (ticker *systemTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker *systemTicker) Stop() {
	ticker.ticker.Stop()
}
