package stopwatch

import (
	"sync"
	"testing"
	"time"
)

type fakeTicker struct {
	mu       sync.Mutex
	interval time.Duration
	ch       chan time.Time
	stopped  bool
}

func (ticker *fakeTicker) C() <-chan time.Time {
	return ticker.ch
}

func (ticker *fakeTicker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.stopped = true
}

func (ticker *fakeTicker) isStopped() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.stopped
}

type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) NewTicker(interval time.Duration) Ticker {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	ticker := &fakeTicker{interval: interval, ch: make(chan time.Time)}
	clock.tickers = append(clock.tickers, ticker)
	return ticker
}

func (clock *fakeClock) advance(delta time.Duration) time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(delta)
	return clock.now
}

func (clock *fakeClock) tickerCount() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return len(clock.tickers)
}

func (clock *fakeClock) current() *fakeTicker {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if len(clock.tickers) == 0 {
		return nil
	}
	return clock.tickers[len(clock.tickers)-1]
}

// fire advances the clock and delivers one tick to the newest ticker.
func (clock *fakeClock) fire(t *testing.T, delta time.Duration) {
	t.Helper()
	ticker := clock.current()
	if ticker == nil {
		t.Fatal("no ticker created")
	}
	now := clock.advance(delta)
	select {
	case ticker.ch <- now:
	case <-time.After(time.Second):
		t.Fatal("tick was not consumed")
	}
}

func waitForEvent(t *testing.T, events <-chan Event, eventType EventType) Event {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				t.Fatalf("events closed while waiting for %s", eventType)
			}
			if event.Type == eventType {
				return event
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", eventType)
		}
	}
}
