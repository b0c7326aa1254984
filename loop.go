package ringfield

import (
	"sync"
	"sync/atomic"
	"time"
)

// maxTickDelta caps the dt reported after a stall so a paused process does
// not fast-forward the animation.
const maxTickDelta = 0.1

// Clock provides the current time. Tests substitute a controllable clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// TickFunc receives the seconds elapsed since the previous tick.
type TickFunc func(dt float64)

// Loop is a cancellable repeating task. It calls its TickFunc on a dedicated
// goroutine at a fixed interval, one tick at a time. Once cancelled it never
// ticks again.
type Loop struct {
	interval time.Duration
	tick     TickFunc
	clock    Clock

	ticks   atomic.Uint64
	running atomic.Bool
	started atomic.Bool

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewLoop creates a stopped loop. A non-positive interval defaults to 60Hz.
func NewLoop(interval time.Duration, tick TickFunc) *Loop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Loop{
		interval: interval,
		tick:     tick,
		clock:    systemClock{},
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// SetClock replaces the clock used to measure tick deltas. Must be called
// before Start.
func (l *Loop) SetClock(c Clock) {
	l.clock = c
}

// Start begins ticking. Calling Start more than once, or after Cancel, does
// nothing.
func (l *Loop) Start() {
	if !l.started.CompareAndSwap(false, true) {
		return
	}
	select {
	case <-l.stopChan:
		close(l.done)
		return
	default:
	}
	l.running.Store(true)
	go l.run()
}

// Cancel requests the loop to stop without waiting. A tick already running
// completes; no further tick starts.
func (l *Loop) Cancel() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

// Stop cancels the loop and waits for its goroutine to exit. It must not be
// called from inside the TickFunc.
func (l *Loop) Stop() {
	l.Cancel()
	if l.started.Load() {
		<-l.done
	}
}

// Done is closed once the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Running reports whether the loop goroutine is active.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Ticks returns the number of completed ticks.
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}

func (l *Loop) run() {
	defer close(l.done)
	defer l.running.Store(false)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := l.clock.Now()
	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
		}

		// Cancellation wins over a tick that became ready at the same time.
		select {
		case <-l.stopChan:
			return
		default:
		}

		now := l.clock.Now()
		dt := now.Sub(last).Seconds()
		last = now
		if dt < 0 {
			dt = 0
		} else if dt > maxTickDelta {
			dt = maxTickDelta
		}

		l.tick(dt)
		l.ticks.Add(1)
	}
}
