package ringfield

import (
	"sync"
	"testing"
	"time"
)

// stepClock advances by a fixed step every time it is read.
type stepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}

func waitTicks(t *testing.T, l *Loop, n uint64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for l.Ticks() < n {
		if time.Now().After(deadline) {
			t.Fatalf("ticks = %d after 2s, want %d", l.Ticks(), n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestLoopDefaultInterval(t *testing.T) {
	l := NewLoop(0, func(float64) {})
	if l.interval != time.Second/60 {
		t.Errorf("interval = %v, want %v", l.interval, time.Second/60)
	}
}

func TestLoopTicksAndStops(t *testing.T) {
	var mu sync.Mutex
	var dts []float64
	l := NewLoop(time.Millisecond, func(dt float64) {
		mu.Lock()
		dts = append(dts, dt)
		mu.Unlock()
	})
	l.SetClock(&stepClock{step: 20 * time.Millisecond})
	l.Start()
	l.Start() // idempotent
	waitTicks(t, l, 3)
	if !l.Running() {
		t.Error("Running() = false while ticking")
	}

	l.Stop()
	if l.Running() {
		t.Error("Running() = true after Stop")
	}
	ticks := l.Ticks()
	time.Sleep(10 * time.Millisecond)
	if l.Ticks() != ticks {
		t.Errorf("ticks advanced after Stop: %d -> %d", ticks, l.Ticks())
	}

	mu.Lock()
	defer mu.Unlock()
	for i, dt := range dts {
		if !approxEqual(dt, 0.02, 1e-9) {
			t.Errorf("dt[%d] = %v, want 0.02", i, dt)
		}
	}
}

func TestLoopClampsStall(t *testing.T) {
	got := make(chan float64, 1)
	l := NewLoop(time.Millisecond, func(dt float64) {
		select {
		case got <- dt:
		default:
		}
	})
	l.SetClock(&stepClock{step: 5 * time.Second})
	l.Start()
	defer l.Stop()

	select {
	case dt := <-got:
		if dt != maxTickDelta {
			t.Errorf("dt = %v, want %v", dt, maxTickDelta)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no tick")
	}
}

func TestLoopCancelBeforeStart(t *testing.T) {
	called := false
	l := NewLoop(time.Millisecond, func(float64) { called = true })
	l.Cancel()
	l.Start()
	select {
	case <-l.Done():
	case <-time.After(time.Second):
		t.Fatal("Done not closed")
	}
	l.Stop()
	if called || l.Ticks() != 0 {
		t.Error("cancelled loop ticked")
	}
}

func TestLoopCancelFromTick(t *testing.T) {
	var l *Loop
	l = NewLoop(time.Millisecond, func(float64) { l.Cancel() })
	l.Start()
	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit after Cancel from tick")
	}
	if got := l.Ticks(); got != 1 {
		t.Errorf("ticks = %d, want 1", got)
	}
}
