package app

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDebouncerBurstFiresOnce(t *testing.T) {
	const delay = 50 * time.Millisecond
	d := Debouncer{Delay: delay}

	var (
		mu    sync.Mutex
		fired []string
	)
	record := func(text string) func() {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			fired = append(fired, text)
		}
	}

	// Keystroke burst, each well inside the delay of the previous one.
	var timer *time.Timer
	for _, text := range []string{"i", "ip", "iph", "ipho"} {
		timer = d.Schedule(timer, record(text))
		time.Sleep(delay / 5)
	}

	time.Sleep(2 * delay)

	mu.Lock()
	defer mu.Unlock()
	if len(fired) != 1 {
		t.Fatalf("expected exactly one call, got %d: %v", len(fired), fired)
	}
	if fired[0] != "ipho" {
		t.Fatalf("expected last burst text %q, got %q", "ipho", fired[0])
	}
}

func TestDebouncerSpacedTriggersAllFire(t *testing.T) {
	const delay = 20 * time.Millisecond
	d := Debouncer{Delay: delay}

	var (
		mu    sync.Mutex
		count int
	)
	fn := func() {
		mu.Lock()
		defer mu.Unlock()
		count++
	}

	var timer *time.Timer
	for i := 0; i < 3; i++ {
		timer = d.Schedule(timer, fn)
		time.Sleep(3 * delay)
	}

	mu.Lock()
	defer mu.Unlock()
	if count != 3 {
		t.Fatalf("expected 3 calls, got %d", count)
	}
}

func TestDebouncerStoppedHandleNeverFires(t *testing.T) {
	const delay = 30 * time.Millisecond
	d := Debouncer{Delay: delay}

	var (
		mu    sync.Mutex
		count int
	)
	timer := d.Schedule(nil, func() {
		mu.Lock()
		defer mu.Unlock()
		count++
	})
	timer.Stop()

	time.Sleep(2 * delay)

	mu.Lock()
	defer mu.Unlock()
	if count != 0 {
		t.Fatalf("stopped timer fired %d times", count)
	}
}
