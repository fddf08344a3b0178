package event

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBusMulticast(t *testing.T) {
	bus := NewBus[int]("test", nil)

	a := bus.Subscribe(4)
	b := bus.Subscribe(4)
	defer a.Close()
	defer b.Close()

	bus.Publish(7)

	for name, sub := range map[string]*Subscription[int]{"a": a, "b": b} {
		select {
		case v := <-sub.C:
			if v != 7 {
				t.Fatalf("subscriber %s: expected 7, got %d", name, v)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %s: event not received", name)
		}
	}
}

func TestBusNoReplayForLateSubscriber(t *testing.T) {
	bus := NewBus[string]("test", nil)

	bus.Publish("early")

	late := bus.Subscribe(1)
	defer late.Close()

	select {
	case v := <-late.C:
		t.Fatalf("late subscriber should not see %q", v)
	default:
	}
}

func TestBusDropsWhenQueueFull(t *testing.T) {
	bus := NewBus[int]("test", nil)
	sub := bus.Subscribe(1)
	defer sub.Close()

	bus.Publish(1)
	bus.Publish(2)

	if v := <-sub.C; v != 1 {
		t.Fatalf("expected first event, got %d", v)
	}
	select {
	case v := <-sub.C:
		t.Fatalf("expected second event to be dropped, got %d", v)
	default:
	}
}

func TestSubscriptionCloseIsIdempotent(t *testing.T) {
	bus := NewBus[int]("test", nil)
	sub := bus.Subscribe(1)

	sub.Close()
	sub.Close()

	if bus.Len() != 0 {
		t.Fatalf("expected no subscribers, got %d", bus.Len())
	}
	if _, ok := <-sub.C; ok {
		t.Fatalf("expected closed channel")
	}

	// Publishing after close must not panic.
	bus.Publish(1)
}

func TestBusConcurrentPublish(t *testing.T) {
	const publishers = 8
	const perPublisher = 50

	bus := NewBus[int]("test", nil)
	sub := bus.Subscribe(publishers * perPublisher)
	defer sub.Close()

	var wg sync.WaitGroup
	for p := 0; p < publishers; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perPublisher; i++ {
				bus.Publish(base*perPublisher + i)
			}
		}(p)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for i := 0; i < publishers*perPublisher; i++ {
		v := <-sub.C
		if seen[v] {
			t.Fatalf("event %d delivered twice", v)
		}
		seen[v] = true
	}
}
