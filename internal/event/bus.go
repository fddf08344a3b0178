package event

import (
	"sync"

	"github.com/rs/zerolog"
)

// DefaultBuffer is the per-subscriber queue length used when Subscribe gets a non-positive size.
const DefaultBuffer = 16

// Bus is a multicast publish/subscribe channel.
// Delivery is at-most-once to the subscribers present at publish time; nothing is replayed.
type Bus[T any] struct {
	name string
	log  *zerolog.Logger

	mu   sync.RWMutex
	subs map[*Subscription[T]]struct{}
}

// Subscription receives events published after it was created.
type Subscription[T any] struct {
	C <-chan T

	ch   chan T
	bus  *Bus[T]
	once sync.Once
}

// NewBus constructs a bus with no subscribers. The logger may be nil.
func NewBus[T any](name string, logger *zerolog.Logger) *Bus[T] {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Bus[T]{
		name: name,
		log:  logger,
		subs: make(map[*Subscription[T]]struct{}),
	}
}

// Subscribe registers a new subscriber with the given queue length.
func (b *Bus[T]) Subscribe(buffer int) *Subscription[T] {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan T, buffer)
	sub := &Subscription[T]{C: ch, ch: ch, bus: b}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	return sub
}

// Publish delivers ev to every current subscriber.
// A subscriber whose queue is full misses the event.
func (b *Bus[T]) Publish(ev T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		select {
		case sub.ch <- ev:
		default:
			b.log.Warn().Str("bus", b.name).Msg("subscriber queue full, event dropped")
		}
	}
}

// Len returns the number of active subscribers.
func (b *Bus[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Bus[T]) remove(sub *Subscription[T]) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.subs[sub]; !exists {
		return false
	}
	delete(b.subs, sub)
	return true
}

// Events returns the receive side of the subscription.
func (s *Subscription[T]) Events() <-chan T {
	return s.C
}

// Close detaches the subscription and closes C. Safe to call more than once.
func (s *Subscription[T]) Close() {
	s.once.Do(func() {
		// Publish holds the read lock while sending, so after remove returns
		// no sender can still reach ch.
		s.bus.remove(s)
		close(s.ch)
	})
}
