package event

import (
	"sync"
	"sync/atomic"
	"time"
)

// Bus fans triggers out to subscribers.
//
// Publish never blocks the caller: triggers are queued on a buffered
// channel and delivered by a single bus-owned goroutine. When the
// buffer is full the trigger is dropped and counted, which is the right
// trade for key presses — a stale press is worthless by the time the
// queue drains.
type Bus struct {
	mu sync.RWMutex

	// Global subscribers receive every trigger.
	global map[uint64]Handler

	// Action subscribers receive triggers for one action id.
	byAction map[string]map[uint64]Handler

	nextID uint64
	closed bool

	buffer chan Trigger
	done   chan struct{}
	wg     sync.WaitGroup

	published atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64
}

// Subscription is an active bus subscription.
type Subscription struct {
	id     uint64
	action string
	bus    *Bus
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.bus != nil {
		s.bus.unsubscribe(s.id, s.action)
	}
}

// Option configures a Bus.
type Option func(*Bus)

// WithBuffer sets the trigger queue depth.
func WithBuffer(size int) Option {
	return func(b *Bus) {
		if size > 0 {
			b.buffer = make(chan Trigger, size)
		}
	}
}

// NewBus creates a started bus.
func NewBus(opts ...Option) *Bus {
	b := &Bus{
		global:   make(map[uint64]Handler),
		byAction: make(map[string]map[uint64]Handler),
		buffer:   make(chan Trigger, 64),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.wg.Add(1)
	go b.deliverLoop()

	return b
}

// Subscribe registers a handler for every trigger.
func (b *Bus) Subscribe(fn Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.global[id] = fn

	return &Subscription{id: id, bus: b}
}

// SubscribeAction registers a handler for one action id.
func (b *Bus) SubscribeAction(action string, fn Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	if b.byAction[action] == nil {
		b.byAction[action] = make(map[uint64]Handler)
	}
	b.byAction[action][id] = fn

	return &Subscription{id: id, action: action, bus: b}
}

// Publish queues a trigger for delivery. Safe to call from any
// goroutine, including OS callback goroutines. Publishing to a closed
// bus is a silent no-op.
func (b *Bus) Publish(t Trigger) {
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return
	}

	if t.Time.IsZero() {
		t.Time = time.Now()
	}

	b.published.Add(1)
	select {
	case b.buffer <- t:
	default:
		b.dropped.Add(1)
	}
}

// Close stops delivery. Buffered triggers are drained before Close
// returns. Safe to call more than once.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	close(b.done)
	b.wg.Wait()
}

// Stats reports bus counters.
func (b *Bus) Stats() (published, delivered, dropped uint64) {
	return b.published.Load(), b.delivered.Load(), b.dropped.Load()
}

func (b *Bus) unsubscribe(id uint64, action string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.global, id)
	if subs, ok := b.byAction[action]; ok {
		delete(subs, id)
		if len(subs) == 0 {
			delete(b.byAction, action)
		}
	}
}

func (b *Bus) deliverLoop() {
	defer b.wg.Done()

	for {
		select {
		case t := <-b.buffer:
			b.deliver(t)
		case <-b.done:
			for {
				select {
				case t := <-b.buffer:
					b.deliver(t)
				default:
					return
				}
			}
		}
	}
}

func (b *Bus) deliver(t Trigger) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.global)+4)
	for _, fn := range b.global {
		handlers = append(handlers, fn)
	}
	for _, fn := range b.byAction[t.Action] {
		handlers = append(handlers, fn)
	}
	b.mu.RUnlock()

	// Handlers run outside the lock so they may subscribe/unsubscribe.
	for _, fn := range handlers {
		fn(t)
	}
	b.delivered.Add(uint64(len(handlers)))
}
