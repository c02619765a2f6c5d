// Package store holds observable values. A Store notifies its subscribers
// synchronously every time its value is replaced.
//
// Stores are owned by a single event loop and are not safe for concurrent use.
package store

// Store holds a value of type T and a list of subscribers.
type Store[T any] struct {
	value T

	subs   []*Subscription
	nextID int

	// notifying is set while subscribers are being called. Writes that happen
	// during that window are delivered after the current pass.
	notifying bool
	pending   int
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	id    int
	fn    func()
	store interface{ remove(int) }
}

// New returns a store holding initial.
func New[T any](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// Read returns the current value.
func (s *Store[T]) Read() T {
	return s.value
}

// Write replaces the value and calls every subscriber in registration order.
// A Write made from inside a subscriber replaces the value at once, but its
// notification is queued until the running pass finishes.
func (s *Store[T]) Write(v T) {
	s.value = v
	if s.notifying {
		s.pending++
		return
	}

	s.notifying = true
	defer func() { s.notifying = false }()

	s.notify()
	for s.pending > 0 {
		s.pending--
		s.notify()
	}
}

func (s *Store[T]) notify() {
	// snapshot so Unsubscribe during a pass does not shift the slice under us
	subs := make([]*Subscription, len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		if sub.fn != nil {
			sub.fn()
		}
	}
}

// Subscribe registers fn. Subscribers receive no arguments and should call
// Read to see the new value.
func (s *Store[T]) Subscribe(fn func()) *Subscription {
	s.nextID++
	sub := &Subscription{id: s.nextID, fn: fn, store: s}
	s.subs = append(s.subs, sub)
	return sub
}

// Subscribers returns the number of registered subscribers.
func (s *Store[T]) Subscribers() int {
	return len(s.subs)
}

func (s *Store[T]) remove(id int) {
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// Unsubscribe removes the subscriber. Calling it more than once is a no-op.
func (sub *Subscription) Unsubscribe() {
	if sub == nil || sub.store == nil {
		return
	}
	sub.store.remove(sub.id)
	sub.fn = nil
	sub.store = nil
}
