// Package debounce delays propagation of a rapidly changing value until it has
// been stable for a fixed quiescent interval.
//
// Only the final value of a burst is ever delivered, and only if it differs
// from the value delivered last. Stop cancels any pending delivery; once Stop
// returns the callback is never invoked again.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delivers the latest value passed to Set after no further Set
// changed it for the configured interval.
type Debouncer[T comparable] struct {
	interval time.Duration
	fn       func(T)

	// emitMu is held while fn runs so Stop can wait for an in-flight delivery.
	emitMu sync.Mutex

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending bool
	next    T
	last    T
	stopped bool
}

// New returns a Debouncer calling fn with each settled value. fn runs on a
// timer goroutine and must not call Stop. interval must be positive.
func New[T comparable](interval time.Duration, fn func(T)) *Debouncer[T] {
	if interval <= 0 {
		panic("debounce: interval must be positive")
	}
	return &Debouncer[T]{interval: interval, fn: fn}
}

// Set records v as the latest input and restarts the quiescence timer.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.pending && v == d.next {
		return
	}
	if !d.pending && v == d.last {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.next = v
	d.pending = true
	d.timer = time.AfterFunc(d.interval, func() { d.fire(gen) })
}

// Value returns the last delivered value.
func (d *Debouncer[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

func (d *Debouncer[T]) isPending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Reset drops any pending value and records v as delivered without calling
// fn. Like Stop, it waits for a delivery already running to return.
func (d *Debouncer[T]) Reset(v T) {
	d.mu.Lock()
	d.gen++
	d.pending = false
	d.last = v
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.emitMu.Lock()
	d.emitMu.Unlock()
}

// Stop cancels the pending delivery and disables the Debouncer. It blocks
// until a delivery already running on the timer goroutine has returned.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.emitMu.Lock()
	d.emitMu.Unlock()
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.emitMu.Lock()
	defer d.emitMu.Unlock()

	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.pending = false
	v := d.next
	if v == d.last {
		d.mu.Unlock()
		return
	}
	d.last = v
	d.mu.Unlock()

	d.fn(v)
}
