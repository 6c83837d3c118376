// Package search debounces the suggestion box: at most one fetch fires per
// burst of keystrokes, and only the newest query's results are ever
// delivered.
package search

import (
	"sync"
	"time"
)

const DefaultDelay = 300 * time.Millisecond

// Suggester debounces keystrokes and discards stale responses. Every issued
// request carries a monotonic sequence number; a response is dropped unless
// its sequence is still the latest when it settles.
type Suggester[T any] struct {
	mu      sync.Mutex
	fetch   func(query string) (T, error)
	deliver func(query string, results T, err error)
	delay   time.Duration
	seq     uint64
	timer   *time.Timer
	closed  bool
}

func NewSuggester[T any](fetch func(string) (T, error), deliver func(string, T, error), opts ...Option) *Suggester[T] {
	cfg := options{delay: DefaultDelay}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Suggester[T]{fetch: fetch, deliver: deliver, delay: cfg.delay}
}

type Option func(*options)

type options struct{ delay time.Duration }

// WithDelay overrides the debounce window.
func WithDelay(d time.Duration) Option { return func(o *options) { o.delay = d } }

// Type records a keystroke. The fetch fires once the debounce window passes
// with no further keystrokes.
func (s *Suggester[T]) Type(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.seq++
	seq := s.seq
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() { s.run(seq, query) })
}

func (s *Suggester[T]) run(seq uint64, query string) {
	s.mu.Lock()
	if s.closed || seq != s.seq {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	results, err := s.fetch(query)

	s.mu.Lock()
	stale := s.closed || seq != s.seq
	s.mu.Unlock()
	if stale {
		return
	}
	s.deliver(query, results, err)
}

// Close cancels any pending fetch; later keystrokes are ignored.
func (s *Suggester[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
