// Package carousel implements the index/animation logic shared by every
// scrolling row of cards: duplication-to-fill, wraparound navigation with a
// bounded indicator count, auto-advance with pause-on-interaction, and touch
// swipe.
package carousel

import (
	"context"
	"sync"
	"time"
)

const (
	// MaxNavStops caps the number of navigation indicators; once the stops
	// are exhausted the carousel wraps to 0 even if more distinct scroll
	// offsets would exist.
	MaxNavStops = 9

	// minLoopItems is the small-N exception: rows with fewer source items
	// render the raw list without looping or controls.
	minLoopItems = 4

	DefaultInterval       = 4 * time.Second
	DefaultCooldown       = 8 * time.Second
	DefaultSwipeThreshold = 30.0
)

type Option func(*settings)

type settings struct {
	interval       time.Duration
	cooldown       time.Duration
	swipeThreshold float64
	now            func() time.Time
}

// WithInterval sets the auto-advance period.
func WithInterval(d time.Duration) Option { return func(s *settings) { s.interval = d } }

// WithCooldown sets how long auto-advance stays suspended after a manual
// navigation.
func WithCooldown(d time.Duration) Option { return func(s *settings) { s.cooldown = d } }

// WithSwipeThreshold sets the horizontal distance that counts as a swipe.
func WithSwipeThreshold(px float64) Option { return func(s *settings) { s.swipeThreshold = px } }

// WithClock injects the time source, for tests.
func WithClock(now func() time.Time) Option { return func(s *settings) { s.now = now } }

// Carousel owns the state of one card row. All methods are safe for
// concurrent use; the zero value is not usable, construct with New.
type Carousel[T any] struct {
	mu      sync.Mutex
	items   []T
	display []T
	visible int
	current int

	hovered  bool
	touching bool
	resumeAt time.Time

	touchStartX float64
	touchLastX  float64

	cfg settings
}

func New[T any](items []T, visible int, opts ...Option) *Carousel[T] {
	if visible < 1 {
		visible = 1
	}
	cfg := settings{
		interval:       DefaultInterval,
		cooldown:       DefaultCooldown,
		swipeThreshold: DefaultSwipeThreshold,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Carousel[T]{items: items, visible: visible, cfg: cfg}
	c.display = buildDisplayList(items, visible)
	return c
}

// buildDisplayList repeats a short item list until it covers visible*2 slots,
// guaranteeing smooth wraparound. Rows below the small-N floor are rendered
// as-is and never loop.
func buildDisplayList[T any](items []T, visible int) []T {
	if len(items) == 0 {
		return nil
	}
	if len(items) < minLoopItems {
		return items
	}
	min := visible * 2
	display := items
	for len(display) < min {
		display = append(display[:len(display):len(display)], items...)
	}
	return display
}

// Display returns the padded item list to render.
func (c *Carousel[T]) Display() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.display
}

// Looping reports whether navigation and auto-advance are active at all.
func (c *Carousel[T]) Looping() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.looping()
}

func (c *Carousel[T]) looping() bool {
	return len(c.items) >= minLoopItems && len(c.display) > c.visible
}

func (c *Carousel[T]) maxIndex() int {
	m := len(c.display) - c.visible
	if m < 0 {
		return 0
	}
	return m
}

// NavStops is the indicator count: min(maxIndex+1, 9).
func (c *Carousel[T]) NavStops() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.looping() {
		return 0
	}
	stops := c.maxIndex() + 1
	if stops > MaxNavStops {
		stops = MaxNavStops
	}
	return stops
}

// cappedLast is the last reachable index for both auto and manual navigation.
func (c *Carousel[T]) cappedLast() int {
	stops := c.maxIndex() + 1
	if stops > MaxNavStops {
		stops = MaxNavStops
	}
	return stops - 1
}

func (c *Carousel[T]) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Offset is the track translation for the current index.
func (c *Carousel[T]) Offset(itemWidth float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float64(c.current) * itemWidth
}

// Next advances with wraparound at the capped last index. Manual navigation
// suspends auto-advance for the cooldown window.
func (c *Carousel[T]) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.looping() {
		return
	}
	c.advance()
	c.resumeAt = c.cfg.now().Add(c.cfg.cooldown)
}

// Prev retreats with wraparound to the capped last index from 0.
func (c *Carousel[T]) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.looping() {
		return
	}
	if c.current <= 0 {
		c.current = c.cappedLast()
	} else {
		c.current--
	}
	c.resumeAt = c.cfg.now().Add(c.cfg.cooldown)
}

// GoTo clamps the target to [0, cappedLast].
func (c *Carousel[T]) GoTo(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.looping() {
		return
	}
	if index < 0 {
		index = 0
	}
	if last := c.cappedLast(); index > last {
		index = last
	}
	c.current = index
	c.resumeAt = c.cfg.now().Add(c.cfg.cooldown)
}

func (c *Carousel[T]) advance() {
	if c.current >= c.cappedLast() {
		c.current = 0
	} else {
		c.current++
	}
}

// Tick attempts one auto-advance step and reports whether the index moved.
// It is a no-op while hovered or touched, during the post-interaction
// cooldown, and on non-looping rows.
func (c *Carousel[T]) Tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.looping() || c.hovered || c.touching {
		return false
	}
	if c.cfg.now().Before(c.resumeAt) {
		return false
	}
	c.advance()
	return true
}

// SetHovered pauses auto-advance while a pointer rests on the row.
func (c *Carousel[T]) SetHovered(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hovered = v
}

// TouchStart begins gesture tracking and pauses auto-advance.
func (c *Carousel[T]) TouchStart(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touching = true
	c.touchStartX = x
	c.touchLastX = x
}

func (c *Carousel[T]) TouchMove(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.touching {
		c.touchLastX = x
	}
}

// TouchEnd finishes the gesture: a left swipe past the threshold advances,
// a right swipe retreats.
func (c *Carousel[T]) TouchEnd() {
	c.mu.Lock()
	if !c.touching {
		c.mu.Unlock()
		return
	}
	c.touching = false
	distance := c.touchStartX - c.touchLastX
	threshold := c.cfg.swipeThreshold
	c.mu.Unlock()

	switch {
	case distance > threshold:
		c.Next()
	case distance < -threshold:
		c.Prev()
	}
}

// Run drives auto-advance on a ticker until ctx is cancelled, invoking
// onChange with the new index after each advance. The ticker is always
// released on return.
func (c *Carousel[T]) Run(ctx context.Context, onChange func(index int)) {
	ticker := time.NewTicker(c.cfg.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.Tick() && onChange != nil {
				onChange(c.Current())
			}
		}
	}
}
