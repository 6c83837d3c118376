package carousel

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// TimeLeft is the decomposed remainder of a sale countdown.
type TimeLeft struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// placeholder shown before the clock is read, so the first paint never
// flashes a mismatched value.
const countdownPlaceholder = "00:00:00"

// Remaining decomposes endTime-now. expired is true at or past the end time;
// callers must hide the countdown entirely rather than freeze it at zero.
func Remaining(endTime, now time.Time) (TimeLeft, bool) {
	d := endTime.Sub(now)
	if d <= 0 {
		return TimeLeft{}, true
	}
	secs := int(d / time.Second)
	return TimeLeft{
		Days:    secs / 86400,
		Hours:   secs % 86400 / 3600,
		Minutes: secs % 3600 / 60,
		Seconds: secs % 60,
	}, false
}

// String renders "3d 04:05:06", omitting the days field when zero.
func (t TimeLeft) String() string {
	if t.Days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", t.Days, t.Hours, t.Minutes, t.Seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// Countdown tracks one sale end timestamp at second granularity.
type Countdown struct {
	mu      sync.Mutex
	end     time.Time
	now     func() time.Time
	started bool
	left    TimeLeft
	expired bool
}

func NewCountdown(end time.Time, opts ...Option) *Countdown {
	cfg := settings{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Countdown{end: end, now: cfg.now}
}

// Update recomputes the remainder from the current clock and reports whether
// the countdown has expired.
func (c *Countdown) Update() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left, c.expired = Remaining(c.end, c.now())
	c.started = true
	return c.expired
}

func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expired
}

// Render returns the display text: the neutral placeholder before the first
// Update, and the empty string once expired.
func (c *Countdown) Render() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return countdownPlaceholder
	}
	if c.expired {
		return ""
	}
	return c.left.String()
}

// Run updates every second until the countdown expires or ctx is cancelled,
// invoking onTick after each update. The ticker is always released.
func (c *Countdown) Run(ctx context.Context, onTick func(text string)) {
	tick := func() bool {
		expired := c.Update()
		if onTick != nil {
			onTick(c.Render())
		}
		return expired
	}
	if tick() {
		return
	}
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if tick() {
				return
			}
		}
	}
}
