package carousel

import (
	"testing"
	"time"
)

func TestRemainingDecomposition(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second)

	left, expired := Remaining(end, now)
	if expired {
		t.Fatal("future end must not be expired")
	}
	if left.Days != 2 || left.Hours != 3 || left.Minutes != 4 || left.Seconds != 5 {
		t.Fatalf("bad decomposition: %+v", left)
	}
	if got := left.String(); got != "2d 03:04:05" {
		t.Fatalf("got %q", got)
	}
}

func TestRemainingOmitsZeroDays(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	left, _ := Remaining(now.Add(90*time.Minute), now)
	if got := left.String(); got != "01:30:00" {
		t.Fatalf("days field must be omitted when zero; got %q", got)
	}
}

func TestCountdownExpiryBoundary(t *testing.T) {
	clk := newFakeClock()
	end := clk.now().Add(time.Second)
	cd := NewCountdown(end, WithClock(clk.now))

	if cd.Update() {
		t.Fatal("one second out must not be expired yet")
	}
	clk.advance(2 * time.Second)
	if !cd.Update() {
		t.Fatal("past the end time the countdown must report expired")
	}
	if got := cd.Render(); got != "" {
		t.Fatalf("expired countdown must render nothing, got %q", got)
	}
}

func TestCountdownPlaceholderBeforeFirstUpdate(t *testing.T) {
	cd := NewCountdown(time.Now().Add(time.Hour))
	if got := cd.Render(); got != "00:00:00" {
		t.Fatalf("uninitialized countdown must render the neutral placeholder, got %q", got)
	}
}
