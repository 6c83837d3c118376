package carousel

import (
	"testing"
	"time"
)

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// fakeClock lets tests steer the cooldown window.
type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time            { return f.t }
func (f *fakeClock) advance(d time.Duration)   { f.t = f.t.Add(d) }
func newFakeClock() *fakeClock                 { return &fakeClock{t: time.Unix(1_700_000_000, 0)} }

func TestWraparoundWithinCappedStops(t *testing.T) {
	c := New(ints(10), 4)

	if got := len(c.Display()); got != 10 {
		t.Fatalf("10 items need no padding; display=%d", got)
	}
	if got := c.NavStops(); got != 7 { // maxIndex=6
		t.Fatalf("want 7 nav stops, got %d", got)
	}

	returns := 0
	for i := 0; i < 9; i++ {
		c.Next()
		cur := c.Current()
		if cur > 6 {
			t.Fatalf("index %d exceeds capped last index 6", cur)
		}
		if cur == 0 {
			returns++
		}
	}
	if returns != 1 {
		t.Fatalf("expected exactly one wraparound to 0 in 9 calls, got %d", returns)
	}
}

func TestNavStopsCappedAtNine(t *testing.T) {
	c := New(ints(30), 4) // maxIndex=26, far beyond the cap
	if got := c.NavStops(); got != 9 {
		t.Fatalf("want cap of 9, got %d", got)
	}
	c.GoTo(25)
	if got := c.Current(); got != 8 {
		t.Fatalf("GoTo must clamp to capped last index 8, got %d", got)
	}
}

func TestSmallNException(t *testing.T) {
	c := New(ints(3), 5)
	if got := len(c.Display()); got != 3 {
		t.Fatalf("short rows must not duplicate; display=%d", got)
	}
	if c.Looping() {
		t.Fatal("short rows must not loop")
	}
	if got := c.NavStops(); got != 0 {
		t.Fatalf("no navigation controls expected, got %d stops", got)
	}
	c.Next()
	c.Prev()
	if c.Tick() {
		t.Fatal("auto-advance must stay inert")
	}
	if c.Current() != 0 {
		t.Fatalf("index must stay at 0, got %d", c.Current())
	}
}

func TestDuplicationToFill(t *testing.T) {
	c := New(ints(4), 5)
	if got := len(c.Display()); got < 10 {
		t.Fatalf("4 items must duplicate to >= visible*2; display=%d", got)
	}
	if !c.Looping() {
		t.Fatal("padded row should loop")
	}
}

func TestEmptyItems(t *testing.T) {
	c := New([]int(nil), 4)
	if got := len(c.Display()); got != 0 {
		t.Fatalf("empty source renders nothing, display=%d", got)
	}
	if c.Looping() || c.Tick() {
		t.Fatal("empty carousel must be inert")
	}
}

func TestPrevWrapsToCappedLast(t *testing.T) {
	c := New(ints(10), 4)
	c.Prev()
	if got := c.Current(); got != 6 {
		t.Fatalf("Prev from 0 must wrap to capped last 6, got %d", got)
	}
}

func TestAutoAdvancePauseAndCooldown(t *testing.T) {
	clk := newFakeClock()
	c := New(ints(10), 4, WithClock(clk.now), WithCooldown(8*time.Second))

	if !c.Tick() {
		t.Fatal("free-running carousel should auto-advance")
	}

	c.SetHovered(true)
	if c.Tick() {
		t.Fatal("hover must suspend auto-advance")
	}
	c.SetHovered(false)

	c.TouchStart(100)
	if c.Tick() {
		t.Fatal("active touch must suspend auto-advance")
	}
	c.TouchMove(95)
	c.TouchEnd() // 5px, below threshold: no navigation

	// Manual navigation opens the cooldown window.
	c.Next()
	if c.Tick() {
		t.Fatal("cooldown after manual nav must suspend auto-advance")
	}
	clk.advance(4 * time.Second)
	if c.Tick() {
		t.Fatal("cooldown not elapsed yet")
	}
	// A second manual action resets the clock.
	c.Next()
	clk.advance(5 * time.Second)
	if c.Tick() {
		t.Fatal("cooldown must restart on each manual action")
	}
	clk.advance(4 * time.Second)
	if !c.Tick() {
		t.Fatal("auto-advance should resume after the cooldown")
	}
}

func TestSwipeGestures(t *testing.T) {
	c := New(ints(10), 4)

	c.TouchStart(200)
	c.TouchMove(160)
	c.TouchEnd() // left swipe, 40px
	if got := c.Current(); got != 1 {
		t.Fatalf("left swipe must advance, got %d", got)
	}

	c.TouchStart(100)
	c.TouchMove(150)
	c.TouchEnd() // right swipe
	if got := c.Current(); got != 0 {
		t.Fatalf("right swipe must retreat, got %d", got)
	}

	c.TouchStart(100)
	c.TouchMove(110)
	c.TouchEnd() // 10px, under the 30px threshold
	if got := c.Current(); got != 0 {
		t.Fatalf("sub-threshold swipe must not navigate, got %d", got)
	}
}

func TestOffset(t *testing.T) {
	c := New(ints(10), 4)
	c.GoTo(3)
	if got := c.Offset(296); got != 888 {
		t.Fatalf("offset = index*itemWidth; got %v", got)
	}
}
