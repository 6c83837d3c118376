package search

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu        sync.Mutex
	fetched   []string
	delivered []string
}

func (r *recorder) fetch(q string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetched = append(r.fetched, q)
	return []string{"result for " + q}, nil
}

func (r *recorder) deliver(q string, _ []string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		r.delivered = append(r.delivered, q)
	}
}

func (r *recorder) snapshot() (fetched, delivered []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.fetched...), append([]string(nil), r.delivered...)
}

func TestBurstFiresOnce(t *testing.T) {
	rec := &recorder{}
	s := NewSuggester(rec.fetch, rec.deliver, WithDelay(30*time.Millisecond))
	defer s.Close()

	for _, q := range []string{"t", "ti", "tin", "tinta"} {
		s.Type(q)
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	fetched, delivered := rec.snapshot()
	if len(fetched) != 1 || fetched[0] != "tinta" {
		t.Fatalf("burst must collapse to one fetch of the last query; got %v", fetched)
	}
	if len(delivered) != 1 || delivered[0] != "tinta" {
		t.Fatalf("delivered = %v", delivered)
	}
}

func TestSeparateBurstsFireSeparately(t *testing.T) {
	rec := &recorder{}
	s := NewSuggester(rec.fetch, rec.deliver, WithDelay(20*time.Millisecond))
	defer s.Close()

	s.Type("tinta")
	time.Sleep(60 * time.Millisecond)
	s.Type("fio")
	time.Sleep(60 * time.Millisecond)

	fetched, _ := rec.snapshot()
	if len(fetched) != 2 || fetched[0] != "tinta" || fetched[1] != "fio" {
		t.Fatalf("fetched = %v", fetched)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	var mu sync.Mutex
	var delivered []string
	release := make(chan struct{})

	first := true
	fetch := func(q string) ([]string, error) {
		mu.Lock()
		slow := first
		first = false
		mu.Unlock()
		if slow {
			<-release
		}
		return []string{q}, nil
	}
	deliver := func(q string, _ []string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err == nil {
			delivered = append(delivered, q)
		}
	}

	s := NewSuggester(fetch, deliver, WithDelay(10*time.Millisecond))
	defer s.Close()

	s.Type("tinta")
	time.Sleep(30 * time.Millisecond)
	// The first fetch is now in flight and blocked. A newer keystroke makes it
	// stale before it settles.
	s.Type("fio")
	time.Sleep(30 * time.Millisecond)
	close(release)
	time.Sleep(30 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(delivered) != 1 || delivered[0] != "fio" {
		t.Fatalf("stale response must be discarded; delivered = %v", delivered)
	}
}

func TestCloseCancelsPending(t *testing.T) {
	rec := &recorder{}
	s := NewSuggester(rec.fetch, rec.deliver, WithDelay(20*time.Millisecond))

	s.Type("tinta")
	s.Close()
	s.Type("fio")
	time.Sleep(60 * time.Millisecond)

	fetched, _ := rec.snapshot()
	if len(fetched) != 0 {
		t.Fatalf("close must cancel the pending fetch; got %v", fetched)
	}
}

func TestFetchErrorStillDelivered(t *testing.T) {
	var mu sync.Mutex
	var gotErr error
	fetch := func(string) ([]string, error) { return nil, errors.New("backend down") }
	deliver := func(_ string, _ []string, err error) {
		mu.Lock()
		gotErr = err
		mu.Unlock()
	}

	s := NewSuggester(fetch, deliver, WithDelay(10*time.Millisecond))
	defer s.Close()

	s.Type("tinta")
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if gotErr == nil {
		t.Fatal("fetch errors must reach the deliver callback")
	}
}
