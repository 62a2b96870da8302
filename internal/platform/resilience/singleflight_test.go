package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_DoCollapsesConcurrentCalls(t *testing.T) {
	var g Group[string]
	var counter atomic.Int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, err, _ := g.Do("dataset", func() (string, error) {
				counter.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil || got != "ok" {
				t.Errorf("unexpected result: got=%q err=%v", got, err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := counter.Load(); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestGroup_DoReturnsPanicAsError(t *testing.T) {
	var g Group[int]

	_, err, shared := g.Do("boom", func() (int, error) {
		panic("loader exploded")
	})
	if err == nil {
		t.Fatalf("expected error from panicking call")
	}
	if shared {
		t.Fatalf("first caller must not be marked shared")
	}

	got, err, _ := g.Do("boom", func() (int, error) { return 7, nil })
	if err != nil || got != 7 {
		t.Fatalf("key should be reusable after panic: got=%d err=%v", got, err)
	}
}
