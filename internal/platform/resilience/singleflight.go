package resilience

import (
	"sync"

	"github.com/sourcegraph/conc/panics"
)

// Group collapses concurrent calls that share a key into one execution.
// A panic inside fn is returned to every waiter as an error.
type Group[V any] struct {
	mu       sync.Mutex
	inflight map[string]*flight[V]
}

type flight[V any] struct {
	done chan struct{}
	val  V
	err  error
}

// Do runs fn once per key at a time. shared is true for callers that
// waited on another caller's execution.
func (g *Group[V]) Do(key string, fn func() (V, error)) (val V, err error, shared bool) {
	g.mu.Lock()
	if g.inflight == nil {
		g.inflight = make(map[string]*flight[V])
	}
	if f, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		<-f.done
		return f.val, f.err, true
	}

	f := &flight[V]{done: make(chan struct{})}
	g.inflight[key] = f
	g.mu.Unlock()

	recovered := panics.Try(func() {
		f.val, f.err = fn()
	})
	if recovered != nil {
		f.err = recovered.AsError()
	}

	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()
	close(f.done)

	return f.val, f.err, false
}
