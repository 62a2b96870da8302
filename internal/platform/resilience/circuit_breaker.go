package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

// Breaker trips after consecutive failures and lets a limited number of
// trials through once the open timeout passes.
type Breaker struct {
	mu sync.Mutex

	threshold   int
	openTimeout time.Duration
	trials      int

	state    State
	failures int
	openedAt time.Time
	inFlight int
	passed   int
	now      func() time.Time
}

func NewBreaker(threshold int, openTimeout time.Duration, trials int) *Breaker {
	return &Breaker{
		threshold:   max(threshold, 1),
		openTimeout: openTimeout,
		trials:      max(trials, 1),
		state:       StateClosed,
		now:         time.Now,
	}
}

// Execute runs fn when the breaker allows it and records the outcome.
func (b *Breaker) Execute(fn func() error) error {
	if err := b.Allow(); err != nil {
		return err
	}
	if err := fn(); err != nil {
		b.RecordFailure()
		return err
	}
	b.RecordSuccess()
	return nil
}

func (b *Breaker) Allow() error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refresh()
	switch b.state {
	case StateOpen:
		return ErrCircuitOpen
	case StateHalfOpen:
		if b.inFlight >= b.trials {
			return ErrCircuitOpen
		}
		b.inFlight++
	}
	return nil
}

func (b *Breaker) RecordSuccess() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateHalfOpen {
		b.failures = 0
		return
	}
	b.inFlight = max(b.inFlight-1, 0)
	b.passed++
	if b.passed >= b.trials && b.inFlight == 0 {
		b.set(StateClosed)
	}
}

func (b *Breaker) RecordFailure() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	if b.state == StateHalfOpen || b.failures >= b.threshold {
		b.set(StateOpen)
	}
}

func (b *Breaker) State() State {
	if b == nil {
		return StateClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refresh()
	return b.state
}

// refresh moves an expired open breaker to half-open. Caller holds mu.
func (b *Breaker) refresh() {
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.openTimeout {
		b.set(StateHalfOpen)
	}
}

func (b *Breaker) set(state State) {
	b.state = state
	b.inFlight = 0
	b.passed = 0
	switch state {
	case StateOpen:
		b.openedAt = b.now()
	case StateClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	}
}
