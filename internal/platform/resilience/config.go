package resilience

import "time"

type BreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenTrials   int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		HalfOpenTrials:   1,
	}
}

// Normalize fills unset numeric fields from the defaults.
func (c BreakerConfig) Normalize() BreakerConfig {
	defaults := DefaultBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	if c.HalfOpenTrials < 1 {
		c.HalfOpenTrials = defaults.HalfOpenTrials
	}
	return c
}

// NewBreaker returns nil when the breaker is disabled. A nil *Breaker
// allows every call.
func (c BreakerConfig) NewBreaker() *Breaker {
	if !c.Enabled {
		return nil
	}
	c = c.Normalize()
	return NewBreaker(c.FailureThreshold, c.OpenTimeout, c.HalfOpenTrials)
}
