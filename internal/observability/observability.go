package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/match-predictor/internal/config"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
)

type stopFunc func(context.Context) error

// Setup starts whatever of tracing, pyroscope and pprof the config enables.
// The returned func stops them in reverse start order.
func Setup(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var stops []stopFunc
	shutdown := func(ctx context.Context) error {
		errs := make([]error, 0, len(stops))
		for i := len(stops) - 1; i >= 0; i-- {
			errs = append(errs, stops[i](ctx))
		}
		return errors.Join(errs...)
	}

	stop, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}
	stops = append(stops, stop)

	stop, err = InitPyroscope(cfg, logger)
	if err != nil {
		_ = shutdown(context.Background())
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}
	stops = append(stops, stop)

	if srv := StartPprofServer(cfg, logger); srv != nil {
		stops = append(stops, srv.Shutdown)
	}
	return shutdown, nil
}
