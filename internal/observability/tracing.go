package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/match-predictor/internal/config"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

// InitUptrace points the global OpenTelemetry providers at Uptrace. Request
// and use case spans are only exported once this has run.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	dsn := strings.TrimSpace(cfg.UptraceDSN)
	switch {
	case !cfg.UptraceEnabled:
		logger.Info("tracing exporter off", "reason", "UPTRACE_ENABLED=false")
		return noopShutdown, nil
	case dsn == "":
		logger.Warn("tracing exporter off", "reason", "UPTRACE_DSN empty")
		return noopShutdown, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(dsn),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(
			attribute.String("dataset.source", cfg.DatasetSource),
			attribute.Int("prediction.form_window", cfg.FormWindow),
		),
	)
	logger.Info("tracing exporter on", "exporter", "uptrace", "dataset_source", cfg.DatasetSource)

	return uptrace.Shutdown, nil
}

func noopShutdown(context.Context) error { return nil }
