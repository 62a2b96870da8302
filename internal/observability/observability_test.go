package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/match-predictor/internal/config"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
)

func TestSetup_AllDisabled(t *testing.T) {
	cfg := config.Config{
		ServiceName:    "match-predictor-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := Setup(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("setup observability: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown observability: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSN(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	if srv := StartPprofServer(config.Config{}, logging.NewNop()); srv != nil {
		t.Fatalf("expected no pprof server when disabled")
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(context.Background()); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestSetup_PprofServerStopsOnShutdown(t *testing.T) {
	cfg := config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}

	shutdown, err := Setup(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("setup observability: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown observability: %v", err)
	}
}
