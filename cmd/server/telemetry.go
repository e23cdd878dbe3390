package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"halorun-backend/internal/components/telemetry"
	"halorun-backend/lib/util/serviceutil"
)

// InitTelemetry sets up logging, otel export (only when a telemetry.json5 exists) and
// perf stats. The returned function flushes the exporters.
func InitTelemetry(ctx context.Context, verbose bool) func() {
	telemetry.InitSlog(verbose)

	t, err := telemetry.SetupOtelFromEnv(ctx, "halorun")
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("no telemetry.json5 found, otel export disabled")
		return func() {}
	}
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	telemetry.InstrumentPerfStats(ctx)

	return func() {
		err := t.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shutdown telemetry", "err", err.Error())
		}
	}
}
