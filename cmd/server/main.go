package main

import (
	"flag"

	"halorun-backend/internal/components/telemetry"
	"halorun-backend/internal/config"
	"halorun-backend/internal/scrapers/waypoint"
	"halorun-backend/internal/service"
	"halorun-backend/internal/servicerecords"
	"halorun-backend/lib/util/serviceutil"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	configPath := flag.String("config", "config.json5", "specify the path to a config file")
	envPath := flag.String("env", ".env", "specify the path to a dotenv file")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	shutdown := InitTelemetry(ctx, *verbose)
	defer shutdown()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	waypointOpts, err := cfg.WaypointOptions()
	if err != nil {
		serviceutil.Fatal("invalid waypoint config", err)
	}
	cacheOpts, err := cfg.CacheOptions()
	if err != nil {
		serviceutil.Fatal("invalid cache config", err)
	}

	tel := telemetry.SlogAPI{}

	client := waypoint.NewCachedClient(
		waypoint.NewClient(waypointOpts, tel),
		cacheOpts,
		tel,
	)
	records := servicerecords.NewService(client, cfg.Credentials(), tel)
	public := service.NewPublicService(
		records,
		service.WithAllowedOrigins(cfg.AllowedOrigins),
		service.WithCustomTelemetryAPI(tel),
	)

	err = serviceutil.StartHttpServer(ctx, cfg.Port, public.Handler())
	if err != nil {
		serviceutil.Fatal("http server", err)
	}
}
