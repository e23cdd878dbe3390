package main

import (
	"context"

	"halorun-backend/cmd/waypoint-cli/commands"
	"halorun-backend/internal/components/telemetry"
)

func main() {
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
