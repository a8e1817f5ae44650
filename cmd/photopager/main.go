package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/GoArmGo/photopager/internal/cli"
)

func main() {
	// bootstrap-логгер: основной создаётся в di после загрузки конфигурации
	bootstrapLogger := slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		bootstrapLogger.Error("application run failed", "error", err)
		os.Exit(1)
	}
}
