package main

import (
	"context"
	"food_wheel/internal/app"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewApp().Run(ctx); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
