// Command server runs the flashcard review HTTP API.
//
// Configuration is read from CONFIG_PATH (or ./config.yaml) and environment
// variables; see internal/config. The server stops gracefully on SIGINT or
// SIGTERM.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/alhidayah/hidayah-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		stop()
		log.Fatalf("server: %v", err)
	}
}
