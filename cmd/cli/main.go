package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmikhailov/authkeeper/internal/client/cli"
	"github.com/dmikhailov/authkeeper/internal/client/config"
	"github.com/dmikhailov/authkeeper/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
