package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/Hosannah10/julidsfashion-admin/internal/api"
	"github.com/Hosannah10/julidsfashion-admin/internal/config"
	"github.com/Hosannah10/julidsfashion-admin/internal/notify"
	"github.com/Hosannah10/julidsfashion-admin/internal/session"
	"github.com/Hosannah10/julidsfashion-admin/internal/storage"
	"github.com/Hosannah10/julidsfashion-admin/internal/tui"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	sess := session.New(storage.NewLocal(cfg.StateDir), logger)
	sess.Restore()

	client := api.NewClient(cfg.APIBaseURL, sess, logger)
	toasts := notify.NewQueue()

	app := tui.NewApp(sess, client, toasts, logger)
	if err := app.Run(); err != nil {
		log.Fatalf("admin client exited: %v", err)
	}
}
