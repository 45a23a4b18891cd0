package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/adapters/notes/gemini"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/adapters/notify/mailer"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/adapters/vision/catvision"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/platform/logger"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	opts := router.Options{
		AuthVerifier: nil, // sin verifier: modo dev via X-Debug-User-ID
		Logger:       log,
	}

	// Adapters opcionales: solo se enchufan si hay configuración.
	ctx := context.Background()

	if gen, err := gemini.NewGenerator(ctx, gemini.Config{APIKey: os.Getenv("GEMINI_API_KEY")}); err != nil {
		log.Warn("gemini disabled", map[string]any{"err": err.Error()})
	} else if gen != nil {
		defer gen.Close()
		opts.Notes = gen
		log.Info("gemini notes enabled", nil)
	}

	if m := mailer.NewClient(mailer.Config{
		BaseURL: os.Getenv("MAILER_BASE_URL"),
		APIKey:  os.Getenv("MAILER_API_KEY"),
	}); m.IsConfigured() {
		opts.Notifier = m
		log.Info("mailer enabled", nil)
	}

	if vc, err := catvision.NewClient(catvision.Config{BaseURL: os.Getenv("VISION_BASE_URL")}); err != nil {
		log.Warn("vision disabled", map[string]any{"err": err.Error()})
	} else if vc != nil {
		opts.Vision = vc
		log.Info("photo analysis enabled", nil)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
