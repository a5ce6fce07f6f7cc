package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	configloader "github.com/foxseedlab/ttsbot/external/config"
	"github.com/foxseedlab/ttsbot/external/discord"
	"github.com/foxseedlab/ttsbot/external/ttsservice"
	"github.com/foxseedlab/ttsbot/internal/config"
	"github.com/foxseedlab/ttsbot/internal/startup"
	"github.com/samber/do/v2"
)

const shutdownNoticeTimeout = 10 * time.Second

func main() {
	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env, "voice_modes", cfg.VoiceModes)

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)

	runner, err := do.Invoke[*startup.Runner](injector)
	if err != nil {
		slog.Error("failed to resolve startup runner", "error", err)
		os.Exit(1)
	}

	slog.Info("startup: provisioning webhooks and voice catalogs")
	st, err := runner.Run(context.Background())
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
	slog.Info("startup: complete",
		"startup_message_id", st.StartupMessageID,
		"gcloud_languages", len(st.Catalogs.GCloud),
		"gtts_voices", len(st.Catalogs.GTTS),
		"espeak_voices", len(st.Catalogs.ESpeak),
		"polly_voices", len(st.Catalogs.Polly),
		"translation_languages", len(st.Catalogs.Translation),
	)

	waitForSignal()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownNoticeTimeout)
	defer cancel()
	if err := runner.Shutdown(ctx, st); err != nil {
		slog.Error("failed to post shutdown notice", "error", err)
	}
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	discord.RegisterDI(injector)
	ttsservice.RegisterDI(injector)
	startup.RegisterDI(injector)

	return injector
}

func waitForSignal() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
}
