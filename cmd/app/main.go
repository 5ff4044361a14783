// File: cmd/app/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telegram-otp-relay/internal/application"
	"telegram-otp-relay/internal/config"
	"telegram-otp-relay/internal/domain/model"
	"telegram-otp-relay/internal/domain/ports/adapter"
	"telegram-otp-relay/internal/domain/ports/repository"
	tele "telegram-otp-relay/internal/infra/adapters/telegram"
	"telegram-otp-relay/internal/infra/bolt"
	"telegram-otp-relay/internal/infra/logging"
	"telegram-otp-relay/internal/infra/memory"
	"telegram-otp-relay/internal/infra/metrics"
	"telegram-otp-relay/internal/infra/otpapi"
	red "telegram-otp-relay/internal/infra/redis"
	"telegram-otp-relay/internal/infra/sched"
	"telegram-otp-relay/internal/infra/web"
	"telegram-otp-relay/internal/otp"
	"telegram-otp-relay/internal/usecase"
)

// Populated via -ldflags on release builds.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Warn().Msg("dev mode: messages go to the log, not Telegram")
	}

	metrics.MustRegister()
	metrics.SetBuildInfo(version, commit)

	// ---- Relay session ----
	session, err := model.NewRelaySession(cfg.Bot.ChatID)
	if err != nil {
		logger.Fatal().Err(err).Int64("chat_id", cfg.Bot.ChatID).Msg("relay session")
	}
	stats := usecase.NewRelayStats()

	// ---- Seen store ----
	var seenRepo repository.SeenRepository
	switch cfg.Seen.Store {
	case "redis":
		client, err := red.NewClient(ctx, &cfg.Seen.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis")
		}
		defer client.Close()
		seenRepo = red.NewSeenRepo(client)
	case "bolt":
		repo, err := bolt.NewSeenRepo(cfg.Seen.Bolt.Path)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.Seen.Bolt.Path).Msg("bolt")
		}
		defer repo.Close()
		seenRepo = repo
	default:
		seenRepo = memory.NewSeenRepo()
	}
	logger.Info().Str("store", cfg.Seen.Store).Msg("seen store ready")

	// ---- Success-numbers API ----
	apiClient, err := otpapi.NewClient(cfg.API)
	if err != nil {
		logger.Fatal().Err(err).Msg("api client")
	}

	// ---- Use cases ----
	relayUC := usecase.NewRelayUseCase(apiClient, stats, logger)
	statusUC := usecase.NewStatusUseCase(apiClient, seenRepo, session, stats, logger)

	// ---- Facade ----
	facade := application.NewBotFacade(relayUC, statusUC, session)

	// ---- Telegram ----
	var bot adapter.TelegramBotAdapter
	if cfg.Runtime.Dev {
		bot = tele.NewNoopBotAdapter()
	} else {
		realBot, err := tele.NewRealTelegramBotAdapter(&cfg.Bot, facade, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("telegram")
		}
		bot = realBot
		go func() {
			if err := realBot.StartPolling(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error().Err(err).Msg("telegram polling stopped")
			}
		}()
	}

	forwardUC := usecase.NewForwardUseCase(
		apiClient,
		seenRepo,
		bot,
		session,
		stats,
		cfg.Poller.FetchLimit,
		cfg.Bot.Links.Bot,
		cfg.Bot.Links.Group,
		logger,
	)

	// ---- Poller ----
	poller := sched.NewSuccessPoller(cfg.Poller.Interval, cfg.Poller.FirstDelay, cfg.Poller.TickTimeout, forwardUC, stats, logger)
	go func() { _ = poller.Run(ctx) }()

	// ---- Ops server ----
	var opsSrv *http.Server
	if cfg.Ops.Enabled {
		auth := web.NewAuthManager(cfg.Ops.JWTSecret, !cfg.Runtime.Dev, "", 30*time.Minute)
		srv := web.NewServer(statusUC, seenRepo, auth, cfg.Ops.AdminPassword, logger)
		opsSrv = &http.Server{Addr: fmt.Sprintf(":%d", cfg.Ops.Port), Handler: srv.Router()}
		go func() {
			logger.Info().Str("addr", opsSrv.Addr).Msg("ops server listening")
			if err := opsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("ops server")
			}
		}()
	}

	logger.Info().
		Int64("chat_id", cfg.Bot.ChatID).
		Dur("poll_interval", cfg.Poller.Interval).
		Int("patterns", otp.PatternCount()).
		Msg("relay started")

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()

	if opsSrv != nil {
		shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shCancel()
		if err := opsSrv.Shutdown(shCtx); err != nil {
			logger.Error().Err(err).Msg("ops server shutdown")
		}
	}
}
