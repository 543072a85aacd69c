package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/groupbuy/core/pkg/cli/config"
	controller "github.com/groupbuy/core/pkg/controller/http"
	"github.com/groupbuy/core/pkg/domain/interfaces"
	"github.com/groupbuy/core/pkg/infra/postgres"
	"github.com/groupbuy/core/pkg/infra/redis"
	"github.com/groupbuy/core/pkg/infra/slack"
	"github.com/groupbuy/core/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		configPath string
		serverCfg  config.Server
		dbCfg      config.Database
		redisCfg   config.Redis
		notifyCfg  config.Notify
		sentryCfg  config.Sentry
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to a TOML config file",
			Destination: &configPath,
			Sources:     cli.EnvVars("GROUPBUY_CONFIG"),
		},
	}
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, dbCfg.Flags()...)
	flags = append(flags, redisCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if configPath != "" {
				file, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				file.Apply(&serverCfg, &dbCfg, &redisCfg, &notifyCfg, &sentryCfg)
			}
			if serverCfg.Addr == "" {
				serverCfg.Addr = "localhost:8080"
			}
			if dbCfg.DSN == "" {
				return goerr.New("database DSN is required")
			}

			sentryActive, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			if sentryActive {
				defer sentry.Flush(2 * time.Second)
			}

			logger.Info("Starting groupbuy-core server",
				slog.String("addr", serverCfg.Addr),
				slog.Bool("cache", redisCfg.Addr != ""),
				slog.Bool("notify", notifyCfg.SlackWebhookURL != ""),
				slog.Bool("sentry", sentryActive),
			)

			db, err := postgres.New(ctx, dbCfg.DSN)
			if err != nil {
				return goerr.Wrap(err, "failed to connect to postgres")
			}
			defer db.Close()

			// Optional collaborators
			var procurementOpts []usecase.ProcurementOption
			if redisCfg.Addr != "" {
				cache, err := redis.New(ctx, redisCfg.Addr, redisCfg.Password, int(redisCfg.DB))
				if err != nil {
					return goerr.Wrap(err, "failed to connect to redis")
				}
				defer cache.Close()
				procurementOpts = append(procurementOpts, usecase.WithCache(cache))
			}
			if notifyCfg.SlackWebhookURL != "" {
				var notifier interfaces.Notifier = slack.New(notifyCfg.SlackWebhookURL)
				procurementOpts = append(procurementOpts, usecase.WithNotifier(notifier))
			}

			// Use cases
			procurementUC := usecase.NewProcurement(db, procurementOpts...)
			userUC := usecase.NewUser(db)
			chatUC := usecase.NewChat(db, db)
			paymentUC := usecase.NewPayment(db)

			// HTTP server
			server, err := controller.NewServer(
				ctx,
				procurementUC,
				userUC,
				chatUC,
				paymentUC,
				db,
				controller.WithAddr(serverCfg.Addr),
				controller.WithAdminSecret(serverCfg.AdminSecret),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
