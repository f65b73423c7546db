package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lbe/internal/logger"
	"lbe/internal/server"
	"lbe/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, err := logger.New(logger.Options{Instance: cfg.InstanceName, Level: cfg.LogLevel, Output: os.Stdout})
		if err != nil {
			return err
		}
		defer log.Sync()
		undo := zap.RedirectStdLog(log)
		defer undo()

		svc, err := services.New(*cfg, log)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cfg.WatchContent {
			go func() {
				if err := svc.Content.Watch(ctx, cfg.ContentDir); err != nil {
					log.Error("content watcher stopped", zap.Error(err))
				}
			}()
		}

		return server.New(*cfg, svc, log).ListenAndServe(ctx)
	},
}
