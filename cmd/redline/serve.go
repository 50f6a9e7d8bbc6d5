package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"redline/internal/server"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP correction service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := buildLogger(cfg.LogLevel)

		ctx := cmd.Context()
		vocab, dict, err := buildVocabulary(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("load vocabulary: %w", err)
		}
		matcher := buildMatcher(vocab, cfg)
		p := buildPipeline(matcher, vocab, cfg, logger)

		opts := []server.Option{server.WithLogger(logger)}
		if dict != nil {
			opts = append(opts, server.WithCustomDict(dict))
		}
		srv := &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: server.New(p, matcher, opts...).Handler(),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown incomplete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("close server: %w", err)
				}
			}
			logger.Info("server stopped")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
