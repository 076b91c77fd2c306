package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/veridis/sfdr-engine/ai/provider"
	"github.com/veridis/sfdr-engine/config"
	"github.com/veridis/sfdr-engine/engine"
	"github.com/veridis/sfdr-engine/errors"
	"github.com/veridis/sfdr-engine/logger"
	"github.com/veridis/sfdr-engine/server"
)

// ServeCmd starts the classification HTTP server
var ServeCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Start the SFDR classification HTTP server",
	Long:    `Launch the HTTP server exposing classification, document upload, health, and metrics endpoints.`,
	RunE:    runServe,
}

var servePort int

func init() {
	ServeCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	port := servePort
	if port == 0 {
		port = cfg.GetServerPort()
	}

	sel, err := provider.New(cfg, logger.Logger)
	if err != nil {
		return errors.Wrap(err, "failed to resolve model provider")
	}

	eng := engine.New(engine.Options{
		Model:     sel.Model,
		ModelName: sel.ModelName,
		Logger:    logger.Logger,
	})

	srv := server.New(eng, cfg, logger.Logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(port)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return errors.Wrap(err, "server failed")
	case <-sigChan:
		logger.Infow("Shutting down gracefully (press Ctrl+C again to force)")

		shutdownDone := make(chan error, 1)
		go func() {
			shutdownDone <- srv.Stop()
		}()

		select {
		case err := <-shutdownDone:
			if err != nil {
				return fmt.Errorf("shutdown error: %w", err)
			}
			return nil
		case <-sigChan:
			logger.Warnw("Force shutdown, exiting immediately")
			os.Exit(1)
			return nil // unreachable
		}
	}
}
