package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/changhyeonkim/mediatheque-api/internal/bootstrap"
	"github.com/changhyeonkim/mediatheque-api/internal/config"
	"github.com/changhyeonkim/mediatheque-api/internal/router"
	"github.com/changhyeonkim/mediatheque-api/internal/seed"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/clock"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/database"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/logger"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/validator"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// rootOptions holds flags shared by every command
type rootOptions struct {
	Env string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "mediatheque",
		Short:         "Library lending service",
		Long:          "HTTP API managing library members, media and loans.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(opts.Env)
		},
		// no subcommand means serve
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Env, "env", "local", "environment (local|dev|production)")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newSeedCommand(opts))

	return cmd
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func newSeedCommand(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load members and media from a YAML file",
		Long: `Load members and media from a YAML file.

Example:
  mediatheque seed --file catalog.yaml
  mediatheque --env dev seed --file catalog.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), opts, file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the seed YAML file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// open loads configuration, connects to the database and wires the services
func open(env string) (*config.Config, *database.DB, *router.Services, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := validator.RegisterAll(); err != nil {
		return nil, nil, nil, fmt.Errorf("register validators: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}

	return cfg, db, router.NewServices(cfg, db, clock.System{}), nil
}

func runSeed(ctx context.Context, opts *rootOptions, path string) error {
	file, err := seedFile(path)
	if err != nil {
		return err
	}

	_, db, services, err := open(opts.Env)
	if err != nil {
		return err
	}
	defer closeDB(db)

	if _, err := seed.Apply(ctx, file, services.Member, services.Catalog); err != nil {
		return fmt.Errorf("apply seed: %w", err)
	}
	return nil
}

// seedFile loads and validates the seed before any database work
func seedFile(path string) (*seed.File, error) {
	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}
	return seed.Load(path)
}

func runServe(ctx context.Context, opts *rootOptions) error {
	slog.Info("server initializing", "env", opts.Env)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, db, services, err := open(opts.Env)
	if err != nil {
		return err
	}
	defer closeDB(db)

	boot := bootstrap.NewBootstrap(cfg)
	ginEngine := boot.SetupEngine()
	router.Setup(ginEngine, cfg, db, services)

	slog.Info("server configured", "env", cfg.App.Env)

	srv := bootstrap.New(cfg, ginEngine)
	if err := startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout); err != nil {
		return err
	}

	slog.Info("server stopped", "env", opts.Env)
	return nil
}

func closeDB(db *database.DB) {
	if err := db.Close(); err != nil {
		slog.Error("close database failed", "error", err)
	}
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		slog.Info("server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("forced shutdown: %w", err)
		}
		return nil
	}
}
