package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/application"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/config"
	httpiface "github.com/benoasraf-100M/100m-daily-market-dashboard/internal/interfaces/http"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/interfaces/output"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/scheduler"
)

const (
	appName = "market-dashboard"
	version = "v1.0.0"
)

var (
	configPath string
	asJSON     bool
	verbose    bool
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Daily crypto market regime score and allocation dashboard",
		Version: version,
		Long: `market-dashboard condenses public crypto market data into one
regime score across five pillars (cycle, sentiment, rotation, leverage,
capital flows) and maps it to a suggested portfolio allocation.

Informational only, not financial advice.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to yaml config (defaults apply when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	scoreCmd := &cobra.Command{
		Use:   "score",
		Short: "Fetch data once and print the dashboard",
		RunE:  runScore,
	}
	scoreCmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw view as JSON instead of the report")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server with scheduled refresh",
		RunE:  runServe,
	}

	rootCmd.AddCommand(scoreCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	svc, _, err := application.Build(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	view, err := svc.Render(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	output.WriteReport(os.Stdout, view)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	svc, reg, err := application.Build(cfg)
	if err != nil {
		return err
	}

	sched, err := scheduler.New(cfg.Refresh.CronSpec, func(ctx context.Context) error {
		_, err := svc.Render(ctx)
		return err
	})
	if err != nil {
		return err
	}

	server := httpiface.NewServer(cfg.Server, svc, reg.Handler())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched.Start()
	defer sched.Stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
