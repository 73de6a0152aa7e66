/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jfmyers9/jellywrapped/internal/config"
	"github.com/jfmyers9/jellywrapped/internal/recap"
	"github.com/jfmyers9/jellywrapped/internal/render"
	"github.com/jfmyers9/jellywrapped/internal/store"
	"github.com/jfmyers9/jellywrapped/pkg/jellyfin"
	"github.com/spf13/cobra"
)

var (
	wrappedServer     string
	wrappedAPIKey     string
	wrappedOutput     string
	wrappedTopSongs   int
	wrappedTopArtists int
	wrappedOffline    bool
	wrappedNoHTML     bool
	wrappedLogLevel   string
)

// wrappedCmd represents the wrapped command
var wrappedCmd = &cobra.Command{
	Use:   "wrapped",
	Short: "Generate the wrapped report",
	Long: `Fetch play counts from the Jellyfin server and generate the recap.

The command fetches all users, all audio items, and per-user play
counts, then prints a per-user summary and writes one HTML card per
user into the output directory (plus cover art under assets/).

The fetched snapshot is saved to a local SQLite database, so
'jellywrapped wrapped --offline' can re-render the last report without
contacting the server, and 'jellywrapped view' can browse it.

Server address and API key come from ~/.config/jellywrapped/config.yaml,
JELLYWRAPPED_* environment variables, or the flags below.`,
	RunE: runWrapped,
}

func init() {
	rootCmd.AddCommand(wrappedCmd)

	wrappedCmd.Flags().StringVar(&wrappedServer, "server", "", "Jellyfin server address (overrides config)")
	wrappedCmd.Flags().StringVar(&wrappedAPIKey, "api-key", "", "Jellyfin API key (overrides config)")
	wrappedCmd.Flags().StringVarP(&wrappedOutput, "output", "o", "", "Output directory for HTML cards (overrides config)")
	wrappedCmd.Flags().IntVar(&wrappedTopSongs, "top-songs", 0, "Number of top songs per user (overrides config)")
	wrappedCmd.Flags().IntVar(&wrappedTopArtists, "top-artists", 0, "Number of top artists per user (overrides config)")
	wrappedCmd.Flags().BoolVar(&wrappedOffline, "offline", false, "Re-render from the last saved snapshot without fetching")
	wrappedCmd.Flags().BoolVar(&wrappedNoHTML, "no-html", false, "Skip HTML card output")
	wrappedCmd.Flags().StringVar(&wrappedLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runWrapped(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyWrappedFlags(cfg)

	logger := setupLogger(wrappedLogLevel)

	ctx := context.Background()

	// Open the snapshot store
	st, err := store.New(filepath.Join(config.DataDir(), "snapshots.db"))
	if err != nil {
		return fmt.Errorf("failed to open snapshot store: %w", err)
	}
	defer func() { _ = st.Close() }()

	var snap *recap.Snapshot
	var client *jellyfin.Client

	if wrappedOffline {
		snap, err = st.LatestSnapshot(ctx)
		if err != nil {
			if errors.Is(err, store.ErrNoSnapshot) {
				return fmt.Errorf("no saved snapshot. Run 'jellywrapped wrapped' without --offline first")
			}
			return fmt.Errorf("failed to load snapshot: %w", err)
		}
		logger.Info().Time("fetched_at", snap.FetchedAt).Msg("Using saved snapshot")
	} else {
		if cfg.ServerAddress == "" {
			return fmt.Errorf("server address not configured. Set server_address in config or use --server")
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("API key not configured. Set api_key in config or use --api-key")
		}

		client, err = jellyfin.NewClient(jellyfin.Config{
			BaseURL:    cfg.ServerAddress,
			APIKey:     cfg.APIKey,
			HTTPClient: &http.Client{Timeout: 30 * time.Second},
			Logger:     debugLogger{logger: logger},
		})
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		snap, err = recap.NewFetcher(client, logger).Fetch(ctx)
		if err != nil {
			return err
		}

		if _, err := st.SaveSnapshot(ctx, snap); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		if err := st.Prune(ctx, cfg.KeepRuns); err != nil {
			return fmt.Errorf("failed to prune old snapshots: %w", err)
		}
	}

	reports := recap.Build(snap, cfg.TopSongs, cfg.TopArtists)

	if err := render.WriteText(os.Stdout, reports); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	if wrappedNoHTML {
		return nil
	}

	renderer := &render.HTMLRenderer{
		OutputDir: cfg.OutputDir,
		Logger:    logger,
	}
	if client != nil {
		renderer.Images = client.Images()
	}
	if err := renderer.Render(ctx, reports); err != nil {
		return fmt.Errorf("failed to write HTML cards: %w", err)
	}

	logger.Info().Str("output", cfg.OutputDir).Msg("Wrapped report complete")
	return nil
}

// applyWrappedFlags overlays command-line flags onto the loaded config
func applyWrappedFlags(cfg *config.Config) {
	if wrappedServer != "" {
		cfg.ServerAddress = wrappedServer
	}
	if wrappedAPIKey != "" {
		cfg.APIKey = wrappedAPIKey
	}
	if wrappedOutput != "" {
		cfg.OutputDir = wrappedOutput
	}
	if wrappedTopSongs > 0 {
		cfg.TopSongs = wrappedTopSongs
	}
	if wrappedTopArtists > 0 {
		cfg.TopArtists = wrappedTopArtists
	}
}
