/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jfmyers9/jellywrapped/internal/config"
	"github.com/jfmyers9/jellywrapped/internal/recap"
	"github.com/jfmyers9/jellywrapped/internal/store"
	"github.com/jfmyers9/jellywrapped/internal/tui"
	"github.com/spf13/cobra"
)

var (
	viewTopSongs   int
	viewTopArtists int
)

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the last wrapped report in the terminal",
	Long: `Open an interactive viewer over the most recently fetched snapshot.

Use the left/right arrow keys (or h/l) to move between users and q to
quit. The viewer works entirely from the local snapshot database; run
'jellywrapped wrapped' first to fetch one.`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().IntVar(&viewTopSongs, "top-songs", 0, "Number of top songs per user (overrides config)")
	viewCmd.Flags().IntVar(&viewTopArtists, "top-artists", 0, "Number of top artists per user (overrides config)")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if viewTopSongs > 0 {
		cfg.TopSongs = viewTopSongs
	}
	if viewTopArtists > 0 {
		cfg.TopArtists = viewTopArtists
	}

	st, err := store.New(filepath.Join(config.DataDir(), "snapshots.db"))
	if err != nil {
		return fmt.Errorf("failed to open snapshot store: %w", err)
	}
	defer func() { _ = st.Close() }()

	snap, err := st.LatestSnapshot(context.Background())
	if err != nil {
		if errors.Is(err, store.ErrNoSnapshot) {
			return fmt.Errorf("no saved snapshot. Run 'jellywrapped wrapped' first")
		}
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	reports := recap.Build(snap, cfg.TopSongs, cfg.TopArtists)

	return tui.New(reports).Run()
}
