/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jellywrapped",
	Short: "Spotify-Wrapped-style recaps for a Jellyfin server",
	Long: `jellywrapped queries a Jellyfin server for per-user play counts
and renders a "wrapped"-style recap: total plays, minutes listened,
top songs, and top artists for every user.

It prints a summary to the terminal and writes an HTML card per user
with the cover art of their most played song. Fetched data is saved
locally so reports can be re-rendered or browsed without hitting the
server again.

Play counts come from Jellyfin's built-in PlayCount field, which is a
cumulative all-time counter. For richer data, use something like the
Playback Reporting plugin on the server side.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags can be added here if needed
}

// setupLogger creates a logger with the specified configuration
func setupLogger(logLevel string) zerolog.Logger {
	// Parse log level
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	return zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger().
		Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// debugLogger adapts zerolog to the jellyfin client's Logger interface
type debugLogger struct {
	logger zerolog.Logger
}

func (d debugLogger) Debugf(format string, args ...interface{}) {
	d.logger.Debug().Msgf(format, args...)
}
