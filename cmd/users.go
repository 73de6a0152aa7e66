/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jfmyers9/jellywrapped/internal/config"
	"github.com/jfmyers9/jellywrapped/pkg/jellyfin"
	"github.com/spf13/cobra"
)

var (
	usersServer string
	usersAPIKey string
)

// usersCmd represents the users command
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users on the Jellyfin server",
	Long: `List all users known to the configured Jellyfin server.

Useful as a quick check that the server address and API key are
correct before generating a full report.`,
	RunE: runUsers,
}

func init() {
	rootCmd.AddCommand(usersCmd)

	usersCmd.Flags().StringVar(&usersServer, "server", "", "Jellyfin server address (overrides config)")
	usersCmd.Flags().StringVar(&usersAPIKey, "api-key", "", "Jellyfin API key (overrides config)")
}

func runUsers(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if usersServer != "" {
		cfg.ServerAddress = usersServer
	}
	if usersAPIKey != "" {
		cfg.APIKey = usersAPIKey
	}

	if cfg.ServerAddress == "" {
		return fmt.Errorf("server address not configured. Set server_address in config or use --server")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key not configured. Set api_key in config or use --api-key")
	}

	client, err := jellyfin.NewClient(jellyfin.Config{
		BaseURL:    cfg.ServerAddress,
		APIKey:     cfg.APIKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	})
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	info, err := client.System().Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}

	users, err := client.Users().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	fmt.Printf("%s (%s) — %d users\n", info.ServerName, info.Version, len(users))
	for _, user := range users {
		fmt.Printf("  %s  %s\n", user.ID, user.Name)
	}

	return nil
}
