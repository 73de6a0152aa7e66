package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Jellyfin server address, e.g. http://localhost:8096
	ServerAddress string

	// Jellyfin API key (created in the dashboard under API Keys)
	APIKey string

	// How many top songs / artists to include per user
	TopSongs   int
	TopArtists int

	// Directory for HTML cards and downloaded cover art
	OutputDir string

	// How many saved snapshots to keep in the local database
	KeepRuns int
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("server_address", "http://localhost:8096")
	v.SetDefault("top_songs", 5)
	v.SetDefault("top_artists", 5)
	v.SetDefault("output_dir", "./wrapped")
	v.SetDefault("keep_runs", 5)

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("JELLYWRAPPED")
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		ServerAddress: v.GetString("server_address"),
		APIKey:        v.GetString("api_key"),
		TopSongs:      v.GetInt("top_songs"),
		TopArtists:    v.GetInt("top_artists"),
		OutputDir:     v.GetString("output_dir"),
		KeepRuns:      v.GetInt("keep_runs"),
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "jellywrapped")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// DataDir returns the directory holding the snapshot database
// Creates the directory if it doesn't exist
func DataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	dataDir := filepath.Join(homeDir, ".local", "share", "jellywrapped")
	_ = os.MkdirAll(dataDir, 0755)

	return dataDir
}
