package cmd

import (
	"testing"

	"github.com/jfmyers9/jellywrapped/internal/config"
)

func TestApplyWrappedFlags(t *testing.T) {
	tests := []struct {
		name       string
		server     string
		apiKey     string
		output     string
		topSongs   int
		topArtists int
		want       config.Config
	}{
		{
			name: "no flags keeps config",
			want: config.Config{
				ServerAddress: "http://config:8096",
				APIKey:        "config-key",
				OutputDir:     "./wrapped",
				TopSongs:      5,
				TopArtists:    5,
			},
		},
		{
			name:     "server and key override",
			server:   "http://flag:8096",
			apiKey:   "flag-key",
			topSongs: 10,
			want: config.Config{
				ServerAddress: "http://flag:8096",
				APIKey:        "flag-key",
				OutputDir:     "./wrapped",
				TopSongs:      10,
				TopArtists:    5,
			},
		},
		{
			name:   "output override",
			output: "/tmp/out",
			want: config.Config{
				ServerAddress: "http://config:8096",
				APIKey:        "config-key",
				OutputDir:     "/tmp/out",
				TopSongs:      5,
				TopArtists:    5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedServer = tt.server
			wrappedAPIKey = tt.apiKey
			wrappedOutput = tt.output
			wrappedTopSongs = tt.topSongs
			wrappedTopArtists = tt.topArtists
			t.Cleanup(func() {
				wrappedServer, wrappedAPIKey, wrappedOutput = "", "", ""
				wrappedTopSongs, wrappedTopArtists = 0, 0
			})

			cfg := &config.Config{
				ServerAddress: "http://config:8096",
				APIKey:        "config-key",
				OutputDir:     "./wrapped",
				TopSongs:      5,
				TopArtists:    5,
			}
			applyWrappedFlags(cfg)

			if *cfg != tt.want {
				t.Errorf("unexpected config: %+v, want %+v", *cfg, tt.want)
			}
		})
	}
}
