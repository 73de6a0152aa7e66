// Package jellyfin provides a client library for the Jellyfin REST API.
//
// # Overview
//
// This package implements a Go client for the subset of the Jellyfin
// API needed to read users, audio library items, and per-user playback
// data. It provides a clean, type-safe API with context support,
// proper error handling, and retry logic.
//
// # Installation
//
//	go get github.com/jfmyers9/jellywrapped/pkg/jellyfin
//
// # Quick Start
//
// Create a client with your server address and API key:
//
//	import "github.com/jfmyers9/jellywrapped/pkg/jellyfin"
//
//	client, err := jellyfin.NewClient(jellyfin.Config{
//	    BaseURL: "http://localhost:8096",
//	    APIKey:  "your-api-key",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// API keys are created in the Jellyfin dashboard under
// Administration > API Keys.
//
// # Reading Data
//
//	// Check connectivity and credentials
//	info, err := client.System().Info(ctx)
//
//	// List users
//	users, err := client.Users().List(ctx)
//
//	// List every audio item (paginated internally)
//	items, err := client.Items().ListAudio(ctx)
//
//	// Per-user playback state for an item
//	ud, err := client.Items().UserData(ctx, items[0].ID, users[0].ID)
//	fmt.Println("play count:", ud.PlayCount)
//
//	// Download an album cover
//	f, _ := os.Create("cover.jpg")
//	err = client.Images().Primary(ctx, items[0].ID, f)
//
// # Error Handling
//
// The package provides structured errors with retry information:
//
//	users, err := client.Users().List(ctx)
//	if err != nil {
//	    var apiErr *jellyfin.Error
//	    if errors.As(err, &apiErr) {
//	        if apiErr.StatusCode == http.StatusUnauthorized {
//	            // Bad API key
//	        }
//	    }
//	}
//
// Transient failures (network errors, 5xx responses, 429) are retried
// internally with exponential backoff before being surfaced.
//
// # Context Support
//
// All API methods accept a context.Context for cancellation and timeouts:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	users, err := client.Users().List(ctx)
//
// # Configuration
//
// The client can be configured with a custom HTTP client and an
// optional logger:
//
//	client, err := jellyfin.NewClient(jellyfin.Config{
//	    BaseURL:    "http://localhost:8096",
//	    APIKey:     "your-api-key",
//	    HTTPClient: &http.Client{Timeout: 30 * time.Second},
//	    Logger:     myLogger, // Implements jellyfin.Logger interface
//	})
//
// # API Coverage
//
// Currently implemented:
//   - System information (GET /System/Info)
//   - Users (GET /Users)
//   - Audio items with pagination (GET /Items)
//   - Per-user item data (GET /UserItems/{id}/UserData)
//   - Primary images (GET /Items/{id}/Images/Primary)
package jellyfin
