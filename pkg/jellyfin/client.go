// Package jellyfin provides a client for the Jellyfin REST API.
//
// This package implements the subset of the Jellyfin API needed to
// read users, audio items, and per-user playback data. It is designed
// to be used as a standalone SDK.
//
// Example usage:
//
//	import "github.com/jfmyers9/jellywrapped/pkg/jellyfin"
//
//	client, err := jellyfin.NewClient(jellyfin.Config{
//	    BaseURL: "http://localhost:8096",
//	    APIKey:  "your-api-key",
//	})
//
//	users, err := client.Users().List(ctx)
package jellyfin

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds client configuration.
type Config struct {
	BaseURL    string       // Required: Jellyfin server address, e.g. http://localhost:8096
	APIKey     string       // Required: Jellyfin API key
	HTTPClient *http.Client // Optional: HTTP client (defaults to http.DefaultClient)
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Jellyfin API operations.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     Logger

	system *SystemService
	users  *UserService
	items  *ItemService
	images *ImageService
}

// NewClient creates a new Jellyfin API client.
//
// Returns an error if required configuration (BaseURL, APIKey) is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("jellyfin: BaseURL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("jellyfin: APIKey is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     cfg.Logger,
	}

	c.system = &SystemService{client: c}
	c.users = &UserService{client: c}
	c.items = &ItemService{client: c}
	c.images = &ImageService{client: c}

	return c, nil
}

// System returns the system service.
func (c *Client) System() *SystemService {
	return c.system
}

// Users returns the user service.
func (c *Client) Users() *UserService {
	return c.users
}

// Items returns the item service.
func (c *Client) Items() *ItemService {
	return c.items
}

// Images returns the image service.
func (c *Client) Images() *ImageService {
	return c.images
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
