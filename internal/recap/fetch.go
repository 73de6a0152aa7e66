package recap

import (
	"context"
	"fmt"
	"time"

	"github.com/jfmyers9/jellywrapped/pkg/jellyfin"
	"github.com/rs/zerolog"
)

// Fetcher pulls a complete snapshot from a Jellyfin server.
//
// Requests are sequential: the user/item counts involved in a personal
// library are small enough that fetch time is dominated by the server,
// and sequential requests keep the load on it polite.
type Fetcher struct {
	client *jellyfin.Client
	logger zerolog.Logger
}

// NewFetcher creates a Fetcher for the given client.
func NewFetcher(client *jellyfin.Client, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		logger: logger.With().Str("component", "fetcher").Logger(),
	}
}

// Fetch retrieves users, audio items, and per-user play counts.
//
// Any failure aborts the fetch and surfaces to the caller; there are
// no partial snapshots.
func (f *Fetcher) Fetch(ctx context.Context) (*Snapshot, error) {
	info, err := f.client.System().Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}
	f.logger.Info().
		Str("server", info.ServerName).
		Str("version", info.Version).
		Msg("Connected to server")

	users, err := f.client.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	f.logger.Info().Int("users", len(users)).Msg("Fetched users")

	items, err := f.client.Items().ListAudio(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audio items: %w", err)
	}
	f.logger.Info().Int("items", len(items)).Msg("Fetched audio items")

	counts := make(map[string]map[string]int, len(users))
	for _, user := range users {
		counts[user.ID] = make(map[string]int, len(items))
	}

	for i, item := range items {
		for _, user := range users {
			data, err := f.client.Items().UserData(ctx, item.ID, user.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch play data for item %q user %q: %w", item.Name, user.Name, err)
			}
			counts[user.ID][item.ID] = data.PlayCount
		}

		if (i+1)%100 == 0 || i+1 == len(items) {
			f.logger.Info().
				Int("done", i+1).
				Int("total", len(items)).
				Msg("Fetching play counts")
		}
	}

	return &Snapshot{
		FetchedAt:  time.Now(),
		Users:      users,
		Items:      items,
		PlayCounts: counts,
	}, nil
}
