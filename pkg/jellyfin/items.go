package jellyfin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ItemService provides library item operations.
type ItemService struct {
	client *Client
}

const (
	// DefaultPageSize is the number of items requested per page when
	// listing the library.
	DefaultPageSize = 500
)

// ListAudio fetches every audio item in the library.
//
// The server paginates item listings, so this issues as many requests
// as needed (sequentially) and returns the combined result.
func (s *ItemService) ListAudio(ctx context.Context) ([]Item, error) {
	var items []Item
	startIndex := 0

	for {
		page, err := s.listAudioPage(ctx, startIndex, DefaultPageSize)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Items...)

		startIndex += len(page.Items)
		if len(page.Items) == 0 || startIndex >= page.TotalRecordCount {
			break
		}
	}

	return items, nil
}

// listAudioPage fetches a single page of audio items.
func (s *ItemService) listAudioPage(ctx context.Context, startIndex, limit int) (*ItemsResponse, error) {
	query := url.Values{}
	query.Set("recursive", "true")
	query.Set("includeItemTypes", "Audio")
	query.Set("locationTypes", "FileSystem")
	query.Set("enableImages", "true")
	query.Set("startIndex", strconv.Itoa(startIndex))
	query.Set("limit", strconv.Itoa(limit))

	body, err := s.client.get(ctx, "/Items", query)
	if err != nil {
		return nil, err
	}

	var resp ItemsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("jellyfin: failed to parse item list: %w", err)
	}

	return &resp, nil
}

// UserData fetches per-user playback state for an item, most
// importantly the cumulative play count.
//
// Example:
//
//	ud, err := client.Items().UserData(ctx, item.ID, user.ID)
//	fmt.Println(ud.PlayCount)
func (s *ItemService) UserData(ctx context.Context, itemID, userID string) (*UserData, error) {
	query := url.Values{}
	query.Set("userId", userID)

	body, err := s.client.get(ctx, "/UserItems/"+url.PathEscape(itemID)+"/UserData", query)
	if err != nil {
		return nil, err
	}

	var data UserData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("jellyfin: failed to parse user data: %w", err)
	}

	return &data, nil
}
