package jellyfin

import (
	"context"
	"encoding/json"
	"fmt"
)

// SystemService provides server information operations.
type SystemService struct {
	client *Client
}

// Info fetches server identity and version information.
//
// Useful as a cheap connectivity and credential check before issuing
// the heavier item queries.
func (s *SystemService) Info(ctx context.Context) (*SystemInfo, error) {
	body, err := s.client.get(ctx, "/System/Info", nil)
	if err != nil {
		return nil, err
	}

	var info SystemInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("jellyfin: failed to parse system info: %w", err)
	}

	return &info, nil
}
