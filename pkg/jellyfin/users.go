package jellyfin

import (
	"context"
	"encoding/json"
	"fmt"
)

// UserService provides user listing operations.
type UserService struct {
	client *Client
}

// List fetches all users known to the server.
//
// Example:
//
//	users, err := client.Users().List(ctx)
//	for _, u := range users {
//	    fmt.Println(u.Name, u.ID)
//	}
func (s *UserService) List(ctx context.Context) ([]User, error) {
	body, err := s.client.get(ctx, "/Users", nil)
	if err != nil {
		return nil, err
	}

	var users []User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("jellyfin: failed to parse user list: %w", err)
	}

	return users, nil
}
