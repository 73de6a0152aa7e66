package jellyfin

import (
	"context"
	"fmt"
	"io"
	"net/url"
)

// ImageService provides item image operations.
type ImageService struct {
	client *Client
}

// Primary downloads an item's primary image (the album cover for a
// song) and writes it to w.
func (s *ImageService) Primary(ctx context.Context, itemID string, w io.Writer) error {
	body, err := s.client.stream(ctx, "/Items/"+url.PathEscape(itemID)+"/Images/Primary", "image/*")
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	if _, err := io.Copy(w, body); err != nil {
		return fmt.Errorf("jellyfin: failed to download image: %w", err)
	}

	return nil
}
