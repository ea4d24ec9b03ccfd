package catapi

import (
	"context"
	"fmt"
)

const pathImageSearch = "images/search"

// RandomImageURL fetches one random cat image record and returns its URL.
// The endpoint takes no credential. An empty result set or any transport
// failure is returned as an error, never as an empty string.
func (c *Client) RandomImageURL(ctx context.Context) (string, error) {
	var images []imageRecord
	if err := c.getJSON(ctx, pathImageSearch, nil, false, &images); err != nil {
		return "", err
	}
	if len(images) == 0 {
		return "", fmt.Errorf("%s returned no images", pathImageSearch)
	}
	c.log.Debugw("random image", "id", images[0].ID)
	return images[0].URL, nil
}
