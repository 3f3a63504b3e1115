package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	ai "github.com/spetersoncode/nanobanana"
)

// loadImages resolves each source to an ImageInput. Unsupported formats fail
// the call under ImagePolicyStrict and are dropped under ImagePolicySkip.
func (c *Client) loadImages(ctx context.Context, requestID string, sources []string) ([]ai.ImageInput, error) {
	images := make([]ai.ImageInput, 0, len(sources))
	for _, src := range sources {
		data, err := c.readImage(ctx, src)
		if err != nil {
			return nil, err
		}

		img, err := ai.NewImageInput(src, data)
		if err != nil {
			var unsupported *ai.UnsupportedImageFormatError
			if c.policy == ai.ImagePolicySkip && errors.As(err, &unsupported) {
				c.logger.Warn("skipping unsupported reference image",
					"request_id", requestID,
					"source", src,
					"mime_type", unsupported.MimeType,
				)
				continue
			}
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func (c *Client) readImage(ctx context.Context, src string) ([]byte, error) {
	if isURL(src) {
		return c.fetchImage(ctx, src)
	}
	return c.store.Read(src)
}

func (c *Client) fetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ai.ImageError{Op: "fetch", Source: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ai.ImageError{Op: "fetch", Source: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ai.ImageError{Op: "fetch", Source: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageFetchBytes+1))
	if err != nil {
		return nil, &ai.ImageError{Op: "fetch", Source: url, Err: err}
	}
	if len(data) > maxImageFetchBytes {
		return nil, &ai.ImageError{Op: "fetch", Source: url, Err: fmt.Errorf("image exceeds %d MiB", maxImageFetchBytes>>20)}
	}
	return data, nil
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
