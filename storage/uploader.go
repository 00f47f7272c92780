// Package storage uploads team crest images to S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Uploader stores crest images and hands back their public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// CrestKey builds the object key for a team's crest. The timestamp keeps
// stale CDN copies from shadowing a replaced image.
func CrestKey(teamID int, ext string) string {
	return fmt.Sprintf("crests/team-%d-%d%s", teamID, time.Now().Unix(), ext)
}
