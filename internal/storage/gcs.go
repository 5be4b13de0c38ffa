package storage

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCS stores uploads in a Google Cloud Storage bucket using application
// default credentials.
type GCS struct {
	client *gcs.Client
	bucket string
}

func NewGCS(ctx context.Context, bucket string) (*GCS, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs backend requires a bucket")
	}

	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating gcs client: %w", err)
	}

	return &GCS{client: client, bucket: bucket}, nil
}

func (g *GCS) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	w := g.client.Bucket(g.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("uploading to gcs: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalizing gcs upload: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucket, name), nil
}
