package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ymestates/realty/pkg/config"
)

// Storage persists uploaded images and returns the absolute URL they will be
// served from.
type Storage interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// New selects the backend from config. Local disk is the default; S3 and GCS
// are used when configured.
func New(ctx context.Context, cfg config.UploadConfig, publicURL string) (Storage, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocal(cfg.Dir, publicURL)
	case "s3":
		return NewS3(ctx, cfg)
	case "gcs":
		return NewGCS(ctx, cfg.GCSBucket)
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Backend)
	}
}

// Local stores files on disk; the router serves the directory at /uploads.
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &Local{dir: dir, baseURL: baseURL}, nil
}

func (l *Local) Dir() string {
	return l.dir
}

func (l *Local) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	// name is server-generated, but keep path traversal out regardless.
	name = filepath.Base(name)

	f, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	return l.baseURL + "/uploads/" + name, nil
}
