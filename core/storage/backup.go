package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// BackupObjectName builds the object name for a backup of the given file
// taken at ts, e.g. "inventory-20240131T120000.db".
func BackupObjectName(path string, ts time.Time) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%s%s", strings.TrimSuffix(base, ext), ts.UTC().Format("20060102T150405"), ext)
}

// Backup uploads the file at path to the configured bucket, creating the
// bucket if it does not exist. It returns the stored object name.
func Backup(ctx context.Context, client Client, cfg Config, path string, ts time.Time) (string, error) {
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return "", fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return "", fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open database file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat database file: %w", err)
	}

	object := BackupObjectName(path, ts)
	_, err = client.PutObject(ctx, cfg.Bucket, object, f, info.Size(),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", object, err)
	}
	return object, nil
}
