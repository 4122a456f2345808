package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publish uploads the given files to the bucket under a per-run prefix,
// creating the bucket if it does not exist. Object names are
// "<prefix>/<file base name>". The upload is best effort in aggregate but
// fails fast: the first failing file aborts and its error is returned.
func Publish(ctx context.Context, client Client, bucket, prefix string, paths []string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
		log.Info("Created report bucket", zap.String("bucket", bucket))
	}

	for _, p := range paths {
		if err := publishFile(ctx, client, bucket, prefix, p); err != nil {
			return err
		}
		log.Info("Published report",
			zap.String("bucket", bucket),
			zap.String("object", path.Join(prefix, filepath.Base(p))),
		)
	}

	return nil
}

func publishFile(ctx context.Context, client Client, bucket, prefix, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open report %s: %w", filePath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat report %s: %w", filePath, err)
	}

	objectName := path.Join(prefix, filepath.Base(filePath))
	_, err = client.PutObject(ctx, bucket, objectName, f, info.Size(), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	return nil
}
